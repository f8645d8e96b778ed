package fulfillment

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"cnres-bot/internal/logger"
	"cnres-bot/internal/menu"
	"cnres-bot/internal/models"
	"cnres-bot/internal/notify"
	"cnres-bot/internal/orderstore"
	"cnres-bot/internal/pricing"
)

// Intent names the bot routes to this service.
const (
	IntentOrderFood         = "OrderFood"
	IntentOrderFamilyDinner = "OrderFamilyDinner"
	IntentGetPrice          = "GetPrice"
	IntentCheckMenu         = "CheckMenu"
)

// Slot names.
const (
	SlotDishName          = "DishName"
	SlotQuantity          = "Quantity"
	SlotCustomization     = "Customization"
	SlotNumberOfPeople    = "NumberOfPeople"
	SlotFamilyDinnerStyle = "FamilyDinnerStyle"
)

// Service fulfills bot intents: it resolves dishes, prices them, records
// the order and pushes a kitchen notification.
type Service struct {
	source   menu.Source
	store    orderstore.Store
	notifier notify.Notifier
	logger   *logger.Logger

	defaultPriceEnabled bool
	defaultPrice        decimal.Decimal

	now func() time.Time
}

func NewService(source menu.Source, store orderstore.Store, notifier notify.Notifier, log *logger.Logger) *Service {
	return &Service{
		source:   source,
		store:    store,
		notifier: notifier,
		logger:   log,
		now:      time.Now,
	}
}

// EnableDefaultPrice makes unresolved dishes orderable at a flat
// fallback price instead of failing the order.
func (s *Service) EnableDefaultPrice(price decimal.Decimal) {
	s.defaultPriceEnabled = true
	s.defaultPrice = price
}

// HandleEvent dispatches one fulfillment event. It always returns a
// well-formed close response; internal failures surface as Failed
// intents, never as transport errors.
func (s *Service) HandleEvent(ctx context.Context, event *Event, requestID string) *Response {
	intentName := event.SessionState.Intent.Name

	s.logger.Debug("event_received", "Received fulfillment event", requestID, map[string]interface{}{
		"intent": intentName,
	})

	switch intentName {
	case IntentOrderFood:
		return s.handleOrderFood(ctx, event, requestID)
	case IntentOrderFamilyDinner:
		return s.handleOrderFamilyDinner(ctx, event, requestID)
	case IntentGetPrice:
		return s.handleGetPrice(ctx, event, requestID)
	case IntentCheckMenu:
		return s.handleCheckMenu(ctx, event, requestID)
	default:
		return CloseResponse(intentName, StateFulfilled,
			"I can take your order, quote prices, or tell you about the menu. "+
				"Try something like \"I'd like two orders of kung pao chicken\".")
	}
}

func (s *Service) handleOrderFood(ctx context.Context, event *Event, requestID string) *Response {
	intentName := event.SessionState.Intent.Name

	dishName := event.slotValue(SlotDishName)
	if dishName == "" {
		return CloseResponse(intentName, StateFailed,
			"I didn't catch which dish you'd like. Please tell me the dish name.")
	}

	quantityRaw := event.slotValue(SlotQuantity)
	if quantityRaw == "" {
		return CloseResponse(intentName, StateFailed,
			"I didn't catch how many you'd like. Please tell me the quantity.")
	}
	quantity, err := strconv.Atoi(quantityRaw)
	if err != nil || quantity <= 0 {
		return CloseResponse(intentName, StateFailed,
			fmt.Sprintf("Sorry, %q is not a quantity I can work with. Please give me a whole number.", quantityRaw))
	}

	customizations := event.slotValues(SlotCustomization)

	entry, found, err := s.source.Resolve(ctx, dishName)
	if err != nil {
		s.logger.Error("menu_lookup_failed", "Failed to resolve dish", requestID, err, map[string]interface{}{
			"dish_name": dishName,
		})
		return CloseResponse(intentName, StateFailed,
			"Sorry, something went wrong looking up the menu. Please try again.")
	}
	if !found {
		if !s.defaultPriceEnabled {
			return CloseResponse(intentName, StateFailed,
				fmt.Sprintf("Sorry, we couldn't find %q on our menu, so the order was not placed. "+
					"Please check the menu and try again.", dishName))
		}
		entry = menu.Entry{CanonicalName: strings.ToUpper(dishName), Price: s.defaultPrice}
	}

	line := pricing.CalculateLine(entry, quantity, customizations)
	order := &models.Order{
		OrderID:        models.NewOrderID("ORD", s.now()),
		CreatedAt:      s.now().UTC(),
		OrderType:      models.OrderTypeDish,
		DishName:       dishName,
		MenuName:       entry.CanonicalName,
		Quantity:       quantity,
		Customizations: customizations,
		UnitPrice:      line.UnitPrice,
		Subtotal:       line.Subtotal,
		TaxAmount:      line.TaxAmount,
		Total:          line.Total,
		Status:         models.StatusPending,
	}

	if err := s.store.Save(ctx, order); err != nil {
		s.logger.Error("order_save_failed", "Failed to persist order", requestID, err, map[string]interface{}{
			"order_id": order.OrderID,
		})
		return CloseResponse(intentName, StateFailed,
			"Sorry, we couldn't record your order. Please try again.")
	}

	s.notify(ctx, notify.DishOrderBody(order), requestID, order.OrderID)

	s.logger.Info("order_placed", "Order recorded", requestID, map[string]interface{}{
		"order_id":  order.OrderID,
		"menu_name": order.MenuName,
		"quantity":  quantity,
		"total":     line.Total.StringFixed(2),
	})

	msg := fmt.Sprintf("Your order for %d %s", quantity, entry.CanonicalName)
	if len(customizations) > 0 {
		msg += " with " + strings.Join(customizations, ", ")
	}
	msg += fmt.Sprintf(" has been placed. Subtotal %s, tax %s, total %s. Your order ID is %s.",
		pricing.FormatUSD(line.Subtotal), pricing.FormatUSD(line.TaxAmount),
		pricing.FormatUSD(line.Total), order.OrderID)
	return CloseResponse(intentName, StateFulfilled, msg)
}

func (s *Service) handleOrderFamilyDinner(ctx context.Context, event *Event, requestID string) *Response {
	intentName := event.SessionState.Intent.Name

	// Party size and style are optional; an absent size means the default
	// package.
	people := menu.DefaultDinnerPeople
	if peopleRaw := event.slotValue(SlotNumberOfPeople); peopleRaw != "" {
		n, err := strconv.Atoi(peopleRaw)
		if err != nil || n <= 0 {
			return CloseResponse(intentName, StateFailed,
				fmt.Sprintf("Sorry, %q is not a party size I can work with. Please give me a whole number.", peopleRaw))
		}
		people = n
	}

	style := event.slotValue(SlotFamilyDinnerStyle)
	pkg := menu.ResolveFamilyDinner(style, people)
	tax, total := pricing.CalculatePackage(pkg.Price)

	order := &models.Order{
		OrderID:           models.NewOrderID("FAM", s.now()),
		CreatedAt:         s.now().UTC(),
		OrderType:         models.OrderTypeFamilyDinner,
		DishName:          pkg.MenuName,
		MenuName:          pkg.MenuName,
		Quantity:          1,
		UnitPrice:         pkg.Price,
		Subtotal:          pkg.Price,
		TaxAmount:         tax,
		Total:             total,
		FamilyDinnerStyle: pkg.Style,
		NumberOfPeople:    pkg.People,
		RequestedPeople:   people,
		Dishes:            pkg.Dishes,
		Status:            models.StatusPending,
	}

	if err := s.store.Save(ctx, order); err != nil {
		s.logger.Error("order_save_failed", "Failed to persist family dinner order", requestID, err, map[string]interface{}{
			"order_id": order.OrderID,
		})
		return CloseResponse(intentName, StateFailed,
			"Sorry, we couldn't record your order. Please try again.")
	}

	s.notify(ctx, notify.FamilyDinnerBody(order), requestID, order.OrderID)

	s.logger.Info("order_placed", "Family dinner recorded", requestID, map[string]interface{}{
		"order_id":  order.OrderID,
		"menu_name": order.MenuName,
		"people":    pkg.People,
		"total":     total.StringFixed(2),
	})

	msg := fmt.Sprintf("Your %s", pkg.MenuName)
	if pkg.Resized(people) {
		if pkg.People > people {
			msg += fmt.Sprintf(" (upgraded from %d to %d people)", people, pkg.People)
		} else {
			msg += fmt.Sprintf(" (adjusted from %d to %d people)", people, pkg.People)
		}
	}
	msg += fmt.Sprintf(" has been placed. It includes %s. Package price %s, tax %s, total %s. Your order ID is %s.",
		strings.Join(pkg.Dishes, ", "),
		pricing.FormatUSD(pkg.Price), pricing.FormatUSD(tax),
		pricing.FormatUSD(total), order.OrderID)
	return CloseResponse(intentName, StateFulfilled, msg)
}

func (s *Service) handleGetPrice(ctx context.Context, event *Event, requestID string) *Response {
	intentName := event.SessionState.Intent.Name

	dishName := event.slotValue(SlotDishName)
	if dishName == "" {
		return CloseResponse(intentName, StateFulfilled,
			"Which dish would you like the price for?")
	}

	entry, found, err := s.source.Resolve(ctx, dishName)
	if err != nil {
		s.logger.Error("menu_lookup_failed", "Failed to resolve dish", requestID, err, map[string]interface{}{
			"dish_name": dishName,
		})
		return CloseResponse(intentName, StateFailed,
			"Sorry, something went wrong looking up the menu. Please try again.")
	}
	if !found {
		return CloseResponse(intentName, StateFulfilled,
			fmt.Sprintf("Sorry, I couldn't find %q on our menu.", dishName))
	}

	if entry.DisplayPrice != "" {
		return CloseResponse(intentName, StateFulfilled,
			fmt.Sprintf("%s is %s.", entry.CanonicalName, entry.DisplayPrice))
	}
	return CloseResponse(intentName, StateFulfilled,
		fmt.Sprintf("%s is %s.", entry.CanonicalName, pricing.FormatUSD(entry.Price)))
}

func (s *Service) handleCheckMenu(ctx context.Context, event *Event, requestID string) *Response {
	intentName := event.SessionState.Intent.Name

	dishName := event.slotValue(SlotDishName)
	if dishName == "" {
		return CloseResponse(intentName, StateFulfilled,
			"Popular items: Kung Pao Chicken $13.25, Beef with Broccoli $14.25, "+
				"Walnut Prawns $16.25, Sweet and Sour Chicken $13.25, House Special "+
				"Fried Rice $12.00. We also offer family dinners for 4, 6 or 8 people. "+
				"Ask me about any dish for details.")
	}

	entry, found, err := s.source.Resolve(ctx, dishName)
	if err != nil {
		s.logger.Error("menu_lookup_failed", "Failed to resolve dish", requestID, err, map[string]interface{}{
			"dish_name": dishName,
		})
		return CloseResponse(intentName, StateFailed,
			"Sorry, something went wrong looking up the menu. Please try again.")
	}
	if !found {
		return CloseResponse(intentName, StateFulfilled,
			fmt.Sprintf("Sorry, %q is not on our menu.", dishName))
	}

	price := entry.DisplayPrice
	if price == "" {
		price = pricing.FormatUSD(entry.Price)
	}
	msg := fmt.Sprintf("Yes, we have %s for %s.", entry.CanonicalName, price)
	if entry.Category != "" {
		msg = fmt.Sprintf("Yes, we have %s for %s in our %s section.", entry.CanonicalName, price, entry.Category)
	}
	return CloseResponse(intentName, StateFulfilled, msg)
}

// notify pushes the kitchen display message. Failures are logged and
// swallowed so a placed order never fails on notification delivery.
func (s *Service) notify(ctx context.Context, body, requestID, orderID string) {
	if s.notifier == nil {
		return
	}
	if err := s.notifier.Publish(ctx, notify.OrderTitle, body); err != nil {
		s.logger.Error("notification_failed", "Failed to push order notification", requestID, err, map[string]interface{}{
			"order_id": orderID,
		})
	}
}
