// Package order exposes a direct ordering API for callers that do not go
// through the bot, such as the phone staff tablet.
package order

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"cnres-bot/internal/logger"
	"cnres-bot/internal/menu"
	"cnres-bot/internal/models"
	"cnres-bot/internal/notify"
	"cnres-bot/internal/orderstore"
	"cnres-bot/internal/pricing"
)

// Request is one multi-line order submission.
type Request struct {
	Lines []RequestLine `json:"lines"`
}

type RequestLine struct {
	DishName       string   `json:"dish_name"`
	Quantity       int      `json:"quantity"`
	Customizations []string `json:"customizations,omitempty"`
}

// ValidationError reports a malformed request.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

// Validate checks the request before any menu lookup.
func (r *Request) Validate() error {
	if len(r.Lines) == 0 {
		return &ValidationError{Reason: "order has no lines"}
	}
	for i, line := range r.Lines {
		if line.DishName == "" {
			return &ValidationError{Reason: fmt.Sprintf("line %d has no dish name", i+1)}
		}
		if line.Quantity <= 0 {
			return &ValidationError{Reason: fmt.Sprintf("line %d has invalid quantity %d", i+1, line.Quantity)}
		}
	}
	return nil
}

// Response reports the priced order.
type Response struct {
	OrderID  string         `json:"order_id"`
	Lines    []ResponseLine `json:"lines"`
	Subtotal string         `json:"subtotal"`
	Tax      string         `json:"tax"`
	Total    string         `json:"total"`
	Status   string         `json:"status"`
}

type ResponseLine struct {
	DishName string `json:"dish_name"`
	MenuName string `json:"menu_name"`
	Quantity int    `json:"quantity"`
	Subtotal string `json:"subtotal"`
}

// UnknownDishError reports order lines that matched nothing on the menu.
// The whole order is rejected so a partial ticket never reaches the
// kitchen.
type UnknownDishError struct {
	Dishes []string
}

func (e *UnknownDishError) Error() string {
	return fmt.Sprintf("unknown dishes: %v", e.Dishes)
}

// Service prices and records multi-line orders.
type Service struct {
	source   menu.Source
	store    orderstore.Store
	notifier notify.Notifier
	logger   *logger.Logger

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

// CreateOrder resolves every line in one batch, prices the order and
// records one row per line under a shared order ID. Tax is computed on
// the exact subtotal and rounded once.
func (s *Service) CreateOrder(ctx context.Context, req *Request, requestID string) (*Response, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	names := make([]string, len(req.Lines))
	for i, line := range req.Lines {
		names[i] = line.DishName
	}
	resolved, err := s.source.ResolveMany(ctx, names)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve order lines: %w", err)
	}

	var unknown []string
	for _, name := range names {
		if _, ok := resolved[name]; !ok {
			unknown = append(unknown, name)
		}
	}
	if len(unknown) > 0 {
		return nil, &UnknownDishError{Dishes: unknown}
	}

	orderID := models.NewOrderID("ORD", s.now())
	createdAt := s.now().UTC()
	subtotal := decimal.Zero
	resp := &Response{OrderID: orderID, Status: models.StatusPending}

	for i, line := range req.Lines {
		entry := resolved[line.DishName]
		priced := pricing.CalculateLine(entry, line.Quantity, line.Customizations)
		subtotal = subtotal.Add(priced.Subtotal)

		record := &models.Order{
			OrderID:        fmt.Sprintf("%s-%d", orderID, i+1),
			CreatedAt:      createdAt,
			OrderType:      models.OrderTypeDish,
			DishName:       line.DishName,
			MenuName:       entry.CanonicalName,
			Quantity:       line.Quantity,
			Customizations: line.Customizations,
			UnitPrice:      priced.UnitPrice,
			Subtotal:       priced.Subtotal,
			TaxAmount:      priced.TaxAmount,
			Total:          priced.Total,
			Status:         models.StatusPending,
		}
		if err := s.store.Save(ctx, record); err != nil {
			return nil, fmt.Errorf("failed to record order line %d: %w", i+1, err)
		}

		resp.Lines = append(resp.Lines, ResponseLine{
			DishName: line.DishName,
			MenuName: entry.CanonicalName,
			Quantity: line.Quantity,
			Subtotal: priced.Subtotal.StringFixed(2),
		})

		s.pushNotification(ctx, record, requestID)
	}

	tax := subtotal.Mul(pricing.TaxRate)
	resp.Subtotal = subtotal.StringFixed(2)
	resp.Tax = tax.StringFixed(2)
	resp.Total = subtotal.Add(tax).StringFixed(2)

	s.logger.Info("order_placed", "Multi line order recorded", requestID, map[string]interface{}{
		"order_id": orderID,
		"lines":    len(req.Lines),
		"total":    resp.Total,
	})
	return resp, nil
}

func (s *Service) pushNotification(ctx context.Context, record *models.Order, requestID string) {
	if s.notifier == nil {
		return
	}
	if err := s.notifier.Publish(ctx, notify.OrderTitle, notify.DishOrderBody(record)); err != nil {
		s.logger.Error("notification_failed", "Failed to push order notification", requestID, err, map[string]interface{}{
			"order_id": record.OrderID,
		})
	}
}
