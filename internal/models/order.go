package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order types.
const (
	OrderTypeDish         = "Dish"
	OrderTypeFamilyDinner = "FamilyDinner"
)

// StatusPending is the status every new order is recorded with.
const StatusPending = "Pending"

// Order is one persisted order record. Dish orders fill the quantity and
// customization fields; family dinner orders fill the style, people and
// dish list fields and carry a flat package price.
type Order struct {
	OrderID        string          `json:"order_id"`
	CreatedAt      time.Time       `json:"created_at"`
	OrderType      string          `json:"order_type"`
	DishName       string          `json:"dish_name"`
	MenuName       string          `json:"menu_name"`
	Quantity       int             `json:"quantity"`
	Customizations []string        `json:"customizations,omitempty"`
	UnitPrice      decimal.Decimal `json:"unit_price"`
	Subtotal       decimal.Decimal `json:"subtotal"`
	TaxAmount      decimal.Decimal `json:"tax_amount"`
	Total          decimal.Decimal `json:"total"`

	FamilyDinnerStyle string   `json:"family_dinner_style,omitempty"`
	NumberOfPeople    int      `json:"number_of_people,omitempty"`
	RequestedPeople   int      `json:"requested_people,omitempty"`
	Dishes            []string `json:"dishes,omitempty"`

	Status string `json:"status"`
}

// NewOrderID builds a timestamp order ID like ORD-20250713213045.
func NewOrderID(prefix string, now time.Time) string {
	return prefix + "-" + now.Format("20060102150405")
}
