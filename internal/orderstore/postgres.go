package orderstore

import (
	"context"
	"fmt"

	"cnres-bot/internal/database"
	"cnres-bot/internal/models"
)

// PostgresStore writes orders to the orders table.
type PostgresStore struct {
	db *database.DB
}

func NewPostgresStore(db *database.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) Save(ctx context.Context, order *models.Order) error {
	err := s.db.Exec(ctx,
		`INSERT INTO orders (
		     order_id, created_at, order_type, dish_name, menu_name,
		     quantity, customizations, unit_price, subtotal, tax_amount, total,
		     family_dinner_style, number_of_people, requested_people, dishes, status
		 ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`,
		order.OrderID,
		order.CreatedAt,
		order.OrderType,
		order.DishName,
		order.MenuName,
		order.Quantity,
		order.Customizations,
		order.UnitPrice.StringFixed(2),
		order.Subtotal.StringFixed(2),
		order.TaxAmount.StringFixed(2),
		order.Total.StringFixed(2),
		order.FamilyDinnerStyle,
		order.NumberOfPeople,
		order.RequestedPeople,
		order.Dishes,
		order.Status,
	)
	if err != nil {
		return fmt.Errorf("failed to insert order %s: %w", order.OrderID, err)
	}
	return nil
}
