// Package orderstore persists order records.
package orderstore

import (
	"context"

	"cnres-bot/internal/models"
)

// Store saves completed order records. A save failure fails the order.
type Store interface {
	Save(ctx context.Context, order *models.Order) error
}
