// Package notify delivers kitchen display notifications for new orders.
package notify

import (
	"context"
	"fmt"
	"strings"
	"time"

	"cnres-bot/internal/models"
)

// Notifier pushes one notification. Delivery failures must not fail the
// order that triggered them; callers log and move on.
type Notifier interface {
	Publish(ctx context.Context, title, body string) error
}

// Notification is the message published for each new order.
type Notification struct {
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	Timestamp time.Time `json:"timestamp"`
}

// OrderTitle is the push title for every new order.
const OrderTitle = "New Order"

// DishOrderBody renders the kitchen display line for a dish order. The
// display hardware shows Chinese.
func DishOrderBody(order *models.Order) string {
	var b strings.Builder
	fmt.Fprintf(&b, "菜品名称: %s, 数量: %d", order.MenuName, order.Quantity)
	if len(order.Customizations) > 0 {
		fmt.Fprintf(&b, ", 定制: %s", strings.Join(order.Customizations, ", "))
	}
	b.WriteString(", 状态: 待处理")
	return b.String()
}

// FamilyDinnerBody renders the kitchen display line for a family dinner.
func FamilyDinnerBody(order *models.Order) string {
	return fmt.Sprintf("家庭套餐: %s, 人数: %d, 状态: 待处理",
		order.MenuName, order.NumberOfPeople)
}
