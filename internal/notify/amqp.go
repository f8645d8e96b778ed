package notify

import (
	"context"
	"time"

	"cnres-bot/internal/messaging"
)

// AMQPNotifier fans notifications out to kitchen display subscribers
// through RabbitMQ.
type AMQPNotifier struct {
	publisher *messaging.Publisher
}

func NewAMQPNotifier(publisher *messaging.Publisher) *AMQPNotifier {
	return &AMQPNotifier{publisher: publisher}
}

func (n *AMQPNotifier) Publish(ctx context.Context, title, body string) error {
	return n.publisher.PublishNotification(ctx, Notification{
		Title:     title,
		Body:      body,
		Timestamp: time.Now().UTC(),
	})
}
