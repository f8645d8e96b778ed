// Package notification runs the kitchen display subscriber. It consumes
// order notifications from the fanout queue and renders them for the
// counter console.
package notification

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"cnres-bot/internal/logger"
	"cnres-bot/internal/messaging"
	"cnres-bot/internal/notify"
)

// Subscriber consumes order notifications and displays them.
type Subscriber struct {
	consumer *messaging.Consumer
	logger   *logger.Logger

	shutdown chan os.Signal
	done     chan bool
}

func NewSubscriber(consumer *messaging.Consumer, log *logger.Logger) *Subscriber {
	return &Subscriber{
		consumer: consumer,
		logger:   log,
		shutdown: make(chan os.Signal, 1),
		done:     make(chan bool, 1),
	}
}

// Start consumes until the context is cancelled or a shutdown signal
// arrives.
func (s *Subscriber) Start(ctx context.Context) error {
	requestID := logger.GenerateRequestID()

	signal.Notify(s.shutdown, syscall.SIGINT, syscall.SIGTERM)

	s.logger.Info("service_started", "Kitchen display subscriber started", requestID, nil)

	go func() {
		if err := s.consumer.StartConsuming(ctx, s.handleNotification); err != nil {
			s.logger.Error("consumer_failed", "Notification consumer failed", requestID, err, nil)
		}
		s.done <- true
	}()

	select {
	case <-s.shutdown:
		s.logger.Info("graceful_shutdown", "Received shutdown signal", requestID, nil)
		return s.consumer.Close()
	case <-s.done:
		return nil
	}
}

func (s *Subscriber) handleNotification(ctx context.Context, body []byte) error {
	requestID := logger.GenerateRequestID()

	var n notify.Notification
	if err := json.Unmarshal(body, &n); err != nil {
		s.logger.Error("message_parsing_failed", "Failed to parse notification message", requestID, err, nil)
		return fmt.Errorf("failed to parse notification: %w", err)
	}

	fmt.Println(FormatNotification(&n))

	s.logger.Info("notification_displayed", "Notification displayed", requestID, map[string]interface{}{
		"title":     n.Title,
		"timestamp": n.Timestamp.Format("2006-01-02 15:04:05"),
	})
	return nil
}

// FormatNotification renders one display line for the counter console.
func FormatNotification(n *notify.Notification) string {
	return fmt.Sprintf("[%s] %s: %s", n.Timestamp.Format("15:04:05"), n.Title, n.Body)
}
