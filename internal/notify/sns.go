package notify

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sns"
)

// SNSAPI is the slice of the SNS client the notifier uses.
type SNSAPI interface {
	Publish(ctx context.Context, params *sns.PublishInput, optFns ...func(*sns.Options)) (*sns.PublishOutput, error)
}

// SNSNotifier pushes to the kitchen display iPad through an APNS
// platform endpoint.
type SNSNotifier struct {
	client    SNSAPI
	targetARN string
}

func NewSNSNotifier(client SNSAPI, targetARN string) *SNSNotifier {
	return &SNSNotifier{client: client, targetARN: targetARN}
}

func (n *SNSNotifier) Publish(ctx context.Context, title, body string) error {
	message, err := BuildAPNSPayload(title, body)
	if err != nil {
		return err
	}
	_, err = n.client.Publish(ctx, &sns.PublishInput{
		TargetArn:        aws.String(n.targetARN),
		MessageStructure: aws.String("json"),
		Message:          aws.String(message),
	})
	if err != nil {
		return fmt.Errorf("failed to publish push notification: %w", err)
	}
	return nil
}

type apnsAlert struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

type apnsAps struct {
	Alert apnsAlert `json:"alert"`
	Sound string    `json:"sound"`
	Badge int       `json:"badge"`
}

// BuildAPNSPayload wraps a title and body in the SNS json message
// structure the APNS sandbox endpoint expects: the APNS_SANDBOX field
// carries the aps dictionary as an embedded JSON string.
func BuildAPNSPayload(title, body string) (string, error) {
	inner, err := json.Marshal(struct {
		Aps apnsAps `json:"aps"`
	}{
		Aps: apnsAps{
			Alert: apnsAlert{Title: title, Body: body},
			Sound: "default",
			Badge: 1,
		},
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal aps payload: %w", err)
	}

	payload, err := json.Marshal(map[string]string{
		"default":      "New order notification",
		"APNS_SANDBOX": string(inner),
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal push payload: %w", err)
	}
	return string(payload), nil
}
