// The lambda binary serves bot fulfillment events from AWS Lambda,
// backed by DynamoDB and SNS push. Table names and the push endpoint
// come from the function environment.
package main

import (
	"context"
	"os"

	"github.com/aws/aws-lambda-go/lambda"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/sns"

	"cnres-bot/internal/logger"
	"cnres-bot/internal/menu"
	"cnres-bot/internal/notify"
	"cnres-bot/internal/orderstore"
	"cnres-bot/internal/services/fulfillment"
)

func main() {
	log := logger.New("fulfillment-lambda")
	requestID := logger.GenerateRequestID()

	ctx := context.Background()
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		log.Error("startup_failed", "Failed to load AWS config", requestID, err, nil)
		os.Exit(1)
	}

	ordersTable := envOr("ORDERS_TABLE", "cnres0_orders")
	menuTable := envOr("MENU_TABLE", "RestaurantMenuOptimized")

	client := dynamodb.NewFromConfig(awsCfg)
	source := menu.NewDynamoSource(client, menuTable)
	store := orderstore.NewDynamoStore(client, ordersTable)

	var notifier notify.Notifier
	if targetARN := os.Getenv("SNS_TARGET_ARN"); targetARN != "" {
		notifier = notify.NewSNSNotifier(sns.NewFromConfig(awsCfg), targetARN)
	}

	service := fulfillment.NewService(source, store, notifier, log)

	log.Info("service_started", "Fulfillment lambda ready", requestID, map[string]interface{}{
		"orders_table": ordersTable,
		"menu_table":   menuTable,
	})

	lambda.Start(func(ctx context.Context, event *fulfillment.Event) (*fulfillment.Response, error) {
		return service.HandleEvent(ctx, event, logger.GenerateRequestID()), nil
	})
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
