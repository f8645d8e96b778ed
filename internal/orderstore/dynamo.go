package orderstore

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"cnres-bot/internal/models"
)

// DynamoAPI is the slice of the DynamoDB client the order store uses.
type DynamoAPI interface {
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
}

// DynamoStore writes orders to a DynamoDB table keyed by order_id.
type DynamoStore struct {
	client DynamoAPI
	table  string
}

func NewDynamoStore(client DynamoAPI, table string) *DynamoStore {
	return &DynamoStore{client: client, table: table}
}

func (s *DynamoStore) Save(ctx context.Context, order *models.Order) error {
	item := map[string]types.AttributeValue{
		"order_id":   &types.AttributeValueMemberS{Value: order.OrderID},
		"created_at": &types.AttributeValueMemberS{Value: order.CreatedAt.Format(time.RFC3339)},
		"order_type": &types.AttributeValueMemberS{Value: order.OrderType},
		"dish_name":  &types.AttributeValueMemberS{Value: order.DishName},
		"menu_name":  &types.AttributeValueMemberS{Value: order.MenuName},
		"quantity":   &types.AttributeValueMemberN{Value: strconv.Itoa(order.Quantity)},
		"unit_price": &types.AttributeValueMemberN{Value: order.UnitPrice.StringFixed(2)},
		"subtotal":   &types.AttributeValueMemberN{Value: order.Subtotal.StringFixed(2)},
		"tax_amount": &types.AttributeValueMemberN{Value: order.TaxAmount.StringFixed(2)},
		"total":      &types.AttributeValueMemberN{Value: order.Total.StringFixed(2)},
		"status":     &types.AttributeValueMemberS{Value: order.Status},
	}
	if len(order.Customizations) > 0 {
		item["customizations"] = &types.AttributeValueMemberSS{Value: order.Customizations}
	}
	if order.OrderType == models.OrderTypeFamilyDinner {
		item["family_dinner_style"] = &types.AttributeValueMemberS{Value: order.FamilyDinnerStyle}
		item["number_of_people"] = &types.AttributeValueMemberN{Value: strconv.Itoa(order.NumberOfPeople)}
		item["requested_people"] = &types.AttributeValueMemberN{Value: strconv.Itoa(order.RequestedPeople)}
		dishes := make([]types.AttributeValue, len(order.Dishes))
		for i, dish := range order.Dishes {
			dishes[i] = &types.AttributeValueMemberS{Value: dish}
		}
		item["dishes"] = &types.AttributeValueMemberL{Value: dishes}
	}

	_, err := s.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(s.table),
		Item:      item,
	})
	if err != nil {
		return fmt.Errorf("failed to put order %s: %w", order.OrderID, err)
	}
	return nil
}
