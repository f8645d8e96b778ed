package menu

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"
)

// DynamoAPI is the slice of the DynamoDB client the menu source uses.
type DynamoAPI interface {
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	BatchGetItem(ctx context.Context, params *dynamodb.BatchGetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.BatchGetItemOutput, error)
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
}

// DynamoSource resolves dishes from a DynamoDB table keyed by sample_name.
type DynamoSource struct {
	client DynamoAPI
	table  string
}

func NewDynamoSource(client DynamoAPI, table string) *DynamoSource {
	return &DynamoSource{client: client, table: table}
}

func (s *DynamoSource) Resolve(ctx context.Context, name string) (Entry, bool, error) {
	out, err := s.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(s.table),
		Key: map[string]types.AttributeValue{
			"sample_name": &types.AttributeValueMemberS{Value: Normalize(name)},
		},
	})
	if err != nil {
		return Entry{}, false, fmt.Errorf("failed to get menu item: %w", err)
	}
	if out.Item == nil {
		return Entry{}, false, nil
	}
	e, err := entryFromItem(out.Item)
	if err != nil {
		return Entry{}, false, err
	}
	return e, true, nil
}

func (s *DynamoSource) ResolveMany(ctx context.Context, names []string) (map[string]Entry, error) {
	byKey := make(map[string][]string, len(names))
	keys := make([]map[string]types.AttributeValue, 0, len(names))
	for _, name := range names {
		k := Normalize(name)
		if _, seen := byKey[k]; !seen {
			keys = append(keys, map[string]types.AttributeValue{
				"sample_name": &types.AttributeValueMemberS{Value: k},
			})
		}
		byKey[k] = append(byKey[k], name)
	}

	out := make(map[string]Entry, len(names))
	request := map[string]types.KeysAndAttributes{s.table: {Keys: keys}}
	for len(request) > 0 {
		resp, err := s.client.BatchGetItem(ctx, &dynamodb.BatchGetItemInput{
			RequestItems: request,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to batch get menu items: %w", err)
		}
		for _, item := range resp.Responses[s.table] {
			e, err := entryFromItem(item)
			if err != nil {
				return nil, err
			}
			key, _ := item["sample_name"].(*types.AttributeValueMemberS)
			if key == nil {
				continue
			}
			for _, name := range byKey[key.Value] {
				out[name] = e
			}
		}
		request = resp.UnprocessedKeys
	}
	return out, nil
}

// Put upserts one lookup row. Used by the menu loader.
func (s *DynamoSource) Put(ctx context.Context, sampleName string, e Entry) error {
	item := map[string]types.AttributeValue{
		"sample_name":    &types.AttributeValueMemberS{Value: sampleName},
		"canonical_name": &types.AttributeValueMemberS{Value: e.CanonicalName},
		"price":          &types.AttributeValueMemberN{Value: e.Price.StringFixed(2)},
		"category":       &types.AttributeValueMemberS{Value: e.Category},
	}
	if e.DisplayPrice != "" {
		item["display_price"] = &types.AttributeValueMemberS{Value: e.DisplayPrice}
	}
	_, err := s.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(s.table),
		Item:      item,
	})
	if err != nil {
		return fmt.Errorf("failed to put menu item %s: %w", sampleName, err)
	}
	return nil
}

func entryFromItem(item map[string]types.AttributeValue) (Entry, error) {
	var e Entry
	if v, ok := item["canonical_name"].(*types.AttributeValueMemberS); ok {
		e.CanonicalName = v.Value
	}
	if v, ok := item["category"].(*types.AttributeValueMemberS); ok {
		e.Category = v.Value
	}
	if v, ok := item["display_price"].(*types.AttributeValueMemberS); ok {
		e.DisplayPrice = v.Value
	}
	v, ok := item["price"].(*types.AttributeValueMemberN)
	if !ok {
		return Entry{}, fmt.Errorf("menu item %s has no price", e.CanonicalName)
	}
	p, err := decimal.NewFromString(v.Value)
	if err != nil {
		return Entry{}, fmt.Errorf("invalid price for %s: %w", e.CanonicalName, err)
	}
	e.Price = p
	return e, nil
}
