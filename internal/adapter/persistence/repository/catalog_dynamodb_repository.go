package repository

import (
	"context"

	"cabinet_kiosk/internal/domain/entities"
	"cabinet_kiosk/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultCatalogTableName = "catalog"

type catalogItemRecord struct {
	Category  string  `dynamodbav:"category"`
	Name      string  `dynamodbav:"name"`
	UnitPrice float64 `dynamodbav:"unit_price"`
}

// CatalogDynamoRepository reads the kiosk price list from DynamoDB. The
// catalog is maintained by the admin side of the kiosk; this service only
// ever reads it.
//
// Table requirements:
//   - PK: category (string), SK: name (string)

type CatalogDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ICatalogService = (*CatalogDynamoRepository)(nil)

func NewCatalogDynamoRepository(ddb *dynamodb.Client) *CatalogDynamoRepository {
	return &CatalogDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("CATALOG_TABLE", defaultCatalogTableName),
	}
}

func (r *CatalogDynamoRepository) UnitPrice(ctx context.Context, category entities.Category, name string) (float64, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"category": &types.AttributeValueMemberS{Value: string(category)},
			"name":     &types.AttributeValueMemberS{Value: name},
		},
	})
	if err != nil {
		return 0, err
	}
	if len(out.Item) == 0 {
		return 0, interfaces.ErrPriceNotFound
	}

	var it catalogItemRecord
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return 0, err
	}
	return it.UnitPrice, nil
}

func (r *CatalogDynamoRepository) ListCategory(ctx context.Context, category entities.Category) ([]entities.CatalogItem, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		KeyConditionExpression: aws.String("category = :cat"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":cat": &types.AttributeValueMemberS{Value: string(category)},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.CatalogItem, 0, len(out.Items))
	for _, raw := range out.Items {
		var it catalogItemRecord
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, entities.CatalogItem{Name: it.Name, UnitPrice: it.UnitPrice})
	}
	return items, nil
}
