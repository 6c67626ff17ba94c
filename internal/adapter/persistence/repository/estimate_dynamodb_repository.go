package repository

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"cabinet_kiosk/internal/domain/entities"
	"cabinet_kiosk/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultEstimatesTableName = "estimates"

// estimateItem is the flat DynamoDB projection. The seven line-item
// collections travel as one JSON document so insertion order survives
// round-trips; monetary fields are stored as formatted strings.
type estimateItem struct {
	ID                    string `dynamodbav:"id"`
	CustomerName          string `dynamodbav:"customer_name,omitempty"`
	CustomerEmail         string `dynamodbav:"customer_email,omitempty"`
	Items                 string `dynamodbav:"items"`
	CabinetTotal          string `dynamodbav:"cabinet_total"`
	DoorTotal             string `dynamodbav:"door_total"`
	FlooringTotal         string `dynamodbav:"flooring_total"`
	CountertopTotal       string `dynamodbav:"countertop_total"`
	HardwareTotal         string `dynamodbav:"hardware_total"`
	VanityTotal           string `dynamodbav:"vanity_total"`
	KitchenTotal          string `dynamodbav:"kitchen_total"`
	Subtotal              string `dynamodbav:"subtotal"`
	MarkupLabel           string `dynamodbav:"markup_label,omitempty"`
	MarkupRate            string `dynamodbav:"markup_rate"`
	MarkupAmount          string `dynamodbav:"markup_amount"`
	InstallationRequested bool   `dynamodbav:"installation_requested"`
	InstallationCost      string `dynamodbav:"installation_cost"`
	GrandTotal            string `dynamodbav:"grand_total"`
	Status                string `dynamodbav:"status"`
	CreatedAt             string `dynamodbav:"created_at"`
	UpdatedAt             string `dynamodbav:"updated_at"`
}

// EstimateDynamoRepository persists Estimate entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)

type EstimateDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IEstimateRepository = (*EstimateDynamoRepository)(nil)

func NewEstimateDynamoRepository(ddb *dynamodb.Client) *EstimateDynamoRepository {
	return &EstimateDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("ESTIMATES_TABLE", defaultEstimatesTableName),
	}
}

func (r *EstimateDynamoRepository) Create(ctx context.Context, e entities.Estimate) (entities.Estimate, error) {
	it, err := toEstimateItem(e)
	if err != nil {
		return entities.Estimate{}, err
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Estimate{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Estimate{}, err
	}
	return e, nil
}

func (r *EstimateDynamoRepository) GetByID(ctx context.Context, id string) (entities.Estimate, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Estimate{}, err
	}
	if len(out.Item) == 0 {
		return entities.Estimate{}, nil
	}

	var it estimateItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Estimate{}, err
	}
	return fromEstimateItem(it)
}

func (r *EstimateDynamoRepository) UpdateStatusByID(ctx context.Context, id string, status entities.EstimateStatus) (entities.Estimate, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #status = :status, #updated_at = :updated_at"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status":     &types.AttributeValueMemberS{Value: string(status)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		},
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#status":     "status",
			"#updated_at": "updated_at",
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Estimate{}, nil
		}
		return entities.Estimate{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Estimate{}, nil
	}
	var it estimateItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Estimate{}, err
	}
	return fromEstimateItem(it)
}

func toEstimateItem(e entities.Estimate) (estimateItem, error) {
	itemsJSON, err := json.Marshal(e.ItemSet)
	if err != nil {
		return estimateItem{}, err
	}
	return estimateItem{
		ID:                    e.ID,
		CustomerName:          e.CustomerName,
		CustomerEmail:         e.CustomerEmail,
		Items:                 string(itemsJSON),
		CabinetTotal:          floatToString(e.CabinetTotal),
		DoorTotal:             floatToString(e.DoorTotal),
		FlooringTotal:         floatToString(e.FlooringTotal),
		CountertopTotal:       floatToString(e.CountertopTotal),
		HardwareTotal:         floatToString(e.HardwareTotal),
		VanityTotal:           floatToString(e.VanityTotal),
		KitchenTotal:          floatToString(e.KitchenTotal),
		Subtotal:              floatToString(e.Subtotal),
		MarkupLabel:           e.MarkupLabel,
		MarkupRate:            floatToString(e.MarkupRate),
		MarkupAmount:          floatToString(e.MarkupAmount),
		InstallationRequested: e.InstallationRequested,
		InstallationCost:      floatToString(e.InstallationCost),
		GrandTotal:            floatToString(e.GrandTotal),
		Status:                string(e.Status),
		CreatedAt:             e.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:             e.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}, nil
}

func fromEstimateItem(it estimateItem) (entities.Estimate, error) {
	var items entities.ItemSet
	if it.Items != "" {
		if err := json.Unmarshal([]byte(it.Items), &items); err != nil {
			return entities.Estimate{}, err
		}
	}
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)

	return entities.Estimate{
		ID:            it.ID,
		CustomerName:  it.CustomerName,
		CustomerEmail: it.CustomerEmail,
		ItemSet:       items,
		TotalsBreakdown: entities.TotalsBreakdown{
			CabinetTotal:          stringToFloat(it.CabinetTotal),
			DoorTotal:             stringToFloat(it.DoorTotal),
			FlooringTotal:         stringToFloat(it.FlooringTotal),
			CountertopTotal:       stringToFloat(it.CountertopTotal),
			HardwareTotal:         stringToFloat(it.HardwareTotal),
			VanityTotal:           stringToFloat(it.VanityTotal),
			KitchenTotal:          stringToFloat(it.KitchenTotal),
			Subtotal:              stringToFloat(it.Subtotal),
			MarkupLabel:           it.MarkupLabel,
			MarkupRate:            stringToFloat(it.MarkupRate),
			MarkupAmount:          stringToFloat(it.MarkupAmount),
			InstallationRequested: it.InstallationRequested,
			InstallationCost:      stringToFloat(it.InstallationCost),
			GrandTotal:            stringToFloat(it.GrandTotal),
		},
		Status:    entities.EstimateStatus(it.Status),
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}, nil
}

func floatToString(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func stringToFloat(s string) float64 {
	v, _ := strconv.ParseFloat(s, 64)
	return v
}
