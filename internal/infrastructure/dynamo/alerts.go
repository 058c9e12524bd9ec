package dynamo

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/sheisstarwithoutmoon/SafeLink/internal/domain"
	"github.com/sheisstarwithoutmoon/SafeLink/internal/pkg/id"
)

const recencyIndex = "record_type-created_at-index"

// createdAtFormat is fixed-width: created_at is the GSI range key, and
// RFC3339Nano trims trailing fractional zeros, which makes lexical string
// order diverge from time order. Every digit is always emitted.
const createdAtFormat = "2006-01-02T15:04:05.000000000Z"

func encodeCreatedAt(ts time.Time) string {
	return ts.UTC().Format(createdAtFormat)
}

// AlertRepo provides typed DynamoDB operations for the alerts table.
// The table is append-only: records are written once and never updated.
type AlertRepo struct {
	client    *dynamodb.Client
	tableName string
}

func NewAlertRepo(client *dynamodb.Client, tableName string) *AlertRepo {
	return &AlertRepo{client: client, tableName: tableName}
}

// Put writes one dispatch-attempt record. The record id and creation time
// are assigned here, at the store boundary, never by the caller.
func (r *AlertRepo) Put(ctx context.Context, rec *domain.AlertRecord) error {
	rec.AlertID = id.New()
	rec.RecordType = domain.AlertRecordType
	rec.CreatedAt = time.Now().UTC()

	item, err := attributevalue.MarshalMap(rec)
	if err != nil {
		return fmt.Errorf("marshal alert record: %w", err)
	}
	item["created_at"] = &types.AttributeValueMemberS{Value: encodeCreatedAt(rec.CreatedAt)}

	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      item,
	})
	return err
}

// ListRecent queries the record_type-created_at GSI newest-first.
func (r *AlertRepo) ListRecent(ctx context.Context, limit int32) ([]domain.AlertRecord, error) {
	out, err := r.client.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(recencyIndex),
		KeyConditionExpression: aws.String("record_type = :t"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":t": &types.AttributeValueMemberS{Value: domain.AlertRecordType},
		},
		ScanIndexForward: aws.Bool(false),
		Limit:            aws.Int32(limit),
	})
	if err != nil {
		return nil, err
	}
	var records []domain.AlertRecord
	if err := attributevalue.UnmarshalListOfMaps(out.Items, &records); err != nil {
		return nil, err
	}
	return records, nil
}
