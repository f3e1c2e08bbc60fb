package repository

import (
	"context"
	"sort"

	"rebobinagem/internal/domain/entities"
	"rebobinagem/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const paymentsBudgetIDIndex = "budget_id-index"

type billingPaymentRecord struct {
	ID           string                 `dynamodbav:"id"`
	BudgetID     string                 `dynamodbav:"budget_id"`
	Amount       string                 `dynamodbav:"amount"`
	Date         string                 `dynamodbav:"date"`
	Status       string                 `dynamodbav:"status"`
	CollectedBy  string                 `dynamodbav:"collected_by,omitempty"`
	MPPayload    map[string]interface{} `dynamodbav:"mp_payload,omitempty"`
	MPPayloadRaw string                 `dynamodbav:"mp_payload_raw,omitempty"`
}

// BillingPaymentDynamoRepository persists BillingPayment entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: budget_id-index (PK: budget_id)

type BillingPaymentDynamoRepository struct {
	t table
}

var _ interfaces.IBillingPaymentRepository = (*BillingPaymentDynamoRepository)(nil)

func NewBillingPaymentDynamoRepository(ddb *dynamodb.Client, tableName string) *BillingPaymentDynamoRepository {
	return &BillingPaymentDynamoRepository{t: table{ddb: ddb, name: tableName}}
}

func (r *BillingPaymentDynamoRepository) Create(ctx context.Context, p entities.BillingPayment) (entities.BillingPayment, error) {
	if err := r.t.create(ctx, toBillingPaymentRecord(p)); err != nil {
		return entities.BillingPayment{}, err
	}
	return p, nil
}

func (r *BillingPaymentDynamoRepository) GetByID(ctx context.Context, id string) (entities.BillingPayment, error) {
	var rec billingPaymentRecord
	found, err := r.t.get(ctx, id, &rec)
	if err != nil || !found {
		return entities.BillingPayment{}, err
	}
	return fromBillingPaymentRecord(rec), nil
}

// ListByBudgetID returns the payments of a budget, oldest first.
func (r *BillingPaymentDynamoRepository) ListByBudgetID(ctx context.Context, budgetID string) ([]entities.BillingPayment, error) {
	records, err := queryAll[billingPaymentRecord](ctx, r.t.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.t.name),
		IndexName:              aws.String(paymentsBudgetIDIndex),
		KeyConditionExpression: aws.String("budget_id = :bid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":bid": &types.AttributeValueMemberS{Value: budgetID},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.BillingPayment, 0, len(records))
	for _, rec := range records {
		items = append(items, fromBillingPaymentRecord(rec))
	}
	sort.SliceStable(items, func(i, j int) bool { return items[i].Date.Before(items[j].Date) })
	return items, nil
}

func toBillingPaymentRecord(p entities.BillingPayment) billingPaymentRecord {
	return billingPaymentRecord{
		ID:           p.ID,
		BudgetID:     p.BudgetID,
		Amount:       formatDecimal(p.Amount),
		Date:         formatTime(p.Date),
		Status:       string(p.Status),
		CollectedBy:  p.CollectedBy,
		MPPayload:    p.ProviderPayload,
		MPPayloadRaw: string(p.ProviderPayloadRaw),
	}
}

func fromBillingPaymentRecord(rec billingPaymentRecord) entities.BillingPayment {
	return entities.BillingPayment{
		ID:                 rec.ID,
		BudgetID:           rec.BudgetID,
		Amount:             parseDecimal(rec.Amount),
		Date:               parseTime(rec.Date),
		Status:             entities.PaymentStatus(rec.Status),
		CollectedBy:        rec.CollectedBy,
		ProviderPayload:    rec.MPPayload,
		ProviderPayloadRaw: []byte(rec.MPPayloadRaw),
	}
}
