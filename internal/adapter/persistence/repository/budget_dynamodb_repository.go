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

const budgetsClientIDIndex = "client_id-index"

type budgetRecord struct {
	ID              string `dynamodbav:"id"`
	ClientID        string `dynamodbav:"client_id"`
	OperatorID      string `dynamodbav:"operator_id"`
	MotorID         string `dynamodbav:"motor_id"`
	Date            string `dynamodbav:"date"`
	TechnicalReport string `dynamodbav:"technical_report,omitempty"`
	Notes           string `dynamodbav:"notes,omitempty"`
	Status          string `dynamodbav:"status"`
	DiscountPercent string `dynamodbav:"discount_percent,omitempty"`
	Subtotal        string `dynamodbav:"subtotal"`
	DiscountValue   string `dynamodbav:"discount_value"`
	Total           string `dynamodbav:"total"`
	CreatedAt       string `dynamodbav:"created_at"`
	UpdatedAt       string `dynamodbav:"updated_at"`
}

// BudgetDynamoRepository persists the budget row in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: client_id-index (PK: client_id)
//
// Items and the motor live in their own tables; the row only keeps motor_id and the
// totals computed when it was last written.
type BudgetDynamoRepository struct {
	t table
}

var _ interfaces.IBudgetRepository = (*BudgetDynamoRepository)(nil)

func NewBudgetDynamoRepository(ddb *dynamodb.Client, tableName string) *BudgetDynamoRepository {
	return &BudgetDynamoRepository{t: table{ddb: ddb, name: tableName}}
}

func (r *BudgetDynamoRepository) Create(ctx context.Context, b entities.Budget) (entities.Budget, error) {
	if err := r.t.create(ctx, toBudgetRecord(b)); err != nil {
		return entities.Budget{}, err
	}
	return b, nil
}

func (r *BudgetDynamoRepository) GetByID(ctx context.Context, id string) (entities.Budget, error) {
	var rec budgetRecord
	found, err := r.t.get(ctx, id, &rec)
	if err != nil || !found {
		return entities.Budget{}, err
	}
	return fromBudgetRecord(rec), nil
}

// List returns matching rows, most recent date first. A client filter goes through the
// client_id GSI, everything else is a scan.
func (r *BudgetDynamoRepository) List(ctx context.Context, filter entities.BudgetFilter) ([]entities.Budget, error) {
	var (
		records []budgetRecord
		err     error
	)

	var filterExpr *string
	names := map[string]string{}
	values := map[string]types.AttributeValue{}
	if filter.Status != "" {
		filterExpr = aws.String("#status = :status")
		names["#status"] = "status"
		values[":status"] = &types.AttributeValueMemberS{Value: string(filter.Status)}
	}

	if filter.ClientID != "" {
		names["#client_id"] = "client_id"
		values[":cid"] = &types.AttributeValueMemberS{Value: filter.ClientID}
		records, err = queryAll[budgetRecord](ctx, r.t.ddb, &dynamodb.QueryInput{
			TableName:                 aws.String(r.t.name),
			IndexName:                 aws.String(budgetsClientIDIndex),
			KeyConditionExpression:    aws.String("#client_id = :cid"),
			FilterExpression:          filterExpr,
			ExpressionAttributeNames:  names,
			ExpressionAttributeValues: values,
		})
	} else {
		in := &dynamodb.ScanInput{TableName: aws.String(r.t.name)}
		if filterExpr != nil {
			in.FilterExpression = filterExpr
			in.ExpressionAttributeNames = names
			in.ExpressionAttributeValues = values
		}
		records, err = scanAll[budgetRecord](ctx, r.t.ddb, in)
	}
	if err != nil {
		return nil, err
	}

	out := make([]entities.Budget, 0, len(records))
	for _, rec := range records {
		out = append(out, fromBudgetRecord(rec))
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return out, nil
}

// Update replaces the row. A missing row yields the zero Budget.
func (r *BudgetDynamoRepository) Update(ctx context.Context, b entities.Budget) (entities.Budget, error) {
	ok, err := r.t.replace(ctx, toBudgetRecord(b))
	if err != nil || !ok {
		return entities.Budget{}, err
	}
	return b, nil
}

func (r *BudgetDynamoRepository) Delete(ctx context.Context, id string) error {
	return r.t.delete(ctx, id)
}

func toBudgetRecord(b entities.Budget) budgetRecord {
	return budgetRecord{
		ID:              b.ID,
		ClientID:        b.ClientID,
		OperatorID:      b.OperatorID,
		MotorID:         b.Motor.ID,
		Date:            formatTime(b.Date),
		TechnicalReport: b.TechnicalReport,
		Notes:           b.Notes,
		Status:          string(b.Status),
		DiscountPercent: formatOptionalDecimal(b.DiscountPercent),
		Subtotal:        formatDecimal(b.Subtotal),
		DiscountValue:   formatDecimal(b.DiscountValue),
		Total:           formatDecimal(b.Total),
		CreatedAt:       formatTime(b.CreatedAt),
		UpdatedAt:       formatTime(b.UpdatedAt),
	}
}

func fromBudgetRecord(rec budgetRecord) entities.Budget {
	return entities.Budget{
		ID:              rec.ID,
		ClientID:        rec.ClientID,
		OperatorID:      rec.OperatorID,
		Motor:           entities.Motor{ID: rec.MotorID},
		Date:            parseTime(rec.Date),
		TechnicalReport: rec.TechnicalReport,
		Notes:           rec.Notes,
		Status:          entities.BudgetStatus(rec.Status),
		DiscountPercent: parseOptionalDecimal(rec.DiscountPercent),
		Subtotal:        parseDecimal(rec.Subtotal),
		DiscountValue:   parseDecimal(rec.DiscountValue),
		Total:           parseDecimal(rec.Total),
		CreatedAt:       parseTime(rec.CreatedAt),
		UpdatedAt:       parseTime(rec.UpdatedAt),
	}
}
