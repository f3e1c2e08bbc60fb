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

const budgetItemsBudgetIDIndex = "budget_id-index"

type lineItemRecord struct {
	ID        string `dynamodbav:"id"`
	BudgetID  string `dynamodbav:"budget_id"`
	PartID    string `dynamodbav:"part_id"`
	PartName  string `dynamodbav:"part_name,omitempty"`
	Quantity  int    `dynamodbav:"quantity"`
	UnitPrice string `dynamodbav:"unit_price"`
	Subtotal  string `dynamodbav:"subtotal"`
	Position  int    `dynamodbav:"position"`
}

// BudgetItemDynamoRepository persists line items.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: budget_id-index (PK: budget_id)
type BudgetItemDynamoRepository struct {
	t table
}

var _ interfaces.IBudgetItemRepository = (*BudgetItemDynamoRepository)(nil)

func NewBudgetItemDynamoRepository(ddb *dynamodb.Client, tableName string) *BudgetItemDynamoRepository {
	return &BudgetItemDynamoRepository{t: table{ddb: ddb, name: tableName}}
}

func (r *BudgetItemDynamoRepository) Create(ctx context.Context, it entities.LineItem) (entities.LineItem, error) {
	if err := r.t.create(ctx, toLineItemRecord(it)); err != nil {
		return entities.LineItem{}, err
	}
	return it, nil
}

func (r *BudgetItemDynamoRepository) Update(ctx context.Context, it entities.LineItem) (entities.LineItem, error) {
	ok, err := r.t.replace(ctx, toLineItemRecord(it))
	if err != nil || !ok {
		return entities.LineItem{}, err
	}
	return it, nil
}

func (r *BudgetItemDynamoRepository) Delete(ctx context.Context, id string) error {
	return r.t.delete(ctx, id)
}

// ListByBudgetID returns the items of a budget in insertion order.
func (r *BudgetItemDynamoRepository) ListByBudgetID(ctx context.Context, budgetID string) ([]entities.LineItem, error) {
	records, err := queryAll[lineItemRecord](ctx, r.t.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.t.name),
		IndexName:              aws.String(budgetItemsBudgetIDIndex),
		KeyConditionExpression: aws.String("budget_id = :bid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":bid": &types.AttributeValueMemberS{Value: budgetID},
		},
	})
	if err != nil {
		return nil, err
	}

	out := make([]entities.LineItem, 0, len(records))
	for _, rec := range records {
		out = append(out, fromLineItemRecord(rec))
	}
	sortLineItems(out)
	return out, nil
}

func sortLineItems(items []entities.LineItem) {
	sort.SliceStable(items, func(i, j int) bool { return items[i].Position < items[j].Position })
}

func toLineItemRecord(it entities.LineItem) lineItemRecord {
	return lineItemRecord{
		ID:        it.ID,
		BudgetID:  it.BudgetID,
		PartID:    it.PartID,
		PartName:  it.PartName,
		Quantity:  it.Quantity,
		UnitPrice: formatDecimal(it.UnitPrice),
		Subtotal:  formatDecimal(it.Subtotal),
		Position:  it.Position,
	}
}

func fromLineItemRecord(rec lineItemRecord) entities.LineItem {
	return entities.LineItem{
		ID:        rec.ID,
		BudgetID:  rec.BudgetID,
		PartID:    rec.PartID,
		PartName:  rec.PartName,
		Quantity:  rec.Quantity,
		UnitPrice: parseDecimal(rec.UnitPrice),
		Subtotal:  parseDecimal(rec.Subtotal),
		Position:  rec.Position,
	}
}
