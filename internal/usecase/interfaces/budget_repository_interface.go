package interfaces

import (
	"context"
	"rebobinagem/internal/domain/entities"
)

// IBudgetRepository abstracts DynamoDB persistence for the budget row.
//
// The row keeps the motor id, the totals and the status; items and the motor itself
// live in their own tables. A missing row is reported as the zero Budget.

type IBudgetRepository interface {
	Create(ctx context.Context, b entities.Budget) (entities.Budget, error)
	GetByID(ctx context.Context, id string) (entities.Budget, error)
	List(ctx context.Context, filter entities.BudgetFilter) ([]entities.Budget, error)
	Update(ctx context.Context, b entities.Budget) (entities.Budget, error)
	Delete(ctx context.Context, id string) error
}

// IBudgetItemRepository abstracts persistence for budget line items.
type IBudgetItemRepository interface {
	Create(ctx context.Context, it entities.LineItem) (entities.LineItem, error)
	Update(ctx context.Context, it entities.LineItem) (entities.LineItem, error)
	Delete(ctx context.Context, id string) error
	ListByBudgetID(ctx context.Context, budgetID string) ([]entities.LineItem, error)
}

// IMotorRepository abstracts persistence for the motor attached to a budget.
type IMotorRepository interface {
	Create(ctx context.Context, m entities.Motor) (entities.Motor, error)
	GetByID(ctx context.Context, id string) (entities.Motor, error)
	Update(ctx context.Context, m entities.Motor) (entities.Motor, error)
	Delete(ctx context.Context, id string) error
}
