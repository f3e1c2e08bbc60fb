package budgeting

import (
	"time"

	"rebobinagem/internal/domain/entities"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var now = func() time.Time { return time.Now().UTC() }

// ItemSpec describes a line item requested at creation time.
type ItemSpec struct {
	PartID    string
	PartName  string
	Quantity  int
	UnitPrice decimal.Decimal
}

// NewBudgetInput carries everything needed to open a budget.
type NewBudgetInput struct {
	ClientID        string
	OperatorID      string
	Motor           entities.Motor
	Items           []ItemSpec
	DiscountPercent *decimal.Decimal
	TechnicalReport string
	Notes           string
	Date            time.Time
}

// Engine composes the ledger, the discount policy and the status machine into pure
// operations over budget snapshots. Every method works on a copy and returns the new
// snapshot; the input is never modified, and on error the zero Budget is returned.
type Engine struct {
	Discounts DiscountPolicy
	Statuses  StatusMachine
}

func NewEngine(discounts DiscountPolicy) Engine {
	return Engine{Discounts: discounts, Statuses: NewStatusMachine()}
}

// NewBudget validates the discount for role and every item, then builds a budget in its
// initial status with consistent totals.
func (e Engine) NewBudget(role entities.Role, in NewBudgetInput) (entities.Budget, error) {
	if err := e.Discounts.Validate(role, in.DiscountPercent); err != nil {
		return entities.Budget{}, err
	}

	ts := now()
	id := uuid.NewString()
	ledger := NewLedger(id, nil)
	for _, spec := range in.Items {
		if _, err := ledger.Add(spec.PartID, spec.PartName, spec.Quantity, spec.UnitPrice); err != nil {
			return entities.Budget{}, err
		}
	}

	motor := in.Motor
	motor.ID = uuid.NewString()
	motor.CreatedAt = ts

	date := in.Date
	if date.IsZero() {
		date = ts
	}

	b := entities.Budget{
		ID:              id,
		ClientID:        in.ClientID,
		OperatorID:      in.OperatorID,
		Motor:           motor,
		Items:           ledger.Items(),
		Date:            date,
		TechnicalReport: in.TechnicalReport,
		Notes:           in.Notes,
		Status:          InitialStatus(ledger.Len()),
		DiscountPercent: NormalizeDiscount(in.DiscountPercent),
		CreatedAt:       ts,
		UpdatedAt:       ts,
	}
	Recalculate(&b)
	return b, nil
}

// AddItem appends an item and returns the refreshed snapshot with the new item.
func (e Engine) AddItem(b entities.Budget, partID, partName string, quantity int, unitPrice decimal.Decimal) (entities.Budget, entities.LineItem, error) {
	ledger := NewLedger(b.ID, b.Items)
	it, err := ledger.Add(partID, partName, quantity, unitPrice)
	if err != nil {
		return entities.Budget{}, entities.LineItem{}, err
	}
	return refreshed(b, ledger), it, nil
}

// UpdateItem changes quantity and/or price of an item.
func (e Engine) UpdateItem(b entities.Budget, itemID string, quantity *int, unitPrice *decimal.Decimal) (entities.Budget, entities.LineItem, error) {
	ledger := NewLedger(b.ID, b.Items)
	it, err := ledger.Update(itemID, quantity, unitPrice)
	if err != nil {
		return entities.Budget{}, entities.LineItem{}, err
	}
	return refreshed(b, ledger), it, nil
}

// RemoveItem drops an item. Removing the last item of a budget that already left
// pre_quote would break the "at least one item" rule and fails with
// ErrEmptyBudgetCannotAdvance.
func (e Engine) RemoveItem(b entities.Budget, itemID string) (entities.Budget, error) {
	ledger := NewLedger(b.ID, b.Items)
	if err := ledger.Remove(itemID); err != nil {
		return entities.Budget{}, err
	}
	if ledger.Len() == 0 && b.Status != entities.BudgetStatusPreQuote {
		return entities.Budget{}, ErrEmptyBudgetCannotAdvance
	}
	return refreshed(b, ledger), nil
}

// SetDiscount validates percent for role and recomputes the totals. Clearing the
// discount (nil or zero) is always legal.
func (e Engine) SetDiscount(b entities.Budget, role entities.Role, percent *decimal.Decimal) (entities.Budget, error) {
	if err := e.Discounts.Validate(role, percent); err != nil {
		return entities.Budget{}, err
	}
	out := b.Clone()
	out.DiscountPercent = NormalizeDiscount(percent)
	Recalculate(&out)
	out.UpdatedAt = now()
	return out, nil
}

// TransitionStatus moves b to target when the status machine allows it.
func (e Engine) TransitionStatus(b entities.Budget, role entities.Role, target entities.BudgetStatus) (entities.Budget, error) {
	if err := e.Statuses.Check(b.Status, target, role, len(b.Items)); err != nil {
		return entities.Budget{}, err
	}
	out := b.Clone()
	out.Status = target
	out.UpdatedAt = now()
	return out, nil
}

// ConvertDraftToQuote is TransitionStatus to pending. An empty budget is rejected before
// the status machine is consulted.
func (e Engine) ConvertDraftToQuote(b entities.Budget, role entities.Role) (entities.Budget, error) {
	if len(b.Items) == 0 {
		return entities.Budget{}, ErrEmptyBudgetCannotAdvance
	}
	return e.TransitionStatus(b, role, entities.BudgetStatusPending)
}

// CanEdit reports whether role may change items, discount or details of b.
// Closed budgets are frozen for operators.
func (e Engine) CanEdit(b entities.Budget, role entities.Role) error {
	if !role.Valid() {
		return ErrForbidden
	}
	if role == entities.RoleOperator && b.Status == entities.BudgetStatusClosed {
		return ErrForbidden
	}
	return nil
}

func refreshed(b entities.Budget, ledger *Ledger) entities.Budget {
	out := b.Clone()
	out.Items = ledger.Items()
	Recalculate(&out)
	out.UpdatedAt = now()
	return out
}
