package budgeting

import (
	"slices"

	"rebobinagem/internal/domain/entities"
)

// operatorTransitions are the only forward steps an operator may take.
var operatorTransitions = map[entities.BudgetStatus][]entities.BudgetStatus{
	entities.BudgetStatusPreQuote: {entities.BudgetStatusPending},
	entities.BudgetStatusPending:  {entities.BudgetStatusCompleted},
}

// StatusMachine is a stateless predicate over
// (current status, requested status, role, item count).
//
// Rules:
//   - any status other than pre_quote requires at least one item;
//   - admin may set any status from any other status;
//   - operator may only step pre_quote -> pending -> completed, never backward,
//     and may never reach or leave closed.
type StatusMachine struct{}

func NewStatusMachine() StatusMachine {
	return StatusMachine{}
}

// InitialStatus is the status of a freshly created budget.
func InitialStatus(itemCount int) entities.BudgetStatus {
	if itemCount == 0 {
		return entities.BudgetStatusPreQuote
	}
	return entities.BudgetStatusPending
}

// Check reports whether role may move a budget with itemCount items from current to target.
// Moves an admin could make but the operator cannot are ErrForbidden; moves that skip a
// lifecycle step are ErrIllegalTransition.
func (StatusMachine) Check(current, target entities.BudgetStatus, role entities.Role, itemCount int) error {
	if !target.Valid() {
		return ErrIllegalTransition
	}
	if !role.Valid() {
		return ErrForbidden
	}
	if role == entities.RoleOperator && (current == entities.BudgetStatusClosed || target == entities.BudgetStatusClosed) {
		return ErrForbidden
	}
	if target != entities.BudgetStatusPreQuote && itemCount == 0 {
		return ErrEmptyBudgetCannotAdvance
	}
	if current == target || role == entities.RoleAdmin {
		return nil
	}

	if !current.Valid() {
		return ErrIllegalTransition
	}
	if target.Rank() < current.Rank() {
		return ErrForbidden
	}
	if slices.Contains(operatorTransitions[current], target) {
		return nil
	}
	return ErrIllegalTransition
}

// AllowedTargets lists the statuses role may select next, current included when it is
// itself reachable.
func (m StatusMachine) AllowedTargets(current entities.BudgetStatus, role entities.Role, itemCount int) []entities.BudgetStatus {
	out := make([]entities.BudgetStatus, 0, len(entities.BudgetStatuses))
	for _, st := range entities.BudgetStatuses {
		if m.Check(current, st, role, itemCount) == nil {
			out = append(out, st)
		}
	}
	return out
}
