package entities

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// BudgetStatus represents the lifecycle of a budget (orçamento).
//
// Lifecycle:
//   - pre_quote: motor received, no priced items yet (draft).
//   - pending: priced quote waiting for the repair to be done.
//   - completed: repair done, waiting for payment.
//   - closed: funds collected / archived.
type BudgetStatus string

const (
	BudgetStatusPreQuote  BudgetStatus = "pre_quote"
	BudgetStatusPending   BudgetStatus = "pending"
	BudgetStatusCompleted BudgetStatus = "completed"
	BudgetStatusClosed    BudgetStatus = "closed"
)

// BudgetStatuses lists every status in lifecycle order.
var BudgetStatuses = []BudgetStatus{
	BudgetStatusPreQuote,
	BudgetStatusPending,
	BudgetStatusCompleted,
	BudgetStatusClosed,
}

// Rank returns the position of the status in the lifecycle, or -1 when unknown.
func (s BudgetStatus) Rank() int {
	for i, st := range BudgetStatuses {
		if st == s {
			return i
		}
	}
	return -1
}

func (s BudgetStatus) Valid() bool {
	return s.Rank() >= 0
}

// LineItem is one priced part or labor entry owned by a single budget.
//
// Subtotal is always derived from Quantity and UnitPrice; it is never set on its own.
type LineItem struct {
	ID        string          `json:"id"`
	BudgetID  string          `json:"budget_id"`
	PartID    string          `json:"part_id"`
	PartName  string          `json:"part_name"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Subtotal  decimal.Decimal `json:"subtotal"`
	Position  int             `json:"position"`
}

// Budget is the repair quote for one motor and one client.
//
// Storage model (DynamoDB):
//   - budgets: PK id, GSI client_id-index
//   - budget_items: PK id, GSI budget_id-index
//   - motors: PK id
//
// Monetary representation:
//   - Subtotal is the sum of item subtotals.
//   - DiscountValue is Subtotal * DiscountPercent / 100 rounded half-up to 2 places.
//   - Total is Subtotal - DiscountValue.
type Budget struct {
	ID              string           `json:"id"`
	ClientID        string           `json:"client_id"`
	OperatorID      string           `json:"operator_id"`
	Motor           Motor            `json:"motor"`
	Items           []LineItem       `json:"items"`
	Date            time.Time        `json:"date"`
	TechnicalReport string           `json:"technical_report"`
	Notes           string           `json:"notes"`
	Status          BudgetStatus     `json:"status"`
	DiscountPercent *decimal.Decimal `json:"discount_percent,omitempty"`
	Subtotal        decimal.Decimal  `json:"subtotal"`
	DiscountValue   decimal.Decimal  `json:"discount_value"`
	Total           decimal.Decimal  `json:"total"`
	CreatedAt       time.Time        `json:"created_at"`
	UpdatedAt       time.Time        `json:"updated_at"`
}

// Clone returns a deep copy so callers can mutate it without touching the original snapshot.
func (b Budget) Clone() Budget {
	out := b
	if b.Items != nil {
		out.Items = make([]LineItem, len(b.Items))
		copy(out.Items, b.Items)
	}
	if b.DiscountPercent != nil {
		pct := *b.DiscountPercent
		out.DiscountPercent = &pct
	}
	return out
}

// ShortID is the display reference printed on documents.
func (b Budget) ShortID() string {
	id := b.ID
	if len(id) > 8 {
		id = id[:8]
	}
	return strings.ToUpper(id)
}

// BudgetFilter narrows budget listings. Empty fields match everything.
type BudgetFilter struct {
	ClientID string
	Status   BudgetStatus
}
