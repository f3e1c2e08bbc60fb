package budgeting

import (
	"sort"
	"strings"

	"rebobinagem/internal/domain/entities"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var newItemID = uuid.NewString

// Ledger owns the ordered line items of one budget and keeps their subtotals derived.
//
// Insertion order matters for display only; Position is assigned on insert and never
// renumbered, so removing an item leaves the order of the others unchanged.
type Ledger struct {
	budgetID string
	items    []entities.LineItem
	next     int
}

// NewLedger builds a ledger over a copy of items, ordered by Position.
func NewLedger(budgetID string, items []entities.LineItem) *Ledger {
	cp := make([]entities.LineItem, len(items))
	copy(cp, items)
	sort.SliceStable(cp, func(i, j int) bool { return cp[i].Position < cp[j].Position })

	l := &Ledger{budgetID: budgetID, items: cp}
	for _, it := range cp {
		if it.Position >= l.next {
			l.next = it.Position + 1
		}
	}
	return l
}

// Add appends a new item. partName is informational and captured for documents.
func (l *Ledger) Add(partID, partName string, quantity int, unitPrice decimal.Decimal) (entities.LineItem, error) {
	partID = strings.TrimSpace(partID)
	// Prices are kept in cents, the same precision the store persists.
	unitPrice = Round2(unitPrice)
	if err := validateItem(partID, quantity, unitPrice); err != nil {
		return entities.LineItem{}, err
	}

	it := entities.LineItem{
		ID:        newItemID(),
		BudgetID:  l.budgetID,
		PartID:    partID,
		PartName:  partName,
		Quantity:  quantity,
		UnitPrice: unitPrice,
		Subtotal:  lineSubtotal(quantity, unitPrice),
		Position:  l.next,
	}
	l.next++
	l.items = append(l.items, it)
	return it, nil
}

// Update changes quantity and/or unit price of an existing item. A nil argument keeps
// the current value; the resulting pair is validated as in Add.
func (l *Ledger) Update(itemID string, quantity *int, unitPrice *decimal.Decimal) (entities.LineItem, error) {
	idx := l.indexOf(itemID)
	if idx < 0 {
		return entities.LineItem{}, ErrItemNotFound
	}

	it := l.items[idx]
	if quantity != nil {
		it.Quantity = *quantity
	}
	if unitPrice != nil {
		it.UnitPrice = Round2(*unitPrice)
	}
	if err := validateItem(it.PartID, it.Quantity, it.UnitPrice); err != nil {
		return entities.LineItem{}, err
	}
	it.Subtotal = lineSubtotal(it.Quantity, it.UnitPrice)

	l.items[idx] = it
	return it, nil
}

func (l *Ledger) Remove(itemID string) error {
	idx := l.indexOf(itemID)
	if idx < 0 {
		return ErrItemNotFound
	}
	l.items = append(l.items[:idx], l.items[idx+1:]...)
	return nil
}

func (l *Ledger) Find(itemID string) (entities.LineItem, bool) {
	idx := l.indexOf(itemID)
	if idx < 0 {
		return entities.LineItem{}, false
	}
	return l.items[idx], true
}

// FindByPart returns the first item referencing partID. Callers use it to merge a repeated
// part into an existing item instead of inserting a duplicate.
func (l *Ledger) FindByPart(partID string) (entities.LineItem, bool) {
	for _, it := range l.items {
		if it.PartID == partID {
			return it, true
		}
	}
	return entities.LineItem{}, false
}

// Items returns a copy of the items in display order.
func (l *Ledger) Items() []entities.LineItem {
	out := make([]entities.LineItem, len(l.items))
	copy(out, l.items)
	return out
}

func (l *Ledger) Len() int {
	return len(l.items)
}

// Subtotal is the sum of all item subtotals; zero for an empty ledger.
func (l *Ledger) Subtotal() decimal.Decimal {
	return SumItems(l.items)
}

func (l *Ledger) indexOf(itemID string) int {
	for i, it := range l.items {
		if it.ID == itemID {
			return i
		}
	}
	return -1
}

// SumItems adds up the subtotals of items.
func SumItems(items []entities.LineItem) decimal.Decimal {
	sum := decimal.Zero
	for _, it := range items {
		sum = sum.Add(it.Subtotal)
	}
	return sum
}

func validateItem(partID string, quantity int, unitPrice decimal.Decimal) error {
	if partID == "" {
		return ErrMissingPart
	}
	if quantity <= 0 {
		return ErrInvalidQuantity
	}
	if !unitPrice.IsPositive() {
		return ErrInvalidPrice
	}
	return nil
}

func lineSubtotal(quantity int, unitPrice decimal.Decimal) decimal.Decimal {
	return unitPrice.Mul(decimal.NewFromInt(int64(quantity)))
}
