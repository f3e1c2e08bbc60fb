package budgeting

import (
	"errors"
	"fmt"
)

// Validation kinds. They are detected before any mutation or persistence call and are
// never retried.
var (
	ErrInvalidQuantity          = errors.New("quantity must be greater than zero")
	ErrInvalidPrice             = errors.New("unit price must be greater than zero")
	ErrMissingPart              = errors.New("part reference is required")
	ErrItemNotFound             = errors.New("budget item not found")
	ErrInvalidDiscount          = errors.New("discount percent cannot be negative")
	ErrDiscountExceedsCap       = errors.New("discount percent exceeds the role cap")
	ErrEmptyBudgetCannotAdvance = errors.New("budget without items cannot leave pre_quote")
	ErrIllegalTransition        = errors.New("illegal status transition")
	ErrForbidden                = errors.New("operation not allowed for this role")
)

// StoreError marks a failure reported by the persistence boundary. The original error
// is kept untouched and reachable through errors.Is / errors.As.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store %s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

// WrapStoreError tags err as a StoreError for op. Nil stays nil and errors that are
// already tagged are returned as-is.
func WrapStoreError(op string, err error) error {
	if err == nil {
		return nil
	}
	var se *StoreError
	if errors.As(err, &se) {
		return err
	}
	return &StoreError{Op: op, Err: err}
}

func IsStoreError(err error) bool {
	var se *StoreError
	return errors.As(err, &se)
}
