package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// Part is a catalog entry (part or labor service) that line items reference.
type Part struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Type      string          `json:"type"`
	Price     decimal.Decimal `json:"price"`
	Unit      string          `json:"unit"`
	Notes     string          `json:"notes"`
	CreatedAt time.Time       `json:"created_at"`
}
