package request

import (
	"strings"
	"time"

	"rebobinagem/internal/domain/entities"
	"rebobinagem/internal/usecase"

	"github.com/shopspring/decimal"
)

type MotorRequest struct {
	Type          string `json:"type"`
	Model         string `json:"model"`
	Brand         string `json:"brand"`
	CV            string `json:"cv"`
	Voltage       string `json:"voltage"`
	RPM           string `json:"rpm"`
	Turns         string `json:"turns"`
	Wires         string `json:"wires"`
	Connection    string `json:"connection"`
	OuterDiameter string `json:"outer_diameter"`
	OuterLength   string `json:"outer_length"`
	SerialNumber  string `json:"serial_number"`
	Original      bool   `json:"original"`
}

func (m MotorRequest) ToEntity() entities.Motor {
	return entities.Motor{
		Type:          strings.TrimSpace(m.Type),
		Model:         strings.TrimSpace(m.Model),
		Brand:         strings.TrimSpace(m.Brand),
		CV:            strings.TrimSpace(m.CV),
		Voltage:       strings.TrimSpace(m.Voltage),
		RPM:           strings.TrimSpace(m.RPM),
		Turns:         strings.TrimSpace(m.Turns),
		Wires:         strings.TrimSpace(m.Wires),
		Connection:    strings.TrimSpace(m.Connection),
		OuterDiameter: strings.TrimSpace(m.OuterDiameter),
		OuterLength:   strings.TrimSpace(m.OuterLength),
		SerialNumber:  strings.TrimSpace(m.SerialNumber),
		Original:      m.Original,
	}
}

// BudgetItemRequest adds a catalog part to a budget. Without unit_price the catalog price is used.
type BudgetItemRequest struct {
	PartID    string           `json:"part_id" validate:"required"`
	Quantity  int              `json:"quantity" validate:"required"`
	UnitPrice *decimal.Decimal `json:"unit_price"`
	Merge     bool             `json:"merge"`
}

func (r BudgetItemRequest) ToInput() usecase.ItemInput {
	return usecase.ItemInput{
		PartID:    r.PartID,
		Quantity:  r.Quantity,
		UnitPrice: r.UnitPrice,
		Merge:     r.Merge,
	}
}

type BudgetCreateRequest struct {
	ClientID        string              `json:"client_id" validate:"required"`
	Motor           MotorRequest        `json:"motor"`
	Items           []BudgetItemRequest `json:"items" validate:"dive"`
	DiscountPercent *decimal.Decimal    `json:"discount_percent"`
	TechnicalReport string              `json:"technical_report"`
	Notes           string              `json:"notes"`
	Date            *time.Time          `json:"date"`
}

func (r BudgetCreateRequest) ToInput() usecase.CreateBudgetInput {
	in := usecase.CreateBudgetInput{
		ClientID:        r.ClientID,
		Motor:           r.Motor.ToEntity(),
		DiscountPercent: r.DiscountPercent,
		TechnicalReport: r.TechnicalReport,
		Notes:           r.Notes,
	}
	if r.Date != nil {
		in.Date = *r.Date
	}
	for _, it := range r.Items {
		in.Items = append(in.Items, it.ToInput())
	}
	return in
}

// BudgetItemUpdateRequest changes quantity and/or unit price; absent fields keep their value.
type BudgetItemUpdateRequest struct {
	Quantity  *int             `json:"quantity"`
	UnitPrice *decimal.Decimal `json:"unit_price"`
}

func (r BudgetItemUpdateRequest) ToInput() usecase.ItemUpdateInput {
	return usecase.ItemUpdateInput{Quantity: r.Quantity, UnitPrice: r.UnitPrice}
}

// DiscountRequest sets the discount percent. null or 0 clears it.
type DiscountRequest struct {
	DiscountPercent *decimal.Decimal `json:"discount_percent"`
}

type StatusRequest struct {
	Status string `json:"status" validate:"required"`
}

func (r StatusRequest) Target() entities.BudgetStatus {
	return entities.BudgetStatus(strings.TrimSpace(r.Status))
}

type BudgetDetailsRequest struct {
	TechnicalReport *string       `json:"technical_report"`
	Notes           *string       `json:"notes"`
	Date            *time.Time    `json:"date"`
	Motor           *MotorRequest `json:"motor"`
}

func (r BudgetDetailsRequest) ToInput() usecase.DetailsInput {
	in := usecase.DetailsInput{
		TechnicalReport: r.TechnicalReport,
		Notes:           r.Notes,
		Date:            r.Date,
	}
	if r.Motor != nil {
		m := r.Motor.ToEntity()
		in.Motor = &m
	}
	return in
}
