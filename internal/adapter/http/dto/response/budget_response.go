package response

import (
	"time"

	"rebobinagem/internal/domain/entities"
	"rebobinagem/internal/usecase"
)

// Money is rendered as a two-place decimal string ("223.20").

type LineItemResponse struct {
	ID        string `json:"id"`
	PartID    string `json:"part_id"`
	PartName  string `json:"part_name"`
	Quantity  int    `json:"quantity"`
	UnitPrice string `json:"unit_price"`
	Subtotal  string `json:"subtotal"`
	Position  int    `json:"position"`
}

type BudgetResponse struct {
	ID              string             `json:"id"`
	ShortID         string             `json:"short_id"`
	ClientID        string             `json:"client_id"`
	OperatorID      string             `json:"operator_id"`
	Motor           entities.Motor     `json:"motor"`
	Items           []LineItemResponse `json:"items"`
	Date            time.Time          `json:"date"`
	TechnicalReport string             `json:"technical_report"`
	Notes           string             `json:"notes"`
	Status          string             `json:"status"`
	DiscountPercent *string            `json:"discount_percent"`
	Subtotal        string             `json:"subtotal"`
	DiscountValue   string             `json:"discount_value"`
	Total           string             `json:"total"`
	CreatedAt       time.Time          `json:"created_at"`
	UpdatedAt       time.Time          `json:"updated_at"`
}

func FromBudget(b entities.Budget) BudgetResponse {
	res := BudgetResponse{
		ID:              b.ID,
		ShortID:         b.ShortID(),
		ClientID:        b.ClientID,
		OperatorID:      b.OperatorID,
		Motor:           b.Motor,
		Items:           make([]LineItemResponse, 0, len(b.Items)),
		Date:            b.Date,
		TechnicalReport: b.TechnicalReport,
		Notes:           b.Notes,
		Status:          string(b.Status),
		Subtotal:        b.Subtotal.StringFixed(2),
		DiscountValue:   b.DiscountValue.StringFixed(2),
		Total:           b.Total.StringFixed(2),
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.UpdatedAt,
	}
	if b.DiscountPercent != nil {
		pct := b.DiscountPercent.String()
		res.DiscountPercent = &pct
	}
	for _, it := range b.Items {
		res.Items = append(res.Items, LineItemResponse{
			ID:        it.ID,
			PartID:    it.PartID,
			PartName:  it.PartName,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice.StringFixed(2),
			Subtotal:  it.Subtotal.StringFixed(2),
			Position:  it.Position,
		})
	}
	return res
}

// BudgetListItemResponse is the list projection of a budget: the stored header and
// totals, without items or motor details.
type BudgetListItemResponse struct {
	ID              string    `json:"id"`
	ShortID         string    `json:"short_id"`
	ClientID        string    `json:"client_id"`
	OperatorID      string    `json:"operator_id"`
	MotorID         string    `json:"motor_id"`
	Date            time.Time `json:"date"`
	Status          string    `json:"status"`
	DiscountPercent *string   `json:"discount_percent"`
	Subtotal        string    `json:"subtotal"`
	DiscountValue   string    `json:"discount_value"`
	Total           string    `json:"total"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func FromBudgetList(list []entities.Budget) []BudgetListItemResponse {
	out := make([]BudgetListItemResponse, 0, len(list))
	for _, b := range list {
		item := BudgetListItemResponse{
			ID:            b.ID,
			ShortID:       b.ShortID(),
			ClientID:      b.ClientID,
			OperatorID:    b.OperatorID,
			MotorID:       b.Motor.ID,
			Date:          b.Date,
			Status:        string(b.Status),
			Subtotal:      b.Subtotal.StringFixed(2),
			DiscountValue: b.DiscountValue.StringFixed(2),
			Total:         b.Total.StringFixed(2),
			CreatedAt:     b.CreatedAt,
			UpdatedAt:     b.UpdatedAt,
		}
		if b.DiscountPercent != nil {
			pct := b.DiscountPercent.String()
			item.DiscountPercent = &pct
		}
		out = append(out, item)
	}
	return out
}

type AllowedStatusesResponse struct {
	BudgetID string   `json:"budget_id"`
	Statuses []string `json:"statuses"`
}

func FromAllowedStatuses(budgetID string, statuses []entities.BudgetStatus) AllowedStatusesResponse {
	res := AllowedStatusesResponse{BudgetID: budgetID, Statuses: make([]string, 0, len(statuses))}
	for _, s := range statuses {
		res.Statuses = append(res.Statuses, string(s))
	}
	return res
}

type WhatsAppResponse struct {
	URL string `json:"url"`
}

type SummaryResponse struct {
	Clients  int                      `json:"clients"`
	Parts    int                      `json:"parts"`
	Budgets  int                      `json:"budgets"`
	ByStatus map[string]int           `json:"by_status"`
	Revenue  string                   `json:"revenue"`
	Recent   []BudgetListItemResponse `json:"recent"`
}

func FromSummary(s usecase.BudgetSummary) SummaryResponse {
	res := SummaryResponse{
		Clients:  s.Clients,
		Parts:    s.Parts,
		Budgets:  s.Budgets,
		ByStatus: make(map[string]int, len(entities.BudgetStatuses)),
		Revenue:  s.Revenue.StringFixed(2),
		Recent:   FromBudgetList(s.Recent),
	}
	for _, st := range entities.BudgetStatuses {
		res.ByStatus[string(st)] = s.ByStatus[st]
	}
	return res
}
