// Package documents renders the customer-facing artifacts of a budget: the quote PDF,
// the thermal motor label and the WhatsApp share link. Every value comes from the budget
// snapshot; nothing is recomputed here.
package documents

import (
	"strings"

	"rebobinagem/internal/domain/entities"
)

// Shop is the header printed on every document.
type Shop struct {
	Name    string
	Phone   string
	Address string
}

const dateLayout = "02/01/2006"

func title(status entities.BudgetStatus) string {
	if status == entities.BudgetStatusPreQuote {
		return "Pré-Orçamento"
	}
	return "Orçamento"
}

func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max]) + "..."
}

func motorName(m entities.Motor) string {
	return strings.TrimSpace(strings.Join([]string{m.Brand, m.Model}, " "))
}

func contactPhone(c entities.Client) string {
	if strings.TrimSpace(c.Mobile) != "" {
		return c.Mobile
	}
	return c.Phone
}
