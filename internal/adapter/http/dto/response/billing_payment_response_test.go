package response

import (
	"encoding/json"
	"testing"
	"time"

	"rebobinagem/internal/domain/entities"

	"github.com/shopspring/decimal"
)

func TestFromBillingPayment(t *testing.T) {
	now := time.Now().UTC()
	payload := map[string]interface{}{"a": "b"}
	raw := json.RawMessage(`{"id":123}`)

	p := entities.BillingPayment{
		ID:                 "pay-1",
		BudgetID:           "b-1",
		Amount:             decimal.RequireFromString("223.2"),
		Date:               now,
		Status:             entities.PaymentStatusApproved,
		CollectedBy:        "admin-1",
		ProviderPayloadRaw: raw,
		ProviderPayload:    payload,
	}

	res := FromBillingPayment(p)
	if res.ID != "pay-1" || res.PaymentID != "pay-1" {
		t.Fatalf("unexpected ids: %+v", res)
	}
	if res.BudgetID != "b-1" || res.Status != "approved" || res.CollectedBy != "admin-1" {
		t.Fatalf("unexpected fields: %+v", res)
	}
	if res.Amount != "223.20" {
		t.Fatalf("unexpected amount: %s", res.Amount)
	}
	if !res.Date.Equal(now) || !res.PaymentDate.Equal(now) {
		t.Fatalf("unexpected dates: %+v", res)
	}
	if res.MPPayloadRaw != string(raw) {
		t.Fatalf("unexpected raw payload: %s", res.MPPayloadRaw)
	}
	if res.MPPayload["a"] != "b" {
		t.Fatalf("unexpected parsed payload: %+v", res.MPPayload)
	}
}
