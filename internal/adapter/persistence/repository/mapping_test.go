package repository

import (
	"testing"
	"time"

	"rebobinagem/internal/domain/budgeting"
	"rebobinagem/internal/domain/entities"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBudgetRecordMapping(t *testing.T) {
	date := time.Date(2025, 3, 10, 14, 30, 0, 0, time.UTC)
	pct := decimal.RequireFromString("10")
	b := entities.Budget{
		ID:              "b-1",
		ClientID:        "c-1",
		OperatorID:      "u-1",
		Motor:           entities.Motor{ID: "m-1", Brand: "WEG"},
		Date:            date,
		Status:          entities.BudgetStatusPending,
		DiscountPercent: &pct,
		Subtotal:        decimal.RequireFromString("240"),
		DiscountValue:   decimal.RequireFromString("24"),
		Total:           decimal.RequireFromString("216"),
		CreatedAt:       date,
		UpdatedAt:       date,
	}

	rec := toBudgetRecord(b)
	assert.Equal(t, "m-1", rec.MotorID)
	assert.Equal(t, "240.00", rec.Subtotal)
	assert.Equal(t, "216.00", rec.Total)
	assert.Equal(t, "pending", rec.Status)

	got := fromBudgetRecord(rec)
	assert.Equal(t, "m-1", got.Motor.ID)
	assert.Empty(t, got.Motor.Brand)
	assert.True(t, got.Date.Equal(date))
	require.NotNil(t, got.DiscountPercent)
	assert.True(t, got.DiscountPercent.Equal(pct))
	assert.True(t, got.Total.Equal(b.Total))
}

func TestBudgetRecordWithoutDiscount(t *testing.T) {
	rec := toBudgetRecord(entities.Budget{ID: "b-1"})
	assert.Empty(t, rec.DiscountPercent)
	assert.Empty(t, rec.Date)
	assert.Nil(t, fromBudgetRecord(rec).DiscountPercent)
	assert.True(t, fromBudgetRecord(rec).Date.IsZero())
}

func TestLineItemMappingAndOrder(t *testing.T) {
	items := []entities.LineItem{
		fromLineItemRecord(lineItemRecord{ID: "i-2", Quantity: 1, UnitPrice: "150.00", Subtotal: "150.00", Position: 1}),
		fromLineItemRecord(lineItemRecord{ID: "i-1", Quantity: 2, UnitPrice: "45.00", Subtotal: "90.00", Position: 0}),
	}
	sortLineItems(items)

	assert.Equal(t, "i-1", items[0].ID)
	assert.True(t, items[0].UnitPrice.Equal(decimal.NewFromInt(45)))
	assert.True(t, items[0].Subtotal.Equal(decimal.NewFromInt(90)))

	rec := toLineItemRecord(items[1])
	assert.Equal(t, "150.00", rec.UnitPrice)
	assert.Equal(t, 1, rec.Position)
}

func TestSubCentPricesSurviveReload(t *testing.T) {
	e := budgeting.NewEngine(budgeting.DefaultDiscountPolicy())
	b, err := e.NewBudget(entities.RoleOperator, budgeting.NewBudgetInput{ClientID: "c-1", OperatorID: "u-1"})
	require.NoError(t, err)
	b, _, err = e.AddItem(b, "p-1", "Verniz", 3, decimal.RequireFromString("0.333"))
	require.NoError(t, err)
	b, _, err = e.AddItem(b, "p-2", "Fio 0,5mm", 7, decimal.RequireFromString("12.345"))
	require.NoError(t, err)
	pct := decimal.RequireFromString("7")
	b, err = e.SetDiscount(b, entities.RoleOperator, &pct)
	require.NoError(t, err)

	reloaded := fromBudgetRecord(toBudgetRecord(b))
	for _, it := range b.Items {
		got := fromLineItemRecord(toLineItemRecord(it))
		assert.Truef(t, got.UnitPrice.Equal(it.UnitPrice), "unit price %s reloaded as %s", it.UnitPrice, got.UnitPrice)
		assert.True(t, got.Subtotal.Equal(got.UnitPrice.Mul(decimal.NewFromInt(int64(got.Quantity)))))
		reloaded.Items = append(reloaded.Items, got)
	}
	budgeting.Recalculate(&reloaded)

	assert.Truef(t, reloaded.Subtotal.Equal(b.Subtotal), "subtotal %s reloaded as %s", b.Subtotal, reloaded.Subtotal)
	assert.True(t, reloaded.DiscountValue.Equal(b.DiscountValue))
	assert.Truef(t, reloaded.Total.Equal(b.Total), "total %s reloaded as %s", b.Total, reloaded.Total)
	assert.True(t, b.Total.Equal(decimal.RequireFromString("81.32")))
}

func TestBillingPaymentMapping(t *testing.T) {
	p := entities.BillingPayment{
		ID:                 "p-1",
		BudgetID:           "b-1",
		Amount:             decimal.RequireFromString("223.2"),
		Date:               time.Date(2025, 3, 11, 9, 0, 0, 0, time.UTC),
		Status:             entities.PaymentStatusApproved,
		CollectedBy:        "u-1",
		ProviderPayloadRaw: []byte(`{"id":1}`),
	}

	rec := toBillingPaymentRecord(p)
	assert.Equal(t, "223.20", rec.Amount)
	assert.Equal(t, `{"id":1}`, rec.MPPayloadRaw)

	got := fromBillingPaymentRecord(rec)
	assert.Equal(t, entities.PaymentStatusApproved, got.Status)
	assert.True(t, got.Amount.Equal(p.Amount))
	assert.JSONEq(t, `{"id":1}`, string(got.ProviderPayloadRaw))
}

func TestCatalogMapping(t *testing.T) {
	part := fromPartRecord(toPartRecord(entities.Part{ID: "p-1", Name: "Rolamento", Price: decimal.RequireFromString("45.5"), Unit: "un"}))
	assert.Equal(t, "Rolamento", part.Name)
	assert.True(t, part.Price.Equal(decimal.RequireFromString("45.50")))

	client := fromClientRecord(toClientRecord(entities.Client{ID: "c-1", Name: "Oficina Silva", Mobile: "11999990000"}))
	assert.Equal(t, "11999990000", client.Mobile)
	assert.True(t, client.CreatedAt.IsZero())

	motor := fromMotorRecord(toMotorRecord(entities.Motor{ID: "m-1", CV: "5", Original: true}))
	assert.Equal(t, "5", motor.CV)
	assert.True(t, motor.Original)
}

func TestParseDecimalTolerance(t *testing.T) {
	assert.True(t, parseDecimal("").IsZero())
	assert.True(t, parseDecimal("abc").IsZero())
	assert.Nil(t, parseOptionalDecimal(""))
}
