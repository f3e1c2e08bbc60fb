package request

import (
	"encoding/json"
	"testing"
	"time"

	"rebobinagem/internal/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBudgetCreateRequest_ToInput(t *testing.T) {
	body := `{
		"client_id": "c-1",
		"motor": {"brand": " WEG ", "cv": "5", "original": true},
		"items": [{"part_id": "p-1", "quantity": 2, "unit_price": "45.00"}, {"part_id": "p-2", "quantity": 1}],
		"discount_percent": 7,
		"date": "2025-03-10T00:00:00Z"
	}`
	var r BudgetCreateRequest
	require.NoError(t, json.Unmarshal([]byte(body), &r))

	in := r.ToInput()
	assert.Equal(t, "c-1", in.ClientID)
	assert.Equal(t, "WEG", in.Motor.Brand)
	assert.True(t, in.Motor.Original)
	require.Len(t, in.Items, 2)
	require.NotNil(t, in.Items[0].UnitPrice)
	assert.Equal(t, "45", in.Items[0].UnitPrice.String())
	assert.Nil(t, in.Items[1].UnitPrice)
	require.NotNil(t, in.DiscountPercent)
	assert.Equal(t, "7", in.DiscountPercent.String())
	assert.True(t, in.Date.Equal(time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)))
}

func TestBudgetCreateRequest_NoDate(t *testing.T) {
	in := BudgetCreateRequest{ClientID: "c-1"}.ToInput()
	assert.True(t, in.Date.IsZero())
	assert.Nil(t, in.Items)
}

func TestStatusRequest_Target(t *testing.T) {
	assert.Equal(t, entities.BudgetStatusCompleted, StatusRequest{Status: " completed "}.Target())
}

func TestBudgetDetailsRequest_ToInput(t *testing.T) {
	notes := "urgente"
	in := BudgetDetailsRequest{Notes: &notes, Motor: &MotorRequest{Model: "W22"}}.ToInput()
	require.NotNil(t, in.Notes)
	assert.Equal(t, "urgente", *in.Notes)
	assert.Nil(t, in.TechnicalReport)
	require.NotNil(t, in.Motor)
	assert.Equal(t, "W22", in.Motor.Model)

	assert.Nil(t, BudgetDetailsRequest{}.ToInput().Motor)
}

func TestCatalogRequests_ToEntity(t *testing.T) {
	c := ClientRequest{Name: "Oficina Silva", Mobile: "44988467576"}.ToEntity("c-1")
	assert.Equal(t, "c-1", c.ID)
	assert.Equal(t, "44988467576", c.Mobile)

	var p PartRequest
	require.NoError(t, json.Unmarshal([]byte(`{"name":"Rolamento","price":45.5}`), &p))
	part := p.ToEntity("p-1")
	assert.Equal(t, "p-1", part.ID)
	assert.Equal(t, "45.5", part.Price.String())
}
