package payments

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMercadoPagoGateway_MissingToken(t *testing.T) {
	g, err := NewMercadoPagoGateway("", false)
	if !errors.Is(err, ErrMissingMercadoPagoAccessToken) {
		t.Fatalf("expected ErrMissingMercadoPagoAccessToken, got %v", err)
	}
	if g != nil {
		t.Fatalf("expected nil gateway")
	}
}

func TestMercadoPagoGateway_MockMode(t *testing.T) {
	g, err := NewMercadoPagoGateway("", true)
	require.NoError(t, err)

	id, status, raw, err := g.CreatePayment(context.Background(), json.RawMessage(`{"transaction_amount":223.20,"external_reference":"b-1"}`))
	require.NoError(t, err)
	assert.NotEmpty(t, id)
	assert.Equal(t, "approved", status)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(raw, &resp))
	assert.Equal(t, "b-1", resp["external_reference"])
	assert.Equal(t, "accredited", resp["status_detail"])
	assert.Equal(t, id, resp["id"])
	assert.NotEmpty(t, resp["date_approved"])
}

func TestMercadoPagoGateway_MockModeToleratesEmptyPayload(t *testing.T) {
	g, err := NewMercadoPagoGateway("", true)
	require.NoError(t, err)

	_, status, raw, err := g.CreatePayment(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, "approved", status)
	assert.True(t, json.Valid(raw))
}

func TestMercadoPagoGateway_NotConfigured(t *testing.T) {
	var g *MercadoPagoGateway
	_, _, _, err := g.CreatePayment(context.Background(), json.RawMessage(`{}`))
	assert.ErrorIs(t, err, ErrMercadoPagoGatewayNotConfigured)

	_, _, _, err = (&MercadoPagoGateway{}).CreatePayment(context.Background(), json.RawMessage(`{}`))
	assert.ErrorIs(t, err, ErrMercadoPagoGatewayNotConfigured)
}
