package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"rebobinagem/internal/adapter/http/handlers/mocks"
	"rebobinagem/internal/domain/budgeting"
	"rebobinagem/internal/domain/entities"
	"rebobinagem/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

type failingReadCloser struct{}

func (failingReadCloser) Read(_ []byte) (int, error) { return 0, errors.New("read error") }
func (failingReadCloser) Close() error               { return nil }

func TestBillingPaymentHandler_CollectPayment(t *testing.T) {
	t.Run("invalid payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIBillingPaymentUseCase(ctrl)
		h := NewBillingPaymentHandler(uc)
		r := newRouter(&operator)
		r.POST("/v1/payments/:budget_id", h.CollectPayment)

		if w := do(r, http.MethodPost, "/v1/payments/b-1", "{"); w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("null envelope", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIBillingPaymentUseCase(ctrl)
		h := NewBillingPaymentHandler(uc)
		r := newRouter(&operator)
		r.POST("/v1/payments/:budget_id", h.CollectPayment)

		if w := do(r, http.MethodPost, "/v1/payments/b-1", `{"mp_payload":null}`); w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("anonymous", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIBillingPaymentUseCase(ctrl)
		h := NewBillingPaymentHandler(uc)
		r := newRouter(nil)
		r.POST("/v1/payments/:budget_id", h.CollectPayment)

		if w := do(r, http.MethodPost, "/v1/payments/b-1", `{}`); w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("budget not completed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIBillingPaymentUseCase(ctrl)
		h := NewBillingPaymentHandler(uc)
		r := newRouter(&operator)
		r.POST("/v1/payments/:budget_id", h.CollectPayment)

		uc.EXPECT().CollectPayment(gomock.Any(), operator, "b-1", gomock.Any()).Return(entities.BillingPayment{}, usecase.ErrBudgetNotCompleted)

		w := do(r, http.MethodPost, "/v1/payments/b-1", `{"payment_method_id":"pix","payer":{"email":"x@test.com"}}`)
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("budget not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIBillingPaymentUseCase(ctrl)
		h := NewBillingPaymentHandler(uc)
		r := newRouter(&operator)
		r.POST("/v1/payments/:budget_id", h.CollectPayment)

		uc.EXPECT().CollectPayment(gomock.Any(), operator, "b-9", gomock.Any()).Return(entities.BillingPayment{}, usecase.ErrBudgetNotFound)

		if w := do(r, http.MethodPost, "/v1/payments/b-9", `{}`); w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("operator may not close", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIBillingPaymentUseCase(ctrl)
		h := NewBillingPaymentHandler(uc)
		r := newRouter(&operator)
		r.POST("/v1/payments/:budget_id", h.CollectPayment)

		uc.EXPECT().CollectPayment(gomock.Any(), operator, "b-1", gomock.Any()).Return(entities.BillingPayment{}, budgeting.ErrForbidden)

		if w := do(r, http.MethodPost, "/v1/payments/b-1", `{}`); w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})

	t.Run("gateway not configured", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIBillingPaymentUseCase(ctrl)
		h := NewBillingPaymentHandler(uc)
		r := newRouter(&admin)
		r.POST("/v1/payments/:budget_id", h.CollectPayment)

		uc.EXPECT().CollectPayment(gomock.Any(), admin, "b-1", gomock.Any()).Return(entities.BillingPayment{}, usecase.ErrPaymentGatewayNotConfigured)

		if w := do(r, http.MethodPost, "/v1/payments/b-1", `{}`); w.Code != http.StatusServiceUnavailable {
			t.Fatalf("expected 503, got %d", w.Code)
		}
	})

	t.Run("not approved", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIBillingPaymentUseCase(ctrl)
		h := NewBillingPaymentHandler(uc)
		r := newRouter(&admin)
		r.POST("/v1/payments/:budget_id", h.CollectPayment)

		uc.EXPECT().CollectPayment(gomock.Any(), admin, "b-1", gomock.Any()).
			Return(entities.BillingPayment{ID: "pay-2", BudgetID: "b-1", Status: entities.PaymentStatusDenied}, usecase.ErrPaymentNotApproved)

		w := do(r, http.MethodPost, "/v1/payments/b-1", `{}`)
		if w.Code != http.StatusPaymentRequired {
			t.Fatalf("expected 402, got %d", w.Code)
		}
		body := decode(t, w)
		payment, _ := body["payment"].(map[string]any)
		if body["code"] != "PAYMENT_NOT_APPROVED" || payment["status"] != "denied" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("success unwraps envelope", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIBillingPaymentUseCase(ctrl)
		h := NewBillingPaymentHandler(uc)
		r := newRouter(&admin)
		r.POST("/v1/payments/:budget_id", h.CollectPayment)

		uc.EXPECT().CollectPayment(gomock.Any(), admin, "b-1", gomock.Any()).
			DoAndReturn(func(_ any, _ entities.Actor, _ string, payload json.RawMessage) (entities.BillingPayment, error) {
				if string(payload) != `{"payment_method_id":"pix"}` {
					t.Fatalf("unexpected payload %s", payload)
				}
				return entities.BillingPayment{
					ID:       "pay-1",
					BudgetID: "b-1",
					Amount:   decimal.RequireFromString("240"),
					Date:     time.Now().UTC(),
					Status:   entities.PaymentStatusApproved,
				}, nil
			})

		w := do(r, http.MethodPost, "/v1/payments/b-1", `{"mp_payload":{"payment_method_id":"pix"}}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		body := decode(t, w)
		if body["payment_id"] != "pay-1" || body["amount"] != "240.00" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestBillingPaymentHandler_GetLatestPayment(t *testing.T) {
	t.Run("list error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIBillingPaymentUseCase(ctrl)
		h := NewBillingPaymentHandler(uc)
		r := newRouter(&operator)
		r.GET("/v1/payments/:budget_id", h.GetLatestPayment)

		uc.EXPECT().ListPayments(gomock.Any(), "b-1").Return(nil, usecase.ErrInvalidPaymentBudgetID)

		if w := do(r, http.MethodGet, "/v1/payments/b-1", ""); w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIBillingPaymentUseCase(ctrl)
		h := NewBillingPaymentHandler(uc)
		r := newRouter(&operator)
		r.GET("/v1/payments/:budget_id", h.GetLatestPayment)

		uc.EXPECT().ListPayments(gomock.Any(), "b-1").Return([]entities.BillingPayment{}, nil)

		if w := do(r, http.MethodGet, "/v1/payments/b-1", ""); w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success returns latest", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIBillingPaymentUseCase(ctrl)
		h := NewBillingPaymentHandler(uc)
		r := newRouter(&operator)
		r.GET("/v1/payments/:budget_id", h.GetLatestPayment)

		now := time.Now().UTC()
		uc.EXPECT().ListPayments(gomock.Any(), "b-1").Return([]entities.BillingPayment{
			{ID: "pay-old", BudgetID: "b-1", Date: now.Add(-time.Hour), Status: entities.PaymentStatusDenied},
			{ID: "pay-new", BudgetID: "b-1", Date: now, Status: entities.PaymentStatusApproved},
		}, nil)

		w := do(r, http.MethodGet, "/v1/payments/b-1", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if body := decode(t, w); body["payment_id"] != "pay-new" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestReadMPPayload(t *testing.T) {
	gin.SetMode(gin.TestMode)

	read := func(body string) (string, error) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPost, "/", nil)
		if body != "" {
			c.Request = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
		}
		raw, err := readMPPayload(c)
		return string(raw), err
	}

	t.Run("empty body", func(t *testing.T) {
		got, err := read("")
		if err != nil || got != "{}" {
			t.Fatalf("expected {}, got %q err=%v", got, err)
		}
	})

	t.Run("bare payload", func(t *testing.T) {
		got, err := read(`{"payment_method_id":"pix"}`)
		if err != nil || got != `{"payment_method_id":"pix"}` {
			t.Fatalf("unexpected %q err=%v", got, err)
		}
	})

	t.Run("read error", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPost, "/", nil)
		c.Request.Body = failingReadCloser{}
		if _, err := readMPPayload(c); err == nil {
			t.Fatal("expected error")
		}
	})
}
