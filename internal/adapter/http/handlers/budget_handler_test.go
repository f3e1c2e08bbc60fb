package handlers

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"rebobinagem/internal/adapter/http/handlers/mocks"
	"rebobinagem/internal/domain/budgeting"
	"rebobinagem/internal/domain/entities"
	"rebobinagem/internal/usecase"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func sampleBudget() entities.Budget {
	return entities.Budget{
		ID:       "abcdef12-3456",
		ClientID: "c-1",
		Status:   entities.BudgetStatusPending,
		Items: []entities.LineItem{
			{ID: "i-1", BudgetID: "abcdef12-3456", PartID: "p-1", PartName: "Rolamento", Quantity: 2, UnitPrice: decimal.NewFromInt(50), Subtotal: decimal.NewFromInt(100)},
		},
		Subtotal: decimal.NewFromInt(100),
		Total:    decimal.NewFromInt(100),
		Date:     time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC),
	}
}

func TestBudgetHandler_CreateBudget(t *testing.T) {
	t.Run("anonymous", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		h := NewBudgetHandler(mocks.NewMockIBudgetUseCase(ctrl))
		r := newRouter(nil)
		r.POST("/v1/budgets", h.CreateBudget)

		if w := do(r, http.MethodPost, "/v1/budgets", `{"client_id":"c-1"}`); w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("malformed json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		h := NewBudgetHandler(mocks.NewMockIBudgetUseCase(ctrl))
		r := newRouter(&operator)
		r.POST("/v1/budgets", h.CreateBudget)

		if w := do(r, http.MethodPost, "/v1/budgets", `{`); w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing client", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		h := NewBudgetHandler(mocks.NewMockIBudgetUseCase(ctrl))
		r := newRouter(&operator)
		r.POST("/v1/budgets", h.CreateBudget)

		w := do(r, http.MethodPost, "/v1/budgets", `{"motor":{"brand":"WEG"}}`)
		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
		if body := decode(t, w); body["code"] != "VALIDATION_ERROR" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("item without quantity", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		h := NewBudgetHandler(mocks.NewMockIBudgetUseCase(ctrl))
		r := newRouter(&operator)
		r.POST("/v1/budgets", h.CreateBudget)

		w := do(r, http.MethodPost, "/v1/budgets", `{"client_id":"c-1","items":[{"part_id":"p-1","quantity":0}]}`)
		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
	})

	t.Run("discount above cap", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIBudgetUseCase(ctrl)
		h := NewBudgetHandler(uc)
		r := newRouter(&operator)
		r.POST("/v1/budgets", h.CreateBudget)

		uc.EXPECT().CreateBudget(gomock.Any(), operator, gomock.Any()).Return(entities.Budget{}, budgeting.ErrDiscountExceedsCap)

		w := do(r, http.MethodPost, "/v1/budgets", `{"client_id":"c-1","discount_percent":"10"}`)
		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
		if body := decode(t, w); body["code"] != "DISCOUNT_EXCEEDS_CAP" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIBudgetUseCase(ctrl)
		h := NewBudgetHandler(uc)
		r := newRouter(&operator)
		r.POST("/v1/budgets", h.CreateBudget)

		uc.EXPECT().CreateBudget(gomock.Any(), operator, gomock.Any()).
			DoAndReturn(func(_ any, _ entities.Actor, in usecase.CreateBudgetInput) (entities.Budget, error) {
				if in.ClientID != "c-1" || len(in.Items) != 1 || in.Items[0].Quantity != 2 {
					t.Fatalf("unexpected input: %+v", in)
				}
				return sampleBudget(), nil
			})

		w := do(r, http.MethodPost, "/v1/budgets", `{"client_id":"c-1","items":[{"part_id":"p-1","quantity":2}]}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
		body := decode(t, w)
		if body["total"] != "100.00" || body["short_id"] != "ABCDEF12" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestBudgetHandler_ListAndGet(t *testing.T) {
	t.Run("list passes filter", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIBudgetUseCase(ctrl)
		h := NewBudgetHandler(uc)
		r := newRouter(&operator)
		r.GET("/v1/budgets", h.ListBudgets)

		uc.EXPECT().ListBudgets(gomock.Any(), entities.BudgetFilter{ClientID: "c-1", Status: entities.BudgetStatusPending}).
			Return([]entities.Budget{sampleBudget()}, nil)

		w := do(r, http.MethodGet, "/v1/budgets?client_id=c-1&status=pending", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var list []map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &list); err != nil {
			t.Fatalf("invalid json body: %v", err)
		}
		if len(list) != 1 || list[0]["subtotal"] != "100.00" || list[0]["short_id"] != "ABCDEF12" {
			t.Fatalf("unexpected list: %s", w.Body.String())
		}
		if _, ok := list[0]["items"]; ok {
			t.Fatalf("list entries must not carry items: %s", w.Body.String())
		}
	})

	t.Run("get not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIBudgetUseCase(ctrl)
		h := NewBudgetHandler(uc)
		r := newRouter(&operator)
		r.GET("/v1/budgets/:id", h.GetBudget)

		uc.EXPECT().GetBudget(gomock.Any(), "missing").Return(entities.Budget{}, usecase.ErrBudgetNotFound)

		if w := do(r, http.MethodGet, "/v1/budgets/missing", ""); w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("get store failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIBudgetUseCase(ctrl)
		h := NewBudgetHandler(uc)
		r := newRouter(&operator)
		r.GET("/v1/budgets/:id", h.GetBudget)

		uc.EXPECT().GetBudget(gomock.Any(), "b-1").Return(entities.Budget{}, budgeting.WrapStoreError("budgets.get", errTest))

		w := do(r, http.MethodGet, "/v1/budgets/b-1", "")
		if w.Code != http.StatusBadGateway {
			t.Fatalf("expected 502, got %d", w.Code)
		}
		if body := decode(t, w); body["code"] != "STORE_UNAVAILABLE" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestBudgetHandler_Items(t *testing.T) {
	t.Run("add item", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIBudgetUseCase(ctrl)
		h := NewBudgetHandler(uc)
		r := newRouter(&operator)
		r.POST("/v1/budgets/:id/items", h.AddItem)

		price := decimal.NewFromInt(50)
		uc.EXPECT().AddItem(gomock.Any(), operator, "b-1", gomock.Any()).
			DoAndReturn(func(_ any, _ entities.Actor, _ string, in usecase.ItemInput) (entities.Budget, error) {
				if in.PartID != "p-1" || in.UnitPrice == nil || !in.UnitPrice.Equal(price) || !in.Merge {
					t.Fatalf("unexpected input: %+v", in)
				}
				return sampleBudget(), nil
			})

		w := do(r, http.MethodPost, "/v1/budgets/b-1/items", `{"part_id":"p-1","quantity":2,"unit_price":"50","merge":true}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("update missing item", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIBudgetUseCase(ctrl)
		h := NewBudgetHandler(uc)
		r := newRouter(&operator)
		r.PATCH("/v1/budgets/:id/items/:item_id", h.UpdateItem)

		uc.EXPECT().UpdateItem(gomock.Any(), operator, "b-1", "i-9", gomock.Any()).Return(entities.Budget{}, budgeting.ErrItemNotFound)

		if w := do(r, http.MethodPatch, "/v1/budgets/b-1/items/i-9", `{"quantity":3}`); w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("update invalid price", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIBudgetUseCase(ctrl)
		h := NewBudgetHandler(uc)
		r := newRouter(&operator)
		r.PATCH("/v1/budgets/:id/items/:item_id", h.UpdateItem)

		uc.EXPECT().UpdateItem(gomock.Any(), operator, "b-1", "i-1", gomock.Any()).Return(entities.Budget{}, budgeting.ErrInvalidPrice)

		if w := do(r, http.MethodPatch, "/v1/budgets/b-1/items/i-1", `{"unit_price":"0"}`); w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
	})

	t.Run("remove item", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIBudgetUseCase(ctrl)
		h := NewBudgetHandler(uc)
		r := newRouter(&operator)
		r.DELETE("/v1/budgets/:id/items/:item_id", h.RemoveItem)

		b := sampleBudget()
		b.Items = nil
		b.Subtotal, b.Total = decimal.Zero, decimal.Zero
		uc.EXPECT().RemoveItem(gomock.Any(), operator, "b-1", "i-1").Return(b, nil)

		w := do(r, http.MethodDelete, "/v1/budgets/b-1/items/i-1", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if body := decode(t, w); body["total"] != "0.00" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestBudgetHandler_Lifecycle(t *testing.T) {
	t.Run("set discount clears with null", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIBudgetUseCase(ctrl)
		h := NewBudgetHandler(uc)
		r := newRouter(&admin)
		r.PUT("/v1/budgets/:id/discount", h.SetDiscount)

		uc.EXPECT().SetDiscount(gomock.Any(), admin, "b-1", (*decimal.Decimal)(nil)).Return(sampleBudget(), nil)

		if w := do(r, http.MethodPut, "/v1/budgets/b-1/discount", `{"discount_percent":null}`); w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("transition missing status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		h := NewBudgetHandler(mocks.NewMockIBudgetUseCase(ctrl))
		r := newRouter(&operator)
		r.PATCH("/v1/budgets/:id/status", h.TransitionStatus)

		if w := do(r, http.MethodPatch, "/v1/budgets/b-1/status", `{}`); w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
	})

	t.Run("transition forbidden", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIBudgetUseCase(ctrl)
		h := NewBudgetHandler(uc)
		r := newRouter(&operator)
		r.PATCH("/v1/budgets/:id/status", h.TransitionStatus)

		uc.EXPECT().TransitionStatus(gomock.Any(), operator, "b-1", entities.BudgetStatusPending).Return(entities.Budget{}, budgeting.ErrForbidden)

		if w := do(r, http.MethodPatch, "/v1/budgets/b-1/status", `{"status":"pending"}`); w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})

	t.Run("transition illegal", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIBudgetUseCase(ctrl)
		h := NewBudgetHandler(uc)
		r := newRouter(&operator)
		r.PATCH("/v1/budgets/:id/status", h.TransitionStatus)

		uc.EXPECT().TransitionStatus(gomock.Any(), operator, "b-1", entities.BudgetStatusCompleted).Return(entities.Budget{}, budgeting.ErrIllegalTransition)

		if w := do(r, http.MethodPatch, "/v1/budgets/b-1/status", `{"status":"completed"}`); w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("convert empty draft", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIBudgetUseCase(ctrl)
		h := NewBudgetHandler(uc)
		r := newRouter(&operator)
		r.POST("/v1/budgets/:id/convert", h.ConvertDraftToQuote)

		uc.EXPECT().ConvertDraftToQuote(gomock.Any(), operator, "b-1").Return(entities.Budget{}, budgeting.ErrEmptyBudgetCannotAdvance)

		w := do(r, http.MethodPost, "/v1/budgets/b-1/convert", "")
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
		if body := decode(t, w); body["code"] != "EMPTY_BUDGET" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("allowed statuses", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIBudgetUseCase(ctrl)
		h := NewBudgetHandler(uc)
		r := newRouter(&operator)
		r.GET("/v1/budgets/:id/statuses", h.AllowedStatuses)

		uc.EXPECT().AllowedStatuses(gomock.Any(), operator, "b-1").
			Return([]entities.BudgetStatus{entities.BudgetStatusPending, entities.BudgetStatusCompleted}, nil)

		w := do(r, http.MethodGet, "/v1/budgets/b-1/statuses", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		statuses, _ := decode(t, w)["statuses"].([]any)
		if len(statuses) != 2 || statuses[1] != "completed" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("delete by operator", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIBudgetUseCase(ctrl)
		h := NewBudgetHandler(uc)
		r := newRouter(&operator)
		r.DELETE("/v1/budgets/:id", h.DeleteBudget)

		uc.EXPECT().DeleteBudget(gomock.Any(), operator, "b-1").Return(budgeting.ErrForbidden)

		if w := do(r, http.MethodDelete, "/v1/budgets/b-1", ""); w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})

	t.Run("delete by admin", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIBudgetUseCase(ctrl)
		h := NewBudgetHandler(uc)
		r := newRouter(&admin)
		r.DELETE("/v1/budgets/:id", h.DeleteBudget)

		uc.EXPECT().DeleteBudget(gomock.Any(), admin, "b-1").Return(nil)

		if w := do(r, http.MethodDelete, "/v1/budgets/b-1", ""); w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
	})

	t.Run("update details", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIBudgetUseCase(ctrl)
		h := NewBudgetHandler(uc)
		r := newRouter(&operator)
		r.PATCH("/v1/budgets/:id", h.UpdateDetails)

		uc.EXPECT().UpdateDetails(gomock.Any(), operator, "b-1", gomock.Any()).
			DoAndReturn(func(_ any, _ entities.Actor, _ string, in usecase.DetailsInput) (entities.Budget, error) {
				if in.TechnicalReport == nil || *in.TechnicalReport != "bobina queimada" || in.Notes != nil {
					t.Fatalf("unexpected input: %+v", in)
				}
				return sampleBudget(), nil
			})

		if w := do(r, http.MethodPatch, "/v1/budgets/b-1", `{"technical_report":"bobina queimada"}`); w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestBudgetHandler_Dashboard(t *testing.T) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIBudgetUseCase(ctrl)
	h := NewBudgetHandler(uc)
	r := newRouter(&admin)
	r.GET("/v1/dashboard", h.Dashboard)

	uc.EXPECT().Summary(gomock.Any(), admin).Return(usecase.BudgetSummary{
		Clients:  3,
		Budgets:  1,
		ByStatus: map[entities.BudgetStatus]int{entities.BudgetStatusClosed: 1},
		Revenue:  decimal.RequireFromString("1234.5"),
		Recent:   []entities.Budget{sampleBudget()},
	}, nil)

	w := do(r, http.MethodGet, "/v1/dashboard", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	body := decode(t, w)
	if body["revenue"] != "1234.50" || body["clients"] != float64(3) {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
}
