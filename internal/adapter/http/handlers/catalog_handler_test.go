package handlers

import (
	"net/http"
	"testing"

	"rebobinagem/internal/adapter/http/handlers/mocks"
	"rebobinagem/internal/domain/budgeting"
	"rebobinagem/internal/domain/entities"
	"rebobinagem/internal/usecase"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func TestClientHandler(t *testing.T) {
	t.Run("create requires name", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		h := NewClientHandler(mocks.NewMockIClientUseCase(ctrl))
		r := newRouter(&operator)
		r.POST("/v1/clients", h.CreateClient)

		if w := do(r, http.MethodPost, "/v1/clients", `{"phone":"11999990000"}`); w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
	})

	t.Run("create", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIClientUseCase(ctrl)
		h := NewClientHandler(uc)
		r := newRouter(&operator)
		r.POST("/v1/clients", h.CreateClient)

		uc.EXPECT().Create(gomock.Any(), entities.Client{Name: "Ana", Mobile: "11999990000"}).
			Return(entities.Client{ID: "c-1", Name: "Ana", Mobile: "11999990000"}, nil)

		w := do(r, http.MethodPost, "/v1/clients", `{"name":"Ana","mobile":"11999990000"}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		if body := decode(t, w); body["id"] != "c-1" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("list forwards query", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIClientUseCase(ctrl)
		h := NewClientHandler(uc)
		r := newRouter(&operator)
		r.GET("/v1/clients", h.ListClients)

		uc.EXPECT().List(gomock.Any(), "ana").Return([]entities.Client{{ID: "c-1", Name: "Ana"}}, nil)

		if w := do(r, http.MethodGet, "/v1/clients?q=ana", ""); w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("get not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIClientUseCase(ctrl)
		h := NewClientHandler(uc)
		r := newRouter(&operator)
		r.GET("/v1/clients/:id", h.GetClient)

		uc.EXPECT().GetByID(gomock.Any(), "c-9").Return(entities.Client{}, usecase.ErrClientNotFound)

		if w := do(r, http.MethodGet, "/v1/clients/c-9", ""); w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("update uses path id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIClientUseCase(ctrl)
		h := NewClientHandler(uc)
		r := newRouter(&operator)
		r.PUT("/v1/clients/:id", h.UpdateClient)

		uc.EXPECT().Update(gomock.Any(), entities.Client{ID: "c-1", Name: "Ana Maria"}).
			Return(entities.Client{ID: "c-1", Name: "Ana Maria"}, nil)

		if w := do(r, http.MethodPut, "/v1/clients/c-1", `{"name":"Ana Maria"}`); w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("delete with budgets", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIClientUseCase(ctrl)
		h := NewClientHandler(uc)
		r := newRouter(&operator)
		r.DELETE("/v1/clients/:id", h.DeleteClient)

		uc.EXPECT().Delete(gomock.Any(), "c-1").Return(usecase.ErrClientHasBudgets)

		if w := do(r, http.MethodDelete, "/v1/clients/c-1", ""); w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})
}

func TestPartHandler(t *testing.T) {
	t.Run("create rejects non positive price", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		h := NewPartHandler(mocks.NewMockIPartUseCase(ctrl))
		r := newRouter(&admin)
		r.POST("/v1/parts", h.CreatePart)

		if w := do(r, http.MethodPost, "/v1/parts", `{"name":"Fio 18","price":"0"}`); w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
	})

	t.Run("create by operator", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIPartUseCase(ctrl)
		h := NewPartHandler(uc)
		r := newRouter(&operator)
		r.POST("/v1/parts", h.CreatePart)

		uc.EXPECT().Create(gomock.Any(), operator, gomock.Any()).Return(entities.Part{}, budgeting.ErrForbidden)

		if w := do(r, http.MethodPost, "/v1/parts", `{"name":"Fio 18","price":"12.5"}`); w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})

	t.Run("create by admin", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIPartUseCase(ctrl)
		h := NewPartHandler(uc)
		r := newRouter(&admin)
		r.POST("/v1/parts", h.CreatePart)

		uc.EXPECT().Create(gomock.Any(), admin, gomock.Any()).
			DoAndReturn(func(_ any, _ entities.Actor, p entities.Part) (entities.Part, error) {
				if p.Name != "Fio 18" || !p.Price.Equal(decimal.RequireFromString("12.5")) {
					t.Fatalf("unexpected part: %+v", p)
				}
				p.ID = "p-1"
				return p, nil
			})

		w := do(r, http.MethodPost, "/v1/parts", `{"name":"Fio 18","price":12.5}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
		if body := decode(t, w); body["price"] != "12.50" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("list", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIPartUseCase(ctrl)
		h := NewPartHandler(uc)
		r := newRouter(&operator)
		r.GET("/v1/parts", h.ListParts)

		uc.EXPECT().List(gomock.Any(), "").Return(nil, nil)

		w := do(r, http.MethodGet, "/v1/parts", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("delete missing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIPartUseCase(ctrl)
		h := NewPartHandler(uc)
		r := newRouter(&admin)
		r.DELETE("/v1/parts/:id", h.DeletePart)

		uc.EXPECT().Delete(gomock.Any(), admin, "p-9").Return(usecase.ErrPartNotFound)

		if w := do(r, http.MethodDelete, "/v1/parts/p-9", ""); w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}
