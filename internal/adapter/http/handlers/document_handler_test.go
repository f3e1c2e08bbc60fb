package handlers

import (
	"net/http"
	"strings"
	"testing"

	"rebobinagem/internal/adapter/http/handlers/mocks"
	"rebobinagem/internal/documents"
	"rebobinagem/internal/domain/entities"
	"rebobinagem/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

var testShop = documents.Shop{Name: "Rebobinagem Teste", Phone: "1133334444", Address: "Rua A, 10"}

func newDocumentRouter(t *testing.T, client entities.Client, clientErr error) *gin.Engine {
	t.Helper()
	ctrl := gomock.NewController(t)
	budgets := mocks.NewMockIBudgetUseCase(ctrl)
	clients := mocks.NewMockIClientUseCase(ctrl)
	h := NewDocumentHandler(budgets, clients, testShop)

	budgets.EXPECT().GetBudget(gomock.Any(), "abcdef12-3456").Return(sampleBudget(), nil).AnyTimes()
	budgets.EXPECT().GetBudget(gomock.Any(), "missing").Return(entities.Budget{}, usecase.ErrBudgetNotFound).AnyTimes()
	clients.EXPECT().GetByID(gomock.Any(), "c-1").Return(client, clientErr).AnyTimes()

	r := newRouter(&operator)
	r.GET("/v1/budgets/:id/pdf", h.BudgetPDF)
	r.GET("/v1/budgets/:id/label", h.MotorLabel)
	r.GET("/v1/budgets/:id/whatsapp", h.WhatsApp)
	return r
}

func TestDocumentHandler(t *testing.T) {
	ana := entities.Client{ID: "c-1", Name: "Ana", Mobile: "(11) 99999-0000"}

	t.Run("budget pdf", func(t *testing.T) {
		r := newDocumentRouter(t, ana, nil)
		w := do(r, http.MethodGet, "/v1/budgets/abcdef12-3456/pdf", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		if ct := w.Header().Get("Content-Type"); ct != "application/pdf" {
			t.Fatalf("unexpected content type %q", ct)
		}
		if !strings.Contains(w.Header().Get("Content-Disposition"), "orcamento_ABCDEF12.pdf") {
			t.Fatalf("unexpected disposition %q", w.Header().Get("Content-Disposition"))
		}
		if !strings.HasPrefix(w.Body.String(), "%PDF-") {
			t.Fatal("body is not a pdf")
		}
	})

	t.Run("motor label", func(t *testing.T) {
		r := newDocumentRouter(t, ana, nil)
		w := do(r, http.MethodGet, "/v1/budgets/abcdef12-3456/label", "")
		if w.Code != http.StatusOK || !strings.HasPrefix(w.Body.String(), "%PDF-") {
			t.Fatalf("expected pdf, got %d", w.Code)
		}
	})

	t.Run("budget missing", func(t *testing.T) {
		r := newDocumentRouter(t, ana, nil)
		if w := do(r, http.MethodGet, "/v1/budgets/missing/pdf", ""); w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("client missing", func(t *testing.T) {
		r := newDocumentRouter(t, entities.Client{}, usecase.ErrClientNotFound)
		if w := do(r, http.MethodGet, "/v1/budgets/abcdef12-3456/whatsapp", ""); w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("whatsapp link", func(t *testing.T) {
		r := newDocumentRouter(t, ana, nil)
		w := do(r, http.MethodGet, "/v1/budgets/abcdef12-3456/whatsapp", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		url, _ := decode(t, w)["url"].(string)
		if !strings.HasPrefix(url, "https://wa.me/5511999990000?text=") {
			t.Fatalf("unexpected url %q", url)
		}
	})

	t.Run("whatsapp without phone", func(t *testing.T) {
		r := newDocumentRouter(t, entities.Client{ID: "c-1", Name: "Ana", Phone: "123"}, nil)
		w := do(r, http.MethodGet, "/v1/budgets/abcdef12-3456/whatsapp", "")
		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
		if body := decode(t, w); body["code"] != "INVALID_PHONE" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}
