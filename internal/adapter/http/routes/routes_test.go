package routes

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"rebobinagem/internal/adapter/http/handlers"
	"rebobinagem/internal/adapter/http/handlers/mocks"
	"rebobinagem/internal/adapter/http/middleware"
	"rebobinagem/internal/documents"
	"rebobinagem/internal/domain/entities"
	"rebobinagem/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

const testSecret = "routes-secret"

func token(t *testing.T, sub string, role entities.Role) string {
	t.Helper()
	claims := middleware.Claims{
		Role: string(role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   sub,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return s
}

func newTestRouter(t *testing.T) (*gin.Engine, *mocks.MockIBudgetUseCase) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	budgets := mocks.NewMockIBudgetUseCase(ctrl)
	clients := mocks.NewMockIClientUseCase(ctrl)

	r := NewRouter(Handlers{
		Budgets:   handlers.NewBudgetHandler(budgets),
		Clients:   handlers.NewClientHandler(clients),
		Parts:     handlers.NewPartHandler(mocks.NewMockIPartUseCase(ctrl)),
		Payments:  handlers.NewBillingPaymentHandler(mocks.NewMockIBillingPaymentUseCase(ctrl)),
		Documents: handlers.NewDocumentHandler(budgets, clients, documents.Shop{}),
	}, testSecret)
	return r, budgets
}

func get(r *gin.Engine, path, bearer string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRouter(t *testing.T) {
	t.Run("ping is public", func(t *testing.T) {
		r, _ := newTestRouter(t)
		w := get(r, "/v1/ping", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if w.Header().Get(middleware.RequestIDHeader) == "" {
			t.Fatal("expected request id header")
		}
	})

	t.Run("budgets require a token", func(t *testing.T) {
		r, _ := newTestRouter(t)
		if w := get(r, "/v1/budgets", ""); w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("budgets with token", func(t *testing.T) {
		r, budgets := newTestRouter(t)
		budgets.EXPECT().ListBudgets(gomock.Any(), entities.BudgetFilter{}).Return(nil, nil)

		if w := get(r, "/v1/budgets", token(t, "u-op", entities.RoleOperator)); w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("dashboard is admin only", func(t *testing.T) {
		r, _ := newTestRouter(t)
		if w := get(r, "/v1/dashboard", token(t, "u-op", entities.RoleOperator)); w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})

	t.Run("dashboard for admin", func(t *testing.T) {
		r, budgets := newTestRouter(t)
		budgets.EXPECT().Summary(gomock.Any(), entities.Actor{ID: "u-admin", Role: entities.RoleAdmin}).
			Return(usecase.BudgetSummary{Revenue: decimal.Zero}, nil)

		if w := get(r, "/v1/dashboard", token(t, "u-admin", entities.RoleAdmin)); w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}
