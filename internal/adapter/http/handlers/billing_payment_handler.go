package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	response "rebobinagem/internal/adapter/http/dto/response"
	"rebobinagem/internal/usecase"
	"rebobinagem/pkg"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// BillingPaymentHandler handles HTTP requests for Billing payments.
type BillingPaymentHandler struct {
	usecase usecase.IBillingPaymentUseCase
	logger  zerolog.Logger
}

func NewBillingPaymentHandler(uc usecase.IBillingPaymentUseCase) *BillingPaymentHandler {
	return &BillingPaymentHandler{
		usecase: uc,
		logger:  log.With().Str("component", "payment_handler").Logger(),
	}
}

// CollectPayment godoc
// @Summary      Collect payment
// @Description  Charges the total of a completed budget through Mercado Pago. An approved payment closes the budget.
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        budget_id  path      string                                true  "Budget id"
// @Param        payment    body      request.BillingPaymentCreateRequest  true  "Mercado Pago payload"
// @Success      200        {object}  response.BillingPaymentResponse
// @Failure      400        {object}  pkg.HTTPError
// @Failure      402        {object}  response.BillingPaymentResponse
// @Failure      409        {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /payments/{budget_id} [post]
func (h *BillingPaymentHandler) CollectPayment(c *gin.Context) {
	budgetID := c.Param("budget_id")
	logger := h.logger.With().Str("budget_id", budgetID).Logger()

	actor, ok := currentActor(c)
	if !ok {
		return
	}
	mpPayload, err := readMPPayload(c)
	if err != nil {
		logger.Warn().Err(err).Msg("invalid payload")
		writeError(c, errInvalidRequest)
		return
	}

	created, err := h.usecase.CollectPayment(c.Request.Context(), actor, budgetID, mpPayload)
	if errors.Is(err, usecase.ErrPaymentNotApproved) {
		logger.Info().Str("payment_id", created.ID).Str("status", string(created.Status)).Msg("payment not approved")
		c.JSON(http.StatusPaymentRequired, gin.H{
			"code":    "PAYMENT_NOT_APPROVED",
			"message": "Payment was not approved",
			"payment": response.FromBillingPayment(created),
		})
		return
	}
	if err != nil {
		appErr := mapBillingPaymentError(err)
		logger.Warn().Err(err).Int("status", appErr.HTTPStatus).Msg("collect payment failed")
		writeError(c, appErr)
		return
	}
	logger.Info().Str("payment_id", created.ID).Msg("payment collected")

	c.JSON(http.StatusOK, response.FromBillingPayment(created))
}

// GetLatestPayment godoc
// @Summary  Latest payment of a budget
// @Tags     payments
// @Produce  json
// @Param    budget_id  path      string  true  "Budget id"
// @Success  200        {object}  response.BillingPaymentResponse
// @Failure  404        {object}  pkg.HTTPError
// @Security Bearer
// @Router   /payments/{budget_id} [get]
func (h *BillingPaymentHandler) GetLatestPayment(c *gin.Context) {
	budgetID := c.Param("budget_id")

	payments, err := h.usecase.ListPayments(c.Request.Context(), budgetID)
	if err != nil {
		appErr := mapBillingPaymentError(err)
		h.logger.Warn().Err(err).Str("budget_id", budgetID).Msg("list payments failed")
		writeError(c, appErr)
		return
	}
	if len(payments) == 0 {
		writeError(c, pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound))
		return
	}

	latest := payments[0]
	for _, p := range payments[1:] {
		if !p.Date.Before(latest.Date) {
			latest = p
		}
	}
	c.JSON(http.StatusOK, response.FromBillingPayment(latest))
}

// readMPPayload accepts either {"mp_payload": {...}} or the bare Mercado Pago payload.
func readMPPayload(c *gin.Context) (json.RawMessage, error) {
	raw, err := c.GetRawData()
	if err != nil {
		return nil, err
	}
	if len(strings.TrimSpace(string(raw))) == 0 {
		return json.RawMessage("{}"), nil
	}
	if !json.Valid(raw) {
		return nil, errors.New("request body is not valid json")
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(raw, &envelope); err == nil {
		if wrapped, ok := envelope["mp_payload"]; ok {
			if v := strings.TrimSpace(string(wrapped)); v == "" || v == "null" {
				return nil, errors.New("mp_payload cannot be empty")
			}
			return wrapped, nil
		}
	}

	return json.RawMessage(raw), nil
}

func mapBillingPaymentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidPaymentBudgetID), errors.Is(err, usecase.ErrInvalidMPPayload), errors.Is(err, usecase.ErrPaymentGatewayBadRequest):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayCustomerNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_CUSTOMER_NOT_FOUND", "Payer not found for this Mercado Pago test context", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayInvalidUsers):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_INVALID_USERS", "Invalid users involved between seller token and payer test user", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayUnauthorized):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAUTHORIZED", "Payment provider unauthorized", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrBudgetNotCompleted):
		return pkg.NewDomainErrorSimple("BUDGET_NOT_COMPLETED", "Budget not completed", http.StatusConflict)
	case errors.Is(err, usecase.ErrBillingPaymentNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPaymentGatewayNotConfigured):
		return pkg.NewDomainErrorSimple("PAYMENT_GATEWAY_UNAVAILABLE", "Payment gateway not configured", http.StatusServiceUnavailable)
	default:
		return mapDomainError(err)
	}
}
