package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"rebobinagem/internal/domain/budgeting"
	"rebobinagem/internal/domain/entities"
	"rebobinagem/internal/usecase/interfaces"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var (
	ErrBillingPaymentNotFound         = errors.New("billing payment not found")
	ErrInvalidPaymentID               = errors.New("invalid payment id")
	ErrInvalidPaymentBudgetID         = errors.New("invalid budget_id")
	ErrInvalidMPPayload               = errors.New("invalid mercado pago payload")
	ErrBudgetNotCompleted             = errors.New("budget not completed")
	ErrPaymentGatewayNotConfigured    = errors.New("payment gateway not configured")
	ErrPaymentNotApproved             = errors.New("payment not approved")
	ErrPaymentGatewayBadRequest       = errors.New("payment gateway bad request")
	ErrPaymentGatewayUnauthorized     = errors.New("payment gateway unauthorized")
	ErrPaymentGatewayInvalidUsers     = errors.New("payment gateway invalid users involved")
	ErrPaymentGatewayCustomerNotFound = errors.New("payment gateway customer not found")
)

// sandboxPayerEmail is the test buyer Mercado Pago documents for TEST- credentials.
const sandboxPayerEmail = "test_user_br@testuser.com"

// PaymentOptions carries the Mercado Pago settings the use case needs to shape payloads.
type PaymentOptions struct {
	MockMode        bool
	AccessToken     string
	TestPayerEmail  string
	TestPayerUserID string
}

func (o PaymentOptions) sandbox() bool {
	return strings.HasPrefix(strings.TrimSpace(o.AccessToken), "TEST-")
}

// IBillingPaymentUseCase collects the payment of a completed budget.
//
// A successful, approved charge is stored and closes the budget. The amount charged is
// always the stored budget total.
type IBillingPaymentUseCase interface {
	CollectPayment(ctx context.Context, actor entities.Actor, budgetID string, mpPayload json.RawMessage) (entities.BillingPayment, error)
	GetByID(ctx context.Context, id string) (entities.BillingPayment, error)
	ListPayments(ctx context.Context, budgetID string) ([]entities.BillingPayment, error)
}

type BillingPaymentUseCase struct {
	repo     interfaces.IBillingPaymentRepository
	budgets  IBudgetUseCase
	gateway  interfaces.IPaymentGateway
	statuses budgeting.StatusMachine
	opts     PaymentOptions
	logger   zerolog.Logger
}

var _ IBillingPaymentUseCase = (*BillingPaymentUseCase)(nil)

func NewBillingPaymentUseCase(repo interfaces.IBillingPaymentRepository, budgets IBudgetUseCase, gateway interfaces.IPaymentGateway, opts PaymentOptions) *BillingPaymentUseCase {
	return &BillingPaymentUseCase{
		repo:     repo,
		budgets:  budgets,
		gateway:  gateway,
		statuses: budgeting.NewStatusMachine(),
		opts:     opts,
		logger:   log.With().Str("component", "payment_usecase").Logger(),
	}
}

func (u *BillingPaymentUseCase) CollectPayment(ctx context.Context, actor entities.Actor, budgetID string, mpPayload json.RawMessage) (entities.BillingPayment, error) {
	budgetID = strings.TrimSpace(budgetID)
	logger := u.logger.With().Str("budget_id", budgetID).Str("actor_id", actor.ID).Logger()
	logger.Debug().Int("payload_len", len(mpPayload)).Msg("collect payment start")

	if budgetID == "" {
		return entities.BillingPayment{}, ErrInvalidPaymentBudgetID
	}
	if len(mpPayload) == 0 || !json.Valid(mpPayload) {
		if !u.opts.MockMode {
			logger.Warn().Msg("invalid payload")
			return entities.BillingPayment{}, ErrInvalidMPPayload
		}
		mpPayload = json.RawMessage("{}")
	}
	if u.gateway == nil {
		return entities.BillingPayment{}, ErrPaymentGatewayNotConfigured
	}

	b, err := u.budgets.GetBudget(ctx, budgetID)
	if err != nil {
		logger.Warn().Err(err).Msg("failed loading budget")
		return entities.BillingPayment{}, err
	}
	if b.Status != entities.BudgetStatusCompleted {
		logger.Warn().Str("status", string(b.Status)).Msg("budget not completed")
		return entities.BillingPayment{}, ErrBudgetNotCompleted
	}
	// Charging is only allowed for whoever may close the budget afterwards.
	if err := u.statuses.Check(b.Status, entities.BudgetStatusClosed, actor.Role, len(b.Items)); err != nil {
		return entities.BillingPayment{}, err
	}

	var reqMap map[string]any
	if err := json.Unmarshal(mpPayload, &reqMap); err == nil {
		if !u.opts.MockMode && !hasNonEmptyString(reqMap, "payment_method_id") {
			logger.Warn().Msg("missing payment_method_id")
			return entities.BillingPayment{}, ErrInvalidMPPayload
		}
		if !u.opts.MockMode {
			u.normalizeSandboxPayerFromUserID(reqMap)
			u.ensurePayerDefaults(reqMap)
			if !hasPayer(reqMap) {
				logger.Warn().Msg("missing or invalid payer")
				return entities.BillingPayment{}, ErrInvalidMPPayload
			}
		}

		if _, ok := reqMap["external_reference"]; !ok {
			reqMap["external_reference"] = b.ID
		}
		if _, ok := reqMap["description"]; !ok {
			reqMap["description"] = fmt.Sprintf("Orçamento %s", b.ShortID())
		}
		// The stored snapshot total is the amount charged, never a recomputation.
		reqMap["transaction_amount"] = json.Number(b.Total.StringFixed(2))
		if enriched, err := json.Marshal(reqMap); err == nil {
			mpPayload = enriched
		}
	} else {
		logger.Debug().Err(err).Msg("payload is not an object; sent as is")
	}

	providerPaymentID, providerStatus, providerResp, err := u.gateway.CreatePayment(ctx, mpPayload)
	if err != nil {
		logger.Error().Err(err).Msg("payment gateway failed")
		switch {
		case isGatewayCustomerNotFound(err):
			return entities.BillingPayment{}, ErrPaymentGatewayCustomerNotFound
		case isGatewayInvalidUsers(err):
			return entities.BillingPayment{}, ErrPaymentGatewayInvalidUsers
		case isGatewayUnauthorized(err):
			return entities.BillingPayment{}, ErrPaymentGatewayUnauthorized
		case isGatewayBadRequest(err):
			return entities.BillingPayment{}, ErrPaymentGatewayBadRequest
		}
		return entities.BillingPayment{}, err
	}

	var parsed map[string]interface{}
	if err := json.Unmarshal(providerResp, &parsed); err != nil {
		logger.Debug().Err(err).Msg("provider response is not an object")
	}

	p := entities.BillingPayment{
		ID:                 providerPaymentID,
		BudgetID:           b.ID,
		Amount:             b.Total,
		Date:               time.Now().UTC(),
		Status:             paymentStatusFromProvider(providerStatus),
		CollectedBy:        actor.ID,
		ProviderPayloadRaw: providerResp,
		ProviderPayload:    parsed,
	}

	created, err := u.repo.Create(ctx, p)
	if err != nil {
		logger.Error().Err(err).Str("payment_id", p.ID).Msg("payment repository create failed")
		return entities.BillingPayment{}, budgeting.WrapStoreError("payments.create", err)
	}
	if created.Status != entities.PaymentStatusApproved {
		logger.Info().Str("payment_id", created.ID).Str("status", string(created.Status)).Msg("payment recorded, not approved")
		return created, ErrPaymentNotApproved
	}

	if _, err := u.budgets.TransitionStatus(ctx, actor, b.ID, entities.BudgetStatusClosed); err != nil {
		logger.Error().Err(err).Str("payment_id", created.ID).Msg("payment approved but budget not closed")
		return created, err
	}

	logger.Info().Str("payment_id", created.ID).Str("amount", created.Amount.StringFixed(2)).Msg("payment collected, budget closed")
	return created, nil
}

func (u *BillingPaymentUseCase) GetByID(ctx context.Context, id string) (entities.BillingPayment, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.BillingPayment{}, ErrInvalidPaymentID
	}

	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.BillingPayment{}, budgeting.WrapStoreError("payments.get", err)
	}
	if p.ID == "" {
		return entities.BillingPayment{}, ErrBillingPaymentNotFound
	}
	return p, nil
}

func (u *BillingPaymentUseCase) ListPayments(ctx context.Context, budgetID string) ([]entities.BillingPayment, error) {
	budgetID = strings.TrimSpace(budgetID)
	if budgetID == "" {
		return nil, ErrInvalidPaymentBudgetID
	}
	out, err := u.repo.ListByBudgetID(ctx, budgetID)
	if err != nil {
		return nil, budgeting.WrapStoreError("payments.list", err)
	}
	return out, nil
}

func paymentStatusFromProvider(status string) entities.PaymentStatus {
	switch strings.ToLower(strings.TrimSpace(status)) {
	case "approved", "authorized":
		return entities.PaymentStatusApproved
	case "rejected", "cancelled", "refunded", "charged_back":
		return entities.PaymentStatusDenied
	}
	return entities.PaymentStatusPending
}

func hasNonEmptyString(m map[string]any, key string) bool {
	v, ok := m[key]
	if !ok {
		return false
	}
	s, ok := v.(string)
	if !ok {
		return false
	}
	return strings.TrimSpace(s) != ""
}

func hasPayer(m map[string]any) bool {
	v, ok := m["payer"]
	if !ok {
		return false
	}
	payer, ok := v.(map[string]any)
	if !ok {
		return false
	}
	return hasNonEmptyString(payer, "email") || hasPayerID(payer)
}

func hasPayerID(payer map[string]any) bool {
	v, ok := payer["id"]
	if !ok || v == nil {
		return false
	}
	s := strings.TrimSpace(fmt.Sprintf("%v", v))
	return s != "" && s != "<nil>"
}

func (u *BillingPaymentUseCase) ensurePayerDefaults(m map[string]any) {
	v, ok := m["payer"]
	if !ok || v == nil {
		v = map[string]any{}
		m["payer"] = v
	}
	payer, ok := v.(map[string]any)
	if !ok {
		return
	}

	if _, ok := payer["type"]; !ok {
		payer["type"] = "customer"
	}

	// Fill the email only when neither id nor email was sent.
	if !hasPayerID(payer) && !hasNonEmptyString(payer, "email") {
		if email := strings.TrimSpace(u.opts.TestPayerEmail); email != "" {
			payer["email"] = email
		} else if u.opts.sandbox() {
			payer["email"] = sandboxPayerEmail
		}
	}
}

// normalizeSandboxPayerFromUserID swaps the configured sandbox user id for its email,
// which is what the sandbox accepts for test buyers.
func (u *BillingPaymentUseCase) normalizeSandboxPayerFromUserID(m map[string]any) {
	v, ok := m["payer"]
	if !ok || v == nil {
		return
	}
	payer, ok := v.(map[string]any)
	if !ok {
		return
	}
	if !hasPayerID(payer) || hasNonEmptyString(payer, "email") {
		return
	}
	if !u.opts.sandbox() {
		return
	}

	configuredUserID := strings.TrimSpace(u.opts.TestPayerUserID)
	configuredEmail := strings.TrimSpace(u.opts.TestPayerEmail)
	if configuredUserID == "" || configuredEmail == "" {
		return
	}

	rawID := strings.TrimSpace(fmt.Sprintf("%v", payer["id"]))
	if rawID != configuredUserID {
		return
	}

	payer["email"] = configuredEmail
	delete(payer, "id")
	u.logger.Debug().Msg("mapped sandbox payer user_id to payer.email")
}

func isGatewayBadRequest(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"bad_request\"") || strings.Contains(msg, "\"status\":400")
}

func isGatewayUnauthorized(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"unauthorized\"") || strings.Contains(msg, "\"status\":401")
}

func isGatewayInvalidUsers(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "invalid users involved") || strings.Contains(msg, "\"code\":2034")
}

func isGatewayCustomerNotFound(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "customer not found") || strings.Contains(msg, "\"code\":2002")
}
