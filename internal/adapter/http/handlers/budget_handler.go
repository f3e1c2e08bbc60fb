package handlers

import (
	"net/http"
	"strings"

	request "rebobinagem/internal/adapter/http/dto/request"
	response "rebobinagem/internal/adapter/http/dto/response"
	"rebobinagem/internal/domain/entities"
	"rebobinagem/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// BudgetHandler handles HTTP requests for budgets, their items and lifecycle.
type BudgetHandler struct {
	usecase usecase.IBudgetUseCase
	logger  zerolog.Logger
}

func NewBudgetHandler(uc usecase.IBudgetUseCase) *BudgetHandler {
	return &BudgetHandler{
		usecase: uc,
		logger:  log.With().Str("component", "budget_handler").Logger(),
	}
}

// CreateBudget godoc
// @Summary      Create budget
// @Description  Creates a budget for a client and motor. Without items it starts as pre_quote.
// @Tags         budgets
// @Accept       json
// @Produce      json
// @Param        budget  body      request.BudgetCreateRequest  true  "Budget"
// @Success      201     {object}  response.BudgetResponse
// @Failure      400     {object}  pkg.HTTPError
// @Failure      404     {object}  pkg.HTTPError
// @Failure      422     {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /budgets [post]
func (h *BudgetHandler) CreateBudget(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	var payload request.BudgetCreateRequest
	if !bindAndValidate(c, &payload) {
		return
	}

	b, err := h.usecase.CreateBudget(c.Request.Context(), actor, payload.ToInput())
	if err != nil {
		h.fail(c, "create", "", err)
		return
	}
	c.JSON(http.StatusCreated, response.FromBudget(b))
}

// ListBudgets godoc
// @Summary      List budgets
// @Tags         budgets
// @Produce      json
// @Param        client_id  query     string  false  "Client id"
// @Param        status     query     string  false  "Status"
// @Success      200        {array}   response.BudgetListItemResponse
// @Security     Bearer
// @Router       /budgets [get]
func (h *BudgetHandler) ListBudgets(c *gin.Context) {
	filter := entities.BudgetFilter{
		ClientID: c.Query("client_id"),
		Status:   entities.BudgetStatus(strings.TrimSpace(c.Query("status"))),
	}
	list, err := h.usecase.ListBudgets(c.Request.Context(), filter)
	if err != nil {
		h.fail(c, "list", "", err)
		return
	}
	c.JSON(http.StatusOK, response.FromBudgetList(list))
}

// GetBudget godoc
// @Summary      Get budget
// @Tags         budgets
// @Produce      json
// @Param        id   path      string  true  "Budget id"
// @Success      200  {object}  response.BudgetResponse
// @Failure      404  {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /budgets/{id} [get]
func (h *BudgetHandler) GetBudget(c *gin.Context) {
	b, err := h.usecase.GetBudget(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, "get", c.Param("id"), err)
		return
	}
	c.JSON(http.StatusOK, response.FromBudget(b))
}

// UpdateDetails godoc
// @Summary      Update budget details
// @Tags         budgets
// @Accept       json
// @Produce      json
// @Param        id       path      string                        true  "Budget id"
// @Param        details  body      request.BudgetDetailsRequest  true  "Details"
// @Success      200      {object}  response.BudgetResponse
// @Security     Bearer
// @Router       /budgets/{id} [patch]
func (h *BudgetHandler) UpdateDetails(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	var payload request.BudgetDetailsRequest
	if !bindAndValidate(c, &payload) {
		return
	}
	b, err := h.usecase.UpdateDetails(c.Request.Context(), actor, c.Param("id"), payload.ToInput())
	if err != nil {
		h.fail(c, "update_details", c.Param("id"), err)
		return
	}
	c.JSON(http.StatusOK, response.FromBudget(b))
}

// DeleteBudget godoc
// @Summary      Delete budget (admin)
// @Tags         budgets
// @Param        id   path  string  true  "Budget id"
// @Success      204
// @Failure      403  {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /budgets/{id} [delete]
func (h *BudgetHandler) DeleteBudget(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	if err := h.usecase.DeleteBudget(c.Request.Context(), actor, c.Param("id")); err != nil {
		h.fail(c, "delete", c.Param("id"), err)
		return
	}
	c.Status(http.StatusNoContent)
}

// AddItem godoc
// @Summary      Add item
// @Tags         budgets
// @Accept       json
// @Produce      json
// @Param        id    path      string                     true  "Budget id"
// @Param        item  body      request.BudgetItemRequest  true  "Item"
// @Success      201   {object}  response.BudgetResponse
// @Security     Bearer
// @Router       /budgets/{id}/items [post]
func (h *BudgetHandler) AddItem(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	var payload request.BudgetItemRequest
	if !bindAndValidate(c, &payload) {
		return
	}
	b, err := h.usecase.AddItem(c.Request.Context(), actor, c.Param("id"), payload.ToInput())
	if err != nil {
		h.fail(c, "add_item", c.Param("id"), err)
		return
	}
	c.JSON(http.StatusCreated, response.FromBudget(b))
}

// UpdateItem godoc
// @Summary      Update item
// @Tags         budgets
// @Accept       json
// @Produce      json
// @Param        id       path      string                           true  "Budget id"
// @Param        item_id  path      string                           true  "Item id"
// @Param        item     body      request.BudgetItemUpdateRequest  true  "Changes"
// @Success      200      {object}  response.BudgetResponse
// @Security     Bearer
// @Router       /budgets/{id}/items/{item_id} [patch]
func (h *BudgetHandler) UpdateItem(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	var payload request.BudgetItemUpdateRequest
	if !bindAndValidate(c, &payload) {
		return
	}
	b, err := h.usecase.UpdateItem(c.Request.Context(), actor, c.Param("id"), c.Param("item_id"), payload.ToInput())
	if err != nil {
		h.fail(c, "update_item", c.Param("id"), err)
		return
	}
	c.JSON(http.StatusOK, response.FromBudget(b))
}

// RemoveItem godoc
// @Summary      Remove item
// @Tags         budgets
// @Produce      json
// @Param        id       path      string  true  "Budget id"
// @Param        item_id  path      string  true  "Item id"
// @Success      200      {object}  response.BudgetResponse
// @Security     Bearer
// @Router       /budgets/{id}/items/{item_id} [delete]
func (h *BudgetHandler) RemoveItem(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	b, err := h.usecase.RemoveItem(c.Request.Context(), actor, c.Param("id"), c.Param("item_id"))
	if err != nil {
		h.fail(c, "remove_item", c.Param("id"), err)
		return
	}
	c.JSON(http.StatusOK, response.FromBudget(b))
}

// SetDiscount godoc
// @Summary      Set discount
// @Description  Sets the discount percent; null or 0 clears it. Operators are capped.
// @Tags         budgets
// @Accept       json
// @Produce      json
// @Param        id        path      string                   true  "Budget id"
// @Param        discount  body      request.DiscountRequest  true  "Discount"
// @Success      200       {object}  response.BudgetResponse
// @Failure      422       {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /budgets/{id}/discount [put]
func (h *BudgetHandler) SetDiscount(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	var payload request.DiscountRequest
	if !bindAndValidate(c, &payload) {
		return
	}
	b, err := h.usecase.SetDiscount(c.Request.Context(), actor, c.Param("id"), payload.DiscountPercent)
	if err != nil {
		h.fail(c, "set_discount", c.Param("id"), err)
		return
	}
	c.JSON(http.StatusOK, response.FromBudget(b))
}

// TransitionStatus godoc
// @Summary      Change status
// @Tags         budgets
// @Accept       json
// @Produce      json
// @Param        id      path      string                 true  "Budget id"
// @Param        status  body      request.StatusRequest  true  "Target status"
// @Success      200     {object}  response.BudgetResponse
// @Failure      403     {object}  pkg.HTTPError
// @Failure      409     {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /budgets/{id}/status [patch]
func (h *BudgetHandler) TransitionStatus(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	var payload request.StatusRequest
	if !bindAndValidate(c, &payload) {
		return
	}
	b, err := h.usecase.TransitionStatus(c.Request.Context(), actor, c.Param("id"), payload.Target())
	if err != nil {
		h.fail(c, "transition", c.Param("id"), err)
		return
	}
	c.JSON(http.StatusOK, response.FromBudget(b))
}

// ConvertDraftToQuote godoc
// @Summary      Convert pre-quote to quote
// @Tags         budgets
// @Produce      json
// @Param        id   path      string  true  "Budget id"
// @Success      200  {object}  response.BudgetResponse
// @Failure      409  {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /budgets/{id}/convert [post]
func (h *BudgetHandler) ConvertDraftToQuote(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	b, err := h.usecase.ConvertDraftToQuote(c.Request.Context(), actor, c.Param("id"))
	if err != nil {
		h.fail(c, "convert", c.Param("id"), err)
		return
	}
	c.JSON(http.StatusOK, response.FromBudget(b))
}

// AllowedStatuses godoc
// @Summary      Statuses the caller may select next
// @Tags         budgets
// @Produce      json
// @Param        id   path      string  true  "Budget id"
// @Success      200  {object}  response.AllowedStatusesResponse
// @Security     Bearer
// @Router       /budgets/{id}/statuses [get]
func (h *BudgetHandler) AllowedStatuses(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	statuses, err := h.usecase.AllowedStatuses(c.Request.Context(), actor, c.Param("id"))
	if err != nil {
		h.fail(c, "allowed_statuses", c.Param("id"), err)
		return
	}
	c.JSON(http.StatusOK, response.FromAllowedStatuses(c.Param("id"), statuses))
}

// Dashboard godoc
// @Summary      Admin dashboard counters
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  response.SummaryResponse
// @Failure      403  {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /dashboard [get]
func (h *BudgetHandler) Dashboard(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	s, err := h.usecase.Summary(c.Request.Context(), actor)
	if err != nil {
		h.fail(c, "dashboard", "", err)
		return
	}
	c.JSON(http.StatusOK, response.FromSummary(s))
}

func (h *BudgetHandler) fail(c *gin.Context, op, budgetID string, err error) {
	appErr := mapDomainError(err)
	evt := h.logger.Warn()
	if appErr.HTTPStatus >= http.StatusInternalServerError {
		evt = h.logger.Error()
	}
	evt.Err(err).Str("op", op).Str("budget_id", budgetID).Int("status", appErr.HTTPStatus).Msg("budget request failed")
	writeError(c, appErr)
}
