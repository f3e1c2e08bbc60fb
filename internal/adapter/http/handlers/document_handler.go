package handlers

import (
	"bytes"
	"fmt"
	"io"
	"net/http"

	response "rebobinagem/internal/adapter/http/dto/response"
	"rebobinagem/internal/documents"
	"rebobinagem/internal/domain/entities"
	"rebobinagem/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// DocumentHandler renders the printable quote, the motor label and the WhatsApp share link.
type DocumentHandler struct {
	budgets usecase.IBudgetUseCase
	clients usecase.IClientUseCase
	shop    documents.Shop
	logger  zerolog.Logger
}

func NewDocumentHandler(budgets usecase.IBudgetUseCase, clients usecase.IClientUseCase, shop documents.Shop) *DocumentHandler {
	return &DocumentHandler{
		budgets: budgets,
		clients: clients,
		shop:    shop,
		logger:  log.With().Str("component", "document_handler").Logger(),
	}
}

// BudgetPDF godoc
// @Summary  Budget PDF
// @Tags     documents
// @Produce  application/pdf
// @Param    id   path  string  true  "Budget id"
// @Success  200
// @Failure  404  {object}  pkg.HTTPError
// @Security Bearer
// @Router   /budgets/{id}/pdf [get]
func (h *DocumentHandler) BudgetPDF(c *gin.Context) {
	h.render(c, "orcamento", documents.BudgetPDF)
}

// MotorLabel godoc
// @Summary  Motor label PDF
// @Tags     documents
// @Produce  application/pdf
// @Param    id   path  string  true  "Budget id"
// @Success  200
// @Security Bearer
// @Router   /budgets/{id}/label [get]
func (h *DocumentHandler) MotorLabel(c *gin.Context) {
	h.render(c, "etiqueta", documents.MotorLabelPDF)
}

// WhatsApp godoc
// @Summary  WhatsApp share link
// @Tags     documents
// @Produce  json
// @Param    id   path      string  true  "Budget id"
// @Success  200  {object}  response.WhatsAppResponse
// @Failure  422  {object}  pkg.HTTPError
// @Security Bearer
// @Router   /budgets/{id}/whatsapp [get]
func (h *DocumentHandler) WhatsApp(c *gin.Context) {
	b, client, ok := h.load(c)
	if !ok {
		return
	}
	link, err := documents.WhatsAppLink(b, client, h.shop)
	if err != nil {
		h.fail(c, "whatsapp", err)
		return
	}
	c.JSON(http.StatusOK, response.WhatsAppResponse{URL: link})
}

type pdfRenderer func(w io.Writer, b entities.Budget, client entities.Client, shop documents.Shop) error

func (h *DocumentHandler) render(c *gin.Context, prefix string, fn pdfRenderer) {
	b, client, ok := h.load(c)
	if !ok {
		return
	}
	var buf bytes.Buffer
	if err := fn(&buf, b, client, h.shop); err != nil {
		h.fail(c, prefix, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf(`inline; filename="%s_%s.pdf"`, prefix, b.ShortID()))
	c.Data(http.StatusOK, "application/pdf", buf.Bytes())
}

func (h *DocumentHandler) load(c *gin.Context) (entities.Budget, entities.Client, bool) {
	b, err := h.budgets.GetBudget(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, "load budget", err)
		return entities.Budget{}, entities.Client{}, false
	}
	client, err := h.clients.GetByID(c.Request.Context(), b.ClientID)
	if err != nil {
		h.fail(c, "load client", err)
		return entities.Budget{}, entities.Client{}, false
	}
	return b, client, true
}

func (h *DocumentHandler) fail(c *gin.Context, op string, err error) {
	appErr := mapDomainError(err)
	event := h.logger.Warn()
	if appErr.HTTPStatus >= http.StatusInternalServerError {
		event = h.logger.Error()
	}
	event.Err(err).Str("op", op).Str("budget_id", c.Param("id")).Msg("document request failed")
	writeError(c, appErr)
}
