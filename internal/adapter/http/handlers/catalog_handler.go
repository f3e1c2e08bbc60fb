package handlers

import (
	"net/http"

	request "rebobinagem/internal/adapter/http/dto/request"
	response "rebobinagem/internal/adapter/http/dto/response"
	"rebobinagem/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// ClientHandler handles the client registry.
type ClientHandler struct {
	usecase usecase.IClientUseCase
	logger  zerolog.Logger
}

func NewClientHandler(uc usecase.IClientUseCase) *ClientHandler {
	return &ClientHandler{usecase: uc, logger: log.With().Str("component", "client_handler").Logger()}
}

// CreateClient godoc
// @Summary  Create client
// @Tags     clients
// @Accept   json
// @Produce  json
// @Param    client  body      request.ClientRequest  true  "Client"
// @Success  201     {object}  response.ClientResponse
// @Security Bearer
// @Router   /clients [post]
func (h *ClientHandler) CreateClient(c *gin.Context) {
	var payload request.ClientRequest
	if !bindAndValidate(c, &payload) {
		return
	}
	created, err := h.usecase.Create(c.Request.Context(), payload.ToEntity(""))
	if err != nil {
		h.fail(c, "create", err)
		return
	}
	c.JSON(http.StatusCreated, response.FromClient(created))
}

// ListClients godoc
// @Summary  List clients
// @Tags     clients
// @Produce  json
// @Param    q    query     string  false  "Name or phone search"
// @Success  200  {array}   response.ClientResponse
// @Security Bearer
// @Router   /clients [get]
func (h *ClientHandler) ListClients(c *gin.Context) {
	list, err := h.usecase.List(c.Request.Context(), c.Query("q"))
	if err != nil {
		h.fail(c, "list", err)
		return
	}
	c.JSON(http.StatusOK, response.FromClients(list))
}

// GetClient godoc
// @Summary  Get client
// @Tags     clients
// @Produce  json
// @Param    id   path      string  true  "Client id"
// @Success  200  {object}  response.ClientResponse
// @Security Bearer
// @Router   /clients/{id} [get]
func (h *ClientHandler) GetClient(c *gin.Context) {
	client, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, "get", err)
		return
	}
	c.JSON(http.StatusOK, response.FromClient(client))
}

// UpdateClient godoc
// @Summary  Update client
// @Tags     clients
// @Accept   json
// @Produce  json
// @Param    id      path      string                 true  "Client id"
// @Param    client  body      request.ClientRequest  true  "Client"
// @Success  200     {object}  response.ClientResponse
// @Security Bearer
// @Router   /clients/{id} [put]
func (h *ClientHandler) UpdateClient(c *gin.Context) {
	var payload request.ClientRequest
	if !bindAndValidate(c, &payload) {
		return
	}
	updated, err := h.usecase.Update(c.Request.Context(), payload.ToEntity(c.Param("id")))
	if err != nil {
		h.fail(c, "update", err)
		return
	}
	c.JSON(http.StatusOK, response.FromClient(updated))
}

// DeleteClient godoc
// @Summary  Delete client
// @Tags     clients
// @Param    id   path  string  true  "Client id"
// @Success  204
// @Failure  409  {object}  pkg.HTTPError
// @Security Bearer
// @Router   /clients/{id} [delete]
func (h *ClientHandler) DeleteClient(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.fail(c, "delete", err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *ClientHandler) fail(c *gin.Context, op string, err error) {
	appErr := mapDomainError(err)
	h.logger.Warn().Err(err).Str("op", op).Str("client_id", c.Param("id")).Int("status", appErr.HTTPStatus).Msg("client request failed")
	writeError(c, appErr)
}

// PartHandler handles the parts catalog. Writes are admin only.
type PartHandler struct {
	usecase usecase.IPartUseCase
	logger  zerolog.Logger
}

func NewPartHandler(uc usecase.IPartUseCase) *PartHandler {
	return &PartHandler{usecase: uc, logger: log.With().Str("component", "part_handler").Logger()}
}

// CreatePart godoc
// @Summary  Create part (admin)
// @Tags     parts
// @Accept   json
// @Produce  json
// @Param    part  body      request.PartRequest  true  "Part"
// @Success  201   {object}  response.PartResponse
// @Failure  403   {object}  pkg.HTTPError
// @Security Bearer
// @Router   /parts [post]
func (h *PartHandler) CreatePart(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	var payload request.PartRequest
	if !bindAndValidate(c, &payload) {
		return
	}
	created, err := h.usecase.Create(c.Request.Context(), actor, payload.ToEntity(""))
	if err != nil {
		h.fail(c, "create", err)
		return
	}
	c.JSON(http.StatusCreated, response.FromPart(created))
}

// ListParts godoc
// @Summary  List parts
// @Tags     parts
// @Produce  json
// @Param    q    query    string  false  "Name or type search"
// @Success  200  {array}  response.PartResponse
// @Security Bearer
// @Router   /parts [get]
func (h *PartHandler) ListParts(c *gin.Context) {
	list, err := h.usecase.List(c.Request.Context(), c.Query("q"))
	if err != nil {
		h.fail(c, "list", err)
		return
	}
	c.JSON(http.StatusOK, response.FromParts(list))
}

// GetPart godoc
// @Summary  Get part
// @Tags     parts
// @Produce  json
// @Param    id   path      string  true  "Part id"
// @Success  200  {object}  response.PartResponse
// @Security Bearer
// @Router   /parts/{id} [get]
func (h *PartHandler) GetPart(c *gin.Context) {
	part, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, "get", err)
		return
	}
	c.JSON(http.StatusOK, response.FromPart(part))
}

// UpdatePart godoc
// @Summary  Update part (admin)
// @Tags     parts
// @Accept   json
// @Produce  json
// @Param    id    path      string               true  "Part id"
// @Param    part  body      request.PartRequest  true  "Part"
// @Success  200   {object}  response.PartResponse
// @Security Bearer
// @Router   /parts/{id} [put]
func (h *PartHandler) UpdatePart(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	var payload request.PartRequest
	if !bindAndValidate(c, &payload) {
		return
	}
	updated, err := h.usecase.Update(c.Request.Context(), actor, payload.ToEntity(c.Param("id")))
	if err != nil {
		h.fail(c, "update", err)
		return
	}
	c.JSON(http.StatusOK, response.FromPart(updated))
}

// DeletePart godoc
// @Summary  Delete part (admin)
// @Tags     parts
// @Param    id   path  string  true  "Part id"
// @Success  204
// @Security Bearer
// @Router   /parts/{id} [delete]
func (h *PartHandler) DeletePart(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	if err := h.usecase.Delete(c.Request.Context(), actor, c.Param("id")); err != nil {
		h.fail(c, "delete", err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *PartHandler) fail(c *gin.Context, op string, err error) {
	appErr := mapDomainError(err)
	h.logger.Warn().Err(err).Str("op", op).Str("part_id", c.Param("id")).Int("status", appErr.HTTPStatus).Msg("part request failed")
	writeError(c, appErr)
}
