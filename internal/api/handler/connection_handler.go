package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/linkup/linkup-api/internal/api/metrics"
	"github.com/linkup/linkup-api/internal/core/domain"
	"github.com/linkup/linkup-api/internal/core/ports"
)

// ConnectionHandler handles HTTP requests for the connection graph.
type ConnectionHandler struct {
	service ports.ConnectionService
}

func NewConnectionHandler(service ports.ConnectionService) *ConnectionHandler {
	return &ConnectionHandler{service: service}
}

// SendRequest handles POST /connections/request.
//
// @Summary      Send a connection request
// @Tags         connections
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      sendRequestRequest  true  "Recipient and optional message"
// @Success      201   {object}  domain.Connection
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /connections/request [post]
func (h *ConnectionHandler) SendRequest(c echo.Context) error {
	userID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req sendRequestRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	conn, err := h.service.SendRequest(c.Request().Context(), userID, req.RecipientID, req.Message)
	if err != nil {
		metrics.ConnectionRequestsTotal.WithLabelValues(requestOutcome(err)).Inc()
		return err
	}

	metrics.ConnectionRequestsTotal.WithLabelValues("created").Inc()
	return c.JSON(http.StatusCreated, conn)
}

// requestOutcome classifies a SendRequest failure for the outcome label.
func requestOutcome(err error) string {
	switch {
	case errors.Is(err, domain.ErrSelfConnection):
		return "self"
	case errors.Is(err, domain.ErrRequestExists):
		return "duplicate"
	case errors.Is(err, domain.ErrAlreadyConnected):
		return "already_connected"
	default:
		return "error"
	}
}

// Accept handles PUT /connections/accept/:id.
//
// @Summary      Accept a pending connection request
// @Tags         connections
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Connection request id"
// @Success      200  {object}  messageResponse
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      409  {object}  map[string]string
// @Router       /connections/accept/{id} [put]
func (h *ConnectionHandler) Accept(c echo.Context) error {
	userID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	if err := h.service.Accept(c.Request().Context(), c.Param("id"), userID); err != nil {
		return err
	}

	metrics.ConnectionResolutionsTotal.WithLabelValues("accepted").Inc()
	return c.JSON(http.StatusOK, messageResponse{Message: "connection accepted"})
}

// Reject handles PUT /connections/reject/:id.
//
// @Summary      Reject a pending connection request
// @Tags         connections
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Connection request id"
// @Success      200  {object}  messageResponse
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      409  {object}  map[string]string
// @Router       /connections/reject/{id} [put]
func (h *ConnectionHandler) Reject(c echo.Context) error {
	userID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	if err := h.service.Reject(c.Request().Context(), c.Param("id"), userID); err != nil {
		return err
	}

	metrics.ConnectionResolutionsTotal.WithLabelValues("rejected").Inc()
	return c.JSON(http.StatusOK, messageResponse{Message: "connection rejected"})
}

// Remove handles DELETE /connections/remove/:userId.
//
// @Summary      Remove an existing connection
// @Tags         connections
// @Produce      json
// @Security     BearerAuth
// @Param        userId  path      string  true  "Peer user id"
// @Success      200     {object}  messageResponse
// @Router       /connections/remove/{userId} [delete]
func (h *ConnectionHandler) Remove(c echo.Context) error {
	userID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	if err := h.service.Remove(c.Request().Context(), userID, c.Param("userId")); err != nil {
		return err
	}

	metrics.ConnectionsRemovedTotal.Inc()
	return c.JSON(http.StatusOK, messageResponse{Message: "connection removed"})
}

// MyConnections handles GET /connections/my-connections.
//
// @Summary      List my confirmed connections
// @Tags         connections
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.UserSummary
// @Router       /connections/my-connections [get]
func (h *ConnectionHandler) MyConnections(c echo.Context) error {
	userID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	summaries, err := h.service.MyConnections(c.Request().Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, summaries)
}

// Pending handles GET /connections/pending.
//
// @Summary      List incoming pending requests
// @Tags         connections
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  ports.PendingRequest
// @Router       /connections/pending [get]
func (h *ConnectionHandler) Pending(c echo.Context) error {
	userID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	pending, err := h.service.Pending(c.Request().Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, pending)
}

// Suggestions handles GET /connections/suggestions.
//
// @Summary      Suggest users to connect with
// @Tags         connections
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.UserSummary
// @Router       /connections/suggestions [get]
func (h *ConnectionHandler) Suggestions(c echo.Context) error {
	userID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	suggestions, err := h.service.Suggestions(c.Request().Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, suggestions)
}
