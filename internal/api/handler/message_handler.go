package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/linkup/linkup-api/internal/core/ports"
)

// MessageHandler handles HTTP requests for direct messaging.
type MessageHandler struct {
	service ports.MessageService
}

func NewMessageHandler(service ports.MessageService) *MessageHandler {
	return &MessageHandler{service: service}
}

type sendMessageRequest struct {
	RecipientID string `json:"recipient_id" validate:"required"`
	Body        string `json:"body" validate:"required,max=5000"`
}

// Send handles POST /messages.
//
// @Summary      Send a direct message
// @Tags         messages
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      sendMessageRequest  true  "Recipient and body"
// @Success      201   {object}  domain.Message
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /messages [post]
func (h *MessageHandler) Send(c echo.Context) error {
	userID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req sendMessageRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	msg, err := h.service.Send(c.Request().Context(), userID, req.RecipientID, req.Body)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, msg)
}

// Conversation handles GET /messages/with/:userId. Incoming messages are
// marked read as a side effect.
//
// @Summary      Get the conversation with one user
// @Tags         messages
// @Produce      json
// @Security     BearerAuth
// @Param        userId  path     string  true  "Peer user id"
// @Success      200     {array}  domain.Message
// @Router       /messages/with/{userId} [get]
func (h *MessageHandler) Conversation(c echo.Context) error {
	userID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	msgs, err := h.service.ConversationWith(c.Request().Context(), userID, c.Param("userId"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, msgs)
}

// Inbox handles GET /messages.
//
// @Summary      List conversations, newest first
// @Tags         messages
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  ports.ConversationHead
// @Router       /messages [get]
func (h *MessageHandler) Inbox(c echo.Context) error {
	userID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	heads, err := h.service.Inbox(c.Request().Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, heads)
}
