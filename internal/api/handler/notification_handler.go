package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/linkup/linkup-api/internal/core/ports"
)

// NotificationHandler handles HTTP requests for the notification feed.
type NotificationHandler struct {
	service ports.NotificationService
}

func NewNotificationHandler(service ports.NotificationService) *NotificationHandler {
	return &NotificationHandler{service: service}
}

// List handles GET /notifications.
//
// @Summary      List my notifications, newest first
// @Tags         notifications
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.Notification
// @Router       /notifications [get]
func (h *NotificationHandler) List(c echo.Context) error {
	userID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	items, err := h.service.List(c.Request().Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, items)
}

// MarkRead handles PUT /notifications/:id/read.
//
// @Summary      Mark one notification as read
// @Tags         notifications
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Notification id"
// @Success      200  {object}  messageResponse
// @Failure      404  {object}  map[string]string
// @Router       /notifications/{id}/read [put]
func (h *NotificationHandler) MarkRead(c echo.Context) error {
	userID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	if err := h.service.MarkRead(c.Request().Context(), c.Param("id"), userID); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "notification read"})
}

// MarkAllRead handles PUT /notifications/read-all.
//
// @Summary      Mark every notification as read
// @Tags         notifications
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  messageResponse
// @Router       /notifications/read-all [put]
func (h *NotificationHandler) MarkAllRead(c echo.Context) error {
	userID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	if err := h.service.MarkAllRead(c.Request().Context(), userID); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "all notifications read"})
}

// Delete handles DELETE /notifications/:id.
//
// @Summary      Delete a notification
// @Tags         notifications
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Notification id"
// @Success      200  {object}  messageResponse
// @Failure      404  {object}  map[string]string
// @Router       /notifications/{id} [delete]
func (h *NotificationHandler) Delete(c echo.Context) error {
	userID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), c.Param("id"), userID); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "notification deleted"})
}
