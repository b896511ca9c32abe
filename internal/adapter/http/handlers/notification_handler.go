package handlers

import (
	"errors"
	"net/http"

	request "grantcompass/internal/adapter/http/dto/request"
	response "grantcompass/internal/adapter/http/dto/response"
	"grantcompass/internal/domain/entities"
	"grantcompass/internal/usecase"
	"grantcompass/pkg"

	"github.com/gin-gonic/gin"
)

// NotificationHandler handles the recipient inbox plus staff direct sends.

type NotificationHandler struct {
	usecase usecase.INotificationUseCase
}

func NewNotificationHandler(uc usecase.INotificationUseCase) *NotificationHandler {
	return &NotificationHandler{usecase: uc}
}

func (h *NotificationHandler) ListNotifications(c *gin.Context) {
	actor, appErr := actorFromRequest(c)
	if appErr != nil {
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	notifications, err := h.usecase.ListByUser(c.Request.Context(), actor)
	if err != nil {
		appErr := mapNotificationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromNotifications(notifications))
}

func (h *NotificationHandler) MarkNotificationRead(c *gin.Context) {
	actor, appErr := actorFromRequest(c)
	if appErr != nil {
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	n, err := h.usecase.MarkRead(c.Request.Context(), c.Param("notification_id"), actor)
	if err != nil {
		appErr := mapNotificationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromNotification(n))
}

func (h *NotificationHandler) SendNotification(c *gin.Context) {
	actor, appErr := actorFromRequest(c)
	if appErr != nil {
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	var payload request.SendNotificationRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_NOTIFICATION_INPUT", "Invalid notification payload", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	created, err := h.usecase.SendDirect(c.Request.Context(), actor, usecase.DirectNotification{
		Recipient:   payload.Recipient,
		Message:     payload.Message,
		Type:        entities.NotificationType(payload.Type),
		RelatedID:   payload.RelatedID,
		RelatedType: payload.RelatedType,
	})
	if err != nil {
		appErr := mapNotificationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromNotifications(created))
}

func mapNotificationError(err error) *pkg.AppError {
	var authErr *usecase.UnauthorizedError

	switch {
	case errors.As(err, &authErr):
		return pkg.NewDomainErrorSimple("FORBIDDEN", "Actor is not allowed to perform this operation", http.StatusForbidden)
	case errors.Is(err, usecase.ErrNotificationNotFound):
		return pkg.NewDomainErrorSimple("NOTIFICATION_NOT_FOUND", "Notification not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvalidNotificationID),
		errors.Is(err, usecase.ErrInvalidRecipient),
		errors.Is(err, usecase.ErrEmptyMessage),
		errors.Is(err, usecase.ErrInvalidNotifType):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
