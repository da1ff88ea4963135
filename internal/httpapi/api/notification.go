package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/daltekdz/daltekdz_bot/internal/httpapi/dto"
	"github.com/daltekdz/daltekdz_bot/internal/notification"
)

type NotificationHandler struct {
	notificationService NotificationService
}

func NewNotificationHandler(notificationService NotificationService) *NotificationHandler {
	return &NotificationHandler{notificationService: notificationService}
}

// List GET /api/admin/notifications?limit=N
func (h *NotificationHandler) List(c *gin.Context) {
	limit := notification.DefaultListLimit
	if raw := c.Query("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			limit = n
		}
	}

	list, err := h.notificationService.List(c.Request.Context(), limit)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	resp, err := dto.CopyList[dto.NotificationResponse](list)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// MarkRead PATCH /api/admin/notifications/:id/read
func (h *NotificationHandler) MarkRead(c *gin.Context) {
	id, ok := paramInt64(c, "id")
	if !ok {
		return
	}

	if err := h.notificationService.MarkRead(c.Request.Context(), id); err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
