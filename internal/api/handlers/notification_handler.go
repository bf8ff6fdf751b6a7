package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/residence-hub/internal/application"
	"github.com/linskybing/residence-hub/internal/realtime"
	"github.com/linskybing/residence-hub/pkg/response"
	"github.com/linskybing/residence-hub/pkg/utils"
)

type NotificationHandler struct {
	svc *application.NotificationService
	hub *realtime.Hub
}

func NewNotificationHandler(svc *application.NotificationService, hub *realtime.Hub) *NotificationHandler {
	return &NotificationHandler{svc: svc, hub: hub}
}

// ListNotifications godoc
// @Summary Recent notifications
// @Tags notifications
// @Security BearerAuth
// @Produce json
// @Param limit query int false "Number of notifications (default 10)"
// @Success 200 {array} notification.Notification
// @Failure 500 {object} response.ErrorResponse "Internal server error"
// @Router /notifications [get]
func (h *NotificationHandler) ListNotifications(c *gin.Context) {
	feed, err := h.svc.Feed(utils.ParseQueryIntParam(c, "limit", application.FeedLimit))
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, feed)
}

// Stream upgrades to a websocket that pushes notification events.
func (h *NotificationHandler) Stream(c *gin.Context) {
	if h.hub == nil {
		c.JSON(http.StatusServiceUnavailable, response.ErrorResponse{Error: "live updates unavailable"})
		return
	}
	uid, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}
	if err := h.hub.ServeWS(c.Writer, c.Request, uid); err != nil {
		slog.Warn("websocket upgrade failed", "user_id", uid, "error", err)
	}
}
