package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/residence-hub/internal/application"
	"github.com/linskybing/residence-hub/pkg/response"
	"github.com/linskybing/residence-hub/pkg/utils"
)

type DashboardHandler struct {
	svc *application.DashboardService
}

func NewDashboardHandler(svc *application.DashboardService) *DashboardHandler {
	return &DashboardHandler{svc: svc}
}

// Home godoc
// @Summary Resident home page summary
// @Description Open and resolved counts, recent issues with status cards, and the notification feed.
// @Tags dashboard
// @Security BearerAuth
// @Produce json
// @Success 200 {object} application.HomeSummary
// @Failure 401 {object} response.ErrorResponse "Unauthorized"
// @Router /home [get]
func (h *DashboardHandler) Home(c *gin.Context) {
	summary, err := h.svc.Home(utils.ActorFromContext(c))
	if err != nil {
		switch {
		case errors.Is(err, application.ErrNotAuthenticated), errors.Is(err, application.ErrUserNotFound):
			c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		}
		return
	}
	c.JSON(http.StatusOK, summary)
}
