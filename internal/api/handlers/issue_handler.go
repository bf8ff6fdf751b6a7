package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/residence-hub/internal/application"
	"github.com/linskybing/residence-hub/internal/domain/issue"
	"github.com/linskybing/residence-hub/internal/domain/solution"
	"github.com/linskybing/residence-hub/internal/repository"
	"github.com/linskybing/residence-hub/pkg/response"
	"github.com/linskybing/residence-hub/pkg/utils"
)

type IssueHandler struct {
	svc   *application.IssueService
	audit repository.AuditRepo
}

func NewIssueHandler(svc *application.IssueService, audit repository.AuditRepo) *IssueHandler {
	return &IssueHandler{svc: svc, audit: audit}
}

// ListIssues godoc
// @Summary List issues
// @Tags issues
// @Security BearerAuth
// @Produce json
// @Param status query string false "Open, In Review or Resolved"
// @Param reporter_id query int false "Only issues from this reporter"
// @Param limit query int false "Page size (default 20, max 100)"
// @Param offset query int false "Offset"
// @Success 200 {array} issue.Issue
// @Failure 400 {object} response.ErrorResponse "Invalid query parameters"
// @Router /issues [get]
func (h *IssueHandler) ListIssues(c *gin.Context) {
	params := issue.ListParams{
		Limit:  utils.ParseQueryIntParam(c, "limit", 20),
		Offset: utils.ParseQueryIntParam(c, "offset", 0),
	}
	if s := c.Query("status"); s != "" {
		status := issue.Status(s)
		if !status.Valid() {
			c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid status"})
			return
		}
		params.Status = &status
	}
	if r := c.Query("reporter_id"); r != "" {
		rid, err := strconv.ParseUint(r, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid reporter_id"})
			return
		}
		reporterID := uint(rid)
		params.ReporterID = &reporterID
	}

	issues, err := h.svc.List(params)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, issues)
}

// CreateIssue godoc
// @Summary Report an issue
// @Tags issues
// @Security BearerAuth
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param input body issue.CreateIssueInput true "Issue"
// @Success 201 {object} issue.Issue
// @Failure 400 {object} response.ErrorResponse "Invalid input"
// @Failure 429 {object} response.ErrorResponse "Rate limit exceeded"
// @Router /issues [post]
func (h *IssueHandler) CreateIssue(c *gin.Context) {
	var input issue.CreateIssueInput
	if !bindInput(c, &input) {
		return
	}

	is, err := h.svc.Create(utils.ActorFromContext(c), input)
	if err != nil {
		if errors.Is(err, application.ErrNotAuthenticated) {
			c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: err.Error()})
		} else {
			c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		}
		return
	}

	utils.LogAuditWithConsole(c, "create", "issue", strconv.FormatUint(uint64(is.ID), 10), nil, is, "Issue reported", h.audit)
	c.JSON(http.StatusCreated, is)
}

// GetIssue godoc
// @Summary Issue details with its solutions
// @Tags issues
// @Security BearerAuth
// @Produce json
// @Param id path int true "Issue ID"
// @Success 200 {object} application.IssueDetails
// @Failure 404 {object} response.ErrorResponse "Issue not found"
// @Router /issues/{id} [get]
func (h *IssueHandler) GetIssue(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid issue id"})
		return
	}

	details, err := h.svc.Details(id)
	if err != nil {
		if errors.Is(err, application.ErrIssueNotFound) {
			c.JSON(http.StatusNotFound, response.ErrorResponse{Error: err.Error()})
		} else {
			c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		}
		return
	}
	c.JSON(http.StatusOK, details)
}

// DeleteIssue godoc
// @Summary Delete an issue
// @Tags issues
// @Security BearerAuth
// @Param id path int true "Issue ID"
// @Success 204 "No Content"
// @Failure 403 {object} response.ErrorResponse "Only the reporter or an admin may delete"
// @Failure 404 {object} response.ErrorResponse "Issue not found"
// @Router /issues/{id} [delete]
func (h *IssueHandler) DeleteIssue(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid issue id"})
		return
	}

	deleted, err := h.svc.Delete(utils.ActorFromContext(c), id)
	if err != nil {
		switch {
		case errors.Is(err, application.ErrIssueNotFound):
			c.JSON(http.StatusNotFound, response.ErrorResponse{Error: err.Error()})
		case errors.Is(err, application.ErrForbidden):
			c.JSON(http.StatusForbidden, response.ErrorResponse{Error: err.Error()})
		case errors.Is(err, application.ErrNotAuthenticated):
			c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		}
		return
	}

	utils.LogAuditWithConsole(c, "delete", "issue", strconv.FormatUint(uint64(id), 10), deleted, nil, "Issue deleted", h.audit)
	c.Status(http.StatusNoContent)
}

// SuggestSolution godoc
// @Summary Suggest a solution for an issue
// @Tags solutions
// @Security BearerAuth
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param id path int true "Issue ID"
// @Param input body solution.SuggestSolutionInput true "Solution"
// @Success 201 {object} response.OutcomeResponse
// @Failure 401 {object} response.OutcomeResponse "Not authenticated"
// @Failure 404 {object} response.OutcomeResponse "Issue not found"
// @Router /issues/{id}/solutions [post]
func (h *IssueHandler) SuggestSolution(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid issue id"})
		return
	}

	var input solution.SuggestSolutionInput
	if !bindInput(c, &input) {
		return
	}

	sol, res, err := h.svc.SuggestSolution(utils.ActorFromContext(c), id, input)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	if !res.IsAccepted() {
		writeOutcome(c, res, "", nil)
		return
	}

	utils.LogAuditWithConsole(c, "create", "solution", strconv.FormatUint(uint64(sol.ID), 10), nil, sol, "Solution suggested", h.audit)
	c.JSON(http.StatusCreated, response.OutcomeResponse{Result: res, Message: "Solution suggested", Data: sol})
}
