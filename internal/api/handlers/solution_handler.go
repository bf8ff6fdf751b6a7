package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/residence-hub/internal/application"
	"github.com/linskybing/residence-hub/internal/domain/solution"
	"github.com/linskybing/residence-hub/internal/repository"
	"github.com/linskybing/residence-hub/pkg/response"
	"github.com/linskybing/residence-hub/pkg/utils"
)

type SolutionHandler struct {
	svc   *application.VotingService
	audit repository.AuditRepo
}

func NewSolutionHandler(svc *application.VotingService, audit repository.AuditRepo) *SolutionHandler {
	return &SolutionHandler{svc: svc, audit: audit}
}

// Vote godoc
// @Summary Vote on a solution
// @Description Five upvotes accept the solution and resolve its issue.
// @Tags solutions
// @Produce json
// @Param id path int true "Solution ID"
// @Param kind path string true "up, upvote, down or downvote"
// @Success 200 {object} response.OutcomeResponse
// @Failure 400 {object} response.ErrorResponse "Invalid vote kind"
// @Failure 401 {object} response.OutcomeResponse "Not authenticated"
// @Failure 403 {object} response.OutcomeResponse "Not eligible to vote"
// @Failure 404 {object} response.OutcomeResponse "Solution not found"
// @Failure 409 {object} response.OutcomeResponse "Already voted"
// @Router /solutions/{id}/vote/{kind} [post]
func (h *SolutionHandler) Vote(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid solution id"})
		return
	}
	kind, ok := solution.ParseVoteKind(c.Param("kind"))
	if !ok {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: application.ErrInvalidVoteKind.Error()})
		return
	}

	res, err := h.svc.CastVote(id, utils.ActorFromContext(c), kind)
	if err != nil {
		if errors.Is(err, application.ErrInvalidVoteKind) {
			c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		} else {
			c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		}
		return
	}
	if !res.IsAccepted() {
		writeOutcome(c, res.Result, "", nil)
		return
	}

	msg := "Vote recorded"
	if res.IssueResolved {
		msg = "Vote recorded; the solution was accepted and the issue is resolved"
	}
	utils.LogAuditWithConsole(c, "vote", "solution", strconv.FormatUint(uint64(id), 10), nil, gin.H{"kind": kind}, msg, h.audit)
	writeOutcome(c, res.Result, msg, res)
}

// RequestVote godoc
// @Summary Open voting on a solution
// @Description Only the issue reporter may request votes. Each request notifies residents.
// @Tags solutions
// @Produce json
// @Param id path int true "Solution ID"
// @Success 200 {object} response.OutcomeResponse
// @Failure 401 {object} response.OutcomeResponse "Not authenticated"
// @Failure 403 {object} response.OutcomeResponse "Not the reporter or issue resolved"
// @Failure 404 {object} response.OutcomeResponse "Solution not found"
// @Router /solutions/{id}/request-vote [post]
func (h *SolutionHandler) RequestVote(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid solution id"})
		return
	}

	res, err := h.svc.RequestVote(id, utils.ActorFromContext(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	if res.IsAccepted() {
		utils.LogAuditWithConsole(c, "request_vote", "solution", strconv.FormatUint(uint64(id), 10), nil, nil, "Vote requested", h.audit)
	}
	writeOutcome(c, res, "Vote requested", nil)
}
