package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/linskybing/residence-hub/internal/domain/outcome"
	"github.com/linskybing/residence-hub/pkg/response"
)

var fieldLabels = map[string]string{
	"Email":          "email",
	"Password":       "password",
	"OldPassword":    "old password",
	"FlatNumber":     "flat number",
	"FullName":       "full name",
	"ProfilePicture": "profile picture",
	"Title":          "title",
	"Description":    "description",
	"Role":           "role",
}

// bindInput binds the request and writes a 400 with friendly validation
// messages on failure.
func bindInput(c *gin.Context, input any) bool {
	err := c.ShouldBind(input)
	if err == nil {
		return true
	}

	var verr validator.ValidationErrors
	if !errors.As(err, &verr) {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid input"})
		return false
	}

	msgs := make([]string, 0, len(verr))
	for _, fe := range verr {
		field := fe.StructField()
		lbl, ok := fieldLabels[field]
		if !ok {
			lbl = strings.ToLower(field)
		}

		var msg string
		switch fe.Tag() {
		case "required":
			msg = fmt.Sprintf("%s is required", lbl)
		case "min":
			msg = fmt.Sprintf("%s must be at least %s characters", lbl, fe.Param())
		case "max":
			msg = fmt.Sprintf("%s must be at most %s characters", lbl, fe.Param())
		case "email":
			msg = fmt.Sprintf("%s must be a valid email address", lbl)
		case "url":
			msg = fmt.Sprintf("%s must be a valid URL", lbl)
		case "oneof":
			msg = fmt.Sprintf("%s must be one of [%s]", lbl, fe.Param())
		default:
			msg = fmt.Sprintf("%s is invalid", lbl)
		}
		msgs = append(msgs, msg)
	}

	c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: strings.Join(msgs, "; ")})
	return false
}

var reasonMessages = map[outcome.Reason]string{
	outcome.ReasonNotAuthenticated:   "You need to log in first",
	outcome.ReasonReporterCannotVote: "You cannot vote on solutions to your own issue",
	outcome.ReasonAlreadyVoted:       "You have already voted on this solution",
	outcome.ReasonSelfVoteForbidden:  "You cannot vote on your own solution",
	outcome.ReasonVotingNotOpen:      "Voting is not open for this solution yet",
	outcome.ReasonNotReporter:        "Only the issue reporter can request votes",
	outcome.ReasonIssueResolved:      "This issue is already resolved",
}

// outcomeStatus maps a core outcome onto an HTTP status.
func outcomeStatus(res outcome.Result) int {
	switch res.Kind {
	case outcome.KindAccepted:
		return http.StatusOK
	case outcome.KindNotFound:
		return http.StatusNotFound
	}
	switch res.Reason {
	case outcome.ReasonNotAuthenticated:
		return http.StatusUnauthorized
	case outcome.ReasonAlreadyVoted:
		return http.StatusConflict
	default:
		return http.StatusForbidden
	}
}

func writeOutcome(c *gin.Context, res outcome.Result, successMsg string, data any) {
	msg := successMsg
	switch {
	case res.IsNotFound():
		msg = "Not found"
	case res.IsRejected():
		msg = reasonMessages[res.Reason]
	}
	c.JSON(outcomeStatus(res), response.OutcomeResponse{Result: res, Message: msg, Data: data})
}
