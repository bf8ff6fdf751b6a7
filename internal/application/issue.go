package application

import (
	"errors"
	"fmt"

	"github.com/linskybing/residence-hub/internal/domain/issue"
	"github.com/linskybing/residence-hub/internal/domain/notification"
	"github.com/linskybing/residence-hub/internal/domain/outcome"
	"github.com/linskybing/residence-hub/internal/domain/solution"
	"github.com/linskybing/residence-hub/internal/domain/user"
	"github.com/linskybing/residence-hub/internal/metrics"
	"github.com/linskybing/residence-hub/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrIssueNotFound    = errors.New("issue not found")
	ErrForbidden        = errors.New("permission denied")
	ErrNotAuthenticated = errors.New("authentication required")
)

// SuggestionDispatcher receives the issue-created event. Implementations
// must not block and must swallow their own failures.
type SuggestionDispatcher interface {
	Dispatch(is issue.Issue)
}

type IssueDetails struct {
	Issue     issue.Issue         `json:"issue"`
	Solutions []solution.Solution `json:"solutions"`
}

type IssueService struct {
	Repos         *repository.Repos
	Notifications *NotificationService
	suggestions   SuggestionDispatcher
}

func NewIssueService(repos *repository.Repos, notifications *NotificationService) *IssueService {
	return &IssueService{
		Repos:         repos,
		Notifications: notifications,
	}
}

func (s *IssueService) SetSuggestionDispatcher(d SuggestionDispatcher) {
	s.suggestions = d
}

// Create stores a new issue in the Open state together with its
// "New Issue Raised" notification, then hands the issue to the suggestion
// dispatcher.
func (s *IssueService) Create(actor user.Actor, input issue.CreateIssueInput) (issue.Issue, error) {
	if !actor.Authenticated() {
		return issue.Issue{}, ErrNotAuthenticated
	}

	is := issue.Issue{
		Title:       input.Title,
		Description: input.Description,
		Status:      issue.StatusOpen,
		ReporterID:  actor.ID,
	}

	var n notification.Notification
	err := s.Repos.ExecTx(func(tx *repository.Repos) error {
		if err := tx.Issue.CreateIssue(&is); err != nil {
			return fmt.Errorf("create issue: %w", err)
		}
		var err error
		n, err = s.Notifications.EmitIssueRaised(tx, is)
		return err
	})
	if err != nil {
		return issue.Issue{}, err
	}

	metrics.IssuesReported.Inc()
	s.Notifications.publishCreated(n)
	if s.suggestions != nil {
		s.suggestions.Dispatch(is)
	}
	return is, nil
}

// SuggestSolution attaches a resident's solution to the issue.
func (s *IssueService) SuggestSolution(actor user.Actor, issueID uint, input solution.SuggestSolutionInput) (solution.Solution, outcome.Result, error) {
	if !actor.Authenticated() {
		return solution.Solution{}, outcome.Rejected(outcome.ReasonNotAuthenticated), nil
	}
	authorID := actor.ID
	input.Confidence = nil
	return s.suggest(issueID, &authorID, input)
}

// SuggestAISolution attaches a model-authored solution (no author).
func (s *IssueService) SuggestAISolution(issueID uint, input solution.SuggestSolutionInput) (solution.Solution, outcome.Result, error) {
	return s.suggest(issueID, nil, input)
}

func (s *IssueService) suggest(issueID uint, authorID *uint, input solution.SuggestSolutionInput) (solution.Solution, outcome.Result, error) {
	var (
		sol   solution.Solution
		res   outcome.Result
		moved bool
	)
	err := s.Repos.ExecTx(func(tx *repository.Repos) error {
		is, err := tx.Issue.GetIssueForUpdate(issueID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			res = outcome.NotFound()
			return nil
		}
		if err != nil {
			return err
		}

		sol = solution.Solution{
			Title:         input.Title,
			Description:   input.Description,
			IssueID:       is.ID,
			SuggestedByID: authorID,
			Status:        solution.StatusPending,
			Confidence:    input.Confidence,
		}
		if err := tx.Solution.CreateSolution(&sol); err != nil {
			return fmt.Errorf("create solution: %w", err)
		}

		// Only the first suggestion on an Open issue moves it; later ones
		// and suggestions on Resolved issues leave the status alone.
		moved, err = tx.Issue.TransitionStatus(is.ID, []issue.Status{issue.StatusOpen}, issue.StatusInReview)
		if err != nil {
			return fmt.Errorf("move issue to review: %w", err)
		}
		res = outcome.Accepted()
		return nil
	})
	if err != nil {
		return solution.Solution{}, outcome.Result{}, err
	}
	if moved {
		metrics.IssueTransitions.WithLabelValues(string(issue.StatusInReview)).Inc()
	}
	return sol, res, nil
}

// resolve marks the issue Resolved and retires its notifications using the
// caller's transaction. Calling it on a resolved issue only re-runs the
// (empty) retirement.
func (s *IssueService) resolve(tx *repository.Repos, issueID uint) (bool, int64, error) {
	changed, err := tx.Issue.TransitionStatus(issueID, []issue.Status{issue.StatusOpen, issue.StatusInReview}, issue.StatusResolved)
	if err != nil {
		return false, 0, fmt.Errorf("resolve issue %d: %w", issueID, err)
	}
	retired, err := s.Notifications.Retire(tx, issueID)
	if err != nil {
		return false, 0, err
	}
	return changed, retired, nil
}

func (s *IssueService) Details(issueID uint) (IssueDetails, error) {
	is, err := s.Repos.Issue.GetIssueByID(issueID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return IssueDetails{}, ErrIssueNotFound
		}
		return IssueDetails{}, err
	}
	solutions, err := s.Repos.Solution.ListByIssue(issueID)
	if err != nil {
		return IssueDetails{}, err
	}
	return IssueDetails{Issue: is, Solutions: solutions}, nil
}

func (s *IssueService) List(params issue.ListParams) ([]issue.Issue, error) {
	if params.Limit <= 0 || params.Limit > 100 {
		params.Limit = 20
	}
	return s.Repos.Issue.ListIssues(params)
}

// Delete removes the issue with its solutions, votes and notifications.
// Only the reporter or an admin may delete.
func (s *IssueService) Delete(actor user.Actor, issueID uint) (issue.Issue, error) {
	if !actor.Authenticated() {
		return issue.Issue{}, ErrNotAuthenticated
	}

	var (
		is      issue.Issue
		retired int64
	)
	err := s.Repos.ExecTx(func(tx *repository.Repos) error {
		var err error
		is, err = tx.Issue.GetIssueForUpdate(issueID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrIssueNotFound
		}
		if err != nil {
			return err
		}
		if is.ReporterID != actor.ID && !actor.IsAdmin {
			return ErrForbidden
		}
		if err := tx.Solution.DeleteByIssue(issueID); err != nil {
			return err
		}
		if retired, err = tx.Notification.DeleteByIssue(issueID); err != nil {
			return err
		}
		return tx.Issue.DeleteIssue(issueID)
	})
	if err != nil {
		return issue.Issue{}, err
	}
	s.Notifications.publishRetired(issueID, retired)
	return is, nil
}
