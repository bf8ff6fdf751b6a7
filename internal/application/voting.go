package application

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/linskybing/residence-hub/internal/domain/issue"
	"github.com/linskybing/residence-hub/internal/domain/notification"
	"github.com/linskybing/residence-hub/internal/domain/outcome"
	"github.com/linskybing/residence-hub/internal/domain/solution"
	"github.com/linskybing/residence-hub/internal/domain/user"
	"github.com/linskybing/residence-hub/internal/metrics"
	"github.com/linskybing/residence-hub/internal/repository"
	"gorm.io/gorm"
)

var ErrInvalidVoteKind = errors.New("vote kind must be up or down")

// errConcurrentVote rolls back a cast whose voter row lost an insert race.
var errConcurrentVote = errors.New("voter recorded concurrently")

type VoteResult struct {
	outcome.Result
	Solution      *solution.Solution `json:"solution,omitempty"`
	IssueResolved bool               `json:"issue_resolved"`
}

type VotingService struct {
	Repos         *repository.Repos
	Issues        *IssueService
	Notifications *NotificationService
}

func NewVotingService(repos *repository.Repos, issues *IssueService, notifications *NotificationService) *VotingService {
	return &VotingService{
		Repos:         repos,
		Issues:        issues,
		Notifications: notifications,
	}
}

// CastVote applies one vote. Eligibility is checked in a fixed order and a
// rejection leaves everything untouched. The returned error is reserved for
// store failures.
func (s *VotingService) CastVote(solutionID uint, actor user.Actor, kind solution.VoteKind) (VoteResult, error) {
	if kind != solution.VoteUp && kind != solution.VoteDown {
		return VoteResult{}, ErrInvalidVoteKind
	}
	if !actor.Authenticated() {
		return s.recordCast(kind, VoteResult{Result: outcome.Rejected(outcome.ReasonNotAuthenticated)}), nil
	}

	var (
		res          VoteResult
		resolved     bool
		transitioned bool
		retired      int64
		issueID      uint
	)
	err := s.Repos.ExecTx(func(tx *repository.Repos) error {
		res, resolved, transitioned, retired = VoteResult{}, false, false, 0

		is, sol, found, err := lockIssueAndSolution(tx, solutionID)
		if err != nil {
			return err
		}
		if !found {
			res.Result = outcome.NotFound()
			return nil
		}
		issueID = is.ID

		reason, err := s.eligibility(tx, is, sol, actor)
		if err != nil {
			return err
		}
		if reason != outcome.ReasonNone {
			res.Result = outcome.Rejected(reason)
			return nil
		}

		err = tx.Solution.AddVoter(&solution.Voter{SolutionID: sol.ID, UserID: actor.ID, Kind: kind})
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errConcurrentVote
		}
		if err != nil {
			return fmt.Errorf("record voter: %w", err)
		}

		tally, err := tx.Solution.IncrementVote(sol.ID, kind)
		if err != nil {
			return fmt.Errorf("increment %s votes: %w", kind, err)
		}
		sol.Upvotes, sol.Downvotes = tally.Upvotes, tally.Downvotes

		if kind == solution.VoteUp && tally.Upvotes >= solution.AcceptanceThreshold {
			accepted, err := tx.Solution.MarkAccepted(sol.ID)
			if err != nil {
				return fmt.Errorf("accept solution: %w", err)
			}
			sol.Status = solution.StatusAccepted
			if accepted {
				transitioned, retired, err = s.Issues.resolve(tx, is.ID)
				if err != nil {
					return err
				}
				resolved = true
			}
		}
		res.IssueResolved = transitioned

		res.Result = outcome.Accepted()
		res.Solution = &sol
		return nil
	})
	if errors.Is(err, errConcurrentVote) {
		return s.recordCast(kind, VoteResult{Result: outcome.Rejected(outcome.ReasonAlreadyVoted)}), nil
	}
	if err != nil {
		return VoteResult{}, err
	}

	if transitioned {
		metrics.IssueTransitions.WithLabelValues(string(issue.StatusResolved)).Inc()
		slog.Info("Issue resolved by vote", "issue_id", issueID, "solution_id", solutionID)
	}
	if resolved {
		s.Notifications.publishRetired(issueID, retired)
	}
	return s.recordCast(kind, res), nil
}

// lockIssueAndSolution locks the owning issue before the solution, the same
// order issue deletion uses. found is false when either row is gone.
func lockIssueAndSolution(tx *repository.Repos, solutionID uint) (issue.Issue, solution.Solution, bool, error) {
	peek, err := tx.Solution.GetSolutionByID(solutionID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return issue.Issue{}, solution.Solution{}, false, nil
	}
	if err != nil {
		return issue.Issue{}, solution.Solution{}, false, err
	}
	is, err := tx.Issue.GetIssueForUpdate(peek.IssueID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return issue.Issue{}, solution.Solution{}, false, nil
	}
	if err != nil {
		return issue.Issue{}, solution.Solution{}, false, err
	}
	sol, err := tx.Solution.GetSolutionForUpdate(solutionID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return issue.Issue{}, solution.Solution{}, false, nil
	}
	if err != nil {
		return issue.Issue{}, solution.Solution{}, false, err
	}
	return is, sol, true, nil
}

// eligibility runs the checks after authentication, in order: reporter,
// prior vote, own solution, voting window.
func (s *VotingService) eligibility(tx *repository.Repos, is issue.Issue, sol solution.Solution, actor user.Actor) (outcome.Reason, error) {
	if is.ReporterID == actor.ID {
		return outcome.ReasonReporterCannotVote, nil
	}
	voted, err := tx.Solution.HasVoted(sol.ID, actor.ID)
	if err != nil {
		return outcome.ReasonNone, fmt.Errorf("read voter membership: %w", err)
	}
	if voted {
		return outcome.ReasonAlreadyVoted, nil
	}
	if sol.SuggestedByID != nil && *sol.SuggestedByID == actor.ID {
		return outcome.ReasonSelfVoteForbidden, nil
	}
	if !sol.IsVotingEnabled {
		return outcome.ReasonVotingNotOpen, nil
	}
	return outcome.ReasonNone, nil
}

func (s *VotingService) recordCast(kind solution.VoteKind, res VoteResult) VoteResult {
	metrics.VotesCast.WithLabelValues(string(kind), string(res.Kind), string(res.Reason)).Inc()
	return res
}

// RequestVote opens voting on a solution. Only the issue's reporter may ask,
// and only before the issue is resolved. Every accepted request emits a
// "Vote Requested" notification, whether or not voting was already open.
func (s *VotingService) RequestVote(solutionID uint, actor user.Actor) (outcome.Result, error) {
	if !actor.Authenticated() {
		return s.recordRequest(outcome.Rejected(outcome.ReasonNotAuthenticated)), nil
	}

	var (
		res outcome.Result
		n   notification.Notification
	)
	err := s.Repos.ExecTx(func(tx *repository.Repos) error {
		is, sol, found, err := lockIssueAndSolution(tx, solutionID)
		if err != nil {
			return err
		}
		if !found {
			res = outcome.NotFound()
			return nil
		}

		if is.ReporterID != actor.ID {
			res = outcome.Rejected(outcome.ReasonNotReporter)
			return nil
		}
		if is.Status == issue.StatusResolved {
			res = outcome.Rejected(outcome.ReasonIssueResolved)
			return nil
		}

		if !sol.IsVotingEnabled {
			if err := tx.Solution.EnableVoting(sol.ID); err != nil {
				return fmt.Errorf("enable voting: %w", err)
			}
		}
		n, err = s.Notifications.EmitVoteRequested(tx, is, sol)
		if err != nil {
			return err
		}
		res = outcome.Accepted()
		return nil
	})
	if err != nil {
		return outcome.Result{}, err
	}

	if res.IsAccepted() {
		s.Notifications.publishCreated(n)
	}
	return s.recordRequest(res), nil
}

func (s *VotingService) recordRequest(res outcome.Result) outcome.Result {
	metrics.VoteRequests.WithLabelValues(string(res.Kind), string(res.Reason)).Inc()
	return res
}
