package application

import (
	"fmt"
	"log/slog"

	"github.com/linskybing/residence-hub/internal/domain/issue"
	"github.com/linskybing/residence-hub/internal/domain/notification"
	"github.com/linskybing/residence-hub/internal/domain/solution"
	"github.com/linskybing/residence-hub/internal/metrics"
	"github.com/linskybing/residence-hub/internal/repository"
)

const (
	FeedLimit          = 10
	previewRuneLimit   = 50
	notificationSuffix = "..."
)

// Publisher fans committed notification changes out to live subscribers.
type Publisher interface {
	NotificationCreated(n notification.Notification)
	NotificationsRetired(issueID uint)
}

type NotificationService struct {
	Repos     *repository.Repos
	publisher Publisher
}

func NewNotificationService(repos *repository.Repos, publisher Publisher) *NotificationService {
	return &NotificationService{
		Repos:     repos,
		publisher: publisher,
	}
}

// IssueRaisedMessage is the issue title followed by at most the first 50
// characters of the description and an ellipsis.
func IssueRaisedMessage(title, description string) string {
	runes := []rune(description)
	if len(runes) > previewRuneLimit {
		runes = runes[:previewRuneLimit]
	}
	return title + ": " + string(runes) + notificationSuffix
}

func VoteRequestedMessage(is issue.Issue, sol solution.Solution) string {
	return fmt.Sprintf("Voting is open on %q for issue %q. Cast your vote!", sol.Title, is.Title)
}

// EmitIssueRaised writes the notification with the caller's repositories so
// it commits or rolls back together with the issue.
func (s *NotificationService) EmitIssueRaised(tx *repository.Repos, is issue.Issue) (notification.Notification, error) {
	return s.emit(tx, notification.TitleIssueRaised, IssueRaisedMessage(is.Title, is.Description), is.ID)
}

func (s *NotificationService) EmitVoteRequested(tx *repository.Repos, is issue.Issue, sol solution.Solution) (notification.Notification, error) {
	return s.emit(tx, notification.TitleVoteRequested, VoteRequestedMessage(is, sol), is.ID)
}

func (s *NotificationService) emit(tx *repository.Repos, title, message string, issueID uint) (notification.Notification, error) {
	id := issueID
	n := notification.Notification{
		Title:   title,
		Message: message,
		IssueID: &id,
	}
	if err := tx.Notification.CreateNotification(&n); err != nil {
		return notification.Notification{}, fmt.Errorf("create notification: %w", err)
	}
	return n, nil
}

// Retire deletes every notification that references the issue.
func (s *NotificationService) Retire(tx *repository.Repos, issueID uint) (int64, error) {
	n, err := tx.Notification.DeleteByIssue(issueID)
	if err != nil {
		return 0, fmt.Errorf("retire notifications for issue %d: %w", issueID, err)
	}
	return n, nil
}

// Feed returns the newest notifications first.
func (s *NotificationService) Feed(limit int) ([]notification.Notification, error) {
	if limit <= 0 || limit > 100 {
		limit = FeedLimit
	}
	return s.Repos.Notification.ListRecent(limit)
}

func (s *NotificationService) ListForIssue(issueID uint) ([]notification.Notification, error) {
	return s.Repos.Notification.ListByIssue(issueID)
}

// publishCreated must only be called after the emitting transaction commits.
func (s *NotificationService) publishCreated(n notification.Notification) {
	metrics.NotificationsEmitted.WithLabelValues(n.Title).Inc()
	if s.publisher == nil {
		return
	}
	s.publisher.NotificationCreated(n)
}

func (s *NotificationService) publishRetired(issueID uint, count int64) {
	metrics.NotificationsRetired.Add(float64(count))
	slog.Debug("Retired notifications", "issue_id", issueID, "count", count)
	if s.publisher == nil {
		return
	}
	s.publisher.NotificationsRetired(issueID)
}
