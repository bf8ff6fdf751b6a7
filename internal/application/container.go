package application

import (
	"time"

	"github.com/linskybing/residence-hub/internal/repository"
)

type Deps struct {
	Publisher         Publisher
	Suggester         Suggester
	SuggestionTimeout time.Duration
}

type Services struct {
	Audit        *AuditService
	Dashboard    *DashboardService
	Issue        *IssueService
	Notification *NotificationService
	Suggestion   *SuggestionService
	User         *UserService
	Voting       *VotingService
}

func New(repos *repository.Repos, deps Deps) *Services {
	notifications := NewNotificationService(repos, deps.Publisher)
	issues := NewIssueService(repos, notifications)
	suggestions := NewSuggestionService(deps.Suggester, issues, deps.SuggestionTimeout)
	issues.SetSuggestionDispatcher(suggestions)

	return &Services{
		Audit:        NewAuditService(repos),
		Dashboard:    NewDashboardService(repos),
		Issue:        issues,
		Notification: notifications,
		Suggestion:   suggestions,
		User:         NewUserService(repos),
		Voting:       NewVotingService(repos, issues, notifications),
	}
}
