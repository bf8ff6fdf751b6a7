package handlers

import (
	"github.com/linskybing/residence-hub/internal/application"
	"github.com/linskybing/residence-hub/internal/realtime"
	"github.com/linskybing/residence-hub/internal/repository"
)

type Handlers struct {
	Audit        *AuditHandler
	Dashboard    *DashboardHandler
	Health       *HealthHandler
	Issue        *IssueHandler
	Notification *NotificationHandler
	Solution     *SolutionHandler
	User         *UserHandler
}

func New(svc *application.Services, repos *repository.Repos, hub *realtime.Hub) *Handlers {
	return &Handlers{
		Audit:        NewAuditHandler(svc.Audit),
		Dashboard:    NewDashboardHandler(svc.Dashboard),
		Health:       NewHealthHandler(repos),
		Issue:        NewIssueHandler(svc.Issue, repos.Audit),
		Notification: NewNotificationHandler(svc.Notification, hub),
		Solution:     NewSolutionHandler(svc.Voting, repos.Audit),
		User:         NewUserHandler(svc.User, repos.Audit),
	}
}
