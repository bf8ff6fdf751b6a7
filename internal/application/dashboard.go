package application

import (
	"errors"
	"strconv"

	"github.com/linskybing/residence-hub/internal/domain/issue"
	"github.com/linskybing/residence-hub/internal/domain/notification"
	"github.com/linskybing/residence-hub/internal/domain/user"
	"github.com/linskybing/residence-hub/internal/repository"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"
)

const recentIssueLimit = 5

type HomeSummary struct {
	DisplayName         string                      `json:"display_name"`
	OpenIssuesCount     int64                       `json:"open_issues_count"`
	ResolvedIssuesCount int64                       `json:"resolved_issues_count"`
	RecentIssues        []issue.Issue               `json:"recent_issues"`
	Cards               issue.StatusBreakdown       `json:"cards"`
	Notifications       []notification.Notification `json:"notifications"`
}

type DashboardService struct {
	Repos *repository.Repos
	group singleflight.Group
}

func NewDashboardService(repos *repository.Repos) *DashboardService {
	return &DashboardService{
		Repos: repos,
	}
}

// Home builds the resident's landing page. Concurrent loads for the same
// user share one set of queries.
func (s *DashboardService) Home(actor user.Actor) (HomeSummary, error) {
	if !actor.Authenticated() {
		return HomeSummary{}, ErrNotAuthenticated
	}
	v, err, _ := s.group.Do(strconv.FormatUint(uint64(actor.ID), 10), func() (interface{}, error) {
		return s.load(actor.ID)
	})
	if err != nil {
		return HomeSummary{}, err
	}
	return v.(HomeSummary), nil
}

func (s *DashboardService) load(userID uint) (HomeSummary, error) {
	usr, err := s.Repos.User.GetUserByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return HomeSummary{}, ErrUserNotFound
		}
		return HomeSummary{}, err
	}

	open, err := s.Repos.Issue.CountByReporterAndStatus(userID, issue.StatusOpen)
	if err != nil {
		return HomeSummary{}, err
	}
	resolved, err := s.Repos.Issue.CountByReporterAndStatus(userID, issue.StatusResolved)
	if err != nil {
		return HomeSummary{}, err
	}

	recent, err := s.Repos.Issue.ListRecentByReporter(userID, recentIssueLimit)
	if err != nil {
		return HomeSummary{}, err
	}
	feed, err := s.Repos.Notification.ListRecent(FeedLimit)
	if err != nil {
		return HomeSummary{}, err
	}

	return HomeSummary{
		DisplayName:         usr.DisplayName(),
		OpenIssuesCount:     open,
		ResolvedIssuesCount: resolved,
		RecentIssues:        recent,
		Cards:               issue.Breakdown(recent),
		Notifications:       feed,
	}, nil
}
