package application

import (
	"errors"
	"sync"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/linskybing/residence-hub/internal/domain/issue"
	"github.com/linskybing/residence-hub/internal/domain/notification"
	"github.com/linskybing/residence-hub/internal/domain/user"
	"github.com/linskybing/residence-hub/internal/repository"
	"github.com/linskybing/residence-hub/internal/repository/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// --------------------- Setup ---------------------
type dashboardMocks struct {
	user         *mock.MockUserRepo
	issue        *mock.MockIssueRepo
	notification *mock.MockNotificationRepo
}

func setupDashboardServiceMocks(t *testing.T) (*DashboardService, dashboardMocks) {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	m := dashboardMocks{
		user:         mock.NewMockUserRepo(ctrl),
		issue:        mock.NewMockIssueRepo(ctrl),
		notification: mock.NewMockNotificationRepo(ctrl),
	}
	repos := &repository.Repos{
		User:         m.user,
		Issue:        m.issue,
		Notification: m.notification,
	}
	return NewDashboardService(repos), m
}

// --------------------- Home ---------------------
func TestHome_Summary(t *testing.T) {
	svc, m := setupDashboardServiceMocks(t)

	recent := []issue.Issue{
		{ID: 5, Status: issue.StatusOpen},
		{ID: 4, Status: issue.StatusInReview},
		{ID: 3, Status: issue.StatusResolved},
		{ID: 2, Status: issue.StatusOpen},
	}
	feed := []notification.Notification{{ID: 9, Title: notification.TitleIssueRaised}}

	m.user.EXPECT().GetUserByID(uint(1)).Return(user.User{UID: 1, Email: "a@example.com", FullName: ptrString("Ann")}, nil)
	m.issue.EXPECT().CountByReporterAndStatus(uint(1), issue.StatusOpen).Return(int64(7), nil)
	m.issue.EXPECT().CountByReporterAndStatus(uint(1), issue.StatusResolved).Return(int64(2), nil)
	m.issue.EXPECT().ListRecentByReporter(uint(1), 5).Return(recent, nil)
	m.notification.EXPECT().ListRecent(FeedLimit).Return(feed, nil)

	home, err := svc.Home(user.Actor{ID: 1})
	require.NoError(t, err)
	assert.Equal(t, "Ann", home.DisplayName)
	assert.Equal(t, int64(7), home.OpenIssuesCount)
	assert.Equal(t, int64(2), home.ResolvedIssuesCount)
	assert.Len(t, home.RecentIssues, 4)
	assert.Equal(t, 2, home.Cards.OpenCount)
	assert.Equal(t, 50, home.Cards.OpenPercent)
	assert.Equal(t, 25, home.Cards.InReviewPercent)
	assert.Equal(t, 25, home.Cards.ResolvedPercent)
	assert.Equal(t, feed, home.Notifications)
}

func TestHome_Anonymous(t *testing.T) {
	svc, _ := setupDashboardServiceMocks(t)

	_, err := svc.Home(user.Actor{})
	assert.ErrorIs(t, err, ErrNotAuthenticated)
}

func TestHome_UnknownUser(t *testing.T) {
	svc, m := setupDashboardServiceMocks(t)

	m.user.EXPECT().GetUserByID(uint(2)).Return(user.User{}, gorm.ErrRecordNotFound)

	_, err := svc.Home(user.Actor{ID: 2})
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestHome_FeedError(t *testing.T) {
	svc, m := setupDashboardServiceMocks(t)

	m.user.EXPECT().GetUserByID(uint(1)).Return(user.User{UID: 1}, nil)
	m.issue.EXPECT().CountByReporterAndStatus(uint(1), gomock.Any()).Return(int64(0), nil).Times(2)
	m.issue.EXPECT().ListRecentByReporter(uint(1), 5).Return(nil, nil)
	m.notification.EXPECT().ListRecent(FeedLimit).Return(nil, errors.New("db down"))

	_, err := svc.Home(user.Actor{ID: 1})
	assert.EqualError(t, err, "db down")
}

func TestHome_ConcurrentCallsSucceed(t *testing.T) {
	svc, m := setupDashboardServiceMocks(t)

	m.user.EXPECT().GetUserByID(uint(1)).Return(user.User{UID: 1, Email: "a@example.com"}, nil).MinTimes(1)
	m.issue.EXPECT().CountByReporterAndStatus(uint(1), gomock.Any()).Return(int64(1), nil).MinTimes(2)
	m.issue.EXPECT().ListRecentByReporter(uint(1), 5).Return(nil, nil).MinTimes(1)
	m.notification.EXPECT().ListRecent(FeedLimit).Return(nil, nil).MinTimes(1)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			home, err := svc.Home(user.Actor{ID: 1})
			assert.NoError(t, err)
			assert.Equal(t, "a@example.com", home.DisplayName)
		}()
	}
	wg.Wait()
}
