package application

import (
	"context"
	"sync"
	"testing"

	"github.com/linskybing/residence-hub/internal/domain/notification"
	"github.com/linskybing/residence-hub/internal/domain/solution"
	"github.com/linskybing/residence-hub/internal/domain/user"
	"github.com/linskybing/residence-hub/internal/repository"
	"github.com/linskybing/residence-hub/internal/testutils"
	"gorm.io/gorm"
)

func ptrString(s string) *string { return &s }

func actorOf(u user.User) user.Actor {
	return user.Actor{ID: u.UID}
}

type fakePublisher struct {
	mu      sync.Mutex
	created []notification.Notification
	retired []uint
}

func (p *fakePublisher) NotificationCreated(n notification.Notification) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.created = append(p.created, n)
}

func (p *fakePublisher) NotificationsRetired(issueID uint) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.retired = append(p.retired, issueID)
}

type fakeSuggester struct {
	candidates []solution.Candidate
	err        error

	mu    sync.Mutex
	calls int
}

func (f *fakeSuggester) Suggest(ctx context.Context, title, description string) ([]solution.Candidate, error) {
	f.mu.Lock()
	f.calls++
	f.mu.Unlock()
	return f.candidates, f.err
}

type sqliteEnv struct {
	conn      *gorm.DB
	repos     *repository.Repos
	services  *Services
	publisher *fakePublisher
}

func newSQLiteEnv(t *testing.T) *sqliteEnv {
	t.Helper()
	conn := testutils.NewSQLiteDB(t)
	repos := repository.NewRepositories(conn)
	pub := &fakePublisher{}
	svcs := New(repos, Deps{Publisher: pub})
	t.Cleanup(svcs.Suggestion.Close)
	return &sqliteEnv{
		conn:      conn,
		repos:     repos,
		services:  svcs,
		publisher: pub,
	}
}

func (e *sqliteEnv) countNotifications(t *testing.T, issueID uint) int64 {
	t.Helper()
	var n int64
	if err := e.conn.Model(&notification.Notification{}).Where("issue_id = ?", issueID).Count(&n).Error; err != nil {
		t.Fatalf("count notifications: %v", err)
	}
	return n
}
