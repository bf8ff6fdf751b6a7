package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

type Repos struct {
	User         UserRepo
	Issue        IssueRepo
	Solution     SolutionRepo
	Notification NotificationRepo
	Audit        AuditRepo

	db *gorm.DB
}

func NewRepositories(db *gorm.DB) *Repos {
	return &Repos{
		User:         NewUserRepo(db),
		Issue:        NewIssueRepo(db),
		Solution:     NewSolutionRepo(db),
		Notification: NewNotificationRepo(db),
		Audit:        NewAuditRepo(db),
		db:           db,
	}
}

func (r *Repos) Begin() *gorm.DB {
	return r.db.Begin()
}

func (r *Repos) WithTx(tx *gorm.DB) *Repos {
	return &Repos{
		User:         r.User.WithTx(tx),
		Issue:        r.Issue.WithTx(tx),
		Solution:     r.Solution.WithTx(tx),
		Notification: r.Notification.WithTx(tx),
		Audit:        r.Audit.WithTx(tx),
		db:           tx,
	}
}

// ExecTx runs fn inside one transaction. A Repos assembled by hand without
// a connection (mocked repositories) runs fn directly.
func (r *Repos) ExecTx(fn func(*Repos) error) error {
	if r.db == nil {
		return fn(r)
	}
	return r.db.Transaction(func(tx *gorm.DB) error {
		txRepos := r.WithTx(tx)
		return fn(txRepos)
	})
}

// Ping checks the underlying connection.
func (r *Repos) Ping(ctx context.Context) error {
	if r.db == nil {
		return errors.New("database not configured")
	}
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}
