package repository

import (
	"github.com/linskybing/residence-hub/internal/domain/notification"
	"gorm.io/gorm"
)

type NotificationRepo interface {
	CreateNotification(n *notification.Notification) error
	ListRecent(limit int) ([]notification.Notification, error)
	ListByIssue(issueID uint) ([]notification.Notification, error)
	DeleteByIssue(issueID uint) (int64, error)
	WithTx(tx *gorm.DB) NotificationRepo
}

type DBNotificationRepo struct {
	db *gorm.DB
}

func NewNotificationRepo(db *gorm.DB) *DBNotificationRepo {
	return &DBNotificationRepo{
		db: db,
	}
}

func (r *DBNotificationRepo) CreateNotification(n *notification.Notification) error {
	return r.db.Create(n).Error
}

func (r *DBNotificationRepo) ListRecent(limit int) ([]notification.Notification, error) {
	var list []notification.Notification
	query := r.db.Order("id DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	err := query.Find(&list).Error
	return list, err
}

func (r *DBNotificationRepo) ListByIssue(issueID uint) ([]notification.Notification, error) {
	var list []notification.Notification
	err := r.db.Where("issue_id = ?", issueID).Order("id DESC").Find(&list).Error
	return list, err
}

func (r *DBNotificationRepo) DeleteByIssue(issueID uint) (int64, error) {
	res := r.db.Where("issue_id = ?", issueID).Delete(&notification.Notification{})
	return res.RowsAffected, res.Error
}

func (r *DBNotificationRepo) WithTx(tx *gorm.DB) NotificationRepo {
	if tx == nil {
		return r
	}
	return &DBNotificationRepo{
		db: tx,
	}
}
