package repository

import (
	"github.com/linskybing/residence-hub/internal/domain/issue"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type IssueRepo interface {
	CreateIssue(is *issue.Issue) error
	GetIssueByID(id uint) (issue.Issue, error)
	GetIssueForUpdate(id uint) (issue.Issue, error)
	ListIssues(params issue.ListParams) ([]issue.Issue, error)
	ListRecentByReporter(reporterID uint, limit int) ([]issue.Issue, error)
	CountByReporterAndStatus(reporterID uint, status issue.Status) (int64, error)
	TransitionStatus(id uint, from []issue.Status, to issue.Status) (bool, error)
	DeleteIssue(id uint) error
	WithTx(tx *gorm.DB) IssueRepo
}

type DBIssueRepo struct {
	db *gorm.DB
}

func NewIssueRepo(db *gorm.DB) *DBIssueRepo {
	return &DBIssueRepo{
		db: db,
	}
}

func (r *DBIssueRepo) CreateIssue(is *issue.Issue) error {
	return r.db.Create(is).Error
}

func (r *DBIssueRepo) GetIssueByID(id uint) (issue.Issue, error) {
	var is issue.Issue
	if err := r.db.Preload("Reporter").First(&is, id).Error; err != nil {
		return is, err
	}
	return is, nil
}

// GetIssueForUpdate locks the row until the surrounding transaction ends.
func (r *DBIssueRepo) GetIssueForUpdate(id uint) (issue.Issue, error) {
	var is issue.Issue
	err := r.db.Clauses(clause.Locking{Strength: "UPDATE"}).First(&is, id).Error
	return is, err
}

func (r *DBIssueRepo) ListIssues(params issue.ListParams) ([]issue.Issue, error) {
	var issues []issue.Issue
	query := r.db.Model(&issue.Issue{})

	if params.Status != nil {
		query = query.Where("status = ?", *params.Status)
	}
	if params.ReporterID != nil {
		query = query.Where("reporter_id = ?", *params.ReporterID)
	}

	query = query.Order("reported_date DESC").Order("id DESC")
	if params.Limit > 0 {
		query = query.Limit(params.Limit)
	}
	if params.Offset > 0 {
		query = query.Offset(params.Offset)
	}

	err := query.Find(&issues).Error
	return issues, err
}

func (r *DBIssueRepo) ListRecentByReporter(reporterID uint, limit int) ([]issue.Issue, error) {
	return r.ListIssues(issue.ListParams{ReporterID: &reporterID, Limit: limit})
}

func (r *DBIssueRepo) CountByReporterAndStatus(reporterID uint, status issue.Status) (int64, error) {
	var n int64
	err := r.db.Model(&issue.Issue{}).
		Where("reporter_id = ? AND status = ?", reporterID, status).
		Count(&n).Error
	return n, err
}

// TransitionStatus moves the issue to `to` only while it is in one of the
// `from` states and reports whether a row changed.
func (r *DBIssueRepo) TransitionStatus(id uint, from []issue.Status, to issue.Status) (bool, error) {
	res := r.db.Model(&issue.Issue{}).
		Where("id = ? AND status IN ?", id, from).
		UpdateColumn("status", to)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *DBIssueRepo) DeleteIssue(id uint) error {
	res := r.db.Delete(&issue.Issue{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *DBIssueRepo) WithTx(tx *gorm.DB) IssueRepo {
	if tx == nil {
		return r
	}
	return &DBIssueRepo{
		db: tx,
	}
}
