package repository

import (
	"github.com/linskybing/residence-hub/internal/domain/solution"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SolutionRepo interface {
	CreateSolution(s *solution.Solution) error
	GetSolutionByID(id uint) (solution.Solution, error)
	GetSolutionForUpdate(id uint) (solution.Solution, error)
	ListByIssue(issueID uint) ([]solution.Solution, error)
	HasVoted(solutionID, userID uint) (bool, error)
	AddVoter(v *solution.Voter) error
	ListVoters(solutionID uint) ([]solution.Voter, error)
	IncrementVote(solutionID uint, kind solution.VoteKind) (solution.Tally, error)
	MarkAccepted(solutionID uint) (bool, error)
	EnableVoting(solutionID uint) error
	DeleteByIssue(issueID uint) error
	WithTx(tx *gorm.DB) SolutionRepo
}

type DBSolutionRepo struct {
	db *gorm.DB
}

func NewSolutionRepo(db *gorm.DB) *DBSolutionRepo {
	return &DBSolutionRepo{
		db: db,
	}
}

func (r *DBSolutionRepo) CreateSolution(s *solution.Solution) error {
	return r.db.Create(s).Error
}

func (r *DBSolutionRepo) GetSolutionByID(id uint) (solution.Solution, error) {
	var s solution.Solution
	if err := r.db.First(&s, id).Error; err != nil {
		return s, err
	}
	return s, nil
}

// GetSolutionForUpdate takes a row lock (a no-op on sqlite, which
// serialises writers instead).
func (r *DBSolutionRepo) GetSolutionForUpdate(id uint) (solution.Solution, error) {
	var s solution.Solution
	err := r.db.Clauses(clause.Locking{Strength: "UPDATE"}).First(&s, id).Error
	return s, err
}

// ListByIssue returns the most upvoted first, newest first among ties.
func (r *DBSolutionRepo) ListByIssue(issueID uint) ([]solution.Solution, error) {
	var list []solution.Solution
	err := r.db.Preload("SuggestedBy").
		Where("issue_id = ?", issueID).
		Order("upvotes DESC").
		Order("suggested_date DESC").
		Order("id DESC").
		Find(&list).Error
	return list, err
}

func (r *DBSolutionRepo) HasVoted(solutionID, userID uint) (bool, error) {
	var n int64
	err := r.db.Model(&solution.Voter{}).
		Where("solution_id = ? AND user_id = ?", solutionID, userID).
		Count(&n).Error
	return n > 0, err
}

func (r *DBSolutionRepo) AddVoter(v *solution.Voter) error {
	return r.db.Create(v).Error
}

func (r *DBSolutionRepo) ListVoters(solutionID uint) ([]solution.Voter, error) {
	var voters []solution.Voter
	err := r.db.Where("solution_id = ?", solutionID).Order("created_at ASC").Find(&voters).Error
	return voters, err
}

// IncrementVote adds exactly one to the matching counter in a single UPDATE
// and reads both counters back within the same connection.
func (r *DBSolutionRepo) IncrementVote(solutionID uint, kind solution.VoteKind) (solution.Tally, error) {
	column := "upvotes"
	if kind == solution.VoteDown {
		column = "downvotes"
	}

	var t solution.Tally
	res := r.db.Model(&solution.Solution{}).
		Where("id = ?", solutionID).
		UpdateColumn(column, gorm.Expr(column+" + ?", 1))
	if res.Error != nil {
		return t, res.Error
	}
	if res.RowsAffected == 0 {
		return t, gorm.ErrRecordNotFound
	}

	err := r.db.Model(&solution.Solution{}).
		Select("upvotes", "downvotes").
		Where("id = ?", solutionID).
		Scan(&t).Error
	return t, err
}

// MarkAccepted reports false when the solution was already accepted.
func (r *DBSolutionRepo) MarkAccepted(solutionID uint) (bool, error) {
	res := r.db.Model(&solution.Solution{}).
		Where("id = ? AND status <> ?", solutionID, solution.StatusAccepted).
		UpdateColumn("status", solution.StatusAccepted)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *DBSolutionRepo) EnableVoting(solutionID uint) error {
	return r.db.Model(&solution.Solution{}).
		Where("id = ?", solutionID).
		UpdateColumn("is_voting_enabled", true).Error
}

func (r *DBSolutionRepo) DeleteByIssue(issueID uint) error {
	sub := r.db.Model(&solution.Solution{}).Select("id").Where("issue_id = ?", issueID)
	if err := r.db.Where("solution_id IN (?)", sub).Delete(&solution.Voter{}).Error; err != nil {
		return err
	}
	return r.db.Where("issue_id = ?", issueID).Delete(&solution.Solution{}).Error
}

func (r *DBSolutionRepo) WithTx(tx *gorm.DB) SolutionRepo {
	if tx == nil {
		return r
	}
	return &DBSolutionRepo{
		db: tx,
	}
}
