package solution

import (
	"time"

	"github.com/linskybing/residence-hub/internal/domain/issue"
	"github.com/linskybing/residence-hub/internal/domain/user"
)

// AcceptanceThreshold is the upvote count at which a solution is accepted
// and its issue resolved.
const AcceptanceThreshold = 5

type Status string

const (
	StatusPending  Status = "Pending"
	StatusAccepted Status = "Accepted"
)

type VoteKind string

const (
	VoteUp   VoteKind = "up"
	VoteDown VoteKind = "down"
)

// ParseVoteKind accepts both the short form and the "upvote"/"downvote"
// path segments.
func ParseVoteKind(s string) (VoteKind, bool) {
	switch s {
	case "up", "upvote":
		return VoteUp, true
	case "down", "downvote":
		return VoteDown, true
	}
	return "", false
}

type Solution struct {
	ID              uint         `gorm:"primaryKey" json:"id"`
	Title           string       `gorm:"size:200;not null" json:"title"`
	Description     string       `gorm:"type:text;not null" json:"description"`
	IssueID         uint         `gorm:"not null;index" json:"issue_id"`
	Issue           *issue.Issue `gorm:"foreignKey:IssueID;constraint:OnDelete:CASCADE" json:"-"`
	SuggestedByID   *uint        `gorm:"index" json:"suggested_by_id"`
	SuggestedBy     *user.User   `gorm:"foreignKey:SuggestedByID;references:UID;constraint:OnDelete:SET NULL" json:"suggested_by,omitempty"`
	Upvotes         uint         `gorm:"not null;default:0" json:"upvotes"`
	Downvotes       uint         `gorm:"not null;default:0" json:"downvotes"`
	Status          Status       `gorm:"size:20;not null;default:'Pending'" json:"status"`
	IsVotingEnabled bool         `gorm:"not null;default:false" json:"is_voting_enabled"`
	Confidence      *int         `json:"confidence,omitempty"`
	SuggestedDate   time.Time    `gorm:"autoCreateTime" json:"suggested_date"`
}

// AIAuthored reports whether the solution came from the suggestion model.
func (s Solution) AIAuthored() bool {
	return s.SuggestedByID == nil
}

// Voter records one user's vote on a solution. The composite key keeps
// membership exclusive.
type Voter struct {
	SolutionID uint      `gorm:"primaryKey;autoIncrement:false" json:"solution_id"`
	UserID     uint      `gorm:"primaryKey;autoIncrement:false" json:"user_id"`
	Kind       VoteKind  `gorm:"size:10;not null" json:"kind"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`

	Solution *Solution `gorm:"foreignKey:SolutionID;constraint:OnDelete:CASCADE" json:"-"`
	User     *user.User `gorm:"foreignKey:UserID;references:UID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Voter) TableName() string {
	return "solution_voters"
}

// Tally is the counter state read back after an increment.
type Tally struct {
	Upvotes   uint
	Downvotes uint
}

// Candidate is a solution proposed by the suggestion model.
type Candidate struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Confidence  int    `json:"confidence"`
}
