package notification

import (
	"time"

	"github.com/linskybing/residence-hub/internal/domain/issue"
)

const (
	TitleIssueRaised   = "New Issue Raised"
	TitleVoteRequested = "Vote Requested"
)

type Notification struct {
	ID        uint         `gorm:"primaryKey" json:"id"`
	Title     string       `gorm:"size:200;not null" json:"title"`
	Message   string       `gorm:"type:text;not null" json:"message"`
	IssueID   *uint        `gorm:"index" json:"issue_id,omitempty"`
	Issue     *issue.Issue `gorm:"foreignKey:IssueID;constraint:OnDelete:CASCADE" json:"-"`
	CreatedAt time.Time    `gorm:"autoCreateTime" json:"created_at"`
}
