package issue

import (
	"time"

	"github.com/linskybing/residence-hub/internal/domain/user"
)

type Status string

const (
	StatusOpen     Status = "Open"
	StatusInReview Status = "In Review"
	StatusResolved Status = "Resolved"
)

func (s Status) Valid() bool {
	switch s {
	case StatusOpen, StatusInReview, StatusResolved:
		return true
	}
	return false
}

type Issue struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	Title        string     `gorm:"size:100;not null" json:"title"`
	Description  string     `gorm:"type:text;not null" json:"description"`
	Status       Status     `gorm:"size:20;not null;default:'Open';index" json:"status"`
	ReportedDate time.Time  `gorm:"autoCreateTime" json:"reported_date"`
	ReporterID   uint       `gorm:"not null;index" json:"reporter_id"`
	Reporter     *user.User `gorm:"foreignKey:ReporterID;references:UID;constraint:OnDelete:CASCADE" json:"reporter,omitempty"`
}
