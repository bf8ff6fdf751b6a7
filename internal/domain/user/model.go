package user

import "time"

type User struct {
	UID            uint      `gorm:"primaryKey;column:u_id" json:"id"`
	Email          string    `gorm:"size:254;not null;uniqueIndex" json:"email"`
	Password       string    `gorm:"size:255;not null" json:"-"`
	FlatNumber     string    `gorm:"size:100;not null" json:"flat_number"`
	Role           string    `gorm:"size:20;not null;default:'resident'" json:"role"`
	FullName       *string   `gorm:"size:100" json:"full_name,omitempty"`
	ProfilePicture *string   `gorm:"size:512" json:"profile_picture,omitempty"`
	CreatedAt      time.Time `gorm:"column:create_at;autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time `gorm:"column:update_at;autoUpdateTime" json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}

// DisplayName falls back to the email when no full name was given.
func (u User) DisplayName() string {
	if u.FullName != nil && *u.FullName != "" {
		return *u.FullName
	}
	return u.Email
}

// Actor is the user on whose behalf a core operation runs. The zero value is
// an anonymous caller.
type Actor struct {
	ID      uint
	IsAdmin bool
}

func (a Actor) Authenticated() bool {
	return a.ID != 0
}
