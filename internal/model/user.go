package model

import "time"

const (
	RoleUser  = 0
	RoleAdmin = 1
)

type User struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	Username  string    `gorm:"uniqueIndex;size:50;not null" json:"username"`
	Password  string    `gorm:"size:255;not null" json:"-"`
	Role      int       `gorm:"not null;default:0" json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"-"`
}

func (u *User) IsAdmin() bool { return u.Role == RoleAdmin }
