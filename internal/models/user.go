package models

import (
	"time"
)

type UserRole string

const (
	RoleStudent    UserRole = "student"
	RoleInstructor UserRole = "instructor"
	RoleAdmin      UserRole = "admin"
)

// User is a platform account, keyed naturally by email. Records are created
// on first registration and never deleted by this service.
type User struct {
	ID    uint     `json:"_id" gorm:"primaryKey"`
	Name  string   `json:"name" gorm:"size:100"`
	Email string   `json:"email" gorm:"uniqueIndex;not null;size:255"`
	Photo string   `json:"photo" gorm:"size:500"`
	Role  UserRole `json:"role" gorm:"size:20;default:student"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}

// RoleFlags is the role-classification payload for a single user.
type RoleFlags struct {
	IsStudent    bool `json:"isStudent"`
	IsInstructor bool `json:"isInstructor"`
	IsAdmin      bool `json:"isAdmin"`
}

// Flags classifies the user's role into the three-flag payload.
func (u *User) Flags() RoleFlags {
	return RoleFlags{
		IsStudent:    u.Role == RoleStudent,
		IsInstructor: u.Role == RoleInstructor,
		IsAdmin:      u.Role == RoleAdmin,
	}
}
