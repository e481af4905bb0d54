package models

import (
	"time"
)

// UserRole defines allowed roles in the system
type UserRole string

const (
	RoleRegular UserRole = "REGULAR"
	RoleAdmin   UserRole = "ADMIN"
)

// Valid reports whether r is one of the known roles
func (r UserRole) Valid() bool {
	return r == RoleRegular || r == RoleAdmin
}

type User struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Username     string    `json:"username" gorm:"uniqueIndex;not null"`
	Email        string    `json:"email" gorm:"uniqueIndex;not null"`
	PasswordHash string    `json:"-" gorm:"not null"`
	Role         UserRole  `json:"role" gorm:"not null;default:'REGULAR'"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// TableName keeps the collection name used by existing deployments
func (User) TableName() string {
	return "User"
}

// CurrentUser is the profile view of a user, never carrying the password hash
type CurrentUser struct {
	ID       uint     `json:"id"`
	Username string   `json:"username"`
	Email    string   `json:"email"`
	Role     UserRole `json:"role"`
}

func (u *User) Profile() CurrentUser {
	return CurrentUser{
		ID:       u.ID,
		Username: u.Username,
		Email:    u.Email,
		Role:     u.Role,
	}
}
