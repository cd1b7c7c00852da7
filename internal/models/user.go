// Package models contains data models for the attendance service.
package models

import (
	"time"

	"github.com/google/uuid"
)

// Role identifies which part of the system a user may access.
type Role string

const (
	RoleHOD     Role = "hod"
	RoleFaculty Role = "faculty"
	RoleStudent Role = "student"
)

// Valid reports whether r is one of the three known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleHOD, RoleFaculty, RoleStudent:
		return true
	}
	return false
}

// User is the credential record shared by HODs, faculty and students.
// PasswordHash holds a bcrypt digest; the plaintext is never stored.
type User struct {
	ID           uuid.UUID `json:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Email        string    `json:"email" gorm:"uniqueIndex;not null"`
	PasswordHash string    `json:"-" gorm:"column:password;not null"`
	Role         Role      `json:"role" gorm:"not null"`
	Name         string    `json:"name"`
	IsActive     bool      `json:"is_active" gorm:"default:true"`
	CreatedAt    time.Time `json:"created_at"`
}

// TableName returns the database table name for the User model.
func (User) TableName() string {
	return "users"
}
