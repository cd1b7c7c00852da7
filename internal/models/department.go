package models

import (
	"time"

	"github.com/google/uuid"
)

// Department groups faculty, students, classes and subjects.
type Department struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name      string    `json:"name" gorm:"not null"`
	Code      string    `json:"code" gorm:"uniqueIndex;not null"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the database table name for the Department model.
func (Department) TableName() string {
	return "departments"
}
