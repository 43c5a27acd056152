package models

import (
	"time"
)

// Semester statuses
const (
	SemesterStatusUpcoming  = "upcoming"
	SemesterStatusActive    = "active"
	SemesterStatusCompleted = "completed"
)

// Semester represents a top-level academic period
type Semester struct {
	ID        string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	Name      string    `json:"name" gorm:"type:varchar(100);not null" example:"HK1 2025-2026"`
	StartDate time.Time `json:"start_date" gorm:"not null"`
	EndDate   time.Time `json:"end_date" gorm:"not null"`
	Status    string    `json:"status" gorm:"type:varchar(20);not null;default:'upcoming';index" example:"active"` // "upcoming", "active", "completed"
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName specifies the table name for the Semester model
func (Semester) TableName() string {
	return "semesters"
}

// CreateSemesterRequest represents the request to create a semester
type CreateSemesterRequest struct {
	Name      string    `json:"name" binding:"required" example:"HK1 2025-2026"`
	StartDate time.Time `json:"start_date" binding:"required"`
	EndDate   time.Time `json:"end_date" binding:"required"`
}

// UpdateSemesterRequest represents the request to update a semester
type UpdateSemesterRequest struct {
	Name      string     `json:"name,omitempty"`
	StartDate *time.Time `json:"start_date,omitempty"`
	EndDate   *time.Time `json:"end_date,omitempty"`
	Status    string     `json:"status,omitempty" example:"active"`
}
