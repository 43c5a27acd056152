package models

import (
	"time"
)

// Registration period statuses
const (
	PeriodStatusActive = "active"
	PeriodStatusClosed = "closed"
)

// RegistrationPeriod represents an admin-defined time window gating topic registration
type RegistrationPeriod struct {
	ID                string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	SemesterID        string    `json:"semester_id" gorm:"not null;index;type:uuid"`
	Name              string    `json:"name" gorm:"type:varchar(255);not null" example:"Dot 1 HK1 2025-2026"`
	StartDate         time.Time `json:"start_date" gorm:"not null"`
	EndDate           time.Time `json:"end_date" gorm:"not null"`
	Status            string    `json:"status" gorm:"type:varchar(20);not null;default:'active';index" example:"active"` // "active", "closed"
	AllowRegistration bool      `json:"allow_registration" gorm:"default:true"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`

	// Relationships
	Semester *Semester `json:"semester,omitempty" gorm:"foreignKey:SemesterID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for the RegistrationPeriod model
func (RegistrationPeriod) TableName() string {
	return "registration_periods"
}

// IsOpenAt reports whether registration actions are permitted at the given time.
// The period must be active, allow registration, and contain the instant in [start, end].
func (p *RegistrationPeriod) IsOpenAt(t time.Time) bool {
	if p == nil {
		return false
	}
	if p.Status != PeriodStatusActive || !p.AllowRegistration {
		return false
	}
	return !t.Before(p.StartDate) && !t.After(p.EndDate)
}

// CreateRegistrationPeriodRequest represents the request to create a registration period
type CreateRegistrationPeriodRequest struct {
	SemesterID        string    `json:"semester_id" binding:"required"`
	Name              string    `json:"name" binding:"required" example:"Dot 1 HK1 2025-2026"`
	StartDate         time.Time `json:"start_date" binding:"required"`
	EndDate           time.Time `json:"end_date" binding:"required"`
	AllowRegistration *bool     `json:"allow_registration,omitempty"`
}

// UpdateRegistrationPeriodRequest represents the request to update a registration period
type UpdateRegistrationPeriodRequest struct {
	Name              string     `json:"name,omitempty"`
	StartDate         *time.Time `json:"start_date,omitempty"`
	EndDate           *time.Time `json:"end_date,omitempty"`
	Status            string     `json:"status,omitempty" example:"closed"`
	AllowRegistration *bool      `json:"allow_registration,omitempty"`
}
