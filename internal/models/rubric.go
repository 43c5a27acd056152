package models

import (
	"time"
)

// Rubric represents an evaluation rubric used by councils when grading defenses
type Rubric struct {
	ID          string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	Name        string    `json:"name" gorm:"type:varchar(255);not null" example:"Rubric bao ve do an"`
	Description string    `json:"description" gorm:"type:text"`
	Criteria    JSON      `json:"criteria" gorm:"type:jsonb"` // {"items": [{name, weight, max_score}, ...]}
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TableName specifies the table name for the Rubric model
func (Rubric) TableName() string {
	return "rubrics"
}

// CreateRubricRequest represents the request to create a rubric
type CreateRubricRequest struct {
	Name        string `json:"name" binding:"required" example:"Rubric bao ve do an"`
	Description string `json:"description"`
	Criteria    JSON   `json:"criteria,omitempty"`
}

// UpdateRubricRequest represents the request to update a rubric
type UpdateRubricRequest struct {
	Name        string `json:"name,omitempty"`
	Description string `json:"description,omitempty"`
	Criteria    JSON   `json:"criteria,omitempty"`
}
