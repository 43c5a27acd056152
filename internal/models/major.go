package models

import (
	"time"
)

// Major represents an academic major that students and topics belong to
type Major struct {
	ID          string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	Code        string    `json:"code" gorm:"type:varchar(50);not null;unique;index" example:"CNTT"`
	Name        string    `json:"name" gorm:"type:varchar(255);not null" example:"Cong nghe thong tin"`
	Description string    `json:"description" gorm:"type:text"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TableName specifies the table name for the Major model
func (Major) TableName() string {
	return "majors"
}

// CreateMajorRequest represents the request to create a major
type CreateMajorRequest struct {
	Code        string `json:"code" binding:"required" example:"CNTT"`
	Name        string `json:"name" binding:"required" example:"Cong nghe thong tin"`
	Description string `json:"description"`
}

// UpdateMajorRequest represents the request to update a major
type UpdateMajorRequest struct {
	Code        string `json:"code,omitempty"`
	Name        string `json:"name,omitempty"`
	Description string `json:"description,omitempty"`
}
