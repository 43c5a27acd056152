package models

import (
	"time"
)

// TopicCategory represents a thesis topic category (web, mobile, AI, ...)
type TopicCategory struct {
	ID          string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	Name        string    `json:"name" gorm:"type:varchar(255);not null;unique" example:"Web Application"`
	Description string    `json:"description" gorm:"type:text"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TableName specifies the table name for the TopicCategory model
func (TopicCategory) TableName() string {
	return "topic_categories"
}

// CreateTopicCategoryRequest represents the request to create a topic category
type CreateTopicCategoryRequest struct {
	Name        string `json:"name" binding:"required" example:"Web Application"`
	Description string `json:"description"`
}

// UpdateTopicCategoryRequest represents the request to update a topic category
type UpdateTopicCategoryRequest struct {
	Name        string `json:"name,omitempty"`
	Description string `json:"description,omitempty"`
}
