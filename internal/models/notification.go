package models

import (
	"time"
)

// Notification types emitted by the registration workflow
const (
	NotificationTypeRegistration = "registration_request"
	NotificationTypeDecision     = "registration_decision"
	NotificationTypeRemoval      = "member_removed"
)

// Notification represents an in-app notification for a user
type Notification struct {
	ID        string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	UserID    string    `json:"user_id" gorm:"not null;index;type:uuid"`
	Type      string    `json:"type" gorm:"type:varchar(50);not null;index" example:"registration_decision"`
	Title     string    `json:"title" gorm:"type:varchar(255);not null"`
	Message   string    `json:"message" gorm:"type:text;not null"`
	Metadata  JSON      `json:"metadata,omitempty" gorm:"type:jsonb"` // {topic_id, student_id, decision, ...}
	IsRead    bool      `json:"is_read" gorm:"default:false;index"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName specifies the table name for the Notification model
func (Notification) TableName() string {
	return "notifications"
}

// NotificationMessage is the queue payload published by the workflow engine
// and consumed into the notifications table
type NotificationMessage struct {
	UserID   string                 `json:"user_id" binding:"required"`
	Type     string                 `json:"type" binding:"required"`
	Title    string                 `json:"title" binding:"required"`
	Message  string                 `json:"message" binding:"required"`
	Metadata map[string]interface{} `json:"metadata,omitempty"`
}
