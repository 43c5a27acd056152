package models

import (
	"time"
)

// Well-known setting keys
const (
	SettingDefaultMaxMembers = "default_max_members"
	SettingAllowProposals    = "allow_student_proposals"
)

// SystemSetting represents a key/value system configuration row
type SystemSetting struct {
	ID        string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	Key       string    `json:"key" gorm:"type:varchar(100);not null;unique;index"`
	Value     string    `json:"value" gorm:"type:text;not null"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName specifies the table name for the SystemSetting model
func (SystemSetting) TableName() string {
	return "system_settings"
}

// UpsertSettingRequest represents the request to create or update a setting
type UpsertSettingRequest struct {
	Key   string `json:"key" binding:"required" example:"default_max_members"`
	Value string `json:"value" binding:"required" example:"3"`
}
