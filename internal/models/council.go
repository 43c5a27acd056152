package models

import (
	"time"
)

// Council statuses
const (
	CouncilStatusPlanning  = "planning"
	CouncilStatusActive    = "active"
	CouncilStatusCompleted = "completed"
)

// Council member roles
const (
	CouncilRoleChairman  = "chairman"
	CouncilRoleSecretary = "secretary"
	CouncilRoleMember    = "member"
	CouncilRoleReviewer  = "reviewer"
)

// Council represents a defense committee for a semester
type Council struct {
	ID          string     `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	Name        string     `json:"name" gorm:"type:varchar(255);not null" example:"Hoi dong 1 - CNTT"`
	SemesterID  string     `json:"semester_id" gorm:"not null;index;type:uuid"`
	DefenseDate *time.Time `json:"defense_date,omitempty"`
	Status      string     `json:"status" gorm:"type:varchar(20);not null;default:'planning';index" example:"planning"` // "planning", "active", "completed"
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`

	// Relationships
	Semester *Semester       `json:"semester,omitempty" gorm:"foreignKey:SemesterID;references:ID;constraint:OnDelete:CASCADE"`
	Members  []CouncilMember `json:"members,omitempty" gorm:"foreignKey:CouncilID;references:ID;constraint:OnDelete:CASCADE"`
	Topics   []Topic         `json:"topics,omitempty" gorm:"foreignKey:CouncilID;references:ID"`
}

// TableName specifies the table name for the Council model
func (Council) TableName() string {
	return "councils"
}

// CouncilMember represents a teacher's seat on a council
type CouncilMember struct {
	ID        string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	CouncilID string    `json:"council_id" gorm:"not null;index;type:uuid"`
	UserID    string    `json:"user_id" gorm:"not null;index;type:uuid"`
	Role      string    `json:"role" gorm:"type:varchar(20);not null;default:'member'" example:"chairman"` // "chairman", "secretary", "member", "reviewer"
	CreatedAt time.Time `json:"created_at"`

	// Relationships
	Council *Council `json:"council,omitempty" gorm:"foreignKey:CouncilID;references:ID;constraint:OnDelete:CASCADE"`
	User    *User    `json:"user,omitempty" gorm:"foreignKey:UserID;references:ID"`
}

// TableName specifies the table name for the CouncilMember model
func (CouncilMember) TableName() string {
	return "council_members"
}

// CreateCouncilRequest represents the request to create a council
type CreateCouncilRequest struct {
	Name        string     `json:"name" binding:"required" example:"Hoi dong 1 - CNTT"`
	SemesterID  string     `json:"semester_id" binding:"required"`
	DefenseDate *time.Time `json:"defense_date,omitempty"`
}

// UpdateCouncilRequest represents the request to update a council
type UpdateCouncilRequest struct {
	Name        string     `json:"name,omitempty"`
	DefenseDate *time.Time `json:"defense_date,omitempty"`
	Status      string     `json:"status,omitempty" example:"active"`
}

// AddCouncilMemberRequest represents the request to add a member to a council
type AddCouncilMemberRequest struct {
	UserID string `json:"user_id" binding:"required"`
	Role   string `json:"role" binding:"required,oneof=chairman secretary member reviewer" example:"member"`
}

// AssignCouncilTopicRequest represents the request to assign a topic to a council
type AssignCouncilTopicRequest struct {
	TopicID string `json:"topic_id" binding:"required"`
}
