package models

import (
	"time"
)

// Topic statuses
const (
	TopicStatusPending  = "pending"
	TopicStatusApproved = "approved"
)

// Topic represents a proposed or teacher-created thesis subject.
// Group membership lives exclusively in topic_members; there is no separate
// group aggregate to keep consistent.
type Topic struct {
	ID                   string  `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	Title                string  `json:"title" gorm:"type:varchar(500);not null" example:"He thong quan ly do an tot nghiep"`
	Description          string  `json:"description" gorm:"type:text"`
	CategoryID           *string `json:"category_id,omitempty" gorm:"type:uuid;index"`
	MajorID              *string `json:"major_id,omitempty" gorm:"type:uuid;index"`
	CreatedByID          string  `json:"created_by_id" gorm:"not null;index;type:uuid"`
	InstructorID         *string `json:"instructor_id,omitempty" gorm:"type:uuid;index"` // nullable until assigned
	MaxMembers           int     `json:"max_members" gorm:"not null;default:1" example:"3"`
	Status               string  `json:"status" gorm:"type:varchar(20);not null;default:'pending';index" example:"approved"` // "pending", "approved"
	RegistrationPeriodID string  `json:"registration_period_id" gorm:"not null;index;type:uuid"`
	CouncilID            *string `json:"council_id,omitempty" gorm:"type:uuid;index"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relationships
	Category           *TopicCategory      `json:"category,omitempty" gorm:"foreignKey:CategoryID;references:ID;constraint:OnDelete:SET NULL"`
	Major              *Major              `json:"major,omitempty" gorm:"foreignKey:MajorID;references:ID;constraint:OnDelete:SET NULL"`
	CreatedBy          *User               `json:"created_by,omitempty" gorm:"foreignKey:CreatedByID;references:ID"`
	Instructor         *User               `json:"instructor,omitempty" gorm:"foreignKey:InstructorID;references:ID"`
	RegistrationPeriod *RegistrationPeriod `json:"registration_period,omitempty" gorm:"foreignKey:RegistrationPeriodID;references:ID"`
	Members            []TopicMember       `json:"members,omitempty" gorm:"foreignKey:TopicID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for the Topic model
func (Topic) TableName() string {
	return "topics"
}

// ApprovedMemberCount counts members whose status is approved.
// Requires Members to be loaded.
func (t *Topic) ApprovedMemberCount() int {
	count := 0
	for _, m := range t.Members {
		if m.Status == MemberStatusApproved {
			count++
		}
	}
	return count
}

// CreateTopicRequest represents the request to create a topic.
// Teachers create approved topics directly; student proposals start pending.
type CreateTopicRequest struct {
	Title                string  `json:"title" binding:"required" example:"He thong quan ly do an tot nghiep"`
	Description          string  `json:"description"`
	CategoryID           *string `json:"category_id,omitempty"`
	MajorID              *string `json:"major_id,omitempty"`
	InstructorID         *string `json:"instructor_id,omitempty"`
	MaxMembers           int     `json:"max_members" binding:"required,min=1" example:"3"`
	RegistrationPeriodID string  `json:"registration_period_id" binding:"required"`
}

// UpdateTopicRequest represents the request to update a topic
type UpdateTopicRequest struct {
	Title        string  `json:"title,omitempty"`
	Description  string  `json:"description,omitempty"`
	CategoryID   *string `json:"category_id,omitempty"`
	MajorID      *string `json:"major_id,omitempty"`
	InstructorID *string `json:"instructor_id,omitempty"`
	MaxMembers   *int    `json:"max_members,omitempty"`
}

// TopicResponse represents the response for topic operations
type TopicResponse struct {
	ID                   string               `json:"id"`
	Title                string               `json:"title"`
	Description          string               `json:"description"`
	CategoryID           *string              `json:"category_id,omitempty"`
	CategoryName         string               `json:"category_name,omitempty"`
	MajorID              *string              `json:"major_id,omitempty"`
	MajorName            string               `json:"major_name,omitempty"`
	CreatedByID          string               `json:"created_by_id"`
	CreatedByName        string               `json:"created_by_name,omitempty"`
	InstructorID         *string              `json:"instructor_id,omitempty"`
	InstructorName       string               `json:"instructor_name,omitempty"`
	MaxMembers           int                  `json:"max_members"`
	ApprovedMembers      int                  `json:"approved_members"`
	Status               string               `json:"status"`
	RegistrationPeriodID string               `json:"registration_period_id"`
	CouncilID            *string              `json:"council_id,omitempty"`
	Members              []TopicMemberResponse `json:"members,omitempty"`
	CreatedAt            string               `json:"created_at"`
	UpdatedAt            string               `json:"updated_at"`
}

// TopicEligibility describes whether the requesting student may register for a topic
type TopicEligibility struct {
	CanRegister bool   `json:"can_register"`
	Reason      string `json:"reason,omitempty"`
}

// TopicDetailResponse is the student topic detail view: the topic plus eligibility flags
type TopicDetailResponse struct {
	Topic       TopicResponse    `json:"topic"`
	Eligibility TopicEligibility `json:"eligibility"`
}
