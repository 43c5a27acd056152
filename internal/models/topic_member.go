package models

import (
	"time"
)

// Membership record statuses. Cancelled and removed are terminal and delete
// the row, so only these three are ever stored.
const (
	MemberStatusPending  = "pending"
	MemberStatusApproved = "approved"
	MemberStatusRejected = "rejected"
)

// Registration decision actions
const (
	DecisionApprove = "approve"
	DecisionReject  = "reject"
)

// TopicMember represents a student's membership record within a topic's group.
// A partial unique index on (topic_id, student_id) for live statuses backs the
// no-duplicate-registration invariant at the storage layer (see database.InitDB).
type TopicMember struct {
	ID        string     `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	TopicID   string     `json:"topic_id" gorm:"not null;index;type:uuid"`
	StudentID string     `json:"student_id" gorm:"not null;index;type:uuid"`
	Status    string     `json:"status" gorm:"type:varchar(20);not null;default:'pending';index" example:"pending"` // "pending", "approved", "rejected"
	Feedback  string     `json:"feedback" gorm:"type:text"` // instructor note, visible to the student
	DecidedBy *string    `json:"decided_by,omitempty" gorm:"type:uuid"`
	DecidedAt *time.Time `json:"decided_at,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`

	// Relationships
	Topic   *Topic `json:"topic,omitempty" gorm:"foreignKey:TopicID;references:ID;constraint:OnDelete:CASCADE"`
	Student *User  `json:"student,omitempty" gorm:"foreignKey:StudentID;references:ID"`
}

// TableName specifies the table name for the TopicMember model
func (TopicMember) TableName() string {
	return "topic_members"
}

// IsLive reports whether the record still occupies a registration slot
func (m *TopicMember) IsLive() bool {
	return m.Status == MemberStatusPending || m.Status == MemberStatusApproved
}

// DecideRegistrationRequest represents the instructor's decision on a pending registration
type DecideRegistrationRequest struct {
	Action   string `json:"action" binding:"required,oneof=approve reject" example:"approve"`
	Feedback string `json:"feedback" example:"Nhom du dieu kien"`
}

// RemoveMemberRequest represents the instructor's removal of an approved member
type RemoveMemberRequest struct {
	Reason string `json:"reason" example:"Sinh vien xin chuyen de tai"`
}

// TopicMemberResponse represents a membership record in API responses.
// Student fields render empty when the referenced user no longer exists.
type TopicMemberResponse struct {
	ID          string  `json:"id"`
	TopicID     string  `json:"topic_id"`
	StudentID   string  `json:"student_id"`
	StudentName string  `json:"student_name,omitempty"`
	Username    string  `json:"username,omitempty"`
	Status      string  `json:"status"`
	Feedback    string  `json:"feedback,omitempty"`
	DecidedAt   *string `json:"decided_at,omitempty"`
	CreatedAt   string  `json:"created_at"`
}

// ToResponse converts a TopicMember to its API representation
func (m *TopicMember) ToResponse() TopicMemberResponse {
	resp := TopicMemberResponse{
		ID:        m.ID,
		TopicID:   m.TopicID,
		StudentID: m.StudentID,
		Status:    m.Status,
		Feedback:  m.Feedback,
		CreatedAt: m.CreatedAt.Format(time.RFC3339),
	}
	if m.Student != nil {
		resp.StudentName = m.Student.FullName
		resp.Username = m.Student.Username
	}
	if m.DecidedAt != nil {
		decidedAt := m.DecidedAt.Format(time.RFC3339)
		resp.DecidedAt = &decidedAt
	}
	return resp
}

// RegistrationResponse pairs a membership record with its topic for the
// student's own registrations listing
type RegistrationResponse struct {
	Member TopicMemberResponse `json:"member"`
	Topic  TopicResponse       `json:"topic"`
}
