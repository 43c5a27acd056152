package repository

import (
	"errors"

	"github.com/ducminh2107/QL-DoAn-sub001/internal/models"

	"gorm.io/gorm"
)

// RegistrationStore is the gorm-backed store used by the registration
// workflow engine. Lookups that may legitimately find nothing return
// (nil, nil) instead of gorm.ErrRecordNotFound.
type RegistrationStore struct {
	db *gorm.DB
}

func NewRegistrationStore(db *gorm.DB) *RegistrationStore {
	return &RegistrationStore{db: db}
}

// GetTopic retrieves a topic with its registration period
func (s *RegistrationStore) GetTopic(id string) (*models.Topic, error) {
	var topic models.Topic
	err := s.db.Preload("RegistrationPeriod").Preload("Instructor").First(&topic, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &topic, nil
}

// GetLiveMember returns the student's pending or approved record on a topic, if any
func (s *RegistrationStore) GetLiveMember(topicID, studentID string) (*models.TopicMember, error) {
	var member models.TopicMember
	err := s.db.
		Where("topic_id = ? AND student_id = ? AND status IN ?", topicID, studentID,
			[]string{models.MemberStatusPending, models.MemberStatusApproved}).
		First(&member).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &member, nil
}

// CountApprovedMembers counts approved membership records on a topic
func (s *RegistrationStore) CountApprovedMembers(topicID string) (int64, error) {
	var count int64
	err := s.db.Model(&models.TopicMember{}).
		Where("topic_id = ? AND status = ?", topicID, models.MemberStatusApproved).
		Count(&count).Error
	return count, err
}

// CountLiveByStudent counts the student's live registrations across all topics
func (s *RegistrationStore) CountLiveByStudent(studentID string) (int64, error) {
	var count int64
	err := s.db.Model(&models.TopicMember{}).
		Where("student_id = ? AND status IN ?", studentID,
			[]string{models.MemberStatusPending, models.MemberStatusApproved}).
		Count(&count).Error
	return count, err
}

// CreateMember inserts a membership record
func (s *RegistrationStore) CreateMember(member *models.TopicMember) error {
	return s.db.Create(member).Error
}

// UpdateMember saves a membership record
func (s *RegistrationStore) UpdateMember(member *models.TopicMember) error {
	return s.db.Save(member).Error
}

// DeleteMember removes a membership record
func (s *RegistrationStore) DeleteMember(id string) error {
	return s.db.Delete(&models.TopicMember{}, "id = ?", id).Error
}

// ListMembers returns all membership records of a topic with student info
func (s *RegistrationStore) ListMembers(topicID string) ([]models.TopicMember, error) {
	var members []models.TopicMember
	err := s.db.Preload("Student").
		Where("topic_id = ?", topicID).
		Order("created_at ASC").
		Find(&members).Error
	return members, err
}

// GetAllMembers returns every membership record with topic and student info (for exports)
func (s *RegistrationStore) GetAllMembers() ([]models.TopicMember, error) {
	var members []models.TopicMember
	err := s.db.
		Preload("Topic").
		Preload("Student").
		Order("created_at ASC").
		Find(&members).Error
	return members, err
}

// ListByStudent returns all membership records of a student with topic info
func (s *RegistrationStore) ListByStudent(studentID string) ([]models.TopicMember, error) {
	var members []models.TopicMember
	err := s.db.
		Preload("Topic").
		Preload("Topic.Instructor").
		Preload("Topic.RegistrationPeriod").
		Where("student_id = ?", studentID).
		Order("created_at DESC").
		Find(&members).Error
	return members, err
}
