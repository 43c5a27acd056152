package services

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/ducminh2107/QL-DoAn-sub001/internal/models"
	"github.com/sirupsen/logrus"
)

// Workflow failure reasons surfaced to the API layer
var (
	ErrTopicNotFound      = errors.New("topic not found")
	ErrTopicNotApproved   = errors.New("topic is not approved for registration")
	ErrRegistrationClosed = errors.New("registration period is closed")
	ErrTopicFull          = errors.New("topic has reached its member limit")
	ErrAlreadyRegistered  = errors.New("student already has an active registration")
	ErrNoPendingRequest   = errors.New("no pending registration request")
	ErrNoApprovedMember   = errors.New("no approved membership record")
	ErrNotInstructor      = errors.New("user is not the topic's instructor")
)

// RegistrationStore is the persistence surface the workflow engine needs.
// Implemented by repository.RegistrationStore; tests use an in-memory fake.
type RegistrationStore interface {
	GetTopic(id string) (*models.Topic, error)
	GetLiveMember(topicID, studentID string) (*models.TopicMember, error)
	CountApprovedMembers(topicID string) (int64, error)
	CountLiveByStudent(studentID string) (int64, error)
	CreateMember(member *models.TopicMember) error
	UpdateMember(member *models.TopicMember) error
	DeleteMember(id string) error
	ListMembers(topicID string) ([]models.TopicMember, error)
	ListByStudent(studentID string) ([]models.TopicMember, error)
}

// Notifier queues a notification for a user. Implemented by NotificationService.
type Notifier interface {
	Notify(userID, notifType, title, message string, metadata map[string]interface{})
}

// RegistrationService mediates student registration requests and instructor
// decisions, keeping topic membership counts consistent. Capacity-affecting
// mutations on a topic are serialized by a per-topic mutex held across the
// whole check-then-act sequence; the partial unique index on topic_members
// backs the no-duplicate invariant at the storage layer.
type RegistrationService struct {
	store    RegistrationStore
	notifier Notifier
	// Per-topic mutexes. Key: topic ID, value: *sync.Mutex
	topicLocks sync.Map
}

func NewRegistrationService(store RegistrationStore, notifier Notifier) *RegistrationService {
	return &RegistrationService{
		store:    store,
		notifier: notifier,
	}
}

func (s *RegistrationService) lockTopic(topicID string) func() {
	muIface, _ := s.topicLocks.LoadOrStore(topicID, &sync.Mutex{})
	mu := muIface.(*sync.Mutex)
	mu.Lock()
	return mu.Unlock
}

// Register appends a pending membership record for the student.
// Preconditions: the topic is approved, its registration period is open,
// capacity is not exhausted, and the student holds no other live
// registration (on this or any other topic).
func (s *RegistrationService) Register(studentID, topicID string) (*models.TopicMember, error) {
	unlock := s.lockTopic(topicID)
	defer unlock()

	topic, err := s.store.GetTopic(topicID)
	if err != nil {
		return nil, fmt.Errorf("failed to load topic: %w", err)
	}
	if topic == nil {
		return nil, ErrTopicNotFound
	}
	if topic.Status != models.TopicStatusApproved {
		return nil, ErrTopicNotApproved
	}
	if !topic.RegistrationPeriod.IsOpenAt(time.Now()) {
		return nil, ErrRegistrationClosed
	}

	existing, err := s.store.GetLiveMember(topicID, studentID)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing registration: %w", err)
	}
	if existing != nil {
		return nil, ErrAlreadyRegistered
	}

	// One live registration per student across all topics
	liveCount, err := s.store.CountLiveByStudent(studentID)
	if err != nil {
		return nil, fmt.Errorf("failed to count active registrations: %w", err)
	}
	if liveCount > 0 {
		return nil, ErrAlreadyRegistered
	}

	approved, err := s.store.CountApprovedMembers(topicID)
	if err != nil {
		return nil, fmt.Errorf("failed to count approved members: %w", err)
	}
	if approved >= int64(topic.MaxMembers) {
		return nil, ErrTopicFull
	}

	member := &models.TopicMember{
		TopicID:   topicID,
		StudentID: studentID,
		Status:    models.MemberStatusPending,
	}
	if err := s.store.CreateMember(member); err != nil {
		return nil, fmt.Errorf("failed to create membership record: %w", err)
	}

	if topic.InstructorID != nil {
		s.notifier.Notify(*topic.InstructorID, models.NotificationTypeRegistration,
			"New registration request",
			fmt.Sprintf("A student requested to join topic %q", topic.Title),
			map[string]interface{}{"topic_id": topicID, "student_id": studentID})
	}

	return member, nil
}

// Cancel removes the student's own pending request. Approved memberships
// cannot be cancelled by the student; instructor removal is the only way out.
func (s *RegistrationService) Cancel(studentID, topicID string) error {
	unlock := s.lockTopic(topicID)
	defer unlock()

	member, err := s.store.GetLiveMember(topicID, studentID)
	if err != nil {
		return fmt.Errorf("failed to load membership record: %w", err)
	}
	if member == nil || member.Status != models.MemberStatusPending {
		return ErrNoPendingRequest
	}

	if err := s.store.DeleteMember(member.ID); err != nil {
		return fmt.Errorf("failed to delete membership record: %w", err)
	}
	return nil
}

// Decide applies the instructor's approve/reject decision to a pending
// request. Approval re-checks capacity under the topic lock and fails with
// ErrTopicFull rather than exceeding it, leaving the record pending.
func (s *RegistrationService) Decide(teacherID, studentID, topicID, action, feedback string) (*models.TopicMember, error) {
	unlock := s.lockTopic(topicID)
	defer unlock()

	topic, err := s.store.GetTopic(topicID)
	if err != nil {
		return nil, fmt.Errorf("failed to load topic: %w", err)
	}
	if topic == nil {
		return nil, ErrTopicNotFound
	}
	if topic.InstructorID == nil || *topic.InstructorID != teacherID {
		return nil, ErrNotInstructor
	}

	member, err := s.store.GetLiveMember(topicID, studentID)
	if err != nil {
		return nil, fmt.Errorf("failed to load membership record: %w", err)
	}
	if member == nil || member.Status != models.MemberStatusPending {
		return nil, ErrNoPendingRequest
	}

	switch action {
	case models.DecisionApprove:
		approved, err := s.store.CountApprovedMembers(topicID)
		if err != nil {
			return nil, fmt.Errorf("failed to count approved members: %w", err)
		}
		if approved >= int64(topic.MaxMembers) {
			return nil, ErrTopicFull
		}
		member.Status = models.MemberStatusApproved
	case models.DecisionReject:
		member.Status = models.MemberStatusRejected
	default:
		return nil, fmt.Errorf("unknown decision action %q", action)
	}

	now := time.Now()
	member.Feedback = feedback
	member.DecidedBy = &teacherID
	member.DecidedAt = &now

	if err := s.store.UpdateMember(member); err != nil {
		return nil, fmt.Errorf("failed to update membership record: %w", err)
	}

	title := "Registration approved"
	if member.Status == models.MemberStatusRejected {
		title = "Registration rejected"
	}
	message := fmt.Sprintf("Your registration for topic %q was %s", topic.Title, member.Status)
	if feedback != "" {
		message = fmt.Sprintf("%s: %s", message, feedback)
	}
	s.notifier.Notify(studentID, models.NotificationTypeDecision, title, message,
		map[string]interface{}{"topic_id": topicID, "decision": member.Status, "feedback": feedback})

	return member, nil
}

// Remove deletes an approved membership record, freeing one capacity slot.
// Unlike rejection it is usable at any time after approval.
func (s *RegistrationService) Remove(teacherID, studentID, topicID, reason string) error {
	unlock := s.lockTopic(topicID)
	defer unlock()

	topic, err := s.store.GetTopic(topicID)
	if err != nil {
		return fmt.Errorf("failed to load topic: %w", err)
	}
	if topic == nil {
		return ErrTopicNotFound
	}
	if topic.InstructorID == nil || *topic.InstructorID != teacherID {
		return ErrNotInstructor
	}

	member, err := s.store.GetLiveMember(topicID, studentID)
	if err != nil {
		return fmt.Errorf("failed to load membership record: %w", err)
	}
	if member == nil || member.Status != models.MemberStatusApproved {
		return ErrNoApprovedMember
	}

	if err := s.store.DeleteMember(member.ID); err != nil {
		return fmt.Errorf("failed to delete membership record: %w", err)
	}

	message := fmt.Sprintf("You were removed from topic %q", topic.Title)
	if reason != "" {
		message = fmt.Sprintf("%s: %s", message, reason)
	}
	s.notifier.Notify(studentID, models.NotificationTypeRemoval, "Removed from topic", message,
		map[string]interface{}{"topic_id": topicID, "reason": reason})

	logrus.Infof("Removed student %s from topic %s", studentID, topicID)
	return nil
}

// Eligibility runs the registration preconditions without mutating anything,
// for the student topic detail view.
func (s *RegistrationService) Eligibility(studentID, topicID string) (models.TopicEligibility, error) {
	topic, err := s.store.GetTopic(topicID)
	if err != nil {
		return models.TopicEligibility{}, fmt.Errorf("failed to load topic: %w", err)
	}
	if topic == nil {
		return models.TopicEligibility{}, ErrTopicNotFound
	}

	if topic.Status != models.TopicStatusApproved {
		return models.TopicEligibility{Reason: "topic is not approved"}, nil
	}
	if !topic.RegistrationPeriod.IsOpenAt(time.Now()) {
		return models.TopicEligibility{Reason: "registration period is closed"}, nil
	}

	existing, err := s.store.GetLiveMember(topicID, studentID)
	if err != nil {
		return models.TopicEligibility{}, fmt.Errorf("failed to check existing registration: %w", err)
	}
	if existing != nil {
		return models.TopicEligibility{Reason: "already registered for this topic"}, nil
	}

	liveCount, err := s.store.CountLiveByStudent(studentID)
	if err != nil {
		return models.TopicEligibility{}, fmt.Errorf("failed to count active registrations: %w", err)
	}
	if liveCount > 0 {
		return models.TopicEligibility{Reason: "an active registration on another topic exists"}, nil
	}

	approved, err := s.store.CountApprovedMembers(topicID)
	if err != nil {
		return models.TopicEligibility{}, fmt.Errorf("failed to count approved members: %w", err)
	}
	if approved >= int64(topic.MaxMembers) {
		return models.TopicEligibility{Reason: "topic has reached its member limit"}, nil
	}

	return models.TopicEligibility{CanRegister: true}, nil
}

// ListTopicMembers returns all membership records of a topic
func (s *RegistrationService) ListTopicMembers(topicID string) ([]models.TopicMember, error) {
	return s.store.ListMembers(topicID)
}

// ListStudentRegistrations returns all membership records of a student
func (s *RegistrationService) ListStudentRegistrations(studentID string) ([]models.TopicMember, error) {
	return s.store.ListByStudent(studentID)
}
