package services

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/ducminh2107/QL-DoAn-sub001/internal/database/repository"
	"github.com/ducminh2107/QL-DoAn-sub001/internal/models"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrProposalsDisabled = errors.New("student topic proposals are disabled")
	ErrPeriodNotFound    = errors.New("registration period not found")
	ErrTopicHasMembers   = errors.New("topic still has active membership records")
	ErrMaxBelowApproved  = errors.New("max members cannot drop below the approved member count")
	ErrForbidden         = errors.New("user may not modify this topic")
)

// TopicService manages the topic catalog: teacher-created topics go straight
// to approved, student proposals start pending and wait for staff approval.
type TopicService struct {
	topicRepo   *repository.TopicRepository
	periodRepo  *repository.RegistrationPeriodRepository
	settingRepo *repository.SystemSettingRepository
	notifier    Notifier
}

func NewTopicService(
	topicRepo *repository.TopicRepository,
	periodRepo *repository.RegistrationPeriodRepository,
	settingRepo *repository.SystemSettingRepository,
	notifier Notifier,
) *TopicService {
	return &TopicService{
		topicRepo:   topicRepo,
		periodRepo:  periodRepo,
		settingRepo: settingRepo,
		notifier:    notifier,
	}
}

// Create creates a topic on behalf of the given user. Teachers and admins
// create approved topics directly; students file pending proposals, subject
// to the allow_student_proposals setting and the period being open.
func (s *TopicService) Create(creator *models.User, req *models.CreateTopicRequest) (*models.Topic, error) {
	period, err := s.periodRepo.GetByID(req.RegistrationPeriodID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPeriodNotFound
		}
		return nil, fmt.Errorf("failed to load registration period: %w", err)
	}

	topic := &models.Topic{
		Title:                req.Title,
		Description:          req.Description,
		CategoryID:           req.CategoryID,
		MajorID:              req.MajorID,
		CreatedByID:          creator.ID,
		InstructorID:         req.InstructorID,
		MaxMembers:           req.MaxMembers,
		RegistrationPeriodID: req.RegistrationPeriodID,
	}
	if topic.MaxMembers <= 0 {
		topic.MaxMembers = s.defaultMaxMembers()
	}

	switch {
	case creator.IsTeacher() || creator.IsAdmin():
		topic.Status = models.TopicStatusApproved
		if topic.InstructorID == nil && creator.IsTeacher() {
			topic.InstructorID = &creator.ID
		}
	default:
		if !s.proposalsAllowed() {
			return nil, ErrProposalsDisabled
		}
		if !period.IsOpenAt(time.Now()) {
			return nil, ErrRegistrationClosed
		}
		topic.Status = models.TopicStatusPending
	}

	if err := s.topicRepo.Create(topic); err != nil {
		return nil, fmt.Errorf("failed to create topic: %w", err)
	}

	if topic.Status == models.TopicStatusPending && topic.InstructorID != nil {
		s.notifier.Notify(*topic.InstructorID, models.NotificationTypeRegistration,
			"New topic proposal",
			fmt.Sprintf("A student proposed topic %q", topic.Title),
			map[string]interface{}{"topic_id": topic.ID})
	}

	logrus.Infof("Topic %s created by %s with status %s", topic.ID, creator.Username, topic.Status)
	return topic, nil
}

// GetByID retrieves a topic with its references and members
func (s *TopicService) GetByID(id string) (*models.Topic, error) {
	topic, err := s.topicRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTopicNotFound
		}
		return nil, fmt.Errorf("failed to get topic: %w", err)
	}
	return topic, nil
}

// List returns topics matching the filter with pagination
func (s *TopicService) List(filter repository.TopicFilter, page, pageSize int) ([]models.TopicResponse, int64, error) {
	topics, total, err := s.topicRepo.List(filter, page, pageSize)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list topics: %w", err)
	}

	responses := make([]models.TopicResponse, 0, len(topics))
	for i := range topics {
		responses = append(responses, TopicToResponse(&topics[i]))
	}
	return responses, total, nil
}

// GetByCreator returns all topics a user created
func (s *TopicService) GetByCreator(userID string) ([]models.TopicResponse, error) {
	topics, err := s.topicRepo.GetByCreator(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get topics by creator: %w", err)
	}
	responses := make([]models.TopicResponse, 0, len(topics))
	for i := range topics {
		responses = append(responses, TopicToResponse(&topics[i]))
	}
	return responses, nil
}

// Update modifies a topic. Only the instructor, the creator or an admin may
// update; max_members cannot drop below the current approved member count.
func (s *TopicService) Update(actor *models.User, topicID string, req *models.UpdateTopicRequest) (*models.Topic, error) {
	topic, err := s.GetByID(topicID)
	if err != nil {
		return nil, err
	}
	if !s.canModify(actor, topic) {
		return nil, ErrForbidden
	}

	if req.Title != "" {
		topic.Title = req.Title
	}
	if req.Description != "" {
		topic.Description = req.Description
	}
	if req.CategoryID != nil {
		topic.CategoryID = req.CategoryID
	}
	if req.MajorID != nil {
		topic.MajorID = req.MajorID
	}
	if req.InstructorID != nil {
		topic.InstructorID = req.InstructorID
	}
	if req.MaxMembers != nil {
		if *req.MaxMembers < topic.ApprovedMemberCount() {
			return nil, ErrMaxBelowApproved
		}
		topic.MaxMembers = *req.MaxMembers
	}

	if err := s.topicRepo.Update(topic); err != nil {
		return nil, fmt.Errorf("failed to update topic: %w", err)
	}
	return topic, nil
}

// ApproveProposal approves a pending student proposal, optionally assigning
// the approving teacher as instructor when none is set.
func (s *TopicService) ApproveProposal(actor *models.User, topicID string) (*models.Topic, error) {
	topic, err := s.GetByID(topicID)
	if err != nil {
		return nil, err
	}
	if !actor.IsTeacher() && !actor.IsAdmin() {
		return nil, ErrForbidden
	}
	if topic.Status == models.TopicStatusApproved {
		return topic, nil
	}

	topic.Status = models.TopicStatusApproved
	if topic.InstructorID == nil && actor.IsTeacher() {
		topic.InstructorID = &actor.ID
	}
	if err := s.topicRepo.Update(topic); err != nil {
		return nil, fmt.Errorf("failed to approve topic: %w", err)
	}

	s.notifier.Notify(topic.CreatedByID, models.NotificationTypeDecision,
		"Topic proposal approved",
		fmt.Sprintf("Your topic proposal %q was approved", topic.Title),
		map[string]interface{}{"topic_id": topic.ID})

	logrus.Infof("Topic %s approved by %s", topic.ID, actor.Username)
	return topic, nil
}

// Delete removes a topic. Topics with live membership records cannot be
// deleted; remove or decide the registrations first.
func (s *TopicService) Delete(actor *models.User, topicID string) error {
	topic, err := s.GetByID(topicID)
	if err != nil {
		return err
	}
	if !s.canModify(actor, topic) {
		return ErrForbidden
	}
	for i := range topic.Members {
		if topic.Members[i].IsLive() {
			return ErrTopicHasMembers
		}
	}
	if err := s.topicRepo.Delete(topicID); err != nil {
		return fmt.Errorf("failed to delete topic: %w", err)
	}
	return nil
}

func (s *TopicService) canModify(actor *models.User, topic *models.Topic) bool {
	if actor.IsAdmin() {
		return true
	}
	if topic.InstructorID != nil && *topic.InstructorID == actor.ID {
		return true
	}
	return topic.CreatedByID == actor.ID && topic.Status == models.TopicStatusPending
}

func (s *TopicService) defaultMaxMembers() int {
	setting, err := s.settingRepo.GetByKey(models.SettingDefaultMaxMembers)
	if err != nil {
		return 1
	}
	n, err := strconv.Atoi(setting.Value)
	if err != nil || n < 1 {
		return 1
	}
	return n
}

func (s *TopicService) proposalsAllowed() bool {
	setting, err := s.settingRepo.GetByKey(models.SettingAllowProposals)
	if err != nil {
		return false
	}
	allowed, err := strconv.ParseBool(setting.Value)
	return err == nil && allowed
}

// TopicToResponse converts a topic to its API representation
func TopicToResponse(topic *models.Topic) models.TopicResponse {
	resp := models.TopicResponse{
		ID:                   topic.ID,
		Title:                topic.Title,
		Description:          topic.Description,
		CategoryID:           topic.CategoryID,
		MajorID:              topic.MajorID,
		CreatedByID:          topic.CreatedByID,
		InstructorID:         topic.InstructorID,
		MaxMembers:           topic.MaxMembers,
		ApprovedMembers:      topic.ApprovedMemberCount(),
		Status:               topic.Status,
		RegistrationPeriodID: topic.RegistrationPeriodID,
		CouncilID:            topic.CouncilID,
		CreatedAt:            topic.CreatedAt.Format(time.RFC3339),
		UpdatedAt:            topic.UpdatedAt.Format(time.RFC3339),
	}
	if topic.Category != nil {
		resp.CategoryName = topic.Category.Name
	}
	if topic.Major != nil {
		resp.MajorName = topic.Major.Name
	}
	if topic.CreatedBy != nil {
		resp.CreatedByName = topic.CreatedBy.FullName
	}
	if topic.Instructor != nil {
		resp.InstructorName = topic.Instructor.FullName
	}
	if len(topic.Members) > 0 {
		resp.Members = make([]models.TopicMemberResponse, 0, len(topic.Members))
		for i := range topic.Members {
			resp.Members = append(resp.Members, topic.Members[i].ToResponse())
		}
	}
	return resp
}
