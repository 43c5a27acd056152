package services

import (
	"errors"
	"fmt"

	"github.com/ducminh2107/QL-DoAn-sub001/internal/database/repository"
	"github.com/ducminh2107/QL-DoAn-sub001/internal/models"
	"gorm.io/gorm"
)

var (
	ErrCouncilNotFound      = errors.New("council not found")
	ErrCouncilSeatTaken     = errors.New("user already holds a seat on this council")
	ErrCouncilMemberIsUser  = errors.New("only teachers can sit on councils")
	ErrInvalidCouncilStatus = errors.New("invalid council status")
	ErrTopicNotApprovedYet  = errors.New("only approved topics can be assigned to a council")
)

// CouncilService manages defense committees and their topic assignments
type CouncilService struct {
	councilRepo  *repository.CouncilRepository
	semesterRepo *repository.SemesterRepository
	topicRepo    *repository.TopicRepository
	userRepo     *repository.UserRepository
}

func NewCouncilService(
	councilRepo *repository.CouncilRepository,
	semesterRepo *repository.SemesterRepository,
	topicRepo *repository.TopicRepository,
	userRepo *repository.UserRepository,
) *CouncilService {
	return &CouncilService{
		councilRepo:  councilRepo,
		semesterRepo: semesterRepo,
		topicRepo:    topicRepo,
		userRepo:     userRepo,
	}
}

// Create creates a council in planning status
func (s *CouncilService) Create(req *models.CreateCouncilRequest) (*models.Council, error) {
	if _, err := s.semesterRepo.GetByID(req.SemesterID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSemesterNotFound
		}
		return nil, fmt.Errorf("failed to load semester: %w", err)
	}

	council := &models.Council{
		Name:        req.Name,
		SemesterID:  req.SemesterID,
		DefenseDate: req.DefenseDate,
		Status:      models.CouncilStatusPlanning,
	}
	if err := s.councilRepo.Create(council); err != nil {
		return nil, fmt.Errorf("failed to create council: %w", err)
	}
	return council, nil
}

// GetByID retrieves a council with members and assigned topics
func (s *CouncilService) GetByID(id string) (*models.Council, error) {
	council, err := s.councilRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCouncilNotFound
		}
		return nil, fmt.Errorf("failed to get council: %w", err)
	}
	return council, nil
}

// GetAll retrieves all councils
func (s *CouncilService) GetAll() ([]models.Council, error) {
	return s.councilRepo.GetAll()
}

// Update modifies a council's name, defense date or status
func (s *CouncilService) Update(id string, req *models.UpdateCouncilRequest) (*models.Council, error) {
	council, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	if req.Name != "" {
		council.Name = req.Name
	}
	if req.DefenseDate != nil {
		council.DefenseDate = req.DefenseDate
	}
	if req.Status != "" {
		switch req.Status {
		case models.CouncilStatusPlanning, models.CouncilStatusActive, models.CouncilStatusCompleted:
			council.Status = req.Status
		default:
			return nil, ErrInvalidCouncilStatus
		}
	}

	if err := s.councilRepo.Update(council); err != nil {
		return nil, fmt.Errorf("failed to update council: %w", err)
	}
	return council, nil
}

// Delete removes a council after detaching its assigned topics
func (s *CouncilService) Delete(id string) error {
	if _, err := s.GetByID(id); err != nil {
		return err
	}
	if err := s.councilRepo.ClearTopics(id); err != nil {
		return fmt.Errorf("failed to detach council topics: %w", err)
	}
	if err := s.councilRepo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete council: %w", err)
	}
	return nil
}

// AddMember seats a teacher on a council. A user holds at most one seat per
// council; students cannot sit on councils.
func (s *CouncilService) AddMember(councilID string, req *models.AddCouncilMemberRequest) (*models.CouncilMember, error) {
	if _, err := s.GetByID(councilID); err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetByID(req.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	if !user.IsTeacher() {
		return nil, ErrCouncilMemberIsUser
	}

	seats, err := s.councilRepo.CountMemberSeat(councilID, req.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to check council seat: %w", err)
	}
	if seats > 0 {
		return nil, ErrCouncilSeatTaken
	}

	member := &models.CouncilMember{
		CouncilID: councilID,
		UserID:    req.UserID,
		Role:      req.Role,
	}
	if err := s.councilRepo.AddMember(member); err != nil {
		return nil, fmt.Errorf("failed to add council member: %w", err)
	}
	return member, nil
}

// RemoveMember unseats a user from a council
func (s *CouncilService) RemoveMember(councilID, userID string) error {
	if _, err := s.GetByID(councilID); err != nil {
		return err
	}
	if err := s.councilRepo.RemoveMember(councilID, userID); err != nil {
		return fmt.Errorf("failed to remove council member: %w", err)
	}
	return nil
}

// AssignTopic assigns an approved topic to a council for defense
func (s *CouncilService) AssignTopic(councilID, topicID string) error {
	if _, err := s.GetByID(councilID); err != nil {
		return err
	}
	topic, err := s.topicRepo.GetByID(topicID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrTopicNotFound
		}
		return fmt.Errorf("failed to load topic: %w", err)
	}
	if topic.Status != models.TopicStatusApproved {
		return ErrTopicNotApprovedYet
	}
	if err := s.topicRepo.AssignCouncil(topicID, &councilID); err != nil {
		return fmt.Errorf("failed to assign topic to council: %w", err)
	}
	return nil
}

// UnassignTopic detaches a topic from its council
func (s *CouncilService) UnassignTopic(topicID string) error {
	if _, err := s.topicRepo.GetByID(topicID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrTopicNotFound
		}
		return fmt.Errorf("failed to load topic: %w", err)
	}
	if err := s.topicRepo.AssignCouncil(topicID, nil); err != nil {
		return fmt.Errorf("failed to unassign topic: %w", err)
	}
	return nil
}
