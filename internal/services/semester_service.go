package services

import (
	"errors"
	"fmt"

	"github.com/ducminh2107/QL-DoAn-sub001/internal/database/repository"
	"github.com/ducminh2107/QL-DoAn-sub001/internal/models"
	"gorm.io/gorm"
)

var (
	ErrSemesterNotFound      = errors.New("semester not found")
	ErrActiveSemesterExists  = errors.New("another semester is already active")
	ErrInvalidSemesterStatus = errors.New("invalid semester status")
	ErrInvalidDateRange      = errors.New("end date must be after start date")
)

// SemesterService manages semesters. At most one semester may be active at a
// time; activation fails while another one is.
type SemesterService struct {
	semesterRepo *repository.SemesterRepository
}

func NewSemesterService(semesterRepo *repository.SemesterRepository) *SemesterService {
	return &SemesterService{semesterRepo: semesterRepo}
}

// Create creates a new semester in upcoming status
func (s *SemesterService) Create(req *models.CreateSemesterRequest) (*models.Semester, error) {
	if !req.EndDate.After(req.StartDate) {
		return nil, ErrInvalidDateRange
	}
	semester := &models.Semester{
		Name:      req.Name,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		Status:    models.SemesterStatusUpcoming,
	}
	if err := s.semesterRepo.Create(semester); err != nil {
		return nil, fmt.Errorf("failed to create semester: %w", err)
	}
	return semester, nil
}

// GetByID retrieves a semester
func (s *SemesterService) GetByID(id string) (*models.Semester, error) {
	semester, err := s.semesterRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSemesterNotFound
		}
		return nil, fmt.Errorf("failed to get semester: %w", err)
	}
	return semester, nil
}

// GetAll retrieves all semesters
func (s *SemesterService) GetAll() ([]models.Semester, error) {
	return s.semesterRepo.GetAll()
}

// GetActive retrieves the active semester, or nil when none is active
func (s *SemesterService) GetActive() (*models.Semester, error) {
	semester, err := s.semesterRepo.GetActive()
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get active semester: %w", err)
	}
	return semester, nil
}

// Update modifies a semester. Moving it to active enforces the single-active
// rule; other transitions are unrestricted.
func (s *SemesterService) Update(id string, req *models.UpdateSemesterRequest) (*models.Semester, error) {
	semester, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	if req.Name != "" {
		semester.Name = req.Name
	}
	if req.StartDate != nil {
		semester.StartDate = *req.StartDate
	}
	if req.EndDate != nil {
		semester.EndDate = *req.EndDate
	}
	if !semester.EndDate.After(semester.StartDate) {
		return nil, ErrInvalidDateRange
	}

	if req.Status != "" && req.Status != semester.Status {
		switch req.Status {
		case models.SemesterStatusUpcoming, models.SemesterStatusActive, models.SemesterStatusCompleted:
		default:
			return nil, ErrInvalidSemesterStatus
		}
		if req.Status == models.SemesterStatusActive {
			count, err := s.semesterRepo.CountActive()
			if err != nil {
				return nil, fmt.Errorf("failed to count active semesters: %w", err)
			}
			if count > 0 {
				return nil, ErrActiveSemesterExists
			}
		}
		semester.Status = req.Status
	}

	if err := s.semesterRepo.Update(semester); err != nil {
		return nil, fmt.Errorf("failed to update semester: %w", err)
	}
	return semester, nil
}

// Delete removes a semester. Registration periods and councils of the
// semester are removed by FK cascade.
func (s *SemesterService) Delete(id string) error {
	if _, err := s.GetByID(id); err != nil {
		return err
	}
	if err := s.semesterRepo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete semester: %w", err)
	}
	return nil
}
