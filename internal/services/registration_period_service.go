package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/ducminh2107/QL-DoAn-sub001/internal/database/repository"
	"github.com/ducminh2107/QL-DoAn-sub001/internal/models"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var ErrInvalidPeriodStatus = errors.New("invalid registration period status")

// RegistrationPeriodService manages registration windows and runs a
// background sweeper that closes periods whose end date has passed.
type RegistrationPeriodService struct {
	periodRepo   *repository.RegistrationPeriodRepository
	semesterRepo *repository.SemesterRepository
	interval     time.Duration
	stopChan     chan bool
	running      bool
}

func NewRegistrationPeriodService(
	periodRepo *repository.RegistrationPeriodRepository,
	semesterRepo *repository.SemesterRepository,
) *RegistrationPeriodService {
	return &RegistrationPeriodService{
		periodRepo:   periodRepo,
		semesterRepo: semesterRepo,
		interval:     time.Minute,
		stopChan:     make(chan bool),
	}
}

// Create creates a new registration period under a semester
func (s *RegistrationPeriodService) Create(req *models.CreateRegistrationPeriodRequest) (*models.RegistrationPeriod, error) {
	if !req.EndDate.After(req.StartDate) {
		return nil, ErrInvalidDateRange
	}
	if _, err := s.semesterRepo.GetByID(req.SemesterID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSemesterNotFound
		}
		return nil, fmt.Errorf("failed to load semester: %w", err)
	}

	period := &models.RegistrationPeriod{
		SemesterID:        req.SemesterID,
		Name:              req.Name,
		StartDate:         req.StartDate,
		EndDate:           req.EndDate,
		Status:            models.PeriodStatusActive,
		AllowRegistration: true,
	}
	if req.AllowRegistration != nil {
		period.AllowRegistration = *req.AllowRegistration
	}

	if err := s.periodRepo.Create(period); err != nil {
		return nil, fmt.Errorf("failed to create registration period: %w", err)
	}
	return period, nil
}

// GetByID retrieves a registration period
func (s *RegistrationPeriodService) GetByID(id string) (*models.RegistrationPeriod, error) {
	period, err := s.periodRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPeriodNotFound
		}
		return nil, fmt.Errorf("failed to get registration period: %w", err)
	}
	return period, nil
}

// GetAll retrieves all registration periods
func (s *RegistrationPeriodService) GetAll() ([]models.RegistrationPeriod, error) {
	return s.periodRepo.GetAll()
}

// GetBySemester retrieves all registration periods of a semester
func (s *RegistrationPeriodService) GetBySemester(semesterID string) ([]models.RegistrationPeriod, error) {
	return s.periodRepo.GetBySemester(semesterID)
}

// Update modifies a registration period. Closing a period or clearing
// allow_registration takes effect immediately for registration checks.
func (s *RegistrationPeriodService) Update(id string, req *models.UpdateRegistrationPeriodRequest) (*models.RegistrationPeriod, error) {
	period, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	if req.Name != "" {
		period.Name = req.Name
	}
	if req.StartDate != nil {
		period.StartDate = *req.StartDate
	}
	if req.EndDate != nil {
		period.EndDate = *req.EndDate
	}
	if !period.EndDate.After(period.StartDate) {
		return nil, ErrInvalidDateRange
	}
	if req.Status != "" {
		switch req.Status {
		case models.PeriodStatusActive, models.PeriodStatusClosed:
			period.Status = req.Status
		default:
			return nil, ErrInvalidPeriodStatus
		}
	}
	if req.AllowRegistration != nil {
		period.AllowRegistration = *req.AllowRegistration
	}

	if err := s.periodRepo.Update(period); err != nil {
		return nil, fmt.Errorf("failed to update registration period: %w", err)
	}
	return period, nil
}

// Delete removes a registration period
func (s *RegistrationPeriodService) Delete(id string) error {
	if _, err := s.GetByID(id); err != nil {
		return err
	}
	if err := s.periodRepo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete registration period: %w", err)
	}
	return nil
}

// Start begins the background sweeper that closes expired periods
func (s *RegistrationPeriodService) Start() {
	if s.running {
		logrus.Warn("Registration period sweeper is already running")
		return
	}

	s.running = true
	logrus.Info("Starting registration period sweeper...")

	go func() {
		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()

		s.sweep()

		for {
			select {
			case <-ticker.C:
				s.sweep()
			case <-s.stopChan:
				logrus.Info("Registration period sweeper stopped")
				return
			}
		}
	}()
}

// Stop stops the background sweeper
func (s *RegistrationPeriodService) Stop() {
	if !s.running {
		return
	}
	s.running = false
	close(s.stopChan)
}

func (s *RegistrationPeriodService) sweep() {
	closed, err := s.periodRepo.CloseExpired(time.Now())
	if err != nil {
		logrus.Errorf("Failed to close expired registration periods: %v", err)
		return
	}
	if closed > 0 {
		logrus.Infof("Closed %d expired registration period(s)", closed)
	}
}
