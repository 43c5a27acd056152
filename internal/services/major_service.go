package services

import (
	"errors"
	"fmt"

	"github.com/ducminh2107/QL-DoAn-sub001/internal/database/repository"
	"github.com/ducminh2107/QL-DoAn-sub001/internal/models"
	"gorm.io/gorm"
)

var (
	ErrMajorNotFound   = errors.New("major not found")
	ErrMajorCodeExists = errors.New("major code already exists")
)

// MajorService manages academic majors
type MajorService struct {
	majorRepo *repository.MajorRepository
}

func NewMajorService(majorRepo *repository.MajorRepository) *MajorService {
	return &MajorService{majorRepo: majorRepo}
}

// Create creates a new major
func (s *MajorService) Create(req *models.CreateMajorRequest) (*models.Major, error) {
	exists, err := s.majorRepo.CheckCodeExists(req.Code)
	if err != nil {
		return nil, fmt.Errorf("failed to check major code: %w", err)
	}
	if exists {
		return nil, ErrMajorCodeExists
	}

	major := &models.Major{
		Code:        req.Code,
		Name:        req.Name,
		Description: req.Description,
	}
	if err := s.majorRepo.Create(major); err != nil {
		return nil, fmt.Errorf("failed to create major: %w", err)
	}
	return major, nil
}

// GetByID retrieves a major
func (s *MajorService) GetByID(id string) (*models.Major, error) {
	major, err := s.majorRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMajorNotFound
		}
		return nil, fmt.Errorf("failed to get major: %w", err)
	}
	return major, nil
}

// GetAll retrieves all majors
func (s *MajorService) GetAll() ([]models.Major, error) {
	return s.majorRepo.GetAll()
}

// Update modifies a major
func (s *MajorService) Update(id string, req *models.UpdateMajorRequest) (*models.Major, error) {
	major, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	if req.Code != "" && req.Code != major.Code {
		exists, err := s.majorRepo.CheckCodeExists(req.Code)
		if err != nil {
			return nil, fmt.Errorf("failed to check major code: %w", err)
		}
		if exists {
			return nil, ErrMajorCodeExists
		}
		major.Code = req.Code
	}
	if req.Name != "" {
		major.Name = req.Name
	}
	if req.Description != "" {
		major.Description = req.Description
	}

	if err := s.majorRepo.Update(major); err != nil {
		return nil, fmt.Errorf("failed to update major: %w", err)
	}
	return major, nil
}

// Delete removes a major. Users and topics referencing it keep a null major.
func (s *MajorService) Delete(id string) error {
	if _, err := s.GetByID(id); err != nil {
		return err
	}
	if err := s.majorRepo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete major: %w", err)
	}
	return nil
}
