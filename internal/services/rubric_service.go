package services

import (
	"errors"
	"fmt"

	"github.com/ducminh2107/QL-DoAn-sub001/internal/database/repository"
	"github.com/ducminh2107/QL-DoAn-sub001/internal/models"
	"gorm.io/gorm"
)

var ErrRubricNotFound = errors.New("rubric not found")

// RubricService manages evaluation rubrics
type RubricService struct {
	rubricRepo *repository.RubricRepository
}

func NewRubricService(rubricRepo *repository.RubricRepository) *RubricService {
	return &RubricService{rubricRepo: rubricRepo}
}

// Create creates a new rubric
func (s *RubricService) Create(req *models.CreateRubricRequest) (*models.Rubric, error) {
	rubric := &models.Rubric{
		Name:        req.Name,
		Description: req.Description,
		Criteria:    req.Criteria,
	}
	if err := s.rubricRepo.Create(rubric); err != nil {
		return nil, fmt.Errorf("failed to create rubric: %w", err)
	}
	return rubric, nil
}

// GetByID retrieves a rubric
func (s *RubricService) GetByID(id string) (*models.Rubric, error) {
	rubric, err := s.rubricRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRubricNotFound
		}
		return nil, fmt.Errorf("failed to get rubric: %w", err)
	}
	return rubric, nil
}

// GetAll retrieves all rubrics
func (s *RubricService) GetAll() ([]models.Rubric, error) {
	return s.rubricRepo.GetAll()
}

// Update modifies a rubric
func (s *RubricService) Update(id string, req *models.UpdateRubricRequest) (*models.Rubric, error) {
	rubric, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	if req.Name != "" {
		rubric.Name = req.Name
	}
	if req.Description != "" {
		rubric.Description = req.Description
	}
	if req.Criteria != nil {
		rubric.Criteria = req.Criteria
	}

	if err := s.rubricRepo.Update(rubric); err != nil {
		return nil, fmt.Errorf("failed to update rubric: %w", err)
	}
	return rubric, nil
}

// Delete removes a rubric
func (s *RubricService) Delete(id string) error {
	if _, err := s.GetByID(id); err != nil {
		return err
	}
	if err := s.rubricRepo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete rubric: %w", err)
	}
	return nil
}
