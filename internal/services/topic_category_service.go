package services

import (
	"errors"
	"fmt"

	"github.com/ducminh2107/QL-DoAn-sub001/internal/database/repository"
	"github.com/ducminh2107/QL-DoAn-sub001/internal/models"
	"gorm.io/gorm"
)

var ErrCategoryNotFound = errors.New("topic category not found")

// TopicCategoryService manages thesis topic categories
type TopicCategoryService struct {
	categoryRepo *repository.TopicCategoryRepository
}

func NewTopicCategoryService(categoryRepo *repository.TopicCategoryRepository) *TopicCategoryService {
	return &TopicCategoryService{categoryRepo: categoryRepo}
}

// Create creates a new topic category
func (s *TopicCategoryService) Create(req *models.CreateTopicCategoryRequest) (*models.TopicCategory, error) {
	category := &models.TopicCategory{
		Name:        req.Name,
		Description: req.Description,
	}
	if err := s.categoryRepo.Create(category); err != nil {
		return nil, fmt.Errorf("failed to create topic category: %w", err)
	}
	return category, nil
}

// GetByID retrieves a topic category
func (s *TopicCategoryService) GetByID(id string) (*models.TopicCategory, error) {
	category, err := s.categoryRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, fmt.Errorf("failed to get topic category: %w", err)
	}
	return category, nil
}

// GetAll retrieves all topic categories
func (s *TopicCategoryService) GetAll() ([]models.TopicCategory, error) {
	return s.categoryRepo.GetAll()
}

// Update modifies a topic category
func (s *TopicCategoryService) Update(id string, req *models.UpdateTopicCategoryRequest) (*models.TopicCategory, error) {
	category, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	if req.Name != "" {
		category.Name = req.Name
	}
	if req.Description != "" {
		category.Description = req.Description
	}

	if err := s.categoryRepo.Update(category); err != nil {
		return nil, fmt.Errorf("failed to update topic category: %w", err)
	}
	return category, nil
}

// Delete removes a topic category. Topics referencing it keep a null category.
func (s *TopicCategoryService) Delete(id string) error {
	if _, err := s.GetByID(id); err != nil {
		return err
	}
	if err := s.categoryRepo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete topic category: %w", err)
	}
	return nil
}
