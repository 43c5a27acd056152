package repository

import (
	"github.com/ducminh2107/QL-DoAn-sub001/internal/models"

	"gorm.io/gorm"
)

type TopicCategoryRepository struct {
	db *gorm.DB
}

func NewTopicCategoryRepository(db *gorm.DB) *TopicCategoryRepository {
	return &TopicCategoryRepository{db: db}
}

// Create creates a new topic category
func (r *TopicCategoryRepository) Create(category *models.TopicCategory) error {
	return r.db.Create(category).Error
}

// GetByID retrieves a topic category by ID
func (r *TopicCategoryRepository) GetByID(id string) (*models.TopicCategory, error) {
	var category models.TopicCategory
	err := r.db.First(&category, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &category, nil
}

// GetAll retrieves all topic categories
func (r *TopicCategoryRepository) GetAll() ([]models.TopicCategory, error) {
	var categories []models.TopicCategory
	err := r.db.Order("name").Find(&categories).Error
	return categories, err
}

// Update updates a topic category
func (r *TopicCategoryRepository) Update(category *models.TopicCategory) error {
	return r.db.Save(category).Error
}

// Delete deletes a topic category
func (r *TopicCategoryRepository) Delete(id string) error {
	return r.db.Delete(&models.TopicCategory{}, "id = ?", id).Error
}
