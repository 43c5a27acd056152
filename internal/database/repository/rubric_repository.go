package repository

import (
	"github.com/ducminh2107/QL-DoAn-sub001/internal/models"

	"gorm.io/gorm"
)

type RubricRepository struct {
	db *gorm.DB
}

func NewRubricRepository(db *gorm.DB) *RubricRepository {
	return &RubricRepository{db: db}
}

// Create creates a new rubric
func (r *RubricRepository) Create(rubric *models.Rubric) error {
	return r.db.Create(rubric).Error
}

// GetByID retrieves a rubric by ID
func (r *RubricRepository) GetByID(id string) (*models.Rubric, error) {
	var rubric models.Rubric
	err := r.db.First(&rubric, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &rubric, nil
}

// GetAll retrieves all rubrics
func (r *RubricRepository) GetAll() ([]models.Rubric, error) {
	var rubrics []models.Rubric
	err := r.db.Order("created_at DESC").Find(&rubrics).Error
	return rubrics, err
}

// Update updates a rubric
func (r *RubricRepository) Update(rubric *models.Rubric) error {
	return r.db.Save(rubric).Error
}

// Delete deletes a rubric
func (r *RubricRepository) Delete(id string) error {
	return r.db.Delete(&models.Rubric{}, "id = ?", id).Error
}
