package repository

import (
	"github.com/ducminh2107/QL-DoAn-sub001/internal/models"

	"gorm.io/gorm"
)

type MajorRepository struct {
	db *gorm.DB
}

func NewMajorRepository(db *gorm.DB) *MajorRepository {
	return &MajorRepository{db: db}
}

// Create creates a new major
func (r *MajorRepository) Create(major *models.Major) error {
	return r.db.Create(major).Error
}

// GetByID retrieves a major by ID
func (r *MajorRepository) GetByID(id string) (*models.Major, error) {
	var major models.Major
	err := r.db.First(&major, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &major, nil
}

// GetByCode retrieves a major by its code
func (r *MajorRepository) GetByCode(code string) (*models.Major, error) {
	var major models.Major
	err := r.db.Where("code = ?", code).First(&major).Error
	if err != nil {
		return nil, err
	}
	return &major, nil
}

// CheckCodeExists checks if a major code already exists
func (r *MajorRepository) CheckCodeExists(code string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Major{}).Where("code = ?", code).Count(&count).Error
	return count > 0, err
}

// GetAll retrieves all majors
func (r *MajorRepository) GetAll() ([]models.Major, error) {
	var majors []models.Major
	err := r.db.Order("code").Find(&majors).Error
	return majors, err
}

// Update updates a major
func (r *MajorRepository) Update(major *models.Major) error {
	return r.db.Save(major).Error
}

// Delete deletes a major
func (r *MajorRepository) Delete(id string) error {
	return r.db.Delete(&models.Major{}, "id = ?", id).Error
}
