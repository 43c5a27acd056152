package repository

import (
	"github.com/ducminh2107/QL-DoAn-sub001/internal/models"

	"gorm.io/gorm"
)

type SemesterRepository struct {
	db *gorm.DB
}

func NewSemesterRepository(db *gorm.DB) *SemesterRepository {
	return &SemesterRepository{db: db}
}

// Create creates a new semester
func (r *SemesterRepository) Create(semester *models.Semester) error {
	return r.db.Create(semester).Error
}

// GetByID retrieves a semester by ID
func (r *SemesterRepository) GetByID(id string) (*models.Semester, error) {
	var semester models.Semester
	err := r.db.First(&semester, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &semester, nil
}

// GetAll retrieves all semesters, newest first
func (r *SemesterRepository) GetAll() ([]models.Semester, error) {
	var semesters []models.Semester
	err := r.db.Order("start_date DESC").Find(&semesters).Error
	return semesters, err
}

// GetActive retrieves the currently active semester, if any
func (r *SemesterRepository) GetActive() (*models.Semester, error) {
	var semester models.Semester
	err := r.db.Where("status = ?", models.SemesterStatusActive).First(&semester).Error
	if err != nil {
		return nil, err
	}
	return &semester, nil
}

// CountActive counts semesters in active status
func (r *SemesterRepository) CountActive() (int64, error) {
	var count int64
	err := r.db.Model(&models.Semester{}).Where("status = ?", models.SemesterStatusActive).Count(&count).Error
	return count, err
}

// Update updates a semester
func (r *SemesterRepository) Update(semester *models.Semester) error {
	return r.db.Save(semester).Error
}

// Delete deletes a semester
func (r *SemesterRepository) Delete(id string) error {
	return r.db.Delete(&models.Semester{}, "id = ?", id).Error
}
