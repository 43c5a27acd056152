package repository

import (
	"time"

	"github.com/ducminh2107/QL-DoAn-sub001/internal/models"

	"gorm.io/gorm"
)

type RegistrationPeriodRepository struct {
	db *gorm.DB
}

func NewRegistrationPeriodRepository(db *gorm.DB) *RegistrationPeriodRepository {
	return &RegistrationPeriodRepository{db: db}
}

// Create creates a new registration period
func (r *RegistrationPeriodRepository) Create(period *models.RegistrationPeriod) error {
	return r.db.Create(period).Error
}

// GetByID retrieves a registration period by ID
func (r *RegistrationPeriodRepository) GetByID(id string) (*models.RegistrationPeriod, error) {
	var period models.RegistrationPeriod
	err := r.db.Preload("Semester").First(&period, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &period, nil
}

// GetAll retrieves all registration periods, newest first
func (r *RegistrationPeriodRepository) GetAll() ([]models.RegistrationPeriod, error) {
	var periods []models.RegistrationPeriod
	err := r.db.Preload("Semester").Order("start_date DESC").Find(&periods).Error
	return periods, err
}

// GetBySemester retrieves all registration periods of a semester
func (r *RegistrationPeriodRepository) GetBySemester(semesterID string) ([]models.RegistrationPeriod, error) {
	var periods []models.RegistrationPeriod
	err := r.db.Where("semester_id = ?", semesterID).Order("start_date DESC").Find(&periods).Error
	return periods, err
}

// Update updates a registration period
func (r *RegistrationPeriodRepository) Update(period *models.RegistrationPeriod) error {
	return r.db.Save(period).Error
}

// Delete deletes a registration period
func (r *RegistrationPeriodRepository) Delete(id string) error {
	return r.db.Delete(&models.RegistrationPeriod{}, "id = ?", id).Error
}

// CloseExpired marks every active period whose end date has passed as closed.
// Returns the number of periods closed.
func (r *RegistrationPeriodRepository) CloseExpired(now time.Time) (int64, error) {
	result := r.db.Model(&models.RegistrationPeriod{}).
		Where("status = ? AND end_date < ?", models.PeriodStatusActive, now).
		Update("status", models.PeriodStatusClosed)
	return result.RowsAffected, result.Error
}
