package repository

import (
	"github.com/ducminh2107/QL-DoAn-sub001/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SystemSettingRepository struct {
	db *gorm.DB
}

func NewSystemSettingRepository(db *gorm.DB) *SystemSettingRepository {
	return &SystemSettingRepository{db: db}
}

// GetByKey retrieves a setting by key
func (r *SystemSettingRepository) GetByKey(key string) (*models.SystemSetting, error) {
	var setting models.SystemSetting
	err := r.db.Where("key = ?", key).First(&setting).Error
	if err != nil {
		return nil, err
	}
	return &setting, nil
}

// GetAll retrieves all settings
func (r *SystemSettingRepository) GetAll() ([]models.SystemSetting, error) {
	var settings []models.SystemSetting
	err := r.db.Order("key").Find(&settings).Error
	return settings, err
}

// Upsert creates or updates a setting by key
func (r *SystemSettingRepository) Upsert(key, value string) error {
	setting := models.SystemSetting{Key: key, Value: value}
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&setting).Error
}

// Delete removes a setting by key
func (r *SystemSettingRepository) Delete(key string) error {
	return r.db.Where("key = ?", key).Delete(&models.SystemSetting{}).Error
}
