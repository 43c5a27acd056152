package services

import (
	"errors"
	"fmt"

	"github.com/ducminh2107/QL-DoAn-sub001/internal/database/repository"
	"github.com/ducminh2107/QL-DoAn-sub001/internal/models"
	"gorm.io/gorm"
)

var ErrSettingNotFound = errors.New("setting not found")

// SystemSettingService manages key/value system settings
type SystemSettingService struct {
	settingRepo *repository.SystemSettingRepository
}

func NewSystemSettingService(settingRepo *repository.SystemSettingRepository) *SystemSettingService {
	return &SystemSettingService{settingRepo: settingRepo}
}

// GetAll retrieves all settings
func (s *SystemSettingService) GetAll() ([]models.SystemSetting, error) {
	return s.settingRepo.GetAll()
}

// GetByKey retrieves a setting by key
func (s *SystemSettingService) GetByKey(key string) (*models.SystemSetting, error) {
	setting, err := s.settingRepo.GetByKey(key)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSettingNotFound
		}
		return nil, fmt.Errorf("failed to get setting: %w", err)
	}
	return setting, nil
}

// Upsert creates or updates a setting
func (s *SystemSettingService) Upsert(key, value string) (*models.SystemSetting, error) {
	if err := s.settingRepo.Upsert(key, value); err != nil {
		return nil, fmt.Errorf("failed to upsert setting: %w", err)
	}
	return s.GetByKey(key)
}

// Delete removes a setting
func (s *SystemSettingService) Delete(key string) error {
	if _, err := s.GetByKey(key); err != nil {
		return err
	}
	if err := s.settingRepo.Delete(key); err != nil {
		return fmt.Errorf("failed to delete setting: %w", err)
	}
	return nil
}
