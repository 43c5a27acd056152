package repository

import (
	"github.com/ducminh2107/QL-DoAn-sub001/internal/models"
	"github.com/ducminh2107/QL-DoAn-sub001/internal/utils"

	"gorm.io/gorm"
)

type TopicRepository struct {
	db *gorm.DB
}

func NewTopicRepository(db *gorm.DB) *TopicRepository {
	return &TopicRepository{db: db}
}

// Create creates a new topic
func (r *TopicRepository) Create(topic *models.Topic) error {
	return r.db.Create(topic).Error
}

// GetByID retrieves a topic with its references and members
func (r *TopicRepository) GetByID(id string) (*models.Topic, error) {
	var topic models.Topic
	err := r.db.
		Preload("Category").
		Preload("Major").
		Preload("CreatedBy").
		Preload("Instructor").
		Preload("RegistrationPeriod").
		Preload("Members").
		Preload("Members.Student").
		First(&topic, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &topic, nil
}

// TopicFilter holds the list filters for topics
type TopicFilter struct {
	Status       string
	InstructorID string
	CategoryID   string
	MajorID      string
	PeriodID     string
	Search       string
}

// List returns topics matching the filter with pagination
func (r *TopicRepository) List(filter TopicFilter, page, pageSize int) ([]models.Topic, int64, error) {
	var topics []models.Topic
	var total int64

	query := r.db.Model(&models.Topic{})
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.InstructorID != "" {
		query = query.Where("instructor_id = ?", filter.InstructorID)
	}
	if filter.CategoryID != "" {
		query = query.Where("category_id = ?", filter.CategoryID)
	}
	if filter.MajorID != "" {
		query = query.Where("major_id = ?", filter.MajorID)
	}
	if filter.PeriodID != "" {
		query = query.Where("registration_period_id = ?", filter.PeriodID)
	}
	if filter.Search != "" {
		query = query.Where("title ILIKE ?", "%"+filter.Search+"%")
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.
		Preload("Category").
		Preload("Major").
		Preload("Instructor").
		Preload("RegistrationPeriod").
		Preload("Members").
		Order("created_at DESC").
		Offset(utils.CalculateOffset(page, pageSize)).
		Limit(pageSize).
		Find(&topics).Error
	if err != nil {
		return nil, 0, err
	}
	return topics, total, nil
}

// GetByCreator retrieves all topics created by a user
func (r *TopicRepository) GetByCreator(userID string) ([]models.Topic, error) {
	var topics []models.Topic
	err := r.db.Preload("Category").Preload("RegistrationPeriod").Preload("Members").
		Where("created_by_id = ?", userID).Order("created_at DESC").Find(&topics).Error
	return topics, err
}

// Update updates a topic
func (r *TopicRepository) Update(topic *models.Topic) error {
	return r.db.Save(topic).Error
}

// AssignCouncil sets the council reference on a topic
func (r *TopicRepository) AssignCouncil(topicID string, councilID *string) error {
	return r.db.Model(&models.Topic{}).Where("id = ?", topicID).Update("council_id", councilID).Error
}

// Delete deletes a topic and, via FK cascade, its membership records
func (r *TopicRepository) Delete(id string) error {
	return r.db.Delete(&models.Topic{}, "id = ?", id).Error
}

// GetAll retrieves all topics with references (for exports)
func (r *TopicRepository) GetAll() ([]models.Topic, error) {
	var topics []models.Topic
	err := r.db.
		Preload("Category").
		Preload("Major").
		Preload("Instructor").
		Preload("Members").
		Order("created_at DESC").Find(&topics).Error
	return topics, err
}
