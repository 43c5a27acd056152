package repository

import (
	"github.com/ducminh2107/QL-DoAn-sub001/internal/models"

	"gorm.io/gorm"
)

type CouncilRepository struct {
	db *gorm.DB
}

func NewCouncilRepository(db *gorm.DB) *CouncilRepository {
	return &CouncilRepository{db: db}
}

// Create creates a new council
func (r *CouncilRepository) Create(council *models.Council) error {
	return r.db.Create(council).Error
}

// GetByID retrieves a council with members and assigned topics
func (r *CouncilRepository) GetByID(id string) (*models.Council, error) {
	var council models.Council
	err := r.db.
		Preload("Semester").
		Preload("Members").
		Preload("Members.User").
		Preload("Topics").
		First(&council, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &council, nil
}

// GetAll retrieves all councils with members
func (r *CouncilRepository) GetAll() ([]models.Council, error) {
	var councils []models.Council
	err := r.db.
		Preload("Semester").
		Preload("Members").
		Preload("Members.User").
		Order("created_at DESC").Find(&councils).Error
	return councils, err
}

// Update updates a council
func (r *CouncilRepository) Update(council *models.Council) error {
	return r.db.Save(council).Error
}

// Delete deletes a council; assigned topics keep a dangling council_id
// cleared by the service before deletion
func (r *CouncilRepository) Delete(id string) error {
	return r.db.Delete(&models.Council{}, "id = ?", id).Error
}

// AddMember adds a member to a council
func (r *CouncilRepository) AddMember(member *models.CouncilMember) error {
	return r.db.Create(member).Error
}

// RemoveMember removes a member from a council
func (r *CouncilRepository) RemoveMember(councilID, userID string) error {
	return r.db.Where("council_id = ? AND user_id = ?", councilID, userID).
		Delete(&models.CouncilMember{}).Error
}

// CountMemberSeat checks whether a user already holds a seat on a council
func (r *CouncilRepository) CountMemberSeat(councilID, userID string) (int64, error) {
	var count int64
	err := r.db.Model(&models.CouncilMember{}).
		Where("council_id = ? AND user_id = ?", councilID, userID).Count(&count).Error
	return count, err
}

// ClearTopics detaches all topics assigned to a council
func (r *CouncilRepository) ClearTopics(councilID string) error {
	return r.db.Model(&models.Topic{}).Where("council_id = ?", councilID).
		Update("council_id", nil).Error
}
