package repository

import (
	"github.com/jamil/mission-control-api/internal/models"
	"gorm.io/gorm"
)

// GormTeamRepository is a GORM implementation of TeamRepository
type GormTeamRepository struct {
	db *gorm.DB
}

// NewTeamRepository creates a new TeamRepository
func NewTeamRepository(db *gorm.DB) TeamRepository {
	return &GormTeamRepository{db: db}
}

func (r *GormTeamRepository) Create(member *models.TeamMember) error {
	return r.db.Create(member).Error
}

// List returns all members, leader first, then by ID ascending. The CASE
// expression keeps the ordering portable between postgres and sqlite.
func (r *GormTeamRepository) List() ([]models.TeamMember, error) {
	var members []models.TeamMember
	err := r.db.
		Order("CASE WHEN role = 'Leader' THEN 0 ELSE 1 END, id ASC").
		Find(&members).Error
	if err != nil {
		return nil, err
	}
	return members, nil
}

func (r *GormTeamRepository) FindByID(id uint64) (*models.TeamMember, error) {
	var member models.TeamMember
	if err := r.db.First(&member, id).Error; err != nil {
		return nil, err
	}
	return &member, nil
}

// FindByName finds a member by exact name
func (r *GormTeamRepository) FindByName(name string) (*models.TeamMember, error) {
	var member models.TeamMember
	if err := r.db.Where("name = ?", name).First(&member).Error; err != nil {
		return nil, err
	}
	return &member, nil
}

func (r *GormTeamRepository) Patch(id uint64, updates map[string]any) error {
	res := r.db.Model(&models.TeamMember{}).Where("id = ?", id).Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *GormTeamRepository) Delete(id uint64) error {
	res := r.db.Delete(&models.TeamMember{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
