package repository

import (
	"github.com/jamil/mission-control-api/internal/models"
	"gorm.io/gorm"
)

// GormMemoryRepository is a GORM implementation of MemoryRepository
type GormMemoryRepository struct {
	db *gorm.DB
}

// NewMemoryRepository creates a new MemoryRepository
func NewMemoryRepository(db *gorm.DB) MemoryRepository {
	return &GormMemoryRepository{db: db}
}

func (r *GormMemoryRepository) Create(memory *models.Memory) error {
	return r.db.Create(memory).Error
}

func (r *GormMemoryRepository) List() ([]models.Memory, error) {
	var memories []models.Memory
	if err := r.db.Order("created_at DESC").Find(&memories).Error; err != nil {
		return nil, err
	}
	return memories, nil
}

func (r *GormMemoryRepository) FindByID(id uint64) (*models.Memory, error) {
	var memory models.Memory
	if err := r.db.First(&memory, id).Error; err != nil {
		return nil, err
	}
	return &memory, nil
}

func (r *GormMemoryRepository) Patch(id uint64, updates map[string]any) error {
	res := r.db.Model(&models.Memory{}).Where("id = ?", id).Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *GormMemoryRepository) Delete(id uint64) error {
	res := r.db.Delete(&models.Memory{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
