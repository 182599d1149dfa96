package repository

import (
	"github.com/jamil/mission-control-api/internal/models"
	"gorm.io/gorm"
)

// GormContentRepository is a GORM implementation of ContentRepository
type GormContentRepository struct {
	db *gorm.DB
}

// NewContentRepository creates a new ContentRepository
func NewContentRepository(db *gorm.DB) ContentRepository {
	return &GormContentRepository{db: db}
}

func (r *GormContentRepository) Create(item *models.ContentItem) error {
	return r.db.Create(item).Error
}

func (r *GormContentRepository) List() ([]models.ContentItem, error) {
	var items []models.ContentItem
	if err := r.db.Order("created_at DESC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *GormContentRepository) FindByID(id uint64) (*models.ContentItem, error) {
	var item models.ContentItem
	if err := r.db.First(&item, id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *GormContentRepository) Patch(id uint64, updates map[string]any) error {
	res := r.db.Model(&models.ContentItem{}).Where("id = ?", id).Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *GormContentRepository) Delete(id uint64) error {
	res := r.db.Delete(&models.ContentItem{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
