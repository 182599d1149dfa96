package repository

import (
	"github.com/jamil/mission-control-api/internal/models"
	"gorm.io/gorm"
)

// GormCalendarRepository is a GORM implementation of CalendarRepository
type GormCalendarRepository struct {
	db *gorm.DB
}

// NewCalendarRepository creates a new CalendarRepository
func NewCalendarRepository(db *gorm.DB) CalendarRepository {
	return &GormCalendarRepository{db: db}
}

func (r *GormCalendarRepository) Create(event *models.CalendarEvent) error {
	return r.db.Create(event).Error
}

// List returns all events ordered by scheduled time ascending
func (r *GormCalendarRepository) List() ([]models.CalendarEvent, error) {
	var events []models.CalendarEvent
	if err := r.db.Order("scheduled_at ASC").Find(&events).Error; err != nil {
		return nil, err
	}
	return events, nil
}

func (r *GormCalendarRepository) FindByID(id uint64) (*models.CalendarEvent, error) {
	var event models.CalendarEvent
	if err := r.db.First(&event, id).Error; err != nil {
		return nil, err
	}
	return &event, nil
}

func (r *GormCalendarRepository) Patch(id uint64, updates map[string]any) error {
	res := r.db.Model(&models.CalendarEvent{}).Where("id = ?", id).Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *GormCalendarRepository) Delete(id uint64) error {
	res := r.db.Delete(&models.CalendarEvent{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
