package models

import "time"

// Memory is a free-text note with an ordered tag list. Titles and tags carry
// no uniqueness constraint.
type Memory struct {
	ID        uint64     `gorm:"primarykey" json:"id"`
	Title     string     `gorm:"not null" json:"title"`
	Content   string     `gorm:"type:text;not null" json:"content"`
	Tags      StringList `gorm:"type:text" json:"tags"`
	CreatedAt time.Time  `gorm:"index" json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}
