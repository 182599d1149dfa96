package models

import "time"

type ContentStage string

const (
	StageIdea      ContentStage = "idea"
	StageScripting ContentStage = "scripting"
	StageThumbnail ContentStage = "thumbnail"
	StageFilming   ContentStage = "filming"
	StageEditing   ContentStage = "editing"
	StagePublished ContentStage = "published"
)

func (s ContentStage) Valid() bool {
	switch s {
	case StageIdea, StageScripting, StageThumbnail, StageFilming, StageEditing, StagePublished:
		return true
	}
	return false
}

// ContentItem is one entry in the content-production pipeline. Stage ordering
// is presentational only; no transition rules are enforced.
type ContentItem struct {
	ID           uint64       `gorm:"primarykey" json:"id"`
	Title        string       `gorm:"not null" json:"title"`
	Stage        ContentStage `gorm:"type:varchar(20);not null;default:'idea';index" json:"stage"`
	Script       *string      `gorm:"type:text" json:"script"`
	ThumbnailURL *string      `json:"thumbnail_url"`
	Notes        *string      `gorm:"type:text" json:"notes"`
	CreatedAt    time.Time    `gorm:"index" json:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at"`
}

func (ContentItem) TableName() string {
	return "content"
}
