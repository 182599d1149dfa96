package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jamil/mission-control-api/internal/dto"
	"github.com/jamil/mission-control-api/internal/models"
	"github.com/jamil/mission-control-api/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrContentNotFound   = errors.New("content item not found")
	ErrContentTitleEmpty = errors.New("content title cannot be empty")
	ErrInvalidStage      = errors.New("invalid content stage")
)

// ContentService provides business logic for the content pipeline.
type ContentService struct {
	contentRepo repository.ContentRepository
}

// NewContentService creates a new ContentService.
func NewContentService(contentRepo repository.ContentRepository) *ContentService {
	return &ContentService{contentRepo: contentRepo}
}

// ListContent returns all content items, newest first.
func (s *ContentService) ListContent() ([]models.ContentItem, error) {
	items, err := s.contentRepo.List()
	if err != nil {
		return nil, fmt.Errorf("failed to list content: %w", err)
	}
	return items, nil
}

// CreateContent creates a new pipeline item; omitted stage defaults to "idea".
func (s *ContentService) CreateContent(req dto.CreateContentRequest) (*models.ContentItem, error) {
	if strings.TrimSpace(req.Title) == "" {
		return nil, ErrContentTitleEmpty
	}

	stage := models.StageIdea
	if req.Stage != "" {
		stage = models.ContentStage(req.Stage)
		if !stage.Valid() {
			return nil, ErrInvalidStage
		}
	}

	item := &models.ContentItem{
		Title:        req.Title,
		Stage:        stage,
		Script:       req.Script,
		ThumbnailURL: req.ThumbnailURL,
		Notes:        req.Notes,
	}

	if err := s.contentRepo.Create(item); err != nil {
		return nil, fmt.Errorf("failed to create content item: %w", err)
	}
	return item, nil
}

// UpdateContent applies a partial update. Stage changes carry no transition
// validation; the board order is presentational only.
func (s *ContentService) UpdateContent(id uint64, patch dto.ContentPatch) (*models.ContentItem, error) {
	item, err := s.contentRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrContentNotFound
		}
		return nil, fmt.Errorf("failed to load content item: %w", err)
	}

	updates := map[string]any{}

	if patch.Title.Set {
		if !patch.Title.Valid || strings.TrimSpace(patch.Title.Value) == "" {
			return nil, ErrContentTitleEmpty
		}
		updates["title"] = patch.Title.Value
	}
	if patch.Stage.Set {
		stage := models.ContentStage(patch.Stage.Value)
		if !patch.Stage.Valid || !stage.Valid() {
			return nil, ErrInvalidStage
		}
		updates["stage"] = stage
	}
	if patch.Script.Set {
		updates["script"] = patch.Script.Ptr()
	}
	if patch.ThumbnailURL.Set {
		updates["thumbnail_url"] = patch.ThumbnailURL.Ptr()
	}
	if patch.Notes.Set {
		updates["notes"] = patch.Notes.Ptr()
	}

	if len(updates) == 0 {
		return item, nil
	}

	if err := s.contentRepo.Patch(id, updates); err != nil {
		return nil, fmt.Errorf("failed to update content item: %w", err)
	}

	item, err = s.contentRepo.FindByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to reload content item: %w", err)
	}
	return item, nil
}

// DeleteContent removes a pipeline item.
func (s *ContentService) DeleteContent(id uint64) error {
	if err := s.contentRepo.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrContentNotFound
		}
		return fmt.Errorf("failed to delete content item: %w", err)
	}
	return nil
}
