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
	ErrMemoryNotFound     = errors.New("memory not found")
	ErrMemoryTitleEmpty   = errors.New("memory title cannot be empty")
	ErrMemoryContentEmpty = errors.New("memory content cannot be empty")
)

// MemoryService provides business logic for free-text memories.
type MemoryService struct {
	memoryRepo repository.MemoryRepository
}

// NewMemoryService creates a new MemoryService.
func NewMemoryService(memoryRepo repository.MemoryRepository) *MemoryService {
	return &MemoryService{memoryRepo: memoryRepo}
}

// ListMemories returns memories newest first. A non-empty query filters the
// full list in memory; the store itself is never queried by text.
func (s *MemoryService) ListMemories(query string) ([]models.Memory, error) {
	memories, err := s.memoryRepo.List()
	if err != nil {
		return nil, fmt.Errorf("failed to list memories: %w", err)
	}
	return FilterMemories(memories, query), nil
}

// CreateMemory creates a new memory. A nil tag list is stored as empty.
func (s *MemoryService) CreateMemory(req dto.CreateMemoryRequest) (*models.Memory, error) {
	if strings.TrimSpace(req.Title) == "" {
		return nil, ErrMemoryTitleEmpty
	}
	if strings.TrimSpace(req.Content) == "" {
		return nil, ErrMemoryContentEmpty
	}

	tags := models.StringList(req.Tags)
	if tags == nil {
		tags = models.StringList{}
	}

	memory := &models.Memory{
		Title:   req.Title,
		Content: req.Content,
		Tags:    tags,
	}

	if err := s.memoryRepo.Create(memory); err != nil {
		return nil, fmt.Errorf("failed to create memory: %w", err)
	}
	return memory, nil
}

// UpdateMemory applies a partial update; a null tags field clears the list.
func (s *MemoryService) UpdateMemory(id uint64, patch dto.MemoryPatch) (*models.Memory, error) {
	memory, err := s.memoryRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMemoryNotFound
		}
		return nil, fmt.Errorf("failed to load memory: %w", err)
	}

	updates := map[string]any{}

	if patch.Title.Set {
		if !patch.Title.Valid || strings.TrimSpace(patch.Title.Value) == "" {
			return nil, ErrMemoryTitleEmpty
		}
		updates["title"] = patch.Title.Value
	}
	if patch.Content.Set {
		if !patch.Content.Valid || strings.TrimSpace(patch.Content.Value) == "" {
			return nil, ErrMemoryContentEmpty
		}
		updates["content"] = patch.Content.Value
	}
	if patch.Tags.Set {
		tags := models.StringList(patch.Tags.Value)
		if !patch.Tags.Valid || tags == nil {
			tags = models.StringList{}
		}
		updates["tags"] = tags
	}

	if len(updates) == 0 {
		return memory, nil
	}

	if err := s.memoryRepo.Patch(id, updates); err != nil {
		return nil, fmt.Errorf("failed to update memory: %w", err)
	}

	memory, err = s.memoryRepo.FindByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to reload memory: %w", err)
	}
	return memory, nil
}

// DeleteMemory removes a memory.
func (s *MemoryService) DeleteMemory(id uint64) error {
	if err := s.memoryRepo.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrMemoryNotFound
		}
		return fmt.Errorf("failed to delete memory: %w", err)
	}
	return nil
}

// FilterMemories keeps the memories whose title, content, or any tag contains
// the query as a case-insensitive substring. An empty query keeps everything.
func FilterMemories(memories []models.Memory, query string) []models.Memory {
	query = strings.TrimSpace(strings.ToLower(query))
	if query == "" {
		return memories
	}

	filtered := make([]models.Memory, 0, len(memories))
	for _, memory := range memories {
		if memoryMatches(memory, query) {
			filtered = append(filtered, memory)
		}
	}
	return filtered
}

func memoryMatches(memory models.Memory, query string) bool {
	if strings.Contains(strings.ToLower(memory.Title), query) {
		return true
	}
	if strings.Contains(strings.ToLower(memory.Content), query) {
		return true
	}
	for _, tag := range memory.Tags {
		if strings.Contains(strings.ToLower(tag), query) {
			return true
		}
	}
	return false
}
