package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jamil/mission-control-api/internal/dto"
	apierrors "github.com/jamil/mission-control-api/internal/errors"
	"github.com/jamil/mission-control-api/internal/logger"
	"github.com/jamil/mission-control-api/internal/services"
)

type MemoryHandler struct {
	memoryService *services.MemoryService
	log           *logger.Logger
}

func NewMemoryHandler(memoryService *services.MemoryService, log *logger.Logger) *MemoryHandler {
	return &MemoryHandler{
		memoryService: memoryService,
		log:           log,
	}
}

// ListMemories returns memories newest first. An optional ?q= filters by
// case-insensitive substring over title, content, and tags.
func (h *MemoryHandler) ListMemories(c *gin.Context) {
	memories, err := h.memoryService.ListMemories(c.Query("q"))
	if err != nil {
		h.log.Errorw("failed to list memories", "error", err)
		apierrors.InternalError(c, "")
		return
	}
	c.JSON(http.StatusOK, memories)
}

// CreateMemory creates a memory.
func (h *MemoryHandler) CreateMemory(c *gin.Context) {
	var req dto.CreateMemoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	memory, err := h.memoryService.CreateMemory(req)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, memory)
}

// UpdateMemory applies a partial update.
func (h *MemoryHandler) UpdateMemory(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var patch dto.MemoryPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	memory, err := h.memoryService.UpdateMemory(id, patch)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, memory)
}

// DeleteMemory removes a memory.
func (h *MemoryHandler) DeleteMemory(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.memoryService.DeleteMemory(id); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Memory deleted successfully"})
}

func (h *MemoryHandler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrMemoryNotFound):
		apierrors.NotFound(c, err.Error())
	case errors.Is(err, services.ErrMemoryTitleEmpty),
		errors.Is(err, services.ErrMemoryContentEmpty):
		apierrors.BadRequest(c, err.Error())
	default:
		h.log.Errorw("memory operation failed", "error", err)
		apierrors.InternalError(c, "")
	}
}
