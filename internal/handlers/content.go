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

type ContentHandler struct {
	contentService *services.ContentService
	log            *logger.Logger
}

func NewContentHandler(contentService *services.ContentService, log *logger.Logger) *ContentHandler {
	return &ContentHandler{
		contentService: contentService,
		log:            log,
	}
}

// ListContent returns all pipeline items, newest first.
func (h *ContentHandler) ListContent(c *gin.Context) {
	items, err := h.contentService.ListContent()
	if err != nil {
		h.log.Errorw("failed to list content", "error", err)
		apierrors.InternalError(c, "")
		return
	}
	c.JSON(http.StatusOK, items)
}

// CreateContent creates a pipeline item; stage defaults to "idea".
func (h *ContentHandler) CreateContent(c *gin.Context) {
	var req dto.CreateContentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	item, err := h.contentService.CreateContent(req)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, item)
}

// UpdateContent applies a partial update; moving a card between board
// columns arrives here as a stage-only patch.
func (h *ContentHandler) UpdateContent(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var patch dto.ContentPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	item, err := h.contentService.UpdateContent(id, patch)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

// DeleteContent removes a pipeline item.
func (h *ContentHandler) DeleteContent(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.contentService.DeleteContent(id); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Content item deleted successfully"})
}

func (h *ContentHandler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrContentNotFound):
		apierrors.NotFound(c, err.Error())
	case errors.Is(err, services.ErrContentTitleEmpty),
		errors.Is(err, services.ErrInvalidStage):
		apierrors.BadRequest(c, err.Error())
	default:
		h.log.Errorw("content operation failed", "error", err)
		apierrors.InternalError(c, "")
	}
}
