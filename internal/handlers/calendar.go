package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jamil/mission-control-api/internal/dto"
	apierrors "github.com/jamil/mission-control-api/internal/errors"
	"github.com/jamil/mission-control-api/internal/logger"
	"github.com/jamil/mission-control-api/internal/services"
)

type CalendarHandler struct {
	calendarService *services.CalendarService
	log             *logger.Logger
}

func NewCalendarHandler(calendarService *services.CalendarService, log *logger.Logger) *CalendarHandler {
	return &CalendarHandler{
		calendarService: calendarService,
		log:             log,
	}
}

// ListEvents returns all events ordered by scheduled time ascending.
func (h *CalendarHandler) ListEvents(c *gin.Context) {
	events, err := h.calendarService.ListEvents()
	if err != nil {
		h.log.Errorw("failed to list calendar events", "error", err)
		apierrors.InternalError(c, "")
		return
	}
	c.JSON(http.StatusOK, events)
}

// CreateEvent creates a calendar event.
func (h *CalendarHandler) CreateEvent(c *gin.Context) {
	var req dto.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	event, err := h.calendarService.CreateEvent(req)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, event)
}

// UpdateEvent applies a partial update, including the completed toggle.
func (h *CalendarHandler) UpdateEvent(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var patch dto.EventPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	event, err := h.calendarService.UpdateEvent(id, patch)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, event)
}

// DeleteEvent removes a calendar event.
func (h *CalendarHandler) DeleteEvent(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.calendarService.DeleteEvent(id); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Calendar event deleted successfully"})
}

// MonthGrid returns the Monday-aligned month grid with events placed on
// their calendar days. Year and month (1..12) default to the current month.
func (h *CalendarHandler) MonthGrid(c *gin.Context) {
	now := time.Now().UTC()

	year := now.Year()
	if yearStr := c.Query("year"); yearStr != "" {
		y, err := strconv.Atoi(yearStr)
		if err != nil {
			apierrors.BadRequest(c, "Invalid year")
			return
		}
		year = y
	}

	month := now.Month()
	if monthStr := c.Query("month"); monthStr != "" {
		m, err := strconv.Atoi(monthStr)
		if err != nil || m < 1 || m > 12 {
			apierrors.BadRequest(c, "Invalid month")
			return
		}
		month = time.Month(m)
	}

	grid, err := h.calendarService.MonthGrid(year, month)
	if err != nil {
		h.log.Errorw("failed to build month grid", "error", err)
		apierrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"year":  year,
		"month": int(month),
		"cells": grid,
	})
}

func (h *CalendarHandler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrEventNotFound):
		apierrors.NotFound(c, err.Error())
	case errors.Is(err, services.ErrEventTitleEmpty),
		errors.Is(err, services.ErrEventTimeRequired),
		errors.Is(err, services.ErrInvalidEventType),
		errors.Is(err, services.ErrCompletedNull):
		apierrors.BadRequest(c, err.Error())
	default:
		h.log.Errorw("calendar operation failed", "error", err)
		apierrors.InternalError(c, "")
	}
}
