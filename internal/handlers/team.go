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

type TeamHandler struct {
	teamService *services.TeamService
	log         *logger.Logger
}

func NewTeamHandler(teamService *services.TeamService, log *logger.Logger) *TeamHandler {
	return &TeamHandler{
		teamService: teamService,
		log:         log,
	}
}

// ListMembers returns the team, leader first, then by id.
func (h *TeamHandler) ListMembers(c *gin.Context) {
	members, err := h.teamService.ListMembers()
	if err != nil {
		h.log.Errorw("failed to list team members", "error", err)
		apierrors.InternalError(c, "")
		return
	}
	c.JSON(http.StatusOK, members)
}

// CreateMember adds a team member; status defaults to "working".
func (h *TeamHandler) CreateMember(c *gin.Context) {
	var req dto.CreateMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	member, err := h.teamService.CreateMember(req)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, member)
}

// UpdateMember applies a partial update.
func (h *TeamHandler) UpdateMember(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var patch dto.MemberPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	member, err := h.teamService.UpdateMember(id, patch)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, member)
}

// DeleteMember removes a team member.
func (h *TeamHandler) DeleteMember(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.teamService.DeleteMember(id); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Team member deleted successfully"})
}

// SeedLeader inserts the default leader record if missing. Safe to call any
// number of times; only the first call creates anything.
func (h *TeamHandler) SeedLeader(c *gin.Context) {
	member, created, err := h.teamService.SeedLeader()
	if err != nil {
		h.log.Errorw("failed to seed leader", "error", err)
		apierrors.InternalError(c, "")
		return
	}

	message := "Leader already exists"
	if created {
		message = "Leader added to team"
	}
	c.JSON(http.StatusOK, gin.H{
		"message": message,
		"member":  member,
	})
}

func (h *TeamHandler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrMemberNotFound):
		apierrors.NotFound(c, err.Error())
	case errors.Is(err, services.ErrMemberNameEmpty),
		errors.Is(err, services.ErrMemberRoleEmpty),
		errors.Is(err, services.ErrInvalidMemberStatus):
		apierrors.BadRequest(c, err.Error())
	default:
		h.log.Errorw("team operation failed", "error", err)
		apierrors.InternalError(c, "")
	}
}
