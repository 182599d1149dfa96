package dto

import "github.com/jamil/mission-control-api/internal/models"

// DashboardData bundles all five collections for the aggregate read, saving
// the dashboard view five round trips.
type DashboardData struct {
	Tasks    []models.Task          `json:"tasks"`
	Content  []models.ContentItem   `json:"content"`
	Calendar []models.CalendarEvent `json:"calendar"`
	Memories []models.Memory        `json:"memories"`
	Team     []models.TeamMember    `json:"team"`
}
