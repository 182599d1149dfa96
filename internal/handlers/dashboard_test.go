package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jamil/mission-control-api/internal/dto"
	"github.com/jamil/mission-control-api/internal/logger"
	"github.com/jamil/mission-control-api/internal/models"
	"github.com/jamil/mission-control-api/internal/repository"
	"github.com/jamil/mission-control-api/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type DashboardHandlerTestSuite struct {
	suite.Suite
	db     *gorm.DB
	router *gin.Engine
}

func (suite *DashboardHandlerTestSuite) SetupTest() {
	var err error

	suite.db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	suite.Require().NoError(err)

	// Each connection to :memory: is its own database; pin the pool to one
	// connection so the concurrent fan-out sees the seeded tables.
	sqlDB, err := suite.db.DB()
	suite.Require().NoError(err)
	sqlDB.SetMaxOpenConns(1)

	err = suite.db.AutoMigrate(
		&models.Task{},
		&models.ContentItem{},
		&models.CalendarEvent{},
		&models.Memory{},
		&models.TeamMember{},
	)
	suite.Require().NoError(err)

	handler := NewDashboardHandler(
		services.NewDashboardService(
			repository.NewTaskRepository(suite.db),
			repository.NewContentRepository(suite.db),
			repository.NewCalendarRepository(suite.db),
			repository.NewMemoryRepository(suite.db),
			repository.NewTeamRepository(suite.db),
		),
		logger.NewNop(),
	)

	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.router.GET("/api/data", handler.GetData)
}

func (suite *DashboardHandlerTestSuite) TearDownTest() {
	sqlDB, err := suite.db.DB()
	suite.Require().NoError(err)
	sqlDB.Close()
}

// TestGetData_AllCollections seeds each table and checks the aggregate
// response carries all five lists, each with its own sort order intact.
func (suite *DashboardHandlerTestSuite) TestGetData_AllCollections() {
	suite.db.Create(&models.Task{Title: "task", Status: models.TaskStatusTodo, Assignee: models.AssigneeJamil})
	suite.db.Create(&models.ContentItem{Title: "video", Stage: models.StageIdea})
	suite.db.Create(&models.CalendarEvent{
		Title:       "upload",
		ScheduledAt: time.Date(2024, 3, 5, 9, 0, 0, 0, time.UTC),
		Type:        models.EventTypeTask,
	})
	suite.db.Create(&models.Memory{Title: "note", Content: "text", Tags: models.StringList{}})
	suite.db.Create(&models.TeamMember{Name: "Oto", Role: "Editor", Status: models.MemberStatusActive})
	suite.db.Create(&models.TeamMember{Name: "Jamil", Role: models.RoleLeader, Status: models.MemberStatusWorking})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/data", nil)
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var data dto.DashboardData
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &data))

	assert.Len(suite.T(), data.Tasks, 1)
	assert.Len(suite.T(), data.Content, 1)
	assert.Len(suite.T(), data.Calendar, 1)
	assert.Len(suite.T(), data.Memories, 1)
	suite.Require().Len(data.Team, 2)
	assert.Equal(suite.T(), "Jamil", data.Team[0].Name)
}

// TestGetData_EmptyStore verifies the aggregate shape with nothing seeded.
func (suite *DashboardHandlerTestSuite) TestGetData_EmptyStore() {
	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/data", nil)
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var response map[string]any
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &response))
	for _, key := range []string{"tasks", "content", "calendar", "memories", "team"} {
		assert.Contains(suite.T(), response, key)
	}
}

func TestDashboardHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(DashboardHandlerTestSuite))
}
