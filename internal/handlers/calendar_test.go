package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jamil/mission-control-api/internal/logger"
	"github.com/jamil/mission-control-api/internal/models"
	"github.com/jamil/mission-control-api/internal/repository"
	"github.com/jamil/mission-control-api/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type CalendarHandlerTestSuite struct {
	suite.Suite
	db     *gorm.DB
	router *gin.Engine
}

func (suite *CalendarHandlerTestSuite) SetupTest() {
	var err error

	suite.db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	suite.Require().NoError(err)

	err = suite.db.AutoMigrate(&models.CalendarEvent{})
	suite.Require().NoError(err)

	handler := NewCalendarHandler(
		services.NewCalendarService(repository.NewCalendarRepository(suite.db)),
		logger.NewNop(),
	)

	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.router.GET("/api/calendar", handler.ListEvents)
	suite.router.POST("/api/calendar", handler.CreateEvent)
	suite.router.GET("/api/calendar/grid", handler.MonthGrid)
	suite.router.PATCH("/api/calendar/:id", handler.UpdateEvent)
	suite.router.DELETE("/api/calendar/:id", handler.DeleteEvent)
}

func (suite *CalendarHandlerTestSuite) TearDownTest() {
	sqlDB, err := suite.db.DB()
	suite.Require().NoError(err)
	sqlDB.Close()
}

func (suite *CalendarHandlerTestSuite) request(method, url string, body []byte) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	var req *http.Request
	if body != nil {
		req = httptest.NewRequest(method, url, bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, url, nil)
	}
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *CalendarHandlerTestSuite) createTestEvent(title string, at time.Time) *models.CalendarEvent {
	event := &models.CalendarEvent{
		Title:       title,
		ScheduledAt: at,
		Type:        models.EventTypeReminder,
	}
	suite.db.Create(event)
	return event
}

func (suite *CalendarHandlerTestSuite) TestCreateEvent() {
	body := []byte(`{"title":"Upload day","scheduled_at":"2024-03-05T09:00:00Z","type":"task"}`)
	w := suite.request("POST", "/api/calendar", body)

	assert.Equal(suite.T(), http.StatusCreated, w.Code)

	var created models.CalendarEvent
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(suite.T(), models.EventTypeTask, created.Type)
	assert.False(suite.T(), created.Completed)
}

func (suite *CalendarHandlerTestSuite) TestCreateEvent_InvalidType() {
	body := []byte(`{"title":"t","scheduled_at":"2024-03-05T09:00:00Z","type":"meeting"}`)
	w := suite.request("POST", "/api/calendar", body)
	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

// TestListEvents_ScheduledAscending checks the calendar's fixed sort key.
func (suite *CalendarHandlerTestSuite) TestListEvents_ScheduledAscending() {
	later := suite.createTestEvent("later", time.Date(2024, 3, 20, 10, 0, 0, 0, time.UTC))
	earlier := suite.createTestEvent("earlier", time.Date(2024, 3, 5, 10, 0, 0, 0, time.UTC))

	w := suite.request("GET", "/api/calendar", nil)
	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var listed []models.CalendarEvent
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &listed))
	suite.Require().Len(listed, 2)
	assert.Equal(suite.T(), earlier.ID, listed[0].ID)
	assert.Equal(suite.T(), later.ID, listed[1].ID)
}

func (suite *CalendarHandlerTestSuite) TestUpdateEvent_ToggleCompleted() {
	suite.createTestEvent("Upload day", time.Date(2024, 3, 5, 10, 0, 0, 0, time.UTC))

	w := suite.request("PATCH", "/api/calendar/1", []byte(`{"completed":true}`))
	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var updated models.CalendarEvent
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &updated))
	assert.True(suite.T(), updated.Completed)
	assert.Equal(suite.T(), "Upload day", updated.Title)
}

func (suite *CalendarHandlerTestSuite) TestDeleteEvent_ThenNotFound() {
	suite.createTestEvent("Upload day", time.Date(2024, 3, 5, 10, 0, 0, 0, time.UTC))

	w := suite.request("DELETE", "/api/calendar/1", nil)
	assert.Equal(suite.T(), http.StatusOK, w.Code)

	w = suite.request("DELETE", "/api/calendar/1", nil)
	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

// TestMonthGrid_PlacesEventsByDay requests March 2024 and checks both the
// grid shape and day-equality event placement, including an event on a
// leading February cell.
func (suite *CalendarHandlerTestSuite) TestMonthGrid_PlacesEventsByDay() {
	suite.createTestEvent("leap day standup", time.Date(2024, 2, 29, 9, 30, 0, 0, time.UTC))
	suite.createTestEvent("upload", time.Date(2024, 3, 5, 18, 0, 0, 0, time.UTC))
	suite.createTestEvent("late edit", time.Date(2024, 3, 5, 23, 0, 0, 0, time.UTC))

	w := suite.request("GET", "/api/calendar/grid?year=2024&month=3", nil)
	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var response struct {
		Year  int                 `json:"year"`
		Month int                 `json:"month"`
		Cells []services.GridCell `json:"cells"`
	}
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &response))

	assert.Equal(suite.T(), 2024, response.Year)
	assert.Equal(suite.T(), 3, response.Month)
	suite.Require().Len(response.Cells, 35)

	// March starts on a Friday: four leading February cells, the last of
	// which is the 29th and carries the leap-day event.
	leading := response.Cells[3]
	assert.Equal(suite.T(), 29, leading.Day)
	assert.False(suite.T(), leading.InMonth)
	suite.Require().Len(leading.Events, 1)
	assert.Equal(suite.T(), "leap day standup", leading.Events[0].Title)

	// March 5 sits at offset 4 + 4: both same-day events, regardless of
	// time of day.
	march5 := response.Cells[8]
	assert.Equal(suite.T(), 5, march5.Day)
	assert.True(suite.T(), march5.InMonth)
	assert.Len(suite.T(), march5.Events, 2)

	// A day with nothing scheduled returns an empty, non-null set.
	march6 := response.Cells[9]
	assert.NotNil(suite.T(), march6.Events)
	assert.Empty(suite.T(), march6.Events)
}

func (suite *CalendarHandlerTestSuite) TestMonthGrid_InvalidMonth() {
	w := suite.request("GET", "/api/calendar/grid?year=2024&month=13", nil)
	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

func TestCalendarHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(CalendarHandlerTestSuite))
}
