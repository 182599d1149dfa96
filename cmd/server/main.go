package main

import (
	"github.com/gin-gonic/gin"
	"github.com/jamil/mission-control-api/internal/config"
	"github.com/jamil/mission-control-api/internal/database"
	"github.com/jamil/mission-control-api/internal/handlers"
	"github.com/jamil/mission-control-api/internal/logger"
	"github.com/jamil/mission-control-api/internal/repository"
	"github.com/jamil/mission-control-api/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()

	log := logger.New(cfg.GinMode)
	defer log.Sync()

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	// Connect to database
	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalw("failed to connect to database", "error", err)
	}
	log.Infow("database connection established", "host", cfg.DBHost, "database", cfg.DBName)

	// Run migrations
	if err := database.Migrate(db); err != nil {
		log.Fatalw("failed to run migrations", "error", err)
	}

	// Repositories
	taskRepo := repository.NewTaskRepository(db)
	contentRepo := repository.NewContentRepository(db)
	calendarRepo := repository.NewCalendarRepository(db)
	memoryRepo := repository.NewMemoryRepository(db)
	teamRepo := repository.NewTeamRepository(db)

	// Services
	taskService := services.NewTaskService(taskRepo)
	contentService := services.NewContentService(contentRepo)
	calendarService := services.NewCalendarService(calendarRepo)
	memoryService := services.NewMemoryService(memoryRepo)
	teamService := services.NewTeamService(teamRepo)
	dashboardService := services.NewDashboardService(taskRepo, contentRepo, calendarRepo, memoryRepo, teamRepo)

	// Handlers
	taskHandler := handlers.NewTaskHandler(taskService, log)
	contentHandler := handlers.NewContentHandler(contentService, log)
	calendarHandler := handlers.NewCalendarHandler(calendarService, log)
	memoryHandler := handlers.NewMemoryHandler(memoryService, log)
	teamHandler := handlers.NewTeamHandler(teamService, log)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService, log)

	// Initialize Gin router
	r := gin.Default()

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"message": "Mission Control API is running",
		})
	})

	// API routes
	api := r.Group("/api")
	{
		tasks := api.Group("/tasks")
		{
			tasks.GET("", taskHandler.ListTasks)
			tasks.POST("", taskHandler.CreateTask)
			tasks.PATCH("/:id", taskHandler.UpdateTask)
			tasks.DELETE("/:id", taskHandler.DeleteTask)
		}

		content := api.Group("/content")
		{
			content.GET("", contentHandler.ListContent)
			content.POST("", contentHandler.CreateContent)
			content.PATCH("/:id", contentHandler.UpdateContent)
			content.DELETE("/:id", contentHandler.DeleteContent)
		}

		calendar := api.Group("/calendar")
		{
			calendar.GET("", calendarHandler.ListEvents)
			calendar.POST("", calendarHandler.CreateEvent)
			calendar.GET("/grid", calendarHandler.MonthGrid)
			calendar.PATCH("/:id", calendarHandler.UpdateEvent)
			calendar.DELETE("/:id", calendarHandler.DeleteEvent)
		}

		memories := api.Group("/memories")
		{
			memories.GET("", memoryHandler.ListMemories)
			memories.POST("", memoryHandler.CreateMemory)
			memories.PATCH("/:id", memoryHandler.UpdateMemory)
			memories.DELETE("/:id", memoryHandler.DeleteMemory)
		}

		team := api.Group("/team")
		{
			team.GET("", teamHandler.ListMembers)
			team.POST("", teamHandler.CreateMember)
			team.POST("/seed-leader", teamHandler.SeedLeader)
			team.PATCH("/:id", teamHandler.UpdateMember)
			team.DELETE("/:id", teamHandler.DeleteMember)
		}

		// Aggregate read: the dashboard's single-call fetch of all five
		// collections, doubling as the full data dump.
		api.GET("/data", dashboardHandler.GetData)
	}

	// Start server
	log.Infow("server starting", "port", cfg.ServerPort)
	if err := r.Run(":" + cfg.ServerPort); err != nil {
		log.Fatalw("failed to start server", "error", err)
	}
}
