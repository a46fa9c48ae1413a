package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/kamilarndt/fabmanage-api/internal/config"
	"github.com/kamilarndt/fabmanage-api/internal/database"
	"github.com/kamilarndt/fabmanage-api/internal/handlers"
	"github.com/kamilarndt/fabmanage-api/internal/middleware"
	"github.com/kamilarndt/fabmanage-api/internal/repository"
	"github.com/kamilarndt/fabmanage-api/internal/seed"
	"github.com/kamilarndt/fabmanage-api/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	// Connect to database
	if err := database.Connect(cfg); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run migrations
	if err := database.Migrate(); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Seed initial data when requested
	if cfg.SeedFile != "" {
		if err := seed.Load(database.GetDB(), cfg.SeedFile); err != nil {
			log.Fatalf("Failed to seed database: %v", err)
		}
		log.Printf("Seeded database from %s", cfg.SeedFile)
	}

	// Initialize repositories
	eventRepo := repository.NewEventRepository(database.GetDB())
	resourceRepo := repository.NewResourceRepository(database.GetDB())
	projectRepo := repository.NewProjectRepository(database.GetDB())
	workItemRepo := repository.NewWorkItemRepository(database.GetDB())

	// Initialize services
	eventService := services.NewEventService(eventRepo)
	resourceService := services.NewResourceService(resourceRepo)
	projectService := services.NewProjectService(projectRepo, workItemRepo)
	scheduleService := services.NewScheduleService(eventRepo, resourceRepo, services.ScheduleOptions{
		CapacityHours:   cfg.CapacityHours,
		AllowOvercommit: cfg.AllowOvercommit,
		WorkdayStart:    cfg.WorkdayStart,
		WorkdayEnd:      cfg.WorkdayEnd,
		SlotMinutes:     cfg.SlotMinutes,
	})

	// Initialize handlers
	resourceHandler := handlers.NewResourceHandler(resourceService)
	eventHandler := handlers.NewEventHandler(eventService, scheduleService)
	scheduleHandler := handlers.NewScheduleHandler(scheduleService)
	projectHandler := handlers.NewProjectHandler(projectService)

	// Initialize Gin router
	r := gin.Default()

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"message": "FabManage API is running",
		})
	})

	// API routes
	api := r.Group("/api")
	{
		resources := api.Group("/resources")
		{
			resources.GET("", resourceHandler.ListResources)
			resources.POST("", resourceHandler.CreateResource)
			resources.GET("/:id", resourceHandler.GetResource)
			resources.PATCH("/:id", resourceHandler.UpdateResource)
			resources.DELETE("/:id", resourceHandler.DeleteResource)
		}

		events := api.Group("/events")
		{
			events.GET("", eventHandler.ListEvents)
			events.POST("", eventHandler.CreateEvent)
			events.POST("/autoschedule", scheduleHandler.AutoSchedule)
			events.GET("/:id", middleware.RequireEvent(), eventHandler.GetEvent)
			events.PATCH("/:id", middleware.RequireEvent(), eventHandler.UpdateEvent)
			events.POST("/:id/reschedule", middleware.RequireEvent(), eventHandler.RescheduleEvent)
			events.DELETE("/:id", middleware.RequireEvent(), eventHandler.DeleteEvent)
		}

		schedule := api.Group("/schedule")
		{
			schedule.GET("/conflicts", scheduleHandler.GetConflicts)
			schedule.GET("/workload", scheduleHandler.GetWorkload)
			schedule.GET("/lanes", scheduleHandler.GetLanes)
			schedule.GET("/export", scheduleHandler.ExportWeek)
		}

		projects := api.Group("/projects")
		{
			projects.GET("", projectHandler.ListProjects)
			projects.POST("", projectHandler.CreateProject)
			projects.GET("/:id", middleware.RequireProject(), projectHandler.GetProject)
			projects.GET("/:id/gantt", middleware.RequireProject(), projectHandler.GetGantt)
			projects.GET("/:id/items", middleware.RequireProject(), projectHandler.ListWorkItems)
			projects.POST("/:id/items", middleware.RequireProject(), projectHandler.CreateWorkItem)
		}

		items := api.Group("/items")
		{
			items.PATCH("/:id", projectHandler.UpdateWorkItem)
			items.DELETE("/:id", projectHandler.DeleteWorkItem)
		}
	}

	// Start server
	log.Printf("Server starting on :%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
