package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/kamilarndt/fabmanage-api/internal/database"
	apierrors "github.com/kamilarndt/fabmanage-api/internal/errors"
	"github.com/kamilarndt/fabmanage-api/internal/models"
)

// RequireEvent loads the event named by the :id parameter into the gin
// context, aborting with 404 when it does not exist.
func RequireEvent() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		if id == "" {
			apierrors.BadRequest(c, "Invalid event ID")
			c.Abort()
			return
		}

		var event models.Event
		if err := database.GetDB().First(&event, "id = ?", id).Error; err != nil {
			apierrors.NotFound(c, "Event not found")
			c.Abort()
			return
		}

		c.Set("event", event)
		c.Next()
	}
}

// RequireProject loads the project named by the :id parameter, with its
// work items preloaded, into the gin context.
func RequireProject() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		if id == "" {
			apierrors.BadRequest(c, "Invalid project ID")
			c.Abort()
			return
		}

		var project models.Project
		if err := database.GetDB().Preload("WorkItems").First(&project, "id = ?", id).Error; err != nil {
			apierrors.NotFound(c, "Project not found")
			c.Abort()
			return
		}

		c.Set("project", project)
		c.Next()
	}
}

// GetEvent retrieves the event stored by RequireEvent.
func GetEvent(c *gin.Context) (models.Event, bool) {
	value, exists := c.Get("event")
	if !exists {
		return models.Event{}, false
	}
	event, ok := value.(models.Event)
	return event, ok
}

// GetProject retrieves the project stored by RequireProject.
func GetProject(c *gin.Context) (models.Project, bool) {
	value, exists := c.Get("project")
	if !exists {
		return models.Project{}, false
	}
	project, ok := value.(models.Project)
	return project, ok
}
