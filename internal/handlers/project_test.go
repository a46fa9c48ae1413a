package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/kamilarndt/fabmanage-api/internal/database"
	"github.com/kamilarndt/fabmanage-api/internal/middleware"
	"github.com/kamilarndt/fabmanage-api/internal/models"
	"github.com/kamilarndt/fabmanage-api/internal/repository"
	"github.com/kamilarndt/fabmanage-api/internal/services"
)

// ProjectHandlerTestSuite defines the test suite for ProjectHandler
type ProjectHandlerTestSuite struct {
	suite.Suite
	db     *gorm.DB
	router *gin.Engine
}

// SetupTest runs before each test
func (suite *ProjectHandlerTestSuite) SetupTest() {
	var err error

	suite.db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	suite.Require().NoError(err)

	err = suite.db.AutoMigrate(&models.Project{}, &models.WorkItem{})
	suite.Require().NoError(err)

	database.SetDB(suite.db)

	projectRepo := repository.NewProjectRepository(suite.db)
	workItemRepo := repository.NewWorkItemRepository(suite.db)
	handler := NewProjectHandler(services.NewProjectService(projectRepo, workItemRepo))

	gin.SetMode(gin.TestMode)

	suite.router = gin.New()
	projects := suite.router.Group("/api/projects")
	{
		projects.GET("", handler.ListProjects)
		projects.POST("", handler.CreateProject)
		projects.GET("/:id", middleware.RequireProject(), handler.GetProject)
		projects.GET("/:id/gantt", middleware.RequireProject(), handler.GetGantt)
		projects.GET("/:id/items", middleware.RequireProject(), handler.ListWorkItems)
		projects.POST("/:id/items", middleware.RequireProject(), handler.CreateWorkItem)
	}
	items := suite.router.Group("/api/items")
	{
		items.PATCH("/:id", handler.UpdateWorkItem)
		items.DELETE("/:id", handler.DeleteWorkItem)
	}
}

// TearDownTest runs after each test
func (suite *ProjectHandlerTestSuite) TearDownTest() {
	sqlDB, err := suite.db.DB()
	suite.Require().NoError(err)
	sqlDB.Close()
}

func (suite *ProjectHandlerTestSuite) createTestProject(id, name string, deadline *time.Time, modules ...string) *models.Project {
	project := &models.Project{
		ID:       id,
		Name:     name,
		Status:   "in_progress",
		Progress: 40,
		Deadline: deadline,
	}
	project.SetModuleNames(modules)
	suite.db.Create(project)
	return project
}

func (suite *ProjectHandlerTestSuite) createTestItem(id, projectID, name, module string, priority models.WorkItemPriority, cost float64) *models.WorkItem {
	item := &models.WorkItem{
		ID:            id,
		ProjectID:     projectID,
		Name:          name,
		Module:        module,
		Priority:      priority,
		EstimatedCost: cost,
	}
	suite.db.Create(item)
	return item
}

func (suite *ProjectHandlerTestSuite) request(method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		suite.Require().NoError(json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *ProjectHandlerTestSuite) TestCreateProject() {
	w := suite.request(http.MethodPost, "/api/projects", gin.H{
		"name":    "Stand Messe Berlin",
		"modules": []string{"Frame", "Facade"},
	})

	suite.Equal(http.StatusCreated, w.Code)

	var resp struct {
		ID      string   `json:"id"`
		Name    string   `json:"name"`
		Modules []string `json:"modules"`
	}
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.NotEmpty(resp.ID)
	suite.Equal([]string{"Frame", "Facade"}, resp.Modules)
}

func (suite *ProjectHandlerTestSuite) TestGetProjectNotFound() {
	w := suite.request(http.MethodGet, "/api/projects/ghost", nil)
	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *ProjectHandlerTestSuite) TestCreateWorkItem() {
	suite.createTestProject("p1", "Stand", nil)

	w := suite.request(http.MethodPost, "/api/projects/p1/items", gin.H{
		"name":           "CNC cut side panels",
		"module":         "Frame",
		"priority":       "high",
		"estimated_cost": 420,
	})

	suite.Equal(http.StatusCreated, w.Code)

	var resp struct {
		ID       string `json:"id"`
		Priority string `json:"priority"`
	}
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.NotEmpty(resp.ID)
	suite.Equal("high", resp.Priority)
}

func (suite *ProjectHandlerTestSuite) TestGanttDerivesTree() {
	deadline := parseT("2025-04-09T00:00:00Z")
	project := suite.createTestProject("p1", "Stand", &deadline, "Frame", "Facade")
	start := parseT("2025-03-10T00:00:00Z")
	project.StartDate = &start
	suite.db.Save(project)

	suite.createTestItem("w1", "p1", "Cut panels", "Frame", models.PriorityHigh, 420)
	suite.createTestItem("w2", "p1", "Cladding", "Facade", models.PriorityUrgent, 1350)
	suite.createTestItem("w3", "p1", "Paperwork", "", models.PriorityLow, 50)

	w := suite.request(http.MethodGet, "/api/projects/p1/gantt", nil)
	suite.Equal(http.StatusOK, w.Code)

	var resp struct {
		Tasks []struct {
			ID       string `json:"id"`
			Type     string `json:"type"`
			Parent   string `json:"parent"`
			Duration int    `json:"duration"`
		} `json:"tasks"`
	}
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	// 1 project + 2 modules + 3 items
	suite.Require().Len(resp.Tasks, 6)

	byID := map[string]struct {
		ID       string `json:"id"`
		Type     string `json:"type"`
		Parent   string `json:"parent"`
		Duration int    `json:"duration"`
	}{}
	for _, task := range resp.Tasks {
		byID[task.ID] = task
	}

	root := byID["p1"]
	suite.Equal("project", root.Type)
	// 2025-03-10 to 2025-04-09 is 30 days
	suite.Equal(30, root.Duration)

	module := byID["p1-module-1"]
	suite.Equal("module", module.Type)
	suite.Equal("p1", module.Parent)
	suite.Equal(24, module.Duration)

	// Cost above 1000 dominates the priority heuristic
	cladding := byID["w2"]
	suite.Equal("task", cladding.Type)
	suite.Equal("p1-module-2", cladding.Parent)
	suite.Equal(10, cladding.Duration)

	// Items without a module attach to the first module
	paperwork := byID["w3"]
	suite.Equal("p1-module-1", paperwork.Parent)
	suite.Equal(7, paperwork.Duration)
}

func (suite *ProjectHandlerTestSuite) TestGanttWithoutModules() {
	suite.createTestProject("p1", "Stand", nil)
	suite.createTestItem("w1", "p1", "Cut panels", "", models.PriorityMedium, 0)

	w := suite.request(http.MethodGet, "/api/projects/p1/gantt", nil)
	suite.Equal(http.StatusOK, w.Code)

	var resp struct {
		Tasks []struct {
			ID     string `json:"id"`
			Parent string `json:"parent"`
		} `json:"tasks"`
	}
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Require().Len(resp.Tasks, 2)
	// Without modules the item hangs off the project root
	suite.Equal("p1", resp.Tasks[1].Parent)
}

func (suite *ProjectHandlerTestSuite) TestUpdateWorkItemDependencies() {
	suite.createTestProject("p1", "Stand", nil)
	suite.createTestItem("w1", "p1", "Cut panels", "Frame", models.PriorityHigh, 420)
	suite.createTestItem("w2", "p1", "Assemble", "Frame", models.PriorityMedium, 300)

	w := suite.request(http.MethodPatch, "/api/items/w2", gin.H{
		"dependencies": []string{"w1"},
	})
	suite.Equal(http.StatusOK, w.Code)

	var stored models.WorkItem
	suite.Require().NoError(suite.db.First(&stored, "id = ?", "w2").Error)
	suite.Equal([]string{"w1"}, stored.DependencyIDs())
}

func (suite *ProjectHandlerTestSuite) TestDeleteWorkItem() {
	suite.createTestProject("p1", "Stand", nil)
	suite.createTestItem("w1", "p1", "Cut panels", "Frame", models.PriorityHigh, 420)

	w := suite.request(http.MethodDelete, "/api/items/w1", nil)
	suite.Equal(http.StatusOK, w.Code)

	var count int64
	suite.db.Model(&models.WorkItem{}).Count(&count)
	suite.Equal(int64(0), count)
}

func TestProjectHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ProjectHandlerTestSuite))
}
