package seed

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/kamilarndt/fabmanage-api/internal/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.Resource{},
		&models.Event{},
		&models.Project{},
		&models.WorkItem{},
	))
	return db
}

func TestLoadSeedFile(t *testing.T) {
	db := newTestDB(t)

	err := Load(db, filepath.Join("testdata", "seed.yaml"))
	require.NoError(t, err)

	var resources []models.Resource
	require.NoError(t, db.Find(&resources).Error)
	assert.Len(t, resources, 2)

	var events []models.Event
	require.NoError(t, db.Find(&events).Error)
	require.Len(t, events, 2)

	var project models.Project
	require.NoError(t, db.Preload("WorkItems").First(&project, "id = ?", "p1").Error)
	assert.Equal(t, "Stand Messe Berlin", project.Name)
	assert.Equal(t, []string{"Frame", "Facade"}, project.ModuleNames())
	require.Len(t, project.WorkItems, 2)

	var item models.WorkItem
	require.NoError(t, db.First(&item, "id = ?", "w2").Error)
	assert.Equal(t, models.PriorityUrgent, item.Priority)
	assert.Equal(t, []string{"w1"}, item.DependencyIDs())
}

func TestLoadIsIdempotent(t *testing.T) {
	db := newTestDB(t)

	path := filepath.Join("testdata", "seed.yaml")
	require.NoError(t, Load(db, path))
	require.NoError(t, Load(db, path))

	var count int64
	require.NoError(t, db.Model(&models.Resource{}).Count(&count).Error)
	assert.Equal(t, int64(2), count)
}

func TestLoadMissingFile(t *testing.T) {
	db := newTestDB(t)

	err := Load(db, filepath.Join("testdata", "absent.yaml"))
	assert.Error(t, err)
}

func TestApplyRejectsBadCategory(t *testing.T) {
	db := newTestDB(t)

	err := Apply(db, &File{
		Resources: []resourceSeed{{ID: "r1", Title: "Anna", Category: "manager"}},
	})
	assert.ErrorContains(t, err, "unknown category")
}

func TestApplyRejectsInvertedInterval(t *testing.T) {
	db := newTestDB(t)

	file := &File{}
	start := mustParse(t, "2025-03-10T12:00:00Z")
	end := mustParse(t, "2025-03-10T09:00:00Z")
	file.Events = []eventSeed{{ID: "e1", Title: "Bad", Start: start, End: end}}

	err := Apply(db, file)
	assert.ErrorContains(t, err, "start must be before end")
}

func mustParse(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.Parse(time.RFC3339, value)
	require.NoError(t, err)
	return parsed
}
