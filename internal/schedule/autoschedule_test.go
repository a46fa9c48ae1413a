package schedule

import (
	"testing"
	"time"

	"github.com/kamilarndt/fabmanage-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAutoSchedule_PlacesFromWorkdayStart(t *testing.T) {
	store := NewStore()

	created := store.AutoSchedule(AutoScheduleOptions{ResourceID: "r1", Now: day}, []TaskDraft{
		{Title: "Design review", DurationHours: 1},
	})

	require.Len(t, created, 2) // two 30-minute blocks
	assert.Equal(t, at(9, 0), created[0].Start)
	assert.Equal(t, at(9, 30), created[0].End)
	assert.Equal(t, at(9, 30), created[1].Start)
	assert.Len(t, store.Events(), 2)
	assert.False(t, HasConflicts(store.Events()))
}

func TestAutoSchedule_SkipsOccupiedSlots(t *testing.T) {
	store := NewStore()
	store.SetEvents([]models.Event{eventOn("busy", "r1", at(9, 0), at(10, 0))})

	created := store.AutoSchedule(AutoScheduleOptions{ResourceID: "r1", Now: day}, []TaskDraft{
		{Title: "Follow-up", DurationHours: 0.5},
	})

	require.Len(t, created, 1)
	assert.Equal(t, at(10, 0), created[0].Start)
	assert.False(t, HasConflicts(store.Events()))
}

func TestAutoSchedule_OtherResourceDoesNotBlock(t *testing.T) {
	store := NewStore()
	store.SetEvents([]models.Event{eventOn("busy", "r2", at(9, 0), at(17, 0))})

	created := store.AutoSchedule(AutoScheduleOptions{ResourceID: "r1", Now: day}, []TaskDraft{
		{Title: "Work", DurationHours: 0.5},
	})

	require.Len(t, created, 1)
	assert.Equal(t, at(9, 0), created[0].Start)
}

func TestAutoSchedule_SpillsIntoNextDay(t *testing.T) {
	store := NewStore()
	// Occupy the whole workday.
	store.SetEvents([]models.Event{eventOn("busy", "r1", at(9, 0), at(17, 0))})

	created := store.AutoSchedule(AutoScheduleOptions{ResourceID: "r1", Now: day}, []TaskDraft{
		{Title: "Overflow", DurationHours: 0.5},
	})

	require.Len(t, created, 1)
	nextDay := day.AddDate(0, 0, 1)
	assert.Equal(t, nextDay.Add(9*time.Hour), created[0].Start)
}

func TestAutoSchedule_CarriesDraftMetadata(t *testing.T) {
	store := NewStore()
	phase := models.PhaseDesign
	tile := "tile-7"
	project := "p1"

	created := store.AutoSchedule(AutoScheduleOptions{ResourceID: "r1", Now: day}, []TaskDraft{
		{Title: "Tile design", DurationHours: 0.5, Phase: &phase, TileID: &tile, ProjectID: &project},
	})

	require.Len(t, created, 1)
	e := created[0]
	require.NotNil(t, e.ResourceID)
	assert.Equal(t, "r1", *e.ResourceID)
	assert.Equal(t, models.PhaseDesign, *e.Phase)
	assert.Equal(t, "tile-7", *e.TileID)
	assert.Equal(t, "p1", *e.ProjectID)
}

func TestAutoSchedule_CustomWorkdayAndSlot(t *testing.T) {
	store := NewStore()

	created := store.AutoSchedule(AutoScheduleOptions{
		ResourceID:  "r1",
		DayStart:    "08:00",
		DayEnd:      "12:00",
		SlotMinutes: 60,
		Now:         day,
	}, []TaskDraft{{Title: "Morning shift", DurationHours: 2}})

	require.Len(t, created, 2)
	assert.Equal(t, at(8, 0), created[0].Start)
	assert.Equal(t, at(9, 0), created[0].End)
}
