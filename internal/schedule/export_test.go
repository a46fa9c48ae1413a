package schedule

import (
	"strings"
	"testing"
	"time"

	"github.com/kamilarndt/fabmanage-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportWeek_OnlyEventsFullyInsideWeek(t *testing.T) {
	weekStart, _ := WeekWindow(day)
	events := []models.Event{
		eventOn("inside", "r1", at(9, 0), at(11, 0)),
		eventOn("straddles", "r1", weekStart.Add(-2*time.Hour), weekStart.Add(2*time.Hour)),
	}

	out := ExportWeek(events, testResources(), weekStart, "")

	assert.Contains(t, out, "inside")
	assert.NotContains(t, out, "straddles")
}

func TestExportWeek_FilterByResource(t *testing.T) {
	weekStart, _ := WeekWindow(day)
	events := []models.Event{
		eventOn("mine", "r1", at(9, 0), at(11, 0)),
		eventOn("theirs", "r2", at(9, 0), at(11, 0)),
	}

	out := ExportWeek(events, testResources(), weekStart, "r1")

	assert.Contains(t, out, "mine")
	assert.NotContains(t, out, "theirs")
}

func TestExportWeek_LineFormat(t *testing.T) {
	weekStart, _ := WeekWindow(day)
	events := []models.Event{eventOn("Cutting", "r1", at(9, 0), at(11, 0))}

	out := ExportWeek(events, testResources(), weekStart, "")

	lines := strings.Split(out, "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "Weekly schedule", lines[0])
	assert.Empty(t, lines[1])
	assert.Equal(t, "2025-03-10 09:00 - 2025-03-10 11:00 | Cutting | Anna", lines[2])
}

func TestExportWeek_EventsSortedByStart(t *testing.T) {
	weekStart, _ := WeekWindow(day)
	events := []models.Event{
		eventOn("later", "r1", at(14, 0), at(15, 0)),
		eventOn("earlier", "r1", at(9, 0), at(10, 0)),
	}

	out := ExportWeek(events, testResources(), weekStart, "")

	assert.Less(t, strings.Index(out, "earlier"), strings.Index(out, "later"))
}
