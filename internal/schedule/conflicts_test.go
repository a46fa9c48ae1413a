package schedule

import (
	"testing"
	"time"

	"github.com/kamilarndt/fabmanage-api/internal/models"
	"github.com/stretchr/testify/assert"
)

var day = time.Date(2025, 3, 10, 0, 0, 0, 0, time.Local) // a Monday

func at(hour, min int) time.Time {
	return day.Add(time.Duration(hour)*time.Hour + time.Duration(min)*time.Minute)
}

func eventOn(id, resourceID string, start, end time.Time) models.Event {
	e := models.Event{ID: id, Title: id, Start: start, End: end}
	if resourceID != "" {
		e.ResourceID = &resourceID
	}
	return e
}

func TestMarkConflicts_OverlappingPairFlagged(t *testing.T) {
	events := []models.Event{
		eventOn("a", "r1", at(9, 0), at(11, 0)),
		eventOn("b", "r1", at(10, 0), at(12, 0)),
		eventOn("c", "r1", at(12, 0), at(13, 0)), // touches b, no overlap
	}

	annotated := MarkConflicts(events)

	assert.True(t, annotated[0].Conflict)
	assert.True(t, annotated[1].Conflict)
	assert.False(t, annotated[2].Conflict)
}

func TestMarkConflicts_TouchingBoundaryNotConflicting(t *testing.T) {
	events := []models.Event{
		eventOn("a", "r1", at(9, 0), at(10, 0)),
		eventOn("b", "r1", at(10, 0), at(11, 0)),
	}

	assert.False(t, HasConflicts(events))
}

func TestMarkConflicts_ContainedEventFlagged(t *testing.T) {
	// b sits entirely inside a; a later event that clears a must not stop
	// the sweep from flagging b.
	events := []models.Event{
		eventOn("a", "r1", at(9, 0), at(17, 0)),
		eventOn("b", "r1", at(10, 0), at(11, 0)),
		eventOn("c", "r1", at(12, 0), at(13, 0)),
	}

	annotated := MarkConflicts(events)

	for _, e := range annotated {
		assert.True(t, e.Conflict, "event %s should be flagged", e.ID)
	}
}

func TestMarkConflicts_DifferentResourcesNeverConflict(t *testing.T) {
	events := []models.Event{
		eventOn("a", "r1", at(9, 0), at(11, 0)),
		eventOn("b", "r2", at(10, 0), at(12, 0)),
	}

	assert.False(t, HasConflicts(events))
}

func TestMarkConflicts_UnassignedEventsExempt(t *testing.T) {
	events := []models.Event{
		eventOn("a", "", at(9, 0), at(11, 0)),
		eventOn("b", "", at(10, 0), at(12, 0)),
	}

	assert.False(t, HasConflicts(events))
}

func TestMarkConflicts_EmptyAndSingle(t *testing.T) {
	assert.False(t, HasConflicts(nil))
	assert.False(t, HasConflicts([]models.Event{eventOn("a", "r1", at(9, 0), at(10, 0))}))
}

func TestResourcesWithConflicts(t *testing.T) {
	events := []models.Event{
		eventOn("a", "r1", at(9, 0), at(11, 0)),
		eventOn("b", "r1", at(10, 0), at(12, 0)),
		eventOn("c", "r2", at(9, 0), at(10, 0)),
	}

	ids := ResourcesWithConflicts(events)

	assert.Equal(t, []string{"r1"}, ids)
}
