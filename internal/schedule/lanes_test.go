package schedule

import (
	"testing"

	"github.com/kamilarndt/fabmanage-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func projectEvent(id, resourceID, projectID string, startHour, endHour int) models.Event {
	e := eventOn(id, resourceID, at(startHour, 0), at(endHour, 0))
	if projectID != "" {
		e.ProjectID = &projectID
	}
	return e
}

func TestGroupIntoLanes_ByResourceFiltersCategory(t *testing.T) {
	resources := testResources() // r1 designer, r2 team
	events := []models.Event{
		eventOn("a", "r1", at(9, 0), at(11, 0)),
		eventOn("b", "r2", at(9, 0), at(11, 0)),
	}

	lanes := GroupIntoLanes(events, resources, LaneByResource, models.CategoryDesigner)

	require.Len(t, lanes, 1)
	assert.Equal(t, "r1", lanes[0].ID)
	assert.Equal(t, "Anna", lanes[0].Label)
	require.Len(t, lanes[0].Events, 1)
	assert.Equal(t, "a", lanes[0].Events[0].ID)
}

func TestGroupIntoLanes_EmptyResourceLaneStillEmitted(t *testing.T) {
	lanes := GroupIntoLanes(nil, testResources(), LaneByResource, "")

	require.Len(t, lanes, 2)
	assert.Empty(t, lanes[0].Events)
}

func TestGroupIntoLanes_ByProjectWithUnknownBucket(t *testing.T) {
	events := []models.Event{
		projectEvent("a", "r1", "p1", 9, 11),
		projectEvent("b", "r1", "p2", 11, 12),
		projectEvent("c", "r1", "", 13, 14),
	}

	lanes := GroupIntoLanes(events, testResources(), LaneByProject, "")

	require.Len(t, lanes, 3)
	assert.Equal(t, "p1", lanes[0].ID)
	assert.Equal(t, "p2", lanes[1].ID)
	assert.Equal(t, UnknownLaneID, lanes[2].ID)
}

func TestGroupIntoLanes_ProjectLaneConflictsAreResourceScoped(t *testing.T) {
	// Same project, overlapping time, different resources: not a conflict.
	events := []models.Event{
		projectEvent("a", "r1", "p1", 9, 11),
		projectEvent("b", "r2", "p1", 10, 12),
		// Same resource, overlapping time: conflict, even within one lane.
		projectEvent("c", "r1", "p1", 10, 12),
	}

	lanes := GroupIntoLanes(events, testResources(), LaneByProject, "")

	require.Len(t, lanes, 1)
	flagged := map[string]bool{}
	for _, e := range lanes[0].Events {
		flagged[e.ID] = e.Conflict
	}
	assert.True(t, flagged["a"])
	assert.True(t, flagged["c"])
	assert.False(t, flagged["b"])
}

func TestGroupIntoLanes_ByCategory(t *testing.T) {
	events := []models.Event{
		eventOn("a", "r1", at(9, 0), at(11, 0)),
		eventOn("b", "r2", at(9, 0), at(11, 0)),
		eventOn("c", "ghost", at(9, 0), at(11, 0)), // dangling, excluded
	}

	lanes := GroupIntoLanes(events, testResources(), LaneByCategory, "")

	require.Len(t, lanes, 2)
	assert.Equal(t, string(models.CategoryDesigner), lanes[0].ID)
	assert.Equal(t, string(models.CategoryTeam), lanes[1].ID)
}

func TestGroupIntoLanes_EventsSortedByStart(t *testing.T) {
	events := []models.Event{
		eventOn("late", "r1", at(14, 0), at(15, 0)),
		eventOn("early", "r1", at(9, 0), at(10, 0)),
	}

	lanes := GroupIntoLanes(events, testResources(), LaneByResource, models.CategoryDesigner)

	require.Len(t, lanes, 1)
	require.Len(t, lanes[0].Events, 2)
	assert.Equal(t, "early", lanes[0].Events[0].ID)
}
