package schedule

import (
	"testing"

	"github.com/kamilarndt/fabmanage-api/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestSelectors(t *testing.T) {
	events := []models.Event{
		projectEvent("a", "r1", "p1", 9, 10),
		projectEvent("b", "r2", "p1", 10, 11),
		projectEvent("c", "r1", "p2", 11, 12),
		projectEvent("d", "ghost", "", 12, 13),
	}
	resources := testResources()

	byProject := EventsByProject(events, "p1")
	assert.Len(t, byProject, 2)

	byResource := EventsByResource(events, "r1")
	assert.Len(t, byResource, 2)

	designers := EventsByCategory(events, resources, models.CategoryDesigner)
	assert.Len(t, designers, 2)

	teams := ResourcesByCategory(resources, models.CategoryTeam)
	assert.Len(t, teams, 1)
	assert.Equal(t, "r2", teams[0].ID)
}
