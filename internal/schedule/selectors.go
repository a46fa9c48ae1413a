package schedule

import "github.com/kamilarndt/fabmanage-api/internal/models"

// EventsByProject returns the events linked to the given project id.
func EventsByProject(events []models.Event, projectID string) []models.Event {
	var out []models.Event
	for _, e := range events {
		if e.ProjectID != nil && *e.ProjectID == projectID {
			out = append(out, e)
		}
	}
	return out
}

// EventsByResource returns the events assigned to the given resource id.
func EventsByResource(events []models.Event, resourceID string) []models.Event {
	var out []models.Event
	for _, e := range events {
		if e.ResourceID != nil && *e.ResourceID == resourceID {
			out = append(out, e)
		}
	}
	return out
}

// EventsByCategory returns the events whose resource belongs to the given
// category. Events with a dangling or absent resource are excluded.
func EventsByCategory(events []models.Event, resources []models.Resource, category models.ResourceCategory) []models.Event {
	categoryOf := make(map[string]models.ResourceCategory, len(resources))
	for _, r := range resources {
		categoryOf[r.ID] = r.Category
	}
	var out []models.Event
	for _, e := range events {
		if e.ResourceID == nil {
			continue
		}
		if categoryOf[*e.ResourceID] == category {
			out = append(out, e)
		}
	}
	return out
}

// ResourcesByCategory returns the resources of the given category.
func ResourcesByCategory(resources []models.Resource, category models.ResourceCategory) []models.Resource {
	var out []models.Resource
	for _, r := range resources {
		if r.Category == category {
			out = append(out, r)
		}
	}
	return out
}
