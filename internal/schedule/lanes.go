package schedule

import (
	"sort"

	"github.com/kamilarndt/fabmanage-api/internal/models"
)

type LaneDimension string

const (
	LaneByResource LaneDimension = "resource"
	LaneByCategory LaneDimension = "category"
	LaneByProject  LaneDimension = "project"
)

// UnknownLaneID buckets events lacking the grouping field when lanes are
// derived dynamically.
const UnknownLaneID = "unknown"

// Lane is one presentation bucket of the event set, rendered as an
// independent mini-timeline. Events are sorted by start and carry conflict
// flags; conflict always means "same resource, overlapping time" regardless
// of the lane dimension.
type Lane struct {
	ID     string           `json:"id"`
	Label  string           `json:"label"`
	Events []AnnotatedEvent `json:"events"`
}

// GroupIntoLanes partitions events along the chosen dimension. For the
// resource dimension, category narrows the lane set to resources of that
// category ("" keeps all); one lane is emitted per resource even when empty.
// For the project dimension, lanes are derived from the distinct project ids
// observed on the events, with an UnknownLaneID bucket for events lacking one.
func GroupIntoLanes(events []models.Event, resources []models.Resource, dim LaneDimension, category models.ResourceCategory) []Lane {
	switch dim {
	case LaneByCategory:
		return lanesByCategory(events, resources)
	case LaneByProject:
		return lanesByProject(events)
	default:
		return lanesByResource(events, resources, category)
	}
}

func lanesByResource(events []models.Event, resources []models.Resource, category models.ResourceCategory) []Lane {
	lanes := make([]Lane, 0, len(resources))
	for _, r := range resources {
		if category != "" && r.Category != category {
			continue
		}
		var scoped []models.Event
		for _, e := range events {
			if e.ResourceID != nil && *e.ResourceID == r.ID {
				scoped = append(scoped, e)
			}
		}
		lanes = append(lanes, Lane{ID: r.ID, Label: r.Title, Events: laneEvents(scoped)})
	}
	return lanes
}

func lanesByCategory(events []models.Event, resources []models.Resource) []Lane {
	categoryOf := make(map[string]models.ResourceCategory, len(resources))
	for _, r := range resources {
		categoryOf[r.ID] = r.Category
	}

	grouped := make(map[models.ResourceCategory][]models.Event)
	for _, e := range events {
		if e.ResourceID == nil {
			continue
		}
		cat, ok := categoryOf[*e.ResourceID]
		if !ok {
			continue
		}
		grouped[cat] = append(grouped[cat], e)
	}

	lanes := make([]Lane, 0, len(grouped))
	for cat, scoped := range grouped {
		lanes = append(lanes, Lane{ID: string(cat), Label: string(cat), Events: laneEvents(scoped)})
	}
	sort.Slice(lanes, func(i, j int) bool { return lanes[i].ID < lanes[j].ID })
	return lanes
}

func lanesByProject(events []models.Event) []Lane {
	grouped := make(map[string][]models.Event)
	for _, e := range events {
		id := UnknownLaneID
		if e.ProjectID != nil && *e.ProjectID != "" {
			id = *e.ProjectID
		}
		grouped[id] = append(grouped[id], e)
	}

	lanes := make([]Lane, 0, len(grouped))
	for id, scoped := range grouped {
		lanes = append(lanes, Lane{ID: id, Label: id, Events: laneEvents(scoped)})
	}
	sort.Slice(lanes, func(i, j int) bool {
		// Keep the unknown bucket last.
		if lanes[i].ID == UnknownLaneID {
			return false
		}
		if lanes[j].ID == UnknownLaneID {
			return true
		}
		return lanes[i].ID < lanes[j].ID
	})
	return lanes
}

func laneEvents(scoped []models.Event) []AnnotatedEvent {
	annotated := MarkConflicts(scoped)
	sort.SliceStable(annotated, func(i, j int) bool {
		return annotated[i].Start.Before(annotated[j].Start)
	})
	return annotated
}
