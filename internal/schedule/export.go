package schedule

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/kamilarndt/fabmanage-api/internal/models"
)

// ExportWeek renders the events falling entirely within the week starting at
// weekStart as a plain-text document, one line per event. A non-empty
// resourceID narrows the export to that resource.
func ExportWeek(events []models.Event, resources []models.Resource, weekStart time.Time, resourceID string) string {
	weekEnd := weekStart.AddDate(0, 0, 7)

	titleOf := make(map[string]string, len(resources))
	for _, r := range resources {
		titleOf[r.ID] = r.Title
	}

	var selected []models.Event
	for _, e := range events {
		if e.Start.Before(weekStart) || e.End.After(weekEnd) {
			continue
		}
		if resourceID != "" && (e.ResourceID == nil || *e.ResourceID != resourceID) {
			continue
		}
		selected = append(selected, e)
	}
	sort.SliceStable(selected, func(i, j int) bool {
		return selected[i].Start.Before(selected[j].Start)
	})

	lines := []string{"Weekly schedule", ""}
	for _, e := range selected {
		resourceTitle := ""
		if e.ResourceID != nil {
			resourceTitle = titleOf[*e.ResourceID]
		}
		lines = append(lines, fmt.Sprintf("%s - %s | %s | %s",
			e.Start.Format("2006-01-02 15:04"),
			e.End.Format("2006-01-02 15:04"),
			e.Title,
			resourceTitle,
		))
	}
	return strings.Join(lines, "\n")
}
