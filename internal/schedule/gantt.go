package schedule

import (
	"fmt"
	"sort"
	"time"

	"github.com/kamilarndt/fabmanage-api/internal/models"
)

type TaskNodeType string

const (
	NodeProject TaskNodeType = "project"
	NodeModule  TaskNodeType = "module"
	NodeTask    TaskNodeType = "task"
)

// TaskNode is one entry of the derived Gantt tree. It is a read-side
// projection recomputed on demand and never persisted.
type TaskNode struct {
	ID           string       `json:"id"`
	Text         string       `json:"text"`
	StartDate    time.Time    `json:"start_date"`
	Duration     int          `json:"duration"`
	Progress     int          `json:"progress"`
	Parent       string       `json:"parent,omitempty"`
	Type         TaskNodeType `json:"type"`
	Status       string       `json:"status,omitempty"`
	Dependencies []string     `json:"dependencies,omitempty"`
}

// Duration heuristics for work items, in days. The cost rule dominates the
// priority rules when both apply.
const (
	defaultProjectDays = 30
	urgentItemDays     = 3
	baselineItemDays   = 5
	lowPriorityDays    = 7
	costlyItemDays     = 10
	costThreshold      = 1000.0
)

// DeriveTasks builds the three-level task tree (project, module, item) for
// Gantt display. A nil project yields an empty tree; absent dates and
// durations fall back to defaults rather than failing.
func DeriveTasks(project *models.Project, items []models.WorkItem) []TaskNode {
	if project == nil {
		return []TaskNode{}
	}

	start := projectStart(project)

	rootDuration := defaultProjectDays
	if project.Deadline != nil {
		rootDuration = daysBetween(start, *project.Deadline)
		if rootDuration < 1 {
			rootDuration = 1
		}
	}

	root := TaskNode{
		ID:        project.ID,
		Text:      project.Name,
		StartDate: start,
		Duration:  rootDuration,
		Progress:  project.Progress,
		Type:      NodeProject,
		Status:    project.Status,
	}
	nodes := []TaskNode{root}

	// Modules begin with the project and finish somewhat before the deadline.
	moduleDuration := rootDuration * 8 / 10
	if moduleDuration < 1 {
		moduleDuration = 1
	}
	moduleIDs := make(map[string]string)
	var firstModuleID string
	for i, name := range project.ModuleNames() {
		id := fmt.Sprintf("%s-module-%d", project.ID, i+1)
		if firstModuleID == "" {
			firstModuleID = id
		}
		moduleIDs[name] = id
		nodes = append(nodes, TaskNode{
			ID:        id,
			Text:      name,
			StartDate: start,
			Duration:  moduleDuration,
			Parent:    root.ID,
			Type:      NodeModule,
		})
	}

	// Sorting by due date gives a stable, readable ordering only; it does
	// not affect computed dates.
	sorted := make([]models.WorkItem, len(items))
	copy(sorted, items)
	sort.SliceStable(sorted, func(i, j int) bool {
		return itemDue(sorted[i], start).Before(itemDue(sorted[j], start))
	})

	for _, item := range sorted {
		parent := root.ID
		if id, ok := moduleIDs[item.Module]; ok {
			parent = id
		} else if firstModuleID != "" {
			parent = firstModuleID
		}
		nodes = append(nodes, TaskNode{
			ID:           item.ID,
			Text:         item.Name,
			StartDate:    itemDue(item, start),
			Duration:     itemDuration(item),
			Parent:       parent,
			Type:         NodeTask,
			Status:       item.Status,
			Dependencies: item.DependencyIDs(),
		})
	}

	return nodes
}

func projectStart(project *models.Project) time.Time {
	if project.StartDate != nil {
		return *project.StartDate
	}
	if !project.CreatedAt.IsZero() {
		return project.CreatedAt
	}
	return time.Now()
}

func itemDue(item models.WorkItem, projectStart time.Time) time.Time {
	if item.DueDate != nil {
		return *item.DueDate
	}
	return projectStart
}

func itemDuration(item models.WorkItem) int {
	days := baselineItemDays
	switch item.Priority {
	case models.PriorityHigh, models.PriorityUrgent:
		days = urgentItemDays
	case models.PriorityLow:
		days = lowPriorityDays
	}
	if item.EstimatedCost > costThreshold && days < costlyItemDays {
		days = costlyItemDays
	}
	return days
}

func daysBetween(from, to time.Time) int {
	return int(to.Sub(from).Hours() / 24)
}
