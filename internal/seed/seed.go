package seed

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/kamilarndt/fabmanage-api/internal/models"
)

// File is the top-level shape of a seed file. All sections are optional.
type File struct {
	Resources []resourceSeed `yaml:"resources"`
	Events    []eventSeed    `yaml:"events"`
	Projects  []projectSeed  `yaml:"projects"`
}

type resourceSeed struct {
	ID       string `yaml:"id"`
	Title    string `yaml:"title"`
	Color    string `yaml:"color"`
	Category string `yaml:"category"`
}

type eventSeed struct {
	ID         string    `yaml:"id"`
	Title      string    `yaml:"title"`
	Start      time.Time `yaml:"start"`
	End        time.Time `yaml:"end"`
	AllDay     bool      `yaml:"all_day"`
	ResourceID *string   `yaml:"resource_id"`
	Phase      *string   `yaml:"phase"`
	TileID     *string   `yaml:"tile_id"`
	ProjectID  *string   `yaml:"project_id"`
}

type projectSeed struct {
	ID        string         `yaml:"id"`
	Name      string         `yaml:"name"`
	Status    string         `yaml:"status"`
	Progress  int            `yaml:"progress"`
	StartDate *time.Time     `yaml:"start_date"`
	Deadline  *time.Time     `yaml:"deadline"`
	Modules   []string       `yaml:"modules"`
	WorkItems []workItemSeed `yaml:"work_items"`
}

type workItemSeed struct {
	ID            string     `yaml:"id"`
	Name          string     `yaml:"name"`
	Module        string     `yaml:"module"`
	Priority      string     `yaml:"priority"`
	Status        string     `yaml:"status"`
	EstimatedCost float64    `yaml:"estimated_cost"`
	DueDate       *time.Time `yaml:"due_date"`
	Dependencies  []string   `yaml:"dependencies"`
}

// Load parses a seed file and upserts its records. Seeding is idempotent:
// records are matched by id, so re-running against a populated database
// refreshes rather than duplicates.
func Load(db *gorm.DB, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read seed file: %w", err)
	}

	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("failed to parse seed file: %w", err)
	}

	return Apply(db, &file)
}

// Apply upserts the records of an already parsed seed file.
func Apply(db *gorm.DB, file *File) error {
	for _, r := range file.Resources {
		resource := models.Resource{
			ID:       r.ID,
			Title:    r.Title,
			Color:    r.Color,
			Category: models.ResourceCategory(r.Category),
		}
		if !models.ValidResourceCategory(resource.Category) {
			return fmt.Errorf("resource %q: unknown category %q", r.ID, r.Category)
		}
		if err := upsert(db, &resource); err != nil {
			return fmt.Errorf("resource %q: %w", r.ID, err)
		}
	}

	for _, p := range file.Projects {
		project := models.Project{
			ID:        p.ID,
			Name:      p.Name,
			Status:    p.Status,
			Progress:  p.Progress,
			StartDate: p.StartDate,
			Deadline:  p.Deadline,
		}
		project.SetModuleNames(p.Modules)
		if err := upsert(db, &project); err != nil {
			return fmt.Errorf("project %q: %w", p.ID, err)
		}

		for _, w := range p.WorkItems {
			item := models.WorkItem{
				ID:            w.ID,
				ProjectID:     p.ID,
				Name:          w.Name,
				Module:        w.Module,
				Priority:      models.WorkItemPriority(w.Priority),
				Status:        w.Status,
				EstimatedCost: w.EstimatedCost,
				DueDate:       w.DueDate,
			}
			if item.Priority == "" {
				item.Priority = models.PriorityMedium
			}
			if !models.ValidWorkItemPriority(item.Priority) {
				return fmt.Errorf("work item %q: unknown priority %q", w.ID, w.Priority)
			}
			item.SetDependencyIDs(w.Dependencies)
			if err := upsert(db, &item); err != nil {
				return fmt.Errorf("work item %q: %w", w.ID, err)
			}
		}
	}

	for _, e := range file.Events {
		if !e.Start.Before(e.End) {
			return fmt.Errorf("event %q: start must be before end", e.ID)
		}
		event := models.Event{
			ID:         e.ID,
			Title:      e.Title,
			Start:      e.Start,
			End:        e.End,
			AllDay:     e.AllDay,
			ResourceID: e.ResourceID,
			TileID:     e.TileID,
			ProjectID:  e.ProjectID,
		}
		if e.Phase != nil {
			phase := models.EventPhase(*e.Phase)
			if !models.ValidEventPhase(phase) {
				return fmt.Errorf("event %q: unknown phase %q", e.ID, *e.Phase)
			}
			event.Phase = &phase
		}
		if err := upsert(db, &event); err != nil {
			return fmt.Errorf("event %q: %w", e.ID, err)
		}
	}

	return nil
}

func upsert(db *gorm.DB, record any) error {
	return db.Clauses(clause.OnConflict{UpdateAll: true}).Create(record).Error
}
