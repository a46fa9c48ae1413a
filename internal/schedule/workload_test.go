package schedule

import (
	"testing"
	"time"

	"github.com/kamilarndt/fabmanage-api/internal/models"
	"github.com/stretchr/testify/assert"
)

func testResources() []models.Resource {
	return []models.Resource{
		{ID: "r1", Title: "Anna", Category: models.CategoryDesigner},
		{ID: "r2", Title: "Team A", Category: models.CategoryTeam},
	}
}

func TestWeekWindow_StartsMonday(t *testing.T) {
	// 2025-03-12 is a Wednesday.
	wed := time.Date(2025, 3, 12, 15, 30, 0, 0, time.Local)

	start, end := WeekWindow(wed)

	assert.Equal(t, time.Date(2025, 3, 10, 0, 0, 0, 0, time.Local), start)
	assert.Equal(t, time.Date(2025, 3, 17, 0, 0, 0, 0, time.Local), end)
	assert.Equal(t, time.Monday, start.Weekday())
}

func TestWeekWindow_SundayBelongsToPrecedingWeek(t *testing.T) {
	sun := time.Date(2025, 3, 16, 10, 0, 0, 0, time.Local)

	start, _ := WeekWindow(sun)

	assert.Equal(t, time.Date(2025, 3, 10, 0, 0, 0, 0, time.Local), start)
}

func TestComputeWorkload_ClipsToWindow(t *testing.T) {
	winStart, winEnd := WeekWindow(day)
	// Sunday 22:00 through Monday 02:00: only 2 hours fall inside the week.
	events := []models.Event{
		eventOn("a", "r1", winStart.Add(-2*time.Hour), winStart.Add(2*time.Hour)),
	}

	workload := ComputeWorkload(events, testResources(), winStart, winEnd, WorkloadOptions{})

	assert.InDelta(t, 2.0, workload["r1"].Hours, 1e-9)
	assert.Equal(t, 1, workload["r1"].EventCount)
}

func TestComputeWorkload_ExcludesEventsOutsideWindow(t *testing.T) {
	winStart, winEnd := WeekWindow(day)
	events := []models.Event{
		eventOn("a", "r1", winStart.AddDate(0, 0, -3), winStart.AddDate(0, 0, -2)),
		eventOn("b", "r1", winEnd, winEnd.Add(2*time.Hour)), // starts exactly at window end
	}

	workload := ComputeWorkload(events, testResources(), winStart, winEnd, WorkloadOptions{})

	assert.Zero(t, workload["r1"].Hours)
	assert.Zero(t, workload["r1"].EventCount)
}

func TestComputeWorkload_PercentOfCapacity(t *testing.T) {
	winStart, winEnd := WeekWindow(day)
	events := []models.Event{
		eventOn("a", "r1", at(9, 0), at(17, 0)),  // 8h
		eventOn("b", "r1", at(17, 0), at(21, 0)), // 4h
	}

	workload := ComputeWorkload(events, testResources(), winStart, winEnd, WorkloadOptions{})

	assert.InDelta(t, 12.0, workload["r1"].Hours, 1e-9)
	assert.Equal(t, 30, workload["r1"].Percent) // 12/40
}

func TestComputeWorkload_OvercommitFlag(t *testing.T) {
	winStart, winEnd := WeekWindow(day)
	events := []models.Event{
		eventOn("a", "r1", winStart, winStart.Add(50*time.Hour)),
	}

	capped := ComputeWorkload(events, testResources(), winStart, winEnd, WorkloadOptions{})
	assert.Equal(t, 100, capped["r1"].Percent)

	open := ComputeWorkload(events, testResources(), winStart, winEnd, WorkloadOptions{AllowOvercommit: true})
	assert.Equal(t, 125, open["r1"].Percent)
}

func TestComputeWorkload_DanglingResourceExcluded(t *testing.T) {
	winStart, winEnd := WeekWindow(day)
	events := []models.Event{
		eventOn("a", "ghost", at(9, 0), at(11, 0)),
		eventOn("b", "", at(9, 0), at(11, 0)),
	}

	workload := ComputeWorkload(events, testResources(), winStart, winEnd, WorkloadOptions{})

	_, exists := workload["ghost"]
	assert.False(t, exists)
	assert.Zero(t, workload["r1"].Hours)
}

func TestComputeWorkload_CustomCapacity(t *testing.T) {
	winStart, winEnd := WeekWindow(day)
	events := []models.Event{
		eventOn("a", "r1", at(9, 0), at(13, 0)), // 4h
	}

	workload := ComputeWorkload(events, testResources(), winStart, winEnd, WorkloadOptions{CapacityHours: 8})

	assert.Equal(t, 50, workload["r1"].Percent)
}
