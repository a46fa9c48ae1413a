package constants

// Pagination
const (
	MinPageSize     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// Scheduling defaults
const (
	DefaultCapacityHours = 40
	DefaultWorkdayStart  = "09:00"
	DefaultWorkdayEnd    = "17:00"
	DefaultSlotMinutes   = 30
)
