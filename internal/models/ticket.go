package models

// Ticket statuses.
const (
	StatusOpen       = "open"
	StatusInProgress = "in_progress"
	StatusClosed     = "closed"
)

// Ticket priorities.
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

// TimeLayout is the storage format for ticket timestamps (second resolution).
const TimeLayout = "2006-01-02 15:04:05"

// Ticket is the sole persisted entity. Timestamps are kept as formatted
// strings so the on-disk document round-trips unchanged.
type Ticket struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Status      string `json:"status"`
	Priority    string `json:"priority"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}

// Stats aggregates the collection by status. Resolved is a backward-compatible
// alias of Closed.
type Stats struct {
	Total      int `json:"total"`
	Open       int `json:"open"`
	InProgress int `json:"in_progress"`
	Closed     int `json:"closed"`
	Resolved   int `json:"resolved"`
}
