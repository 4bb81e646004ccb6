package models

import (
	"time"
)

// ActivityKind names the dashboard action that produced an activity entry
type ActivityKind string

const (
	ActivityCall   ActivityKind = "call"
	ActivityScrape ActivityKind = "scrape"
	ActivityBlog   ActivityKind = "blog"
)

// ActivityLog is a summary of one batch submitted through the dashboard.
// Per-item results are not stored.
type ActivityLog struct {
	// Primary key
	ID string `json:"id" gorm:"primaryKey;type:uuid"`

	Kind      ActivityKind `json:"kind" gorm:"type:varchar(20);not null;index" example:"call"`
	Total     int          `json:"total" example:"2"`
	Succeeded int          `json:"succeeded" example:"1"`
	Failed    int          `json:"failed" example:"1"`
	Status    string       `json:"status" gorm:"type:varchar(20);not null;index" example:"warning"` // "success", "warning", "error"
	Message   string       `json:"message" gorm:"type:text" example:"Processed 2 numbers."`

	// Additional metadata
	Metadata JSON `json:"metadata,omitempty" gorm:"type:jsonb"` // {failure_kind, export_file, ...}

	// Timestamps
	CreatedAt time.Time `json:"created_at" gorm:"index"`
}

// TableName specifies the table name for the ActivityLog model
func (ActivityLog) TableName() string {
	return "activity_logs"
}

// ActivityStatus derives the entry status from its counters
func ActivityStatus(succeeded, failed int) string {
	switch {
	case failed == 0:
		return "success"
	case succeeded == 0:
		return "error"
	default:
		return "warning"
	}
}

// ActivityLogResponse represents an activity entry in API responses
type ActivityLogResponse struct {
	ID        string       `json:"id" example:"550e8400-e29b-41d4-a716-446655440000"`
	Kind      ActivityKind `json:"kind" example:"call"`
	Total     int          `json:"total" example:"2"`
	Succeeded int          `json:"succeeded" example:"1"`
	Failed    int          `json:"failed" example:"1"`
	Status    string       `json:"status" example:"warning"`
	Message   string       `json:"message" example:"Processed 2 numbers."`
	Metadata  JSON         `json:"metadata,omitempty"`
	CreatedAt string       `json:"created_at" example:"2025-01-21T10:30:00Z"`
}
