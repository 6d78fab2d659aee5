package entity

import (
	"time"

	"github.com/google/uuid"
)

// Project is the tenant boundary. Every piece of feedback content belongs to
// exactly one project, and the widget identifies a project by its ApiKey.
type Project struct {
	Id           uuid.UUID
	Name         string
	Slug         string
	ApiKey       string
	Domain       *string
	Language     string
	HideBranding bool
	UserId       uuid.UUID
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// ProjectCounts carries the per-content-type totals shown on the project list.
type ProjectCounts struct {
	Feedbacks       int64
	Reviews         int64
	Issues          int64
	FeatureRequests int64
}
