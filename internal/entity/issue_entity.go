package entity

import (
	"time"

	"github.com/google/uuid"
)

type IssueStatus string

// Issue is the only content type with a WONT_FIX terminal state.
const (
	IssueStatusNew        IssueStatus = "NEW"
	IssueStatusInProgress IssueStatus = "IN_PROGRESS"
	IssueStatusResolved   IssueStatus = "RESOLVED"
	IssueStatusWontFix    IssueStatus = "WONT_FIX"
	IssueStatusArchived   IssueStatus = "ARCHIVED"
)

type Issue struct {
	Id            uuid.UUID
	Description   string
	ScreenshotUrl *string
	Email         *string
	Name          *string
	Status        IssueStatus
	Priority      Priority
	Tags          []string
	ProjectId     uuid.UUID
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
