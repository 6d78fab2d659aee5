package entity

import (
	"time"

	"github.com/google/uuid"
)

type FeedbackStatus string

const (
	FeedbackStatusNew        FeedbackStatus = "NEW"
	FeedbackStatusInProgress FeedbackStatus = "IN_PROGRESS"
	FeedbackStatusResolved   FeedbackStatus = "RESOLVED"
	FeedbackStatusArchived   FeedbackStatus = "ARCHIVED"
)

type Priority string

const (
	PriorityLow    Priority = "LOW"
	PriorityMedium Priority = "MEDIUM"
	PriorityHigh   Priority = "HIGH"
	PriorityUrgent Priority = "URGENT"
)

type Feedback struct {
	Id        uuid.UUID
	Content   string
	Email     *string
	Name      *string
	Status    FeedbackStatus
	Priority  Priority
	Tags      []string
	ProjectId uuid.UUID
	CreatedAt time.Time
	UpdatedAt time.Time
}
