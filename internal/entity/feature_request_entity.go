package entity

import (
	"time"

	"github.com/google/uuid"
)

type FeatureRequestStatus string

// NEW is the moderation quarantine state: features stay invisible to the
// widget feed until an admin moves them to any other status.
const (
	FeatureStatusNew                FeatureRequestStatus = "NEW"
	FeatureStatusUnderConsideration FeatureRequestStatus = "UNDER_CONSIDERATION"
	FeatureStatusPlanned            FeatureRequestStatus = "PLANNED"
	FeatureStatusInProgress         FeatureRequestStatus = "IN_PROGRESS"
	FeatureStatusCompleted          FeatureRequestStatus = "COMPLETED"
	FeatureStatusRejected           FeatureRequestStatus = "REJECTED"
	FeatureStatusArchived           FeatureRequestStatus = "ARCHIVED"
)

type FeatureRequest struct {
	Id          uuid.UUID
	Title       string
	Description string
	Email       *string
	Name        *string
	Status      FeatureRequestStatus
	Priority    Priority
	Tags        []string
	ProjectId   uuid.UUID
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
