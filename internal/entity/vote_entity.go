package entity

import (
	"time"

	"github.com/google/uuid"
)

// Vote joins a feature request with one anonymous fingerprint. The pair
// (FeatureRequestId, Fingerprint) is unique at the database level; that
// constraint, not the application check, decides concurrent toggles.
type Vote struct {
	Id               uuid.UUID
	FeatureRequestId uuid.UUID
	Fingerprint      string
	Email            *string
	CreatedAt        time.Time
}

// VoteAction reports which side of the toggle a submission landed on.
type VoteAction string

const (
	VoteActionAdded   VoteAction = "added"
	VoteActionRemoved VoteAction = "removed"
)
