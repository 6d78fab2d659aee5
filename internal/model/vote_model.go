package model

import (
	"time"

	"github.com/google/uuid"
)

// The composite unique index is the authoritative guard for concurrent vote
// toggles; see the vote repository for how violations are collapsed.
type Vote struct {
	Id               uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	FeatureRequestId uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_votes_feature_fingerprint;constraint:OnDelete:CASCADE"`
	Fingerprint      string    `gorm:"type:varchar(64);not null;uniqueIndex:idx_votes_feature_fingerprint"`
	Email            *string   `gorm:"type:varchar(255)"`
	CreatedAt        time.Time `gorm:"autoCreateTime"`
}

func (Vote) TableName() string {
	return "votes"
}
