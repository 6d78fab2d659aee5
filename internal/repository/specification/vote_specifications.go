package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ByFeatureRequestID filters votes for a single feature request.
type ByFeatureRequestID struct {
	FeatureRequestID uuid.UUID
}

func (s ByFeatureRequestID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("feature_request_id = ?", s.FeatureRequestID)
}

// ByFeatureRequestIDs filters votes for a set of feature requests.
type ByFeatureRequestIDs struct {
	FeatureRequestIDs []uuid.UUID
}

func (s ByFeatureRequestIDs) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("feature_request_id IN ?", s.FeatureRequestIDs)
}

// ByFingerprint filters votes by the anonymous identity that cast them.
type ByFingerprint struct {
	Fingerprint string
}

func (s ByFingerprint) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("fingerprint = ?", s.Fingerprint)
}
