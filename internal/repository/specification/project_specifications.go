package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ByApiKey filters projects by their public API key. Exact equality, no
// normalization: the key is an opaque secret.
type ByApiKey struct {
	ApiKey string
}

func (s ByApiKey) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("api_key = ?", s.ApiKey)
}

// BySlug filters projects by their unique URL slug.
type BySlug struct {
	Slug string
}

func (s BySlug) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("slug = ?", s.Slug)
}

// OwnedBy scopes rows to the owning user account.
type OwnedBy struct {
	UserID uuid.UUID
}

func (s OwnedBy) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("user_id = ?", s.UserID)
}

// ByEmail filters users by email.
type ByEmail struct {
	Email string
}

func (s ByEmail) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("email = ?", s.Email)
}
