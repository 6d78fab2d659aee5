package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ByProjectID scopes content rows to a single project.
type ByProjectID struct {
	ProjectID uuid.UUID
}

func (s ByProjectID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("project_id = ?", s.ProjectID)
}

// ByProjectIDs scopes content rows to a set of projects (ownership joins).
type ByProjectIDs struct {
	ProjectIDs []uuid.UUID
}

func (s ByProjectIDs) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("project_id IN ?", s.ProjectIDs)
}

// ByStatus filters by exact status.
type ByStatus struct {
	Status string
}

func (s ByStatus) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("status = ?", s.Status)
}

// StatusNot excludes a single status. Used for the quarantine filter on the
// public feature feed.
type StatusNot struct {
	Status string
}

func (s StatusNot) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("status <> ?", s.Status)
}

// StatusIn filters by a set of statuses.
type StatusIn struct {
	Statuses []string
}

func (s StatusIn) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("status IN ?", s.Statuses)
}

// SearchText matches title or description by case-insensitive substring.
type SearchText struct {
	Text string
}

func (s SearchText) Apply(db *gorm.DB) *gorm.DB {
	if s.Text == "" {
		return db
	}
	pattern := "%" + s.Text + "%"
	return db.Where("title ILIKE ? OR description ILIKE ?", pattern, pattern)
}

// PublishedForMarketing selects reviews eligible for the public reviews feed.
type PublishedForMarketing struct{}

func (s PublishedForMarketing) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("is_published = ? AND consent_for_marketing = ?", true, true)
}

// IsPublished filters reviews by the moderation flag.
type IsPublished struct {
	Published bool
}

func (s IsPublished) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("is_published = ?", s.Published)
}
