package entity

import (
	"time"

	"github.com/google/uuid"
)

// Review has no status enum: moderation is the IsPublished flag, and public
// display additionally requires ConsentForMarketing.
type Review struct {
	Id                  uuid.UUID
	Rating              int
	Content             string
	Email               string
	Name                *string
	SocialMediaProfile  *string
	ConsentForMarketing bool
	IsPublished         bool
	ProjectId           uuid.UUID
	CreatedAt           time.Time
	UpdatedAt           time.Time
}
