package dto

import (
	"time"

	"github.com/google/uuid"
)

type ReviewResponse struct {
	Id                  uuid.UUID `json:"id"`
	Rating              int       `json:"rating"`
	Content             string    `json:"content"`
	Email               string    `json:"email"`
	Name                *string   `json:"name"`
	SocialMediaProfile  *string   `json:"socialMediaProfile"`
	ConsentForMarketing bool      `json:"consentForMarketing"`
	IsPublished         bool      `json:"isPublished"`
	ProjectId           uuid.UUID `json:"projectId"`
	CreatedAt           time.Time `json:"createdAt"`
}

type UpdateReviewRequest struct {
	Id          uuid.UUID
	IsPublished *bool `json:"isPublished"`
}
