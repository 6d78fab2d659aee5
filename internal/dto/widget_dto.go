package dto

import (
	"time"

	"github.com/google/uuid"
)

// Widget submissions carry the public apiKey under the "projectId" field; the
// resolver turns it into the real project id before anything is persisted.

type WidgetProjectResponse struct {
	Id           uuid.UUID `json:"id"`
	HideBranding bool      `json:"hideBranding"`
	Language     string    `json:"language"`
}

// Content is optional: a feedback submission may carry only the api key, and
// persists with an empty content string.
type CreateFeedbackRequest struct {
	ProjectId string   `json:"projectId" validate:"required"`
	Content   string   `json:"content"`
	Email     *string  `json:"email" validate:"omitempty,email"`
	Name      *string  `json:"name"`
	Tags      []string `json:"tags"`
}

type CreateReviewRequest struct {
	ProjectId           string  `json:"projectId" validate:"required"`
	Rating              int     `json:"rating" validate:"required,min=1,max=5"`
	Content             string  `json:"content" validate:"required"`
	Email               string  `json:"email" validate:"required,email"`
	Name                *string `json:"name"`
	SocialMediaProfile  *string `json:"socialMediaProfile" validate:"omitempty,url"`
	ConsentForMarketing bool    `json:"consentForMarketing"`
}

type CreateIssueRequest struct {
	ProjectId     string   `json:"projectId" validate:"required"`
	Description   string   `json:"description" validate:"required"`
	ScreenshotUrl *string  `json:"screenshotUrl" validate:"omitempty,url"`
	Email         *string  `json:"email" validate:"omitempty,email"`
	Name          *string  `json:"name"`
	Tags          []string `json:"tags"`
}

// Fingerprint is optional; when present the submitter's vote is granted in the
// same transaction as the insert.
type CreateFeatureRequest struct {
	ProjectId   string   `json:"projectId" validate:"required"`
	Title       string   `json:"title" validate:"required"`
	Description string   `json:"description" validate:"required"`
	Email       *string  `json:"email" validate:"omitempty,email"`
	Name        *string  `json:"name"`
	Fingerprint string   `json:"fingerprint"`
	Tags        []string `json:"tags"`
}

type VoteRequest struct {
	FeatureRequestId uuid.UUID `json:"featureRequestId" validate:"required"`
	Fingerprint      string    `json:"fingerprint" validate:"required"`
	Email            *string   `json:"email" validate:"omitempty,email"`
}

type VoteResponse struct {
	Action string `json:"action"`
}

type CreatedResponse struct {
	Id uuid.UUID `json:"id"`
}

type WidgetFeatureResponse struct {
	Id          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	Votes       int64     `json:"votes"`
	HasVoted    bool      `json:"hasVoted"`
	CreatedAt   time.Time `json:"createdAt"`
}

type PublicReviewResponse struct {
	Id                 uuid.UUID `json:"id"`
	Rating             int       `json:"rating"`
	Content            string    `json:"content"`
	Name               *string   `json:"name"`
	SocialMediaProfile *string   `json:"socialMediaProfile"`
	CreatedAt          time.Time `json:"createdAt"`
}
