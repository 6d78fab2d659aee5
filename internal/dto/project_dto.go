package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateProjectRequest struct {
	Name         string  `json:"name" validate:"required,min=2"`
	Slug         string  `json:"slug" validate:"required,min=2,lowercase"`
	Domain       *string `json:"domain" validate:"omitempty,url"`
	Language     string  `json:"language"`
	HideBranding bool    `json:"hideBranding"`
}

type UpdateProjectRequest struct {
	Id           uuid.UUID
	Name         *string `json:"name" validate:"omitempty,min=2"`
	Domain       *string `json:"domain" validate:"omitempty,url"`
	Language     *string `json:"language"`
	HideBranding *bool   `json:"hideBranding"`
}

type ProjectCountsResponse struct {
	Feedbacks       int64 `json:"feedbacks"`
	Reviews         int64 `json:"reviews"`
	Issues          int64 `json:"issues"`
	FeatureRequests int64 `json:"featureRequests"`
}

type ProjectResponse struct {
	Id           uuid.UUID             `json:"id"`
	Name         string                `json:"name"`
	Slug         string                `json:"slug"`
	ApiKey       string                `json:"apiKey"`
	Domain       *string               `json:"domain"`
	Language     string                `json:"language"`
	HideBranding bool                  `json:"hideBranding"`
	CreatedAt    time.Time             `json:"createdAt"`
	Counts       ProjectCountsResponse `json:"_count"`
}
