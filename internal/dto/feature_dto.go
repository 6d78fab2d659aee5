package dto

import (
	"time"

	"github.com/google/uuid"
)

// AdminFeatureResponse is the dashboard row: vote counts plus the owning
// project's name and slug are joined in for display.
type AdminFeatureResponse struct {
	Id          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Email       *string   `json:"email"`
	Name        *string   `json:"name"`
	Status      string    `json:"status"`
	Priority    string    `json:"priority"`
	Tags        []string  `json:"tags"`
	Votes       int64     `json:"votes"`
	ProjectId   uuid.UUID `json:"projectId"`
	ProjectName string    `json:"projectName"`
	ProjectSlug string    `json:"projectSlug"`
	CreatedAt   time.Time `json:"createdAt"`
}

type UpdateFeatureRequest struct {
	Id       uuid.UUID
	Status   *string `json:"status" validate:"omitempty,oneof=NEW UNDER_CONSIDERATION PLANNED IN_PROGRESS COMPLETED REJECTED ARCHIVED"`
	Priority *string `json:"priority" validate:"omitempty,oneof=LOW MEDIUM HIGH URGENT"`
}
