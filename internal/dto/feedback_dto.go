package dto

import (
	"time"

	"github.com/google/uuid"
)

type FeedbackResponse struct {
	Id        uuid.UUID `json:"id"`
	Content   string    `json:"content"`
	Email     *string   `json:"email"`
	Name      *string   `json:"name"`
	Status    string    `json:"status"`
	Priority  string    `json:"priority"`
	Tags      []string  `json:"tags"`
	ProjectId uuid.UUID `json:"projectId"`
	CreatedAt time.Time `json:"createdAt"`
}

type UpdateFeedbackRequest struct {
	Id       uuid.UUID
	Status   *string `json:"status" validate:"omitempty,oneof=NEW IN_PROGRESS RESOLVED ARCHIVED"`
	Priority *string `json:"priority" validate:"omitempty,oneof=LOW MEDIUM HIGH URGENT"`
}
