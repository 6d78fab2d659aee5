package dto

import (
	"time"

	"github.com/google/uuid"
)

type IssueResponse struct {
	Id            uuid.UUID `json:"id"`
	Description   string    `json:"description"`
	ScreenshotUrl *string   `json:"screenshotUrl"`
	Email         *string   `json:"email"`
	Name          *string   `json:"name"`
	Status        string    `json:"status"`
	Priority      string    `json:"priority"`
	Tags          []string  `json:"tags"`
	ProjectId     uuid.UUID `json:"projectId"`
	CreatedAt     time.Time `json:"createdAt"`
}

type UpdateIssueRequest struct {
	Id       uuid.UUID
	Status   *string `json:"status" validate:"omitempty,oneof=NEW IN_PROGRESS RESOLVED WONT_FIX ARCHIVED"`
	Priority *string `json:"priority" validate:"omitempty,oneof=LOW MEDIUM HIGH URGENT"`
}
