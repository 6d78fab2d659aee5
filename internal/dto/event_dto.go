package dto

import "github.com/google/uuid"

// SubmissionCreatedMessage travels over the in-process bus from the widget
// write path to the notification consumer.
type SubmissionCreatedMessage struct {
	Kind      string    `json:"kind"` // feedback | review | issue | feature_request
	ProjectId uuid.UUID `json:"projectId"`
	EntityId  uuid.UUID `json:"entityId"`
	Summary   string    `json:"summary"`
}
