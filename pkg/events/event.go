package events

import "time"

// Event is the contract for everything published to the external bus.
type Event interface {
	// EventType returns the subject suffix, e.g. "SUBMISSION_CREATED".
	EventType() string

	// Payload returns the data carried by the event.
	Payload() map[string]interface{}

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

type BaseEvent struct {
	Type       string
	Data       map[string]interface{}
	OccurredAt time.Time
}

func (e BaseEvent) EventType() string {
	return e.Type
}

func (e BaseEvent) Payload() map[string]interface{} {
	return e.Data
}

func (e BaseEvent) Timestamp() time.Time {
	return e.OccurredAt
}

// NewSubmissionCreatedEvent records a widget write of the given kind
// ("feedback", "review", "issue", "feature_request") against a project.
func NewSubmissionCreatedEvent(kind, projectId, entityId string) Event {
	return BaseEvent{
		Type: "SUBMISSION_CREATED",
		Data: map[string]interface{}{
			"kind":       kind,
			"project_id": projectId,
			"entity_id":  entityId,
		},
		OccurredAt: time.Now(),
	}
}

// NewVoteToggledEvent records a vote toggle outcome ("added" or "removed").
func NewVoteToggledEvent(featureRequestId, action string) Event {
	return BaseEvent{
		Type: "VOTE_TOGGLED",
		Data: map[string]interface{}{
			"feature_request_id": featureRequestId,
			"action":             action,
		},
		OccurredAt: time.Now(),
	}
}
