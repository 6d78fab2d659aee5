package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"happycust-be/internal/dto"
	"happycust-be/internal/pkg/mailer"
	"happycust-be/internal/repository/specification"
	"happycust-be/internal/repository/unitofwork"
	internalWS "happycust-be/internal/websocket"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

// IConsumerService drains the in-process submission bus and fans each event
// out to the owner's live dashboard sessions and their email inbox.
type IConsumerService interface {
	Consume(ctx context.Context) error
}

type consumerService struct {
	pubSub       *gochannel.GoChannel
	topicName    string
	uowFactory   unitofwork.RepositoryFactory
	hub          *internalWS.Hub
	emailService mailer.IEmailService
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	uowFactory unitofwork.RepositoryFactory,
	hub *internalWS.Hub,
	emailService mailer.IEmailService,
) IConsumerService {
	return &consumerService{
		pubSub:       pubSub,
		topicName:    topicName,
		uowFactory:   uowFactory,
		hub:          hub,
		emailService: emailService,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	var payload dto.SubmissionCreatedMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		log.Printf("[ERROR] Failed to unmarshal submission message: %v", err)
		msg.Ack() // malformed messages are never retriable
		return
	}

	uow := cs.uowFactory.NewUnitOfWork(ctx)

	project, err := uow.ProjectRepository().FindOne(ctx, specification.ByID{ID: payload.ProjectId})
	if err != nil {
		log.Printf("[ERROR] Failed to load project %s: %v", payload.ProjectId, err)
		msg.Nack()
		return
	}
	if project == nil {
		// Project deleted between write and fan-out.
		msg.Ack()
		return
	}

	owner, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: project.UserId})
	if err != nil {
		log.Printf("[ERROR] Failed to load owner %s: %v", project.UserId, err)
		msg.Nack()
		return
	}

	kindLabel := submissionKindLabel(payload.Kind)

	if cs.hub != nil {
		cs.hub.Send(project.UserId, internalWS.Notification{
			Kind:      payload.Kind,
			ProjectId: project.Id.String(),
			EntityId:  payload.EntityId.String(),
			Message:   fmt.Sprintf("New %s in %s", kindLabel, project.Name),
			CreatedAt: time.Now(),
		})
	}

	if cs.emailService != nil && owner != nil {
		go func(email, projectName, summary string) {
			if err := cs.emailService.SendSubmissionAlert(email, projectName, kindLabel, summary); err != nil {
				log.Printf("[WARN] Failed to send submission alert: %v", err)
			}
		}(owner.Email, project.Name, payload.Summary)
	}

	msg.Ack()
}

func submissionKindLabel(kind string) string {
	switch kind {
	case "feature_request":
		return "feature request"
	case "feedback", "review", "issue":
		return kind
	default:
		return "submission"
	}
}
