package service

import (
	"context"
	"time"

	"happycust-be/internal/dto"
	"happycust-be/internal/entity"
	"happycust-be/internal/pkg/serverutils"
	"happycust-be/internal/repository/specification"
	"happycust-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type IFeedbackService interface {
	GetAll(ctx context.Context, userId uuid.UUID) ([]*dto.FeedbackResponse, error)
	Update(ctx context.Context, userId uuid.UUID, req *dto.UpdateFeedbackRequest) (*dto.FeedbackResponse, error)
	Delete(ctx context.Context, userId uuid.UUID, id uuid.UUID) error
}

type feedbackService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewFeedbackService(uowFactory unitofwork.RepositoryFactory) IFeedbackService {
	return &feedbackService{uowFactory: uowFactory}
}

func (s *feedbackService) GetAll(ctx context.Context, userId uuid.UUID) ([]*dto.FeedbackResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	_, projectIds, err := ownedProjects(ctx, uow, userId)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.FeedbackResponse, 0)
	if len(projectIds) == 0 {
		return result, nil
	}

	feedbacks, err := uow.FeedbackRepository().FindAll(ctx,
		specification.ByProjectIDs{ProjectIDs: projectIds},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	for _, f := range feedbacks {
		result = append(result, toFeedbackResponse(f))
	}
	return result, nil
}

func (s *feedbackService) Update(ctx context.Context, userId uuid.UUID, req *dto.UpdateFeedbackRequest) (*dto.FeedbackResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	feedback, err := uow.FeedbackRepository().FindOne(ctx, specification.ByID{ID: req.Id})
	if err != nil {
		return nil, err
	}
	if feedback == nil {
		return nil, serverutils.NewNotFoundError("Feedback not found")
	}
	if err := requireOwnership(ctx, uow, userId, feedback.ProjectId); err != nil {
		return nil, err
	}

	if req.Status != nil {
		feedback.Status = entity.FeedbackStatus(*req.Status)
	}
	if req.Priority != nil {
		feedback.Priority = entity.Priority(*req.Priority)
	}
	feedback.UpdatedAt = time.Now()

	if err := uow.FeedbackRepository().Update(ctx, feedback); err != nil {
		return nil, err
	}
	return toFeedbackResponse(feedback), nil
}

func (s *feedbackService) Delete(ctx context.Context, userId uuid.UUID, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	feedback, err := uow.FeedbackRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return err
	}
	if feedback == nil {
		return serverutils.NewNotFoundError("Feedback not found")
	}
	if err := requireOwnership(ctx, uow, userId, feedback.ProjectId); err != nil {
		return err
	}

	return uow.FeedbackRepository().Delete(ctx, id)
}

func toFeedbackResponse(f *entity.Feedback) *dto.FeedbackResponse {
	return &dto.FeedbackResponse{
		Id:        f.Id,
		Content:   f.Content,
		Email:     f.Email,
		Name:      f.Name,
		Status:    string(f.Status),
		Priority:  string(f.Priority),
		Tags:      f.Tags,
		ProjectId: f.ProjectId,
		CreatedAt: f.CreatedAt,
	}
}
