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

type IReviewService interface {
	GetAll(ctx context.Context, userId uuid.UUID) ([]*dto.ReviewResponse, error)
	Update(ctx context.Context, userId uuid.UUID, req *dto.UpdateReviewRequest) (*dto.ReviewResponse, error)
	Delete(ctx context.Context, userId uuid.UUID, id uuid.UUID) error
}

type reviewService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewReviewService(uowFactory unitofwork.RepositoryFactory) IReviewService {
	return &reviewService{uowFactory: uowFactory}
}

func (s *reviewService) GetAll(ctx context.Context, userId uuid.UUID) ([]*dto.ReviewResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	_, projectIds, err := ownedProjects(ctx, uow, userId)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.ReviewResponse, 0)
	if len(projectIds) == 0 {
		return result, nil
	}

	reviews, err := uow.ReviewRepository().FindAll(ctx,
		specification.ByProjectIDs{ProjectIDs: projectIds},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	for _, r := range reviews {
		result = append(result, toReviewResponse(r))
	}
	return result, nil
}

// Update toggles publication. Consent stays whatever the reviewer submitted;
// publishing a non-consenting review still keeps it off the public feed.
func (s *reviewService) Update(ctx context.Context, userId uuid.UUID, req *dto.UpdateReviewRequest) (*dto.ReviewResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	review, err := uow.ReviewRepository().FindOne(ctx, specification.ByID{ID: req.Id})
	if err != nil {
		return nil, err
	}
	if review == nil {
		return nil, serverutils.NewNotFoundError("Review not found")
	}
	if err := requireOwnership(ctx, uow, userId, review.ProjectId); err != nil {
		return nil, err
	}

	if req.IsPublished != nil {
		review.IsPublished = *req.IsPublished
	}
	review.UpdatedAt = time.Now()

	if err := uow.ReviewRepository().Update(ctx, review); err != nil {
		return nil, err
	}
	return toReviewResponse(review), nil
}

func (s *reviewService) Delete(ctx context.Context, userId uuid.UUID, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	review, err := uow.ReviewRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return err
	}
	if review == nil {
		return serverutils.NewNotFoundError("Review not found")
	}
	if err := requireOwnership(ctx, uow, userId, review.ProjectId); err != nil {
		return err
	}

	return uow.ReviewRepository().Delete(ctx, id)
}

func toReviewResponse(r *entity.Review) *dto.ReviewResponse {
	return &dto.ReviewResponse{
		Id:                  r.Id,
		Rating:              r.Rating,
		Content:             r.Content,
		Email:               r.Email,
		Name:                r.Name,
		SocialMediaProfile:  r.SocialMediaProfile,
		ConsentForMarketing: r.ConsentForMarketing,
		IsPublished:         r.IsPublished,
		ProjectId:           r.ProjectId,
		CreatedAt:           r.CreatedAt,
	}
}
