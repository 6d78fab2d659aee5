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

type IFeatureService interface {
	GetAll(ctx context.Context, userId uuid.UUID) ([]*dto.AdminFeatureResponse, error)
	Update(ctx context.Context, userId uuid.UUID, req *dto.UpdateFeatureRequest) (*dto.AdminFeatureResponse, error)
	Delete(ctx context.Context, userId uuid.UUID, id uuid.UUID) error
}

type featureService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewFeatureService(uowFactory unitofwork.RepositoryFactory) IFeatureService {
	return &featureService{uowFactory: uowFactory}
}

// GetAll is the moderation queue: quarantined (NEW) features sort first
// because status orders ascending before recency.
func (s *featureService) GetAll(ctx context.Context, userId uuid.UUID) ([]*dto.AdminFeatureResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	projectsById, projectIds, err := ownedProjects(ctx, uow, userId)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.AdminFeatureResponse, 0)
	if len(projectIds) == 0 {
		return result, nil
	}

	features, err := uow.FeatureRequestRepository().FindAll(ctx,
		specification.ByProjectIDs{ProjectIDs: projectIds},
		specification.OrderBy{Field: "status", Desc: false},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}
	if len(features) == 0 {
		return result, nil
	}

	ids := make([]uuid.UUID, 0, len(features))
	for _, f := range features {
		ids = append(ids, f.Id)
	}
	counts, err := uow.VoteRepository().CountByFeatureIds(ctx, ids)
	if err != nil {
		return nil, err
	}

	for _, f := range features {
		res := &dto.AdminFeatureResponse{
			Id:          f.Id,
			Title:       f.Title,
			Description: f.Description,
			Email:       f.Email,
			Name:        f.Name,
			Status:      string(f.Status),
			Priority:    string(f.Priority),
			Tags:        f.Tags,
			Votes:       counts[f.Id],
			ProjectId:   f.ProjectId,
			CreatedAt:   f.CreatedAt,
		}
		if p, ok := projectsById[f.ProjectId]; ok {
			res.ProjectName = p.Name
			res.ProjectSlug = p.Slug
		}
		result = append(result, res)
	}

	return result, nil
}

func (s *featureService) Update(ctx context.Context, userId uuid.UUID, req *dto.UpdateFeatureRequest) (*dto.AdminFeatureResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	feature, err := uow.FeatureRequestRepository().FindOne(ctx, specification.ByID{ID: req.Id})
	if err != nil {
		return nil, err
	}
	if feature == nil {
		return nil, serverutils.NewNotFoundError("Feature request not found")
	}
	if err := requireOwnership(ctx, uow, userId, feature.ProjectId); err != nil {
		return nil, err
	}

	if req.Status != nil {
		feature.Status = entity.FeatureRequestStatus(*req.Status)
	}
	if req.Priority != nil {
		feature.Priority = entity.Priority(*req.Priority)
	}
	feature.UpdatedAt = time.Now()

	if err := uow.FeatureRequestRepository().Update(ctx, feature); err != nil {
		return nil, err
	}

	votes, err := uow.VoteRepository().Count(ctx, specification.ByFeatureRequestID{FeatureRequestID: feature.Id})
	if err != nil {
		return nil, err
	}

	project, err := uow.ProjectRepository().FindOne(ctx, specification.ByID{ID: feature.ProjectId})
	if err != nil {
		return nil, err
	}

	res := &dto.AdminFeatureResponse{
		Id:          feature.Id,
		Title:       feature.Title,
		Description: feature.Description,
		Email:       feature.Email,
		Name:        feature.Name,
		Status:      string(feature.Status),
		Priority:    string(feature.Priority),
		Tags:        feature.Tags,
		Votes:       votes,
		ProjectId:   feature.ProjectId,
		CreatedAt:   feature.CreatedAt,
	}
	if project != nil {
		res.ProjectName = project.Name
		res.ProjectSlug = project.Slug
	}
	return res, nil
}

// Delete removes the feature request; its votes go with it via the cascade
// on the foreign key.
func (s *featureService) Delete(ctx context.Context, userId uuid.UUID, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	feature, err := uow.FeatureRequestRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return err
	}
	if feature == nil {
		return serverutils.NewNotFoundError("Feature request not found")
	}
	if err := requireOwnership(ctx, uow, userId, feature.ProjectId); err != nil {
		return err
	}

	return uow.FeatureRequestRepository().Delete(ctx, id)
}
