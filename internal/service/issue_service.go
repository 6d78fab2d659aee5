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

type IIssueService interface {
	GetAll(ctx context.Context, userId uuid.UUID) ([]*dto.IssueResponse, error)
	Update(ctx context.Context, userId uuid.UUID, req *dto.UpdateIssueRequest) (*dto.IssueResponse, error)
	Delete(ctx context.Context, userId uuid.UUID, id uuid.UUID) error
}

type issueService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewIssueService(uowFactory unitofwork.RepositoryFactory) IIssueService {
	return &issueService{uowFactory: uowFactory}
}

func (s *issueService) GetAll(ctx context.Context, userId uuid.UUID) ([]*dto.IssueResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	_, projectIds, err := ownedProjects(ctx, uow, userId)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.IssueResponse, 0)
	if len(projectIds) == 0 {
		return result, nil
	}

	issues, err := uow.IssueRepository().FindAll(ctx,
		specification.ByProjectIDs{ProjectIDs: projectIds},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	for _, i := range issues {
		result = append(result, toIssueResponse(i))
	}
	return result, nil
}

func (s *issueService) Update(ctx context.Context, userId uuid.UUID, req *dto.UpdateIssueRequest) (*dto.IssueResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	issue, err := uow.IssueRepository().FindOne(ctx, specification.ByID{ID: req.Id})
	if err != nil {
		return nil, err
	}
	if issue == nil {
		return nil, serverutils.NewNotFoundError("Issue not found")
	}
	if err := requireOwnership(ctx, uow, userId, issue.ProjectId); err != nil {
		return nil, err
	}

	if req.Status != nil {
		issue.Status = entity.IssueStatus(*req.Status)
	}
	if req.Priority != nil {
		issue.Priority = entity.Priority(*req.Priority)
	}
	issue.UpdatedAt = time.Now()

	if err := uow.IssueRepository().Update(ctx, issue); err != nil {
		return nil, err
	}
	return toIssueResponse(issue), nil
}

func (s *issueService) Delete(ctx context.Context, userId uuid.UUID, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	issue, err := uow.IssueRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return err
	}
	if issue == nil {
		return serverutils.NewNotFoundError("Issue not found")
	}
	if err := requireOwnership(ctx, uow, userId, issue.ProjectId); err != nil {
		return err
	}

	return uow.IssueRepository().Delete(ctx, id)
}

func toIssueResponse(i *entity.Issue) *dto.IssueResponse {
	return &dto.IssueResponse{
		Id:            i.Id,
		Description:   i.Description,
		ScreenshotUrl: i.ScreenshotUrl,
		Email:         i.Email,
		Name:          i.Name,
		Status:        string(i.Status),
		Priority:      string(i.Priority),
		Tags:          i.Tags,
		ProjectId:     i.ProjectId,
		CreatedAt:     i.CreatedAt,
	}
}
