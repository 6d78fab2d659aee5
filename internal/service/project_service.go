package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"time"

	"happycust-be/internal/dto"
	"happycust-be/internal/entity"
	"happycust-be/internal/pkg/serverutils"
	"happycust-be/internal/repository/specification"
	"happycust-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type IProjectService interface {
	GetAll(ctx context.Context, userId uuid.UUID) ([]*dto.ProjectResponse, error)
	Create(ctx context.Context, userId uuid.UUID, req *dto.CreateProjectRequest) (*dto.ProjectResponse, error)
	Update(ctx context.Context, userId uuid.UUID, req *dto.UpdateProjectRequest) (*dto.ProjectResponse, error)
	Delete(ctx context.Context, userId uuid.UUID, id uuid.UUID) error
}

type projectService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewProjectService(uowFactory unitofwork.RepositoryFactory) IProjectService {
	return &projectService{uowFactory: uowFactory}
}

// generateApiKey produces the widget credential. Issued once at creation and
// never rotated through this API.
func generateApiKey() (string, error) {
	b := make([]byte, 24)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return "hc_" + hex.EncodeToString(b), nil
}

func (s *projectService) GetAll(ctx context.Context, userId uuid.UUID) ([]*dto.ProjectResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	projects, err := uow.ProjectRepository().FindAll(ctx,
		specification.OwnedBy{UserID: userId},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.ProjectResponse, 0, len(projects))
	for _, p := range projects {
		counts, err := s.countsFor(ctx, uow, p.Id)
		if err != nil {
			return nil, err
		}
		result = append(result, toProjectResponse(p, counts))
	}

	return result, nil
}

func (s *projectService) countsFor(ctx context.Context, uow unitofwork.UnitOfWork, projectId uuid.UUID) (dto.ProjectCountsResponse, error) {
	scope := specification.ByProjectID{ProjectID: projectId}

	feedbacks, err := uow.FeedbackRepository().Count(ctx, scope)
	if err != nil {
		return dto.ProjectCountsResponse{}, err
	}
	reviews, err := uow.ReviewRepository().Count(ctx, scope)
	if err != nil {
		return dto.ProjectCountsResponse{}, err
	}
	issues, err := uow.IssueRepository().Count(ctx, scope)
	if err != nil {
		return dto.ProjectCountsResponse{}, err
	}
	features, err := uow.FeatureRequestRepository().Count(ctx, scope)
	if err != nil {
		return dto.ProjectCountsResponse{}, err
	}

	return dto.ProjectCountsResponse{
		Feedbacks:       feedbacks,
		Reviews:         reviews,
		Issues:          issues,
		FeatureRequests: features,
	}, nil
}

func (s *projectService) Create(ctx context.Context, userId uuid.UUID, req *dto.CreateProjectRequest) (*dto.ProjectResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	existing, err := uow.ProjectRepository().FindOne(ctx, specification.BySlug{Slug: req.Slug})
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, serverutils.NewConflictError("Slug already in use")
	}

	apiKey, err := generateApiKey()
	if err != nil {
		return nil, err
	}

	language := req.Language
	if language == "" {
		language = "en"
	}

	project := entity.Project{
		Id:           uuid.New(),
		Name:         req.Name,
		Slug:         req.Slug,
		ApiKey:       apiKey,
		Domain:       req.Domain,
		Language:     language,
		HideBranding: req.HideBranding,
		UserId:       userId,
		CreatedAt:    time.Now(),
	}
	if err := uow.ProjectRepository().Create(ctx, &project); err != nil {
		return nil, err
	}

	return toProjectResponse(&project, dto.ProjectCountsResponse{}), nil
}

func (s *projectService) Update(ctx context.Context, userId uuid.UUID, req *dto.UpdateProjectRequest) (*dto.ProjectResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	project, err := uow.ProjectRepository().FindOne(ctx, specification.ByID{ID: req.Id})
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, serverutils.NewNotFoundError("Project not found")
	}
	if project.UserId != userId {
		return nil, serverutils.NewForbiddenError("Not your project")
	}

	// Slug and apiKey are immutable after creation.
	if req.Name != nil {
		project.Name = *req.Name
	}
	if req.Domain != nil {
		project.Domain = req.Domain
	}
	if req.Language != nil {
		project.Language = *req.Language
	}
	if req.HideBranding != nil {
		project.HideBranding = *req.HideBranding
	}
	project.UpdatedAt = time.Now()

	if err := uow.ProjectRepository().Update(ctx, project); err != nil {
		return nil, err
	}

	counts, err := s.countsFor(ctx, uow, project.Id)
	if err != nil {
		return nil, err
	}
	return toProjectResponse(project, counts), nil
}

func (s *projectService) Delete(ctx context.Context, userId uuid.UUID, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	project, err := uow.ProjectRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return err
	}
	if project == nil {
		return serverutils.NewNotFoundError("Project not found")
	}
	if project.UserId != userId {
		return serverutils.NewForbiddenError("Not your project")
	}

	return uow.ProjectRepository().Delete(ctx, id)
}

func toProjectResponse(p *entity.Project, counts dto.ProjectCountsResponse) *dto.ProjectResponse {
	return &dto.ProjectResponse{
		Id:           p.Id,
		Name:         p.Name,
		Slug:         p.Slug,
		ApiKey:       p.ApiKey,
		Domain:       p.Domain,
		Language:     p.Language,
		HideBranding: p.HideBranding,
		CreatedAt:    p.CreatedAt,
		Counts:       counts,
	}
}
