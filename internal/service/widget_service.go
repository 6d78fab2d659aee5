package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"happycust-be/internal/dto"
	"happycust-be/internal/entity"
	"happycust-be/internal/pkg/logger"
	"happycust-be/internal/pkg/serverutils"
	"happycust-be/internal/repository/contract"
	"happycust-be/internal/repository/specification"
	"happycust-be/internal/repository/unitofwork"
	"happycust-be/pkg/events"
	pktNats "happycust-be/pkg/nats"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// IWidgetService is the API-key-gated surface the embeddable widget talks to.
// Every write resolves the key to a project first; a key that resolves to
// nothing short-circuits the request before anything is persisted.
type IWidgetService interface {
	ResolveProject(ctx context.Context, apiKey string) (*dto.WidgetProjectResponse, error)
	CreateFeedback(ctx context.Context, req *dto.CreateFeedbackRequest) (*dto.CreatedResponse, error)
	CreateReview(ctx context.Context, req *dto.CreateReviewRequest) (*dto.CreatedResponse, error)
	CreateIssue(ctx context.Context, req *dto.CreateIssueRequest) (*dto.CreatedResponse, error)
	CreateFeature(ctx context.Context, req *dto.CreateFeatureRequest) (*dto.CreatedResponse, error)
	ListFeatures(ctx context.Context, apiKey, search, callerFingerprint string) ([]*dto.WidgetFeatureResponse, error)
	ToggleVote(ctx context.Context, req *dto.VoteRequest) (*dto.VoteResponse, error)
	PublicReviews(ctx context.Context, apiKey string, limit int) ([]*dto.PublicReviewResponse, error)
}

const apiKeyCachePrefix = "apikey:"
const apiKeyCacheTTL = 5 * time.Minute

type widgetService struct {
	uowFactory       unitofwork.RepositoryFactory
	rdb              *redis.Client
	publisherService IPublisherService
	eventPublisher   *pktNats.Publisher
	logger           logger.ILogger
}

func NewWidgetService(
	uowFactory unitofwork.RepositoryFactory,
	rdb *redis.Client,
	publisherService IPublisherService,
	eventPublisher *pktNats.Publisher,
	log logger.ILogger,
) IWidgetService {
	return &widgetService{
		uowFactory:       uowFactory,
		rdb:              rdb,
		publisherService: publisherService,
		eventPublisher:   eventPublisher,
		logger:           log,
	}
}

// resolveProjectId is the authorization gate for widget writes: exact-equality
// lookup on the unique api_key column, fronted by a short-TTL Redis entry.
// Cache misses and Redis outages fall through to the database silently.
func (s *widgetService) resolveProjectId(ctx context.Context, apiKey string) (uuid.UUID, error) {
	if apiKey == "" {
		return uuid.Nil, nil
	}

	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, apiKeyCachePrefix+apiKey).Result(); err == nil {
			if id, parseErr := uuid.Parse(cached); parseErr == nil {
				return id, nil
			}
		}
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	project, err := uow.ProjectRepository().FindOne(ctx, specification.ByApiKey{ApiKey: apiKey})
	if err != nil {
		return uuid.Nil, err
	}
	if project == nil {
		return uuid.Nil, nil
	}

	if s.rdb != nil {
		if err := s.rdb.Set(ctx, apiKeyCachePrefix+apiKey, project.Id.String(), apiKeyCacheTTL).Err(); err != nil {
			s.logger.Warn("WidgetService", "Failed to cache api key", map[string]interface{}{"error": err.Error()})
		}
	}

	return project.Id, nil
}

func (s *widgetService) ResolveProject(ctx context.Context, apiKey string) (*dto.WidgetProjectResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	project, err := uow.ProjectRepository().FindOne(ctx, specification.ByApiKey{ApiKey: apiKey})
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, serverutils.NewNotFoundError("Project not found")
	}

	return &dto.WidgetProjectResponse{
		Id:           project.Id,
		HideBranding: project.HideBranding,
		Language:     project.Language,
	}, nil
}

func (s *widgetService) CreateFeedback(ctx context.Context, req *dto.CreateFeedbackRequest) (*dto.CreatedResponse, error) {
	projectId, err := s.resolveProjectId(ctx, req.ProjectId)
	if err != nil {
		return nil, err
	}
	if projectId == uuid.Nil {
		return nil, serverutils.NewValidationError("Invalid input data")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	feedback := entity.Feedback{
		Id:        uuid.New(),
		Content:   req.Content,
		Email:     req.Email,
		Name:      req.Name,
		Status:    entity.FeedbackStatusNew,
		Priority:  entity.PriorityMedium,
		Tags:      req.Tags,
		ProjectId: projectId,
		CreatedAt: time.Now(),
	}
	if err := uow.FeedbackRepository().Create(ctx, &feedback); err != nil {
		return nil, err
	}

	s.announceSubmission(ctx, "feedback", projectId, feedback.Id, feedback.Content)
	return &dto.CreatedResponse{Id: feedback.Id}, nil
}

func (s *widgetService) CreateReview(ctx context.Context, req *dto.CreateReviewRequest) (*dto.CreatedResponse, error) {
	projectId, err := s.resolveProjectId(ctx, req.ProjectId)
	if err != nil {
		return nil, err
	}
	if projectId == uuid.Nil {
		return nil, serverutils.NewValidationError("Invalid input data")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	review := entity.Review{
		Id:                  uuid.New(),
		Rating:              req.Rating,
		Content:             req.Content,
		Email:               req.Email,
		Name:                req.Name,
		SocialMediaProfile:  req.SocialMediaProfile,
		ConsentForMarketing: req.ConsentForMarketing,
		// Publication is an admin decision; client input never sets it.
		IsPublished: false,
		ProjectId:   projectId,
		CreatedAt:   time.Now(),
	}
	if err := uow.ReviewRepository().Create(ctx, &review); err != nil {
		return nil, err
	}

	s.announceSubmission(ctx, "review", projectId, review.Id, review.Content)
	return &dto.CreatedResponse{Id: review.Id}, nil
}

func (s *widgetService) CreateIssue(ctx context.Context, req *dto.CreateIssueRequest) (*dto.CreatedResponse, error) {
	projectId, err := s.resolveProjectId(ctx, req.ProjectId)
	if err != nil {
		return nil, err
	}
	if projectId == uuid.Nil {
		return nil, serverutils.NewValidationError("Invalid input data")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	issue := entity.Issue{
		Id:            uuid.New(),
		Description:   req.Description,
		ScreenshotUrl: req.ScreenshotUrl,
		Email:         req.Email,
		Name:          req.Name,
		Status:        entity.IssueStatusNew,
		Priority:      entity.PriorityMedium,
		Tags:          req.Tags,
		ProjectId:     projectId,
		CreatedAt:     time.Now(),
	}
	if err := uow.IssueRepository().Create(ctx, &issue); err != nil {
		return nil, err
	}

	s.announceSubmission(ctx, "issue", projectId, issue.Id, issue.Description)
	return &dto.CreatedResponse{Id: issue.Id}, nil
}

// CreateFeature inserts the request in quarantine status and, when the
// submitter sent a fingerprint, grants their vote in the same transaction.
func (s *widgetService) CreateFeature(ctx context.Context, req *dto.CreateFeatureRequest) (*dto.CreatedResponse, error) {
	projectId, err := s.resolveProjectId(ctx, req.ProjectId)
	if err != nil {
		return nil, err
	}
	if projectId == uuid.Nil {
		return nil, serverutils.NewValidationError("Invalid input data")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	feature := entity.FeatureRequest{
		Id:          uuid.New(),
		Title:       req.Title,
		Description: req.Description,
		Email:       req.Email,
		Name:        req.Name,
		Status:      entity.FeatureStatusNew,
		Priority:    entity.PriorityMedium,
		Tags:        req.Tags,
		ProjectId:   projectId,
		CreatedAt:   time.Now(),
	}
	if err := uow.FeatureRequestRepository().Create(ctx, &feature); err != nil {
		return nil, err
	}

	if req.Fingerprint != "" {
		vote := entity.Vote{
			Id:               uuid.New(),
			FeatureRequestId: feature.Id,
			Fingerprint:      req.Fingerprint,
			Email:            req.Email,
			CreatedAt:        time.Now(),
		}
		if err := uow.VoteRepository().Create(ctx, &vote); err != nil && !errors.Is(err, contract.ErrDuplicateVote) {
			return nil, err
		}
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	s.announceSubmission(ctx, "feature_request", projectId, feature.Id, feature.Title)
	return &dto.CreatedResponse{Id: feature.Id}, nil
}

func (s *widgetService) ListFeatures(ctx context.Context, apiKey, search, callerFingerprint string) ([]*dto.WidgetFeatureResponse, error) {
	projectId, err := s.resolveProjectId(ctx, apiKey)
	if err != nil {
		return nil, err
	}
	if projectId == uuid.Nil {
		return nil, serverutils.NewValidationError("Invalid input data")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	features, err := uow.FeatureRequestRepository().FindAll(ctx,
		specification.ByProjectID{ProjectID: projectId},
		specification.StatusNot{Status: string(entity.FeatureStatusNew)},
		specification.SearchText{Text: search},
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.OrderBy{Field: "id", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.WidgetFeatureResponse, 0, len(features))
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

	voted := map[uuid.UUID]bool{}
	if callerFingerprint != "" {
		voted, err = uow.VoteRepository().FindVotedFeatureIds(ctx, ids, callerFingerprint)
		if err != nil {
			return nil, err
		}
	}

	for _, f := range features {
		result = append(result, &dto.WidgetFeatureResponse{
			Id:          f.Id,
			Title:       f.Title,
			Description: f.Description,
			Status:      string(f.Status),
			Votes:       counts[f.Id],
			HasVoted:    voted[f.Id],
			CreatedAt:   f.CreatedAt,
		})
	}

	return result, nil
}

// ToggleVote flips the (feature, fingerprint) pair between Voted and NoVote.
// The uniqueness constraint is the authoritative guard: a duplicate-key insert
// collapses to "added", a delete that removed nothing collapses to "removed".
func (s *widgetService) ToggleVote(ctx context.Context, req *dto.VoteRequest) (*dto.VoteResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	feature, err := uow.FeatureRequestRepository().FindOne(ctx, specification.ByID{ID: req.FeatureRequestId})
	if err != nil {
		return nil, err
	}
	if feature == nil {
		return nil, serverutils.NewValidationError("Invalid input data")
	}

	existing, err := uow.VoteRepository().FindOne(ctx,
		specification.ByFeatureRequestID{FeatureRequestID: req.FeatureRequestId},
		specification.ByFingerprint{Fingerprint: req.Fingerprint},
	)
	if err != nil {
		return nil, err
	}

	if existing == nil {
		vote := entity.Vote{
			Id:               uuid.New(),
			FeatureRequestId: req.FeatureRequestId,
			Fingerprint:      req.Fingerprint,
			Email:            req.Email,
			CreatedAt:        time.Now(),
		}
		err := uow.VoteRepository().Create(ctx, &vote)
		if err != nil && !errors.Is(err, contract.ErrDuplicateVote) {
			return nil, err
		}
		s.announceVote(ctx, req.FeatureRequestId, entity.VoteActionAdded)
		return &dto.VoteResponse{Action: string(entity.VoteActionAdded)}, nil
	}

	// A zero-row delete means a concurrent toggle already removed it; both
	// requests land on the same observable state.
	if _, err := uow.VoteRepository().DeleteByPair(ctx, req.FeatureRequestId, req.Fingerprint); err != nil {
		return nil, err
	}
	s.announceVote(ctx, req.FeatureRequestId, entity.VoteActionRemoved)
	return &dto.VoteResponse{Action: string(entity.VoteActionRemoved)}, nil
}

func (s *widgetService) PublicReviews(ctx context.Context, apiKey string, limit int) ([]*dto.PublicReviewResponse, error) {
	projectId, err := s.resolveProjectId(ctx, apiKey)
	if err != nil {
		return nil, err
	}
	if projectId == uuid.Nil {
		return nil, serverutils.NewValidationError("Invalid input data")
	}

	specs := []specification.Specification{
		specification.ByProjectID{ProjectID: projectId},
		specification.PublishedForMarketing{},
		specification.OrderBy{Field: "created_at", Desc: true},
	}
	if limit > 0 {
		specs = append(specs, specification.Limit{N: limit})
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	reviews, err := uow.ReviewRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.PublicReviewResponse, 0, len(reviews))
	for _, r := range reviews {
		result = append(result, &dto.PublicReviewResponse{
			Id:                 r.Id,
			Rating:             r.Rating,
			Content:            r.Content,
			Name:               r.Name,
			SocialMediaProfile: r.SocialMediaProfile,
			CreatedAt:          r.CreatedAt,
		})
	}

	return result, nil
}

// announceSubmission fans the write out to the in-process bus (dashboard
// notifications, owner email) and the external NATS stream. Both are
// best effort: a dead bus never fails the widget request.
func (s *widgetService) announceSubmission(ctx context.Context, kind string, projectId, entityId uuid.UUID, summary string) {
	if s.publisherService != nil {
		msg := dto.SubmissionCreatedMessage{
			Kind:      kind,
			ProjectId: projectId,
			EntityId:  entityId,
			Summary:   summary,
		}
		if payload, err := json.Marshal(msg); err == nil {
			if err := s.publisherService.Publish(ctx, payload); err != nil {
				s.logger.Warn("WidgetService", "Failed to publish submission message", map[string]interface{}{"error": err.Error()})
			}
		}
	}

	if s.eventPublisher != nil {
		evt := events.NewSubmissionCreatedEvent(kind, projectId.String(), entityId.String())
		if err := s.eventPublisher.Publish(ctx, evt); err != nil {
			fmt.Printf("[WARN] Failed to publish SUBMISSION_CREATED event: %v\n", err)
		}
	}
}

func (s *widgetService) announceVote(ctx context.Context, featureRequestId uuid.UUID, action entity.VoteAction) {
	if s.eventPublisher == nil {
		return
	}
	evt := events.NewVoteToggledEvent(featureRequestId.String(), string(action))
	if err := s.eventPublisher.Publish(ctx, evt); err != nil {
		fmt.Printf("[WARN] Failed to publish VOTE_TOGGLED event: %v\n", err)
	}
}
