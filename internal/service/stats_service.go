package service

import (
	"context"
	"time"

	"happycust-be/internal/dto"
	"happycust-be/internal/entity"
	"happycust-be/internal/repository/specification"
	"happycust-be/internal/repository/unitofwork"

	"github.com/google/uuid"
	gocache "github.com/patrickmn/go-cache"
)

const statsCacheTTL = 30 * time.Second

type IStatsService interface {
	GetStats(ctx context.Context, userId uuid.UUID) (*dto.StatsResponse, error)
}

type statsService struct {
	uowFactory unitofwork.RepositoryFactory
	cache      *gocache.Cache
}

func NewStatsService(uowFactory unitofwork.RepositoryFactory) IStatsService {
	return &statsService{
		uowFactory: uowFactory,
		cache:      gocache.New(statsCacheTTL, time.Minute),
	}
}

// GetStats aggregates the dashboard counters over the caller's projects. The
// result is cached per user for a short window; the dashboard polls it.
func (s *statsService) GetStats(ctx context.Context, userId uuid.UUID) (*dto.StatsResponse, error) {
	cacheKey := "stats:" + userId.String()
	if cached, found := s.cache.Get(cacheKey); found {
		return cached.(*dto.StatsResponse), nil
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	_, projectIds, err := ownedProjects(ctx, uow, userId)
	if err != nil {
		return nil, err
	}

	stats := &dto.StatsResponse{TotalProjects: int64(len(projectIds))}
	if len(projectIds) == 0 {
		s.cache.Set(cacheKey, stats, gocache.DefaultExpiration)
		return stats, nil
	}

	scope := specification.ByProjectIDs{ProjectIDs: projectIds}
	weekAgo := specification.CreatedSince{Since: time.Now().AddDate(0, 0, -7)}

	if stats.TotalFeedbacks, err = uow.FeedbackRepository().Count(ctx, scope); err != nil {
		return nil, err
	}
	if stats.TotalReviews, err = uow.ReviewRepository().Count(ctx, scope); err != nil {
		return nil, err
	}
	if stats.TotalIssues, err = uow.IssueRepository().Count(ctx, scope); err != nil {
		return nil, err
	}
	if stats.TotalFeatureRequests, err = uow.FeatureRequestRepository().Count(ctx, scope); err != nil {
		return nil, err
	}

	if stats.RecentFeedbacks, err = uow.FeedbackRepository().Count(ctx, scope, weekAgo); err != nil {
		return nil, err
	}
	if stats.RecentReviews, err = uow.ReviewRepository().Count(ctx, scope, weekAgo); err != nil {
		return nil, err
	}
	if stats.RecentIssues, err = uow.IssueRepository().Count(ctx, scope, weekAgo); err != nil {
		return nil, err
	}
	if stats.RecentFeatureRequests, err = uow.FeatureRequestRepository().Count(ctx, scope, weekAgo); err != nil {
		return nil, err
	}

	if stats.PendingFeatures, err = uow.FeatureRequestRepository().Count(ctx, scope,
		specification.ByStatus{Status: string(entity.FeatureStatusNew)}); err != nil {
		return nil, err
	}
	if stats.UnresolvedIssues, err = uow.IssueRepository().Count(ctx, scope,
		specification.StatusIn{Statuses: []string{string(entity.IssueStatusNew), string(entity.IssueStatusInProgress)}}); err != nil {
		return nil, err
	}
	if stats.UnpublishedReviews, err = uow.ReviewRepository().Count(ctx, scope,
		specification.IsPublished{Published: false}); err != nil {
		return nil, err
	}
	if stats.NewFeedbacks, err = uow.FeedbackRepository().Count(ctx, scope,
		specification.ByStatus{Status: string(entity.FeedbackStatusNew)}); err != nil {
		return nil, err
	}

	s.cache.Set(cacheKey, stats, gocache.DefaultExpiration)
	return stats, nil
}
