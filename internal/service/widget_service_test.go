package service

import (
	"context"
	"sort"
	"strings"
	"testing"
	"time"

	"happycust-be/internal/dto"
	"happycust-be/internal/entity"
	"happycust-be/internal/pkg/serverutils"
	"happycust-be/internal/repository/contract"
	"happycust-be/internal/repository/specification"
	"happycust-be/internal/repository/unitofwork"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// In-memory repositories interpreting the same specifications the gorm
// implementations translate to SQL. Enough behavior to exercise the widget
// flows without a database.

type fakeStore struct {
	users     []*entity.User
	providers []*entity.UserProvider
	projects  []*entity.Project
	feedbacks []*entity.Feedback
	reviews   []*entity.Review
	issues    []*entity.Issue
	features  []*entity.FeatureRequest
	votes     []*entity.Vote
}

type fakeUow struct {
	store *fakeStore
}

func (u *fakeUow) Begin(ctx context.Context) error { return nil }
func (u *fakeUow) Commit() error                   { return nil }
func (u *fakeUow) Rollback() error                 { return nil }

func (u *fakeUow) UserRepository() contract.UserRepository {
	return &fakeUserRepo{store: u.store}
}
func (u *fakeUow) ProjectRepository() contract.ProjectRepository {
	return &fakeProjectRepo{store: u.store}
}
func (u *fakeUow) FeedbackRepository() contract.FeedbackRepository {
	return &fakeFeedbackRepo{store: u.store}
}
func (u *fakeUow) ReviewRepository() contract.ReviewRepository {
	return &fakeReviewRepo{store: u.store}
}
func (u *fakeUow) IssueRepository() contract.IssueRepository {
	return &fakeIssueRepo{store: u.store}
}
func (u *fakeUow) FeatureRequestRepository() contract.FeatureRequestRepository {
	return &fakeFeatureRepo{store: u.store}
}
func (u *fakeUow) VoteRepository() contract.VoteRepository {
	return &fakeVoteRepo{store: u.store}
}

type fakeFactory struct {
	store *fakeStore
}

func (f *fakeFactory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork {
	return &fakeUow{store: f.store}
}

type fakeUserRepo struct {
	store *fakeStore
}

func (r *fakeUserRepo) Create(ctx context.Context, user *entity.User) error {
	r.store.users = append(r.store.users, user)
	return nil
}
func (r *fakeUserRepo) Update(ctx context.Context, user *entity.User) error { return nil }
func (r *fakeUserRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.User, error) {
	for _, u := range r.store.users {
		if matchUser(u, specs) {
			return u, nil
		}
	}
	return nil, nil
}
func (r *fakeUserRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return int64(len(r.store.users)), nil
}
func (r *fakeUserRepo) CreateProvider(ctx context.Context, provider *entity.UserProvider) error {
	r.store.providers = append(r.store.providers, provider)
	return nil
}
func (r *fakeUserRepo) FindProvider(ctx context.Context, providerName, providerUserId string) (*entity.UserProvider, error) {
	for _, p := range r.store.providers {
		if p.ProviderName == providerName && p.ProviderUserId == providerUserId {
			return p, nil
		}
	}
	return nil, nil
}

func matchUser(u *entity.User, specs []specification.Specification) bool {
	for _, s := range specs {
		switch v := s.(type) {
		case specification.ByEmail:
			if u.Email != v.Email {
				return false
			}
		case specification.ByID:
			if u.Id != v.ID {
				return false
			}
		}
	}
	return true
}

type fakeProjectRepo struct {
	store *fakeStore
}

func (r *fakeProjectRepo) Create(ctx context.Context, p *entity.Project) error {
	r.store.projects = append(r.store.projects, p)
	return nil
}
func (r *fakeProjectRepo) Update(ctx context.Context, p *entity.Project) error { return nil }
func (r *fakeProjectRepo) Delete(ctx context.Context, id uuid.UUID) error      { return nil }
func (r *fakeProjectRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Project, error) {
	for _, p := range r.store.projects {
		if matchProject(p, specs) {
			return p, nil
		}
	}
	return nil, nil
}
func (r *fakeProjectRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Project, error) {
	out := make([]*entity.Project, 0)
	for _, p := range r.store.projects {
		if matchProject(p, specs) {
			out = append(out, p)
		}
	}
	return out, nil
}
func (r *fakeProjectRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	all, _ := r.FindAll(ctx, specs...)
	return int64(len(all)), nil
}

func matchProject(p *entity.Project, specs []specification.Specification) bool {
	for _, s := range specs {
		switch v := s.(type) {
		case specification.ByApiKey:
			if p.ApiKey != v.ApiKey {
				return false
			}
		case specification.ByID:
			if p.Id != v.ID {
				return false
			}
		case specification.BySlug:
			if p.Slug != v.Slug {
				return false
			}
		case specification.OwnedBy:
			if p.UserId != v.UserID {
				return false
			}
		}
	}
	return true
}

type fakeFeedbackRepo struct {
	store *fakeStore
}

func (r *fakeFeedbackRepo) Create(ctx context.Context, f *entity.Feedback) error {
	r.store.feedbacks = append(r.store.feedbacks, f)
	return nil
}
func (r *fakeFeedbackRepo) Update(ctx context.Context, f *entity.Feedback) error { return nil }
func (r *fakeFeedbackRepo) Delete(ctx context.Context, id uuid.UUID) error       { return nil }
func (r *fakeFeedbackRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Feedback, error) {
	return nil, nil
}
func (r *fakeFeedbackRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Feedback, error) {
	return r.store.feedbacks, nil
}
func (r *fakeFeedbackRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return int64(len(r.store.feedbacks)), nil
}

type fakeReviewRepo struct {
	store *fakeStore
}

func (r *fakeReviewRepo) Create(ctx context.Context, rev *entity.Review) error {
	r.store.reviews = append(r.store.reviews, rev)
	return nil
}
func (r *fakeReviewRepo) Update(ctx context.Context, rev *entity.Review) error { return nil }
func (r *fakeReviewRepo) Delete(ctx context.Context, id uuid.UUID) error       { return nil }
func (r *fakeReviewRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Review, error) {
	return nil, nil
}
func (r *fakeReviewRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Review, error) {
	out := make([]*entity.Review, 0)
	limit := 0
	for _, s := range specs {
		if l, ok := s.(specification.Limit); ok {
			limit = l.N
		}
	}
	for _, rev := range r.store.reviews {
		if matchReview(rev, specs) {
			out = append(out, rev)
		}
	}
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}
func (r *fakeReviewRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	all, _ := r.FindAll(ctx, specs...)
	return int64(len(all)), nil
}

func matchReview(rev *entity.Review, specs []specification.Specification) bool {
	for _, s := range specs {
		switch v := s.(type) {
		case specification.ByProjectID:
			if rev.ProjectId != v.ProjectID {
				return false
			}
		case specification.PublishedForMarketing:
			if !rev.IsPublished || !rev.ConsentForMarketing {
				return false
			}
		case specification.IsPublished:
			if rev.IsPublished != v.Published {
				return false
			}
		}
	}
	return true
}

type fakeIssueRepo struct {
	store *fakeStore
}

func (r *fakeIssueRepo) Create(ctx context.Context, i *entity.Issue) error {
	r.store.issues = append(r.store.issues, i)
	return nil
}
func (r *fakeIssueRepo) Update(ctx context.Context, i *entity.Issue) error { return nil }
func (r *fakeIssueRepo) Delete(ctx context.Context, id uuid.UUID) error    { return nil }
func (r *fakeIssueRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Issue, error) {
	return nil, nil
}
func (r *fakeIssueRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Issue, error) {
	return r.store.issues, nil
}
func (r *fakeIssueRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return int64(len(r.store.issues)), nil
}

type fakeFeatureRepo struct {
	store *fakeStore
}

func (r *fakeFeatureRepo) Create(ctx context.Context, f *entity.FeatureRequest) error {
	r.store.features = append(r.store.features, f)
	return nil
}
func (r *fakeFeatureRepo) Update(ctx context.Context, f *entity.FeatureRequest) error { return nil }
func (r *fakeFeatureRepo) Delete(ctx context.Context, id uuid.UUID) error             { return nil }
func (r *fakeFeatureRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.FeatureRequest, error) {
	for _, f := range r.store.features {
		if matchFeature(f, specs) {
			return f, nil
		}
	}
	return nil, nil
}
func (r *fakeFeatureRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.FeatureRequest, error) {
	out := make([]*entity.FeatureRequest, 0)
	for _, f := range r.store.features {
		if matchFeature(f, specs) {
			out = append(out, f)
		}
	}
	// Mirrors ORDER BY created_at DESC, id DESC.
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].Id.String() > out[j].Id.String()
	})
	return out, nil
}
func (r *fakeFeatureRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	all, _ := r.FindAll(ctx, specs...)
	return int64(len(all)), nil
}

func matchFeature(f *entity.FeatureRequest, specs []specification.Specification) bool {
	for _, s := range specs {
		switch v := s.(type) {
		case specification.ByID:
			if f.Id != v.ID {
				return false
			}
		case specification.ByProjectID:
			if f.ProjectId != v.ProjectID {
				return false
			}
		case specification.StatusNot:
			if string(f.Status) == v.Status {
				return false
			}
		case specification.SearchText:
			if v.Text == "" {
				continue
			}
			needle := strings.ToLower(v.Text)
			if !strings.Contains(strings.ToLower(f.Title), needle) &&
				!strings.Contains(strings.ToLower(f.Description), needle) {
				return false
			}
		}
	}
	return true
}

type fakeVoteRepo struct {
	store *fakeStore
}

func (r *fakeVoteRepo) Create(ctx context.Context, vote *entity.Vote) error {
	for _, v := range r.store.votes {
		if v.FeatureRequestId == vote.FeatureRequestId && v.Fingerprint == vote.Fingerprint {
			return contract.ErrDuplicateVote
		}
	}
	r.store.votes = append(r.store.votes, vote)
	return nil
}

func (r *fakeVoteRepo) DeleteByPair(ctx context.Context, featureRequestId uuid.UUID, fingerprint string) (int64, error) {
	kept := r.store.votes[:0]
	var removed int64
	for _, v := range r.store.votes {
		if v.FeatureRequestId == featureRequestId && v.Fingerprint == fingerprint {
			removed++
			continue
		}
		kept = append(kept, v)
	}
	r.store.votes = kept
	return removed, nil
}

func (r *fakeVoteRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Vote, error) {
	for _, v := range r.store.votes {
		if matchVote(v, specs) {
			return v, nil
		}
	}
	return nil, nil
}

func (r *fakeVoteRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Vote, error) {
	out := make([]*entity.Vote, 0)
	for _, v := range r.store.votes {
		if matchVote(v, specs) {
			out = append(out, v)
		}
	}
	return out, nil
}

func (r *fakeVoteRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	all, _ := r.FindAll(ctx, specs...)
	return int64(len(all)), nil
}

func (r *fakeVoteRepo) CountByFeatureIds(ctx context.Context, featureIds []uuid.UUID) (map[uuid.UUID]int64, error) {
	counts := make(map[uuid.UUID]int64)
	wanted := make(map[uuid.UUID]bool, len(featureIds))
	for _, id := range featureIds {
		wanted[id] = true
	}
	for _, v := range r.store.votes {
		if wanted[v.FeatureRequestId] {
			counts[v.FeatureRequestId]++
		}
	}
	return counts, nil
}

func (r *fakeVoteRepo) FindVotedFeatureIds(ctx context.Context, featureIds []uuid.UUID, fingerprint string) (map[uuid.UUID]bool, error) {
	voted := make(map[uuid.UUID]bool)
	wanted := make(map[uuid.UUID]bool, len(featureIds))
	for _, id := range featureIds {
		wanted[id] = true
	}
	for _, v := range r.store.votes {
		if wanted[v.FeatureRequestId] && v.Fingerprint == fingerprint {
			voted[v.FeatureRequestId] = true
		}
	}
	return voted, nil
}

func matchVote(v *entity.Vote, specs []specification.Specification) bool {
	for _, s := range specs {
		switch sp := s.(type) {
		case specification.ByFeatureRequestID:
			if v.FeatureRequestId != sp.FeatureRequestID {
				return false
			}
		case specification.ByFingerprint:
			if v.Fingerprint != sp.Fingerprint {
				return false
			}
		}
	}
	return true
}

type nopLogger struct{}

func (nopLogger) Debug(module, message string, details map[string]interface{}) {}
func (nopLogger) Info(module, message string, details map[string]interface{})  {}
func (nopLogger) Warn(module, message string, details map[string]interface{})  {}
func (nopLogger) Error(module, message string, details map[string]interface{}) {}
func (nopLogger) Sync() error                                                  { return nil }

func newWidgetFixture() (*fakeStore, IWidgetService, *entity.Project) {
	store := &fakeStore{}
	project := &entity.Project{
		Id:     uuid.New(),
		Name:   "Acme",
		Slug:   "acme",
		ApiKey: "hc_test_key",
		UserId: uuid.New(),
	}
	store.projects = append(store.projects, project)

	svc := NewWidgetService(&fakeFactory{store: store}, nil, nil, nil, nopLogger{})
	return store, svc, project
}

func TestResolveProject(t *testing.T) {
	_, svc, project := newWidgetFixture()
	ctx := context.Background()

	t.Run("known key resolves the same project twice", func(t *testing.T) {
		first, err := svc.ResolveProject(ctx, "hc_test_key")
		require.NoError(t, err)
		second, err := svc.ResolveProject(ctx, "hc_test_key")
		require.NoError(t, err)
		assert.Equal(t, project.Id, first.Id)
		assert.Equal(t, first.Id, second.Id)
	})

	t.Run("unknown key is not found, not an internal error", func(t *testing.T) {
		_, err := svc.ResolveProject(ctx, "nope")
		var appErr *serverutils.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, 404, appErr.Code)
	})
}

func TestCreateFeedbackForcesModerationDefaults(t *testing.T) {
	store, svc, _ := newWidgetFixture()
	ctx := context.Background()

	res, err := svc.CreateFeedback(ctx, &dto.CreateFeedbackRequest{
		ProjectId: "hc_test_key",
		Content:   "nice product",
	})
	require.NoError(t, err)
	require.Len(t, store.feedbacks, 1)
	assert.Equal(t, res.Id, store.feedbacks[0].Id)
	assert.Equal(t, entity.FeedbackStatusNew, store.feedbacks[0].Status)
	assert.Equal(t, entity.PriorityMedium, store.feedbacks[0].Priority)
}

func TestCreateFeedbackWithoutContent(t *testing.T) {
	store, svc, _ := newWidgetFixture()

	res, err := svc.CreateFeedback(context.Background(), &dto.CreateFeedbackRequest{
		ProjectId: "hc_test_key",
	})
	require.NoError(t, err)
	require.Len(t, store.feedbacks, 1)
	assert.Equal(t, res.Id, store.feedbacks[0].Id)
	assert.Equal(t, "", store.feedbacks[0].Content)
}

func TestCreateFeedbackInvalidKey(t *testing.T) {
	store, svc, _ := newWidgetFixture()

	_, err := svc.CreateFeedback(context.Background(), &dto.CreateFeedbackRequest{
		ProjectId: "wrong_key",
		Content:   "hello",
	})
	var appErr *serverutils.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 400, appErr.Code)
	assert.Empty(t, store.feedbacks)
}

func TestCreateReviewAlwaysUnpublished(t *testing.T) {
	store, svc, _ := newWidgetFixture()

	_, err := svc.CreateReview(context.Background(), &dto.CreateReviewRequest{
		ProjectId:           "hc_test_key",
		Rating:              5,
		Content:             "Great!",
		Email:               "a@b.com",
		ConsentForMarketing: true,
	})
	require.NoError(t, err)
	require.Len(t, store.reviews, 1)
	assert.False(t, store.reviews[0].IsPublished)
	assert.True(t, store.reviews[0].ConsentForMarketing)
}

func TestCreateFeatureAutoVote(t *testing.T) {
	t.Run("fingerprint present grants the initial vote", func(t *testing.T) {
		store, svc, _ := newWidgetFixture()

		res, err := svc.CreateFeature(context.Background(), &dto.CreateFeatureRequest{
			ProjectId:   "hc_test_key",
			Title:       "Dark mode",
			Description: "please",
			Fingerprint: "fp1",
		})
		require.NoError(t, err)
		require.Len(t, store.features, 1)
		assert.Equal(t, entity.FeatureStatusNew, store.features[0].Status)
		require.Len(t, store.votes, 1)
		assert.Equal(t, res.Id, store.votes[0].FeatureRequestId)
		assert.Equal(t, "fp1", store.votes[0].Fingerprint)
	})

	t.Run("no fingerprint, no vote", func(t *testing.T) {
		store, svc, _ := newWidgetFixture()

		_, err := svc.CreateFeature(context.Background(), &dto.CreateFeatureRequest{
			ProjectId:   "hc_test_key",
			Title:       "Dark mode",
			Description: "please",
		})
		require.NoError(t, err)
		assert.Empty(t, store.votes)
	})
}

func TestToggleVote(t *testing.T) {
	ctx := context.Background()

	t.Run("toggle twice returns to NoVote", func(t *testing.T) {
		store, svc, project := newWidgetFixture()
		feature := &entity.FeatureRequest{Id: uuid.New(), Title: "f", ProjectId: project.Id, Status: entity.FeatureStatusPlanned}
		store.features = append(store.features, feature)

		req := &dto.VoteRequest{FeatureRequestId: feature.Id, Fingerprint: "fp1"}

		res, err := svc.ToggleVote(ctx, req)
		require.NoError(t, err)
		assert.Equal(t, "added", res.Action)
		assert.Len(t, store.votes, 1)

		res, err = svc.ToggleVote(ctx, req)
		require.NoError(t, err)
		assert.Equal(t, "removed", res.Action)
		assert.Empty(t, store.votes)
	})

	t.Run("independent fingerprints do not interfere", func(t *testing.T) {
		store, svc, project := newWidgetFixture()
		feature := &entity.FeatureRequest{Id: uuid.New(), Title: "f", ProjectId: project.Id, Status: entity.FeatureStatusPlanned}
		store.features = append(store.features, feature)

		_, err := svc.ToggleVote(ctx, &dto.VoteRequest{FeatureRequestId: feature.Id, Fingerprint: "fp1"})
		require.NoError(t, err)
		_, err = svc.ToggleVote(ctx, &dto.VoteRequest{FeatureRequestId: feature.Id, Fingerprint: "fp2"})
		require.NoError(t, err)
		assert.Len(t, store.votes, 2)
	})

	t.Run("duplicate insert collapses to added", func(t *testing.T) {
		store, _, project := newWidgetFixture()
		feature := &entity.FeatureRequest{Id: uuid.New(), Title: "f", ProjectId: project.Id, Status: entity.FeatureStatusPlanned}
		store.features = append(store.features, feature)

		// A concurrent request inserted the row after our existence check
		// would have seen nothing; the constraint violation must still
		// report "added".
		store.votes = append(store.votes, &entity.Vote{
			Id: uuid.New(), FeatureRequestId: feature.Id, Fingerprint: "fp1",
		})

		repo := &fakeVoteRepo{store: store}
		err := repo.Create(ctx, &entity.Vote{Id: uuid.New(), FeatureRequestId: feature.Id, Fingerprint: "fp1"})
		assert.ErrorIs(t, err, contract.ErrDuplicateVote)
	})

	t.Run("unknown feature is a client error", func(t *testing.T) {
		_, svc, _ := newWidgetFixture()
		_, err := svc.ToggleVote(ctx, &dto.VoteRequest{FeatureRequestId: uuid.New(), Fingerprint: "fp1"})
		var appErr *serverutils.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, 400, appErr.Code)
	})
}

func TestListFeatures(t *testing.T) {
	ctx := context.Background()
	store, svc, project := newWidgetFixture()

	base := time.Now().Add(-time.Hour)
	quarantined := &entity.FeatureRequest{Id: uuid.New(), Title: "hidden", Description: "not yet", Status: entity.FeatureStatusNew, ProjectId: project.Id, CreatedAt: base}
	older := &entity.FeatureRequest{Id: uuid.New(), Title: "Export data", Description: "CSV export", Status: entity.FeatureStatusPlanned, ProjectId: project.Id, CreatedAt: base.Add(time.Minute)}
	newer := &entity.FeatureRequest{Id: uuid.New(), Title: "Dark mode", Description: "dark theme", Status: entity.FeatureStatusUnderConsideration, ProjectId: project.Id, CreatedAt: base.Add(2 * time.Minute)}
	store.features = append(store.features, quarantined, older, newer)

	store.votes = append(store.votes,
		&entity.Vote{Id: uuid.New(), FeatureRequestId: older.Id, Fingerprint: "fp1"},
		&entity.Vote{Id: uuid.New(), FeatureRequestId: older.Id, Fingerprint: "fp2"},
	)

	t.Run("quarantined features stay hidden, newest first", func(t *testing.T) {
		res, err := svc.ListFeatures(ctx, "hc_test_key", "", "")
		require.NoError(t, err)
		require.Len(t, res, 2)
		assert.Equal(t, newer.Id, res[0].Id)
		assert.Equal(t, older.Id, res[1].Id)
	})

	t.Run("vote counts and hasVoted per caller", func(t *testing.T) {
		res, err := svc.ListFeatures(ctx, "hc_test_key", "", "fp1")
		require.NoError(t, err)
		require.Len(t, res, 2)
		assert.Equal(t, int64(0), res[0].Votes)
		assert.False(t, res[0].HasVoted)
		assert.Equal(t, int64(2), res[1].Votes)
		assert.True(t, res[1].HasVoted)
	})

	t.Run("case-insensitive substring search", func(t *testing.T) {
		res, err := svc.ListFeatures(ctx, "hc_test_key", "DARK", "")
		require.NoError(t, err)
		require.Len(t, res, 1)
		assert.Equal(t, newer.Id, res[0].Id)
	})
}

func TestPublicReviews(t *testing.T) {
	ctx := context.Background()
	store, svc, project := newWidgetFixture()

	store.reviews = append(store.reviews,
		&entity.Review{Id: uuid.New(), Rating: 5, Content: "published+consent", ProjectId: project.Id, IsPublished: true, ConsentForMarketing: true},
		&entity.Review{Id: uuid.New(), Rating: 4, Content: "published only", ProjectId: project.Id, IsPublished: true},
		&entity.Review{Id: uuid.New(), Rating: 3, Content: "consent only", ProjectId: project.Id, ConsentForMarketing: true},
	)

	res, err := svc.PublicReviews(ctx, "hc_test_key", 0)
	require.NoError(t, err)
	require.Len(t, res, 1)
	assert.Equal(t, "published+consent", res[0].Content)
}
