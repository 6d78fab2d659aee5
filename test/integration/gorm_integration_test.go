package integration

import (
	"context"
	"log"
	"os"
	"testing"

	"happycust-be/internal/entity"
	"happycust-be/internal/repository/contract"
	"happycust-be/internal/repository/specification"
	"happycust-be/internal/repository/unitofwork"
	"happycust-be/pkg/database"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
)

func TestGormConnection(t *testing.T) {
	// Load .env from root
	err := godotenv.Load("../../.env")
	if err != nil {
		log.Println("No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		t.Skip("Skipping integration test: DB_CONNECTION_STRING not set")
	}

	gormDB, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		t.Fatalf("Failed to connect to DB: %v", err)
	}

	// Verify wiring
	uowFactory := unitofwork.NewRepositoryFactory(gormDB)
	uow := uowFactory.NewUnitOfWork(context.Background())

	assert.NotNil(t, uow.UserRepository())
	assert.NotNil(t, uow.ProjectRepository())
	assert.NotNil(t, uow.VoteRepository())

	sqlDB, _ := gormDB.DB()
	err = sqlDB.Ping()
	assert.NoError(t, err)

	t.Run("Check Project Repository", func(t *testing.T) {
		count, err := uow.ProjectRepository().Count(context.Background())
		assert.NoError(t, err)
		t.Logf("Project count: %d", count)
	})

	t.Run("Check Vote Uniqueness Constraint", func(t *testing.T) {
		ctx := context.Background()

		user := &entity.User{
			Id:    uuid.New(),
			Email: "test-integration-" + uuid.New().String() + "@example.com",
			Name:  "Integration Test User",
			Role:  entity.UserRoleAdmin,
		}
		err := uow.UserRepository().Create(ctx, user)
		assert.NoError(t, err)

		project := &entity.Project{
			Id:       uuid.New(),
			Name:     "Integration Project",
			Slug:     "integration-" + uuid.New().String(),
			ApiKey:   "hc_integration_" + uuid.New().String(),
			Language: "en",
			UserId:   user.Id,
		}
		err = uow.ProjectRepository().Create(ctx, project)
		assert.NoError(t, err)

		feature := &entity.FeatureRequest{
			Id:          uuid.New(),
			Title:       "Integration feature",
			Description: "created by the integration test",
			Status:      entity.FeatureStatusPlanned,
			Priority:    entity.PriorityMedium,
			ProjectId:   project.Id,
		}
		err = uow.FeatureRequestRepository().Create(ctx, feature)
		assert.NoError(t, err)

		fingerprint := "itest-" + uuid.New().String()

		vote := &entity.Vote{Id: uuid.New(), FeatureRequestId: feature.Id, Fingerprint: fingerprint}
		err = uow.VoteRepository().Create(ctx, vote)
		assert.NoError(t, err)

		// Second insert for the same pair must hit the unique index and come
		// back as the sentinel, not a raw driver error.
		dup := &entity.Vote{Id: uuid.New(), FeatureRequestId: feature.Id, Fingerprint: fingerprint}
		err = uow.VoteRepository().Create(ctx, dup)
		assert.ErrorIs(t, err, contract.ErrDuplicateVote)

		removed, err := uow.VoteRepository().DeleteByPair(ctx, feature.Id, fingerprint)
		assert.NoError(t, err)
		assert.Equal(t, int64(1), removed)

		removed, err = uow.VoteRepository().DeleteByPair(ctx, feature.Id, fingerprint)
		assert.NoError(t, err)
		assert.Equal(t, int64(0), removed)

		// Cleanup
		_ = uow.FeatureRequestRepository().Delete(ctx, feature.Id)
		_ = uow.ProjectRepository().Delete(ctx, project.Id)
	})

	t.Run("Check Feature Visibility Query", func(t *testing.T) {
		ctx := context.Background()

		features, err := uow.FeatureRequestRepository().FindAll(ctx,
			specification.StatusNot{Status: string(entity.FeatureStatusNew)},
			specification.OrderBy{Field: "created_at", Desc: true},
		)
		assert.NoError(t, err)
		for _, f := range features {
			assert.NotEqual(t, entity.FeatureStatusNew, f.Status)
		}
	})
}
