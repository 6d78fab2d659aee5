package service

import (
	"context"
	"strings"
	"testing"

	"happycust-be/internal/dto"
	"happycust-be/internal/pkg/serverutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjectCreate(t *testing.T) {
	ctx := context.Background()
	ownerId := uuid.New()

	t.Run("issues an api key and defaults the language", func(t *testing.T) {
		store := &fakeStore{}
		svc := NewProjectService(&fakeFactory{store: store})

		res, err := svc.Create(ctx, ownerId, &dto.CreateProjectRequest{Name: "Acme", Slug: "acme"})
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(res.ApiKey, "hc_"))
		assert.Equal(t, "en", res.Language)

		require.Len(t, store.projects, 1)
		assert.Equal(t, ownerId, store.projects[0].UserId)
	})

	t.Run("slug collision is rejected", func(t *testing.T) {
		store := &fakeStore{}
		svc := NewProjectService(&fakeFactory{store: store})

		_, err := svc.Create(ctx, ownerId, &dto.CreateProjectRequest{Name: "Acme", Slug: "acme"})
		require.NoError(t, err)

		_, err = svc.Create(ctx, uuid.New(), &dto.CreateProjectRequest{Name: "Other", Slug: "acme"})
		var appErr *serverutils.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, 400, appErr.Code)
		assert.Equal(t, "Slug already in use", appErr.Message)
	})

	t.Run("api keys are unique per project", func(t *testing.T) {
		store := &fakeStore{}
		svc := NewProjectService(&fakeFactory{store: store})

		first, err := svc.Create(ctx, ownerId, &dto.CreateProjectRequest{Name: "A", Slug: "a"})
		require.NoError(t, err)
		second, err := svc.Create(ctx, ownerId, &dto.CreateProjectRequest{Name: "B", Slug: "b"})
		require.NoError(t, err)
		assert.NotEqual(t, first.ApiKey, second.ApiKey)
	})
}

func TestProjectUpdate(t *testing.T) {
	ctx := context.Background()
	ownerId := uuid.New()

	setup := func() (*fakeStore, IProjectService, *dto.ProjectResponse) {
		store := &fakeStore{}
		svc := NewProjectService(&fakeFactory{store: store})
		created, err := svc.Create(ctx, ownerId, &dto.CreateProjectRequest{Name: "Acme", Slug: "acme"})
		require.NoError(t, err)
		return store, svc, created
	}

	t.Run("owner can rename and toggle branding", func(t *testing.T) {
		_, svc, created := setup()

		name := "Acme v2"
		hide := true
		res, err := svc.Update(ctx, ownerId, &dto.UpdateProjectRequest{
			Id:           created.Id,
			Name:         &name,
			HideBranding: &hide,
		})
		require.NoError(t, err)
		assert.Equal(t, "Acme v2", res.Name)
		assert.True(t, res.HideBranding)
		// Immutable after creation.
		assert.Equal(t, created.Slug, res.Slug)
		assert.Equal(t, created.ApiKey, res.ApiKey)
	})

	t.Run("someone else's project is forbidden", func(t *testing.T) {
		_, svc, created := setup()

		name := "hijack"
		_, err := svc.Update(ctx, uuid.New(), &dto.UpdateProjectRequest{Id: created.Id, Name: &name})
		var appErr *serverutils.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, 403, appErr.Code)
	})

	t.Run("missing project is 404", func(t *testing.T) {
		_, svc, _ := setup()

		name := "ghost"
		_, err := svc.Update(ctx, ownerId, &dto.UpdateProjectRequest{Id: uuid.New(), Name: &name})
		var appErr *serverutils.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, 404, appErr.Code)
	})
}

func TestProjectDelete(t *testing.T) {
	ctx := context.Background()
	ownerId := uuid.New()

	store := &fakeStore{}
	svc := NewProjectService(&fakeFactory{store: store})
	created, err := svc.Create(ctx, ownerId, &dto.CreateProjectRequest{Name: "Acme", Slug: "acme"})
	require.NoError(t, err)

	err = svc.Delete(ctx, uuid.New(), created.Id)
	var appErr *serverutils.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 403, appErr.Code)

	require.NoError(t, svc.Delete(ctx, ownerId, created.Id))
}
