package service

import (
	"context"

	"happycust-be/internal/entity"
	"happycust-be/internal/pkg/serverutils"
	"happycust-be/internal/repository/specification"
	"happycust-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

// ownedProjects returns the caller's projects keyed by id. Every admin read
// and write is scoped through this map; content in someone else's project is
// indistinguishable from content that does not exist on reads, and a
// Forbidden on targeted writes.
func ownedProjects(ctx context.Context, uow unitofwork.UnitOfWork, userId uuid.UUID) (map[uuid.UUID]*entity.Project, []uuid.UUID, error) {
	projects, err := uow.ProjectRepository().FindAll(ctx, specification.OwnedBy{UserID: userId})
	if err != nil {
		return nil, nil, err
	}

	byId := make(map[uuid.UUID]*entity.Project, len(projects))
	ids := make([]uuid.UUID, 0, len(projects))
	for _, p := range projects {
		byId[p.Id] = p
		ids = append(ids, p.Id)
	}
	return byId, ids, nil
}

// requireOwnership maps the (exists, owned) pair onto the admin error
// taxonomy: missing rows are NotFound, foreign rows are Forbidden.
func requireOwnership(ctx context.Context, uow unitofwork.UnitOfWork, userId, projectId uuid.UUID) error {
	project, err := uow.ProjectRepository().FindOne(ctx, specification.ByID{ID: projectId})
	if err != nil {
		return err
	}
	if project == nil {
		return serverutils.NewNotFoundError("Not found")
	}
	if project.UserId != userId {
		return serverutils.NewForbiddenError("Not your project")
	}
	return nil
}
