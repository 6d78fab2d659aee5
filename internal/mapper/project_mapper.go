package mapper

import (
	"happycust-be/internal/entity"
	"happycust-be/internal/model"
)

type ProjectMapper struct{}

func NewProjectMapper() *ProjectMapper {
	return &ProjectMapper{}
}

func (m *ProjectMapper) ToEntity(p *model.Project) *entity.Project {
	if p == nil {
		return nil
	}
	return &entity.Project{
		Id:           p.Id,
		Name:         p.Name,
		Slug:         p.Slug,
		ApiKey:       p.ApiKey,
		Domain:       p.Domain,
		Language:     p.Language,
		HideBranding: p.HideBranding,
		UserId:       p.UserId,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

func (m *ProjectMapper) ToModel(p *entity.Project) *model.Project {
	if p == nil {
		return nil
	}
	return &model.Project{
		Id:           p.Id,
		Name:         p.Name,
		Slug:         p.Slug,
		ApiKey:       p.ApiKey,
		Domain:       p.Domain,
		Language:     p.Language,
		HideBranding: p.HideBranding,
		UserId:       p.UserId,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

func (m *ProjectMapper) ToEntities(projects []*model.Project) []*entity.Project {
	entities := make([]*entity.Project, len(projects))
	for i, p := range projects {
		entities[i] = m.ToEntity(p)
	}
	return entities
}
