package mapper

import (
	"happycust-be/internal/entity"
	"happycust-be/internal/model"
)

type FeatureMapper struct{}

func NewFeatureMapper() *FeatureMapper {
	return &FeatureMapper{}
}

func (m *FeatureMapper) ToEntity(f *model.FeatureRequest) *entity.FeatureRequest {
	if f == nil {
		return nil
	}
	return &entity.FeatureRequest{
		Id:          f.Id,
		Title:       f.Title,
		Description: f.Description,
		Email:       f.Email,
		Name:        f.Name,
		Status:      entity.FeatureRequestStatus(f.Status),
		Priority:    entity.Priority(f.Priority),
		Tags:        tagsFromJSON(f.Tags),
		ProjectId:   f.ProjectId,
		CreatedAt:   f.CreatedAt,
		UpdatedAt:   f.UpdatedAt,
	}
}

func (m *FeatureMapper) ToModel(f *entity.FeatureRequest) *model.FeatureRequest {
	if f == nil {
		return nil
	}
	return &model.FeatureRequest{
		Id:          f.Id,
		Title:       f.Title,
		Description: f.Description,
		Email:       f.Email,
		Name:        f.Name,
		Status:      string(f.Status),
		Priority:    string(f.Priority),
		Tags:        tagsToJSON(f.Tags),
		ProjectId:   f.ProjectId,
		CreatedAt:   f.CreatedAt,
		UpdatedAt:   f.UpdatedAt,
	}
}

func (m *FeatureMapper) ToEntities(features []*model.FeatureRequest) []*entity.FeatureRequest {
	entities := make([]*entity.FeatureRequest, len(features))
	for i, f := range features {
		entities[i] = m.ToEntity(f)
	}
	return entities
}

func (m *FeatureMapper) VoteToEntity(v *model.Vote) *entity.Vote {
	if v == nil {
		return nil
	}
	return &entity.Vote{
		Id:               v.Id,
		FeatureRequestId: v.FeatureRequestId,
		Fingerprint:      v.Fingerprint,
		Email:            v.Email,
		CreatedAt:        v.CreatedAt,
	}
}

func (m *FeatureMapper) VoteToModel(v *entity.Vote) *model.Vote {
	if v == nil {
		return nil
	}
	return &model.Vote{
		Id:               v.Id,
		FeatureRequestId: v.FeatureRequestId,
		Fingerprint:      v.Fingerprint,
		Email:            v.Email,
		CreatedAt:        v.CreatedAt,
	}
}
