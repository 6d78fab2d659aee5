package mapper

import (
	"happycust-be/internal/entity"
	"happycust-be/internal/model"
)

type FeedbackMapper struct{}

func NewFeedbackMapper() *FeedbackMapper {
	return &FeedbackMapper{}
}

func (m *FeedbackMapper) ToEntity(f *model.Feedback) *entity.Feedback {
	if f == nil {
		return nil
	}
	return &entity.Feedback{
		Id:        f.Id,
		Content:   f.Content,
		Email:     f.Email,
		Name:      f.Name,
		Status:    entity.FeedbackStatus(f.Status),
		Priority:  entity.Priority(f.Priority),
		Tags:      tagsFromJSON(f.Tags),
		ProjectId: f.ProjectId,
		CreatedAt: f.CreatedAt,
		UpdatedAt: f.UpdatedAt,
	}
}

func (m *FeedbackMapper) ToModel(f *entity.Feedback) *model.Feedback {
	if f == nil {
		return nil
	}
	return &model.Feedback{
		Id:        f.Id,
		Content:   f.Content,
		Email:     f.Email,
		Name:      f.Name,
		Status:    string(f.Status),
		Priority:  string(f.Priority),
		Tags:      tagsToJSON(f.Tags),
		ProjectId: f.ProjectId,
		CreatedAt: f.CreatedAt,
		UpdatedAt: f.UpdatedAt,
	}
}

func (m *FeedbackMapper) ToEntities(feedbacks []*model.Feedback) []*entity.Feedback {
	entities := make([]*entity.Feedback, len(feedbacks))
	for i, f := range feedbacks {
		entities[i] = m.ToEntity(f)
	}
	return entities
}
