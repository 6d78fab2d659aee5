package mapper

import (
	"happycust-be/internal/entity"
	"happycust-be/internal/model"
)

type IssueMapper struct{}

func NewIssueMapper() *IssueMapper {
	return &IssueMapper{}
}

func (m *IssueMapper) ToEntity(i *model.Issue) *entity.Issue {
	if i == nil {
		return nil
	}
	return &entity.Issue{
		Id:            i.Id,
		Description:   i.Description,
		ScreenshotUrl: i.ScreenshotUrl,
		Email:         i.Email,
		Name:          i.Name,
		Status:        entity.IssueStatus(i.Status),
		Priority:      entity.Priority(i.Priority),
		Tags:          tagsFromJSON(i.Tags),
		ProjectId:     i.ProjectId,
		CreatedAt:     i.CreatedAt,
		UpdatedAt:     i.UpdatedAt,
	}
}

func (m *IssueMapper) ToModel(i *entity.Issue) *model.Issue {
	if i == nil {
		return nil
	}
	return &model.Issue{
		Id:            i.Id,
		Description:   i.Description,
		ScreenshotUrl: i.ScreenshotUrl,
		Email:         i.Email,
		Name:          i.Name,
		Status:        string(i.Status),
		Priority:      string(i.Priority),
		Tags:          tagsToJSON(i.Tags),
		ProjectId:     i.ProjectId,
		CreatedAt:     i.CreatedAt,
		UpdatedAt:     i.UpdatedAt,
	}
}

func (m *IssueMapper) ToEntities(issues []*model.Issue) []*entity.Issue {
	entities := make([]*entity.Issue, len(issues))
	for i, iss := range issues {
		entities[i] = m.ToEntity(iss)
	}
	return entities
}
