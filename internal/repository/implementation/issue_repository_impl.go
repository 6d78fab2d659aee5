package implementation

import (
	"context"
	"errors"

	"happycust-be/internal/entity"
	"happycust-be/internal/mapper"
	"happycust-be/internal/model"
	"happycust-be/internal/repository/contract"
	"happycust-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type IssueRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.IssueMapper
}

func NewIssueRepository(db *gorm.DB) contract.IssueRepository {
	return &IssueRepositoryImpl{
		db:     db,
		mapper: mapper.NewIssueMapper(),
	}
}

func (r *IssueRepositoryImpl) Create(ctx context.Context, issue *entity.Issue) error {
	m := r.mapper.ToModel(issue)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*issue = *r.mapper.ToEntity(m)
	return nil
}

func (r *IssueRepositoryImpl) Update(ctx context.Context, issue *entity.Issue) error {
	m := r.mapper.ToModel(issue)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*issue = *r.mapper.ToEntity(m)
	return nil
}

func (r *IssueRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Issue{}, id).Error
}

func (r *IssueRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Issue, error) {
	var m model.Issue
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *IssueRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Issue, error) {
	var models []*model.Issue
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *IssueRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := applySpecifications(r.db.WithContext(ctx).Model(&model.Issue{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
