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

type FeatureRequestRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.FeatureMapper
}

func NewFeatureRequestRepository(db *gorm.DB) contract.FeatureRequestRepository {
	return &FeatureRequestRepositoryImpl{
		db:     db,
		mapper: mapper.NewFeatureMapper(),
	}
}

func (r *FeatureRequestRepositoryImpl) Create(ctx context.Context, feature *entity.FeatureRequest) error {
	m := r.mapper.ToModel(feature)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*feature = *r.mapper.ToEntity(m)
	return nil
}

func (r *FeatureRequestRepositoryImpl) Update(ctx context.Context, feature *entity.FeatureRequest) error {
	m := r.mapper.ToModel(feature)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*feature = *r.mapper.ToEntity(m)
	return nil
}

func (r *FeatureRequestRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.FeatureRequest{}, id).Error
}

func (r *FeatureRequestRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.FeatureRequest, error) {
	var m model.FeatureRequest
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *FeatureRequestRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.FeatureRequest, error) {
	var models []*model.FeatureRequest
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *FeatureRequestRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := applySpecifications(r.db.WithContext(ctx).Model(&model.FeatureRequest{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
