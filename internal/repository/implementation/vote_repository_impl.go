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

type VoteRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.FeatureMapper
}

func NewVoteRepository(db *gorm.DB) contract.VoteRepository {
	return &VoteRepositoryImpl{
		db:     db,
		mapper: mapper.NewFeatureMapper(),
	}
}

func (r *VoteRepositoryImpl) Create(ctx context.Context, vote *entity.Vote) error {
	m := r.mapper.VoteToModel(vote)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		if isDuplicateKey(err) {
			return contract.ErrDuplicateVote
		}
		return err
	}
	*vote = *r.mapper.VoteToEntity(m)
	return nil
}

func (r *VoteRepositoryImpl) DeleteByPair(ctx context.Context, featureRequestId uuid.UUID, fingerprint string) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("feature_request_id = ? AND fingerprint = ?", featureRequestId, fingerprint).
		Delete(&model.Vote{})
	return res.RowsAffected, res.Error
}

func (r *VoteRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Vote, error) {
	var m model.Vote
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.VoteToEntity(&m), nil
}

func (r *VoteRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Vote, error) {
	var models []*model.Vote
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	votes := make([]*entity.Vote, len(models))
	for i, m := range models {
		votes[i] = r.mapper.VoteToEntity(m)
	}
	return votes, nil
}

func (r *VoteRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := applySpecifications(r.db.WithContext(ctx).Model(&model.Vote{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *VoteRepositoryImpl) CountByFeatureIds(ctx context.Context, featureIds []uuid.UUID) (map[uuid.UUID]int64, error) {
	counts := make(map[uuid.UUID]int64, len(featureIds))
	if len(featureIds) == 0 {
		return counts, nil
	}

	var rows []struct {
		FeatureRequestId uuid.UUID
		Total            int64
	}
	err := r.db.WithContext(ctx).
		Model(&model.Vote{}).
		Select("feature_request_id, COUNT(*) AS total").
		Where("feature_request_id IN ?", featureIds).
		Group("feature_request_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	for _, row := range rows {
		counts[row.FeatureRequestId] = row.Total
	}
	return counts, nil
}

func (r *VoteRepositoryImpl) FindVotedFeatureIds(ctx context.Context, featureIds []uuid.UUID, fingerprint string) (map[uuid.UUID]bool, error) {
	voted := make(map[uuid.UUID]bool, len(featureIds))
	if len(featureIds) == 0 || fingerprint == "" {
		return voted, nil
	}

	var ids []uuid.UUID
	err := r.db.WithContext(ctx).
		Model(&model.Vote{}).
		Where("feature_request_id IN ? AND fingerprint = ?", featureIds, fingerprint).
		Pluck("feature_request_id", &ids).Error
	if err != nil {
		return nil, err
	}

	for _, id := range ids {
		voted[id] = true
	}
	return voted, nil
}
