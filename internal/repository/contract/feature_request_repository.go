package contract

import (
	"context"

	"happycust-be/internal/entity"
	"happycust-be/internal/repository/specification"

	"github.com/google/uuid"
)

type FeatureRequestRepository interface {
	Create(ctx context.Context, feature *entity.FeatureRequest) error
	Update(ctx context.Context, feature *entity.FeatureRequest) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.FeatureRequest, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.FeatureRequest, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
