package contract

import (
	"context"

	"happycust-be/internal/entity"
	"happycust-be/internal/repository/specification"

	"github.com/google/uuid"
)

type IssueRepository interface {
	Create(ctx context.Context, issue *entity.Issue) error
	Update(ctx context.Context, issue *entity.Issue) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Issue, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Issue, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
