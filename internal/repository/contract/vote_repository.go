package contract

import (
	"context"

	"happycust-be/internal/entity"
	"happycust-be/internal/repository/specification"

	"github.com/google/uuid"
)

// VoteRepository is the persistence side of the vote ledger. Create surfaces
// ErrDuplicateVote when the (feature, fingerprint) uniqueness constraint
// fires, and DeleteByPair reports how many rows actually went away, so the
// service layer can collapse races deterministically.
type VoteRepository interface {
	// Create inserts the vote. Returns ErrDuplicateVote if a row for the same
	// (featureRequestId, fingerprint) pair already exists.
	Create(ctx context.Context, vote *entity.Vote) error

	// DeleteByPair removes the vote for the pair and returns the number of
	// rows deleted (0 when another request got there first).
	DeleteByPair(ctx context.Context, featureRequestId uuid.UUID, fingerprint string) (int64, error)

	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Vote, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Vote, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)

	// CountByFeatureIds returns vote cardinality per feature in one query.
	CountByFeatureIds(ctx context.Context, featureIds []uuid.UUID) (map[uuid.UUID]int64, error)

	// FindVotedFeatureIds returns the subset of featureIds the fingerprint
	// has an active vote for.
	FindVotedFeatureIds(ctx context.Context, featureIds []uuid.UUID, fingerprint string) (map[uuid.UUID]bool, error)
}
