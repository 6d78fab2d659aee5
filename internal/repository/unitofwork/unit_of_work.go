package unitofwork

import (
	"context"

	"happycust-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	UserRepository() contract.UserRepository
	ProjectRepository() contract.ProjectRepository
	FeedbackRepository() contract.FeedbackRepository
	ReviewRepository() contract.ReviewRepository
	IssueRepository() contract.IssueRepository
	FeatureRequestRepository() contract.FeatureRequestRepository
	VoteRepository() contract.VoteRepository
}
