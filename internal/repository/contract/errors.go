package contract

import "errors"

// ErrDuplicateVote is returned by VoteRepository.Create when the uniqueness
// constraint on (feature_request_id, fingerprint) rejects the insert.
var ErrDuplicateVote = errors.New("vote already exists for this feature and fingerprint")
