package dto

// StatsResponse aggregates dashboard counters scoped to the caller's projects.
// "Recent" buckets count rows created within the last seven days.
type StatsResponse struct {
	TotalProjects        int64 `json:"totalProjects"`
	TotalFeedbacks       int64 `json:"totalFeedbacks"`
	TotalReviews         int64 `json:"totalReviews"`
	TotalIssues          int64 `json:"totalIssues"`
	TotalFeatureRequests int64 `json:"totalFeatureRequests"`

	RecentFeedbacks       int64 `json:"recentFeedbacks"`
	RecentReviews         int64 `json:"recentReviews"`
	RecentIssues          int64 `json:"recentIssues"`
	RecentFeatureRequests int64 `json:"recentFeatureRequests"`

	PendingFeatures    int64 `json:"pendingFeatures"`
	UnresolvedIssues   int64 `json:"unresolvedIssues"`
	UnpublishedReviews int64 `json:"unpublishedReviews"`
	NewFeedbacks       int64 `json:"newFeedbacks"`
}
