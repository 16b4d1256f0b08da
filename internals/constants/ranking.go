// file: internals/constants/ranking.go
package constants

import "time"

// Hybrid ranking weights. Fixed constants, not admin-configurable.
const (
	RankWeightRecency       = 0.60
	RankWeightCertification = 0.25
	RankWeightEngagement    = 0.15

	// Recency score halves every window.
	RankRecencyHalfLife = 48 * time.Hour
)

// Feed paging bounds.
const (
	FeedDefaultPerPage = 20
	FeedMaxPerPage     = 100
)
