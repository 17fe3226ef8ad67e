package utils

import "time"

// Catalog filter thresholds
const (
	// Trending: verified items with at least this rating and daily usage,
	// sorted rating desc then usage desc
	TrendingMinRating = 4.0
	TrendingMinUsage  = 10

	// Limited stock: more than zero and at most this many items left.
	// Both bounds apply together.
	LimitedStockMax = 10
)

// ExpiryNone is the sentinel for items that never expire
const ExpiryNone = "No expiration"

// ClickUniqueWindow is the sliding window for click uniqueness: a click from
// the same (ip, session) on the same item inside this window is not unique.
const ClickUniqueWindow = 24 * time.Hour

// LogRetention is how long audit and access logs are kept before the
// cleanup script removes them.
const LogRetention = 30 * 24 * time.Hour
