package domain

// CacheDecision is the outcome of second-level cache eligibility resolution.
type CacheDecision struct {
	// EnableSecondLevelCache is true when the cache dependencies were requested.
	EnableSecondLevelCache bool
	// RawSharedCacheMode is the value of SharedCacheModeProperty, empty when unset.
	RawSharedCacheMode string
	// RawSharedCacheModeSet distinguishes an unset property from an empty one.
	RawSharedCacheModeSet bool
	// SharedCacheMode is the unit's mode after resolution.
	SharedCacheMode SharedCacheMode
	// ForcedNone is true when a mode other than NONE was overridden because the
	// platform offers no cache classification.
	ForcedNone bool
}
