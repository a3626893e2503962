package provider

import (
	"fmt"

	"go.trai.ch/ormbridge/internal/core/domain"
	"go.trai.ch/ormbridge/internal/core/ports"
)

// rawNone is the raw property value that disables the shared cache.
const rawNone = "NONE"

// CacheEligibilityResolver decides whether a persistence unit gets second-level cache support.
type CacheEligibilityResolver struct {
	logger ports.Logger
	cache  ports.SecondLevelCache
}

// NewCacheEligibilityResolver creates a resolver that requests cache wiring from cache.
func NewCacheEligibilityResolver(logger ports.Logger, cache ports.SecondLevelCache) *CacheEligibilityResolver {
	return &CacheEligibilityResolver{
		logger: logger,
		cache:  cache,
	}
}

// Resolve evaluates the cache signals of pu against platform. When the
// platform offers no cache classification, pu.SharedCacheMode is forced to
// NONE before anything else is evaluated. A nil platform counts as offering none.
//
// Only the legacy boolean flag is gated by the disabled check. An explicit raw
// mode other than "NONE", or a resolved mode other than NONE/UNSPECIFIED,
// enables the cache on its own.
func (r *CacheEligibilityResolver) Resolve(pu *domain.PersistenceUnit, platform ports.Platform) domain.CacheDecision {
	raw, rawSet := pu.Properties.Get(domain.SharedCacheModeProperty)

	forced := false
	if platform == nil || platform.DefaultCacheClassification() == domain.ClassificationNone {
		if pu.SharedCacheMode != domain.SharedCacheModeNone {
			r.logger.Trace("second level cache is not supported in platform, ignoring shared cache mode")
			forced = true
		}
		pu.SharedCacheMode = domain.SharedCacheModeNone
	}

	disabled := pu.SharedCacheMode == domain.SharedCacheModeNone || (rawSet && raw == rawNone)
	useFlag := domain.ParseBoolLenient(pu.Properties[domain.UseSecondLevelCacheProperty])

	eligible := (!disabled && useFlag) ||
		(rawSet && raw != rawNone) ||
		(pu.SharedCacheMode != domain.SharedCacheModeNone && pu.SharedCacheMode != domain.SharedCacheModeUnspecified)

	if eligible {
		r.cache.AddSecondLevelCacheDependencies(pu.Properties, pu.ScopedName)
		r.logger.Trace(fmt.Sprintf("second level cache enabled for %s", pu.ScopedName))
	} else {
		r.logger.Trace(fmt.Sprintf("second level cache disabled for %s, %s = %s, shared cache mode = %s",
			pu.ScopedName, domain.SharedCacheModeProperty, rawDisplay(raw, rawSet), pu.SharedCacheMode))
	}

	return domain.CacheDecision{
		EnableSecondLevelCache: eligible,
		RawSharedCacheMode:     raw,
		RawSharedCacheModeSet:  rawSet,
		SharedCacheMode:        pu.SharedCacheMode,
		ForcedNone:             forced,
	}
}

func rawDisplay(raw string, set bool) string {
	if !set {
		return "null"
	}
	return raw
}
