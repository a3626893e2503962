package provider_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/ormbridge/internal/core/domain"
	"go.trai.ch/ormbridge/internal/core/ports/mocks"
	"go.trai.ch/ormbridge/internal/engine/provider"
	"go.uber.org/mock/gomock"
)

const notSupportedMsg = "second level cache is not supported in platform, ignoring shared cache mode"

func newPlatform(ctrl *gomock.Controller, c domain.Classification) *mocks.MockPlatform {
	p := mocks.NewMockPlatform(ctrl)
	p.EXPECT().DefaultCacheClassification().Return(c).AnyTimes()
	return p
}

func quietLogger(ctrl *gomock.Controller) *mocks.MockLogger {
	l := mocks.NewMockLogger(ctrl)
	l.EXPECT().Trace(gomock.Any()).AnyTimes()
	return l
}

func TestResolver_EnableSelectiveRawMode(t *testing.T) {
	ctrl := gomock.NewController(t)
	cache := mocks.NewMockSecondLevelCache(ctrl)
	pu := newUnit(domain.Properties{domain.SharedCacheModeProperty: "ENABLE_SELECTIVE"})
	pu.SharedCacheMode = domain.SharedCacheModeEnableSelective

	cache.EXPECT().AddSecondLevelCacheDependencies(pu.Properties, "shop.war#orders").Times(1)

	r := provider.NewCacheEligibilityResolver(quietLogger(ctrl), cache)
	decision := r.Resolve(pu, newPlatform(ctrl, domain.ClassificationInfinispan))

	assert.True(t, decision.EnableSecondLevelCache)
	assert.Equal(t, domain.SharedCacheModeEnableSelective, pu.SharedCacheMode)
	assert.False(t, decision.ForcedNone)
}

func TestResolver_RawNoneDisables(t *testing.T) {
	ctrl := gomock.NewController(t)
	cache := mocks.NewMockSecondLevelCache(ctrl)
	pu := newUnit(domain.Properties{
		domain.SharedCacheModeProperty:     "NONE",
		domain.UseSecondLevelCacheProperty: "true",
	})
	pu.SharedCacheMode = domain.SharedCacheModeNone

	r := provider.NewCacheEligibilityResolver(quietLogger(ctrl), cache)
	decision := r.Resolve(pu, newPlatform(ctrl, domain.ClassificationInfinispan))

	assert.False(t, decision.EnableSecondLevelCache)
	assert.Equal(t, "NONE", decision.RawSharedCacheMode)
	assert.True(t, decision.RawSharedCacheModeSet)
}

func TestResolver_PlatformWithoutCacheForcesNone(t *testing.T) {
	ctrl := gomock.NewController(t)
	cache := mocks.NewMockSecondLevelCache(ctrl)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Trace(notSupportedMsg).Times(1)
	log.EXPECT().Trace(gomock.Any()).Times(1)

	pu := newUnit(domain.Properties{})
	pu.SharedCacheMode = domain.SharedCacheModeAll

	r := provider.NewCacheEligibilityResolver(log, cache)
	decision := r.Resolve(pu, newPlatform(ctrl, domain.ClassificationNone))

	assert.False(t, decision.EnableSecondLevelCache)
	assert.True(t, decision.ForcedNone)
	assert.Equal(t, domain.SharedCacheModeNone, pu.SharedCacheMode)
	assert.Equal(t, domain.SharedCacheModeNone, decision.SharedCacheMode)
}

func TestResolver_AlreadyNoneEmitsNoPlatformDiagnostic(t *testing.T) {
	ctrl := gomock.NewController(t)
	cache := mocks.NewMockSecondLevelCache(ctrl)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Trace(notSupportedMsg).Times(0)
	log.EXPECT().Trace(gomock.Any()).Times(1)

	pu := newUnit(domain.Properties{})
	pu.SharedCacheMode = domain.SharedCacheModeNone

	decision := provider.NewCacheEligibilityResolver(log, cache).Resolve(pu, newPlatform(ctrl, domain.ClassificationNone))

	assert.False(t, decision.EnableSecondLevelCache)
	assert.False(t, decision.ForcedNone)
}

func TestResolver_LegacyFlagEnables(t *testing.T) {
	ctrl := gomock.NewController(t)
	cache := mocks.NewMockSecondLevelCache(ctrl)
	pu := newUnit(domain.Properties{domain.UseSecondLevelCacheProperty: "true"})

	cache.EXPECT().AddSecondLevelCacheDependencies(pu.Properties, pu.ScopedName).Times(1)

	decision := provider.NewCacheEligibilityResolver(quietLogger(ctrl), cache).
		Resolve(pu, newPlatform(ctrl, domain.ClassificationInfinispan))

	assert.True(t, decision.EnableSecondLevelCache)
	assert.Equal(t, domain.SharedCacheModeUnspecified, pu.SharedCacheMode)
	assert.False(t, decision.RawSharedCacheModeSet)
}

func TestResolver_ForcedNoneForEveryMode(t *testing.T) {
	modes := []domain.SharedCacheMode{
		domain.SharedCacheModeUnspecified,
		domain.SharedCacheModeAll,
		domain.SharedCacheModeNone,
		domain.SharedCacheModeEnableSelective,
		domain.SharedCacheModeDisableSelective,
	}

	for _, mode := range modes {
		t.Run(mode.String(), func(t *testing.T) {
			ctrl := gomock.NewController(t)
			cache := mocks.NewMockSecondLevelCache(ctrl)
			cache.EXPECT().AddSecondLevelCacheDependencies(gomock.Any(), gomock.Any()).AnyTimes()

			pu := newUnit(domain.Properties{domain.UseSecondLevelCacheProperty: "true"})
			pu.SharedCacheMode = mode

			decision := provider.NewCacheEligibilityResolver(quietLogger(ctrl), cache).
				Resolve(pu, newPlatform(ctrl, domain.ClassificationNone))

			assert.Equal(t, domain.SharedCacheModeNone, pu.SharedCacheMode)
			assert.False(t, decision.EnableSecondLevelCache, "legacy flag is gated once the mode is NONE")
		})
	}
}

func TestResolver_NilPlatformTreatedAsUnsupported(t *testing.T) {
	ctrl := gomock.NewController(t)
	cache := mocks.NewMockSecondLevelCache(ctrl)
	pu := newUnit(domain.Properties{domain.UseSecondLevelCacheProperty: "true"})
	pu.SharedCacheMode = domain.SharedCacheModeAll

	decision := provider.NewCacheEligibilityResolver(quietLogger(ctrl), cache).Resolve(pu, nil)

	assert.False(t, decision.EnableSecondLevelCache)
	assert.Equal(t, domain.SharedCacheModeNone, pu.SharedCacheMode)
}

// A raw mode other than "NONE" enables the cache even when the platform forced
// the resolved mode to NONE; only the legacy flag is gated by the disabled check.
func TestResolver_StaleRawModeBypassesPlatformNone(t *testing.T) {
	ctrl := gomock.NewController(t)
	cache := mocks.NewMockSecondLevelCache(ctrl)
	pu := newUnit(domain.Properties{domain.SharedCacheModeProperty: "ALL"})
	pu.SharedCacheMode = domain.SharedCacheModeAll

	cache.EXPECT().AddSecondLevelCacheDependencies(pu.Properties, pu.ScopedName).Times(1)

	decision := provider.NewCacheEligibilityResolver(quietLogger(ctrl), cache).
		Resolve(pu, newPlatform(ctrl, domain.ClassificationNone))

	assert.True(t, decision.EnableSecondLevelCache)
	assert.Equal(t, domain.SharedCacheModeNone, pu.SharedCacheMode, "mode stays NONE once forced")
}

func TestResolver_Clauses(t *testing.T) {
	tests := []struct {
		name  string
		props domain.Properties
		mode  domain.SharedCacheMode
		want  bool
	}{
		{name: "nothing set", props: domain.Properties{}, want: false},
		{name: "flag false", props: domain.Properties{domain.UseSecondLevelCacheProperty: "false"}, want: false},
		{name: "flag mixed case", props: domain.Properties{domain.UseSecondLevelCacheProperty: "TRUE"}, want: true},
		{name: "flag unparsable", props: domain.Properties{domain.UseSecondLevelCacheProperty: "yes"}, want: false},
		{name: "flag numeric", props: domain.Properties{domain.UseSecondLevelCacheProperty: "1"}, want: false},
		{
			name:  "flag with raw NONE",
			props: domain.Properties{domain.UseSecondLevelCacheProperty: "true", domain.SharedCacheModeProperty: "NONE"},
			want:  false,
		},
		{name: "raw lower-case none", props: domain.Properties{domain.SharedCacheModeProperty: "none"}, want: true},
		{name: "raw empty", props: domain.Properties{domain.SharedCacheModeProperty: ""}, want: true},
		{name: "mode ALL", props: domain.Properties{}, mode: domain.SharedCacheModeAll, want: true},
		{name: "mode DISABLE_SELECTIVE", props: domain.Properties{}, mode: domain.SharedCacheModeDisableSelective, want: true},
		{name: "mode NONE with flag", props: domain.Properties{domain.UseSecondLevelCacheProperty: "true"}, mode: domain.SharedCacheModeNone, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			cache := mocks.NewMockSecondLevelCache(ctrl)
			pu := newUnit(tt.props)
			pu.SharedCacheMode = tt.mode

			if tt.want {
				cache.EXPECT().AddSecondLevelCacheDependencies(pu.Properties, pu.ScopedName).Times(1)
			}

			decision := provider.NewCacheEligibilityResolver(quietLogger(ctrl), cache).
				Resolve(pu, newPlatform(ctrl, domain.ClassificationInfinispan))

			assert.Equal(t, tt.want, decision.EnableSecondLevelCache)
			assert.Equal(t, tt.mode, pu.SharedCacheMode, "supported platform leaves the mode alone")
		})
	}
}
