package provider_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/ormbridge/internal/core/domain"
	"go.trai.ch/ormbridge/internal/core/ports/mocks"
	"go.trai.ch/ormbridge/internal/engine/provider"
	"go.uber.org/mock/gomock"
)

type adaptorFixture struct {
	adaptor    *provider.Adaptor
	logger     *mocks.MockLogger
	cache      *mocks.MockSecondLevelCache
	notifier   *mocks.MockNotifier
	management *mocks.MockManagementAdaptor
}

func newAdaptorFixture(t *testing.T) adaptorFixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := adaptorFixture{
		logger:     mocks.NewMockLogger(ctrl),
		cache:      mocks.NewMockSecondLevelCache(ctrl),
		notifier:   mocks.NewMockNotifier(ctrl),
		management: mocks.NewMockManagementAdaptor(ctrl),
	}
	f.logger.EXPECT().Trace(gomock.Any()).AnyTimes()
	f.adaptor = provider.New(f.logger, f.cache, f.notifier, f.management)
	return f
}

func TestAdaptor_AddProviderPropertiesUsesInjectedJta(t *testing.T) {
	f := newAdaptorFixture(t)
	jta := mocks.NewMockJtaManager(gomock.NewController(t))
	f.adaptor.InjectJtaManager(jta)

	dst := domain.NewPropertySet()
	f.adaptor.AddProviderProperties(dst, newUnit(domain.Properties{}))

	bridge, ok := dst[domain.JTAPlatformProperty].(provider.JtaPlatform)
	assert.True(t, ok)
	assert.Same(t, jta, bridge.Manager())
}

func TestAdaptor_AddProviderDependencies(t *testing.T) {
	f := newAdaptorFixture(t)
	ctrl := gomock.NewController(t)
	f.adaptor.InjectPlatform(newPlatform(ctrl, domain.ClassificationInfinispan))

	pu := newUnit(domain.Properties{domain.UseSecondLevelCacheProperty: "true"})
	f.cache.EXPECT().AddSecondLevelCacheDependencies(pu.Properties, pu.ScopedName)

	decision := f.adaptor.AddProviderDependencies(pu)
	assert.True(t, decision.EnableSecondLevelCache)
}

func TestAdaptor_AddProviderDependenciesWithoutPlatform(t *testing.T) {
	f := newAdaptorFixture(t)
	f.logger.EXPECT().Warn(gomock.Any()).Times(1)

	pu := newUnit(domain.Properties{domain.UseSecondLevelCacheProperty: "true"})
	pu.SharedCacheMode = domain.SharedCacheModeEnableSelective

	decision := f.adaptor.AddProviderDependencies(pu)
	assert.False(t, decision.EnableSecondLevelCache)
	assert.Equal(t, domain.SharedCacheModeNone, pu.SharedCacheMode)
}

func TestAdaptor_LifecycleNotifications(t *testing.T) {
	f := newAdaptorFixture(t)
	pu := newUnit(domain.Properties{})

	gomock.InOrder(
		f.notifier.EXPECT().BeforeEntityManagerFactoryCreate(domain.ClassificationInfinispan, pu),
		f.notifier.EXPECT().AfterEntityManagerFactoryCreate(domain.ClassificationInfinispan, pu),
	)

	f.adaptor.BeforeCreateContainerEntityManagerFactory(pu)
	f.adaptor.AfterCreateContainerEntityManagerFactory(pu)
}

func TestAdaptor_ManagementAdaptor(t *testing.T) {
	f := newAdaptorFixture(t)
	assert.Same(t, f.management, f.adaptor.ManagementAdaptor())
}

func TestAdaptor_IdentifiesCacheRegionByScopedName(t *testing.T) {
	tests := []struct {
		name  string
		props domain.Properties
		want  bool
	}{
		{name: "no prefix", props: domain.Properties{}, want: true},
		{name: "prefix equals scoped name", props: domain.Properties{domain.CacheRegionPrefixProperty: "shop.war#orders"}, want: true},
		{name: "custom prefix", props: domain.Properties{domain.CacheRegionPrefixProperty: "orders"}, want: false},
		{name: "empty prefix", props: domain.Properties{domain.CacheRegionPrefixProperty: ""}, want: false},
	}

	f := newAdaptorFixture(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, f.adaptor.IdentifiesCacheRegionByScopedName(newUnit(tt.props)))
		})
	}
}

func TestAdaptor_CacheLifecycle(t *testing.T) {
	f := newAdaptorFixture(t)
	pu := newUnit(domain.Properties{})
	f.cache.EXPECT().Lifecycle(pu.ScopedName).Return("starting", true)

	state, ok := f.adaptor.CacheLifecycle(pu)
	assert.True(t, ok)
	assert.Equal(t, "starting", state)
}

func TestAdaptor_Cleanup(t *testing.T) {
	f := newAdaptorFixture(t)
	pu := newUnit(domain.Properties{})
	f.cache.EXPECT().Release(pu.ScopedName).Times(1)

	f.adaptor.Cleanup(pu)
}
