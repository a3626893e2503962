package app_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/ormbridge/internal/adapters/cache"
	"go.trai.ch/ormbridge/internal/adapters/hasher"
	"go.trai.ch/ormbridge/internal/adapters/management"
	"go.trai.ch/ormbridge/internal/adapters/notification"
	"go.trai.ch/ormbridge/internal/adapters/platform"
	"go.trai.ch/ormbridge/internal/adapters/telemetry"
	"go.trai.ch/ormbridge/internal/app"
	"go.trai.ch/ormbridge/internal/core/domain"
	"go.trai.ch/ormbridge/internal/core/ports/mocks"
	"go.trai.ch/ormbridge/internal/engine/provider"
	"go.uber.org/mock/gomock"
)

func newDeployment() *domain.Deployment {
	return &domain.Deployment{
		Name: "shop.war",
		Platform: domain.PlatformSpec{
			DefaultCacheClassification: domain.ClassificationInfinispan,
			CacheClassifications:       []domain.Classification{domain.ClassificationInfinispan},
		},
		JTA: domain.JTASpec{
			TransactionManager:      "java:jboss/TransactionManager",
			SynchronizationRegistry: "java:jboss/TransactionSynchronizationRegistry",
		},
		Units: []*domain.PersistenceUnit{
			{
				Name:            "orders",
				ScopedName:      "shop.war#orders",
				SharedCacheMode: domain.SharedCacheModeEnableSelective,
				ClassLoader:     domain.ClassLoaderRef{Module: "deployment.shop.war"},
				Properties:      domain.Properties{},
			},
			{
				Name:        "audit",
				ScopedName:  "shop.war#audit",
				ClassLoader: domain.ClassLoaderRef{Module: "deployment.shop.war"},
				Properties: domain.Properties{
					domain.SessionFactoryNameProperty: "java:/audit",
				},
			},
		},
	}
}

type fixture struct {
	loader   *mocks.MockConfigLoader
	renderer *mocks.MockRenderer
	logger   *mocks.MockLogger
	app      *app.App
}

// newFixture wires the real provider adaptor and adapters around mocked I/O.
func newFixture(t *testing.T) fixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := fixture{
		loader:   mocks.NewMockConfigLoader(ctrl),
		renderer: mocks.NewMockRenderer(ctrl),
		logger:   mocks.NewMockLogger(ctrl),
	}
	f.logger.EXPECT().Trace(gomock.Any()).AnyTimes()

	wirer := cache.NewWirer(f.logger)
	adaptor := provider.New(f.logger, wirer, notification.NewNotifier(wirer), management.New())

	f.app = app.New(
		f.loader,
		platform.NewFactory(),
		adaptor,
		hasher.New(),
		telemetry.NewNoOpTracer(),
		f.renderer,
		f.logger,
	)
	return f
}

func TestApp_Resolve(t *testing.T) {
	f := newFixture(t)
	f.loader.EXPECT().Load("persistence.yaml").Return(newDeployment(), nil)

	reports, err := f.app.Resolve(context.Background(), "persistence.yaml", nil)
	require.NoError(t, err)
	require.Len(t, reports, 2)

	orders := reports[0]
	assert.Equal(t, "shop.war#orders", orders.ScopedName)
	assert.True(t, orders.SecondLevelCache)
	assert.False(t, orders.ForcedNone)
	assert.True(t, orders.RegionsByScopedName)
	assert.Equal(t, "hibernate-persistence-unit", orders.ManagementLabel)
	assert.Equal(t, "started", orders.CacheLifecycle)
	assert.Len(t, orders.Fingerprint, 16)
	assert.Equal(t, "shop.war#orders", orders.Properties[domain.CacheRegionPrefixProperty])
	assert.Equal(t, "true", orders.Properties[domain.JPAQLStrictComplianceProperty])
	assert.Equal(t, "deployment.shop.war", orders.Properties[domain.AppClassLoaderProperty])
	assert.Equal(t, "jta-platform(java:jboss/TransactionManager)", orders.Properties[domain.JTAPlatformProperty])
	assert.Equal(t, "false", orders.Properties[domain.SessionFactoryNameIsJNDIProperty])

	audit := reports[1]
	assert.Equal(t, "shop.war#audit", audit.ScopedName)
	assert.False(t, audit.SecondLevelCache)
	assert.Empty(t, audit.CacheLifecycle)
	assert.Equal(t, "java:/audit", audit.Properties[domain.SessionFactoryNameProperty])
	assert.NotContains(t, audit.Properties, domain.SessionFactoryNameIsJNDIProperty)
	assert.NotContains(t, audit.Properties, domain.CacheRegionPrefixProperty)
}

func TestApp_Resolve_PlatformWithoutCache(t *testing.T) {
	f := newFixture(t)
	deployment := newDeployment()
	deployment.Platform = domain.PlatformSpec{DefaultCacheClassification: domain.ClassificationNone}
	f.loader.EXPECT().Load("persistence.yaml").Return(deployment, nil)

	reports, err := f.app.Resolve(context.Background(), "persistence.yaml", []string{"orders"})
	require.NoError(t, err)
	require.Len(t, reports, 1)

	assert.False(t, reports[0].SecondLevelCache)
	assert.True(t, reports[0].ForcedNone)
	assert.Equal(t, domain.SharedCacheModeNone, reports[0].SharedCacheMode)
}

func TestApp_Resolve_SelectsUnits(t *testing.T) {
	f := newFixture(t)
	f.loader.EXPECT().Load("persistence.yaml").Return(newDeployment(), nil)

	reports, err := f.app.Resolve(context.Background(), "persistence.yaml",
		[]string{"shop.war#audit", "orders", "audit"})
	require.NoError(t, err)
	require.Len(t, reports, 2)
	assert.Equal(t, "shop.war#audit", reports[0].ScopedName)
	assert.Equal(t, "shop.war#orders", reports[1].ScopedName)
}

func TestApp_Resolve_UnknownUnit(t *testing.T) {
	f := newFixture(t)
	f.loader.EXPECT().Load("persistence.yaml").Return(newDeployment(), nil)

	_, err := f.app.Resolve(context.Background(), "persistence.yaml", []string{"billing"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "persistence unit not found")
}

func TestApp_Resolve_LoadError(t *testing.T) {
	f := newFixture(t)
	f.loader.EXPECT().Load("persistence.yaml").Return(nil, errors.New("simulated error"))

	_, err := f.app.Resolve(context.Background(), "persistence.yaml", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load configuration")
}

func TestApp_Resolve_Canceled(t *testing.T) {
	f := newFixture(t)
	f.loader.EXPECT().Load("persistence.yaml").Return(newDeployment(), nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := f.app.Resolve(ctx, "persistence.yaml", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "resolution failed")
}

func TestApp_Run(t *testing.T) {
	f := newFixture(t)
	f.logger.EXPECT().SetVerbose(true)
	f.loader.EXPECT().Load("persistence.yaml").Return(newDeployment(), nil)
	f.renderer.EXPECT().
		Render(gomock.Len(2), domain.OutputJSON).
		Return(nil)

	err := f.app.Run(context.Background(), "persistence.yaml", app.RunOptions{
		Format:  domain.OutputJSON,
		Verbose: true,
	})
	require.NoError(t, err)
}

func TestApp_Run_RenderError(t *testing.T) {
	f := newFixture(t)
	f.loader.EXPECT().Load("persistence.yaml").Return(newDeployment(), nil)
	f.renderer.EXPECT().Render(gomock.Any(), domain.OutputText).Return(errors.New("simulated error"))

	err := f.app.Run(context.Background(), "persistence.yaml", app.RunOptions{Format: domain.OutputText})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "simulated error")
}

func TestApp_Run_UsesProviderAdaptorInOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	loader := mocks.NewMockConfigLoader(ctrl)
	factory := mocks.NewMockCapabilityFactory(ctrl)
	adaptor := mocks.NewMockProviderAdaptor(ctrl)
	h := mocks.NewMockHasher(ctrl)
	renderer := mocks.NewMockRenderer(ctrl)
	log := mocks.NewMockLogger(ctrl)
	mgmt := mocks.NewMockManagementAdaptor(ctrl)
	plat := mocks.NewMockPlatform(ctrl)
	jta := mocks.NewMockJtaManager(ctrl)

	deployment := newDeployment()
	deployment.Units = deployment.Units[:1]
	pu := deployment.Units[0]

	log.EXPECT().Trace(gomock.Any()).AnyTimes()
	loader.EXPECT().Load("persistence.yaml").Return(deployment, nil)
	factory.EXPECT().Platform(deployment.Platform).Return(plat)
	factory.EXPECT().JtaManager(deployment.JTA).Return(jta)
	gomock.InOrder(
		adaptor.EXPECT().InjectPlatform(plat),
		adaptor.EXPECT().InjectJtaManager(jta),
		adaptor.EXPECT().AddProviderDependencies(pu).Return(domain.CacheDecision{EnableSecondLevelCache: true}),
		adaptor.EXPECT().AddProviderProperties(gomock.Any(), pu).
			Do(func(dst domain.PropertySet, _ *domain.PersistenceUnit) {
				dst.Put(domain.JPAQLStrictComplianceProperty, "true")
			}),
		adaptor.EXPECT().BeforeCreateContainerEntityManagerFactory(pu),
		adaptor.EXPECT().AfterCreateContainerEntityManagerFactory(pu),
		adaptor.EXPECT().CacheLifecycle(pu).Return("started", true),
		adaptor.EXPECT().IdentifiesCacheRegionByScopedName(pu).Return(true),
		adaptor.EXPECT().ManagementAdaptor().Return(mgmt),
		adaptor.EXPECT().Cleanup(pu),
	)
	mgmt.EXPECT().IdentificationLabel().Return("hibernate-persistence-unit")
	h.EXPECT().
		ComputePropertiesHash("shop.war#orders", map[string]string{domain.JPAQLStrictComplianceProperty: "true"}).
		Return("0123456789abcdef")
	renderer.EXPECT().
		Render([]domain.UnitReport{{
			Name:                "orders",
			ScopedName:          "shop.war#orders",
			SharedCacheMode:     domain.SharedCacheModeEnableSelective,
			SecondLevelCache:    true,
			RegionsByScopedName: true,
			ManagementLabel:     "hibernate-persistence-unit",
			CacheLifecycle:      "started",
			Fingerprint:         "0123456789abcdef",
			Properties:          map[string]string{domain.JPAQLStrictComplianceProperty: "true"},
		}}, domain.OutputYAML).
		Return(nil)

	a := app.New(loader, factory, adaptor, h, telemetry.NewNoOpTracer(), renderer, log)
	err := a.Run(context.Background(), "persistence.yaml", app.RunOptions{Format: domain.OutputYAML})
	require.NoError(t, err)
}
