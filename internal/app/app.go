// Package app implements the application layer for ormbridge.
package app

import (
	"context"
	"fmt"
	"maps"

	"go.trai.ch/ormbridge/internal/core/domain"
	"go.trai.ch/ormbridge/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	factory      ports.CapabilityFactory
	adaptor      ports.ProviderAdaptor
	hasher       ports.Hasher
	tracer       ports.Tracer
	renderer     ports.Renderer
	logger       ports.Logger
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	factory ports.CapabilityFactory,
	adaptor ports.ProviderAdaptor,
	hasher ports.Hasher,
	tracer ports.Tracer,
	renderer ports.Renderer,
	logger ports.Logger,
) *App {
	return &App{
		configLoader: loader,
		factory:      factory,
		adaptor:      adaptor,
		hasher:       hasher,
		tracer:       tracer,
		renderer:     renderer,
		logger:       logger,
	}
}

// WithRenderer replaces the report renderer.
func (a *App) WithRenderer(renderer ports.Renderer) *App {
	a.renderer = renderer
	return a
}

// RunOptions configuration for the Run method.
type RunOptions struct {
	// Units restricts resolution to the named units. Empty means all units.
	Units []string
	// Format selects the report format.
	Format domain.OutputFormat
	// Verbose enables trace output.
	Verbose bool
}

// Run resolves the deployment at path and renders one report per unit.
func (a *App) Run(ctx context.Context, path string, opts RunOptions) error {
	if opts.Verbose {
		a.logger.SetVerbose(true)
	}

	reports, err := a.Resolve(ctx, path, opts.Units)
	if err != nil {
		return err
	}

	return a.renderer.Render(reports, opts.Format)
}

// Resolve loads the deployment at path and runs the selected units through
// the provider adaptor. Reports keep the order of the selected units.
func (a *App) Resolve(ctx context.Context, path string, unitNames []string) ([]domain.UnitReport, error) {
	ctx, span := a.tracer.Start(ctx, "resolve deployment")
	defer span.End()

	// 1. Load the deployment
	deployment, err := a.configLoader.Load(path)
	if err != nil {
		span.RecordError(err)
		return nil, zerr.Wrap(err, "failed to load configuration")
	}
	span.SetAttribute("deployment", deployment.Name)

	// 2. Select units
	units, err := selectUnits(deployment, unitNames)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	// 3. Publish capabilities
	a.adaptor.InjectPlatform(a.factory.Platform(deployment.Platform))
	a.adaptor.InjectJtaManager(a.factory.JtaManager(deployment.JTA))

	scopedNames := make([]string, len(units))
	for i, pu := range units {
		scopedNames[i] = pu.ScopedName
	}
	a.tracer.EmitUnits(ctx, scopedNames)
	a.logger.Trace(fmt.Sprintf("resolving %d persistence unit(s) of %s", len(units), deployment.Name))

	// 4. Resolve units concurrently; each unit is handled by exactly one goroutine
	reports := make([]domain.UnitReport, len(units))
	g, gctx := errgroup.WithContext(ctx)
	for i, pu := range units {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			reports[i] = a.resolveUnit(gctx, pu)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		span.RecordError(err)
		return nil, zerr.Wrap(err, domain.ErrResolutionFailed.Error())
	}

	return reports, nil
}

func (a *App) resolveUnit(ctx context.Context, pu *domain.PersistenceUnit) domain.UnitReport {
	_, span := a.tracer.Start(ctx, "resolve "+pu.ScopedName, ports.WithSpanKind("internal"))
	defer span.End()
	defer a.adaptor.Cleanup(pu)

	decision := a.adaptor.AddProviderDependencies(pu)

	injected := domain.NewPropertySet()
	a.adaptor.AddProviderProperties(injected, pu)

	a.adaptor.BeforeCreateContainerEntityManagerFactory(pu)
	a.adaptor.AfterCreateContainerEntityManagerFactory(pu)
	lifecycle, _ := a.adaptor.CacheLifecycle(pu)

	effective := map[string]string(pu.Properties.Clone())
	maps.Copy(effective, injected.Strings())

	span.SetAttribute("unit", pu.ScopedName)
	span.SetAttribute("shared_cache_mode", pu.SharedCacheMode.String())
	span.SetAttribute("second_level_cache", decision.EnableSecondLevelCache)
	span.SetAttribute("properties", len(effective))

	return domain.UnitReport{
		Name:                pu.Name,
		ScopedName:          pu.ScopedName,
		SharedCacheMode:     pu.SharedCacheMode,
		SecondLevelCache:    decision.EnableSecondLevelCache,
		ForcedNone:          decision.ForcedNone,
		RegionsByScopedName: a.adaptor.IdentifiesCacheRegionByScopedName(pu),
		ManagementLabel:     a.adaptor.ManagementAdaptor().IdentificationLabel(),
		CacheLifecycle:      lifecycle,
		Fingerprint:         a.hasher.ComputePropertiesHash(pu.ScopedName, effective),
		Properties:          effective,
	}
}

func selectUnits(deployment *domain.Deployment, names []string) ([]*domain.PersistenceUnit, error) {
	if len(names) == 0 {
		return deployment.Units, nil
	}

	seen := make(map[*domain.PersistenceUnit]bool, len(names))
	units := make([]*domain.PersistenceUnit, 0, len(names))
	for _, name := range names {
		pu, ok := deployment.Unit(name)
		if !ok {
			return nil, zerr.With(domain.ErrUnitNotFound, "unit", name)
		}
		if seen[pu] {
			continue
		}
		seen[pu] = true
		units = append(units, pu)
	}
	return units, nil
}
