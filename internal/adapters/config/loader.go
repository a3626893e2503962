// Package config loads deployment descriptors for ormbridge.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"go.trai.ch/ormbridge/internal/core/domain"
	"go.trai.ch/ormbridge/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

const (
	defaultTransactionManager      = "java:jboss/TransactionManager"
	defaultSynchronizationRegistry = "java:jboss/TransactionSynchronizationRegistry"
)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// Load reads the descriptor at path. A directory is searched for DefaultFilename.
func (l *Loader) Load(path string) (*domain.Deployment, error) {
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		path = filepath.Join(path, DefaultFilename)
	}

	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", path)
	}

	var desc Descriptor
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&desc); err != nil && !errors.Is(err, io.EOF) {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigParseFailed.Error()), "path", path)
	}

	deployment, err := buildDeployment(&desc, path)
	if err != nil {
		return nil, zerr.With(err, "path", path)
	}

	l.Logger.Trace(fmt.Sprintf("loaded %d persistence unit(s) from %s", len(deployment.Units), path))
	return deployment, nil
}

func buildDeployment(desc *Descriptor, path string) (*domain.Deployment, error) {
	name := desc.Deployment
	if name == "" {
		name = filepath.Base(filepath.Dir(path))
	}

	platform, err := buildPlatform(desc.Platform)
	if err != nil {
		return nil, err
	}

	d := &domain.Deployment{
		Name:     name,
		Platform: platform,
		JTA: domain.JTASpec{
			TransactionManager:      orDefault(desc.JTA.TransactionManager, defaultTransactionManager),
			SynchronizationRegistry: orDefault(desc.JTA.SynchronizationRegistry, defaultSynchronizationRegistry),
		},
		Units: make([]*domain.PersistenceUnit, 0, len(desc.Units)),
	}

	seen := make(map[string]bool, len(desc.Units))
	for i, dto := range desc.Units {
		pu, err := buildUnit(dto, name)
		if err != nil {
			return nil, zerr.With(err, "unit_index", i)
		}
		if seen[pu.ScopedName] {
			return nil, zerr.With(domain.ErrDuplicateUnit, "scoped_name", pu.ScopedName)
		}
		seen[pu.ScopedName] = true
		d.Units = append(d.Units, pu)
	}

	return d, nil
}

// buildPlatform defaults to an Infinispan capable platform when the
// descriptor says nothing about caching.
func buildPlatform(dto PlatformDTO) (domain.PlatformSpec, error) {
	spec := domain.PlatformSpec{DefaultCacheClassification: domain.ClassificationInfinispan}

	if dto.DefaultCacheClassification != "" {
		c, err := domain.ParseClassification(dto.DefaultCacheClassification)
		if err != nil {
			return domain.PlatformSpec{}, err
		}
		spec.DefaultCacheClassification = c
	}

	for _, name := range dto.CacheClassifications {
		c, err := domain.ParseClassification(name)
		if err != nil {
			return domain.PlatformSpec{}, err
		}
		spec.CacheClassifications = append(spec.CacheClassifications, c)
	}

	if len(dto.CacheClassifications) == 0 && spec.DefaultCacheClassification != domain.ClassificationNone {
		spec.CacheClassifications = []domain.Classification{spec.DefaultCacheClassification}
	}

	return spec, nil
}

func buildUnit(dto UnitDTO, deployment string) (*domain.PersistenceUnit, error) {
	if dto.Name == "" {
		return nil, domain.ErrMissingUnitName
	}

	mode, err := domain.ParseSharedCacheMode(dto.SharedCacheMode)
	if err != nil {
		return nil, zerr.With(err, "unit", dto.Name)
	}

	props := domain.Properties(dto.Properties).Clone()

	return &domain.PersistenceUnit{
		Name:            dto.Name,
		ScopedName:      orDefault(dto.ScopedName, deployment+"#"+dto.Name),
		Properties:      props,
		SharedCacheMode: mode,
		ClassLoader:     domain.ClassLoaderRef{Module: orDefault(dto.ClassLoader, "deployment."+deployment)},
	}, nil
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
