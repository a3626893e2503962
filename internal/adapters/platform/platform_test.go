package platform_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/ormbridge/internal/adapters/platform"
	"go.trai.ch/ormbridge/internal/core/domain"
)

func TestStaticPlatform(t *testing.T) {
	spec := domain.PlatformSpec{
		DefaultCacheClassification: domain.ClassificationInfinispan,
		CacheClassifications:       []domain.Classification{domain.ClassificationInfinispan},
	}
	p := platform.NewStaticPlatform(spec)

	assert.Equal(t, domain.ClassificationInfinispan, p.DefaultCacheClassification())

	got := p.CacheClassifications()
	got[0] = domain.ClassificationNone
	assert.Equal(t, []domain.Classification{domain.ClassificationInfinispan}, p.CacheClassifications())
}

func TestTransactionManager(t *testing.T) {
	m := platform.NewTransactionManager(domain.JTASpec{
		TransactionManager:      "java:/TM",
		SynchronizationRegistry: "java:/TSR",
	})

	assert.Equal(t, "java:/TM", m.TransactionManager())
	assert.Equal(t, "java:/TSR", m.SynchronizationRegistry())
}

func TestFactory_ReusesHandlesForEqualSpecs(t *testing.T) {
	f := platform.NewFactory()
	spec := domain.PlatformSpec{DefaultCacheClassification: domain.ClassificationNone}
	jta := domain.JTASpec{TransactionManager: "java:/TM"}

	assert.Same(t, f.Platform(spec), f.Platform(spec))
	assert.Same(t, f.JtaManager(jta), f.JtaManager(jta))

	other := domain.PlatformSpec{DefaultCacheClassification: domain.ClassificationInfinispan}
	assert.NotSame(t, f.Platform(spec), f.Platform(other))
}
