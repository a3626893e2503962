package management_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/ormbridge/internal/adapters/management"
	"go.trai.ch/ormbridge/internal/core/domain"
)

func TestAdaptor_Identification(t *testing.T) {
	a := management.New()

	assert.Equal(t, "hibernate-persistence-unit", a.IdentificationLabel())
	assert.Equal(t, "4.3", a.Version())
}

func TestAdaptor_RegionName(t *testing.T) {
	tests := []struct {
		name  string
		props domain.Properties
		want  string
	}{
		{
			name: "scoped name when prefix unset",
			want: "shop.war#orders.com.example.Order",
		},
		{
			name:  "declared prefix",
			props: domain.Properties{domain.CacheRegionPrefixProperty: "orders"},
			want:  "orders.com.example.Order",
		},
		{
			name:  "empty prefix is still a prefix",
			props: domain.Properties{domain.CacheRegionPrefixProperty: ""},
			want:  ".com.example.Order",
		},
	}

	a := management.New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pu := &domain.PersistenceUnit{ScopedName: "shop.war#orders", Properties: tt.props}
			assert.Equal(t, tt.want, a.RegionName(pu, "com.example.Order"))
		})
	}
}
