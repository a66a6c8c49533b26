package location_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warehousing/fulfilment-api/internal/infrastructure/location"
)

func TestResolveByIdentifier_ExistingLocation(t *testing.T) {
	r := location.NewResolver()

	loc, ok := r.ResolveByIdentifier("AMSTERDAM-001")
	require.True(t, ok)
	assert.Equal(t, "AMSTERDAM-001", loc.Identification)
	assert.Equal(t, 5, loc.MaxNumberOfWarehouses)
	assert.Equal(t, 100, loc.MaxCapacity)
}

func TestResolveByIdentifier_UnknownLocation(t *testing.T) {
	r := location.NewResolver()

	loc, ok := r.ResolveByIdentifier("UNKNOWN-999")
	assert.False(t, ok)
	assert.Nil(t, loc)
}

func TestResolveByIdentifier_BlankInput(t *testing.T) {
	r := location.NewResolver()

	for _, id := range []string{"", "  "} {
		loc, ok := r.ResolveByIdentifier(id)
		assert.False(t, ok, "identifier %q must not resolve", id)
		assert.Nil(t, loc)
	}
}

func TestResolveByIdentifier_ZwolleAttributes(t *testing.T) {
	r := location.NewResolver()

	z1, ok := r.ResolveByIdentifier("ZWOLLE-001")
	require.True(t, ok)
	assert.Equal(t, 1, z1.MaxNumberOfWarehouses)
	assert.Equal(t, 40, z1.MaxCapacity)

	z2, ok := r.ResolveByIdentifier("ZWOLLE-002")
	require.True(t, ok)
	assert.Equal(t, 2, z2.MaxNumberOfWarehouses)
	assert.Equal(t, 50, z2.MaxCapacity)
}

func TestResolveByIdentifier_CaseSensitive(t *testing.T) {
	r := location.NewResolver()

	loc, ok := r.ResolveByIdentifier("amsterdam-001")
	assert.False(t, ok)
	assert.Nil(t, loc)
}
