package numerics

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zalo/CDT/types"
)

func TestRegistrySetAndGet(t *testing.T) {
	r := NewRegistry()
	sv := NewInputVertex(0, types.Vec3{X: 1, Y: 2, Z: 3})

	r.Set(0, sv)

	got, ok := r.Get(0)
	require.True(t, ok)
	require.Equal(t, sv, got)
	require.Equal(t, 1, r.Len())
}

func TestRegistryGetMissingReturnsFalse(t *testing.T) {
	r := NewRegistry()

	_, ok := r.Get(42)
	require.False(t, ok)
}

func TestRegistryTracksIntersectionProvenance(t *testing.T) {
	r := NewRegistry()
	coord := types.Vec3{X: 0.5, Y: 0.5, Z: 0.5}
	sv := NewIntersectionVertex(0, 1, 2, 3, 4, coord)

	r.Set(10, sv)

	got, ok := r.Get(10)
	require.True(t, ok)
	require.True(t, got.IsSteiner())
	require.Equal(t, coord, got.Coord)
}
