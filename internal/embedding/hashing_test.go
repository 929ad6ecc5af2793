package embedding

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashingEmbedder_Deterministic(t *testing.T) {
	e := NewHashingEmbedder(0)
	require.Equal(t, DefaultHashingDimension, e.Dimension())

	first, err := e.Embed(context.Background(), "Senior Go engineer, Kubernetes and PostgreSQL")
	require.NoError(t, err)
	second, err := e.Embed(context.Background(), "Senior Go engineer, Kubernetes and PostgreSQL")
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Len(t, first, DefaultHashingDimension)
}

func TestHashingEmbedder_UnitNorm(t *testing.T) {
	e := NewHashingEmbedder(64)

	vec, err := e.Embed(context.Background(), "python django postgres")
	require.NoError(t, err)

	var norm float64
	for _, v := range vec {
		norm += float64(v) * float64(v)
	}
	assert.InDelta(t, 1.0, math.Sqrt(norm), 1e-5)
}

func TestHashingEmbedder_EmptyText(t *testing.T) {
	e := NewHashingEmbedder(32)

	vec, err := e.Embed(context.Background(), "  \n\t ")
	require.NoError(t, err)
	assert.Equal(t, make([]float32, 32), vec)
}

func TestHashingEmbedder_OverlapBeatsDisjoint(t *testing.T) {
	e := NewHashingEmbedder(256)
	ctx := context.Background()

	base, err := e.Embed(ctx, "go kubernetes postgresql grpc")
	require.NoError(t, err)
	similar, err := e.Embed(ctx, "go kubernetes postgresql docker")
	require.NoError(t, err)
	disjoint, err := e.Embed(ctx, "pastry chef sourdough lamination")
	require.NoError(t, err)

	assert.Greater(t, dot(base, similar), dot(base, disjoint))
}

func dot(a, b []float32) float64 {
	var sum float64
	for i := range a {
		sum += float64(a[i]) * float64(b[i])
	}
	return sum
}
