package tabgen

import (
	"math"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBaseValidation(t *testing.T) {
	tests := []struct {
		name         string
		sampleSize   int
		featureSize  int
		missingRatio float64
	}{
		{"zero samples", 0, 1, 0.1},
		{"negative samples", -3, 1, 0.1},
		{"zero features", 1, 0, 0.1},
		{"negative ratio", 1, 1, -0.01},
		{"ratio above one", 1, 1, 1.5},
		{"NaN ratio", 1, 1, math.NaN()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewBase(tt.sampleSize, tt.featureSize, tt.missingRatio)
			assert.ErrorIs(t, err, ErrInvalidConfiguration)
		})
	}

	for _, ratio := range []float64{0, 0.5, 1} {
		_, err := NewBase(1, 1, ratio)
		assert.NoError(t, err, "ratio %v should be accepted", ratio)
	}
}

func TestBaseGenerateNotImplemented(t *testing.T) {
	b, err := NewBase(3, 2, 0.1, WithSeed(7))
	require.NoError(t, err)

	df, err := b.Generate()
	assert.ErrorIs(t, err, ErrNotImplemented)
	assert.Equal(t, 0, df.Nrow())
}

func TestGenerateIDs(t *testing.T) {
	b, err := NewBase(50, 1, 0, WithSeed(1))
	require.NoError(t, err)

	ids, err := b.GenerateIDs(50)
	require.NoError(t, err)
	require.Len(t, ids, 50)

	seen := make(map[string]bool)
	for _, id := range ids {
		u, err := uuid.Parse(id)
		require.NoError(t, err, "id %q", id)
		assert.Equal(t, uuid.Version(4), u.Version())
		assert.Equal(t, uuid.RFC4122, u.Variant())
		assert.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true
	}
}

func TestGenerateIDsDeterministic(t *testing.T) {
	a, err := NewBase(5, 1, 0, WithSeed(99))
	require.NoError(t, err)
	b, err := NewBase(5, 1, 0, WithSeed(99))
	require.NoError(t, err)

	idsA, err := a.GenerateIDs(5)
	require.NoError(t, err)
	idsB, err := b.GenerateIDs(5)
	require.NoError(t, err)
	assert.Equal(t, idsA, idsB)

	c, err := NewBase(5, 1, 0, WithSeed(100))
	require.NoError(t, err)
	idsC, err := c.GenerateIDs(5)
	require.NoError(t, err)
	assert.NotEqual(t, idsA, idsC)
}

func TestSeedReporting(t *testing.T) {
	b, err := NewBase(1, 1, 0, WithSeed(1234))
	require.NoError(t, err)
	seed, ok := b.Seed()
	assert.True(t, ok)
	assert.Equal(t, int64(1234), seed)

	// an unseeded base still reports the seed it drew
	r, err := NewBase(1, 1, 0)
	require.NoError(t, err)
	seed, ok = r.Seed()
	assert.True(t, ok)
	assert.GreaterOrEqual(t, seed, int64(0))

	replay, err := NewBase(1, 1, 0, WithSeed(seed))
	require.NoError(t, err)
	idsR, _ := r.GenerateIDs(3)
	idsReplay, _ := replay.GenerateIDs(3)
	assert.Equal(t, idsR, idsReplay)

	injected, err := NewBase(1, 1, 0, WithSource(NewSource(5)))
	require.NoError(t, err)
	_, ok = injected.Seed()
	assert.False(t, ok)
}

func TestNumericFeatureExtremes(t *testing.T) {
	never, err := NewBase(1, 1, 0, WithSeed(3))
	require.NoError(t, err)
	always, err := NewBase(1, 1, 1, WithSeed(3))
	require.NoError(t, err)

	for i := 0; i < 1000; i++ {
		assert.False(t, math.IsNaN(never.numericFeature()))
		assert.True(t, math.IsNaN(always.numericFeature()))
	}
}

func TestFeatureColumn(t *testing.T) {
	assert.Equal(t, "feature_1", FeatureColumn(1))
	assert.Equal(t, "feature_12", FeatureColumn(12))
}
