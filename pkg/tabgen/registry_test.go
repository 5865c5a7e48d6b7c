package tabgen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKinds(t *testing.T) {
	assert.Equal(t, []string{KindCategory, KindTimeSeries}, Kinds())
}

func TestNewFromConfig(t *testing.T) {
	seed := int64(8)
	ds, err := New(Config{
		Kind:         KindTimeSeries,
		SampleSize:   2,
		FeatureSize:  3,
		MissingRatio: 0.1,
		StartDate:    "2024-06-01",
		EndDate:      "2024-06-02",
		Seed:         &seed,
	})
	require.NoError(t, err)
	assert.Equal(t, KindTimeSeries, ds.Kind())

	got, ok := ds.Seed()
	assert.True(t, ok)
	assert.Equal(t, seed, got)

	df, err := ds.Generate()
	require.NoError(t, err)
	assert.Equal(t, 4, df.Nrow())
	assert.Equal(t, 5, df.Ncol())
}

func TestNewFromConfigDefaults(t *testing.T) {
	ds, err := New(Config{Kind: KindCategory, SampleSize: 1, FeatureSize: 1})
	require.NoError(t, err)
	seed, _ := ds.Seed()
	assert.Equal(t, DefaultSeed, seed)

	ds, err = New(Config{Kind: KindCategory, SampleSize: 1, FeatureSize: 1, RandomSeed: true})
	require.NoError(t, err)
	_, ok := ds.Seed()
	assert.True(t, ok)
}

func TestNewFromConfigErrors(t *testing.T) {
	_, err := New(Config{Kind: "images", SampleSize: 1, FeatureSize: 1})
	assert.ErrorIs(t, err, ErrUnknownKind)

	_, err = New(Config{Kind: KindTimeSeries, SampleSize: 1, FeatureSize: 1, StartDate: "2024-01-01"})
	assert.ErrorIs(t, err, ErrInvalidConfiguration)
}
