// Package tabgen generates synthetic tabular datasets: randomized UUID
// identifiers, daily timestamps and standard-normal numeric features with a
// configurable missing-value ratio.
//
// Every generator owns its random stream. Nothing here touches process-wide
// random state, so generators built with the same seed produce the same
// tables regardless of what else runs in the process.
package tabgen

import (
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/go-gota/gota/dataframe"
	"github.com/google/uuid"
)

// Dataset produces a table on every Generate call.
type Dataset interface {
	// Kind returns the registry name of the generator.
	Kind() string

	// Generate builds a fresh table, advancing the generator's random stream.
	Generate() (dataframe.DataFrame, error)

	// Seed returns the seed the stream was built from. ok is false when the
	// stream was injected with WithSource.
	Seed() (seed int64, ok bool)
}

// Base holds the configuration shared by all generators and the random
// stream they draw from. It satisfies Dataset, but Generate always fails;
// concrete generators embed it and provide their own.
type Base struct {
	sampleSize   int
	featureSize  int
	missingRatio float64

	seed      int64
	seedKnown bool
	src       *rand.ChaCha8
	rng       *rand.Rand
}

// NewBase validates the shared configuration and sets up the random stream.
// Without options the stream is seeded from crypto/rand.
func NewBase(sampleSize, featureSize int, missingRatio float64, opts ...Option) (*Base, error) {
	if err := validate(sampleSize, featureSize, missingRatio); err != nil {
		return nil, err
	}

	src, seed, known := resolve(opts)
	return &Base{
		sampleSize:   sampleSize,
		featureSize:  featureSize,
		missingRatio: missingRatio,
		seed:         seed,
		seedKnown:    known,
		src:          src,
		rng:          rand.New(src),
	}, nil
}

func validate(sampleSize, featureSize int, missingRatio float64) error {
	if sampleSize <= 0 {
		return fmt.Errorf("%w: sample size must be positive, got %d", ErrInvalidConfiguration, sampleSize)
	}
	if featureSize <= 0 {
		return fmt.Errorf("%w: feature size must be positive, got %d", ErrInvalidConfiguration, featureSize)
	}
	if math.IsNaN(missingRatio) || missingRatio < 0 || missingRatio > 1 {
		return fmt.Errorf("%w: missing ratio must be within [0, 1], got %v", ErrInvalidConfiguration, missingRatio)
	}
	return nil
}

func (b *Base) Kind() string { return "base" }

// Generate always returns ErrNotImplemented.
func (b *Base) Generate() (dataframe.DataFrame, error) {
	return dataframe.DataFrame{}, ErrNotImplemented
}

func (b *Base) SampleSize() int       { return b.sampleSize }
func (b *Base) FeatureSize() int      { return b.featureSize }
func (b *Base) MissingRatio() float64 { return b.missingRatio }

func (b *Base) Seed() (int64, bool) {
	return b.seed, b.seedKnown
}

// GenerateIDs returns n version 4 UUID strings read from the generator's
// stream. Uniqueness is left to the 122 random bits.
func (b *Base) GenerateIDs(n int) ([]string, error) {
	ids := make([]string, n)
	for i := range ids {
		id, err := uuid.NewRandomFromReader(b.src)
		if err != nil {
			return nil, fmt.Errorf("failed to generate id: %w", err)
		}
		ids[i] = id.String()
	}
	return ids, nil
}

// numericFeature draws one feature value. Both draws happen every time so
// the stream advances identically for any missing ratio.
func (b *Base) numericFeature() float64 {
	missing := b.rng.Float64() < b.missingRatio
	v := b.rng.NormFloat64()
	if missing {
		return math.NaN()
	}
	return v
}
