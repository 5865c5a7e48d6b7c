package tabgen

import (
	crand "crypto/rand"
	"encoding/binary"
	"math/rand/v2"
)

// DefaultSeed is used by TimeSeries and Category when no seed option is given.
const DefaultSeed int64 = 42

// Option configures the random source owned by a generator.
type Option func(*sourceSettings)

type sourceSettings struct {
	seed   *int64
	source *rand.ChaCha8
}

// WithSeed pins the generator's random stream to seed.
func WithSeed(seed int64) Option {
	return func(s *sourceSettings) {
		s.seed = &seed
		s.source = nil
	}
}

// WithRandomSeed drops any default seed. A seed is drawn from crypto/rand
// and still reported by Seed, so the run can be replayed.
func WithRandomSeed() Option {
	return func(s *sourceSettings) {
		s.seed = nil
		s.source = nil
	}
}

// WithSource hands the generator a caller-owned stream. The generator must be
// the only reader of src afterwards.
func WithSource(src *rand.ChaCha8) Option {
	return func(s *sourceSettings) {
		s.seed = nil
		s.source = src
	}
}

// NewSource returns the ChaCha8 stream a generator uses for seed.
func NewSource(seed int64) *rand.ChaCha8 {
	var key [32]byte
	binary.LittleEndian.PutUint64(key[:8], uint64(seed))
	return rand.NewChaCha8(key)
}

// resolve applies opts and returns the stream plus the seed it was built from.
// known is false only for injected sources.
func resolve(opts []Option) (src *rand.ChaCha8, seed int64, known bool) {
	var s sourceSettings
	for _, opt := range opts {
		opt(&s)
	}

	switch {
	case s.source != nil:
		return s.source, 0, false
	case s.seed != nil:
		return NewSource(*s.seed), *s.seed, true
	default:
		var b [8]byte
		crand.Read(b[:])
		seed = int64(binary.LittleEndian.Uint64(b[:]) >> 1)
		return NewSource(seed), seed, true
	}
}
