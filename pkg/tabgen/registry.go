package tabgen

import (
	"fmt"
	"sort"
)

// Config describes one dataset in a form that can be loaded from YAML and
// stored alongside generated runs.
type Config struct {
	Name         string  `yaml:"name" json:"name"`
	Kind         string  `yaml:"kind" json:"kind"`
	SampleSize   int     `yaml:"sample_size" json:"sample_size"`
	FeatureSize  int     `yaml:"feature_size" json:"feature_size"`
	MissingRatio float64 `yaml:"missing_ratio" json:"missing_ratio"`
	StartDate    string  `yaml:"start_date,omitempty" json:"start_date,omitempty"`
	EndDate      string  `yaml:"end_date,omitempty" json:"end_date,omitempty"`
	// Seed pins the random stream. Nil means the kind's default seed.
	Seed *int64 `yaml:"seed,omitempty" json:"seed,omitempty"`
	// RandomSeed ignores Seed and the default, drawing a fresh seed.
	RandomSeed bool `yaml:"random_seed,omitempty" json:"random_seed,omitempty"`
}

func (c Config) options() []Option {
	switch {
	case c.RandomSeed:
		return []Option{WithRandomSeed()}
	case c.Seed != nil:
		return []Option{WithSeed(*c.Seed)}
	default:
		return nil
	}
}

// Factory builds a generator from a Config.
type Factory func(cfg Config) (Dataset, error)

// Registry maps generator kinds to factories
var Registry = map[string]Factory{
	KindTimeSeries: func(cfg Config) (Dataset, error) {
		return NewTimeSeries(cfg.SampleSize, cfg.FeatureSize, cfg.StartDate, cfg.EndDate, cfg.MissingRatio, cfg.options()...)
	},
	KindCategory: func(cfg Config) (Dataset, error) {
		return NewCategory(cfg.SampleSize, cfg.FeatureSize, cfg.MissingRatio, cfg.options()...)
	},
}

// Get returns the factory registered for kind
func Get(kind string) (Factory, error) {
	factory, exists := Registry[kind]
	if !exists {
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
	return factory, nil
}

// Kinds returns all registered kinds, sorted
func Kinds() []string {
	kinds := make([]string, 0, len(Registry))
	for kind := range Registry {
		kinds = append(kinds, kind)
	}
	sort.Strings(kinds)
	return kinds
}

// New builds the generator described by cfg.
func New(cfg Config) (Dataset, error) {
	factory, err := Get(cfg.Kind)
	if err != nil {
		return nil, err
	}
	return factory(cfg)
}
