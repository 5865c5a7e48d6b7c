package tabgen

import "github.com/go-gota/gota/dataframe"

const KindCategory = "category"

// Category is meant to produce categorical feature columns. Generation is not
// implemented yet: Generate returns an empty table for every configuration.
type Category struct {
	*Base
}

// NewCategory validates the configuration and returns a generator seeded with
// DefaultSeed unless an option says otherwise.
func NewCategory(sampleSize, featureSize int, missingRatio float64, opts ...Option) (*Category, error) {
	base, err := NewBase(sampleSize, featureSize, missingRatio, withDefaultSeed(opts)...)
	if err != nil {
		return nil, err
	}
	return &Category{Base: base}, nil
}

func (c *Category) Kind() string { return KindCategory }

// Generate returns a table with no rows and no columns.
func (c *Category) Generate() (dataframe.DataFrame, error) {
	return dataframe.DataFrame{}, nil
}

// Implemented reports whether Generate produces data. Always false.
func (c *Category) Implemented() bool { return false }
