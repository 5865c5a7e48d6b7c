package tabgen

import "strconv"

// Column names shared by all generators.
const (
	ColumnID        = "id"
	ColumnTimestamp = "timestamp"
	// ColumnLabel is reserved for labelled datasets; no generator emits it yet.
	ColumnLabel = "label"
)

const featurePrefix = "feature_"

// FeatureColumn returns the name of the i-th feature column (1-based).
func FeatureColumn(i int) string {
	return featurePrefix + strconv.Itoa(i)
}
