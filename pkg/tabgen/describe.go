package tabgen

import (
	"math"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// ColumnSummary holds per-column statistics. Numeric fields are zero when
// the column has no present values.
type ColumnSummary struct {
	Name         string  `json:"name"`
	Type         string  `json:"type"`
	Count        int     `json:"count"`
	Missing      int     `json:"missing"`
	MissingRatio float64 `json:"missing_ratio"`
	Unique       int     `json:"unique,omitempty"`
	Mean         float64 `json:"mean,omitempty"`
	Std          float64 `json:"std,omitempty"`
	Min          float64 `json:"min,omitempty"`
	Max          float64 `json:"max,omitempty"`
}

// Numeric reports whether the statistics fields apply.
func (c ColumnSummary) Numeric() bool {
	return c.Type == string(series.Float) || c.Type == string(series.Int)
}

// Describe summarizes every column of df. Float and int columns get mean,
// sample standard deviation, min and max over present values; other columns
// get the number of distinct present values.
func Describe(df dataframe.DataFrame) []ColumnSummary {
	names := df.Names()
	summaries := make([]ColumnSummary, 0, len(names))
	for _, name := range names {
		col := df.Col(name)
		s := ColumnSummary{Name: name, Type: string(col.Type())}

		switch col.Type() {
		case series.Float, series.Int:
			describeNumeric(&s, col)
		default:
			describeText(&s, col)
		}
		if total := s.Count + s.Missing; total > 0 {
			s.MissingRatio = float64(s.Missing) / float64(total)
		}
		summaries = append(summaries, s)
	}
	return summaries
}

func describeNumeric(s *ColumnSummary, col series.Series) {
	values := col.Float()
	present := make([]float64, 0, len(values))
	for _, v := range values {
		if math.IsNaN(v) {
			s.Missing++
			continue
		}
		present = append(present, v)
	}
	s.Count = len(present)
	if s.Count == 0 {
		return
	}

	s.Min = floats.Min(present)
	s.Max = floats.Max(present)
	if s.Count == 1 {
		s.Mean = present[0]
		return
	}
	s.Mean, s.Std = stat.MeanStdDev(present, nil)
}

func describeText(s *ColumnSummary, col series.Series) {
	seen := make(map[string]struct{})
	records := col.Records()
	for i, na := range col.IsNaN() {
		if na {
			s.Missing++
			continue
		}
		seen[records[i]] = struct{}{}
	}
	s.Count = len(records) - s.Missing
	s.Unique = len(seen)
}
