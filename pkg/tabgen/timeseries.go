package tabgen

import (
	"fmt"
	"time"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

const KindTimeSeries = "timeseries"

// DateLayout is the format of start/end dates and of the timestamp column.
const DateLayout = "2006-01-02"

// TimeSeries generates one row per (identifier, date) pair over an inclusive
// daily range, each row carrying FeatureSize numeric features.
type TimeSeries struct {
	*Base
	start time.Time
	end   time.Time
}

// NewTimeSeries validates the configuration and returns a generator seeded
// with DefaultSeed unless an option says otherwise.
func NewTimeSeries(sampleSize, featureSize int, startDate, endDate string, missingRatio float64, opts ...Option) (*TimeSeries, error) {
	start, err := ParseDate(startDate)
	if err != nil {
		return nil, err
	}
	end, err := ParseDate(endDate)
	if err != nil {
		return nil, err
	}
	if end.Before(start) {
		return nil, fmt.Errorf("%w: end date %s is before start date %s",
			ErrInvalidConfiguration, end.Format(DateLayout), start.Format(DateLayout))
	}

	base, err := NewBase(sampleSize, featureSize, missingRatio, withDefaultSeed(opts)...)
	if err != nil {
		return nil, err
	}

	return &TimeSeries{Base: base, start: start, end: end}, nil
}

func withDefaultSeed(opts []Option) []Option {
	return append([]Option{WithSeed(DefaultSeed)}, opts...)
}

func (ts *TimeSeries) Kind() string { return KindTimeSeries }

// Dates returns the configured range.
func (ts *TimeSeries) Dates() (start, end time.Time) {
	return ts.start, ts.end
}

// Generate builds sampleSize × days rows with columns id, timestamp and
// feature_1..feature_n. Rows are grouped by identifier, dates ascending.
func (ts *TimeSeries) Generate() (dataframe.DataFrame, error) {
	ids, err := ts.GenerateIDs(ts.sampleSize)
	if err != nil {
		return dataframe.DataFrame{}, err
	}
	dates := DateRange(ts.start, ts.end)

	n := len(ids) * len(dates)
	idCol := make([]string, 0, n)
	tsCol := make([]string, 0, n)
	features := make([][]float64, ts.featureSize)
	for j := range features {
		features[j] = make([]float64, n)
	}

	row := 0
	for _, id := range ids {
		for _, d := range dates {
			idCol = append(idCol, id)
			tsCol = append(tsCol, d.Format(DateLayout))
			for j := range features {
				features[j][row] = ts.numericFeature()
			}
			row++
		}
	}

	cols := make([]series.Series, 0, 2+ts.featureSize)
	cols = append(cols,
		series.New(idCol, series.String, ColumnID),
		series.New(tsCol, series.String, ColumnTimestamp),
	)
	for j, values := range features {
		cols = append(cols, series.New(values, series.Float, FeatureColumn(j+1)))
	}

	df := dataframe.New(cols...)
	if df.Err != nil {
		return dataframe.DataFrame{}, fmt.Errorf("failed to assemble time series table: %w", df.Err)
	}
	return df, nil
}

// ParseDate accepts YYYY-MM-DD or RFC 3339; the time of day is dropped.
func ParseDate(s string) (time.Time, error) {
	if t, err := time.Parse(DateLayout, s); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: invalid date %q", ErrInvalidConfiguration, s)
	}
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC), nil
}

// DateRange returns every day from start to end inclusive. It is empty when
// end is before start.
func DateRange(start, end time.Time) []time.Time {
	var dates []time.Time
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		dates = append(dates, d)
	}
	return dates
}
