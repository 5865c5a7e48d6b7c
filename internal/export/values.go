package export

import (
	"math"

	"github.com/go-gota/gota/series"
)

// columnValues returns the cells of col as Go values. Missing cells are nil.
func columnValues(col series.Series) []any {
	out := make([]any, col.Len())
	switch col.Type() {
	case series.Float:
		for i, v := range col.Float() {
			if !math.IsNaN(v) {
				out[i] = v
			}
		}
	default:
		for i := range out {
			e := col.Elem(i)
			if e.IsNA() {
				continue
			}
			switch col.Type() {
			case series.Int:
				v, err := e.Int()
				if err != nil {
					continue
				}
				out[i] = v
			case series.Bool:
				v, err := e.Bool()
				if err != nil {
					continue
				}
				out[i] = v
			default:
				out[i] = e.String()
			}
		}
	}
	return out
}
