package export

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/go-gota/gota/dataframe"
)

// MissingMarker is written for missing cells in CSV output. dataframe.ReadCSV
// reads it back as missing.
const MissingMarker = "NaN"

// WriteCSV writes df with a header row. Floats keep full precision.
func WriteCSV(w io.Writer, df dataframe.DataFrame) error {
	names := df.Names()
	cols := make([][]any, len(names))
	for i, name := range names {
		cols[i] = columnValues(df.Col(name))
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(names); err != nil {
		return err
	}
	record := make([]string, len(names))
	for r := 0; r < df.Nrow(); r++ {
		for c := range cols {
			record[c] = formatCell(cols[c][r])
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func formatCell(v any) string {
	switch v := v.(type) {
	case nil:
		return MissingMarker
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64)
	case int:
		return strconv.Itoa(v)
	case bool:
		return strconv.FormatBool(v)
	case string:
		return v
	default:
		return MissingMarker
	}
}
