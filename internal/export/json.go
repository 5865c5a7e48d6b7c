package export

import (
	"encoding/json"
	"io"

	"github.com/go-gota/gota/dataframe"
)

// WriteJSON writes df as an array of row objects keyed by column name.
// Missing cells are written as null.
//
// dataframe.WriteJSON is not used because it encodes NaN, which encoding/json
// rejects.
func WriteJSON(w io.Writer, df dataframe.DataFrame) error {
	names := df.Names()
	cols := make([][]any, len(names))
	for i, name := range names {
		cols[i] = columnValues(df.Col(name))
	}

	rows := make([]map[string]any, df.Nrow())
	for r := range rows {
		row := make(map[string]any, len(names))
		for c, name := range names {
			row[name] = cols[c][r]
		}
		rows[r] = row
	}

	enc := json.NewEncoder(w)
	return enc.Encode(rows)
}
