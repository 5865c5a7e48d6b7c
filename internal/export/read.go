package export

import (
	"fmt"
	"io"
	"os"

	"github.com/go-gota/gota/dataframe"
	"github.com/ulikunitz/xz"
)

// ReadFile loads a CSV or JSON table written by ToFile, decompressing
// ".xz" files. Values written as NaN or null load as missing.
func ReadFile(path string) (dataframe.DataFrame, error) {
	format, err := DetectFormat(path)
	if err != nil {
		return dataframe.DataFrame{}, err
	}
	if format.Kind == KindSQLite {
		return dataframe.DataFrame{}, fmt.Errorf("%w: reading %s", ErrUnsupportedFormat, path)
	}

	file, err := os.Open(path)
	if err != nil {
		return dataframe.DataFrame{}, err
	}
	defer file.Close()

	return Read(file, format)
}

// Read decodes a table from r.
func Read(r io.Reader, format Format) (dataframe.DataFrame, error) {
	if format.Compressed {
		xr, err := xz.NewReader(r)
		if err != nil {
			return dataframe.DataFrame{}, fmt.Errorf("failed to open xz stream: %w", err)
		}
		r = xr
	}

	var df dataframe.DataFrame
	switch format.Kind {
	case KindCSV:
		df = dataframe.ReadCSV(r)
	case KindJSON:
		df = dataframe.ReadJSON(r)
	default:
		return dataframe.DataFrame{}, fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}
	if df.Err != nil {
		return dataframe.DataFrame{}, fmt.Errorf("failed to parse table: %w", df.Err)
	}
	return df, nil
}
