package export

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/go-gota/gota/dataframe"
	"github.com/schollz/progressbar/v3"
	"github.com/ulikunitz/xz"
)

// Options control how ToFile writes.
type Options struct {
	// Progress shows a byte counter while writing.
	Progress bool
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}

// ToFile writes df to path in the format its extension names and returns
// the number of bytes that reached the destination. name is used as the
// table name for SQLite output.
func ToFile(path, name string, df dataframe.DataFrame, opts Options) (int64, error) {
	format, err := DetectFormat(path)
	if err != nil {
		return 0, err
	}

	if path == Stdout {
		cw := &countingWriter{w: os.Stdout}
		err := WriteCSV(cw, df)
		return cw.n, err
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return 0, fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	if format.Kind == KindSQLite {
		if err := WriteSQLite(path, name, df); err != nil {
			return 0, err
		}
		info, err := os.Stat(path)
		if err != nil {
			return 0, err
		}
		return info.Size(), nil
	}

	file, err := os.Create(path)
	if err != nil {
		return 0, fmt.Errorf("failed to create output file: %w", err)
	}
	defer file.Close()

	var dst io.Writer = file
	var bar *progressbar.ProgressBar
	if opts.Progress {
		bar = progressbar.DefaultBytes(-1, "writing "+filepath.Base(path))
		dst = io.MultiWriter(file, bar)
	}
	cw := &countingWriter{w: dst}

	if err := Write(cw, format, df); err != nil {
		return cw.n, err
	}
	if bar != nil {
		bar.Finish()
	}
	if err := file.Close(); err != nil {
		return cw.n, fmt.Errorf("failed to close output file: %w", err)
	}
	return cw.n, nil
}

// Write encodes df to w. SQLite is file-only and not accepted here.
func Write(w io.Writer, format Format, df dataframe.DataFrame) error {
	if !format.Compressed {
		return encode(w, format.Kind, df)
	}

	xw, err := xz.NewWriter(w)
	if err != nil {
		return fmt.Errorf("failed to create xz writer: %w", err)
	}
	if err := encode(xw, format.Kind, df); err != nil {
		xw.Close()
		return err
	}
	return xw.Close()
}

func encode(w io.Writer, kind Kind, df dataframe.DataFrame) error {
	switch kind {
	case KindCSV:
		return WriteCSV(w, df)
	case KindJSON:
		return WriteJSON(w, df)
	default:
		return fmt.Errorf("%w: %s cannot be streamed", ErrUnsupportedFormat, kind)
	}
}
