package export

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Stdout is the output path that selects standard output.
const Stdout = "-"

// Kind names an on-disk table encoding
type Kind string

const (
	KindCSV    Kind = "csv"
	KindJSON   Kind = "json"
	KindSQLite Kind = "sqlite"
)

// Format is the encoding chosen for an output path.
type Format struct {
	Kind       Kind
	Compressed bool
}

func (f Format) String() string {
	if f.Compressed {
		return string(f.Kind) + "+xz"
	}
	return string(f.Kind)
}

// DetectFormat picks the encoding from the file extension. A trailing ".xz"
// compresses CSV and JSON output; SQLite files cannot be compressed.
func DetectFormat(path string) (Format, error) {
	if path == Stdout {
		return Format{Kind: KindCSV}, nil
	}

	name := strings.ToLower(filepath.Base(path))
	var f Format
	if trimmed, ok := strings.CutSuffix(name, ".xz"); ok {
		f.Compressed = true
		name = trimmed
	}

	switch filepath.Ext(name) {
	case ".csv":
		f.Kind = KindCSV
	case ".json":
		f.Kind = KindJSON
	case ".db", ".sqlite", ".sqlite3":
		if f.Compressed {
			return Format{}, fmt.Errorf("%w: %s (sqlite output cannot be compressed)", ErrUnsupportedFormat, path)
		}
		f.Kind = KindSQLite
	default:
		return Format{}, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
	return f, nil
}

// Extension returns the file extension ToFile expects for f.
func (f Format) Extension() string {
	ext := "." + string(f.Kind)
	if f.Kind == KindSQLite {
		ext = ".db"
	}
	if f.Compressed {
		ext += ".xz"
	}
	return ext
}

// ParseFormat reads a format name such as "csv", "json.xz" or "sqlite".
func ParseFormat(name string) (Format, error) {
	name = strings.ToLower(strings.TrimPrefix(name, "."))
	switch name {
	case "db":
		name = "sqlite"
	case "csv+xz":
		name = "csv.xz"
	case "json+xz":
		name = "json.xz"
	}
	if name == "sqlite" {
		return Format{Kind: KindSQLite}, nil
	}
	f, err := DetectFormat("out." + name)
	if err != nil {
		return Format{}, fmt.Errorf("%w: %q", ErrUnsupportedFormat, name)
	}
	return f, nil
}
