package export

import "errors"

var (
	ErrUnsupportedFormat = errors.New("unsupported output format")
	ErrEmptyTable        = errors.New("table has no columns")
)
