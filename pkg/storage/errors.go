package storage

import "errors"

var (
	ErrRunNotFound         = errors.New("run not found")
	ErrIncompatibleVersion = errors.New("incompatible record version")
)
