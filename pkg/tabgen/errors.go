package tabgen

import "errors"

// Sentinel errors for common error conditions
var (
	// ErrInvalidConfiguration is wrapped by every constructor validation failure.
	ErrInvalidConfiguration = errors.New("invalid configuration")

	// ErrNotImplemented is returned by Base.Generate; concrete generators override it.
	ErrNotImplemented = errors.New("generate not implemented")

	// ErrUnknownKind is returned by the registry for unregistered generator kinds.
	ErrUnknownKind = errors.New("unknown dataset kind")
)
