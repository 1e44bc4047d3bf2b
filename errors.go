package colorfilter

import "errors"

var (
	// ErrMatrixLength is returned when a coefficient slice does not hold
	// exactly 20 values (4 rows by 5 columns).
	ErrMatrixLength = errors.New("colorfilter: color matrix must have 20 coefficients")

	// ErrInvalidColor is returned by ParseColor for unrecognized input.
	ErrInvalidColor = errors.New("colorfilter: invalid color")

	// ErrUnknownBlendMode is returned by ParseBlendMode for unknown names.
	ErrUnknownBlendMode = errors.New("colorfilter: unknown blend mode")

	// ErrWrongKind is returned when a setter targets a filter of another kind.
	ErrWrongKind = errors.New("colorfilter: filter kind does not support operation")

	// ErrNilFilter is returned when registering a nil filter.
	ErrNilFilter = errors.New("colorfilter: nil filter")

	// ErrAlreadyRegistered is returned when a filter that already has a
	// live handle is registered again.
	ErrAlreadyRegistered = errors.New("colorfilter: filter already registered")

	// ErrNilEngine is returned when a registry is used without an engine.
	ErrNilEngine = errors.New("colorfilter: nil engine")
)
