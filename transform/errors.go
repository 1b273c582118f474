package transform

import "errors"

var (
	// ErrCoreNotFound is returned when a core is not found in the registry
	ErrCoreNotFound = errors.New("transform core not found")

	// ErrInvalidBlockSize is returned when the transform length is unsupported
	ErrInvalidBlockSize = errors.New("invalid block size")

	// ErrInvalidPrecision is returned when a bit-width parameter is out of range
	ErrInvalidPrecision = errors.New("invalid precision")

	// ErrInvalidRounding is returned when the rounding mode is unknown
	ErrInvalidRounding = errors.New("invalid rounding mode")

	// ErrInvalidOverflow is returned when the overflow policy is unknown
	ErrInvalidOverflow = errors.New("invalid overflow policy")

	// ErrConfigMismatch is returned when stage configurations are inconsistent
	ErrConfigMismatch = errors.New("inconsistent stage configuration")

	// ErrInvalidVectorLength is returned when a transform input or output
	// vector does not match the configured length
	ErrInvalidVectorLength = errors.New("invalid vector length")
)
