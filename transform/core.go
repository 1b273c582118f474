package transform

// Core is the universal interface for 1D transform arithmetic cores.
// A core transforms one N-element fixed-point vector per call; the 2D engine
// invokes it once per row and once per column.
type Core interface {
	// Transform computes the N-point transform of in into out.
	// Both slices must have exactly N elements.
	Transform(in, out []int32) error

	// Name returns the registry name of the core
	Name() string

	// Config returns the configuration the core was built with
	Config() Config
}

// Factory constructs a core for a given configuration
type Factory func(cfg Config) (Core, error)

// RoundingMode selects how fractional bits are removed at a precision boundary
type RoundingMode int

const (
	// RoundNearest rounds half away from zero
	RoundNearest RoundingMode = iota

	// RoundTruncate performs an arithmetic right shift (floor)
	RoundTruncate
)

// OverflowPolicy selects what happens when a value exceeds its target width
type OverflowPolicy int

const (
	// OverflowSaturate clips to the representable signed range
	OverflowSaturate OverflowPolicy = iota

	// OverflowWrap wraps modularly, like a hardware register without clipping
	OverflowWrap
)

// Config contains the parameters for a 1D transform core.
// All values are fixed for the lifetime of the core.
type Config struct {
	// N is the transform length (number of points)
	N int

	// FractBits is the fractional precision of the internal coefficient ROM
	FractBits uint

	// OutputBits is the output precision: results are confined to the
	// signed range [-2^OutputBits, 2^OutputBits - 1]
	OutputBits uint

	// Rounding is applied when the FractBits fractional bits are removed
	Rounding RoundingMode

	// Overflow is applied when a result exceeds OutputBits
	Overflow OverflowPolicy
}

// Validate checks if the configuration is valid
func (c Config) Validate() error {
	if c.N < 2 || c.N > 64 {
		return ErrInvalidBlockSize
	}
	if c.FractBits < 1 || c.FractBits > 30 {
		return ErrInvalidPrecision
	}
	if c.OutputBits < 2 || c.OutputBits > 31 {
		return ErrInvalidPrecision
	}
	if c.Rounding != RoundNearest && c.Rounding != RoundTruncate {
		return ErrInvalidRounding
	}
	if c.Overflow != OverflowSaturate && c.Overflow != OverflowWrap {
		return ErrInvalidOverflow
	}
	return nil
}
