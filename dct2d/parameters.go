package dct2d

import (
	"math/bits"

	"github.com/cocosip/go-dct-engine/transform"
)

// Parameters contains the fixed configuration of a 2D-DCT engine instance.
// All widths follow the signed-range convention of the transform package: a
// precision of P bits confines values to [-2^P, 2^P - 1].
type Parameters struct {
	// N is the block dimension (the engine processes NxN blocks)
	N int

	// SampleBits is the unsigned input sample width; samples lie in
	// [0, 2^SampleBits - 1]
	SampleBits uint

	// FractBits is the fractional precision of the 1D core's coefficient ROM
	FractBits uint

	// Stage1Bits is the intermediate precision of the row-pass output
	Stage1Bits uint

	// OutputBits is the final coefficient precision
	OutputBits uint

	// Rounding is applied at both stage outputs
	Rounding transform.RoundingMode

	// Overflow is applied at both stage outputs
	Overflow transform.OverflowPolicy

	// Core selects the 1D transform core from the registry
	Core string
}

// NewParameters creates Parameters with the canonical 8x8 configuration:
// 8-bit samples, 14 fractional bits, 10-bit intermediate and output
// precision, round-to-nearest with saturation, fixed-point matrix core.
func NewParameters() *Parameters {
	return &Parameters{
		N:          8,
		SampleBits: 8,
		FractBits:  14,
		Stage1Bits: 10,
		OutputBits: 10,
		Rounding:   transform.RoundNearest,
		Overflow:   transform.OverflowSaturate,
		Core:       "matrix",
	}
}

// Validate checks if the parameters are consistent. Inconsistent precisions
// reject engine construction rather than produce silently wrong results.
func (p *Parameters) Validate() error {
	if p.N < 2 || p.N > 64 {
		return transform.ErrInvalidBlockSize
	}
	if p.SampleBits < 1 || p.SampleBits > 16 {
		return ErrInvalidSampleWidth
	}
	if p.FractBits < 1 || p.FractBits > 30 {
		return transform.ErrInvalidPrecision
	}
	if p.Stage1Bits < 2 || p.Stage1Bits > 31 {
		return transform.ErrInvalidPrecision
	}
	if p.OutputBits < 2 || p.OutputBits > 31 {
		return transform.ErrInvalidPrecision
	}

	// The row pass must be able to represent the DC of a full-scale row.
	if p.Stage1Bits < p.SampleBits {
		return transform.ErrConfigMismatch
	}

	if p.Rounding != transform.RoundNearest && p.Rounding != transform.RoundTruncate {
		return transform.ErrInvalidRounding
	}
	if p.Overflow != transform.OverflowSaturate && p.Overflow != transform.OverflowWrap {
		return transform.ErrInvalidOverflow
	}
	if p.Core == "" {
		return transform.ErrCoreNotFound
	}

	// Widest accumulator: N products of FractBits-scaled coefficients and
	// stage-1 values. Must fit in int64.
	widest := p.SampleBits
	if p.Stage1Bits > widest {
		widest = p.Stage1Bits
	}
	if p.FractBits+widest+uint(bits.Len(uint(p.N)))+2 > 63 {
		return ErrAccumulatorOverflow
	}
	return nil
}

// WithN sets the block dimension and returns the parameters for chaining
func (p *Parameters) WithN(n int) *Parameters {
	p.N = n
	return p
}

// WithPrecision sets the three precision parameters and returns the
// parameters for chaining
func (p *Parameters) WithPrecision(fractBits, stage1Bits, outputBits uint) *Parameters {
	p.FractBits = fractBits
	p.Stage1Bits = stage1Bits
	p.OutputBits = outputBits
	return p
}

// WithSampleBits sets the input sample width and returns the parameters for chaining
func (p *Parameters) WithSampleBits(bits uint) *Parameters {
	p.SampleBits = bits
	return p
}

// WithCore selects the 1D transform core and returns the parameters for chaining
func (p *Parameters) WithCore(name string) *Parameters {
	p.Core = name
	return p
}

// WithRounding sets the rounding mode and returns the parameters for chaining
func (p *Parameters) WithRounding(mode transform.RoundingMode) *Parameters {
	p.Rounding = mode
	return p
}

// WithOverflow sets the overflow policy and returns the parameters for chaining
func (p *Parameters) WithOverflow(policy transform.OverflowPolicy) *Parameters {
	p.Overflow = policy
	return p
}

// rowConfig returns the 1D core configuration of the row pass
func (p *Parameters) rowConfig() transform.Config {
	return transform.Config{
		N:          p.N,
		FractBits:  p.FractBits,
		OutputBits: p.Stage1Bits,
		Rounding:   p.Rounding,
		Overflow:   p.Overflow,
	}
}

// columnConfig returns the 1D core configuration of the column pass
func (p *Parameters) columnConfig() transform.Config {
	return transform.Config{
		N:          p.N,
		FractBits:  p.FractBits,
		OutputBits: p.OutputBits,
		Rounding:   p.Rounding,
		Overflow:   p.Overflow,
	}
}
