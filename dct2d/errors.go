package dct2d

import "errors"

var (
	// ErrInvalidSampleWidth is returned when the input sample width is unsupported
	ErrInvalidSampleWidth = errors.New("invalid sample width")

	// ErrInvalidBlockLength is returned when a batch input is not N*N samples
	ErrInvalidBlockLength = errors.New("invalid block length")

	// ErrSampleOutOfRange is returned when a batch input sample exceeds the
	// configured unsigned sample range
	ErrSampleOutOfRange = errors.New("sample out of range")

	// ErrAccumulatorOverflow is returned when the configured widths could
	// overflow the internal accumulator
	ErrAccumulatorOverflow = errors.New("accumulator overflow")
)
