// Package dct1d provides N-point DCT-II arithmetic cores for the 2D engine.
//
// The "matrix" core is the fixed-point production core: the orthonormal
// DCT-II basis is quantized once at construction into an integer coefficient
// ROM, and each transform is an O(N^2) multiply-accumulate with a single
// rounding at the output. The "reference" core computes the same transform in
// float64 and is used for conformance comparison.
package dct1d

import (
	"math"

	"github.com/cocosip/go-dct-engine/transform"
)

// MatrixCore computes an N-point DCT-II as a fixed-point matrix product
type MatrixCore struct {
	cfg transform.Config
	rom [][]int64 // orthonormal DCT-II basis scaled by 2^FractBits
}

// NewMatrix creates a fixed-point matrix core for the given configuration
func NewMatrix(cfg transform.Config) (transform.Core, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &MatrixCore{
		cfg: cfg,
		rom: cosineROM(cfg.N, cfg.FractBits),
	}, nil
}

// cosineROM quantizes the orthonormal DCT-II basis to fract-bit fixed point.
// Row k holds the weights of output coefficient k:
// alpha(k) * cos(pi*k*(2i+1) / 2N), alpha(0)=sqrt(1/N), alpha(k>0)=sqrt(2/N).
func cosineROM(n int, fractBits uint) [][]int64 {
	scale := float64(int64(1) << fractBits)
	a0 := math.Sqrt(1 / float64(n))
	ak := math.Sqrt(2 / float64(n))

	rom := make([][]int64, n)
	for k := range rom {
		rom[k] = make([]int64, n)
		alpha := ak
		if k == 0 {
			alpha = a0
		}
		for i := 0; i < n; i++ {
			f := alpha * math.Cos(math.Pi*float64(k)*(2*float64(i)+1)/(2*float64(n)))
			rom[k][i] = int64(math.Round(f * scale))
		}
	}
	return rom
}

// Transform computes the N-point DCT-II of in into out
func (c *MatrixCore) Transform(in, out []int32) error {
	n := c.cfg.N
	if len(in) != n || len(out) != n {
		return transform.ErrInvalidVectorLength
	}

	for k := 0; k < n; k++ {
		row := c.rom[k]
		var acc int64
		for i := 0; i < n; i++ {
			acc += row[i] * int64(in[i])
		}
		v := transform.Round(acc, c.cfg.FractBits, c.cfg.Rounding)
		out[k] = transform.Clamp(v, c.cfg.OutputBits, c.cfg.Overflow)
	}
	return nil
}

// Name returns the registry name of the core
func (c *MatrixCore) Name() string {
	return "matrix"
}

// Config returns the configuration the core was built with
func (c *MatrixCore) Config() transform.Config {
	return c.cfg
}

// Register cores with the global registry
func init() {
	transform.Register("matrix", NewMatrix)
	transform.Register("reference", NewReference)
}
