package dct1d

import (
	"math"

	"github.com/cocosip/go-dct-engine/transform"
)

// ReferenceCore computes an N-point DCT-II in float64. It applies the same
// per-stage rounding and clamping as the fixed-point core, so driving the 2D
// engine with it reproduces the software reference model that fixed-point
// output is compared against.
type ReferenceCore struct {
	cfg   transform.Config
	basis [][]float64
}

// NewReference creates a floating-point reference core for the given configuration
func NewReference(cfg transform.Config) (transform.Core, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	n := cfg.N
	a0 := math.Sqrt(1 / float64(n))
	ak := math.Sqrt(2 / float64(n))

	basis := make([][]float64, n)
	for k := range basis {
		basis[k] = make([]float64, n)
		alpha := ak
		if k == 0 {
			alpha = a0
		}
		for i := 0; i < n; i++ {
			basis[k][i] = alpha * math.Cos(math.Pi*float64(k)*(2*float64(i)+1)/(2*float64(n)))
		}
	}
	return &ReferenceCore{cfg: cfg, basis: basis}, nil
}

// Transform computes the N-point DCT-II of in into out
func (c *ReferenceCore) Transform(in, out []int32) error {
	n := c.cfg.N
	if len(in) != n || len(out) != n {
		return transform.ErrInvalidVectorLength
	}

	for k := 0; k < n; k++ {
		row := c.basis[k]
		sum := 0.0
		for i := 0; i < n; i++ {
			sum += row[i] * float64(in[i])
		}
		var v int64
		if c.cfg.Rounding == transform.RoundTruncate {
			v = int64(math.Floor(sum))
		} else {
			v = int64(math.Round(sum))
		}
		out[k] = transform.Clamp(v, c.cfg.OutputBits, c.cfg.Overflow)
	}
	return nil
}

// Name returns the registry name of the core
func (c *ReferenceCore) Name() string {
	return "reference"
}

// Config returns the configuration the core was built with
func (c *ReferenceCore) Config() transform.Config {
	return c.cfg
}
