package dct2d

import (
	"testing"

	"github.com/cocosip/go-dct-engine/transform"
)

func TestDefaultParametersValid(t *testing.T) {
	p := NewParameters()
	if err := p.Validate(); err != nil {
		t.Fatalf("default parameters rejected: %v", err)
	}
	if p.N != 8 || p.FractBits != 14 || p.Stage1Bits != 10 || p.OutputBits != 10 {
		t.Errorf("unexpected defaults: %+v", p)
	}
}

func TestParametersValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Parameters)
		want   error
	}{
		{"block too small", func(p *Parameters) { p.N = 1 }, transform.ErrInvalidBlockSize},
		{"block too large", func(p *Parameters) { p.N = 128 }, transform.ErrInvalidBlockSize},
		{"zero sample width", func(p *Parameters) { p.SampleBits = 0 }, ErrInvalidSampleWidth},
		{"sample width too wide", func(p *Parameters) { p.SampleBits = 24 }, ErrInvalidSampleWidth},
		{"zero fract bits", func(p *Parameters) { p.FractBits = 0 }, transform.ErrInvalidPrecision},
		{"narrow stage 1", func(p *Parameters) { p.Stage1Bits = 1 }, transform.ErrInvalidPrecision},
		{"narrow output", func(p *Parameters) { p.OutputBits = 1 }, transform.ErrInvalidPrecision},
		{"stage 1 narrower than samples", func(p *Parameters) { p.SampleBits = 12; p.Stage1Bits = 10 }, transform.ErrConfigMismatch},
		{"unknown rounding", func(p *Parameters) { p.Rounding = transform.RoundingMode(3) }, transform.ErrInvalidRounding},
		{"unknown overflow", func(p *Parameters) { p.Overflow = transform.OverflowPolicy(3) }, transform.ErrInvalidOverflow},
		{"empty core", func(p *Parameters) { p.Core = "" }, transform.ErrCoreNotFound},
		{"accumulator overflow", func(p *Parameters) { p.FractBits = 30; p.Stage1Bits = 31 }, ErrAccumulatorOverflow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewParameters()
			tt.mutate(p)
			if err := p.Validate(); err != tt.want {
				t.Errorf("Validate() = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestParametersChaining(t *testing.T) {
	p := NewParameters().
		WithN(4).
		WithSampleBits(12).
		WithPrecision(12, 14, 12).
		WithCore("reference").
		WithRounding(transform.RoundTruncate).
		WithOverflow(transform.OverflowWrap)

	if err := p.Validate(); err != nil {
		t.Fatalf("chained parameters rejected: %v", err)
	}
	if p.N != 4 || p.SampleBits != 12 || p.FractBits != 12 || p.Stage1Bits != 14 ||
		p.OutputBits != 12 || p.Core != "reference" {
		t.Errorf("chaining lost values: %+v", p)
	}
}

func TestStageConfigs(t *testing.T) {
	p := NewParameters()

	row := p.rowConfig()
	if row.OutputBits != p.Stage1Bits {
		t.Errorf("row config output bits = %d, want stage-1 %d", row.OutputBits, p.Stage1Bits)
	}
	col := p.columnConfig()
	if col.OutputBits != p.OutputBits {
		t.Errorf("column config output bits = %d, want %d", col.OutputBits, p.OutputBits)
	}
	if row.N != col.N || row.FractBits != col.FractBits {
		t.Errorf("stage configs diverge: row %+v col %+v", row, col)
	}
}
