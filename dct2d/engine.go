// Package dct2d implements a streaming fixed-point two-dimensional DCT
// engine: the transform stage of a block-based image encoding pipeline.
//
// The engine consumes one sample per clock edge under a valid/data handshake
// and produces one NxN coefficient block per N*N accepted samples. The 2D
// transform is separable: a row pass at stage-1 precision feeds a ping-pong
// transpose buffer, and a column pass at output precision drains it, so the
// row pass of block k+1 overlaps the column pass of block k. Blocks leave in
// arrival order with a constant latency of N+1 edges from a block's last
// input sample to its output-valid pulse.
package dct2d

import (
	"github.com/cocosip/go-dct-engine/transform"
)

// Engine is a streaming 2D-DCT engine instance. Configuration is fixed at
// construction; the only runtime inputs are the per-edge sample bus and the
// reset line. Engine is not safe for concurrent use: it models a single
// synchronous clock domain.
type Engine struct {
	params Parameters
	n      int

	rowStage *stage
	colStage *stage
	buf      *pingPong

	state       State
	sampleIndex int // samples latched into the current row
	rowIndex    int // rows written into the active side
	colPending  bool
	colIndex    int // columns transformed on the shadow side

	outBlock []int32 // coefficient block being assembled column by column
}

// New creates an engine for the given parameters. Configuration mismatches
// are rejected here; the transform path itself has no recoverable errors.
func New(params *Parameters) (*Engine, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	factory, err := transform.Get(params.Core)
	if err != nil {
		return nil, err
	}

	rowCore, err := factory(params.rowConfig())
	if err != nil {
		return nil, err
	}
	colCore, err := factory(params.columnConfig())
	if err != nil {
		return nil, err
	}

	// Both stages must carry the exact configuration they were asked for.
	if rowCore.Config() != params.rowConfig() || colCore.Config() != params.columnConfig() {
		return nil, transform.ErrConfigMismatch
	}

	e := &Engine{
		params:   *params,
		n:        params.N,
		rowStage: newStage(rowCore),
		colStage: newStage(colCore),
		buf:      newPingPong(params.N),
		outBlock: make([]int32, params.N*params.N),
	}
	return e, nil
}

// N returns the block dimension
func (e *Engine) N() int {
	return e.n
}

// Params returns a copy of the engine's parameters
func (e *Engine) Params() Parameters {
	return e.params
}

// State returns the control FSM state after the most recent edge
func (e *Engine) State() State {
	return e.state
}

// Step advances the engine by one clock edge. sample and valid form the
// input handshake; the sample is latched only when valid is true. When a
// complete coefficient block has been transformed, Step returns the N*N
// coefficients in row-major order together with a true output-valid flag,
// for exactly one edge per block. The returned slice is a fresh copy.
//
// The engine keeps advancing its column pass on edges where valid is false,
// mirroring a free-running clock; a partially loaded row is simply held.
func (e *Engine) Step(sample int32, valid bool) (out []int32, outValid bool) {
	sig := Signals{
		InValid:    valid,
		RowTick:    valid && e.sampleIndex == e.n-1,
		BlockTick:  valid && e.sampleIndex == e.n-1 && e.rowIndex == e.n-1,
		RowPartial: e.sampleIndex > 0,
		ColPending: e.colPending,
		ColLast:    e.colIndex == e.n,
	}
	next, act := transition(e.state, sig)

	// Column side of the previous block drains first; the ping-pong sides
	// keep it independent of this edge's row activity.
	if act.Emit {
		out = make([]int32, len(e.outBlock))
		copy(out, e.outBlock)
		outValid = true
		e.colPending = false
	}
	if act.ColPass {
		e.buf.readColumn(e.colIndex, e.colStage.vec)
		e.colStage.transform()
		for u := 0; u < e.n; u++ {
			e.outBlock[u*e.n+e.colIndex] = e.colStage.coef[u]
		}
		e.colIndex++
	}

	if act.Accept {
		e.rowStage.vec[e.sampleIndex] = sample
		e.sampleIndex++
	}
	if act.RowPass {
		e.rowStage.transform()
		for c := 0; c < e.n; c++ {
			e.buf.write(e.rowIndex, c, e.rowStage.coef[c])
		}
		e.sampleIndex = 0
		e.rowIndex++
	}
	if act.Swap {
		if e.colPending {
			// Column pass needs N+1 edges against N*N input edges per
			// block, so the shadow side is always drained in time.
			panic("dct2d: swap while column pass busy")
		}
		e.buf.swap()
		e.rowIndex = 0
		e.colIndex = 0
		e.colPending = true
	}

	e.state = next
	return out, outValid
}

// Reset aborts in-flight work and returns the engine to IDLE with cleared
// buffers. Re-streaming the same input afterwards reproduces a fresh run.
func (e *Engine) Reset() {
	e.state = StateIdle
	e.sampleIndex = 0
	e.rowIndex = 0
	e.colPending = false
	e.colIndex = 0
	e.rowStage.reset()
	e.colStage.reset()
	e.buf.reset()
	clear(e.outBlock)
}

// TransformBlock transforms one N*N sample block in row-major order and
// returns its coefficient block. It drives the streaming engine internally
// and resets it first, so there is exactly one transform path.
func (e *Engine) TransformBlock(samples []int32) ([]int32, error) {
	if len(samples) != e.n*e.n {
		return nil, ErrInvalidBlockLength
	}
	limit := int32(1)<<e.params.SampleBits - 1
	for _, s := range samples {
		if s < 0 || s > limit {
			return nil, ErrSampleOutOfRange
		}
	}

	e.Reset()
	for _, s := range samples {
		if _, ok := e.Step(s, true); ok {
			// A single block cannot complete before its last sample.
			panic("dct2d: early output")
		}
	}
	// Drain the column pass and the emit edge.
	for i := 0; i <= e.n+1; i++ {
		if out, ok := e.Step(0, false); ok {
			return out, nil
		}
	}
	panic("dct2d: pipeline did not emit")
}
