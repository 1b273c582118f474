package dct2d

import "fmt"

// pingPong is the transpose buffer between the row and column passes.
// It holds two fixed NxN sides: the row pass writes the active side while the
// column pass drains the shadow side, so the row pass of block k+1 overlaps
// the column pass of block k without corruption. swap hands a completed block
// across; there is no locking because the control FSM is the only driver.
type pingPong struct {
	n       int
	sides   [2][]int32 // row-major NxN each
	active  int        // side currently written by the row pass
	written [2]int     // rows completed per side
}

func newPingPong(n int) *pingPong {
	b := &pingPong{n: n}
	b.sides[0] = make([]int32, n*n)
	b.sides[1] = make([]int32, n*n)
	return b
}

// write stores one stage-1 value at (row, col) of the active side.
// Writing col == n-1 marks the row complete.
func (b *pingPong) write(row, col int, v int32) {
	if row < 0 || row >= b.n || col < 0 || col >= b.n {
		panic(fmt.Sprintf("transpose: write out of range (%d,%d)", row, col))
	}
	if row != b.written[b.active] {
		panic(fmt.Sprintf("transpose: write to row %d, expected row %d", row, b.written[b.active]))
	}
	b.sides[b.active][row*b.n+col] = v
	if col == b.n-1 {
		b.written[b.active]++
	}
}

// readColumn copies column col of the shadow side into dst. Reading before
// all n rows of that side were written is a contract violation: the FSM is
// specified never to issue it, so it panics rather than returning an error.
func (b *pingPong) readColumn(col int, dst []int32) {
	shadow := 1 - b.active
	if b.written[shadow] != b.n {
		panic(fmt.Sprintf("transpose: column read with %d/%d rows written", b.written[shadow], b.n))
	}
	if col < 0 || col >= b.n || len(dst) != b.n {
		panic(fmt.Sprintf("transpose: bad column read %d", col))
	}
	side := b.sides[shadow]
	for row := 0; row < b.n; row++ {
		dst[row] = side[row*b.n+col]
	}
}

// swap toggles the sides once the active side holds a full block. The new
// active side must already be drained.
func (b *pingPong) swap() {
	if b.written[b.active] != b.n {
		panic(fmt.Sprintf("transpose: swap with %d/%d rows written", b.written[b.active], b.n))
	}
	b.active = 1 - b.active
	b.written[b.active] = 0
}

// reset clears both sides and returns to the initial hand-off position
func (b *pingPong) reset() {
	clear(b.sides[0])
	clear(b.sides[1])
	b.active = 0
	b.written[0] = 0
	b.written[1] = 0
}
