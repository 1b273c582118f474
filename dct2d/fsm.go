package dct2d

// State identifies the control FSM state of the engine. The engine advances
// exactly one state decision per clock edge; no data-path stage runs without
// an action granted by the transition function.
type State int

const (
	// StateIdle waits for the first valid input sample
	StateIdle State = iota

	// StateLoadRow accumulates one row's N samples
	StateLoadRow

	// StateRowTransform runs the row pass and writes the transpose buffer
	StateRowTransform

	// StateSwap toggles the ping-pong sides after the block's last row
	StateSwap

	// StateColumnTransform runs the column pass on the shadow side, while
	// the active side may already be accepting the next block's rows
	StateColumnTransform

	// StateEmit asserts output-valid with one complete coefficient block
	StateEmit
)

// String returns a human-readable state name
func (s State) String() string {
	switch s {
	case StateIdle:
		return "IDLE"
	case StateLoadRow:
		return "LOAD_ROW"
	case StateRowTransform:
		return "ROW_TRANSFORM"
	case StateSwap:
		return "SWAP"
	case StateColumnTransform:
		return "COLUMN_TRANSFORM"
	case StateEmit:
		return "EMIT"
	default:
		return "UNKNOWN"
	}
}

// Signals are the per-edge inputs of the transition function, derived from
// the input handshake and the engine's row/column counters.
type Signals struct {
	// InValid is the input-valid flag of this cycle
	InValid bool

	// RowTick is true when this cycle's sample completes a row
	RowTick bool

	// BlockTick is true when this cycle's sample completes the block
	BlockTick bool

	// RowPartial is true when the row accumulator holds a partial row
	RowPartial bool

	// ColPending is true while a swapped block awaits or is in the column pass
	ColPending bool

	// ColLast is true when all N columns of the pending block are transformed
	// and the emit cycle is due
	ColLast bool
}

// Actions are the data-path operations the engine must perform on this edge
type Actions struct {
	// Accept latches the input sample into the row accumulator
	Accept bool

	// RowPass runs the row stage and writes its output row into the buffer
	RowPass bool

	// Swap toggles the ping-pong sides and starts the column pass
	Swap bool

	// ColPass runs the column stage on the next column of the shadow side
	ColPass bool

	// Emit asserts output-valid with the completed coefficient block
	Emit bool
}

// transition is the pure FSM step: current state plus input signals yield
// the next state and the data-path actions of this edge. The row pass fires
// on the same edge its Nth sample is accepted, so back-to-back rows stream
// with no inter-row stall; the reported state follows the stage that owns
// the transpose hand-off when the two sides are active simultaneously.
func transition(s State, sig Signals) (State, Actions) {
	var act Actions

	if sig.InValid {
		act.Accept = true
		act.RowPass = sig.RowTick
		act.Swap = sig.BlockTick
	}
	if sig.ColPending {
		if sig.ColLast {
			act.Emit = true
		} else {
			act.ColPass = true
		}
	}

	switch {
	case act.Swap:
		return StateSwap, act
	case act.Emit:
		return StateEmit, act
	case act.ColPass:
		return StateColumnTransform, act
	case act.RowPass:
		return StateRowTransform, act
	case act.Accept, sig.RowPartial:
		return StateLoadRow, act
	default:
		return StateIdle, act
	}
}
