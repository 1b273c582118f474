package transform

// Round removes fractBits fractional bits from acc using the given mode.
// RoundNearest rounds half away from zero, matching the software reference
// model; RoundTruncate is a plain arithmetic shift.
func Round(acc int64, fractBits uint, mode RoundingMode) int64 {
	if fractBits == 0 {
		return acc
	}
	if mode == RoundTruncate {
		return acc >> fractBits
	}
	half := int64(1) << (fractBits - 1)
	if acc < 0 {
		return -((-acc + half) >> fractBits)
	}
	return (acc + half) >> fractBits
}

// Clamp confines v to the signed range [-2^bits, 2^bits - 1] of a stage
// output. The saturate policy clips; the wrap policy reduces modulo the
// range span, like a register that simply drops the high bits.
func Clamp(v int64, bits uint, policy OverflowPolicy) int32 {
	lo := -(int64(1) << bits)
	hi := (int64(1) << bits) - 1
	if v >= lo && v <= hi {
		return int32(v)
	}

	if policy == OverflowWrap {
		span := int64(1) << (bits + 1)
		w := (v - lo) % span
		if w < 0 {
			w += span
		}
		return int32(w + lo)
	}

	if v < lo {
		return int32(lo)
	}
	return int32(hi)
}
