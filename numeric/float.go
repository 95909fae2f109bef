package numeric

import "math"

// Float32 wraps a float32 to give it a total order and a stable hash,
// agreeing with the IEEE 754-2008 totalOrder predicate: NaN compares equal to
// itself, -0 sorts before +0, and all finite values order the way you'd
// expect. Equality on Float32 agrees with the derived order (invariant: if
// a.Less(b) is false and b.Less(a) is false, a.Equal(b) is true).
type Float32 float32

// orderKey maps the bit pattern of f to a uint32 whose natural order matches
// totalOrder: negative numbers get their bits flipped (so larger magnitude
// negatives sort smaller), positive numbers get the sign bit set.
func orderKey(f float32) uint32 {
	bits := math.Float32bits(f)
	if bits&0x8000_0000 != 0 {
		return ^bits
	}
	return bits | 0x8000_0000
}

// Less reports whether a orders strictly before b under totalOrder.
func (a Float32) Less(b Float32) bool {
	return orderKey(float32(a)) < orderKey(float32(b))
}

// Equal reports whether a and b have the same totalOrder position. Two NaNs
// with identical bit patterns (including ±NaN payload bits) are equal; Go's
// float32 NaN != NaN for the builtin operator, so this wrapper exists
// precisely to give NaN a reflexive, hashable identity.
func (a Float32) Equal(b Float32) bool {
	return orderKey(float32(a)) == orderKey(float32(b))
}

// Hash returns a value consistent with Equal: equal wrappers hash equal.
func (a Float32) Hash() uint32 {
	return orderKey(float32(a))
}

// Compare returns -1, 0, or 1 as a orders before, equal to, or after b.
func (a Float32) Compare(b Float32) int {
	ka, kb := orderKey(float32(a)), orderKey(float32(b))
	switch {
	case ka < kb:
		return -1
	case ka > kb:
		return 1
	default:
		return 0
	}
}

// Cost is a path or tour cost accumulated from Weight values.
type Cost float64

// Weight is a single edge weight / distance value.
type Weight float64

// Less orders Weight values directly via float64 comparison; Weight is never
// expected to carry NaN (distances are validated at construction), so the
// totalOrder machinery of Float32 is unnecessary here.
func (w Weight) Less(other Weight) bool { return w < other }

// roundScale controls cost stabilization precision (1e-9), keeping summed
// costs stable across platforms/optimization levels without affecting
// algorithmic correctness.
const roundScale = 1e9

// Stabilize rounds a Cost to 1e-9 absolute precision.
func (c Cost) Stabilize() Cost {
	return Cost(math.Round(float64(c)*roundScale) / roundScale)
}
