package math2d

// FixedBits is the width of the fractional field of the fixed-point format
// used for scaled and affine stepping.
const FixedBits = 16

// FixedOne is 1.0 in fixed point.
const FixedOne = 1 << FixedBits

// IntToFixed converts an integer to 16.16 fixed point.
func IntToFixed(n int) int {
	return n << FixedBits
}

// FixedToInt truncates a 16.16 value toward negative infinity.
func FixedToInt(f int) int {
	return f >> FixedBits
}

// FloatToFixed converts a float to 16.16 fixed point.
func FloatToFixed(f float32) int {
	return int(f * FixedOne)
}

// FixedToFloat converts a 16.16 value back to float.
func FixedToFloat(f int) float32 {
	return float32(f) / FixedOne
}
