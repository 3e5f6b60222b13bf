// Package color provides the scalar color model math used by pixfmt.
//
// It covers BT.601 fixed-point RGB ↔ YUV, 8-bit RGB ↔ HSV, luma derivation
// and the bit-depth scaling rules shared by every packed pixel layout.
//
// All functions are pure and branch-light; they are called once per pixel in
// the conversion loops and are safe for concurrent use.
package color

// Clamp8 clamps v to [0, 255].
func Clamp8(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

// Saturate clamps a float32 to [0, 1]. NaN maps to 0.
func Saturate(v float32) float32 {
	if !(v > 0) {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Unorm8 maps a float32 in [0,1] to uint8 [0,255], truncating.
// Values outside [0,1] are saturated first.
func Unorm8(v float32) uint8 {
	return uint8(unorm(v, 255))
}

// Unorm16 maps a float32 in [0,1] to uint16 [0,65535], truncating.
func Unorm16(v float32) uint16 {
	return uint16(unorm(v, 65535))
}

// Unorm24 maps a float32 in [0,1] to a 24-bit unsigned integer, truncating.
// float32 carries only half a unit of precision at 24 bits, so values that
// did not come from Float24 may land one unit high.
func Unorm24(v float32) uint32 {
	return uint32(unorm(v, 0xFFFFFF))
}

// unorm scales v to [0, top] before truncation. The guard covers the float32
// error of Float8, Float16 and Float24, so their results map back exactly.
func unorm(v float32, top float64) float64 {
	guard := min(top/(1<<23), 0.5)
	return float64(Saturate(v))*top + guard
}

// Float8 maps uint8 [0,255] to float32 [0,1].
func Float8(v uint8) float32 {
	return float32(v) / 255.0
}

// Float16 maps uint16 [0,65535] to float32 [0,1].
func Float16(v uint16) float32 {
	return float32(v) / 65535.0
}

// Float24 maps a 24-bit unsigned integer to float32 [0,1].
func Float24(v uint32) float32 {
	return float32(float64(v&0xFFFFFF) / 0xFFFFFF)
}
