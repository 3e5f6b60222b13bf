package color

// Bit-depth scaling between 8-bit channels and narrower packed fields.
//
// Reductions truncate toward the target's representable set and never round,
// so results stay bit-compatible with buffers produced by existing encoders.
// Expansions replicate the high bits into the low bits, which makes every
// narrow value survive a widen-then-narrow round trip unchanged.

// Expand4 widens a 4-bit value to 8 bits (v * 17).
func Expand4(v uint8) uint8 { return (v & 0x0F) * 17 }

// Reduce4 narrows an 8-bit value to 4 bits (v / 17).
func Reduce4(v uint8) uint8 { return v / 17 }

// Expand5 widens a 5-bit value to 8 bits.
func Expand5(v uint8) uint8 {
	v &= 0x1F
	return v<<3 | v>>2
}

// Reduce5 narrows an 8-bit value to 5 bits.
func Reduce5(v uint8) uint8 { return v >> 3 }

// Expand6 widens a 6-bit value to 8 bits.
func Expand6(v uint8) uint8 {
	v &= 0x3F
	return v<<2 | v>>4
}

// Reduce6 narrows an 8-bit value to 6 bits.
func Reduce6(v uint8) uint8 { return v >> 2 }

// Expand3 widens a 3-bit value to 8 bits.
func Expand3(v uint8) uint8 {
	v &= 0x07
	return v<<5 | v<<2 | v>>1
}

// Reduce3 narrows an 8-bit value to 3 bits.
func Reduce3(v uint8) uint8 { return v >> 5 }

// Expand2 widens a 2-bit value to 8 bits (v * 85).
func Expand2(v uint8) uint8 { return (v & 0x03) * 85 }

// Reduce2 narrows an 8-bit value to 2 bits.
func Reduce2(v uint8) uint8 { return v >> 6 }

// Expand1 widens a 1-bit value to 8 bits.
func Expand1(v uint8) uint8 {
	if v&1 != 0 {
		return 255
	}
	return 0
}

// Reduce1 narrows an 8-bit value to a single bit (set for 128 and up).
func Reduce1(v uint8) uint8 { return v >> 7 }

// Expand16 widens an 8-bit value to 16 bits (v * 257).
func Expand16(v uint8) uint16 { return uint16(v) * 257 }
