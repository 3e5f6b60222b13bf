package pixfmt

import "github.com/gogpu/pixfmt/internal/color"

// YUV8 is a FormatYUV8 pixel in BT.601 studio swing.
type YUV8 struct{ Y, U, V uint8 }

// Format returns FormatYUV8.
func (YUV8) Format() Format { return FormatYUV8 }

// Channel returns channel i (Y, U, V) in native units, 0 when
// i is out of range.
func (c YUV8) Channel(i int) float32 {
	return channelAt(i, float32(c.Y), float32(c.U), float32(c.V))
}

// Accel returns the channels normalized to [0, 1] with alpha 0.
func (c YUV8) Accel() Accel {
	return Accel{color.Float8(c.Y), color.Float8(c.U), color.Float8(c.V), 0}
}

// Put writes the channel bytes to p in wire order.
func (c YUV8) Put(p []byte)      { p[0], p[1], p[2] = c.Y, c.U, c.V }
func (c YUV8) native8() [4]uint8 { return [4]uint8{c.Y, c.U, c.V, 255} }
func loadYUV8(p []byte) YUV8     { return YUV8{p[0], p[1], p[2]} }
func yuv8From8(n [4]uint8) YUV8  { return YUV8{n[0], n[1], n[2]} }
func yuv8FromAccel(a Accel) YUV8 { return yuv8From8(unorm8x4(a)) }

// YUVA8 is a FormatYUVA8 pixel.
type YUVA8 struct{ Y, U, V, A uint8 }

// Format returns FormatYUVA8.
func (YUVA8) Format() Format { return FormatYUVA8 }

// Channel returns channel i (Y, U, V, A) in native units, 0 when
// i is out of range.
func (c YUVA8) Channel(i int) float32 {
	return channelAt(i, float32(c.Y), float32(c.U), float32(c.V), float32(c.A))
}

// Accel returns the channels normalized to [0, 1].
func (c YUVA8) Accel() Accel {
	return Accel{color.Float8(c.Y), color.Float8(c.U), color.Float8(c.V), color.Float8(c.A)}
}

// Put writes the channel bytes to p in wire order.
func (c YUVA8) Put(p []byte)       { p[0], p[1], p[2], p[3] = c.Y, c.U, c.V, c.A }
func (c YUVA8) native8() [4]uint8  { return [4]uint8{c.Y, c.U, c.V, c.A} }
func loadYUVA8(p []byte) YUVA8     { return YUVA8{p[0], p[1], p[2], p[3]} }
func yuva8From8(n [4]uint8) YUVA8  { return YUVA8{n[0], n[1], n[2], n[3]} }
func yuva8FromAccel(a Accel) YUVA8 { return yuva8From8(unorm8x4(a)) }

// HSV8 is a FormatHSV8 pixel. All components are in [0, 255]; a full hue
// turn is 256 units.
type HSV8 struct{ H, S, V uint8 }

// Format returns FormatHSV8.
func (HSV8) Format() Format { return FormatHSV8 }

// Channel returns channel i (H, S, V) in native units, 0 when
// i is out of range.
func (c HSV8) Channel(i int) float32 {
	return channelAt(i, float32(c.H), float32(c.S), float32(c.V))
}

// Accel returns the channels normalized to [0, 1] with alpha 0.
func (c HSV8) Accel() Accel {
	return Accel{color.Float8(c.H), color.Float8(c.S), color.Float8(c.V), 0}
}

// Put writes the channel bytes to p in wire order.
func (c HSV8) Put(p []byte)      { p[0], p[1], p[2] = c.H, c.S, c.V }
func (c HSV8) native8() [4]uint8 { return [4]uint8{c.H, c.S, c.V, 255} }
func loadHSV8(p []byte) HSV8     { return HSV8{p[0], p[1], p[2]} }
func hsv8From8(n [4]uint8) HSV8  { return HSV8{n[0], n[1], n[2]} }
func hsv8FromAccel(a Accel) HSV8 { return hsv8From8(unorm8x4(a)) }

// HSVA8 is a FormatHSVA8 pixel.
type HSVA8 struct{ H, S, V, A uint8 }

// Format returns FormatHSVA8.
func (HSVA8) Format() Format { return FormatHSVA8 }

// Channel returns channel i (H, S, V, A) in native units, 0 when
// i is out of range.
func (c HSVA8) Channel(i int) float32 {
	return channelAt(i, float32(c.H), float32(c.S), float32(c.V), float32(c.A))
}

// Accel returns the channels normalized to [0, 1].
func (c HSVA8) Accel() Accel {
	return Accel{color.Float8(c.H), color.Float8(c.S), color.Float8(c.V), color.Float8(c.A)}
}

// Put writes the channel bytes to p in wire order.
func (c HSVA8) Put(p []byte)       { p[0], p[1], p[2], p[3] = c.H, c.S, c.V, c.A }
func (c HSVA8) native8() [4]uint8  { return [4]uint8{c.H, c.S, c.V, c.A} }
func loadHSVA8(p []byte) HSVA8     { return HSVA8{p[0], p[1], p[2], p[3]} }
func hsva8From8(n [4]uint8) HSVA8  { return HSVA8{n[0], n[1], n[2], n[3]} }
func hsva8FromAccel(a Accel) HSVA8 { return hsva8From8(unorm8x4(a)) }
