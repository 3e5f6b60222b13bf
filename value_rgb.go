package pixfmt

import (
	"encoding/binary"
	"math"

	"github.com/gogpu/pixfmt/internal/color"
)

// RGBA8 is a FormatRGBA8 pixel.
type RGBA8 struct{ R, G, B, A uint8 }

// Format returns FormatRGBA8.
func (RGBA8) Format() Format { return FormatRGBA8 }

// Channel returns channel i (R, G, B, A) in native units, 0 when
// i is out of range.
func (c RGBA8) Channel(i int) float32 {
	return channelAt(i, float32(c.R), float32(c.G), float32(c.B), float32(c.A))
}

// Accel returns the channels normalized to [0, 1].
func (c RGBA8) Accel() Accel {
	return Accel{color.Float8(c.R), color.Float8(c.G), color.Float8(c.B), color.Float8(c.A)}
}

// Put writes the channel bytes to p in wire order.
func (c RGBA8) Put(p []byte)       { p[0], p[1], p[2], p[3] = c.R, c.G, c.B, c.A }
func (c RGBA8) native8() [4]uint8  { return [4]uint8{c.R, c.G, c.B, c.A} }
func loadRGBA8(p []byte) RGBA8     { return RGBA8{p[0], p[1], p[2], p[3]} }
func rgba8From8(n [4]uint8) RGBA8  { return RGBA8{n[0], n[1], n[2], n[3]} }
func rgba8FromAccel(a Accel) RGBA8 { return rgba8From8(unorm8x4(a)) }

// BGRA8 is a FormatBGRA8 pixel.
type BGRA8 struct{ B, G, R, A uint8 }

// Format returns FormatBGRA8.
func (BGRA8) Format() Format { return FormatBGRA8 }

// Channel returns channel i in logical order (R, G, B, A),
// independent of the byte order.
func (c BGRA8) Channel(i int) float32 {
	return channelAt(i, float32(c.R), float32(c.G), float32(c.B), float32(c.A))
}

// Accel returns the channels normalized to [0, 1].
func (c BGRA8) Accel() Accel {
	return Accel{color.Float8(c.R), color.Float8(c.G), color.Float8(c.B), color.Float8(c.A)}
}

// Put writes the channel bytes to p in wire order.
func (c BGRA8) Put(p []byte)       { p[0], p[1], p[2], p[3] = c.B, c.G, c.R, c.A }
func (c BGRA8) native8() [4]uint8  { return [4]uint8{c.R, c.G, c.B, c.A} }
func loadBGRA8(p []byte) BGRA8     { return BGRA8{p[0], p[1], p[2], p[3]} }
func bgra8From8(n [4]uint8) BGRA8  { return BGRA8{B: n[2], G: n[1], R: n[0], A: n[3]} }
func bgra8FromAccel(a Accel) BGRA8 { return bgra8From8(unorm8x4(a)) }

// RGB8 is a FormatRGB8 pixel.
type RGB8 struct{ R, G, B uint8 }

// Format returns FormatRGB8.
func (RGB8) Format() Format { return FormatRGB8 }

// Channel returns channel i (R, G, B) in native units, 0 when
// i is out of range.
func (c RGB8) Channel(i int) float32 {
	return channelAt(i, float32(c.R), float32(c.G), float32(c.B))
}

// Accel returns the channels normalized to [0, 1] with alpha 0.
func (c RGB8) Accel() Accel {
	return Accel{color.Float8(c.R), color.Float8(c.G), color.Float8(c.B), 0}
}

// Put writes the channel bytes to p in wire order.
func (c RGB8) Put(p []byte)      { p[0], p[1], p[2] = c.R, c.G, c.B }
func (c RGB8) native8() [4]uint8 { return [4]uint8{c.R, c.G, c.B, 255} }
func loadRGB8(p []byte) RGB8     { return RGB8{p[0], p[1], p[2]} }
func rgb8From8(n [4]uint8) RGB8  { return RGB8{n[0], n[1], n[2]} }
func rgb8FromAccel(a Accel) RGB8 { return rgb8From8(unorm8x4(a)) }

// BGR8 is a FormatBGR8 pixel.
type BGR8 struct{ B, G, R uint8 }

// Format returns FormatBGR8.
func (BGR8) Format() Format { return FormatBGR8 }

// Channel returns channel i in logical order (R, G, B),
// independent of the byte order.
func (c BGR8) Channel(i int) float32 {
	return channelAt(i, float32(c.R), float32(c.G), float32(c.B))
}

// Accel returns the channels normalized to [0, 1] with alpha 0.
func (c BGR8) Accel() Accel {
	return Accel{color.Float8(c.R), color.Float8(c.G), color.Float8(c.B), 0}
}

// Put writes the channel bytes to p in wire order.
func (c BGR8) Put(p []byte)      { p[0], p[1], p[2] = c.B, c.G, c.R }
func (c BGR8) native8() [4]uint8 { return [4]uint8{c.R, c.G, c.B, 255} }
func loadBGR8(p []byte) BGR8     { return BGR8{p[0], p[1], p[2]} }
func bgr8From8(n [4]uint8) BGR8  { return BGR8{B: n[2], G: n[1], R: n[0]} }
func bgr8FromAccel(a Accel) BGR8 { return bgr8From8(unorm8x4(a)) }

// RGBA4 is a FormatRGBA4 pixel. Fields hold 0..15.
type RGBA4 struct{ R, G, B, A uint8 }

// Format returns FormatRGBA4.
func (RGBA4) Format() Format { return FormatRGBA4 }

// Channel returns channel i (R, G, B, A) in native units, 0 when
// i is out of range.
func (c RGBA4) Channel(i int) float32 {
	return channelAt(i, float32(c.R), float32(c.G), float32(c.B), float32(c.A))
}

// Accel returns the channels normalized to [0, 1].
func (c RGBA4) Accel() Accel {
	return Accel{unorm4f(c.R), unorm4f(c.G), unorm4f(c.B), unorm4f(c.A)}
}

// Put writes the packed little-endian uint16 to p[0:2].
func (c RGBA4) Put(p []byte) {
	binary.LittleEndian.PutUint16(p, uint16(c.R&0xF)<<12|uint16(c.G&0xF)<<8|uint16(c.B&0xF)<<4|uint16(c.A&0xF))
}
func (c RGBA4) native8() [4]uint8 {
	return [4]uint8{color.Expand4(c.R), color.Expand4(c.G), color.Expand4(c.B), color.Expand4(c.A)}
}
func loadRGBA4(p []byte) RGBA4 {
	v := binary.LittleEndian.Uint16(p)
	return RGBA4{uint8(v >> 12 & 0xF), uint8(v >> 8 & 0xF), uint8(v >> 4 & 0xF), uint8(v & 0xF)}
}
func rgba4From8(n [4]uint8) RGBA4 {
	return RGBA4{color.Reduce4(n[0]), color.Reduce4(n[1]), color.Reduce4(n[2]), color.Reduce4(n[3])}
}
func rgba4FromAccel(a Accel) RGBA4 {
	return RGBA4{
		reduceF(a[0], color.Reduce4),
		reduceF(a[1], color.Reduce4),
		reduceF(a[2], color.Reduce4),
		reduceF(a[3], color.Reduce4),
	}
}

// BGRA4 is a FormatBGRA4 pixel. Fields hold 0..15.
type BGRA4 struct{ B, G, R, A uint8 }

// Format returns FormatBGRA4.
func (BGRA4) Format() Format { return FormatBGRA4 }

// Channel returns channel i in logical order (R, G, B, A),
// independent of the byte order.
func (c BGRA4) Channel(i int) float32 {
	return channelAt(i, float32(c.R), float32(c.G), float32(c.B), float32(c.A))
}

// Accel returns the channels normalized to [0, 1].
func (c BGRA4) Accel() Accel {
	return Accel{unorm4f(c.R), unorm4f(c.G), unorm4f(c.B), unorm4f(c.A)}
}

// Put writes the packed little-endian uint16 to p[0:2].
func (c BGRA4) Put(p []byte) {
	binary.LittleEndian.PutUint16(p, uint16(c.B&0xF)<<12|uint16(c.G&0xF)<<8|uint16(c.R&0xF)<<4|uint16(c.A&0xF))
}
func (c BGRA4) native8() [4]uint8 {
	return [4]uint8{color.Expand4(c.R), color.Expand4(c.G), color.Expand4(c.B), color.Expand4(c.A)}
}
func loadBGRA4(p []byte) BGRA4 {
	v := binary.LittleEndian.Uint16(p)
	return BGRA4{B: uint8(v >> 12 & 0xF), G: uint8(v >> 8 & 0xF), R: uint8(v >> 4 & 0xF), A: uint8(v & 0xF)}
}
func bgra4From8(n [4]uint8) BGRA4 {
	return BGRA4{B: color.Reduce4(n[2]), G: color.Reduce4(n[1]), R: color.Reduce4(n[0]), A: color.Reduce4(n[3])}
}
func bgra4FromAccel(a Accel) BGRA4 {
	return BGRA4{
		B: reduceF(a[2], color.Reduce4),
		G: reduceF(a[1], color.Reduce4),
		R: reduceF(a[0], color.Reduce4),
		A: reduceF(a[3], color.Reduce4),
	}
}

// RGB565 is a FormatRGB565 pixel. R and B hold 0..31, G holds 0..63.
type RGB565 struct{ R, G, B uint8 }

// Format returns FormatRGB565.
func (RGB565) Format() Format { return FormatRGB565 }

// Channel returns channel i (R, G, B) in native units, 0 when
// i is out of range.
func (c RGB565) Channel(i int) float32 {
	return channelAt(i, float32(c.R), float32(c.G), float32(c.B))
}

// Accel returns the channels normalized to [0, 1] with alpha 0.
func (c RGB565) Accel() Accel {
	return Accel{float32(c.R) / 31, float32(c.G) / 63, float32(c.B) / 31, 0}
}

// Put writes the packed little-endian uint16 to p[0:2].
func (c RGB565) Put(p []byte) {
	binary.LittleEndian.PutUint16(p, uint16(c.R&0x1F)<<11|uint16(c.G&0x3F)<<5|uint16(c.B&0x1F))
}
func (c RGB565) native8() [4]uint8 {
	return [4]uint8{color.Expand5(c.R), color.Expand6(c.G), color.Expand5(c.B), 255}
}
func loadRGB565(p []byte) RGB565 {
	v := binary.LittleEndian.Uint16(p)
	return RGB565{uint8(v >> 11 & 0x1F), uint8(v >> 5 & 0x3F), uint8(v & 0x1F)}
}
func rgb565From8(n [4]uint8) RGB565 {
	return RGB565{color.Reduce5(n[0]), color.Reduce6(n[1]), color.Reduce5(n[2])}
}
func rgb565FromAccel(a Accel) RGB565 {
	return RGB565{reduceF(a[0], color.Reduce5), reduceF(a[1], color.Reduce6), reduceF(a[2], color.Reduce5)}
}

// BGR565 is a FormatBGR565 pixel. R and B hold 0..31, G holds 0..63.
type BGR565 struct{ B, G, R uint8 }

// Format returns FormatBGR565.
func (BGR565) Format() Format { return FormatBGR565 }

// Channel returns channel i in logical order (R, G, B),
// independent of the byte order.
func (c BGR565) Channel(i int) float32 {
	return channelAt(i, float32(c.R), float32(c.G), float32(c.B))
}

// Accel returns the channels normalized to [0, 1] with alpha 0.
func (c BGR565) Accel() Accel {
	return Accel{float32(c.R) / 31, float32(c.G) / 63, float32(c.B) / 31, 0}
}

// Put writes the packed little-endian uint16 to p[0:2].
func (c BGR565) Put(p []byte) {
	binary.LittleEndian.PutUint16(p, uint16(c.B&0x1F)<<11|uint16(c.G&0x3F)<<5|uint16(c.R&0x1F))
}
func (c BGR565) native8() [4]uint8 {
	return [4]uint8{color.Expand5(c.R), color.Expand6(c.G), color.Expand5(c.B), 255}
}
func loadBGR565(p []byte) BGR565 {
	v := binary.LittleEndian.Uint16(p)
	return BGR565{B: uint8(v >> 11 & 0x1F), G: uint8(v >> 5 & 0x3F), R: uint8(v & 0x1F)}
}
func bgr565From8(n [4]uint8) BGR565 {
	return BGR565{B: color.Reduce5(n[2]), G: color.Reduce6(n[1]), R: color.Reduce5(n[0])}
}
func bgr565FromAccel(a Accel) BGR565 {
	return BGR565{B: reduceF(a[2], color.Reduce5), G: reduceF(a[1], color.Reduce6), R: reduceF(a[0], color.Reduce5)}
}

// RGBA5551 is a FormatRGBA5551 pixel. R, G, B hold 0..31 and A holds 0 or 1.
type RGBA5551 struct{ R, G, B, A uint8 }

// Format returns FormatRGBA5551.
func (RGBA5551) Format() Format { return FormatRGBA5551 }

// Channel returns channel i (R, G, B, A) in native units, 0 when
// i is out of range.
func (c RGBA5551) Channel(i int) float32 {
	return channelAt(i, float32(c.R), float32(c.G), float32(c.B), float32(c.A))
}

// Accel returns the channels normalized to [0, 1].
func (c RGBA5551) Accel() Accel {
	return Accel{float32(c.R) / 31, float32(c.G) / 31, float32(c.B) / 31, float32(c.A & 1)}
}

// Put writes the packed little-endian uint16 to p[0:2].
func (c RGBA5551) Put(p []byte) {
	binary.LittleEndian.PutUint16(p, uint16(c.R&0x1F)<<11|uint16(c.G&0x1F)<<6|uint16(c.B&0x1F)<<1|uint16(c.A&1))
}
func (c RGBA5551) native8() [4]uint8 {
	return [4]uint8{color.Expand5(c.R), color.Expand5(c.G), color.Expand5(c.B), color.Expand1(c.A)}
}
func loadRGBA5551(p []byte) RGBA5551 {
	v := binary.LittleEndian.Uint16(p)
	return RGBA5551{uint8(v >> 11 & 0x1F), uint8(v >> 6 & 0x1F), uint8(v >> 1 & 0x1F), uint8(v & 1)}
}
func rgba5551From8(n [4]uint8) RGBA5551 {
	return RGBA5551{color.Reduce5(n[0]), color.Reduce5(n[1]), color.Reduce5(n[2]), color.Reduce1(n[3])}
}
func rgba5551FromAccel(a Accel) RGBA5551 {
	return RGBA5551{
		reduceF(a[0], color.Reduce5),
		reduceF(a[1], color.Reduce5),
		reduceF(a[2], color.Reduce5),
		reduceF(a[3], color.Reduce1),
	}
}

// RGB332 is a FormatRGB332 pixel. R and G hold 0..7, B holds 0..3.
type RGB332 struct{ R, G, B uint8 }

// Format returns FormatRGB332.
func (RGB332) Format() Format { return FormatRGB332 }

// Channel returns channel i (R, G, B) in native units, 0 when
// i is out of range.
func (c RGB332) Channel(i int) float32 {
	return channelAt(i, float32(c.R), float32(c.G), float32(c.B))
}

// Accel returns the channels normalized to [0, 1] with alpha 0.
func (c RGB332) Accel() Accel {
	return Accel{float32(c.R) / 7, float32(c.G) / 7, float32(c.B) / 3, 0}
}

// Put writes the packed byte to p[0].
func (c RGB332) Put(p []byte) { p[0] = (c.R&7)<<5 | (c.G&7)<<2 | c.B&3 }
func (c RGB332) native8() [4]uint8 {
	return [4]uint8{color.Expand3(c.R), color.Expand3(c.G), color.Expand2(c.B), 255}
}
func loadRGB332(p []byte) RGB332 { return RGB332{p[0] >> 5, p[0] >> 2 & 7, p[0] & 3} }
func rgb332From8(n [4]uint8) RGB332 {
	return RGB332{color.Reduce3(n[0]), color.Reduce3(n[1]), color.Reduce2(n[2])}
}
func rgb332FromAccel(a Accel) RGB332 {
	return RGB332{reduceF(a[0], color.Reduce3), reduceF(a[1], color.Reduce3), reduceF(a[2], color.Reduce2)}
}

// RGBA16 is a FormatRGBA16 pixel.
type RGBA16 struct{ R, G, B, A uint16 }

// Format returns FormatRGBA16.
func (RGBA16) Format() Format { return FormatRGBA16 }

// Channel returns channel i (R, G, B, A) in native units, 0 when
// i is out of range.
func (c RGBA16) Channel(i int) float32 {
	return channelAt(i, float32(c.R), float32(c.G), float32(c.B), float32(c.A))
}

// Accel returns the channels normalized to [0, 1].
func (c RGBA16) Accel() Accel {
	return Accel{color.Float16(c.R), color.Float16(c.G), color.Float16(c.B), color.Float16(c.A)}
}

// Put writes the little-endian channels to p.
func (c RGBA16) Put(p []byte) {
	binary.LittleEndian.PutUint16(p[0:], c.R)
	binary.LittleEndian.PutUint16(p[2:], c.G)
	binary.LittleEndian.PutUint16(p[4:], c.B)
	binary.LittleEndian.PutUint16(p[6:], c.A)
}
func (c RGBA16) native8() [4]uint8 {
	return [4]uint8{uint8(c.R >> 8), uint8(c.G >> 8), uint8(c.B >> 8), uint8(c.A >> 8)}
}
func loadRGBA16(p []byte) RGBA16 {
	return RGBA16{
		binary.LittleEndian.Uint16(p[0:]),
		binary.LittleEndian.Uint16(p[2:]),
		binary.LittleEndian.Uint16(p[4:]),
		binary.LittleEndian.Uint16(p[6:]),
	}
}
func rgba16From8(n [4]uint8) RGBA16 {
	return RGBA16{color.Expand16(n[0]), color.Expand16(n[1]), color.Expand16(n[2]), color.Expand16(n[3])}
}
func rgba16FromAccel(a Accel) RGBA16 {
	return RGBA16{color.Unorm16(a[0]), color.Unorm16(a[1]), color.Unorm16(a[2]), color.Unorm16(a[3])}
}

// RGB32F is a FormatRGB32F pixel.
type RGB32F struct{ R, G, B float32 }

// Format returns FormatRGB32F.
func (RGB32F) Format() Format { return FormatRGB32F }

// Channel returns channel i (R, G, B) in native units, 0 when
// i is out of range.
func (c RGB32F) Channel(i int) float32 { return channelAt(i, c.R, c.G, c.B) }

// Accel returns the channels unchanged; floats are already
// normalized.
func (c RGB32F) Accel() Accel { return Accel{c.R, c.G, c.B, 0} }

// Put writes the little-endian channels to p.
func (c RGB32F) Put(p []byte) {
	putFloat32(p[0:], c.R)
	putFloat32(p[4:], c.G)
	putFloat32(p[8:], c.B)
}
func (c RGB32F) native8() [4]uint8 {
	return [4]uint8{color.Unorm8(c.R), color.Unorm8(c.G), color.Unorm8(c.B), 255}
}
func loadRGB32F(p []byte) RGB32F {
	return RGB32F{getFloat32(p[0:]), getFloat32(p[4:]), getFloat32(p[8:])}
}
func rgb32FFrom8(n [4]uint8) RGB32F {
	return RGB32F{color.Float8(n[0]), color.Float8(n[1]), color.Float8(n[2])}
}
func rgb32FFromAccel(a Accel) RGB32F { return RGB32F{a[0], a[1], a[2]} }

// RGBA32F is a FormatRGBA32F pixel.
type RGBA32F struct{ R, G, B, A float32 }

// Format returns FormatRGBA32F.
func (RGBA32F) Format() Format { return FormatRGBA32F }

// Channel returns channel i (R, G, B, A) in native units, 0 when
// i is out of range.
func (c RGBA32F) Channel(i int) float32 { return channelAt(i, c.R, c.G, c.B, c.A) }

// Accel returns the channels unchanged; floats are already
// normalized.
func (c RGBA32F) Accel() Accel { return Accel{c.R, c.G, c.B, c.A} }

// Put writes the little-endian channels to p.
func (c RGBA32F) Put(p []byte) {
	putFloat32(p[0:], c.R)
	putFloat32(p[4:], c.G)
	putFloat32(p[8:], c.B)
	putFloat32(p[12:], c.A)
}
func (c RGBA32F) native8() [4]uint8 {
	return [4]uint8{color.Unorm8(c.R), color.Unorm8(c.G), color.Unorm8(c.B), color.Unorm8(c.A)}
}
func loadRGBA32F(p []byte) RGBA32F {
	return RGBA32F{getFloat32(p[0:]), getFloat32(p[4:]), getFloat32(p[8:]), getFloat32(p[12:])}
}
func rgba32FFrom8(n [4]uint8) RGBA32F {
	return RGBA32F{color.Float8(n[0]), color.Float8(n[1]), color.Float8(n[2]), color.Float8(n[3])}
}
func rgba32FFromAccel(a Accel) RGBA32F { return RGBA32F{a[0], a[1], a[2], a[3]} }

func getFloat32(p []byte) float32 {
	return math.Float32frombits(binary.LittleEndian.Uint32(p))
}

func putFloat32(p []byte, v float32) {
	binary.LittleEndian.PutUint32(p, math.Float32bits(v))
}

func unorm8x4(a Accel) [4]uint8 {
	return [4]uint8{color.Unorm8(a[0]), color.Unorm8(a[1]), color.Unorm8(a[2]), color.Unorm8(a[3])}
}

func unorm4f(v uint8) float32 {
	return float32(v&0xF) / 15
}

// reduceF truncates a normalized channel to 8 bits and then to a narrower
// field, so float and 8-bit sources reduce to the same value.
func reduceF(v float32, reduce func(uint8) uint8) uint8 {
	return reduce(color.Unorm8(v))
}
