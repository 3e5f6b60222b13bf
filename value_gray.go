package pixfmt

import (
	"encoding/binary"

	"github.com/gogpu/pixfmt/internal/color"
)

// Gray8 is a FormatGray8 pixel.
type Gray8 struct{ Y uint8 }

// Format returns FormatGray8.
func (Gray8) Format() Format { return FormatGray8 }

// Channel returns the value for i == 0 and 0 otherwise.
func (c Gray8) Channel(i int) float32 { return channelAt(i, float32(c.Y)) }

// Accel returns the channels normalized to [0, 1] with alpha 0.
func (c Gray8) Accel() Accel { return Accel{color.Float8(c.Y), 0, 0, 0} }

// Put writes the channel bytes to p in wire order.
func (c Gray8) Put(p []byte)       { p[0] = c.Y }
func (c Gray8) native8() [4]uint8  { return [4]uint8{c.Y, 0, 0, 255} }
func loadGray8(p []byte) Gray8     { return Gray8{p[0]} }
func gray8From8(n [4]uint8) Gray8  { return Gray8{n[0]} }
func gray8FromAccel(a Accel) Gray8 { return Gray8{color.Unorm8(a[0])} }

// Gray4 is a FormatGray4 pixel. Y holds 0..15.
//
// Put writes the high nibble of p[0], which is where the first pixel of a
// Gray4 row lives; the low nibble is left untouched.
type Gray4 struct{ Y uint8 }

// Format returns FormatGray4.
func (Gray4) Format() Format { return FormatGray4 }

// Channel returns the value for i == 0 and 0 otherwise.
func (c Gray4) Channel(i int) float32 { return channelAt(i, float32(c.Y&0xF)) }

// Accel returns the channels normalized to [0, 1] with alpha 0.
func (c Gray4) Accel() Accel { return Accel{unorm4f(c.Y), 0, 0, 0} }

// Put writes the high nibble of p[0] and keeps the low one.
func (c Gray4) Put(p []byte)      { p[0] = p[0]&0x0F | (c.Y&0xF)<<4 }
func (c Gray4) native8() [4]uint8 { return [4]uint8{color.Expand4(c.Y), 0, 0, 255} }
func loadGray4(p []byte) Gray4    { return Gray4{p[0] >> 4} }

// Gray16 is a FormatGray16 pixel.
type Gray16 struct{ Y uint16 }

// Format returns FormatGray16.
func (Gray16) Format() Format { return FormatGray16 }

// Channel returns the value for i == 0 and 0 otherwise.
func (c Gray16) Channel(i int) float32 { return channelAt(i, float32(c.Y)) }

// Accel returns the channels normalized to [0, 1] with alpha 0.
func (c Gray16) Accel() Accel { return Accel{color.Float16(c.Y), 0, 0, 0} }

// Put writes the little-endian channels to p.
func (c Gray16) Put(p []byte)        { binary.LittleEndian.PutUint16(p, c.Y) }
func (c Gray16) native8() [4]uint8   { return [4]uint8{uint8(c.Y >> 8), 0, 0, 255} }
func loadGray16(p []byte) Gray16     { return Gray16{binary.LittleEndian.Uint16(p)} }
func gray16From8(n [4]uint8) Gray16  { return Gray16{color.Expand16(n[0])} }
func gray16FromAccel(a Accel) Gray16 { return Gray16{color.Unorm16(a[0])} }

// GrayA8 is a FormatGrayA8 pixel. Channel(1) is alpha; in Accel alpha sits
// in lane 3 like every other format.
type GrayA8 struct{ Y, A uint8 }

// Format returns FormatGrayA8.
func (GrayA8) Format() Format { return FormatGrayA8 }

// Channel returns channel i (Y, A) in native units, 0 when
// i is out of range.
func (c GrayA8) Channel(i int) float32 {
	return channelAt(i, float32(c.Y), float32(c.A))
}

// Accel returns the channels normalized to [0, 1].
func (c GrayA8) Accel() Accel { return Accel{color.Float8(c.Y), 0, 0, color.Float8(c.A)} }

// Put writes the channel bytes to p in wire order.
func (c GrayA8) Put(p []byte)        { p[0], p[1] = c.Y, c.A }
func (c GrayA8) native8() [4]uint8   { return [4]uint8{c.Y, 0, 0, c.A} }
func loadGrayA8(p []byte) GrayA8     { return GrayA8{p[0], p[1]} }
func grayA8From8(n [4]uint8) GrayA8  { return GrayA8{n[0], n[3]} }
func grayA8FromAccel(a Accel) GrayA8 { return GrayA8{color.Unorm8(a[0]), color.Unorm8(a[3])} }

// Gray32F is a FormatGray32F pixel.
type Gray32F struct{ Y float32 }

// Format returns FormatGray32F.
func (Gray32F) Format() Format { return FormatGray32F }

// Channel returns the value for i == 0 and 0 otherwise.
func (c Gray32F) Channel(i int) float32 { return channelAt(i, c.Y) }

// Accel returns the value unchanged.
func (c Gray32F) Accel() Accel { return Accel{c.Y, 0, 0, 0} }

// Put writes the little-endian channels to p.
func (c Gray32F) Put(p []byte)         { putFloat32(p, c.Y) }
func (c Gray32F) native8() [4]uint8    { return [4]uint8{color.Unorm8(c.Y), 0, 0, 255} }
func loadGray32F(p []byte) Gray32F     { return Gray32F{getFloat32(p)} }
func gray32FFrom8(n [4]uint8) Gray32F  { return Gray32F{color.Float8(n[0])} }
func gray32FFromAccel(a Accel) Gray32F { return Gray32F{a[0]} }
