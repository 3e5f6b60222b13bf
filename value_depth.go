package pixfmt

import (
	"encoding/binary"

	"github.com/gogpu/pixfmt/internal/color"
)

// Depth values only convert to other depth values. Accel carries depth in
// lane 0 and stencil (scaled to [0,1]) in lane 1.

// Depth16 is a FormatDepth16 pixel.
type Depth16 struct{ D uint16 }

// Format returns FormatDepth16.
func (Depth16) Format() Format { return FormatDepth16 }

// Channel returns the value for i == 0 and 0 otherwise.
func (c Depth16) Channel(i int) float32 { return channelAt(i, float32(c.D)) }

// Accel returns the normalized depth in channel 0.
func (c Depth16) Accel() Accel { return Accel{color.Float16(c.D), 0, 0, 0} }

// Put writes the little-endian channels to p.
func (c Depth16) Put(p []byte)         { binary.LittleEndian.PutUint16(p, c.D) }
func (c Depth16) native8() [4]uint8    { return [4]uint8{uint8(c.D >> 8), 0, 0, 255} }
func loadDepth16(p []byte) Depth16     { return Depth16{binary.LittleEndian.Uint16(p)} }
func depth16From8(n [4]uint8) Depth16  { return Depth16{color.Expand16(n[0])} }
func depth16FromAccel(a Accel) Depth16 { return Depth16{color.Unorm16(a[0])} }

// Depth24S8 is a FormatDepth24S8 pixel. D holds 24 bits.
type Depth24S8 struct {
	D uint32
	S uint8
}

// Format returns FormatDepth24S8.
func (Depth24S8) Format() Format { return FormatDepth24S8 }

// Channel returns the depth (0) or stencil (1) value.
func (c Depth24S8) Channel(i int) float32 {
	return channelAt(i, float32(c.D&0xFFFFFF), float32(c.S))
}

// Accel returns the normalized depth in channel 0 and stencil
// in channel 1.
func (c Depth24S8) Accel() Accel {
	return Accel{color.Float24(c.D), color.Float8(c.S), 0, 0}
}

// Put writes the packed little-endian uint32 to p[0:4].
func (c Depth24S8) Put(p []byte) {
	binary.LittleEndian.PutUint32(p, c.D&0xFFFFFF|uint32(c.S)<<24)
}
func (c Depth24S8) native8() [4]uint8 {
	return [4]uint8{uint8(c.D >> 16), c.S, 0, 255}
}
func loadDepth24S8(p []byte) Depth24S8 {
	v := binary.LittleEndian.Uint32(p)
	return Depth24S8{D: v & 0xFFFFFF, S: uint8(v >> 24)}
}
func depth24S8From8(n [4]uint8) Depth24S8 {
	return Depth24S8{D: uint32(n[0]) * 0x010101, S: n[1]}
}
func depth24S8FromAccel(a Accel) Depth24S8 {
	return Depth24S8{D: color.Unorm24(a[0]), S: color.Unorm8(a[1])}
}

// Depth32F is a FormatDepth32F pixel.
type Depth32F struct{ D float32 }

// Format returns FormatDepth32F.
func (Depth32F) Format() Format { return FormatDepth32F }

// Channel returns the value for i == 0 and 0 otherwise.
func (c Depth32F) Channel(i int) float32 { return channelAt(i, c.D) }

// Accel returns the value unchanged.
func (c Depth32F) Accel() Accel { return Accel{c.D, 0, 0, 0} }

// Put writes the little-endian channels to p.
func (c Depth32F) Put(p []byte)          { putFloat32(p, c.D) }
func (c Depth32F) native8() [4]uint8     { return [4]uint8{color.Unorm8(c.D), 0, 0, 255} }
func loadDepth32F(p []byte) Depth32F     { return Depth32F{getFloat32(p)} }
func depth32FFrom8(n [4]uint8) Depth32F  { return Depth32F{color.Float8(n[0])} }
func depth32FFromAccel(a Accel) Depth32F { return Depth32F{a[0]} }
