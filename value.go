package pixfmt

import "github.com/gogpu/pixfmt/internal/color"

// Accel is the floating-point intermediate used between pixel types.
//
// Channels are in the logical order of the value model they came from
// (R,G,B,A for RGB types whatever their memory order, Y,U,V,A for YUV,
// H,S,V,A for HSV, gray,0,0,A for grayscale, depth,stencil for depth) and
// normalized to [0,1]. Values without alpha leave channel 3 at zero.
type Accel [4]float32

// Add returns the channel-wise sum.
func (a Accel) Add(b Accel) Accel {
	return Accel{a[0] + b[0], a[1] + b[1], a[2] + b[2], a[3] + b[3]}
}

// Sub returns the channel-wise difference.
func (a Accel) Sub(b Accel) Accel {
	return Accel{a[0] - b[0], a[1] - b[1], a[2] - b[2], a[3] - b[3]}
}

// Mul returns the channel-wise product.
func (a Accel) Mul(b Accel) Accel {
	return Accel{a[0] * b[0], a[1] * b[1], a[2] * b[2], a[3] * b[3]}
}

// Scale multiplies every channel by k.
func (a Accel) Scale(k float32) Accel {
	return Accel{a[0] * k, a[1] * k, a[2] * k, a[3] * k}
}

// Lerp interpolates linearly between a (t=0) and b (t=1).
func (a Accel) Lerp(b Accel, t float32) Accel {
	return a.Add(b.Sub(a).Scale(t))
}

// Saturate clamps every channel to [0,1].
func (a Accel) Saturate() Accel {
	return Accel{
		color.Saturate(a[0]),
		color.Saturate(a[1]),
		color.Saturate(a[2]),
		color.Saturate(a[3]),
	}
}

// Value is one pixel of a concrete, non-indexed, non-subsampled format.
//
// Each implementation has exported fields holding its channels in native
// units (0..255 for 8-bit channels, 0..31 for 5-bit fields, 0..1 for float
// channels) and serializes to exactly the wire layout of its Format.
type Value interface {
	// Format returns the pixel format the value belongs to.
	Format() Format
	// Channel returns logical channel i in native units, 0 if out of range.
	Channel(i int) float32
	// Accel returns the value as a normalized intermediate.
	Accel() Accel
	// Put writes the value as the first pixel of p.
	Put(p []byte)

	// native8 returns the logical channels scaled to 8 bits. Channel 3 is
	// 255 when the format has no alpha.
	native8() [4]uint8
}

// LoadValue reads the first pixel of p as a Value of format f.
func LoadValue(f Format, p []byte) (Value, error) {
	c := codecFor(f)
	if c == nil || c.load == nil {
		return nil, ErrNotSupported
	}
	if len(p) < c.minBytes() {
		return nil, ErrInvalidArgs
	}
	return c.load(p), nil
}

// ConvertValue converts v to a Value of format f using the same rules as a
// whole-buffer Reformat.
func ConvertValue(f Format, v Value) (Value, error) {
	if v == nil {
		return nil, ErrInvalidArgs
	}
	if v.Format() == f {
		return v, nil
	}
	dc := codecFor(f)
	sc := codecFor(v.Format())
	if dc == nil || sc == nil {
		return nil, ErrNotSupported
	}
	conv := pixelConverter(dc, sc)
	if conv == nil {
		return nil, ErrNotSupported
	}

	var src, dst [16]byte
	v.Put(src[:])
	conv(dst[:], 0, src[:], 0)
	return dc.load(dst[:]), nil
}

// Convert converts v to the value type D. Unsupported conversions (depth to
// color and back) return the zero D.
func Convert[D Value](v Value) D {
	var zero D
	out, err := ConvertValue(zero.Format(), v)
	if err != nil {
		return zero
	}
	d, _ := out.(D)
	return d
}

// FromAccel builds a D from a normalized intermediate in D's logical channel
// order. Integer targets saturate and truncate.
func FromAccel[D Value](a Accel) D {
	var zero D
	c := codecFor(zero.Format())
	var buf [16]byte
	c.storeF(buf[:], 0, a)
	d, _ := c.load(buf[:]).(D)
	return d
}

// Add returns a + b channel by channel, saturated.
func Add[T Value](a, b T) T {
	return FromAccel[T](a.Accel().Add(b.Accel()).Saturate())
}

// Sub returns a - b channel by channel, saturated.
func Sub[T Value](a, b T) T {
	return FromAccel[T](a.Accel().Sub(b.Accel()).Saturate())
}

// Scale multiplies every channel of v by k, saturated.
func Scale[T Value](v T, k float32) T {
	return FromAccel[T](v.Accel().Scale(k).Saturate())
}

// Lerp interpolates between a and b.
func Lerp[T Value](a, b T, t float32) T {
	return FromAccel[T](a.Accel().Lerp(b.Accel(), t).Saturate())
}

// channelAt is the shared implementation of Value.Channel.
func channelAt(i int, ch ...float32) float32 {
	if i < 0 || i >= len(ch) {
		return 0
	}
	return ch[i]
}
