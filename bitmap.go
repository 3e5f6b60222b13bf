package pixfmt

import (
	"fmt"
	"sync"
)

// Bitmap is a raster buffer tagged with a pixel format and a 3-D size
// (width, height, depth or array count), plus a Palette for indexed formats.
//
// Planes are stored back to back, each CalcPlaneSize bytes with rows
// CalcStride bytes apart.
//
// Thread safety: Lock grants exclusive access to the pixel bytes until
// Unlock. Accessors for format, size and layout are safe for concurrent use.
type Bitmap struct {
	format Format
	size   Size3D
	stride int
	plane  int

	mu       sync.Mutex
	data     []byte
	palette  *Palette
	released bool
}

// NewBitmap allocates a zeroed bitmap. Indexed formats get an empty palette
// of the matching entry depth.
func NewBitmap(f Format, size Size3D) (*Bitmap, error) {
	total, err := checkLayout(f, size)
	if err != nil {
		return nil, err
	}
	b := newBitmap(f, size, make([]byte, total))
	if f.IsIndexed() {
		b.palette, _ = NewPalette(f.Channels()*8, nil)
	}
	return b, nil
}

// NewBitmapFromData wraps existing pixel bytes without copying. data must
// hold at least CalcTotalSize(f, size) bytes. palette may be nil; an indexed
// bitmap without a palette cannot be converted.
func NewBitmapFromData(f Format, size Size3D, data []byte, palette *Palette) (*Bitmap, error) {
	total, err := checkLayout(f, size)
	if err != nil {
		return nil, err
	}
	if len(data) < total {
		return nil, fmt.Errorf("%w: %s %dx%dx%d needs %d bytes, got %d",
			ErrInvalidArgs, f, size.Width, size.Height, size.Depth, total, len(data))
	}
	b := newBitmap(f, size, data[:total])
	b.palette = palette
	return b, nil
}

func newBitmap(f Format, size Size3D, data []byte) *Bitmap {
	return &Bitmap{
		format: f,
		size:   size,
		stride: CalcStride(f, size.Width),
		plane:  CalcPlaneSize(f, size.Plane()),
		data:   data,
	}
}

func checkLayout(f Format, size Size3D) (int, error) {
	if !f.IsValid() {
		return 0, fmt.Errorf("%w: format 0x%08x", ErrInvalidArgs, uint32(f))
	}
	if size.IsEmpty() {
		return 0, fmt.Errorf("%w: size %dx%dx%d", ErrInvalidArgs, size.Width, size.Height, size.Depth)
	}
	return CalcTotalSize(f, size), nil
}

// Format returns the pixel format.
func (b *Bitmap) Format() Format { return b.format }

// Size returns width, height and depth.
func (b *Bitmap) Size() Size3D { return b.size }

// Stride returns the bytes per row.
func (b *Bitmap) Stride() int { return b.stride }

// PlaneSize returns the bytes per depth slice.
func (b *Bitmap) PlaneSize() int { return b.plane }

// ByteSize returns the total size of the pixel data.
func (b *Bitmap) ByteSize() int { return b.plane * b.size.Depth }

// Palette returns the palette, nil for direct formats.
func (b *Bitmap) Palette() *Palette {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.palette
}

// SetPalette attaches p to an indexed bitmap.
func (b *Bitmap) SetPalette(p *Palette) error {
	if !b.format.IsIndexed() {
		return fmt.Errorf("%w: %s has no palette", ErrInvalidArgs, b.format)
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.palette = p
	return nil
}

// Lock acquires exclusive access to the pixel bytes. It fails with ErrFail
// once the bitmap has been released.
func (b *Bitmap) Lock() ([]byte, error) {
	b.mu.Lock()
	if b.released {
		b.mu.Unlock()
		return nil, fmt.Errorf("%w: bitmap released", ErrFail)
	}
	return b.data, nil
}

// Unlock releases the access granted by Lock.
func (b *Bitmap) Unlock() { b.mu.Unlock() }

// Release drops the pixel data. Later calls to Lock fail.
func (b *Bitmap) Release() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.data = nil
	b.palette = nil
	b.released = true
}

// Clone returns a deep copy, palette included.
func (b *Bitmap) Clone() (*Bitmap, error) {
	data, err := b.Lock()
	if err != nil {
		return nil, err
	}
	defer b.Unlock()

	c := newBitmap(b.format, b.size, append([]byte(nil), data...))
	if b.palette != nil {
		c.palette = b.palette.Clone()
	}
	return c, nil
}
