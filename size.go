package pixfmt

import "math/bits"

// Size2D is the extent of one plane in pixels.
type Size2D struct {
	Width  int
	Height int
}

// Size3D is the extent of a bitmap: a plane size plus a depth, which is the
// slice count of a volume, the layer count of an array, or 6 for a cubemap.
type Size3D struct {
	Width  int
	Height int
	Depth  int
}

// Plane returns the 2D extent of one slice.
func (s Size3D) Plane() Size2D {
	return Size2D{Width: s.Width, Height: s.Height}
}

// IsEmpty reports whether any dimension is not positive.
func (s Size3D) IsEmpty() bool {
	return s.Width <= 0 || s.Height <= 0 || s.Depth <= 0
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}

// CalcStride returns the number of bytes in one row of the given width.
//
// Sub-byte formats round up to a whole byte. Block-compressed formats count
// one row of blocks. Packed 4:2:2 formats count whole macropixels. Planar
// 4:2:0 formats report the luma row. Unknown formats and non-positive widths
// return 0.
func CalcStride(f Format, width int) int {
	if width <= 0 || !f.IsValid() {
		return 0
	}
	switch f.Category() {
	case CategoryBlock:
		bw, _, bytes := f.BlockSize()
		return ceilDiv(width, bw) * bytes
	case CategoryChroma:
		if f.isPlanar() {
			return width
		}
		return ceilDiv(width, 2) * 4
	default:
		return ceilDiv(width*f.BitsPerPixel(), 8)
	}
}

// CalcPlaneSize returns the number of bytes of one plane (one depth slice).
//
// Planar chroma-subsampled formats include both the luma and the chroma
// planes. Unknown formats and empty sizes return 0.
func CalcPlaneSize(f Format, size Size2D) int {
	if size.Width <= 0 || size.Height <= 0 {
		return 0
	}
	stride := CalcStride(f, size.Width)
	if stride == 0 {
		return 0
	}
	switch {
	case f.IsBlockCompressed():
		_, bh, _ := f.BlockSize()
		return stride * ceilDiv(size.Height, bh)
	case f.isPlanar():
		return size.Width*size.Height + 2*ceilDiv(size.Width, 2)*ceilDiv(size.Height, 2)
	default:
		return stride * size.Height
	}
}

// CalcTotalSize returns the number of bytes of the whole bitmap.
func CalcTotalSize(f Format, size Size3D) int {
	if size.Depth <= 0 {
		return 0
	}
	return CalcPlaneSize(f, size.Plane()) * size.Depth
}

// CalcMipmapSize returns the extent of the given mip level.
//
// Every level halves width and height, and depth unless the bitmap is a
// cubemap, never going below 1. A negative level returns the zero size.
func CalcMipmapSize(level int, size Size3D, cubemap bool) Size3D {
	if level < 0 {
		return Size3D{}
	}
	out := Size3D{
		Width:  mipDim(size.Width, level),
		Height: mipDim(size.Height, level),
		Depth:  size.Depth,
	}
	if !cubemap {
		out.Depth = mipDim(size.Depth, level)
	}
	return out
}

func mipDim(v, level int) int {
	if v <= 0 {
		return 0
	}
	if level >= bits.UintSize {
		return 1
	}
	return max(1, v>>level)
}

// CalcMaximumMipmapLevels returns the length of a full mip chain, the
// original level included: 1 + floor(log2(largest dimension)). Cubemaps do
// not count depth. Empty sizes return 0.
func CalcMaximumMipmapLevels(size Size3D, cubemap bool) int {
	if size.Width <= 0 || size.Height <= 0 {
		return 0
	}
	largest := max(size.Width, size.Height)
	if !cubemap {
		if size.Depth <= 0 {
			return 0
		}
		largest = max(largest, size.Depth)
	}
	return bits.Len(uint(largest))
}

// isPlanar reports whether f is a planar 4:2:0 format.
func (f Format) isPlanar() bool {
	switch f {
	case FormatNV12, FormatNV21, FormatI420:
		return true
	}
	return false
}
