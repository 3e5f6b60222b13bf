package pixfmt

import (
	"fmt"
	"image"
	"image/color"

	"golang.org/x/image/draw"
)

// FromImage converts img into a bitmap of format f.
//
// *image.NRGBA, *image.Gray and *image.Paletted are copied without a color
// round trip; any other image is drawn into NRGBA first.
func FromImage(img image.Image, f Format, opts ...Option) (*Bitmap, error) {
	if img == nil {
		return nil, fmt.Errorf("%w: nil image", ErrInvalidArgs)
	}
	b := img.Bounds()
	size := Size3D{Width: b.Dx(), Height: b.Dy(), Depth: 1}
	if size.IsEmpty() {
		return nil, fmt.Errorf("%w: empty image", ErrInvalidArgs)
	}

	var src *Bitmap
	var err error
	switch m := img.(type) {
	case *image.NRGBA:
		src, err = NewBitmapFromData(FormatRGBA8, size, copyRows(m.Pix, m.Stride, size.Width*4, size.Height), nil)
	case *image.Gray:
		src, err = NewBitmapFromData(FormatGray8, size, copyRows(m.Pix, m.Stride, size.Width, size.Height), nil)
	case *image.Paletted:
		src, err = fromPaletted(m, size)
	default:
		dst := image.NewNRGBA(image.Rect(0, 0, size.Width, size.Height))
		draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Src)
		src, err = NewBitmapFromData(FormatRGBA8, size, dst.Pix, nil)
	}
	if err != nil {
		return nil, err
	}
	return Reformat(src, f, opts...)
}

func fromPaletted(m *image.Paletted, size Size3D) (*Bitmap, error) {
	colors := make([]RGBA8, len(m.Palette))
	for i, c := range m.Palette {
		n := color.NRGBAModel.Convert(c).(color.NRGBA)
		colors[i] = RGBA8{n.R, n.G, n.B, n.A}
	}
	pal, err := NewPalette(32, colors)
	if err != nil {
		return nil, err
	}
	return NewBitmapFromData(FormatIndex8RGBA, size, copyRows(m.Pix, m.Stride, size.Width, size.Height), pal)
}

func copyRows(pix []byte, stride, rowBytes, height int) []byte {
	out := make([]byte, rowBytes*height)
	for y := 0; y < height; y++ {
		copy(out[y*rowBytes:(y+1)*rowBytes], pix[y*stride:])
	}
	return out
}

// Image returns depth slice z as an image.Image. Gray8 bitmaps become
// *image.Gray; everything else is converted to RGBA8 and returned as
// *image.NRGBA.
func (b *Bitmap) Image(z int) (image.Image, error) {
	if z < 0 || z >= b.size.Depth {
		return nil, fmt.Errorf("%w: slice %d of %d", ErrInvalidArgs, z, b.size.Depth)
	}

	src := b
	if b.format != FormatGray8 && b.format != FormatRGBA8 {
		var err error
		if src, err = Reformat(b, FormatRGBA8); err != nil {
			return nil, err
		}
	}

	data, err := src.Lock()
	if err != nil {
		return nil, err
	}
	defer src.Unlock()

	plane := append([]byte(nil), data[z*src.plane:(z+1)*src.plane]...)
	r := image.Rect(0, 0, b.size.Width, b.size.Height)
	if src.format == FormatGray8 {
		return &image.Gray{Pix: plane, Stride: src.stride, Rect: r}, nil
	}
	return &image.NRGBA{Pix: plane, Stride: src.stride, Rect: r}, nil
}
