package pixfmt

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"testing"
)

func TestFromImageNRGBA(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	img.SetNRGBA(0, 0, color.NRGBA{255, 0, 0, 255})
	img.SetNRGBA(1, 0, color.NRGBA{0, 0, 255, 128})

	b, err := FromImage(img, FormatBGRA8)
	if err != nil {
		t.Fatalf("FromImage() error = %v", err)
	}
	if b.Format() != FormatBGRA8 || b.Size() != (Size3D{2, 1, 1}) {
		t.Errorf("FromImage() = %s %v", b.Format(), b.Size())
	}
	if got, want := bitmapBytes(t, b), []byte{0, 0, 255, 255, 255, 0, 0, 128}; !bytes.Equal(got, want) {
		t.Errorf("FromImage() = %v, want %v", got, want)
	}
}

func TestFromImageNRGBAKeepsTransparentColor(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 3, 2))
	img.SetNRGBA(1, 1, color.NRGBA{10, 20, 30, 0})
	img.SetNRGBA(2, 1, color.NRGBA{40, 50, 60, 1})
	sub := img.SubImage(image.Rect(1, 1, 3, 2))

	b, err := FromImage(sub, FormatRGBA8)
	if err != nil {
		t.Fatalf("FromImage() error = %v", err)
	}
	// A premultiplied round trip would zero the color of transparent pixels.
	if got, want := bitmapBytes(t, b), []byte{10, 20, 30, 0, 40, 50, 60, 1}; !bytes.Equal(got, want) {
		t.Errorf("FromImage() = %v, want %v", got, want)
	}
}

func TestFromImageSubImage(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	img.Set(2, 3, color.RGBA{10, 20, 30, 255})
	sub := img.SubImage(image.Rect(2, 3, 4, 4))

	b, err := FromImage(sub, FormatRGB8)
	if err != nil {
		t.Fatalf("FromImage() error = %v", err)
	}
	if got, want := bitmapBytes(t, b), []byte{10, 20, 30, 0, 0, 0}; !bytes.Equal(got, want) {
		t.Errorf("FromImage() = %v, want %v", got, want)
	}
}

func TestFromImageGray(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 3, 1))
	img.Pix = []byte{0, 128, 255}

	b, err := FromImage(img, FormatGray8)
	if err != nil {
		t.Fatalf("FromImage() error = %v", err)
	}
	if got := bitmapBytes(t, b); !bytes.Equal(got, []byte{0, 128, 255}) {
		t.Errorf("FromImage() = %v", got)
	}
}

func TestFromImagePaletted(t *testing.T) {
	pal := color.Palette{color.NRGBA{255, 0, 0, 255}, color.NRGBA{0, 255, 0, 255}}
	img := image.NewPaletted(image.Rect(0, 0, 2, 2), pal)
	img.Pix = []byte{0, 1, 1, 0}

	b, err := FromImage(img, FormatIndex8RGBA)
	if err != nil {
		t.Fatalf("FromImage() error = %v", err)
	}
	if got := b.Palette().Colors(); len(got) != 2 || got[1] != (RGBA8{0, 255, 0, 255}) {
		t.Errorf("palette = %v", got)
	}

	rgb, err := FromImage(img, FormatRGB8)
	if err != nil {
		t.Fatalf("FromImage(RGB8) error = %v", err)
	}
	want := []byte{255, 0, 0, 0, 255, 0, 0, 255, 0, 255, 0, 0}
	if got := bitmapBytes(t, rgb); !bytes.Equal(got, want) {
		t.Errorf("FromImage(RGB8) = %v, want %v", got, want)
	}
}

func TestFromImageErrors(t *testing.T) {
	if _, err := FromImage(nil, FormatRGBA8); !errors.Is(err, ErrInvalidArgs) {
		t.Errorf("nil image: error = %v, want ErrInvalidArgs", err)
	}
	if _, err := FromImage(image.NewRGBA(image.Rect(0, 0, 0, 0)), FormatRGBA8); !errors.Is(err, ErrInvalidArgs) {
		t.Errorf("empty image: error = %v, want ErrInvalidArgs", err)
	}
}

func TestBitmapImage(t *testing.T) {
	src := mustBitmap(t, FormatRGB565, Size3D{1, 1, 2}, []byte{0x00, 0xF8, 0x1F, 0x00})
	img, err := src.Image(1)
	if err != nil {
		t.Fatalf("Image(1) error = %v", err)
	}
	n, ok := img.(*image.NRGBA)
	if !ok {
		t.Fatalf("Image() = %T, want *image.NRGBA", img)
	}
	if got := n.NRGBAAt(0, 0); got != (color.NRGBA{0, 0, 255, 255}) {
		t.Errorf("pixel = %v, want blue", got)
	}

	gray := mustBitmap(t, FormatGray8, Size3D{2, 1, 1}, []byte{7, 9})
	gimg, err := gray.Image(0)
	if err != nil {
		t.Fatalf("Image(0) error = %v", err)
	}
	if g, ok := gimg.(*image.Gray); !ok || g.GrayAt(1, 0).Y != 9 {
		t.Errorf("Image() = %T, want *image.Gray with Y=9", gimg)
	}

	if _, err := gray.Image(1); !errors.Is(err, ErrInvalidArgs) {
		t.Errorf("Image(1) error = %v, want ErrInvalidArgs", err)
	}
}
