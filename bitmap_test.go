package pixfmt

import (
	"errors"
	"testing"
)

func TestNewBitmap(t *testing.T) {
	b, err := NewBitmap(FormatBGR565, Size3D{Width: 5, Height: 3, Depth: 2})
	if err != nil {
		t.Fatalf("NewBitmap() error = %v", err)
	}
	if b.Format() != FormatBGR565 {
		t.Errorf("Format() = %v", b.Format())
	}
	if b.Stride() != 10 || b.PlaneSize() != 30 || b.ByteSize() != 60 {
		t.Errorf("Stride/PlaneSize/ByteSize = %d/%d/%d, want 10/30/60", b.Stride(), b.PlaneSize(), b.ByteSize())
	}
	if b.Palette() != nil {
		t.Error("direct bitmap has a palette")
	}

	data, err := b.Lock()
	if err != nil {
		t.Fatalf("Lock() error = %v", err)
	}
	for i, v := range data {
		if v != 0 {
			t.Fatalf("data[%d] = %d, want zeroed", i, v)
		}
	}
	b.Unlock()
}

func TestNewBitmapIndexedHasPalette(t *testing.T) {
	b, err := NewBitmap(FormatIndex8RGB, Size3D{Width: 2, Height: 2, Depth: 1})
	if err != nil {
		t.Fatalf("NewBitmap() error = %v", err)
	}
	p := b.Palette()
	if p == nil || p.Bits() != 24 || p.Len() != 0 {
		t.Errorf("Palette() = %+v, want empty 24-bit palette", p)
	}
}

func TestNewBitmapErrors(t *testing.T) {
	tests := []struct {
		name   string
		format Format
		size   Size3D
	}{
		{"unknown format", FormatUnknown, Size3D{1, 1, 1}},
		{"zero width", FormatRGBA8, Size3D{0, 1, 1}},
		{"zero depth", FormatRGBA8, Size3D{1, 1, 0}},
		{"negative height", FormatRGBA8, Size3D{1, -1, 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewBitmap(tt.format, tt.size); !errors.Is(err, ErrInvalidArgs) {
				t.Errorf("NewBitmap() error = %v, want ErrInvalidArgs", err)
			}
		})
	}
}

func TestNewBitmapFromData(t *testing.T) {
	size := Size3D{Width: 2, Height: 2, Depth: 1}
	if _, err := NewBitmapFromData(FormatRGBA8, size, make([]byte, 15), nil); !errors.Is(err, ErrInvalidArgs) {
		t.Errorf("short data: error = %v, want ErrInvalidArgs", err)
	}

	data := make([]byte, 20)
	b, err := NewBitmapFromData(FormatRGBA8, size, data, nil)
	if err != nil {
		t.Fatalf("NewBitmapFromData() error = %v", err)
	}
	got, _ := b.Lock()
	got[0] = 7
	b.Unlock()
	if data[0] != 7 {
		t.Error("NewBitmapFromData copied the data")
	}
	if len(got) != 16 {
		t.Errorf("len(Lock()) = %d, want 16", len(got))
	}
}

func TestBitmapSetPalette(t *testing.T) {
	size := Size3D{Width: 1, Height: 1, Depth: 1}
	pal, _ := NewPalette(32, []RGBA8{{1, 2, 3, 4}})

	direct := mustBitmap(t, FormatRGBA8, size, make([]byte, 4))
	if err := direct.SetPalette(pal); !errors.Is(err, ErrInvalidArgs) {
		t.Errorf("SetPalette(direct) error = %v, want ErrInvalidArgs", err)
	}

	indexed := mustBitmap(t, FormatIndex8RGBA, size, make([]byte, 1))
	if err := indexed.SetPalette(pal); err != nil {
		t.Fatalf("SetPalette() error = %v", err)
	}
	if indexed.Palette() != pal {
		t.Error("Palette() did not return the attached palette")
	}
}

func TestBitmapRelease(t *testing.T) {
	b, _ := NewBitmap(FormatRGBA8, Size3D{Width: 1, Height: 1, Depth: 1})
	b.Release()
	if _, err := b.Lock(); !errors.Is(err, ErrFail) {
		t.Errorf("Lock() after Release error = %v, want ErrFail", err)
	}
	if _, err := b.Clone(); !errors.Is(err, ErrFail) {
		t.Errorf("Clone() after Release error = %v, want ErrFail", err)
	}
}

func TestBitmapClone(t *testing.T) {
	size := Size3D{Width: 2, Height: 1, Depth: 1}
	pal, _ := NewPalette(24, []RGBA8{{1, 2, 3, 255}, {4, 5, 6, 255}})
	b := mustBitmap(t, FormatIndex8RGB, size, []byte{0, 1})
	_ = b.SetPalette(pal)

	c, err := b.Clone()
	if err != nil {
		t.Fatalf("Clone() error = %v", err)
	}
	data, _ := c.Lock()
	data[0] = 1
	c.Unlock()
	_ = c.Palette().Set(0, RGBA8{})

	orig, _ := b.Lock()
	if orig[0] != 0 {
		t.Error("Clone shares pixel data")
	}
	b.Unlock()
	if got, _ := pal.At(0); got != (RGBA8{1, 2, 3, 255}) {
		t.Error("Clone shares the palette")
	}
}
