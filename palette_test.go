package pixfmt

import (
	"bytes"
	"errors"
	"testing"
)

func TestNewPalette(t *testing.T) {
	colors := []RGBA8{{255, 0, 0, 255}, {0, 255, 0, 128}}

	p, err := NewPalette(32, colors)
	if err != nil {
		t.Fatalf("NewPalette(32) error = %v", err)
	}
	if p.Bits() != 32 || p.Len() != 2 || p.Cap() != MaxPaletteColors {
		t.Errorf("Bits/Len/Cap = %d/%d/%d, want 32/2/256", p.Bits(), p.Len(), p.Cap())
	}
	if got, ok := p.At(1); !ok || got != colors[1] {
		t.Errorf("At(1) = %v, %v, want %v", got, ok, colors[1])
	}

	p24, err := NewPalette(24, colors)
	if err != nil {
		t.Fatalf("NewPalette(24) error = %v", err)
	}
	if got, _ := p24.At(1); got != (RGBA8{0, 255, 0, 255}) {
		t.Errorf("24-bit At(1) = %v, want opaque green", got)
	}
	buf := make([]byte, 16)
	if n := p24.CopyTo(buf); n != 6 || !bytes.Equal(buf[:6], []byte{255, 0, 0, 0, 255, 0}) {
		t.Errorf("CopyTo() = %d, % x", n, buf[:n])
	}
}

func TestNewPaletteErrors(t *testing.T) {
	if _, err := NewPalette(16, nil); !errors.Is(err, ErrInvalidArgs) {
		t.Errorf("NewPalette(16) error = %v, want ErrInvalidArgs", err)
	}
	if _, err := NewPalette(32, make([]RGBA8, MaxPaletteColors+1)); !errors.Is(err, ErrInvalidArgs) {
		t.Errorf("NewPalette(257 colors) error = %v, want ErrInvalidArgs", err)
	}
}

func TestPaletteResize(t *testing.T) {
	p, _ := NewPalette(32, []RGBA8{{1, 2, 3, 4}, {5, 6, 7, 8}})
	if err := p.Resize(1); err != nil {
		t.Fatalf("Resize(1) error = %v", err)
	}
	if _, ok := p.At(1); ok {
		t.Error("At(1) ok after shrink")
	}
	if err := p.Resize(3); err != nil {
		t.Fatalf("Resize(3) error = %v", err)
	}
	if got, _ := p.At(1); got != (RGBA8{}) {
		t.Errorf("At(1) after regrow = %v, want cleared", got)
	}
	if got, _ := p.At(0); got != (RGBA8{1, 2, 3, 4}) {
		t.Errorf("At(0) = %v, want kept", got)
	}
	for _, n := range []int{-1, MaxPaletteColors + 1} {
		if err := p.Resize(n); !errors.Is(err, ErrInvalidArgs) {
			t.Errorf("Resize(%d) error = %v, want ErrInvalidArgs", n, err)
		}
	}
}

func TestPaletteSetAndColors(t *testing.T) {
	p, _ := NewPalette(32, make([]RGBA8, 2))
	if err := p.Set(1, RGBA8{9, 9, 9, 9}); err != nil {
		t.Fatalf("Set(1) error = %v", err)
	}
	if err := p.Set(2, RGBA8{}); !errors.Is(err, ErrInvalidArgs) {
		t.Errorf("Set(2) error = %v, want ErrInvalidArgs", err)
	}
	got := p.Colors()
	if len(got) != 2 || got[1] != (RGBA8{9, 9, 9, 9}) {
		t.Errorf("Colors() = %v", got)
	}

	c := p.Clone()
	_ = c.Set(1, RGBA8{1, 1, 1, 1})
	if got, _ := p.At(1); got != (RGBA8{9, 9, 9, 9}) {
		t.Errorf("Clone shares storage: At(1) = %v", got)
	}
}

func TestPaletteLock(t *testing.T) {
	p, _ := NewPalette(24, []RGBA8{{1, 2, 3, 0}})
	data := p.Lock()
	if len(data) != 3 {
		t.Errorf("len(Lock()) = %d, want 3", len(data))
	}
	data[0] = 42
	p.Unlock()
	if got, _ := p.At(0); got.R != 42 {
		t.Errorf("At(0).R = %d, want 42", got.R)
	}
}

func TestPaletteFor(t *testing.T) {
	p := paletteFor(FormatIndex8RGB)
	if p.Bits() != 24 || p.Len() != MaxPaletteColors {
		t.Errorf("paletteFor(Index8RGB) = %d bits, %d entries", p.Bits(), p.Len())
	}
	if p := paletteFor(FormatIndex8RGBA); p.Bits() != 32 {
		t.Errorf("paletteFor(Index8RGBA) = %d bits, want 32", p.Bits())
	}
}
