package pixfmt

import (
	"fmt"
	"sync"
)

// MaxPaletteColors is the capacity of every Palette.
const MaxPaletteColors = 256

// Palette is the color table of an indexed bitmap.
//
// Entries are stored in wire form: 3 bytes (R, G, B) per entry for a 24-bit
// palette, 4 bytes (R, G, B, A) for a 32-bit palette. The capacity is always
// MaxPaletteColors; Len is the number of entries in use and every index
// stored in the owning bitmap must be below it.
//
// Thread safety: Lock grants exclusive access to the entries until Unlock.
// The other methods take the same lock and must not be called by the holder.
type Palette struct {
	mu   sync.Mutex
	bits int
	n    int
	data []byte
}

// NewPalette creates a palette of the given entry depth (24 or 32 bits)
// holding colors. Alpha is discarded by 24-bit palettes.
func NewPalette(bits int, colors []RGBA8) (*Palette, error) {
	if bits != 24 && bits != 32 {
		return nil, fmt.Errorf("%w: palette depth %d", ErrInvalidArgs, bits)
	}
	if len(colors) > MaxPaletteColors {
		return nil, fmt.Errorf("%w: %d palette colors", ErrInvalidArgs, len(colors))
	}
	p := &Palette{
		bits: bits,
		n:    len(colors),
		data: make([]byte, MaxPaletteColors*bits/8),
	}
	for i, c := range colors {
		p.put(i, c)
	}
	return p, nil
}

// paletteFor returns an empty palette with the entry depth of an indexed
// format, sized to full capacity so a quantizer can fill it.
func paletteFor(f Format) *Palette {
	p, _ := NewPalette(f.Channels()*8, nil)
	p.n = MaxPaletteColors
	return p
}

// Bits returns the entry depth, 24 or 32.
func (p *Palette) Bits() int { return p.bits }

// Cap returns the maximum number of entries.
func (p *Palette) Cap() int { return MaxPaletteColors }

// Len returns the number of entries in use.
func (p *Palette) Len() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.n
}

// entrySize returns the bytes per entry.
func (p *Palette) entrySize() int { return p.bits / 8 }

// Resize sets the number of entries in use. Entries that come back into use
// after a shrink are cleared.
func (p *Palette) Resize(n int) error {
	if n < 0 || n > MaxPaletteColors {
		return fmt.Errorf("%w: palette size %d", ErrInvalidArgs, n)
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if n > p.n {
		clear(p.data[p.n*p.entrySize() : n*p.entrySize()])
	}
	p.n = n
	return nil
}

// Lock acquires exclusive access and returns the entries in use in wire
// form. The slice is valid until Unlock.
func (p *Palette) Lock() []byte {
	p.mu.Lock()
	return p.data[:p.n*p.entrySize()]
}

// Unlock releases the access granted by Lock.
func (p *Palette) Unlock() { p.mu.Unlock() }

// CopyTo copies the entries in use into dst in wire form and returns the
// number of bytes copied.
func (p *Palette) CopyTo(dst []byte) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return copy(dst, p.data[:p.n*p.entrySize()])
}

// At returns entry i. Entries of a 24-bit palette are opaque.
func (p *Palette) At(i int) (RGBA8, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if i < 0 || i >= p.n {
		return RGBA8{}, false
	}
	return paletteEntry(p.data, p.entrySize(), i), true
}

// Set replaces entry i, which must be in use.
func (p *Palette) Set(i int, c RGBA8) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if i < 0 || i >= p.n {
		return fmt.Errorf("%w: palette index %d of %d", ErrInvalidArgs, i, p.n)
	}
	p.put(i, c)
	return nil
}

// Colors returns a copy of the entries in use.
func (p *Palette) Colors() []RGBA8 {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]RGBA8, p.n)
	for i := range out {
		out[i] = paletteEntry(p.data, p.entrySize(), i)
	}
	return out
}

// Clone returns an independent copy of the palette.
func (p *Palette) Clone() *Palette {
	p.mu.Lock()
	defer p.mu.Unlock()
	return &Palette{bits: p.bits, n: p.n, data: append([]byte(nil), p.data...)}
}

func (p *Palette) put(i int, c RGBA8) {
	e := p.data[i*p.entrySize():]
	e[0], e[1], e[2] = c.R, c.G, c.B
	if p.bits == 32 {
		e[3] = c.A
	}
}

// paletteEntry decodes entry i of locked palette bytes.
func paletteEntry(data []byte, size, i int) RGBA8 {
	e := data[i*size:]
	if size == 3 {
		return RGBA8{e[0], e[1], e[2], 255}
	}
	return RGBA8{e[0], e[1], e[2], e[3]}
}
