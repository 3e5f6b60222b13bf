// Package quant is the default palette quantizer of pixfmt.
//
// Images with no more distinct colors than the palette allows are indexed
// exactly, palette entries in first-seen order. Larger images are reduced
// with the median cut quantizer of github.com/ericpauley/go-quantize, and
// every pixel is mapped to the nearest palette entry.
package quant

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	"github.com/ericpauley/go-quantize/quantize"

	"github.com/gogpu/pixfmt/internal/cache"
)

// ErrInvalidInput is returned for inconsistent buffer geometry.
var ErrInvalidInput = errors.New("quant: invalid input")

// DefaultCacheSize is the nearest-color cache capacity used by New.
const DefaultCacheSize = 4096

// Quantizer is safe for concurrent use; every call keeps its own state.
type Quantizer struct {
	// CacheSize bounds the per-call nearest-color cache.
	CacheSize int
}

// New returns a Quantizer with the default cache size.
func New() *Quantizer {
	return &Quantizer{CacheSize: DefaultCacheSize}
}

// Quantize writes one palette index per pixel of the RGBA8 image src into
// dst and returns the palette, at most maxColors entries.
func (q *Quantizer) Quantize(dst, src []byte, stride, width, height, maxColors int) ([]color.NRGBA, error) {
	if width <= 0 || height <= 0 || stride < width*4 {
		return nil, fmt.Errorf("%w: %dx%d stride %d", ErrInvalidInput, width, height, stride)
	}
	if maxColors < 1 || maxColors > 256 {
		return nil, fmt.Errorf("%w: max colors %d", ErrInvalidInput, maxColors)
	}
	if len(dst) < width*height || len(src) < stride*(height-1)+width*4 {
		return nil, fmt.Errorf("%w: buffers too small for %dx%d", ErrInvalidInput, width, height)
	}

	img := rgbaImage{pix: src, stride: stride, width: width, height: height}
	if pal, ok := exact(dst, img, maxColors); ok {
		return pal, nil
	}

	pal := medianCut(img, maxColors)
	if len(pal) == 0 {
		return nil, fmt.Errorf("%w: median cut produced no colors", ErrInvalidInput)
	}
	q.remap(dst, img, pal)
	return pal, nil
}

// medianCut builds a palette of at most maxColors colors, each the mean of
// its box.
func medianCut(m rgbaImage, maxColors int) []color.NRGBA {
	img := &image.NRGBA{
		Pix:    m.pix,
		Stride: m.stride,
		Rect:   image.Rect(0, 0, m.width, m.height),
	}
	mc := quantize.MedianCutQuantizer{Aggregation: quantize.Mean}
	colors := mc.Quantize(make(color.Palette, 0, maxColors), img)

	pal := make([]color.NRGBA, 0, len(colors))
	for _, c := range colors {
		pal = append(pal, color.NRGBAModel.Convert(c).(color.NRGBA))
	}
	return pal[:min(len(pal), maxColors)]
}

type rgbaImage struct {
	pix    []byte
	stride int
	width  int
	height int
}

func (m rgbaImage) at(x, y int) uint32 {
	p := m.pix[y*m.stride+x*4:]
	return uint32(p[0])<<24 | uint32(p[1])<<16 | uint32(p[2])<<8 | uint32(p[3])
}

func unpack(c uint32) color.NRGBA {
	return color.NRGBA{R: uint8(c >> 24), G: uint8(c >> 16), B: uint8(c >> 8), A: uint8(c)}
}

// exact indexes img without loss if it has at most maxColors colors.
func exact(dst []byte, m rgbaImage, maxColors int) ([]color.NRGBA, bool) {
	index := make(map[uint32]uint8, maxColors)
	pal := make([]color.NRGBA, 0, maxColors)
	for y := 0; y < m.height; y++ {
		row := dst[y*m.width:]
		for x := 0; x < m.width; x++ {
			c := m.at(x, y)
			i, ok := index[c]
			if !ok {
				if len(pal) == maxColors {
					return nil, false
				}
				i = uint8(len(pal))
				index[c] = i
				pal = append(pal, unpack(c))
			}
			row[x] = i
		}
	}
	return pal, true
}

// remap assigns every pixel its nearest palette entry.
func (q *Quantizer) remap(dst []byte, m rgbaImage, pal []color.NRGBA) {
	lru := cache.NewLRU[uint32, uint8](q.CacheSize)
	for y := 0; y < m.height; y++ {
		row := dst[y*m.width:]
		for x := 0; x < m.width; x++ {
			c := m.at(x, y)
			i, ok := lru.Get(c)
			if !ok {
				i = nearest(pal, unpack(c))
				lru.Set(c, i)
			}
			row[x] = i
		}
	}
}

func nearest(pal []color.NRGBA, c color.NRGBA) uint8 {
	best, bestD := 0, -1
	for i, p := range pal {
		d := sq(int(p.R)-int(c.R)) + sq(int(p.G)-int(c.G)) + sq(int(p.B)-int(c.B)) + sq(int(p.A)-int(c.A))
		if bestD < 0 || d < bestD {
			best, bestD = i, d
			if d == 0 {
				break
			}
		}
	}
	return uint8(best)
}

func sq(v int) int { return v * v }
