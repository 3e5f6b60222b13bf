package pixfmt

import (
	"image/color"

	"github.com/gogpu/pixfmt/internal/quant"
)

// Quantizer reduces an RGBA8 image to at most maxColors colors.
//
// src holds height rows of width RGBA8 pixels, stride bytes apart. The
// implementation writes one palette index per pixel into dst (width bytes
// per row, rows packed) and returns the palette. Volumes are passed as a
// single image of height rows times depth.
type Quantizer interface {
	Quantize(dst, src []byte, stride, width, height, maxColors int) ([]color.NRGBA, error)
}

// DefaultQuantizer is used when Reformat gets no WithQuantizer option. It
// keeps images with few enough distinct colors exact and falls back to
// median cut otherwise.
var DefaultQuantizer Quantizer = quant.New()
