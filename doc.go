// Package pixfmt converts raster pixel data between in-memory pixel formats.
//
// # Overview
//
// pixfmt covers packed RGB and BGR layouts from 8 to 128 bits per pixel,
// grayscale, YUV and HSV, palette-indexed formats, chroma-subsampled YUV
// (4:2:2 packed and 4:2:0 planar), depth/stencil formats, and routing to
// externally implemented block-compression codecs. Every format has a stable
// 32-bit identifier and an exact byte layout, so buffers can be handed to
// file codecs and GPU uploads unchanged.
//
// # Quick Start
//
//	import "github.com/gogpu/pixfmt"
//
//	src, err := pixfmt.NewBitmapFromData(pixfmt.FormatBGRA8,
//		pixfmt.Size3D{Width: 640, Height: 480, Depth: 1}, pixels, nil)
//	if err != nil {
//		return err
//	}
//	dst, err := pixfmt.Reformat(src, pixfmt.FormatNV12)
//
// # Formats
//
// A Format packs its category, bits per pixel, channel count and a variant
// ordinal into one uint32. Format methods and the Calc* size functions never
// fail: unknown formats yield zero values, which callers treat as "cannot
// proceed".
//
// # Pixel values
//
// Each direct format has a value type (RGBA8, RGB565, Gray16, YUV8, ...)
// whose Put and LoadValue methods read and write the wire layout. Values
// convert through Convert, ConvertValue and the Accel intermediate.
//
// Conversion rules:
//   - Bit-depth reduction truncates, from integer and float sources alike.
//   - RGB to YUV uses BT.601 studio-swing fixed point; RGB to HSV uses the
//     8-bit integer transform with 43-unit hue sectors.
//   - Gray from RGB uses the weights 0.2627, 0.6780, 0.0593.
//   - Sources without alpha produce opaque destinations.
//   - Depth formats only convert to depth formats.
//
// # Reformat
//
// Reformat looks up the routine for a (destination, source) pair in a table
// built once on first use, allocates the destination and runs the routine
// with both bitmaps locked. Indexed targets are quantized by a Quantizer
// (DefaultQuantizer unless WithQuantizer is given). Block-compressed formats
// require a BlockCodec registered with RegisterBlockCodec.
//
// # Thread Safety
//
// Conversions share no mutable state. Concurrent Reformat calls are safe as
// long as they do not write the same bitmap.
package pixfmt

// Version is the current version of the library.
const Version = "0.1.0"
