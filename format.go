package pixfmt

import (
	"fmt"
	"strings"
)

// Format identifies a pixel encoding.
//
// The identifier is a stable 32-bit value that is persisted in container
// headers, so the numeric values below must never change. Its fields are:
//
//	bits 31..24  category
//	bits 23..16  size: bits per pixel (average for chroma-subsampled formats,
//	             index bits for indexed formats, bytes per block for
//	             block-compressed formats)
//	bits 15..8   channel count (palette entry channels for indexed formats)
//	bits  7..0   variant within the category
//
// The zero value is FormatUnknown and never matches a conversion.
type Format uint32

// Category groups formats that share a value model.
type Category uint8

// Format categories. The numeric value is the top byte of every Format in
// the category.
const (
	CategoryUnknown Category = iota
	CategoryRGB
	CategoryGray
	CategoryYUV
	CategoryHSV
	CategoryChroma
	CategoryIndexed
	CategoryDepth
	CategoryBlock
)

// FormatUnknown is the zero Format.
const FormatUnknown Format = 0

// RGB family.
const (
	// FormatRGBA8 stores R, G, B, A as one byte each.
	FormatRGBA8 = Format(0x01200401)
	// FormatBGRA8 stores B, G, R, A as one byte each.
	FormatBGRA8 = Format(0x01200402)
	// FormatRGB8 stores R, G, B as one byte each (24-bit tight packing).
	FormatRGB8 = Format(0x01180301)
	// FormatBGR8 stores B, G, R as one byte each.
	FormatBGR8 = Format(0x01180302)
	// FormatRGBA4 is a little-endian uint16 with R in bits 15..12 and A in 3..0.
	FormatRGBA4 = Format(0x01100401)
	// FormatBGRA4 is a little-endian uint16 with B in bits 15..12 and A in 3..0.
	FormatBGRA4 = Format(0x01100402)
	// FormatRGB565 is a little-endian uint16 with R in bits 15..11, G in 10..5, B in 4..0.
	FormatRGB565 = Format(0x01100301)
	// FormatBGR565 is a little-endian uint16 with B in bits 15..11, G in 10..5, R in 4..0.
	FormatBGR565 = Format(0x01100302)
	// FormatRGBA5551 is a little-endian uint16 with R in 15..11, G in 10..6, B in 5..1, A in bit 0.
	FormatRGBA5551 = Format(0x01100403)
	// FormatRGB332 packs R in bits 7..5, G in 4..2 and B in 1..0 of one byte.
	FormatRGB332 = Format(0x01080301)
	// FormatRGBA16 stores four little-endian uint16 channels.
	FormatRGBA16 = Format(0x01400401)
	// FormatRGB32F stores three little-endian float32 channels.
	FormatRGB32F = Format(0x01600301)
	// FormatRGBA32F stores four little-endian float32 channels.
	FormatRGBA32F = Format(0x01800401)
)

// Grayscale family.
const (
	// FormatGray8 stores one luma byte per pixel.
	FormatGray8 = Format(0x02080101)
	// FormatGray4 packs two pixels per byte, the first one in the high nibble.
	FormatGray4 = Format(0x02040101)
	// FormatGray16 stores one little-endian uint16 per pixel.
	FormatGray16 = Format(0x02100101)
	// FormatGrayA8 stores luma then alpha, one byte each.
	FormatGrayA8 = Format(0x02100201)
	// FormatGray32F stores one little-endian float32 per pixel.
	FormatGray32F = Format(0x02200102)
)

// YUV family (one full-resolution sample per pixel, BT.601 studio swing).
const (
	// FormatYUV8 stores Y, U, V as one byte each.
	FormatYUV8 = Format(0x03180301)
	// FormatYUVA8 stores Y, U, V, A as one byte each.
	FormatYUVA8 = Format(0x03200401)
)

// HSV family (all components in [0, 255]).
const (
	// FormatHSV8 stores H, S, V as one byte each; a full hue turn is 256.
	FormatHSV8 = Format(0x04180301)
	// FormatHSVA8 is FormatHSV8 followed by an alpha byte.
	FormatHSVA8 = Format(0x04200401)
)

// Chroma-subsampled formats.
const (
	// FormatYUYV8 is packed 4:2:2, one macropixel Y0 U Y1 V per two pixels.
	FormatYUYV8 = Format(0x05100301)
	// FormatUYVY8 is packed 4:2:2, one macropixel U Y0 V Y1 per two pixels.
	FormatUYVY8 = Format(0x05100302)
	// FormatNV12 is a Y plane followed by an interleaved UV plane at 4:2:0.
	FormatNV12 = Format(0x050C0303)
	// FormatNV21 is a Y plane followed by an interleaved VU plane at 4:2:0.
	FormatNV21 = Format(0x050C0304)
	// FormatI420 is a Y plane followed by U and V planes at 4:2:0.
	FormatI420 = Format(0x050C0305)
)

// Indexed formats. Every pixel is one byte indexing the bitmap's Palette.
const (
	// FormatIndex8RGB uses a palette of 24-bit RGB8 entries.
	FormatIndex8RGB = Format(0x06080301)
	// FormatIndex8RGBA uses a palette of 32-bit RGBA8 entries.
	FormatIndex8RGBA = Format(0x06080401)
)

// Depth/stencil formats.
const (
	// FormatDepth16 is a little-endian uint16 depth.
	FormatDepth16 = Format(0x07100101)
	// FormatDepth24S8 is a little-endian uint32, depth in bits 23..0, stencil in 31..24.
	FormatDepth24S8 = Format(0x07200201)
	// FormatDepth32F is a little-endian float32 depth.
	FormatDepth32F = Format(0x07200102)
)

// Block-compressed formats. The size field holds bytes per block. pixfmt
// only sizes them; encoding and decoding need a registered BlockCodec.
const (
	// FormatBC1 is 4x4 blocks of 8 bytes, RGB with 1-bit alpha (DXT1).
	FormatBC1 = Format(0x08080401)
	// FormatBC2 is 4x4 blocks of 16 bytes, RGB with explicit 4-bit alpha (DXT3).
	FormatBC2 = Format(0x08100402)
	// FormatBC3 is 4x4 blocks of 16 bytes, RGB with interpolated alpha (DXT5).
	FormatBC3 = Format(0x08100403)
	// FormatBC4 is 4x4 blocks of 8 bytes, one channel.
	FormatBC4 = Format(0x08080104)
	// FormatBC5 is 4x4 blocks of 16 bytes, two channels.
	FormatBC5 = Format(0x08100205)
	// FormatBC7 is 4x4 blocks of 16 bytes, RGBA.
	FormatBC7 = Format(0x08100406)
	// FormatETC1 is 4x4 blocks of 8 bytes, opaque RGB.
	FormatETC1 = Format(0x08080307)
	// FormatETC2RGB is 4x4 blocks of 8 bytes, opaque RGB, ETC1 compatible.
	FormatETC2RGB = Format(0x08080308)
	// FormatETC2RGBA is 4x4 blocks of 16 bytes, an EAC alpha block then ETC2 RGB.
	FormatETC2RGBA = Format(0x08100409)
	// FormatASTC4x4 is 4x4 blocks of 16 bytes.
	FormatASTC4x4 = Format(0x0810040A)
	// FormatASTC8x8 is 8x8 blocks of 16 bytes.
	FormatASTC8x8 = Format(0x0810040B)
)

// formatInfo holds what the identifier alone does not encode.
type formatInfo struct {
	name           string
	bitsPerChannel int
	hasAlpha       bool

	// Block dimensions, 1x1 for everything but block-compressed formats.
	blockW, blockH int
}

// formatTable lists every known format in registry order. Registry order is
// the iteration order used to build the dispatch table.
var formatTable = []struct {
	format Format
	info   formatInfo
}{
	{FormatRGBA8, formatInfo{name: "RGBA8", bitsPerChannel: 8, hasAlpha: true}},
	{FormatBGRA8, formatInfo{name: "BGRA8", bitsPerChannel: 8, hasAlpha: true}},
	{FormatRGB8, formatInfo{name: "RGB8", bitsPerChannel: 8}},
	{FormatBGR8, formatInfo{name: "BGR8", bitsPerChannel: 8}},
	{FormatRGBA4, formatInfo{name: "RGBA4", bitsPerChannel: 4, hasAlpha: true}},
	{FormatBGRA4, formatInfo{name: "BGRA4", bitsPerChannel: 4, hasAlpha: true}},
	{FormatRGB565, formatInfo{name: "RGB565", bitsPerChannel: 6}},
	{FormatBGR565, formatInfo{name: "BGR565", bitsPerChannel: 6}},
	{FormatRGBA5551, formatInfo{name: "RGBA5551", bitsPerChannel: 5, hasAlpha: true}},
	{FormatRGB332, formatInfo{name: "RGB332", bitsPerChannel: 3}},
	{FormatRGBA16, formatInfo{name: "RGBA16", bitsPerChannel: 16, hasAlpha: true}},
	{FormatRGB32F, formatInfo{name: "RGB32F", bitsPerChannel: 32}},
	{FormatRGBA32F, formatInfo{name: "RGBA32F", bitsPerChannel: 32, hasAlpha: true}},

	{FormatGray8, formatInfo{name: "Gray8", bitsPerChannel: 8}},
	{FormatGray4, formatInfo{name: "Gray4", bitsPerChannel: 4}},
	{FormatGray16, formatInfo{name: "Gray16", bitsPerChannel: 16}},
	{FormatGrayA8, formatInfo{name: "GrayA8", bitsPerChannel: 8, hasAlpha: true}},
	{FormatGray32F, formatInfo{name: "Gray32F", bitsPerChannel: 32}},

	{FormatYUV8, formatInfo{name: "YUV8", bitsPerChannel: 8}},
	{FormatYUVA8, formatInfo{name: "YUVA8", bitsPerChannel: 8, hasAlpha: true}},

	{FormatHSV8, formatInfo{name: "HSV8", bitsPerChannel: 8}},
	{FormatHSVA8, formatInfo{name: "HSVA8", bitsPerChannel: 8, hasAlpha: true}},

	{FormatYUYV8, formatInfo{name: "YUYV8", bitsPerChannel: 8}},
	{FormatUYVY8, formatInfo{name: "UYVY8", bitsPerChannel: 8}},
	{FormatNV12, formatInfo{name: "NV12", bitsPerChannel: 8}},
	{FormatNV21, formatInfo{name: "NV21", bitsPerChannel: 8}},
	{FormatI420, formatInfo{name: "I420", bitsPerChannel: 8}},

	{FormatIndex8RGB, formatInfo{name: "Index8RGB", bitsPerChannel: 8}},
	{FormatIndex8RGBA, formatInfo{name: "Index8RGBA", bitsPerChannel: 8, hasAlpha: true}},

	{FormatDepth16, formatInfo{name: "Depth16", bitsPerChannel: 16}},
	{FormatDepth24S8, formatInfo{name: "Depth24S8", bitsPerChannel: 24}},
	{FormatDepth32F, formatInfo{name: "Depth32F", bitsPerChannel: 32}},

	{FormatBC1, formatInfo{name: "BC1", hasAlpha: true, blockW: 4, blockH: 4}},
	{FormatBC2, formatInfo{name: "BC2", hasAlpha: true, blockW: 4, blockH: 4}},
	{FormatBC3, formatInfo{name: "BC3", hasAlpha: true, blockW: 4, blockH: 4}},
	{FormatBC4, formatInfo{name: "BC4", blockW: 4, blockH: 4}},
	{FormatBC5, formatInfo{name: "BC5", blockW: 4, blockH: 4}},
	{FormatBC7, formatInfo{name: "BC7", hasAlpha: true, blockW: 4, blockH: 4}},
	{FormatETC1, formatInfo{name: "ETC1", blockW: 4, blockH: 4}},
	{FormatETC2RGB, formatInfo{name: "ETC2RGB", blockW: 4, blockH: 4}},
	{FormatETC2RGBA, formatInfo{name: "ETC2RGBA", hasAlpha: true, blockW: 4, blockH: 4}},
	{FormatASTC4x4, formatInfo{name: "ASTC4x4", hasAlpha: true, blockW: 4, blockH: 4}},
	{FormatASTC8x8, formatInfo{name: "ASTC8x8", hasAlpha: true, blockW: 8, blockH: 8}},
}

// formatIndex maps a Format to its position in formatTable.
var formatIndex = func() map[Format]int {
	m := make(map[Format]int, len(formatTable))
	for i, e := range formatTable {
		m[e.format] = i
	}
	return m
}()

// info returns the table entry for f and whether f is known.
func (f Format) info() (formatInfo, bool) {
	i, ok := formatIndex[f]
	if !ok {
		return formatInfo{}, false
	}
	return formatTable[i].info, true
}

// Formats returns every known format in registry order.
func Formats() []Format {
	out := make([]Format, len(formatTable))
	for i, e := range formatTable {
		out[i] = e.format
	}
	return out
}

// IsValid reports whether f is a known format.
func (f Format) IsValid() bool {
	_, ok := formatIndex[f]
	return ok
}

// Category returns the format category, or CategoryUnknown.
func (f Format) Category() Category {
	if !f.IsValid() {
		return CategoryUnknown
	}
	return Category(f >> 24)
}

// Channels returns the number of channels. For indexed formats this is the
// channel count of a palette entry.
func (f Format) Channels() int {
	if !f.IsValid() {
		return 0
	}
	return int(f >> 8 & 0xFF)
}

// BitsPerPixel returns the storage cost of one pixel in bits. Chroma
// subsampled formats report the average (12 for 4:2:0, 16 for 4:2:2).
// Block-compressed formats report 0; use BlockSize instead.
func (f Format) BitsPerPixel() int {
	if !f.IsValid() || f.IsBlockCompressed() {
		return 0
	}
	return int(f >> 16 & 0xFF)
}

// BitsPerChannel returns the width of a channel in bits. For packings with
// mixed channel widths the widest channel is reported. Block-compressed
// formats report 0.
func (f Format) BitsPerChannel() int {
	info, _ := f.info()
	return info.bitsPerChannel
}

// HasAlpha reports whether the format stores an alpha channel.
func (f Format) HasAlpha() bool {
	info, _ := f.info()
	return info.hasAlpha
}

// IsIndexed reports whether pixels are palette indices.
func (f Format) IsIndexed() bool { return f.Category() == CategoryIndexed }

// IsBlockCompressed reports whether pixels are stored in compressed tiles.
func (f Format) IsBlockCompressed() bool { return f.Category() == CategoryBlock }

// IsChromaSubsampled reports whether chroma is stored at reduced resolution.
func (f Format) IsChromaSubsampled() bool { return f.Category() == CategoryChroma }

// IsDepth reports whether the format holds depth (and stencil) values.
func (f Format) IsDepth() bool { return f.Category() == CategoryDepth }

// BlockSize returns the tile dimensions and bytes per tile. Formats that are
// not block-compressed report a 1x1 tile of BitsPerPixel/8 bytes (0 for
// sub-byte formats). Unknown formats report zeros.
func (f Format) BlockSize() (width, height, bytes int) {
	info, ok := f.info()
	if !ok {
		return 0, 0, 0
	}
	if f.IsBlockCompressed() {
		return info.blockW, info.blockH, int(f >> 16 & 0xFF)
	}
	return 1, 1, f.BitsPerPixel() / 8
}

// String returns the format name, or "Unknown".
func (f Format) String() string {
	info, ok := f.info()
	if !ok {
		return "Unknown"
	}
	return info.name
}

// ParseFormat returns the format with the given name. Matching ignores case
// and an optional "Format" prefix, so "rgba8" and "FormatRGBA8" both work.
func ParseFormat(name string) (Format, error) {
	n := strings.TrimSpace(name)
	if len(n) > 6 && strings.EqualFold(n[:6], "format") {
		n = n[6:]
	}
	for _, e := range formatTable {
		if strings.EqualFold(e.info.name, n) {
			return e.format, nil
		}
	}
	return FormatUnknown, fmt.Errorf("%w: unknown format %q", ErrInvalidArgs, name)
}

// String returns the category name.
func (c Category) String() string {
	switch c {
	case CategoryRGB:
		return "RGB"
	case CategoryGray:
		return "Gray"
	case CategoryYUV:
		return "YUV"
	case CategoryHSV:
		return "HSV"
	case CategoryChroma:
		return "Chroma"
	case CategoryIndexed:
		return "Indexed"
	case CategoryDepth:
		return "Depth"
	case CategoryBlock:
		return "Block"
	default:
		return "Unknown"
	}
}
