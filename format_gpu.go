package pixfmt

import "github.com/gogpu/gputypes"

// textureFormats maps formats with a byte-identical GPU texture layout.
var textureFormats = map[Format]gputypes.TextureFormat{
	FormatRGBA8:     gputypes.TextureFormatRGBA8Unorm,
	FormatBGRA8:     gputypes.TextureFormatBGRA8Unorm,
	FormatRGBA16:    gputypes.TextureFormatRGBA16Unorm,
	FormatRGBA32F:   gputypes.TextureFormatRGBA32Float,
	FormatGray8:     gputypes.TextureFormatR8Unorm,
	FormatGray16:    gputypes.TextureFormatR16Unorm,
	FormatGrayA8:    gputypes.TextureFormatRG8Unorm,
	FormatGray32F:   gputypes.TextureFormatR32Float,
	FormatDepth16:   gputypes.TextureFormatDepth16Unorm,
	FormatDepth24S8: gputypes.TextureFormatDepth24PlusStencil8,
	FormatDepth32F:  gputypes.TextureFormatDepth32Float,
	FormatBC1:       gputypes.TextureFormatBC1RGBAUnorm,
	FormatBC2:       gputypes.TextureFormatBC2RGBAUnorm,
	FormatBC3:       gputypes.TextureFormatBC3RGBAUnorm,
	FormatBC4:       gputypes.TextureFormatBC4RUnorm,
	FormatBC5:       gputypes.TextureFormatBC5RGUnorm,
	FormatBC7:       gputypes.TextureFormatBC7RGBAUnorm,
	FormatETC1:      gputypes.TextureFormatETC2RGB8Unorm, // ETC2 decoders accept ETC1 blocks
	FormatETC2RGB:   gputypes.TextureFormatETC2RGB8Unorm,
	FormatETC2RGBA:  gputypes.TextureFormatETC2RGBA8Unorm,
	FormatASTC4x4:   gputypes.TextureFormatASTC4x4Unorm,
	FormatASTC8x8:   gputypes.TextureFormatASTC8x8Unorm,
}

// fromTexture is the inverse of textureFormats. sRGB variants share the
// byte layout of their linear counterparts.
var fromTexture = map[gputypes.TextureFormat]Format{
	gputypes.TextureFormatRGBA8Unorm:          FormatRGBA8,
	gputypes.TextureFormatRGBA8UnormSrgb:      FormatRGBA8,
	gputypes.TextureFormatBGRA8Unorm:          FormatBGRA8,
	gputypes.TextureFormatBGRA8UnormSrgb:      FormatBGRA8,
	gputypes.TextureFormatRGBA16Unorm:         FormatRGBA16,
	gputypes.TextureFormatRGBA32Float:         FormatRGBA32F,
	gputypes.TextureFormatR8Unorm:             FormatGray8,
	gputypes.TextureFormatR16Unorm:            FormatGray16,
	gputypes.TextureFormatRG8Unorm:            FormatGrayA8,
	gputypes.TextureFormatR32Float:            FormatGray32F,
	gputypes.TextureFormatDepth16Unorm:        FormatDepth16,
	gputypes.TextureFormatDepth24PlusStencil8: FormatDepth24S8,
	gputypes.TextureFormatDepth32Float:        FormatDepth32F,
	gputypes.TextureFormatBC1RGBAUnorm:        FormatBC1,
	gputypes.TextureFormatBC1RGBAUnormSrgb:    FormatBC1,
	gputypes.TextureFormatBC2RGBAUnorm:        FormatBC2,
	gputypes.TextureFormatBC2RGBAUnormSrgb:    FormatBC2,
	gputypes.TextureFormatBC3RGBAUnorm:        FormatBC3,
	gputypes.TextureFormatBC3RGBAUnormSrgb:    FormatBC3,
	gputypes.TextureFormatBC4RUnorm:           FormatBC4,
	gputypes.TextureFormatBC5RGUnorm:          FormatBC5,
	gputypes.TextureFormatBC7RGBAUnorm:        FormatBC7,
	gputypes.TextureFormatBC7RGBAUnormSrgb:    FormatBC7,
	gputypes.TextureFormatETC2RGB8Unorm:       FormatETC2RGB,
	gputypes.TextureFormatETC2RGB8UnormSrgb:   FormatETC2RGB,
	gputypes.TextureFormatETC2RGBA8Unorm:      FormatETC2RGBA,
	gputypes.TextureFormatETC2RGBA8UnormSrgb:  FormatETC2RGBA,
	gputypes.TextureFormatASTC4x4Unorm:        FormatASTC4x4,
	gputypes.TextureFormatASTC4x4UnormSrgb:    FormatASTC4x4,
	gputypes.TextureFormatASTC8x8Unorm:        FormatASTC8x8,
	gputypes.TextureFormatASTC8x8UnormSrgb:    FormatASTC8x8,
}

// TextureFormat returns the GPU texture format whose texel layout matches f
// byte for byte, or gputypes.TextureFormatUndefined.
func (f Format) TextureFormat() gputypes.TextureFormat {
	if t, ok := textureFormats[f]; ok {
		return t
	}
	return gputypes.TextureFormatUndefined
}

// FormatFromTexture returns the pixel format laid out like t, or
// FormatUnknown.
func FormatFromTexture(t gputypes.TextureFormat) Format {
	return fromTexture[t]
}

// UploadFormat returns the format a bitmap of f should be reformatted to
// before texture upload: f itself when the GPU can sample it directly, the
// closest wider format otherwise.
func UploadFormat(f Format) Format {
	if _, ok := textureFormats[f]; ok {
		return f
	}
	switch f.Category() {
	case CategoryUnknown:
		return FormatUnknown
	case CategoryGray:
		return FormatGray8
	case CategoryRGB:
		if f.BitsPerChannel() > 16 {
			return FormatRGBA32F
		}
		if f.BitsPerChannel() > 8 {
			return FormatRGBA16
		}
	}
	return FormatRGBA8
}
