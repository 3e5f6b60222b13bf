package pixfmt

import (
	"errors"
	"testing"

	"github.com/gogpu/gputypes"
)

func TestFormatDecoding(t *testing.T) {
	tests := []struct {
		format   Format
		category Category
		channels int
		bpp      int
		bpc      int
		alpha    bool
	}{
		{FormatRGBA8, CategoryRGB, 4, 32, 8, true},
		{FormatBGR8, CategoryRGB, 3, 24, 8, false},
		{FormatRGB565, CategoryRGB, 3, 16, 6, false},
		{FormatRGBA5551, CategoryRGB, 4, 16, 5, true},
		{FormatRGB332, CategoryRGB, 3, 8, 3, false},
		{FormatRGBA16, CategoryRGB, 4, 64, 16, true},
		{FormatRGBA32F, CategoryRGB, 4, 128, 32, true},
		{FormatGray4, CategoryGray, 1, 4, 4, false},
		{FormatGrayA8, CategoryGray, 2, 16, 8, true},
		{FormatYUVA8, CategoryYUV, 4, 32, 8, true},
		{FormatHSV8, CategoryHSV, 3, 24, 8, false},
		{FormatNV12, CategoryChroma, 3, 12, 8, false},
		{FormatYUYV8, CategoryChroma, 3, 16, 8, false},
		{FormatIndex8RGB, CategoryIndexed, 3, 8, 8, false},
		{FormatIndex8RGBA, CategoryIndexed, 4, 8, 8, true},
		{FormatDepth24S8, CategoryDepth, 2, 32, 24, false},
		{FormatBC1, CategoryBlock, 4, 0, 0, true},
		{FormatBC5, CategoryBlock, 2, 0, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.format.String(), func(t *testing.T) {
			if got := tt.format.Category(); got != tt.category {
				t.Errorf("Category() = %v, want %v", got, tt.category)
			}
			if got := tt.format.Channels(); got != tt.channels {
				t.Errorf("Channels() = %d, want %d", got, tt.channels)
			}
			if got := tt.format.BitsPerPixel(); got != tt.bpp {
				t.Errorf("BitsPerPixel() = %d, want %d", got, tt.bpp)
			}
			if got := tt.format.BitsPerChannel(); got != tt.bpc {
				t.Errorf("BitsPerChannel() = %d, want %d", got, tt.bpc)
			}
			if got := tt.format.HasAlpha(); got != tt.alpha {
				t.Errorf("HasAlpha() = %v, want %v", got, tt.alpha)
			}
		})
	}
}

func TestFormatPredicates(t *testing.T) {
	for _, f := range Formats() {
		t.Run(f.String(), func(t *testing.T) {
			if !f.IsValid() {
				t.Error("IsValid() = false")
			}
			if got, want := f.IsIndexed(), f.Category() == CategoryIndexed; got != want {
				t.Errorf("IsIndexed() = %v, want %v", got, want)
			}
			if got, want := f.IsBlockCompressed(), f.Category() == CategoryBlock; got != want {
				t.Errorf("IsBlockCompressed() = %v, want %v", got, want)
			}
			if got, want := f.IsChromaSubsampled(), f.Category() == CategoryChroma; got != want {
				t.Errorf("IsChromaSubsampled() = %v, want %v", got, want)
			}
			if got := Category(uint32(f) >> 24); got != f.Category() {
				t.Errorf("top byte = %v, want %v", got, f.Category())
			}
		})
	}
}

func TestFormatUnknownIsZero(t *testing.T) {
	for _, f := range []Format{FormatUnknown, Format(0x01200409), Format(0xFFFFFFFF)} {
		if f.IsValid() {
			t.Errorf("%#x: IsValid() = true", uint32(f))
		}
		if f.Category() != CategoryUnknown || f.Channels() != 0 || f.BitsPerPixel() != 0 ||
			f.BitsPerChannel() != 0 || f.HasAlpha() || f.IsIndexed() || f.IsBlockCompressed() ||
			f.IsChromaSubsampled() {
			t.Errorf("%#x: expected zero results", uint32(f))
		}
		if w, h, b := f.BlockSize(); w != 0 || h != 0 || b != 0 {
			t.Errorf("%#x: BlockSize() = %d, %d, %d, want zeros", uint32(f), w, h, b)
		}
		if f.String() != "Unknown" {
			t.Errorf("%#x: String() = %q, want Unknown", uint32(f), f.String())
		}
	}
}

func TestFormatsRegistryOrder(t *testing.T) {
	all := Formats()
	if len(all) != 43 {
		t.Errorf("len(Formats()) = %d, want 43", len(all))
	}
	if all[0] != FormatRGBA8 || all[len(all)-1] != FormatASTC8x8 {
		t.Errorf("Formats() starts with %s and ends with %s", all[0], all[len(all)-1])
	}
	seen := make(map[Format]bool)
	names := make(map[string]bool)
	for i, f := range all {
		if seen[f] || names[f.String()] {
			t.Errorf("duplicate format %s", f)
		}
		seen[f], names[f.String()] = true, true
		if i > 0 && f.Category() < all[i-1].Category() {
			t.Errorf("%s listed after %s", f, all[i-1])
		}
	}
}

func TestBlockSize(t *testing.T) {
	tests := []struct {
		format  Format
		w, h, b int
	}{
		{FormatBC1, 4, 4, 8},
		{FormatBC3, 4, 4, 16},
		{FormatBC4, 4, 4, 8},
		{FormatETC2RGBA, 4, 4, 16},
		{FormatASTC8x8, 8, 8, 16},
		{FormatRGBA8, 1, 1, 4},
		{FormatRGB8, 1, 1, 3},
		{FormatGray4, 1, 1, 0},
	}
	for _, tt := range tests {
		t.Run(tt.format.String(), func(t *testing.T) {
			w, h, b := tt.format.BlockSize()
			if w != tt.w || h != tt.h || b != tt.b {
				t.Errorf("BlockSize() = %d, %d, %d, want %d, %d, %d", w, h, b, tt.w, tt.h, tt.b)
			}
		})
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		name string
		want Format
	}{
		{"RGBA8", FormatRGBA8},
		{"rgba8", FormatRGBA8},
		{"FormatBGR565", FormatBGR565},
		{" nv12 ", FormatNV12},
		{"index8rgba", FormatIndex8RGBA},
		{"ASTC4x4", FormatASTC4x4},
	}
	for _, tt := range tests {
		got, err := ParseFormat(tt.name)
		if err != nil || got != tt.want {
			t.Errorf("ParseFormat(%q) = %v, %v, want %v", tt.name, got, err, tt.want)
		}
	}

	for _, f := range Formats() {
		if got, err := ParseFormat(f.String()); err != nil || got != f {
			t.Errorf("ParseFormat(%q) = %v, %v, want %v", f.String(), got, err, f)
		}
	}

	if _, err := ParseFormat("RGBA9"); !errors.Is(err, ErrInvalidArgs) {
		t.Errorf("ParseFormat(RGBA9) error = %v, want ErrInvalidArgs", err)
	}
}

func TestCategoryString(t *testing.T) {
	if got := CategoryChroma.String(); got != "Chroma" {
		t.Errorf("CategoryChroma.String() = %q, want Chroma", got)
	}
	if got := Category(99).String(); got != "Unknown" {
		t.Errorf("Category(99).String() = %q, want Unknown", got)
	}
}

func TestTextureFormat(t *testing.T) {
	tests := []struct {
		format Format
		want   gputypes.TextureFormat
	}{
		{FormatRGBA8, gputypes.TextureFormatRGBA8Unorm},
		{FormatBGRA8, gputypes.TextureFormatBGRA8Unorm},
		{FormatGray8, gputypes.TextureFormatR8Unorm},
		{FormatDepth24S8, gputypes.TextureFormatDepth24PlusStencil8},
		{FormatBC7, gputypes.TextureFormatBC7RGBAUnorm},
		{FormatRGB8, gputypes.TextureFormatUndefined},
		{FormatNV12, gputypes.TextureFormatUndefined},
		{FormatUnknown, gputypes.TextureFormatUndefined},
	}
	for _, tt := range tests {
		t.Run(tt.format.String(), func(t *testing.T) {
			if got := tt.format.TextureFormat(); got != tt.want {
				t.Errorf("TextureFormat() = %v, want %v", got, tt.want)
			}
		})
	}

	for f := range textureFormats {
		if f == FormatETC1 {
			continue
		}
		if got := FormatFromTexture(f.TextureFormat()); got != f {
			t.Errorf("FormatFromTexture(%v) = %v, want %v", f.TextureFormat(), got, f)
		}
	}
	if got := FormatFromTexture(gputypes.TextureFormatRGBA8UnormSrgb); got != FormatRGBA8 {
		t.Errorf("FormatFromTexture(RGBA8UnormSrgb) = %v, want RGBA8", got)
	}
}

func TestUploadFormat(t *testing.T) {
	tests := []struct {
		format, want Format
	}{
		{FormatRGBA8, FormatRGBA8},
		{FormatRGB8, FormatRGBA8},
		{FormatRGB565, FormatRGBA8},
		{FormatRGB32F, FormatRGBA32F},
		{FormatGray4, FormatGray8},
		{FormatYUV8, FormatRGBA8},
		{FormatNV12, FormatRGBA8},
		{FormatIndex8RGB, FormatRGBA8},
		{FormatBC1, FormatBC1},
		{FormatUnknown, FormatUnknown},
	}
	for _, tt := range tests {
		if got := UploadFormat(tt.format); got != tt.want {
			t.Errorf("UploadFormat(%s) = %s, want %s", tt.format, got, tt.want)
		}
		if tt.format != FormatUnknown && !Supported(UploadFormat(tt.format), tt.format) {
			t.Errorf("Supported(UploadFormat(%s), %s) = false", tt.format, tt.format)
		}
	}
}
