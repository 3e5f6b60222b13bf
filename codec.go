package pixfmt

import "github.com/gogpu/pixfmt/internal/color"

// pixelCodec reads and writes pixels of one direct format at pixel index x
// of a row. Rows are addressed by pixel, not byte, so sub-byte formats fit
// the same loops as everything else.
type pixelCodec struct {
	format Format
	size   int  // bytes per pixel, 0 for sub-byte formats
	wide   bool // some channel is wider than 8 bits

	// load8 returns the logical channels at 8 bits, alpha 255 when the
	// format has none.
	load8  func(p []byte, x int) [4]uint8
	store8 func(p []byte, x int, n [4]uint8)

	// loadF returns the normalized logical channels, alpha 1 when the
	// format has none.
	loadF  func(p []byte, x int) Accel
	storeF func(p []byte, x int, a Accel)

	load func(p []byte) Value
}

// minBytes is the smallest buffer holding one pixel.
func (c *pixelCodec) minBytes() int {
	if c.size == 0 {
		return 1
	}
	return c.size
}

func codecOf[T Value](load func([]byte) T, from8 func([4]uint8) T, fromAccel func(Accel) T) *pixelCodec {
	var zero T
	f := zero.Format()
	size := f.BitsPerPixel() / 8
	alpha := f.HasAlpha()
	return &pixelCodec{
		format: f,
		size:   size,
		wide:   f.BitsPerChannel() > 8,
		load8: func(p []byte, x int) [4]uint8 {
			return load(p[x*size:]).native8()
		},
		store8: func(p []byte, x int, n [4]uint8) {
			from8(n).Put(p[x*size:])
		},
		loadF: func(p []byte, x int) Accel {
			a := load(p[x*size:]).Accel()
			if !alpha {
				a[3] = 1
			}
			return a
		},
		storeF: func(p []byte, x int, a Accel) {
			fromAccel(a).Put(p[x*size:])
		},
		load: func(p []byte) Value { return load(p) },
	}
}

// gray4Codec packs two pixels per byte, even pixels in the high nibble.
func gray4Codec() *pixelCodec {
	get := func(p []byte, x int) uint8 {
		b := p[x>>1]
		if x&1 == 0 {
			return b >> 4
		}
		return b & 0x0F
	}
	set := func(p []byte, x int, v uint8) {
		i := x >> 1
		if x&1 == 0 {
			p[i] = p[i]&0x0F | v<<4
		} else {
			p[i] = p[i]&0xF0 | v&0x0F
		}
	}
	return &pixelCodec{
		format: FormatGray4,
		load8: func(p []byte, x int) [4]uint8 {
			return [4]uint8{color.Expand4(get(p, x)), 0, 0, 255}
		},
		store8: func(p []byte, x int, n [4]uint8) {
			set(p, x, color.Reduce4(n[0]))
		},
		loadF: func(p []byte, x int) Accel {
			return Accel{unorm4f(get(p, x)), 0, 0, 1}
		},
		storeF: func(p []byte, x int, a Accel) {
			set(p, x, reduceF(a[0], color.Reduce4))
		},
		load: func(p []byte) Value { return loadGray4(p) },
	}
}

var codecs = map[Format]*pixelCodec{
	FormatRGBA8:    codecOf(loadRGBA8, rgba8From8, rgba8FromAccel),
	FormatBGRA8:    codecOf(loadBGRA8, bgra8From8, bgra8FromAccel),
	FormatRGB8:     codecOf(loadRGB8, rgb8From8, rgb8FromAccel),
	FormatBGR8:     codecOf(loadBGR8, bgr8From8, bgr8FromAccel),
	FormatRGBA4:    codecOf(loadRGBA4, rgba4From8, rgba4FromAccel),
	FormatBGRA4:    codecOf(loadBGRA4, bgra4From8, bgra4FromAccel),
	FormatRGB565:   codecOf(loadRGB565, rgb565From8, rgb565FromAccel),
	FormatBGR565:   codecOf(loadBGR565, bgr565From8, bgr565FromAccel),
	FormatRGBA5551: codecOf(loadRGBA5551, rgba5551From8, rgba5551FromAccel),
	FormatRGB332:   codecOf(loadRGB332, rgb332From8, rgb332FromAccel),
	FormatRGBA16:   codecOf(loadRGBA16, rgba16From8, rgba16FromAccel),
	FormatRGB32F:   codecOf(loadRGB32F, rgb32FFrom8, rgb32FFromAccel),
	FormatRGBA32F:  codecOf(loadRGBA32F, rgba32FFrom8, rgba32FFromAccel),

	FormatGray8:   codecOf(loadGray8, gray8From8, gray8FromAccel),
	FormatGray4:   gray4Codec(),
	FormatGray16:  codecOf(loadGray16, gray16From8, gray16FromAccel),
	FormatGrayA8:  codecOf(loadGrayA8, grayA8From8, grayA8FromAccel),
	FormatGray32F: codecOf(loadGray32F, gray32FFrom8, gray32FFromAccel),

	FormatYUV8:  codecOf(loadYUV8, yuv8From8, yuv8FromAccel),
	FormatYUVA8: codecOf(loadYUVA8, yuva8From8, yuva8FromAccel),
	FormatHSV8:  codecOf(loadHSV8, hsv8From8, hsv8FromAccel),
	FormatHSVA8: codecOf(loadHSVA8, hsva8From8, hsva8FromAccel),

	FormatDepth16:   codecOf(loadDepth16, depth16From8, depth16FromAccel),
	FormatDepth24S8: codecOf(loadDepth24S8, depth24S8From8, depth24S8FromAccel),
	FormatDepth32F:  codecOf(loadDepth32F, depth32FFrom8, depth32FFromAccel),
}

// codecFor returns the codec of a direct format, nil for indexed, chroma
// subsampled, block-compressed and unknown formats.
func codecFor(f Format) *pixelCodec {
	return codecs[f]
}

// pixelFunc converts the pixel at index sx of src into index dx of dst.
type pixelFunc func(dst []byte, dx int, src []byte, sx int)

// pixelConverter picks the per-pixel path between two direct formats:
//
//   - same category: channel copy, through 8 bits when both sides fit in
//     8 bits, through normalized floats otherwise;
//   - RGB and grayscale with a side wider than 8 bits: float RGBA;
//   - any other pair: canonical RGBA8 and the color model math.
//
// Depth formats only convert among themselves; nil means unsupported.
func pixelConverter(dst, src *pixelCodec) pixelFunc {
	dc, sc := dst.format.Category(), src.format.Category()
	if (dc == CategoryDepth) != (sc == CategoryDepth) {
		return nil
	}
	wide := dst.wide || src.wide

	switch {
	case dc == sc && wide:
		return func(d []byte, dx int, s []byte, sx int) {
			dst.storeF(d, dx, src.loadF(s, sx))
		}
	case dc == sc:
		return func(d []byte, dx int, s []byte, sx int) {
			dst.store8(d, dx, src.load8(s, sx))
		}
	case wide && isRGBOrGray(dc) && isRGBOrGray(sc):
		in, out := toRGBAF(sc), fromRGBAF(dc)
		return func(d []byte, dx int, s []byte, sx int) {
			dst.storeF(d, dx, out(in(src.loadF(s, sx))))
		}
	}

	in, out := toRGBA8(sc), fromRGBA8(dc)
	if in == nil || out == nil {
		return nil
	}
	return func(d []byte, dx int, s []byte, sx int) {
		dst.store8(d, dx, out(in(src.load8(s, sx))))
	}
}

func isRGBOrGray(c Category) bool {
	return c == CategoryRGB || c == CategoryGray
}

// toRGBA8 returns the mapping from a category's 8-bit logical channels to
// R, G, B, A.
func toRGBA8(c Category) func([4]uint8) [4]uint8 {
	switch c {
	case CategoryRGB:
		return func(n [4]uint8) [4]uint8 { return n }
	case CategoryGray:
		return func(n [4]uint8) [4]uint8 { return [4]uint8{n[0], n[0], n[0], n[3]} }
	case CategoryYUV:
		return func(n [4]uint8) [4]uint8 {
			r, g, b := color.YUVToRGB(n[0], n[1], n[2])
			return [4]uint8{r, g, b, n[3]}
		}
	case CategoryHSV:
		return func(n [4]uint8) [4]uint8 {
			r, g, b := color.HSVToRGB(n[0], n[1], n[2])
			return [4]uint8{r, g, b, n[3]}
		}
	}
	return nil
}

// fromRGBA8 is the inverse of toRGBA8.
func fromRGBA8(c Category) func([4]uint8) [4]uint8 {
	switch c {
	case CategoryRGB:
		return func(n [4]uint8) [4]uint8 { return n }
	case CategoryGray:
		return func(n [4]uint8) [4]uint8 { return [4]uint8{color.Luma8(n[0], n[1], n[2]), 0, 0, n[3]} }
	case CategoryYUV:
		return func(n [4]uint8) [4]uint8 {
			y, u, v := color.RGBToYUV(n[0], n[1], n[2])
			return [4]uint8{y, u, v, n[3]}
		}
	case CategoryHSV:
		return func(n [4]uint8) [4]uint8 {
			h, s, v := color.RGBToHSV(n[0], n[1], n[2])
			return [4]uint8{h, s, v, n[3]}
		}
	}
	return nil
}

func toRGBAF(c Category) func(Accel) Accel {
	if c == CategoryGray {
		return func(a Accel) Accel { return Accel{a[0], a[0], a[0], a[3]} }
	}
	return func(a Accel) Accel { return a }
}

func fromRGBAF(c Category) func(Accel) Accel {
	if c == CategoryGray {
		return func(a Accel) Accel { return Accel{color.LumaF(a[0], a[1], a[2]), 0, 0, a[3]} }
	}
	return func(a Accel) Accel { return a }
}

// convertPixels converts width pixels of one row.
func convertPixels(conv pixelFunc, dst, src []byte, width int) {
	for x := 0; x < width; x++ {
		conv(dst, x, src, x)
	}
}
