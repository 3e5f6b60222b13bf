package pixfmt

import "fmt"

// decodeIndexed expands palette indices into a direct format. Indices at or
// beyond the palette size are decode errors.
func decodeIndexed(j *job, dst, src raster) error {
	conv := pixelConverter(codecFor(dst.format), codecFor(FormatRGBA8))
	if conv == nil {
		return fmt.Errorf("%w: %s to %s", ErrNotSupported, src.format, dst.format)
	}
	if src.entry == 0 {
		return fmt.Errorf("%w: %s bitmap has no palette", ErrNotSupported, src.format)
	}

	count := len(src.palette) / src.entry
	entries := make([][4]byte, count)
	for i := range entries {
		paletteEntry(src.palette, src.entry, i).Put(entries[i][:])
	}

	w := j.size.Width
	for z := 0; z < j.size.Depth; z++ {
		for y := 0; y < j.size.Height; y++ {
			srow, drow := src.row(z, y), dst.row(z, y)
			for x := 0; x < w; x++ {
				idx := int(srow[x])
				if idx >= count {
					return fmt.Errorf("%w: palette index %d at (%d,%d,%d), palette has %d colors",
						ErrInvalidArgs, idx, x, y, z, count)
				}
				conv(drow, x, entries[idx][:], 0)
			}
		}
	}
	return nil
}

// encodeIndexed stages src as RGBA8, quantizes it into dst's indices and
// writes the derived palette. 24-bit palettes drop alpha.
func encodeIndexed(j *job, dst, src raster) error {
	rgba := src
	if src.format != FormatRGBA8 {
		rgba = j.scratch(FormatRGBA8)
		defer j.release(rgba)
		if err := remap(j, rgba, src); err != nil {
			return err
		}
	}

	rows := j.size.Height * j.size.Depth
	n := j.size.Width * rows
	colors, err := j.quantizer.Quantize(dst.data[:n], rgba.data, rgba.stride, j.size.Width, rows, MaxPaletteColors)
	if err != nil {
		return fmt.Errorf("%w: quantize: %w", ErrFail, err)
	}
	if len(colors) > len(dst.palette)/dst.entry {
		return fmt.Errorf("%w: quantizer returned %d colors", ErrFail, len(colors))
	}
	for _, idx := range dst.data[:n] {
		if int(idx) >= len(colors) {
			return fmt.Errorf("%w: quantizer wrote index %d for %d colors", ErrFail, idx, len(colors))
		}
	}

	for i, c := range colors {
		e := dst.palette[i*dst.entry:]
		e[0], e[1], e[2] = c.R, c.G, c.B
		if dst.entry == 4 {
			e[3] = c.A
		}
	}
	j.colors = len(colors)
	return nil
}
