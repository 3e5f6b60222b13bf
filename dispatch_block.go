package pixfmt

import "fmt"

// decodeBlock runs the registered codec of src plane by plane into RGBA8,
// remapping afterwards when dst is another direct format.
func decodeBlock(j *job, dst, src raster) error {
	codec, ok := lookupBlockCodec(src.format)
	if !ok {
		return fmt.Errorf("%w: no block codec registered for %s", ErrNotSupported, src.format)
	}

	rgba := dst
	if dst.format != FormatRGBA8 {
		rgba = j.scratch(FormatRGBA8)
		defer j.release(rgba)
	}
	for z := 0; z < j.size.Depth; z++ {
		if err := codec.Decode(rgba.slice(z), rgba.stride, src.slice(z), j.size.Width, j.size.Height); err != nil {
			return fmt.Errorf("%w: decode %s: %w", ErrFail, src.format, err)
		}
	}
	if rgba.format == dst.format {
		return nil
	}
	return remap(j, dst, rgba)
}

// encodeBlock stages src as RGBA8 and runs the registered codec of dst
// plane by plane.
func encodeBlock(j *job, dst, src raster) error {
	codec, ok := lookupBlockCodec(dst.format)
	if !ok {
		return fmt.Errorf("%w: no block codec registered for %s", ErrNotSupported, dst.format)
	}

	rgba := src
	if src.format != FormatRGBA8 {
		rgba = j.scratch(FormatRGBA8)
		defer j.release(rgba)
		if err := remap(j, rgba, src); err != nil {
			return err
		}
	}
	for z := 0; z < j.size.Depth; z++ {
		if err := codec.Encode(dst.slice(z), rgba.slice(z), rgba.stride, j.size.Width, j.size.Height); err != nil {
			return fmt.Errorf("%w: encode %s: %w", ErrFail, dst.format, err)
		}
	}
	return nil
}
