package pixfmt

// chromaOffsets returns the byte offsets of the Y, U and V samples used by
// pixel (x, y) inside one w×h plane of a chroma-subsampled format.
func chromaOffsets(f Format, w, h, x, y int) (yi, ui, vi int) {
	switch f {
	case FormatYUYV8:
		m := (y*ceilDiv(w, 2) + x/2) * 4
		return m + (x&1)*2, m + 1, m + 3
	case FormatUYVY8:
		m := (y*ceilDiv(w, 2) + x/2) * 4
		return m + 1 + (x&1)*2, m, m + 2
	}

	cw, ch := ceilDiv(w, 2), ceilDiv(h, 2)
	luma := w * h
	c := (y/2)*cw + x/2
	yi = y*w + x
	switch f {
	case FormatNV12:
		return yi, luma + 2*c, luma + 2*c + 1
	case FormatNV21:
		return yi, luma + 2*c + 1, luma + 2*c
	default: // FormatI420
		return yi, luma + c, luma + cw*ch + c
	}
}

// packChroma writes luma for every pixel and takes chroma from the first
// sample of each pair (4:2:2) or 2×2 block (4:2:0).
func packChroma(j *job, dst, src raster) error {
	conv := pixelConverter(codecFor(FormatYUV8), codecFor(src.format))
	if conv == nil {
		return ErrNotSupported
	}

	w, h := j.size.Width, j.size.Height
	planar := dst.format.isPlanar()
	var px [3]byte
	for z := 0; z < j.size.Depth; z++ {
		plane := dst.slice(z)
		for y := 0; y < h; y++ {
			srow := src.row(z, y)
			for x := 0; x < w; x++ {
				conv(px[:], 0, srow, x)
				yi, ui, vi := chromaOffsets(dst.format, w, h, x, y)
				plane[yi] = px[0]
				if x&1 != 0 || (planar && y&1 != 0) {
					continue
				}
				plane[ui], plane[vi] = px[1], px[2]
				if !planar && x == w-1 {
					// Odd width: the last macropixel repeats its only sample.
					plane[yi+2] = px[0]
				}
			}
		}
	}
	return nil
}

// unpackChroma replicates each chroma sample across the pixels sharing it.
func unpackChroma(j *job, dst, src raster) error {
	conv := pixelConverter(codecFor(dst.format), codecFor(FormatYUV8))
	if conv == nil {
		return ErrNotSupported
	}

	w, h := j.size.Width, j.size.Height
	var px [3]byte
	for z := 0; z < j.size.Depth; z++ {
		plane := src.slice(z)
		for y := 0; y < h; y++ {
			drow := dst.row(z, y)
			for x := 0; x < w; x++ {
				yi, ui, vi := chromaOffsets(src.format, w, h, x, y)
				px[0], px[1], px[2] = plane[yi], plane[ui], plane[vi]
				conv(drow, x, px[:], 0)
			}
		}
	}
	return nil
}
