package pixfmt

import (
	"errors"
	"fmt"
	"time"
)

// Reformat converts src into a new bitmap of the target format and the same
// size.
//
// If target equals the source format, src itself is returned. Otherwise the
// conversion runs synchronously while src, the destination and their
// palettes are locked, and either the whole buffer is converted or no bitmap
// is returned. src is never modified.
//
// Errors are *ConversionError values wrapping ErrInvalidArgs, ErrNotSupported,
// ErrOutOfMemory or ErrFail.
//
// Example:
//
//	src, _ := pixfmt.NewBitmapFromData(pixfmt.FormatBGRA8, size, pixels, nil)
//	dst, err := pixfmt.Reformat(src, pixfmt.FormatRGBA8)
//	if errors.Is(err, pixfmt.ErrNotSupported) {
//		// fall back to another format
//	}
func Reformat(src *Bitmap, target Format, opts ...Option) (*Bitmap, error) {
	if src == nil {
		return nil, fmt.Errorf("%w: nil bitmap", ErrInvalidArgs)
	}
	if target == src.format {
		return src, nil
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.quantizer == nil {
		o.quantizer = DefaultQuantizer
	}

	dst, route, err := reformat(src, target, &o)
	if err != nil {
		fail := &ConversionError{Dst: target, Src: src.format, Err: err}
		if errors.Is(err, ErrFail) {
			Logger().Warn("pixfmt: reformat failed",
				"src", src.format, "dst", target, "route", route, "err", err)
		}
		return nil, fail
	}
	return dst, nil
}

func reformat(src *Bitmap, target Format, o *options) (*Bitmap, string, error) {
	if !target.IsValid() {
		return nil, "", fmt.Errorf("%w: target format 0x%08x", ErrInvalidArgs, uint32(target))
	}
	e, ok := lookup(target, src.format)
	if !ok {
		return nil, "", ErrNotSupported
	}

	srcPal := src.Palette()
	if src.format.IsIndexed() && srcPal == nil {
		return nil, e.kind, fmt.Errorf("%w: %s bitmap has no palette", ErrNotSupported, src.format)
	}

	size := src.size
	need := CalcTotalSize(target, size) + e.scratchBytes(size)
	if o.memoryLimit > 0 && need > o.memoryLimit {
		return nil, e.kind, fmt.Errorf("%w: need %d bytes, limit %d", ErrOutOfMemory, need, o.memoryLimit)
	}

	dst, err := NewBitmap(target, size)
	if err != nil {
		return nil, e.kind, err
	}
	if target.IsIndexed() {
		dst.palette = paletteFor(target)
	}

	start := time.Now()
	colors, err := run(e, dst, src, srcPal, o)
	if err != nil {
		return nil, e.kind, err
	}
	if target.IsIndexed() {
		if err := dst.palette.Resize(colors); err != nil {
			return nil, e.kind, err
		}
	}

	Logger().Debug("pixfmt: reformat",
		"src", src.format, "dst", target,
		"width", size.Width, "height", size.Height, "depth", size.Depth,
		"route", e.kind, "elapsed", time.Since(start))
	if target.IsIndexed() {
		Logger().Debug("pixfmt: quantized", "dst", target, "colors", colors)
	}
	return dst, e.kind, nil
}

// run locks both bitmaps and their palettes and invokes the routine. It
// returns the number of palette colors written for indexed targets.
func run(e *entry, dst, src *Bitmap, srcPal *Palette, o *options) (int, error) {
	sdata, err := src.Lock()
	if err != nil {
		return 0, err
	}
	defer src.Unlock()
	ddata, err := dst.Lock()
	if err != nil {
		return 0, err
	}
	defer dst.Unlock()

	j := &job{
		size:      src.size,
		src:       newRaster(src.format, sdata, src.size),
		dst:       newRaster(dst.format, ddata, dst.size),
		quantizer: o.quantizer,
		pool:      o.pool,
		workers:   o.workers,
	}
	if srcPal != nil && src.format.IsIndexed() {
		j.src.palette = srcPal.Lock()
		j.src.entry = srcPal.entrySize()
		defer srcPal.Unlock()
	}
	if dst.palette != nil {
		j.dst.palette = dst.palette.Lock()
		j.dst.entry = dst.palette.entrySize()
		defer dst.palette.Unlock()
	}

	if err := e.run(j); err != nil {
		return 0, err
	}
	return j.colors, nil
}
