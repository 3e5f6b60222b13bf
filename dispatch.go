package pixfmt

import (
	"fmt"
	"sync"

	"github.com/gogpu/pixfmt/internal/parallel"
)

// raster is a locked view of a bitmap's bytes, or of a scratch buffer laid
// out like one.
type raster struct {
	format Format
	data   []byte
	stride int
	plane  int

	// Indexed formats only: locked palette entries in wire form.
	palette []byte
	entry   int
}

func newRaster(f Format, data []byte, size Size3D) raster {
	return raster{
		format: f,
		data:   data,
		stride: CalcStride(f, size.Width),
		plane:  CalcPlaneSize(f, size.Plane()),
	}
}

// row returns the bytes from the start of row y of slice z.
func (r raster) row(z, y int) []byte {
	return r.data[z*r.plane+y*r.stride:]
}

// slice returns depth slice z.
func (r raster) slice(z int) []byte {
	return r.data[z*r.plane : (z+1)*r.plane]
}

// job is one whole-buffer conversion in flight.
type job struct {
	size      Size3D
	dst, src  raster
	quantizer Quantizer
	pool      *Pool
	workers   int

	// colors is the palette size produced by an indexed encode.
	colors int
}

func (j *job) scratch(f Format) raster {
	n := CalcTotalSize(f, j.size)
	var buf []byte
	if j.pool != nil {
		buf = j.pool.Get(n)
	} else {
		buf = make([]byte, n)
	}
	return newRaster(f, buf, j.size)
}

func (j *job) release(r raster) {
	if j.pool != nil {
		j.pool.Put(r.data)
	}
}

// stage converts a whole src raster into dst. One side of every stage is a
// direct format.
type stage func(j *job, dst, src raster) error

// shape classifies formats by how their buffers are walked.
type shape uint8

const (
	shapeNone shape = iota
	shapeDirect
	shapeIndexed
	shapeChroma
	shapeBlock
)

func shapeOf(f Format) shape {
	switch f.Category() {
	case CategoryUnknown:
		return shapeNone
	case CategoryIndexed:
		return shapeIndexed
	case CategoryChroma:
		return shapeChroma
	case CategoryBlock:
		return shapeBlock
	}
	return shapeDirect
}

// decoders turn a non-direct source into a direct destination.
var decoders = map[shape]struct {
	name string
	run  stage
	via  Format // direct format the shape decodes to most naturally
}{
	shapeIndexed: {"index-decode", decodeIndexed, FormatRGBA8},
	shapeChroma:  {"chroma-unpack", unpackChroma, FormatYUV8},
	shapeBlock:   {"block-decode", decodeBlock, FormatRGBA8},
}

// encoders turn a direct source into a non-direct destination.
var encoders = map[shape]struct {
	name string
	run  stage
}{
	shapeIndexed: {"quantize", encodeIndexed},
	shapeChroma:  {"chroma-pack", packChroma},
	shapeBlock:   {"block-encode", encodeBlock},
}

// entry is the dispatch table value for one (destination, source) pair.
type entry struct {
	// kind names the routine shape for logs, e.g. "remap" or
	// "chroma-unpack+quantize".
	kind string
	// scratch lists the formats of the intermediate buffers the routine
	// allocates.
	scratch []Format
	run     func(j *job) error
}

// scratchBytes returns the transient memory the routine needs.
func (e *entry) scratchBytes(size Size3D) int {
	n := 0
	for _, f := range e.scratch {
		n += CalcTotalSize(f, size)
	}
	return n
}

// stageScratch lists the RGBA8 staging buffer a stage allocates when its
// direct side is not already RGBA8. Index decoding converts palette entries
// in place and needs none.
func stageScratch(s shape, direct Format) []Format {
	if s == shapeChroma || direct == FormatRGBA8 {
		return nil
	}
	return []Format{FormatRGBA8}
}

// newEntry builds the routine for converting src into dst, or returns nil
// when the pair is not supported.
func newEntry(dst, src Format) *entry {
	ds, ss := shapeOf(dst), shapeOf(src)
	switch {
	case ds == shapeNone || ss == shapeNone:
		return nil
	case ds == shapeBlock && ss == shapeBlock:
		return nil
	case dst.IsDepth() != src.IsDepth():
		return nil
	}

	switch {
	case ds == shapeDirect && ss == shapeDirect:
		if pixelConverter(codecFor(dst), codecFor(src)) == nil {
			return nil
		}
		return &entry{kind: "remap", run: func(j *job) error {
			return remap(j, j.dst, j.src)
		}}

	case ss == shapeDirect:
		enc := encoders[ds]
		return &entry{kind: enc.name, scratch: stageScratch(ds, src), run: func(j *job) error {
			return enc.run(j, j.dst, j.src)
		}}

	case ds == shapeDirect:
		dec := decoders[ss]
		var scratch []Format
		if ss == shapeBlock {
			scratch = stageScratch(ss, dst)
		}
		return &entry{kind: dec.name, scratch: scratch, run: func(j *job) error {
			return dec.run(j, j.dst, j.src)
		}}
	}

	// Both sides need a shape routine: decode into a direct intermediate,
	// then encode from it.
	dec, enc := decoders[ss], encoders[ds]
	via := dec.via
	scratch := append([]Format{via}, stageScratch(ss, via)...)
	scratch = append(scratch, stageScratch(ds, via)...)
	return &entry{
		kind:    dec.name + "+" + enc.name,
		scratch: scratch,
		run: func(j *job) error {
			m := j.scratch(via)
			defer j.release(m)
			if err := dec.run(j, m, j.src); err != nil {
				return err
			}
			return enc.run(j, j.dst, m)
		},
	}
}

type pairKey struct {
	dst Format
	src Format
}

// dispatchTable is built on first use by walking Formats() in registry
// order for both sides and is read-only afterwards.
var dispatchTable = sync.OnceValue(func() map[pairKey]*entry {
	formats := Formats()
	t := make(map[pairKey]*entry, len(formats)*len(formats))
	for _, dst := range formats {
		for _, src := range formats {
			if dst == src {
				continue
			}
			if e := newEntry(dst, src); e != nil {
				t[pairKey{dst, src}] = e
			}
		}
	}
	return t
})

func lookup(dst, src Format) (*entry, bool) {
	e, ok := dispatchTable()[pairKey{dst, src}]
	return e, ok
}

// Supported reports whether Reformat has a routine converting src bitmaps
// into dst. Every valid format is supported into itself. Pairs involving a
// block-compressed format are listed even when no BlockCodec is registered;
// Reformat reports the missing codec.
func Supported(dst, src Format) bool {
	if dst == src {
		return dst.IsValid()
	}
	_, ok := lookup(dst, src)
	return ok
}

// Route returns the routine shape Reformat uses for a pair, e.g. "remap",
// "quantize" or "chroma-unpack+quantize", and "" when unsupported.
func Route(dst, src Format) string {
	if dst == src && dst.IsValid() {
		return "identity"
	}
	e, ok := lookup(dst, src)
	if !ok {
		return ""
	}
	return e.kind
}

// workerPool is shared by every conversion that asks for workers.
var workerPool = sync.OnceValue(func() *parallel.WorkerPool {
	return parallel.NewWorkerPool(0)
})

// remap converts every pixel between two direct formats. Rows of all slices
// are independent, so with workers they are converted in bands.
func remap(j *job, dst, src raster) error {
	conv := pixelConverter(codecFor(dst.format), codecFor(src.format))
	if conv == nil {
		return fmt.Errorf("%w: %s to %s", ErrNotSupported, src.format, dst.format)
	}
	h := j.size.Height
	rows := func(lo, hi int) {
		for r := lo; r < hi; r++ {
			z, y := r/h, r%h
			convertPixels(conv, dst.row(z, y), src.row(z, y), j.size.Width)
		}
	}

	n := h * j.size.Depth
	if j.workers > 1 {
		workerPool().Bands(n, j.workers, rows)
		return nil
	}
	rows(0, n)
	return nil
}
