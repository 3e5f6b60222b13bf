package pixfmt

import "sync"

// BlockCodec compresses and decompresses one block-compressed format.
//
// pixfmt only sizes and routes block-compressed buffers; the codecs
// themselves are external and registered with RegisterBlockCodec, the same
// way image decoders are registered with image.RegisterFormat.
//
// Both methods work on one plane. The block side is tightly packed
// (CalcStride rows of blocks); the RGBA8 side has the given stride.
type BlockCodec interface {
	// Decode expands src blocks into RGBA8 pixels.
	Decode(dst []byte, dstStride int, src []byte, width, height int) error
	// Encode compresses RGBA8 pixels into dst blocks.
	Encode(dst []byte, src []byte, srcStride int, width, height int) error
}

var (
	blockMu     sync.RWMutex
	blockCodecs = map[Format]BlockCodec{}
)

// RegisterBlockCodec makes c the codec for f, replacing any previous one.
// A nil codec unregisters f. It is meant to be called from init functions;
// it panics if f is not a block-compressed format.
func RegisterBlockCodec(f Format, c BlockCodec) {
	if !f.IsBlockCompressed() {
		panic("pixfmt: RegisterBlockCodec of non-block format " + f.String())
	}
	blockMu.Lock()
	defer blockMu.Unlock()
	if c == nil {
		delete(blockCodecs, f)
		return
	}
	blockCodecs[f] = c
}

// lookupBlockCodec returns the codec registered for f.
func lookupBlockCodec(f Format) (BlockCodec, bool) {
	blockMu.RLock()
	defer blockMu.RUnlock()
	c, ok := blockCodecs[f]
	return c, ok
}
