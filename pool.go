package pixfmt

import (
	"math/bits"
	"sync"
)

// Pool reuses the scratch buffers that multi-stage conversions need
// (quantization input, block codec staging, chroma intermediates).
//
// Reformat allocates fresh scratch memory unless a Pool is passed with
// WithPool. Buffers are grouped by power-of-two size class, so frames of
// similar size share buffers.
//
// Thread safety: All methods are safe for concurrent use.
type Pool struct {
	mu      sync.Mutex
	buckets map[int][][]byte // by size class, see sizeClass
	maxSize int              // max buffers per bucket
}

// NewPool creates a pool retaining at most maxPerBucket buffers of each
// size class. A maxPerBucket of 0 means unlimited.
func NewPool(maxPerBucket int) *Pool {
	return &Pool{
		buckets: make(map[int][][]byte),
		maxSize: maxPerBucket,
	}
}

// Get returns a zeroed buffer of n bytes. Its capacity is n rounded up to
// a power of two.
func (p *Pool) Get(n int) []byte {
	if n <= 0 {
		return nil
	}
	class := bits.Len(uint(n - 1))

	p.mu.Lock()
	bucket := p.buckets[class]
	if len(bucket) > 0 {
		buf := bucket[len(bucket)-1]
		p.buckets[class] = bucket[:len(bucket)-1]
		p.mu.Unlock()

		buf = buf[:n]
		clear(buf)
		return buf
	}
	p.mu.Unlock()

	return make([]byte, n, 1<<class)
}

// Put returns buf to the pool. Buffers beyond the bucket limit are dropped.
func (p *Pool) Put(buf []byte) {
	if cap(buf) == 0 {
		return
	}
	// Every buffer in class c holds at least 1<<c bytes.
	class := bits.Len(uint(cap(buf))) - 1

	p.mu.Lock()
	defer p.mu.Unlock()

	bucket := p.buckets[class]
	if p.maxSize > 0 && len(bucket) >= p.maxSize {
		return
	}
	p.buckets[class] = append(bucket, buf[:cap(buf)])
}

// Len returns the number of buffers held.
func (p *Pool) Len() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	n := 0
	for _, b := range p.buckets {
		n += len(b)
	}
	return n
}
