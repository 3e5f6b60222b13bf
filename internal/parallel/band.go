package parallel

// MinBandRows is the smallest band worth a goroutine hop.
const MinBandRows = 16

// Bands splits rows [0, n) into at most maxBands contiguous bands of at
// least MinBandRows rows and calls fn for each band on the pool, returning
// when all bands are done. With a single band fn runs on the caller.
func (p *WorkerPool) Bands(n, maxBands int, fn func(lo, hi int)) {
	bands := min(maxBands, n/MinBandRows)
	if bands <= 1 {
		if n > 0 {
			fn(0, n)
		}
		return
	}

	work := make([]func(), bands)
	for i := range bands {
		lo, hi := n*i/bands, n*(i+1)/bands
		work[i] = func() { fn(lo, hi) }
	}
	p.ExecuteAll(work)
}
