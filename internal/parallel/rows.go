package parallel

// Band is a half-open range of scanlines [Y0, Y1).
type Band struct {
	Y0, Y1 int
}

// SplitRows divides height scanlines into at most n contiguous bands of
// near-equal size. It returns nil when there is nothing to split.
func SplitRows(height, n int) []Band {
	if height <= 0 {
		return nil
	}
	n = min(max(n, 1), height)

	bands := make([]Band, 0, n)
	y := 0
	for i := range n {
		rows := height / n
		if i < height%n {
			rows++
		}
		bands = append(bands, Band{Y0: y, Y1: y + rows})
		y += rows
	}
	return bands
}

// ForEachRow calls fn once per scanline in [0, height). Bands of rows run
// on the pool; rows within a band run in order. It returns once every row
// is done. A nil pool runs everything on the calling goroutine.
func ForEachRow(p *WorkerPool, height int, fn func(y int)) {
	if p == nil || p.Workers() == 1 {
		for y := range height {
			fn(y)
		}
		return
	}

	// Several bands per worker leave room for stealing.
	bands := SplitRows(height, p.Workers()*4)
	work := make([]func(), len(bands))
	for i, b := range bands {
		work[i] = func() {
			for y := b.Y0; y < b.Y1; y++ {
				fn(y)
			}
		}
	}
	p.ExecuteAll(work)
}
