package renderer

import (
	"runtime"
	"sync"
)

// RowBand is a contiguous range of image rows [Start, End)
type RowBand struct {
	Start int
	End   int
}

// PartitionRows splits height rows into at most numWorkers contiguous bands
// that cover every row exactly once. Earlier bands take the remainder rows.
func PartitionRows(height, numWorkers int) []RowBand {
	if height <= 0 {
		return nil
	}
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	numWorkers = min(numWorkers, height)

	bands := make([]RowBand, 0, numWorkers)
	base, extra := height/numWorkers, height%numWorkers
	start := 0
	for i := 0; i < numWorkers; i++ {
		size := base
		if i < extra {
			size++
		}
		bands = append(bands, RowBand{Start: start, End: start + size})
		start += size
	}
	return bands
}

// bandTask hands one worker its rows and the frame bytes it owns
type bandTask struct {
	Band RowBand
	Pix  []byte
}

// WorkerPool renders the bands of one frame in parallel. Each worker owns
// its band's slice of the frame exclusively, so pixel writes never overlap
// and no locking is needed.
type WorkerPool struct {
	tasks      []bandTask
	numWorkers int
}

// NewWorkerPool partitions the frame into one band per worker
func NewWorkerPool(frame *Frame, numWorkers int) *WorkerPool {
	bands := PartitionRows(frame.Height, numWorkers)
	wp := &WorkerPool{numWorkers: len(bands)}
	for _, band := range bands {
		wp.tasks = append(wp.tasks, bandTask{
			Band: band,
			Pix:  frame.rows(band.Start, band.End),
		})
	}
	return wp
}

// GetNumWorkers returns the number of workers in the pool
func (wp *WorkerPool) GetNumWorkers() int {
	return wp.numWorkers
}

// Run calls render once per band, each on its own goroutine, and returns
// when all of them have finished. render receives the worker index, the band
// and the bytes of exactly that band.
func (wp *WorkerPool) Run(render func(worker int, band RowBand, pix []byte)) {
	var wg sync.WaitGroup
	for i, task := range wp.tasks {
		wg.Add(1)
		go func(worker int, task bandTask) {
			defer wg.Done()
			render(worker, task.Band, task.Pix)
		}(i, task)
	}
	wg.Wait()
}
