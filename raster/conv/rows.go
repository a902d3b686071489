package conv

import (
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// ErrPanic wraps a panic raised by a row function.
var ErrPanic = errors.New("conv: panic in row band")

// minBandRows keeps bands large enough that scheduling does not dominate.
const minBandRows = 8

// Rows calls fn over contiguous half-open row ranges [y0, y1) covering
// [0, height), running up to workers ranges concurrently. The first error
// returned by any fn is returned after all ranges finish. A panic in fn is
// recovered in its own goroutine and returned as an error wrapping
// ErrPanic.
//
// fn must only write rows inside its range.
func Rows(workers, height int, fn func(y0, y1 int) error) error {
	if height <= 0 {
		return nil
	}
	if workers < 1 {
		workers = 1
	}
	band := (height + workers - 1) / workers
	if band < minBandRows {
		band = minBandRows
	}
	if band >= height {
		return runBand(fn, 0, height)
	}

	var g errgroup.Group
	g.SetLimit(workers)
	for y0 := 0; y0 < height; y0 += band {
		y1 := min(y0+band, height)
		g.Go(func() error {
			return runBand(fn, y0, y1)
		})
	}
	return g.Wait()
}

func runBand(fn func(y0, y1 int) error, y0, y1 int) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w [%d, %d): %v", ErrPanic, y0, y1, r)
		}
	}()
	return fn(y0, y1)
}
