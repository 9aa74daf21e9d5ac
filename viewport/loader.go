// Package viewport decides which slice of the cluster address space is
// materialized for display. A volume can have tens of millions of clusters;
// materializing them all up front is a non-starter, so the loader starts
// with a margin around the highlighted file's extents and grows the window
// lazily as the user scrolls toward either edge.
package viewport

import (
	"sort"

	bitmap "github.com/boljen/go-bitmap"

	"github.com/avoronov/clustermap"
)

// DefaultMargin is the number of clusters materialized on each side of a
// highlighted extent, and the step size of each scroll extension.
const DefaultMargin = 500

// Direction names the edge of the loaded window being extended.
type Direction int

const (
	Above Direction = iota
	Below
)

// Loader tracks the set of materialized cluster indices for one session.
// The set only ever grows; there is no eviction. That is a deliberate
// trade-off of memory for simplicity, bounded by the volume's total cluster
// count, and it means a very long scroll session materializes a lot.
//
// A Loader is built fresh on every load and is not safe for concurrent use;
// the interactive session drives it from a single goroutine.
type Loader struct {
	loaded bitmap.Bitmap
	total  uint64
	margin uint64

	// Window bounds, valid only when !empty. Tracked alongside the bitmap so
	// Extend never has to rescan it.
	min   uint64
	max   uint64
	empty bool
}

// NewLoader creates a loader for a volume with the given total cluster
// count. A total of 0 means the count is unknown; such a loader stays empty
// and every operation on it returns nil.
func NewLoader(totalClusters uint64, margin uint64) *Loader {
	loader := &Loader{
		total:  totalClusters,
		margin: margin,
		empty:  true,
	}
	if loader.margin == 0 {
		loader.margin = DefaultMargin
	}
	if totalClusters > 0 {
		loader.loaded = bitmap.New(int(totalClusters))
	}
	return loader
}

// InitialLoad materializes a margin around every extent of the highlighted
// file and returns the newly materialized indices in ascending order.
// Indices already loaded are not returned again, so a repeated call with the
// same extents yields nil.
func (l *Loader) InitialLoad(extents clustermap.FileExtents) []uint64 {
	if l.total == 0 {
		return nil
	}

	var batch []uint64
	for _, r := range extents {
		start := uint64(0)
		if r.Start > l.margin {
			start = r.Start - l.margin
		}
		end := r.End + l.margin
		if end >= l.total || end < r.End { // second test guards overflow
			end = l.total - 1
		}
		batch = l.materialize(start, end, batch)
	}

	// Extents come in discovery order, so the per-range batches may not be.
	sort.Slice(batch, func(i, j int) bool { return batch[i] < batch[j] })
	return batch
}

// Extend grows the loaded window by one margin beyond the given edge and
// returns the newly materialized indices in ascending order. It is a no-op
// when nothing is loaded yet or the window already touches that edge of the
// volume; the boundary only ever moves outward.
func (l *Loader) Extend(direction Direction) []uint64 {
	if l.total == 0 || l.empty {
		return nil
	}

	switch direction {
	case Above:
		if l.min == 0 {
			return nil
		}
		start := uint64(0)
		if l.min > l.margin {
			start = l.min - l.margin
		}
		return l.materialize(start, l.min-1, nil)
	case Below:
		if l.max >= l.total-1 {
			return nil
		}
		end := l.max + l.margin
		if end >= l.total || end < l.max {
			end = l.total - 1
		}
		return l.materialize(l.max+1, end, nil)
	}
	return nil
}

// materialize marks [start, end] as loaded and appends the indices that were
// not loaded before to batch.
func (l *Loader) materialize(start, end uint64, batch []uint64) []uint64 {
	for c := start; c <= end; c++ {
		if l.loaded.Get(int(c)) {
			continue
		}
		l.loaded.Set(int(c), true)
		batch = append(batch, c)

		if l.empty || c < l.min {
			l.min = c
		}
		if l.empty || c > l.max {
			l.max = c
		}
		l.empty = false
	}
	return batch
}

// Loaded reports whether the cluster has been materialized.
func (l *Loader) Loaded(cluster uint64) bool {
	if l.empty || cluster >= l.total {
		return false
	}
	return l.loaded.Get(int(cluster))
}

// Empty reports whether nothing has been materialized yet.
func (l *Loader) Empty() bool {
	return l.empty
}

// Min returns the lowest materialized cluster. Only valid when !Empty.
func (l *Loader) Min() uint64 {
	return l.min
}

// Max returns the highest materialized cluster. Only valid when !Empty.
func (l *Loader) Max() uint64 {
	return l.max
}

// TotalClusters returns the volume size this loader clamps against, 0 when
// unknown.
func (l *Loader) TotalClusters() uint64 {
	return l.total
}
