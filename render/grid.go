// Package render is the thin presentation adapter: it reads core state and
// paints it, never the other way around.
package render

import (
	"io"

	"github.com/noxer/bytewriter"

	"github.com/avoronov/clustermap"
	"github.com/avoronov/clustermap/index"
	"github.com/avoronov/clustermap/viewport"
)

// Indicator cells, one byte per cluster.
const (
	Highlighted = '#' // belongs to the highlighted file
	Owned       = '+' // belongs to some other mapped file
	Free        = '.' // materialized, owned by nobody
	Unloaded    = ' ' // outside the materialized window
)

// DefaultColumns is the row width used when the caller doesn't size the grid
// to a terminal.
const DefaultColumns = 64

// Grid paints the materialized cluster window as rows of indicator cells.
// Rows are aligned so that a cluster always lands in row index/columns,
// matching how a scrollable grid addresses its cells; clusters inside the
// row span that were never materialized stay blank.
func Grid(
	w io.Writer,
	vp *viewport.Loader,
	idx *index.Index,
	highlighted clustermap.FileExtents,
	columns int,
) error {
	if vp == nil || vp.Empty() {
		return nil
	}
	if columns <= 0 {
		columns = DefaultColumns
	}

	row := make([]byte, columns)
	firstRowStart := vp.Min() - vp.Min()%uint64(columns)

	for base := firstRowStart; base <= vp.Max(); base += uint64(columns) {
		cells := bytewriter.New(row)
		for i := 0; i < columns; i++ {
			if _, err := cells.Write([]byte{cell(base+uint64(i), vp, idx, highlighted)}); err != nil {
				return err
			}
		}
		if _, err := w.Write(row); err != nil {
			return err
		}
		if _, err := w.Write([]byte{'\n'}); err != nil {
			return err
		}
	}
	return nil
}

func cell(
	cluster uint64,
	vp *viewport.Loader,
	idx *index.Index,
	highlighted clustermap.FileExtents,
) byte {
	if !vp.Loaded(cluster) {
		return Unloaded
	}
	if highlighted.Contains(cluster) {
		return Highlighted
	}
	if _, _, ok := idx.Owner(cluster); ok {
		return Owned
	}
	return Free
}

// Columns returns how many cluster cells fit in a container of the given
// width, given the cell size and spacing the grid draws with. Mirrors the
// sizing the scroll surface uses so rendered rows line up with it.
func Columns(containerWidth, cellWidth, spacing int) int {
	if cellWidth+spacing <= 0 {
		return DefaultColumns
	}
	columns := containerWidth / (cellWidth + spacing)
	if columns < 1 {
		return 1
	}
	return columns
}
