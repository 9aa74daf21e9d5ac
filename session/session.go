// Package session ties the scanner, index, viewport, and selection together
// into one interactive run. The presentation layer drives a Session with
// exactly three events: load a path, scroll near an edge, click a cluster.
// Each call completes before the next is accepted; a Session is single
// threaded by contract.
package session

import (
	"os"
	"path/filepath"

	"github.com/avoronov/clustermap"
	"github.com/avoronov/clustermap/index"
	"github.com/avoronov/clustermap/viewport"
	"github.com/avoronov/clustermap/volume"
)

// Session owns all state of one load: the cluster map, its ownership index,
// the viewport window, and the highlighted file. A failed Load leaves every
// bit of the previous load in place.
type Session struct {
	Scanner *volume.Scanner
	Info    volume.Info
	// Margin overrides viewport.DefaultMargin when non-zero.
	Margin uint64
	// ScanRoot overrides volume-root derivation when non-empty. Mainly for
	// tests; the default scans the whole volume containing the loaded path.
	ScanRoot string

	files     clustermap.ClusterMap
	idx       *index.Index
	loader    *viewport.Loader
	selection Selection
	report    volume.ScanReport
}

// New returns a session that scans with the given prober and volume info
// source.
func New(scanner *volume.Scanner, info volume.Info) *Session {
	return &Session{Scanner: scanner, Info: info}
}

// Load scans the volume containing path, rebuilds the index and viewport
// wholesale, highlights the file, and returns the first batch of cluster
// indices to materialize.
//
// An unknown total cluster count is not an error: the map and highlight are
// still built, the batch is just empty because no viewport can be computed.
// A path that does not exist returns ErrInvalidPath and mutates nothing.
func (s *Session) Load(path string) ([]uint64, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, clustermap.ErrInvalidPath.Wrap(err)
	}
	path = filepath.Clean(path)

	root := s.ScanRoot
	if root == "" {
		root = volume.Root(path)
	}

	files, report := s.Scanner.Scan(root)
	total := s.Info.TotalClusters(root)

	// Previous session state is replaced only now that the scan succeeded.
	s.files = files
	s.report = report
	s.idx = index.Build(files)
	s.loader = viewport.NewLoader(total, s.Margin)
	s.selection = Selection{}
	s.selection.Select(path, files[path])

	return s.loader.InitialLoad(s.selection.Extents), nil
}

// ScrollNear extends the loaded window beyond the given edge and returns the
// newly materialized cluster indices. The presentation layer calls this when
// the scroll position comes within its trigger threshold of either end of
// the loaded range.
func (s *Session) ScrollNear(edge viewport.Direction) ([]uint64, error) {
	if s.loader == nil {
		return nil, clustermap.ErrNoSession
	}
	return s.loader.Extend(edge), nil
}

// Click resolves a cluster click. When the click selects another file the
// highlight is switched immediately and the returned Restyle carries the
// repaint work; for every other outcome the Restyle is zero.
func (s *Session) Click(cluster uint64) (ClickOutcome, Restyle) {
	if s.idx == nil {
		return ClickOutcome{Kind: Unowned, Cluster: cluster}, Restyle{}
	}

	outcome := s.selection.ResolveClick(cluster, s.idx)
	if outcome.Kind != OtherFileSelected {
		return outcome, Restyle{}
	}
	return outcome, s.selection.Select(outcome.Path, outcome.Extents)
}

// Files returns the current load's cluster map, nil before the first load.
// The map must not be modified.
func (s *Session) Files() clustermap.ClusterMap {
	return s.files
}

// Index returns the current load's ownership index, nil before the first
// load.
func (s *Session) Index() *index.Index {
	return s.idx
}

// Viewport returns the current load's viewport loader, nil before the first
// load.
func (s *Session) Viewport() *viewport.Loader {
	return s.loader
}

// Highlighted returns the currently highlighted file.
func (s *Session) Highlighted() Selection {
	return s.selection
}

// Report returns diagnostics from the most recent scan.
func (s *Session) Report() volume.ScanReport {
	return s.report
}
