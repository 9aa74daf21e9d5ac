package session

import (
	"github.com/avoronov/clustermap"
	"github.com/avoronov/clustermap/index"
)

// Selection tracks the currently highlighted file.
type Selection struct {
	Path    string
	Extents clustermap.FileExtents
}

// Restyle tells the presentation layer which clusters change indicator style
// after the highlight switches files. It is a pure function of the old and
// new extents; the core keeps no widget state.
type Restyle struct {
	// ToOwned is the previous highlight, to be repainted in the plain
	// "owned by some file" style.
	ToOwned clustermap.FileExtents
	// ToHighlighted is the new highlight.
	ToHighlighted clustermap.FileExtents
}

// Select replaces the highlighted file unconditionally and reports the
// restyle work the switch implies.
func (s *Selection) Select(path string, extents clustermap.FileExtents) Restyle {
	previous := s.Extents
	s.Path = path
	s.Extents = extents
	return Restyle{ToOwned: previous, ToHighlighted: extents}
}

// ClickKind classifies where a cluster click landed.
type ClickKind int

const (
	// Unowned: no mapped file owns the cluster. No state changes.
	Unowned ClickKind = iota
	// SameFileDetail: the cluster belongs to the highlighted file; the
	// caller should show a detail view of its extents.
	SameFileDetail
	// OtherFileSelected: the cluster belongs to a different mapped file;
	// the caller must switch the highlight via Select.
	OtherFileSelected
)

// ClickOutcome is the core's answer to a cluster click. Path and Extents are
// set for every kind except Unowned.
type ClickOutcome struct {
	Kind    ClickKind
	Cluster uint64
	Path    string
	Extents clustermap.FileExtents
}

// ResolveClick decides what a click on the cluster means. Membership in the
// highlighted file is tested against its own extents first, without touching
// the index; ranges are inclusive on both ends, and one file's ranges never
// overlap, so membership is unambiguous.
func (s *Selection) ResolveClick(cluster uint64, idx *index.Index) ClickOutcome {
	if s.Extents.Contains(cluster) {
		return ClickOutcome{
			Kind:    SameFileDetail,
			Cluster: cluster,
			Path:    s.Path,
			Extents: s.Extents,
		}
	}

	path, extents, ok := idx.Owner(cluster)
	if !ok {
		return ClickOutcome{Kind: Unowned, Cluster: cluster}
	}
	return ClickOutcome{
		Kind:    OtherFileSelected,
		Cluster: cluster,
		Path:    path,
		Extents: extents,
	}
}
