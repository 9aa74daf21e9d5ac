// Package index answers cluster-ownership queries over one load's cluster
// map. The viewport fires one ownership query per visible cluster per redraw,
// so lookups have to be better than a linear scan across every file's every
// extent.
package index

import (
	"sort"

	"github.com/avoronov/clustermap"
)

// run is one flattened extent with its owning file.
type run struct {
	start uint64
	end   uint64
	path  string
}

// Index is an immutable, start-ordered view of every extent on the volume.
// Build one per load and discard it with the map it was built from.
type Index struct {
	runs  []run
	files clustermap.ClusterMap
}

// Build flattens the map's extents into one sorted run list. Cost is
// O(n log n) in the total number of extents.
func Build(files clustermap.ClusterMap) *Index {
	total := 0
	for _, extents := range files {
		total += len(extents)
	}

	runs := make([]run, 0, total)
	for path, extents := range files {
		for _, r := range extents {
			runs = append(runs, run{start: r.Start, end: r.End, path: path})
		}
	}
	sort.Slice(runs, func(i, j int) bool {
		return runs[i].start < runs[j].start
	})

	return &Index{runs: runs, files: files}
}

// Owner returns the file whose extents contain the cluster, along with that
// file's full extent list, or ok=false when no mapped file owns it.
//
// Valid NTFS volumes never allocate one cluster to two files, so the first
// containing run found by the binary search is the unique owner; no
// tie-break is needed. If corrupt data ever violated that invariant, which
// file wins is unspecified.
func (idx *Index) Owner(cluster uint64) (path string, extents clustermap.FileExtents, ok bool) {
	// Runs are sorted by start and disjoint, so their ends are sorted too:
	// the candidate is the first run ending at or after the cluster.
	i := sort.Search(len(idx.runs), func(i int) bool {
		return idx.runs[i].end >= cluster
	})
	if i == len(idx.runs) || idx.runs[i].start > cluster {
		return "", nil, false
	}
	return idx.runs[i].path, idx.files[idx.runs[i].path], true
}

// Len returns the number of extents in the index.
func (idx *Index) Len() int {
	return len(idx.runs)
}
