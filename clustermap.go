package clustermap

// ClusterRange is one contiguous run of clusters allocated to a file. Both
// endpoints are valid cluster numbers; a single-cluster run has Start == End.
type ClusterRange struct {
	Start uint64
	End   uint64
}

// Contains reports whether the cluster falls inside the run.
func (r ClusterRange) Contains(cluster uint64) bool {
	return cluster >= r.Start && cluster <= r.End
}

// Count returns the number of clusters in the run.
func (r ClusterRange) Count() uint64 {
	return r.End - r.Start + 1
}

// FileExtents is the ordered list of cluster runs belonging to one file, in
// the order the extent query reported them. Runs of a single file never
// overlap; they need not be contiguous or sorted.
type FileExtents []ClusterRange

// Contains reports whether any run in the extent list covers the cluster.
// This is a linear scan and is meant for testing a single file's extents;
// use an index.Index for queries across a whole ClusterMap.
func (e FileExtents) Contains(cluster uint64) bool {
	for _, r := range e {
		if r.Contains(cluster) {
			return true
		}
	}
	return false
}

// TotalClusters returns the number of clusters the extents cover in total.
func (e FileExtents) TotalClusters() uint64 {
	var n uint64
	for _, r := range e {
		n += r.Count()
	}
	return n
}

// ClusterMap maps file paths to their physical extents for every regular file
// on a scanned volume whose extent probe returned something. It is built once
// per load and must be treated as immutable until replaced by the next load.
// Files with no allocated extents are absent.
type ClusterMap map[string]FileExtents
