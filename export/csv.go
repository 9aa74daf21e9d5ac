// Package export emits one-shot reports of a cluster map. Reports are for
// human or spreadsheet consumption; nothing in this program ever reads one
// back.
package export

import (
	"io"
	"sort"

	"github.com/gocarina/gocsv"

	"github.com/avoronov/clustermap"
)

// ExtentRecord is one extent of one file in the CSV report.
type ExtentRecord struct {
	Path     string `csv:"path"`
	Start    uint64 `csv:"start_cluster"`
	End      uint64 `csv:"end_cluster"`
	Clusters uint64 `csv:"clusters"`
}

// WriteCSV writes one row per extent, ordered by path and then by extent
// start so the output is stable regardless of map iteration order.
func WriteCSV(w io.Writer, files clustermap.ClusterMap) error {
	records := make([]ExtentRecord, 0, len(files))
	for path, extents := range files {
		for _, r := range extents {
			records = append(records, ExtentRecord{
				Path:     path,
				Start:    r.Start,
				End:      r.End,
				Clusters: r.Count(),
			})
		}
	}

	sort.Slice(records, func(i, j int) bool {
		if records[i].Path != records[j].Path {
			return records[i].Path < records[j].Path
		}
		return records[i].Start < records[j].Start
	})

	return gocsv.Marshal(&records, w)
}
