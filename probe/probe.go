// Package probe queries the physical cluster layout of individual files.
package probe

import (
	"bytes"
	"os/exec"

	"github.com/avoronov/clustermap"
)

// Prober reports the physical extents of one file. Extent information is
// advisory; implementations must never fail, degrading to an empty extent
// list instead, and must be safe to call concurrently for different paths.
type Prober interface {
	Probe(path string) clustermap.FileExtents
}

// FsutilProber queries extents by running `fsutil file queryextents` and
// parsing its output. Empty files, resident files, paths the tool does not
// support, and any execution failure all come back as "no extents".
//
// The zero value is ready to use and safe for concurrent use: each probe
// spawns its own process and keeps no shared state.
type FsutilProber struct{}

func (FsutilProber) Probe(path string) clustermap.FileExtents {
	output, err := exec.Command("fsutil", "file", "queryextents", path).Output()
	if err != nil {
		return nil
	}
	return ParseQueryExtents(bytes.NewReader(output))
}
