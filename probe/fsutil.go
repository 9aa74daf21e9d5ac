package probe

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/avoronov/clustermap"
)

// invalidLCN is what fsutil reports for runs with no physical location, e.g.
// resident data stored directly in the MFT record.
const invalidLCN = ^uint64(0)

// ParseQueryExtents decodes `fsutil file queryextents` output into extents.
// Each extent line carries three labeled hex numbers:
//
//	VCN: 0x0    Clusters: 0x10    LCN: 0x2e42022
//
// The physical run starts at LCN and spans Clusters clusters, so it ends at
// LCN + Clusters - 1. Lines that don't carry both a cluster count and a valid
// LCN are ignored, which also covers localized "no extents" messages and the
// tool's banner lines. Returned runs always satisfy Start <= End.
func ParseQueryExtents(r io.Reader) clustermap.FileExtents {
	var extents clustermap.FileExtents

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())

		var count, lcn uint64
		var haveCount, haveLCN bool
		for i := 0; i+1 < len(fields); i++ {
			switch strings.TrimSuffix(fields[i], ":") {
			case "Clusters":
				count, haveCount = parseHex(fields[i+1])
			case "LCN":
				lcn, haveLCN = parseHex(fields[i+1])
			}
		}

		if !haveCount || !haveLCN || count == 0 || lcn == invalidLCN {
			continue
		}
		extents = append(
			extents,
			clustermap.ClusterRange{Start: lcn, End: lcn + count - 1})
	}
	return extents
}

func parseHex(field string) (uint64, bool) {
	value, err := strconv.ParseUint(strings.TrimPrefix(field, "0x"), 16, 64)
	if err != nil {
		return 0, false
	}
	return value, true
}
