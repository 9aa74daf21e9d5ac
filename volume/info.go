package volume

import (
	"bufio"
	"bytes"
	"io"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
)

// Info reports volume-wide metadata. TotalClusters returns 0 when the count
// cannot be determined; callers must treat 0 as "unknown" and never index or
// clamp against it.
type Info interface {
	TotalClusters(volume string) uint64
}

// FsutilInfo fetches the total cluster count from `fsutil fsinfo ntfsinfo`.
type FsutilInfo struct{}

func (FsutilInfo) TotalClusters(volume string) uint64 {
	// fsutil wants "C:", not "C:\".
	volume = strings.TrimSuffix(volume, string(filepath.Separator))
	output, err := exec.Command("fsutil", "fsinfo", "ntfsinfo", volume).Output()
	if err != nil {
		return 0
	}
	return ParseNtfsInfo(bytes.NewReader(output))
}

// ParseNtfsInfo extracts the total cluster count from `fsutil fsinfo
// ntfsinfo` output. The figure sits on a "Total Clusters" line, either as a
// hex value or as a grouped decimal, optionally followed by a parenthesized
// size. Localized builds keep the "label : value" shape, so matching is
// case-insensitive on the label and tolerant of digit grouping in the value.
// Returns 0 when no such line parses.
func ParseNtfsInfo(r io.Reader) uint64 {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		label, value, found := strings.Cut(scanner.Text(), ":")
		if !found || !strings.Contains(strings.ToLower(label), "total clusters") {
			continue
		}

		if open := strings.IndexByte(value, '('); open >= 0 {
			value = value[:open]
		}
		value = strings.TrimSpace(value)

		if strings.HasPrefix(value, "0x") {
			n, err := strconv.ParseUint(strings.TrimPrefix(value, "0x"), 16, 64)
			if err != nil {
				return 0
			}
			return n
		}

		digits := strings.Map(keepDigits, value)
		if digits == "" {
			continue
		}
		n, err := strconv.ParseUint(digits, 10, 64)
		if err != nil {
			return 0
		}
		return n
	}
	return 0
}

func keepDigits(r rune) rune {
	if r >= '0' && r <= '9' {
		return r
	}
	return -1
}
