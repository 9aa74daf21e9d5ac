// Package testing holds shared fixtures for the test suites: canned probers,
// on-disk volume trees, and fsutil transcript streams.
package testing

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xaionaro-go/bytesextra"

	"github.com/avoronov/clustermap"
)

// StaticProber serves extents from a fixed table. Lookups don't mutate
// anything, so it is safe for the scanner's concurrent workers as-is.
type StaticProber struct {
	Extents map[string]clustermap.FileExtents
}

func (p StaticProber) Probe(path string) clustermap.FileExtents {
	return p.Extents[path]
}

// StaticInfo reports a fixed total cluster count.
type StaticInfo struct {
	Total uint64
}

func (i StaticInfo) TotalClusters(string) uint64 {
	return i.Total
}

// CreateVolumeTree lays out a directory tree under a temp dir and returns its
// root. Keys are slash-separated relative paths; a trailing slash creates an
// empty directory, anything else a small regular file.
func CreateVolumeTree(t *testing.T, entries []string) string {
	root := t.TempDir()
	for _, entry := range entries {
		path := filepath.Join(root, filepath.FromSlash(strings.TrimSuffix(entry, "/")))
		if strings.HasSuffix(entry, "/") {
			require.NoError(t, os.MkdirAll(path, 0o755))
			continue
		}
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))
	}
	return root
}

// TranscriptStream returns a seekable stream over a canned command
// transcript, the way the probe and volume parsers consume real tool output.
func TranscriptStream(t *testing.T, lines ...string) io.ReadSeeker {
	transcript := strings.Join(lines, "\r\n") + "\r\n"
	require.Greater(t, len(transcript), 0, "transcript is empty")
	return bytesextra.NewReadWriteSeeker([]byte(transcript))
}
