package volume_test

import (
	"fmt"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avoronov/clustermap"
	cmtest "github.com/avoronov/clustermap/testing"
	"github.com/avoronov/clustermap/volume"
)

func TestScanner__MapsProbedFiles(t *testing.T) {
	root := cmtest.CreateVolumeTree(t, []string{
		"root.bin",
		"docs/a.txt",
		"docs/deep/b.txt",
		"media/c.iso",
		"empty.txt",
	})

	prober := cmtest.StaticProber{Extents: map[string]clustermap.FileExtents{
		filepath.Join(root, "root.bin"):              {{Start: 5, End: 9}},
		filepath.Join(root, "docs", "a.txt"):         {{Start: 100, End: 104}},
		filepath.Join(root, "docs", "deep", "b.txt"): {{Start: 200, End: 210}, {Start: 300, End: 301}},
		filepath.Join(root, "media", "c.iso"):        {{Start: 400, End: 499}},
		// empty.txt has no entry: the probe degrades to "no extents".
	}}

	files, report := volume.NewScanner(prober).Scan(root)

	require.NoError(t, report.Errors)
	assert.Equal(t, 4, report.FilesMapped)
	assert.Equal(t, 0, report.EntriesSkipped)
	assert.Len(t, files, 4)
	assert.Equal(
		t,
		clustermap.FileExtents{{Start: 200, End: 210}, {Start: 300, End: 301}},
		files[filepath.Join(root, "docs", "deep", "b.txt")])
	assert.NotContains(t, files, filepath.Join(root, "empty.txt"))
}

func TestScanner__SkipsReservedDirectories(t *testing.T) {
	root := cmtest.CreateVolumeTree(t, []string{
		"$RECYCLE.BIN/trash.txt",
		"$MFT/whatever.bin",
		"System Volume Information/tracking.log",
		"kept/a.txt",
	})

	// Every file probes successfully; only exclusion rules can keep one out.
	extents := map[string]clustermap.FileExtents{}
	for _, rel := range []string{
		"$RECYCLE.BIN/trash.txt",
		"$MFT/whatever.bin",
		"System Volume Information/tracking.log",
		"kept/a.txt",
	} {
		extents[filepath.Join(root, filepath.FromSlash(rel))] =
			clustermap.FileExtents{{Start: 1, End: 1}}
	}

	files, report := volume.NewScanner(cmtest.StaticProber{Extents: extents}).Scan(root)

	require.NoError(t, report.Errors)
	assert.Len(t, files, 1)
	assert.Contains(t, files, filepath.Join(root, "kept", "a.txt"))
}

func TestScanner__ManyFilesAcrossWorkers(t *testing.T) {
	entries := make([]string, 0, 200)
	extentTable := map[string]clustermap.FileExtents{}
	for dir := 0; dir < 20; dir++ {
		for file := 0; file < 10; file++ {
			entries = append(entries, fmt.Sprintf("d%02d/f%02d.bin", dir, file))
		}
	}
	root := cmtest.CreateVolumeTree(t, entries)
	for i, rel := range entries {
		start := uint64(i) * 10
		extentTable[filepath.Join(root, filepath.FromSlash(rel))] =
			clustermap.FileExtents{{Start: start, End: start + 4}}
	}

	files, report := volume.NewScanner(cmtest.StaticProber{Extents: extentTable}).Scan(root)

	require.NoError(t, report.Errors)
	assert.Equal(t, len(entries), report.FilesMapped)
	assert.Len(t, files, len(entries))
	for path, expected := range extentTable {
		assert.Equal(t, expected, files[path], "wrong extents for %s", path)
	}
}

func TestScanner__UnreadableRoot(t *testing.T) {
	files, report := volume.NewScanner(cmtest.StaticProber{}).Scan(
		filepath.Join(t.TempDir(), "does-not-exist"))

	assert.Empty(t, files)
	assert.Equal(t, 1, report.EntriesSkipped)
	assert.Error(t, report.Errors)
}
