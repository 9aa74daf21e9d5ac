package export_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avoronov/clustermap"
	"github.com/avoronov/clustermap/export"
)

func TestWriteCSV__SortedByPathThenStart(t *testing.T) {
	files := clustermap.ClusterMap{
		"b.bin": {{Start: 30, End: 40}},
		"a.bin": {{Start: 100, End: 104}, {Start: 5, End: 9}},
	}

	var out bytes.Buffer
	require.NoError(t, export.WriteCSV(&out, files))

	expected := "path,start_cluster,end_cluster,clusters\n" +
		"a.bin,5,9,5\n" +
		"a.bin,100,104,5\n" +
		"b.bin,30,40,11\n"
	assert.Equal(t, expected, out.String())
}

func TestWriteCSV__EmptyMap(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, export.WriteCSV(&out, clustermap.ClusterMap{}))
	assert.Equal(t, "path,start_cluster,end_cluster,clusters\n", out.String())
}
