package clustermap_test

import (
	"testing"

	"github.com/avoronov/clustermap"
)

func TestFileExtents__Contains(t *testing.T) {
	extents := clustermap.FileExtents{{Start: 10, End: 20}, {Start: 30, End: 40}}

	cases := []struct {
		cluster  uint64
		expected bool
		name     string
	}{
		{10, true, "first range start"},
		{20, true, "first range end"},
		{15, true, "inside first range"},
		{25, false, "gap between ranges"},
		{30, true, "second range start"},
		{40, true, "second range end"},
		{9, false, "before everything"},
		{41, false, "after everything"},
	}
	for _, test := range cases {
		t.Run(test.name, func(t *testing.T) {
			if extents.Contains(test.cluster) != test.expected {
				t.Errorf(
					"Contains(%d) should be %v", test.cluster, test.expected)
			}
		})
	}
}

func TestFileExtents__TotalClusters(t *testing.T) {
	extents := clustermap.FileExtents{{Start: 10, End: 20}, {Start: 30, End: 30}}
	if n := extents.TotalClusters(); n != 12 {
		t.Errorf("expected 12 clusters, got %d", n)
	}
	if n := clustermap.FileExtents(nil).TotalClusters(); n != 0 {
		t.Errorf("empty extents should cover 0 clusters, got %d", n)
	}
}
