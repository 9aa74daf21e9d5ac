package volume_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	cmtest "github.com/avoronov/clustermap/testing"
	"github.com/avoronov/clustermap/volume"
)

func TestParseNtfsInfo__Decimal(t *testing.T) {
	stream := cmtest.TranscriptStream(
		t,
		"NTFS Volume Serial Number :        0x2e227f24227eeec6",
		"NTFS Version      :                3.1",
		"Number Sectors    :                0x000000003a3869ff",
		"Total Clusters    :                61,083,647  ( 233.0 GB)",
		"Free Clusters     :                10,152,013  (  38.7 GB)",
	)

	assert.EqualValues(t, 61083647, volume.ParseNtfsInfo(stream))
}

func TestParseNtfsInfo__Hex(t *testing.T) {
	stream := cmtest.TranscriptStream(
		t,
		"Number Sectors :                  0x000000003a3869ff",
		"Total Clusters :                  0x0000000003a3869f",
	)

	assert.EqualValues(t, 0x3a3869f, volume.ParseNtfsInfo(stream))
}

func TestParseNtfsInfo__GroupedBySpaces(t *testing.T) {
	// Some localized fsutil builds group digits with spaces instead of commas.
	stream := cmtest.TranscriptStream(
		t,
		"Всего кластеров (Total Clusters) :     61 083 647  ( 233,0 ГБ)")

	assert.EqualValues(t, 61083647, volume.ParseNtfsInfo(stream))
}

func TestParseNtfsInfo__Unavailable(t *testing.T) {
	cases := []struct {
		transcript string
		name       string
	}{
		{"", "empty output"},
		{"Error:  The system cannot find the file specified.", "error output"},
		{"Free Clusters :   10,152,013", "no total line"},
		{"Total Clusters :   ( 233.0 GB)", "no figure on the line"},
	}
	for _, test := range cases {
		t.Run(test.name, func(t *testing.T) {
			if total := volume.ParseNtfsInfo(strings.NewReader(test.transcript)); total != 0 {
				t.Errorf("expected 0 for unknown, got %d", total)
			}
		})
	}
}
