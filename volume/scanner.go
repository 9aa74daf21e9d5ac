// Package volume builds the cluster map for a whole volume by walking its
// directory tree and probing the extents of every regular file.
package volume

import (
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/hashicorp/go-multierror"

	"github.com/avoronov/clustermap"
	"github.com/avoronov/clustermap/probe"
)

// DefaultWorkers is the size of the probe worker pool. Extent probes are
// I/O-bound syscalls, so a handful of concurrent workers is enough to keep
// the disk busy.
const DefaultWorkers = 4

// systemDirPrefix guards the volume's protected system-information directory.
const systemDirPrefix = "System Volume Information"

// skipDir reports whether a directory must be excluded from the scan: NTFS
// metadata directories ($MFT, $RECYCLE.BIN, ...) and the protected
// system-information directory.
func skipDir(name string) bool {
	return strings.HasPrefix(name, "$") || strings.HasPrefix(name, systemDirPrefix)
}

// ScanReport carries scan diagnostics. Skipped entries never influence the
// resulting ClusterMap; they are visible here only.
type ScanReport struct {
	// FilesMapped is the number of files that ended up in the map.
	FilesMapped int
	// EntriesSkipped counts directories that could not be read.
	EntriesSkipped int
	// Errors aggregates the errors behind EntriesSkipped; nil when the whole
	// tree was readable.
	Errors error
}

// Scanner walks a volume and probes every regular file it finds. A Scanner is
// stateless between calls; the same Scanner may be reused for multiple scans.
type Scanner struct {
	Prober  probe.Prober
	Workers int
}

func NewScanner(prober probe.Prober) *Scanner {
	return &Scanner{Prober: prober, Workers: DefaultWorkers}
}

// task is one unit of work for the pool: either an independent subtree to
// walk or a single file found directly under the volume root.
type task struct {
	path  string
	isDir bool
}

// partial is one worker's private slice of the result. Workers never share a
// map; the coordinator merges partials after all workers have finished.
type partial struct {
	files   clustermap.ClusterMap
	skipped int
	errs    *multierror.Error
}

// Scan enumerates the tree rooted at root and returns the cluster map of
// every regular file whose extent probe succeeded. Entries under excluded
// directories are never visited; unreadable entries are skipped and counted
// in the report. Scan blocks until every worker has finished, so the
// returned map is complete and safe to treat as immutable.
func (s *Scanner) Scan(root string) (clustermap.ClusterMap, ScanReport) {
	workers := s.Workers
	if workers <= 0 {
		workers = DefaultWorkers
	}

	merged := clustermap.ClusterMap{}
	report := ScanReport{}
	var errs *multierror.Error

	entries, err := os.ReadDir(root)
	if err != nil {
		report.EntriesSkipped++
		report.Errors = multierror.Append(errs, err).ErrorOrNil()
		return merged, report
	}

	tasks := make(chan task)
	results := make(chan partial)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for tk := range tasks {
				results <- s.run(tk)
			}
		}()
	}
	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		defer close(tasks)
		for _, entry := range entries {
			name := entry.Name()
			if entry.IsDir() {
				if skipDir(name) {
					continue
				}
				tasks <- task{path: filepath.Join(root, name), isDir: true}
			} else if entry.Type().IsRegular() {
				tasks <- task{path: filepath.Join(root, name)}
			}
		}
	}()

	for part := range results {
		for path, extents := range part.files {
			merged[path] = extents
		}
		report.EntriesSkipped += part.skipped
		errs = multierror.Append(errs, part.errs.WrappedErrors()...)
	}

	report.FilesMapped = len(merged)
	report.Errors = errs.ErrorOrNil()
	return merged, report
}

func (s *Scanner) run(tk task) partial {
	part := partial{files: clustermap.ClusterMap{}}
	if tk.isDir {
		s.walk(tk.path, &part)
	} else {
		s.probeFile(tk.path, &part)
	}
	return part
}

// walk recurses through one subtree sequentially, accumulating into the
// worker's private partial.
func (s *Scanner) walk(dir string, part *partial) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		part.skipped++
		part.errs = multierror.Append(part.errs, err)
		return
	}

	for _, entry := range entries {
		path := filepath.Join(dir, entry.Name())
		if entry.IsDir() {
			if !skipDir(entry.Name()) {
				s.walk(path, part)
			}
		} else if entry.Type().IsRegular() {
			s.probeFile(path, part)
		}
	}
}

func (s *Scanner) probeFile(path string, part *partial) {
	if extents := s.Prober.Probe(path); len(extents) > 0 {
		part.files[path] = extents
	}
}

// Root returns the root directory of the volume containing path: the drive
// root on Windows, the filesystem root elsewhere.
func Root(path string) string {
	if vol := filepath.VolumeName(path); vol != "" {
		return vol + string(filepath.Separator)
	}
	return string(filepath.Separator)
}
