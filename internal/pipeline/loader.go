// Package pipeline parses batches of import files in parallel.
package pipeline

import (
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/theirongolddev/finplan/internal/source"
)

// FileResult is the parse output of one import file.
type FileResult struct {
	File source.DiscoveredFile
	source.ParseResult
}

// LoadResult holds the output of loading a batch of import files.
type LoadResult struct {
	Files       []FileResult // in input order, unreadable files included
	TotalFiles  int
	ParsedFiles int
	FileErrors  int
	Incomes     int
	Expenses    int
	Skipped     int
}

// ProgressFunc is called during loading to report progress.
// current is the number of files processed so far, total is the total count.
type ProgressFunc func(current, total int)

// Load parses files with a bounded worker pool. Per-file I/O errors are
// counted in FileErrors and kept on the matching FileResult.
func Load(files []source.DiscoveredFile, progressFn ProgressFunc) *LoadResult {
	result := &LoadResult{TotalFiles: len(files)}
	if len(files) == 0 {
		return result
	}

	numWorkers := min(max(runtime.GOMAXPROCS(0), 1), len(files))

	work := make(chan int, len(files))
	results := make([]FileResult, len(files))
	var wg sync.WaitGroup
	var processed atomic.Int64

	for i := range files {
		work <- i
	}
	close(work)

	wg.Add(numWorkers)
	for range numWorkers {
		go func() {
			defer wg.Done()
			for idx := range work {
				results[idx] = FileResult{File: files[idx], ParseResult: source.ParseFile(files[idx])}
				n := processed.Add(1)
				if progressFn != nil {
					progressFn(int(n), len(files))
				}
			}
		}()
	}

	wg.Wait()

	result.Files = results
	for _, fr := range results {
		if fr.Err != nil {
			result.FileErrors++
			continue
		}
		result.ParsedFiles++
		result.Incomes += len(fr.Incomes)
		result.Expenses += len(fr.Expenses)
		result.Skipped += fr.Skipped
	}
	return result
}
