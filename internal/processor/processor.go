package processor

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"sync"

	"github.com/charmbracelet/log"

	"cull/pkg/imgutil"
)

// Run classifies every regular file directly under root and returns the
// per-file verdicts sorted lexicographically by filename. A missing or
// unreadable directory fails before any per-file work; a single unreadable
// or undecodable file only degrades to VerdictCorrupted and never aborts
// the batch.
func Run(ctx context.Context, root string, opts Options, updates chan<- ProgressUpdate) (Summary, []Result, error) {
	summary := Summary{}

	info, err := os.Stat(root)
	if err != nil {
		return summary, nil, err
	}
	if !info.IsDir() {
		return summary, nil, fmt.Errorf("%s: not a directory", root)
	}

	absRoot, err := filepath.Abs(root)
	if err != nil {
		return summary, nil, err
	}

	entries, err := os.ReadDir(absRoot)
	if err != nil {
		return summary, nil, err
	}

	var files []os.DirEntry
	for _, entry := range entries {
		if entry.Type().IsRegular() {
			files = append(files, entry)
		}
	}

	summary.Total = len(files)
	if updates != nil {
		updates <- ProgressUpdate{TotalDelta: len(files)}
	}

	jobs := make(chan Job)
	results := make(chan Result)

	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			worker(ctx, jobs, results, opts)
		}()
	}

	var collected []Result
	collectorDone := make(chan struct{})
	go func() {
		defer close(collectorDone)
		for res := range results {
			summary.Processed++
			summary.BytesScanned += res.Size

			update := ProgressUpdate{ProcessedDelta: 1, BytesDelta: res.Size}
			switch res.Verdict {
			case VerdictUniform:
				summary.Uniform++
				update.UniformDelta = 1
			case VerdictCorrupted:
				summary.Corrupted++
				update.CorruptedDelta = 1
			default:
				summary.Kept++
			}
			if updates != nil {
				updates <- update
			}

			collected = append(collected, res)
		}
	}()

	producerErr := make(chan error, 1)
	go func() {
		defer close(jobs)

		for _, entry := range files {
			job := Job{
				Path: filepath.Join(absRoot, entry.Name()),
				Name: entry.Name(),
			}
			if ctx == nil {
				jobs <- job
				continue
			}
			select {
			case jobs <- job:
			case <-ctx.Done():
				producerErr <- ctx.Err()
				return
			}
		}
		producerErr <- nil
	}()

	wg.Wait()
	close(results)
	<-collectorDone

	if err := <-producerErr; err != nil {
		return summary, collected, err
	}

	sort.Slice(collected, func(i, j int) bool {
		return collected[i].Name < collected[j].Name
	})

	return summary, collected, nil
}

// FlagDirectory is the flag-only form of Run: it returns the filenames of
// every file judged noise, sorted lexicographically. It deletes nothing.
func FlagDirectory(ctx context.Context, root string) ([]string, error) {
	_, results, err := Run(ctx, root, Options{}, nil)
	if err != nil {
		return nil, err
	}

	flagged := make([]string, 0, len(results))
	for _, res := range results {
		if res.Verdict.Flagged() {
			flagged = append(flagged, res.Name)
		}
	}
	return flagged, nil
}

func worker(ctx context.Context, jobs <-chan Job, results chan<- Result, opts Options) {
	for job := range jobs {
		if ctx != nil {
			if err := ctx.Err(); err != nil {
				return
			}
		}

		res := classifyFile(job)
		if opts.Logger != nil {
			logResult(opts.Logger, res)
		}
		results <- res
	}
}

// classifyFile produces exactly one verdict for one file. Every failure
// path resolves to VerdictCorrupted so the batch is a total function over
// the directory listing.
func classifyFile(job Job) Result {
	res := Result{Path: job.Path, Name: job.Name}

	file, err := os.Open(job.Path)
	if err != nil {
		res.Verdict = VerdictCorrupted
		res.Reason = err.Error()
		return res
	}
	defer file.Close()

	if info, err := file.Stat(); err == nil {
		res.Size = info.Size()
	}

	kind, err := imgutil.SniffReader(file)
	if err != nil {
		res.Verdict = VerdictCorrupted
		res.Reason = err.Error()
		return res
	}
	if kind == imgutil.KindUnknown {
		res.Verdict = VerdictCorrupted
		res.Reason = imgutil.ErrUnsupportedFormat.Error()
		return res
	}

	if _, err := file.Seek(0, io.SeekStart); err != nil {
		res.Verdict = VerdictCorrupted
		res.Reason = err.Error()
		return res
	}

	img, err := imgutil.DecodeKind(file, kind)
	if err != nil {
		res.Verdict = VerdictCorrupted
		res.Reason = err.Error()
		return res
	}

	res.Verdict = ClassifyImage(img)
	if res.Verdict == VerdictUniform {
		bounds := img.Bounds()
		res.Color = img.At(bounds.Min.X, bounds.Min.Y)
	}
	return res
}

func logResult(logger *log.Logger, res Result) {
	switch res.Verdict {
	case VerdictUniform:
		logger.Info("flagged", "file", res.Name, "verdict", res.Verdict)
	case VerdictCorrupted:
		logger.Info("flagged", "file", res.Name, "verdict", res.Verdict, "reason", res.Reason)
	default:
		logger.Debug("kept", "file", res.Name)
	}
}
