package scanner

import (
	"context"
	"fmt"
	"os"
	"sort"
	"sync"

	"github.com/confsift/confsift/internal/conf"
	"github.com/confsift/confsift/internal/ctxlog"
	"github.com/confsift/confsift/internal/project"
)

// FileResult is everything produced from one conf file.
type FileResult struct {
	Path string
	// Kind is empty when no projector is mapped for the file; the parse
	// tree is still returned.
	Kind     project.Kind
	Stanzas  []*conf.Stanza
	Warnings []conf.Warning
	Records  []project.Record
	// Err carries a per-file failure (unreadable, invalid encoding,
	// unterminated header). One bad file never aborts the scan.
	Err error
}

// Scan parses and projects the given files using the requested number of
// concurrent workers. Files are independent, so processing order between
// them is unconstrained; results are sorted by path before returning so
// the output is deterministic regardless of worker interleaving. Within
// one file, stanza and key ordering is exact.
func Scan(ctx context.Context, paths []string, workers int, runID string, reg *project.Registry) []FileResult {
	logger := ctxlog.FromContext(ctx)
	if workers < 1 {
		workers = 1
	}
	logger.Debug("Scan started.", "files", len(paths), "workers", workers)

	jobs := make(chan string)
	out := make(chan FileResult)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(workerID int) {
			defer wg.Done()
			logger.Debug("Scan worker started.", "workerID", workerID)
			for path := range jobs {
				if err := ctx.Err(); err != nil {
					out <- FileResult{Path: path, Err: err}
					continue
				}
				out <- scanFile(ctx, path, runID, reg)
			}
			logger.Debug("Scan worker finished.", "workerID", workerID)
		}(i)
	}

	go func() {
		for _, p := range paths {
			jobs <- p
		}
		close(jobs)
	}()
	go func() {
		wg.Wait()
		close(out)
	}()

	results := make([]FileResult, 0, len(paths))
	for res := range out {
		results = append(results, res)
	}
	sort.Slice(results, func(i, j int) bool { return results[i].Path < results[j].Path })

	logger.Debug("Scan complete.", "results", len(results))
	return results
}

// scanFile runs the full pipeline for one file: read, parse, project.
func scanFile(ctx context.Context, path, runID string, reg *project.Registry) FileResult {
	logger := ctxlog.FromContext(ctx).With("path", path)
	res := FileResult{Path: path}

	data, err := os.ReadFile(path)
	if err != nil {
		res.Err = fmt.Errorf("read %s: %w", path, err)
		return res
	}

	parsed, err := conf.Parse(string(data), path)
	if err != nil {
		res.Err = fmt.Errorf("parse %s: %w", path, err)
		return res
	}
	res.Stanzas = parsed.Stanzas
	res.Warnings = parsed.Warnings
	for _, w := range parsed.Warnings {
		logger.Warn("Skipped unparseable line.", "line", w.Line, "text", w.Text)
	}

	kind, ok := reg.KindForFile(path)
	if !ok {
		logger.Debug("No conf kind mapped for file, keeping parse tree only.")
		return res
	}
	res.Kind = kind

	proj, ok := reg.ForKind(kind)
	if !ok {
		logger.Debug("No projector registered for kind.", "kind", kind)
		return res
	}
	for _, st := range parsed.Stanzas {
		res.Records = append(res.Records, proj.Project(st, runID))
	}

	logger.Debug("File scanned.", "kind", kind, "stanzas", len(res.Stanzas), "records", len(res.Records), "warnings", len(res.Warnings))
	return res
}
