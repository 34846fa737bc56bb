package app

import (
	"context"
	"errors"
	"fmt"
	"runtime"

	"github.com/google/uuid"

	"github.com/confsift/confsift/internal/ctxlog"
	"github.com/confsift/confsift/internal/emit"
	"github.com/confsift/confsift/internal/fsutil"
	"github.com/confsift/confsift/internal/profile"
	"github.com/confsift/confsift/internal/scanner"
)

// Run executes one scan: resolve the profile, discover conf files, parse
// and project them in parallel, then stream the records to the output
// writer. It returns an error when the scan could not run at all or when
// any file failed to parse; per-file failures never abort the other files.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run started.")

	cfg := a.config
	if cfg.ProfilePath != "" {
		prof, err := profile.Load(ctx, cfg.ProfilePath)
		if err != nil {
			return err
		}
		a.applyProfile(prof)
	}
	if len(cfg.Roots) == 0 {
		return errors.New("no scan roots configured")
	}

	format, err := emit.ParseFormat(cfg.Format)
	if err != nil {
		return err
	}

	runID := cfg.RunID
	if runID == "" {
		runID = uuid.NewString()
	}
	workers := cfg.WorkerCount
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	a.logger.Info("Scan starting.", "run_id", runID, "roots", cfg.Roots, "workers", workers)

	if cfg.HealthcheckPort > 0 {
		a.startHealthcheck(ctx, cfg.HealthcheckPort)
		defer a.stopHealthcheck(ctx)
	}

	files, err := fsutil.FindConfFiles(cfg.Roots)
	if err != nil {
		return fmt.Errorf("failed to discover conf files: %w", err)
	}
	if len(files) == 0 {
		a.logger.Warn("No .conf files found under the configured roots.")
		return nil
	}
	a.logger.Debug("Discovered conf files.", "count", len(files))

	results := scanner.Scan(ctx, files, workers, runID, a.registry)

	var failed, warnings, records int
	for _, res := range results {
		if res.Err != nil {
			failed++
			a.logger.Error("File scan failed.", "path", res.Path, "error", res.Err)
			continue
		}
		warnings += len(res.Warnings)
		records += len(res.Records)
	}

	if err := emit.Write(a.outW, format, results); err != nil {
		return fmt.Errorf("failed to write records: %w", err)
	}

	a.logger.Info("Scan finished.", "files", len(files), "records", records, "warnings", warnings, "failed_files", failed)
	if failed > 0 {
		return fmt.Errorf("%d of %d files failed to parse", failed, len(files))
	}
	return nil
}

// applyProfile fills configuration gaps from the profile and installs its
// filename→kind overrides. Explicit config values win over the profile.
func (a *App) applyProfile(prof *profile.Profile) {
	cfg := a.config
	if len(cfg.Roots) == 0 {
		cfg.Roots = prof.Roots
	}
	if cfg.Format == "" {
		cfg.Format = prof.Format
	}
	if cfg.WorkerCount == 0 {
		cfg.WorkerCount = prof.Workers
	}
	if cfg.RunID == "" {
		cfg.RunID = prof.RunID
	}
	for name, kind := range prof.Kinds {
		a.registry.MapFile(name, kind)
	}
}
