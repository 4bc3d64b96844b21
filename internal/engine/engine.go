package engine

import (
	"context"
	"fmt"
	"path/filepath"

	"kvizgrad/internal/config"
	"kvizgrad/internal/logging"
	"kvizgrad/internal/pipeline"
	"kvizgrad/internal/spec"
	"kvizgrad/sink/csvfile"
	source "kvizgrad/source/csvfile"
)

type Engine struct {
	cfg    config.Config
	chains map[string]*pipeline.Chain // keyed by input file name
}

// Run processes every job in plan order: read, project the question/answer
// columns, run the chain, merge back, write. Fail-fast; no partial output
// recovery.
func (e *Engine) Run(ctx context.Context) error {
	for _, job := range spec.Jobs {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := e.runJob(ctx, job); err != nil {
			return fmt.Errorf("%s: %w", job.File, err)
		}
	}
	return nil
}

func (e *Engine) runJob(ctx context.Context, job spec.Job) error {
	log := logging.L().With("file", job.File, "chain", string(job.Chain))

	full, err := source.Read(filepath.Join(e.cfg.DataDir, job.File))
	if err != nil {
		return err
	}
	log.Info("loaded", "rows", full.NumRows(), "columns", full.NumColumns())

	proj, err := full.Select(spec.ColumnQuestion, spec.ColumnAnswer)
	if err != nil {
		return err
	}

	out, err := e.chains[job.File].Run(ctx, proj)
	if err != nil {
		return err
	}

	merged, err := full.Merge(out)
	if err != nil {
		return err
	}

	if err := csvfile.Write(e.cfg.OutputDir, job.File, merged); err != nil {
		return err
	}
	log.Info("written", "dir", e.cfg.OutputDir)
	return nil
}
