package engine

import (
	"context"
	"fmt"
	"io"

	"kvizgrad/internal/config"
	"kvizgrad/internal/logging"
	"kvizgrad/internal/pipeline"
	"kvizgrad/internal/spec"
	"kvizgrad/internal/spell"
	"kvizgrad/internal/telemetry"
	"kvizgrad/sink/report"
)

// Bootstrap wires the run: config, suggester, per-file chains, metrics.
// Diagnostics go to out as newline-delimited JSON.
func Bootstrap(ctx context.Context, configPath string, out io.Writer) (*Engine, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	var sugg spell.Suggester
	if cfg.WordList != "" {
		wl, err := spell.LoadWordList(cfg.WordList)
		if err != nil {
			return nil, err
		}
		wl.SetMaxDistance(cfg.MaxDistance)
		logging.L().Info("word list loaded", "path", cfg.WordList, "words", wl.Len())
		sugg = wl
	}

	rep := report.NewConsole(out)

	chains := make(map[string]*pipeline.Chain, len(spec.Jobs))
	for _, job := range spec.Jobs {
		c, err := pipeline.Compile(job.Chain, sugg, rep)
		if err != nil {
			return nil, fmt.Errorf("pipeline %s: %w", job.File, err)
		}
		chains[job.File] = c
	}

	if cfg.MetricsPort > 0 {
		telemetry.Expose(cfg.MetricsPort)
	}

	return &Engine{cfg: cfg, chains: chains}, nil
}
