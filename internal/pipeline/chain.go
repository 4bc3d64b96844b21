package pipeline

import (
	"context"
	"fmt"

	"kvizgrad/internal/table"
	"kvizgrad/internal/telemetry"
)

// Transformer is one normalization step: a pure function of the input table
// plus its own configuration. Output shape equals input shape unless the
// transformer is column-scoped.
type Transformer interface {
	Name() string
	Transform(ctx context.Context, t *table.Table) (*table.Table, error)
}

// Chain applies transformers in order, threading the table through. An empty
// chain is the identity. Any stage error aborts the whole chain.
type Chain struct {
	stages []Transformer
}

func NewChain(stages ...Transformer) *Chain {
	return &Chain{stages: stages}
}

func (c *Chain) Add(t Transformer) { c.stages = append(c.stages, t) }

func (c *Chain) Run(ctx context.Context, t *table.Table) (*table.Table, error) {
	cur := t
	for _, stage := range c.stages {
		out, err := stage.Transform(ctx, cur)
		if err != nil {
			return nil, fmt.Errorf("stage %s: %w", stage.Name(), err)
		}
		telemetry.StageApplications.WithLabelValues(stage.Name()).Inc()
		cur = out
	}
	return cur, nil
}

/*──────── column scoping ───────*/

type columnScope struct {
	inner Transformer
	cols  []string
}

// Columns restricts inner to the named columns: each one is run through
// inner as a single-column table and merged back at its position. Unlisted
// columns pass through untouched.
func Columns(inner Transformer, cols ...string) Transformer {
	return &columnScope{inner: inner, cols: cols}
}

func (s *columnScope) Name() string { return s.inner.Name() }

func (s *columnScope) Transform(ctx context.Context, t *table.Table) (*table.Table, error) {
	cur := t
	for _, name := range s.cols {
		sub, err := cur.Select(name)
		if err != nil {
			return nil, err
		}
		out, err := s.inner.Transform(ctx, sub)
		if err != nil {
			return nil, fmt.Errorf("column %s: %w", name, err)
		}
		cur, err = cur.Merge(out)
		if err != nil {
			return nil, err
		}
	}
	return cur, nil
}
