// SPDX-License-Identifier: MIT

package pipeline

import (
	"context"
	"fmt"
	"runtime"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Params is one (λ, q) point of a sweep.
type Params struct {
	Lambda   float64 `json:"lambda"`
	Quantile float64 `json:"quantile"`
}

// SweepItem is the outcome for one Params. Exactly one of Result and Err is set.
type SweepItem struct {
	Params
	Result *Result `json:"result,omitempty"`
	Err    error   `json:"-"`
	Error  string  `json:"error,omitempty"`
}

// Grid returns the Cartesian product of lambdas × quantiles, λ-major.
func Grid(lambdas, quantiles []float64) []Params {
	out := make([]Params, 0, len(lambdas)*len(quantiles))
	for _, l := range lambdas {
		for _, q := range quantiles {
			out = append(out, Params{Lambda: l, Quantile: q})
		}
	}

	return out
}

// Sweep evaluates every point of grid with at most workers concurrent
// recomputations (workers ≤ 0 means GOMAXPROCS). Items come back in grid
// order. A failing point (e.g. matrix.ErrSingular at λ=0) is recorded in its
// item and does not stop the sweep; only cancellation of ctx does, in which
// case ctx's error is returned.
func (p *Pipeline) Sweep(ctx context.Context, grid []Params, workers int) ([]SweepItem, error) {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	items := make([]SweepItem, len(grid))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, prm := range grid {
		i, prm := i, prm
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			res, err := p.Recompute(prm.Lambda, prm.Quantile)
			items[i] = SweepItem{Params: prm, Result: res, Err: err}
			if err != nil {
				items[i].Error = err.Error()
			}

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("pipeline.Sweep: %w", err)
	}

	var failed int
	for _, it := range items {
		if it.Err != nil {
			failed++
		}
	}
	p.logger.Info("sweep finished",
		zap.Int("points", len(grid)),
		zap.Int("failed", failed),
		zap.Int("workers", workers))

	return items, nil
}
