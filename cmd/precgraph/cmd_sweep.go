// SPDX-License-Identifier: MIT

package main

import (
	"github.com/katalvlaran/precisiongraph/pipeline"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// sweepRow summarizes one grid point.
type sweepRow struct {
	Lambda   float64 `json:"lambda"`
	Quantile float64 `json:"quantile"`
	Cutoff   float64 `json:"cutoff,omitempty"`
	Edges    int     `json:"edges"`
	Vertices int     `json:"vertices"`
	Clusters int     `json:"clusters"`
	Error    string  `json:"error,omitempty"`
}

func (a *app) sweepCmd() *cobra.Command {
	var (
		lambdas, quantiles []float64
		workers            int
	)
	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Evaluate a lambda x quantile grid and report edge counts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.applyInputFlags(cmd); err != nil {
				return err
			}
			if !cmd.Flags().Changed("workers") {
				workers = a.cfg.Sweep.Workers
			}
			p, err := a.newPipeline()
			if err != nil {
				return err
			}
			items, err := p.Sweep(cmd.Context(), pipeline.Grid(lambdas, quantiles), workers)
			if err != nil {
				return err
			}

			rows := make([]sweepRow, len(items))
			for i, it := range items {
				rows[i] = sweepRow{Lambda: it.Lambda, Quantile: it.Quantile, Error: it.Error}
				if it.Result != nil {
					rows[i].Cutoff = it.Result.Cutoff
					rows[i].Edges = len(it.Result.Edges)
					rows[i].Vertices = len(it.Result.Vertices)
					comps, err := it.Result.Components()
					if err != nil {
						return err
					}
					rows[i].Clusters = len(comps)
				}
			}
			a.logger.Info("sweep written", zap.Int("points", len(rows)))

			return a.writeJSON(cmd, rows)
		},
	}
	inputFlags(cmd)
	cmd.Flags().Float64SliceVar(&lambdas, "lambdas", []float64{0.1, 0.3, 0.5}, "shrinkage intensities")
	cmd.Flags().Float64SliceVar(&quantiles, "quantiles", []float64{0.5, 0.75, 0.9}, "threshold quantiles")
	cmd.Flags().IntVar(&workers, "workers", 0, "parallel recomputations (0: GOMAXPROCS)")

	return cmd
}
