// SPDX-License-Identifier: MIT

// Command precgraph builds sparse conditional-dependence graphs of assets from
// a returns (or prices) table.
//
//	precgraph build --input returns.csv --lambda 0.3 --quantile 0.9
//	precgraph sweep --input prices.xlsx --kind prices --lambdas 0.1,0.3 --quantiles 0.5,0.9
//	precgraph serve --addr :8080
package main

import (
	"fmt"
	"os"

	"github.com/katalvlaran/precisiongraph/internal/config"
	"github.com/katalvlaran/precisiongraph/internal/logging"
	"github.com/katalvlaran/precisiongraph/pipeline"
	"github.com/katalvlaran/precisiongraph/returns"
	"github.com/katalvlaran/precisiongraph/threshold"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// app carries the state shared by the subcommands of one invocation.
type app struct {
	configPath string
	verbose    bool

	cfg    *config.Config
	logger *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "precgraph",
		Short: "Sparse conditional-dependence graphs from asset returns",
		Long: `precgraph estimates a shrunk covariance of asset returns, inverts it to a
precision matrix, keeps the strongest conditional dependencies by quantile
threshold and emits the resulting graph as JSON.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(a.configPath)
			if err != nil {
				return err
			}
			logger, err := logging.New(cfg.Logging, a.verbose)
			if err != nil {
				return err
			}
			a.cfg, a.logger = cfg, logger
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}
	root.PersistentFlags().StringVar(&a.configPath, "config", "precgraph.yaml", "config file (missing file: defaults)")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "debug logging")

	root.AddCommand(a.buildCmd(), a.sweepCmd(), a.serveCmd())

	return root
}

// inputFlags registers the flags shared by build and sweep.
func inputFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.String("input", "", "returns or prices table (.csv or .xlsx)")
	f.String("format", "", "input format: csv or xlsx (default: from extension)")
	f.String("kind", "", "input kind: returns or prices")
	f.String("sheet", "", "xlsx sheet (default: first)")
	f.String("sectors", "", "label,sector CSV for vertex colors")
	f.String("method", "", "quantile method: lininterp or type7")
	f.StringP("output", "o", "", "output file (default: stdout)")
}

// applyInputFlags copies explicitly set flags over the loaded configuration.
func (a *app) applyInputFlags(cmd *cobra.Command) error {
	f := cmd.Flags()
	for name, dst := range map[string]*string{
		"input":   &a.cfg.Input.Path,
		"format":  &a.cfg.Input.Format,
		"kind":    &a.cfg.Input.Kind,
		"sheet":   &a.cfg.Input.Sheet,
		"sectors": &a.cfg.Sectors,
		"method":  &a.cfg.Method,
		"output":  &a.cfg.Output,
	} {
		if !f.Changed(name) {
			continue
		}
		v, err := f.GetString(name)
		if err != nil {
			return err
		}
		*dst = v
	}
	if a.cfg.Input.Path == "" {
		return fmt.Errorf("no input: set --input or input.path")
	}

	return a.cfg.Validate()
}

// newPipeline loads the configured input and sectors.
func (a *app) newPipeline() (*pipeline.Pipeline, error) {
	tbl, err := returns.Load(a.cfg.Input.Path, returns.Format(a.cfg.Input.Format), returns.Kind(a.cfg.Input.Kind), a.cfg.Input.Sheet)
	if err != nil {
		return nil, err
	}
	method, err := threshold.ParseMethod(a.cfg.Method)
	if err != nil {
		return nil, err
	}
	opts := []pipeline.Option{
		pipeline.WithLogger(a.logger),
		pipeline.WithQuantileMethod(method),
	}
	if a.cfg.Sectors != "" {
		sectors, err := returns.LoadSectors(a.cfg.Sectors)
		if err != nil {
			return nil, err
		}
		opts = append(opts, pipeline.WithSectors(sectors))
	}
	a.logger.Info("input loaded",
		zap.String("path", a.cfg.Input.Path),
		zap.Int("observations", tbl.Values.Rows()),
		zap.Int("assets", len(tbl.Labels)))

	return pipeline.New(tbl.Values, tbl.Labels, opts...)
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
