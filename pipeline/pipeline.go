// SPDX-License-Identifier: MIT

// Package pipeline wires the estimation stages into one explicit call,
//
//	Recompute(λ, q) → edges + colors,
//
// over a returns matrix fixed at construction. The λ-independent sample
// covariance is computed once by New and shared read-only by every call, so
// an interactive caller or a parameter sweep pays only for the O(N³) solve
// per (λ, q) pair.
//
// Errors from the stages are returned unchanged in kind: callers match
// matrix.ErrSingular (retry with a larger λ), matrix.ErrInvalidParameter,
// matrix.ErrDimension and matrix.ErrDegenerate with errors.Is. There is no
// partial result.
package pipeline

import (
	"fmt"
	"time"

	"github.com/katalvlaran/precisiongraph/matrix"
	"github.com/katalvlaran/precisiongraph/netgraph"
	"github.com/katalvlaran/precisiongraph/precision"
	"github.com/katalvlaran/precisiongraph/shrinkage"
	"github.com/katalvlaran/precisiongraph/threshold"
	"go.uber.org/zap"
)

const (
	opNew           = "pipeline.New"
	opRecompute     = "pipeline.Recompute"
	opRecomputeAuto = "pipeline.RecomputeAuto"
)

// Pipeline holds the immutable inputs of repeated recomputation.
// All methods are safe for concurrent use.
type Pipeline struct {
	sample   *shrinkage.Sample
	labels   []string
	sectors  map[string]string
	method   threshold.Method
	logger   *zap.Logger
	observer Observer
}

// Result is the output of one recomputation.
type Result struct {
	Lambda   float64 `json:"lambda"`
	Quantile float64 `json:"quantile"`
	Method   string  `json:"method"`
	Cutoff   float64 `json:"cutoff"`

	netgraph.Result

	// Precision is Σ(λ)⁻¹ before thresholding.
	Precision *matrix.Dense `json:"-"`
	// PartialCorrelations is derived from Precision.
	PartialCorrelations *matrix.Dense `json:"-"`
}

// New validates the inputs and computes the sample covariance once.
//
// Errors:
//   - matrix.ErrDimension (T<2, N<1, len(labels) ≠ N), matrix.ErrNaNInf,
//     matrix.ErrDegenerate, netgraph.ErrEmptyLabel, netgraph.ErrDuplicateLabel.
func New(returns matrix.Matrix, labels []string, opts ...Option) (*Pipeline, error) {
	if err := matrix.ValidateNotNil(returns); err != nil {
		return nil, fmt.Errorf("%s: %w", opNew, err)
	}
	if len(labels) != returns.Cols() {
		return nil, fmt.Errorf("%s: %d labels for %d assets: %w", opNew, len(labels), returns.Cols(), matrix.ErrDimension)
	}
	if err := netgraph.ValidateLabels(labels); err != nil {
		return nil, fmt.Errorf("%s: %w", opNew, err)
	}

	p := &Pipeline{
		labels:   append([]string(nil), labels...),
		method:   threshold.DefaultMethod,
		logger:   zap.NewNop(),
		observer: nopObserver{},
	}
	for _, opt := range opts {
		opt(p)
	}

	start := time.Now()
	sample, err := shrinkage.NewSample(returns)
	if err != nil {
		p.observer.ObserveFailure(StageShrink, err)
		p.logger.Warn("sample covariance failed", zap.Error(err))

		return nil, fmt.Errorf("%s: %w", opNew, err)
	}
	p.sample = sample
	p.logger.Debug("sample covariance ready",
		zap.Int("observations", sample.Observations()),
		zap.Int("assets", sample.Assets()),
		zap.Float64("mu", sample.Mu()),
		zap.Duration("elapsed", time.Since(start)))

	return p, nil
}

// Labels returns a copy of the vertex labels.
func (p *Pipeline) Labels() []string { return append([]string(nil), p.labels...) }

// Sample returns the shared, read-only sample covariance.
func (p *Pipeline) Sample() *shrinkage.Sample { return p.sample }

// Method returns the configured quantile method.
func (p *Pipeline) Method() threshold.Method { return p.method }

// OptimalLambda returns the Ledoit–Wolf intensity for the pipeline's sample.
func (p *Pipeline) OptimalLambda() (float64, error) { return shrinkage.LedoitWolf(p.sample) }

// Recompute runs shrink → solve → threshold → build for one (λ, q).
//
// Errors:
//   - matrix.ErrInvalidParameter (λ or q outside [0,1]).
//   - matrix.ErrSingular (Σ(λ) not positive definite; only reachable at λ=0).
func (p *Pipeline) Recompute(lambda, q float64) (*Result, error) {
	if err := matrix.ValidateProbability("quantile", q); err != nil {
		return nil, fmt.Errorf("%s: %w", opRecompute, err)
	}
	log := p.logger.With(zap.Float64("lambda", lambda), zap.Float64("quantile", q))

	var (
		sigma, prec, thr *matrix.Dense
		cut              float64
		built            *netgraph.Result
	)
	err := p.stage(log, StageShrink, func() (err error) {
		sigma, err = p.sample.Shrink(lambda)
		return err
	})
	if err == nil {
		err = p.stage(log, StageSolve, func() (err error) {
			prec, err = precision.Solve(sigma)
			return err
		})
	}
	if err == nil {
		err = p.stage(log, StageThreshold, func() (err error) {
			thr, cut, err = threshold.FilterWith(prec, q, p.method)
			return err
		})
	}
	if err == nil {
		err = p.stage(log, StageBuild, func() (err error) {
			built, err = netgraph.Build(thr, p.labels, p.sectors)
			return err
		})
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opRecompute, err)
	}

	rho, err := precision.PartialCorrelations(prec)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opRecompute, err)
	}

	log.Debug("recomputed",
		zap.Int("edges", len(built.Edges)),
		zap.Int("vertices", len(built.Vertices)),
		zap.Float64("cutoff", cut))

	return &Result{
		Lambda:              lambda,
		Quantile:            q,
		Method:              p.method.String(),
		Cutoff:              cut,
		Result:              *built,
		Precision:           prec,
		PartialCorrelations: rho,
	}, nil
}

// RecomputeAuto is Recompute with λ chosen by LedoitWolf.
func (p *Pipeline) RecomputeAuto(q float64) (*Result, error) {
	lambda, err := p.OptimalLambda()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opRecomputeAuto, err)
	}
	p.logger.Debug("ledoit-wolf intensity", zap.Float64("lambda", lambda))

	return p.Recompute(lambda, q)
}

// stage times fn and reports it to the observer and the logger.
func (p *Pipeline) stage(log *zap.Logger, name string, fn func() error) error {
	start := time.Now()
	err := fn()
	elapsed := time.Since(start)
	if err != nil {
		p.observer.ObserveFailure(name, err)
		log.Warn("stage failed", zap.String("stage", name), zap.Error(err))

		return err
	}
	p.observer.ObserveStage(name, elapsed)
	log.Debug("stage done", zap.String("stage", name), zap.Duration("elapsed", elapsed))

	return nil
}
