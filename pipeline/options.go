// SPDX-License-Identifier: MIT

package pipeline

import (
	"time"

	"github.com/katalvlaran/precisiongraph/threshold"
	"go.uber.org/zap"
)

// Stage names reported to an Observer and used as log fields.
const (
	StageShrink    = "shrink"
	StageSolve     = "solve"
	StageThreshold = "threshold"
	StageBuild     = "build"
)

// Observer receives per-stage timings and failures. Implementations must be
// safe for concurrent use: Sweep calls them from several goroutines.
type Observer interface {
	ObserveStage(stage string, elapsed time.Duration)
	ObserveFailure(stage string, err error)
}

type nopObserver struct{}

func (nopObserver) ObserveStage(string, time.Duration) {}
func (nopObserver) ObserveFailure(string, error)       {}

// Option configures a Pipeline.
//
// Options panic on nonsensical values (nil logger, nil observer, unknown
// method); these are programmer errors, not runtime conditions.
type Option func(*Pipeline)

// WithLogger sets the structured logger. Default: zap.NewNop().
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("pipeline: WithLogger(nil)")
	}

	return func(p *Pipeline) { p.logger = l }
}

// WithSectors supplies the label→sector assignment used for coloring.
// The map is copied; nil means "no assignment" and disables coloring.
func WithSectors(sectors map[string]string) Option {
	var cp map[string]string
	if sectors != nil {
		cp = make(map[string]string, len(sectors))
		for k, v := range sectors {
			cp[k] = v
		}
	}

	return func(p *Pipeline) { p.sectors = cp }
}

// WithQuantileMethod selects the threshold interpolation rule.
// Default: threshold.DefaultMethod.
func WithQuantileMethod(m threshold.Method) Option {
	if m != threshold.LinInterp && m != threshold.Type7 {
		panic("pipeline: WithQuantileMethod: unknown method " + m.String())
	}

	return func(p *Pipeline) { p.method = m }
}

// WithObserver attaches an Observer (e.g. Prometheus metrics).
func WithObserver(o Observer) Option {
	if o == nil {
		panic("pipeline: WithObserver(nil)")
	}

	return func(p *Pipeline) { p.observer = o }
}
