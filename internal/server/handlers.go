// SPDX-License-Identifier: MIT

package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/render"
	"github.com/katalvlaran/precisiongraph/matrix"
	"github.com/katalvlaran/precisiongraph/netgraph"
	"github.com/katalvlaran/precisiongraph/pipeline"
	"github.com/katalvlaran/precisiongraph/threshold"
	"go.uber.org/zap"
)

// Dataset is the part shared by every request: the returns table and the
// optional sector assignment.
type Dataset struct {
	Labels  []string          `json:"labels" validate:"required,min=1,dive,required"`
	Returns [][]float64       `json:"returns" validate:"required,min=2"`
	Sectors map[string]string `json:"sectors,omitempty"`
	Method  string            `json:"method,omitempty" validate:"omitempty,oneof=lininterp type7"`
}

// GraphRequest is the body of POST /v1/graph. Exactly one of Lambda and
// AutoLambda selects the shrinkage intensity.
type GraphRequest struct {
	Dataset
	Lambda     *float64 `json:"lambda,omitempty" validate:"omitempty,gte=0,lte=1"`
	AutoLambda bool     `json:"auto_lambda,omitempty"`
	Quantile   float64  `json:"quantile" validate:"gte=0,lte=1"`
}

// SweepRequest is the body of POST /v1/sweep.
type SweepRequest struct {
	Dataset
	Lambdas   []float64 `json:"lambdas" validate:"required,min=1,max=64,dive,gte=0,lte=1"`
	Quantiles []float64 `json:"quantiles" validate:"required,min=1,max=64,dive,gte=0,lte=1"`
}

// Problem is the error body of every non-2xx response.
type Problem struct {
	Status int    `json:"status"`
	Title  string `json:"title"`
	Detail string `json:"detail,omitempty"`
	Hint   string `json:"hint,omitempty"`
}

// Render implements render.Renderer.
func (p *Problem) Render(_ http.ResponseWriter, r *http.Request) error {
	render.Status(r, p.Status)
	return nil
}

var errLambdaChoice = errors.New("set exactly one of lambda and auto_lambda")

func (s *Server) handleGraph(w http.ResponseWriter, r *http.Request) {
	var req GraphRequest
	if !s.decode(w, r, &req) {
		return
	}
	if (req.Lambda == nil) == !req.AutoLambda {
		s.problem(w, r, http.StatusBadRequest, errLambdaChoice, "")
		return
	}

	p, err := s.pipeline(req.Dataset)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	var res *pipeline.Result
	if req.AutoLambda {
		res, err = p.RecomputeAuto(req.Quantile)
	} else {
		res, err = p.Recompute(*req.Lambda, req.Quantile)
	}
	if err != nil {
		s.fail(w, r, err)
		return
	}

	render.JSON(w, r, res)
}

func (s *Server) handleSweep(w http.ResponseWriter, r *http.Request) {
	var req SweepRequest
	if !s.decode(w, r, &req) {
		return
	}
	p, err := s.pipeline(req.Dataset)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	items, err := p.Sweep(r.Context(), pipeline.Grid(req.Lambdas, req.Quantiles), s.workers)
	if err != nil {
		s.fail(w, r, err)
		return
	}

	render.JSON(w, r, items)
}

func (s *Server) pipeline(d Dataset) (*pipeline.Pipeline, error) {
	method, err := threshold.ParseMethod(d.Method)
	if err != nil {
		return nil, err
	}
	X, err := matrix.NewDenseFromRows(d.Returns)
	if err != nil {
		return nil, err
	}

	return pipeline.New(X, d.Labels,
		pipeline.WithLogger(s.logger),
		pipeline.WithObserver(s.metrics),
		pipeline.WithQuantileMethod(method),
		pipeline.WithSectors(d.Sectors))
}

// decode reads and validates a JSON body; on failure it writes the response.
func (s *Server) decode(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	if err := render.DecodeJSON(r.Body, v); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			s.problem(w, r, http.StatusRequestEntityTooLarge, err, "")
			return false
		}
		s.problem(w, r, http.StatusBadRequest, fmt.Errorf("decode body: %w", err), "")
		return false
	}
	if err := s.validate.Struct(v); err != nil {
		s.problem(w, r, http.StatusBadRequest, err, "")
		return false
	}

	return true
}

// fail maps a pipeline error to its status code.
func (s *Server) fail(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, matrix.ErrSingular):
		s.problem(w, r, http.StatusUnprocessableEntity, err, "covariance is not positive definite; retry with a larger lambda")
	case errors.Is(err, matrix.ErrDegenerate):
		s.problem(w, r, http.StatusUnprocessableEntity, err, "returns have zero total variance")
	case errors.Is(err, matrix.ErrDimension),
		errors.Is(err, matrix.ErrInvalidParameter),
		errors.Is(err, matrix.ErrNaNInf),
		errors.Is(err, netgraph.ErrEmptyLabel),
		errors.Is(err, netgraph.ErrDuplicateLabel):
		s.problem(w, r, http.StatusBadRequest, err, "")
	default:
		s.logger.Error("request failed", zap.Error(err))
		s.problem(w, r, http.StatusInternalServerError, err, "")
	}
}

func (s *Server) problem(w http.ResponseWriter, r *http.Request, status int, err error, hint string) {
	_ = render.Render(w, r, &Problem{
		Status: status,
		Title:  http.StatusText(status),
		Detail: err.Error(),
		Hint:   hint,
	})
}
