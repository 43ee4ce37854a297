package app

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"distkit/domain/core"
	"distkit/domain/dist"
	"distkit/internal/config"
	"distkit/internal/errors"
	"distkit/internal/validation"
	"distkit/ports"
)

// CurveService is the orchestration entry point for the UI: it normalizes an
// externally-supplied spec, gates it through validation, and produces the
// curve plus organized percentile bands the chart layer renders.
type CurveService struct {
	registry ports.Registry
	checker  *validation.Checker
	cfg      *config.Config
}

// NewCurveService creates a curve service
func NewCurveService(registry ports.Registry, checker *validation.Checker, cfg *config.Config) *CurveService {
	return &CurveService{registry: registry, checker: checker, cfg: cfg}
}

// CurveRequest defines the inputs for a single curve generation
type CurveRequest struct {
	Kind              string                   // "pdf", "cdf", or empty for the family default
	XValues           []float64                // optional; an auto grid is built when empty
	Percentiles       []dist.PercentileRequest // optional; configured defaults when empty
	PrimaryPercentile float64                  // optional; configured default when zero
}

// CurveResult is the complete output for one spec. A failed validation is a
// result, not an error: Curve and Percentiles are nil and Validation carries
// the messages.
type CurveResult struct {
	Spec        dist.Spec                  `json:"spec"`
	Kind        string                     `json:"kind"`
	Validation  dist.ValidationResult      `json:"validation"`
	Curve       *dist.Curve                `json:"curve,omitempty"`
	Percentiles *dist.OrganizedPercentiles `json:"percentiles,omitempty"`
}

// GenerateCurve runs the full pipeline for one spec:
// normalize -> validate -> resolve -> generate -> organize.
func (s *CurveService) GenerateCurve(ctx context.Context, spec dist.Spec, req CurveRequest) (*CurveResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	spec = dist.Normalize(spec)
	result := &CurveResult{Spec: spec}

	result.Validation = s.checker.CheckSpec(spec)
	if !result.Validation.IsValid {
		return result, nil
	}

	d, ok := s.registry.Get(spec.Type)
	if !ok {
		// Unreachable after a passing check, but never panic on lookups
		return nil, core.NewUnknownDistributionError(spec.Type)
	}

	kind := req.Kind
	if kind == "" {
		kind = s.registry.DefaultCurve(spec.Type)
	}
	if kind != dist.CurvePDF && kind != dist.CurveCDF {
		return nil, errors.InvalidInput("curve kind must be pdf or cdf")
	}
	result.Kind = kind

	percentiles := req.Percentiles
	if len(percentiles) == 0 {
		percentiles = make([]dist.PercentileRequest, 0, len(s.cfg.Curve.DefaultPercentiles))
		for _, p := range s.cfg.Curve.DefaultPercentiles {
			percentiles = append(percentiles, dist.PercentileRequest{Value: p})
		}
	}
	primary := req.PrimaryPercentile
	if primary == 0 {
		primary = s.cfg.Curve.PrimaryPercentile
	}

	xs := req.XValues
	if len(xs) == 0 {
		xs = s.autoGrid(d, spec)
	}

	var curve dist.Curve
	if kind == dist.CurveCDF {
		curve = d.GenerateCDF(spec.Parameters, xs, percentiles)
	} else {
		curve = d.GeneratePDF(spec.Parameters, xs, percentiles)
	}
	organized := dist.OrganizePercentiles(curve.PercentilePoints, primary)

	result.Curve = &curve
	result.Percentiles = &organized
	return result, nil
}

// autoGrid builds an x-grid spanning the central probability mass of the
// family, clamped to zero for non-negative-support families
func (s *CurveService) autoGrid(d ports.Distribution, spec dist.Spec) []float64 {
	n := s.cfg.Curve.GridSize

	lower := d.Quantile(0.001, spec.Parameters)
	upper := d.Quantile(0.999, spec.Parameters)
	if upper <= lower {
		// Degenerate spread: pad a window around the mean
		center := d.Mean(spec.Parameters)
		pad := center * 0.1
		if pad < 1 && pad > -1 {
			pad = 1
		} else if pad < 0 {
			pad = -pad
		}
		lower, upper = center-pad, center+pad
	}
	if s.registry.NonNegative(spec.Type) && lower < 0 {
		lower = 0
	}

	xs := make([]float64, n)
	step := (upper - lower) / float64(n-1)
	for i := range xs {
		xs[i] = lower + float64(i)*step
	}
	return xs
}

// SweepRequest defines a batch generation over many specs with shared curve
// settings
type SweepRequest struct {
	Specs []dist.Spec
	Curve CurveRequest
}

// SweepResult contains the batch output, ordered like the input specs
type SweepResult struct {
	RunID     core.RunID     `json:"run_id"`
	Results   []*CurveResult `json:"results"`
	RuntimeMs int64          `json:"runtime_ms"`
}

// Sweep generates curves for many specs concurrently. Parallelism is bounded
// by configuration; the engine itself is stateless, so no coordination beyond
// the errgroup is needed.
func (s *CurveService) Sweep(ctx context.Context, req SweepRequest) (*SweepResult, error) {
	startTime := time.Now()

	out := &SweepResult{
		RunID:   core.RunID(core.NewID()),
		Results: make([]*CurveResult, len(req.Specs)),
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.cfg.Sweep.Parallelism)
	for i, spec := range req.Specs {
		i, spec := i, spec
		g.Go(func() error {
			result, err := s.GenerateCurve(gctx, spec, req.Curve)
			if err != nil {
				return errors.Wrapf(err, "spec %d (%s)", i, spec.Type)
			}
			out.Results[i] = result
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out.RuntimeMs = time.Since(startTime).Milliseconds()
	return out, nil
}
