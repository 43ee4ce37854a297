package distributions

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"

	"distkit/domain/dist"
)

// GeometricBrownianMotion models the marginal of a GBM process at horizon
// timeStep: log-normal with mu = ln(S0) + (drift - vol^2/2)*T and
// sigma = vol*sqrt(T), drift and volatility given as percentages.
type GeometricBrownianMotion struct{}

func (GeometricBrownianMotion) Name() string { return "gbm" }

func (GeometricBrownianMotion) Validate(p dist.Params) dist.ValidationResult {
	var msgs []string
	if !p.Has("value") {
		msgs = append(msgs, "value (initial level) is required")
	} else if p.Get("value", 0) <= 0 {
		msgs = append(msgs, "value must be positive")
	}
	if !p.Has("volatility") {
		msgs = append(msgs, "volatility is required")
	} else if p.Get("volatility", 0) <= 0 {
		msgs = append(msgs, "volatility must be a positive percentage")
	}
	if !p.Has("timeStep") {
		msgs = append(msgs, "timeStep is required")
	} else if p.Get("timeStep", 0) <= 0 {
		msgs = append(msgs, "timeStep must be positive")
	}
	if len(msgs) > 0 {
		return dist.Invalid(msgs...)
	}
	return dist.Valid()
}

// logParams derives the log-normal parameters of the marginal at time T
func (GeometricBrownianMotion) logParams(p dist.Params) (mu, sigma float64) {
	s0 := p.Get("value", 1)
	drift := p.Get("drift", 0) / 100
	vol := p.Get("volatility", 0) / 100
	t := p.Get("timeStep", 1)
	mu = math.Log(s0) + (drift-vol*vol/2)*t
	sigma = vol * math.Sqrt(t)
	return mu, sigma
}

func (g GeometricBrownianMotion) dist(p dist.Params) distuv.LogNormal {
	mu, sigma := g.logParams(p)
	return distuv.LogNormal{Mu: mu, Sigma: sigma}
}

func (GeometricBrownianMotion) Mean(p dist.Params) float64 {
	return p.Get("value", 1) * math.Exp(p.Get("drift", 0)/100*p.Get("timeStep", 1))
}

func (g GeometricBrownianMotion) StdDev(p dist.Params) float64 {
	mu, sigma := g.logParams(p)
	variance := (math.Exp(sigma*sigma) - 1) * math.Exp(2*mu+sigma*sigma)
	return math.Sqrt(variance)
}

func (g GeometricBrownianMotion) PDF(x float64, p dist.Params) float64 {
	if x <= 0 {
		return 0
	}
	return g.dist(p).Prob(x)
}

func (g GeometricBrownianMotion) CDF(x float64, p dist.Params) float64 {
	if x <= 0 {
		return 0
	}
	return g.dist(p).CDF(x)
}

func (g GeometricBrownianMotion) Quantile(prob float64, p dist.Params) float64 {
	return g.dist(p).Quantile(prob)
}

func (g GeometricBrownianMotion) GeneratePDF(p dist.Params, xs []float64, reqs []dist.PercentileRequest) dist.Curve {
	return buildCurve(g, dist.CurvePDF, p, xs, reqs, g.markers(p))
}

func (g GeometricBrownianMotion) GenerateCDF(p dist.Params, xs []float64, reqs []dist.PercentileRequest) dist.Curve {
	return buildCurve(g, dist.CurveCDF, p, xs, reqs, g.markers(p))
}

func (g GeometricBrownianMotion) markers(p dist.Params) []keyMarker {
	mu, sigma := g.logParams(p)
	return []keyMarker{
		{label: "Mean", x: g.Mean(p)},
		{label: "Median", x: math.Exp(mu)},
		{label: "Mode", x: math.Exp(mu - sigma*sigma)},
	}
}

func (GeometricBrownianMotion) Metadata(currentValue *float64) dist.Metadata {
	value := cvOr(currentValue, 100)
	if value <= 0 {
		value = 100
	}
	return dist.Metadata{
		Name:               "Geometric Brownian Motion",
		Description:        "Multiplicative growth process; the value at the horizon is log-normally distributed.",
		Applications:       []string{"Electricity price paths", "Inflation-linked revenues", "Asset values"},
		Examples:           []string{"Power price starting at 50 $/MWh, 2% drift, 15% volatility over 5 years"},
		DefaultCurve:       dist.CurvePDF,
		NonNegativeSupport: true,
		MinPointsRequired:  3,
		Parameters: []dist.ParameterDescriptor{
			numParam("value", true, value, fptr(0), nil, 0.01),
			numParam("drift", false, 2, fptr(-100), fptr(100), 0.1),
			numParam("volatility", true, 15, fptr(0), fptr(100), 0.1),
			numParam("timeStep", true, 1, fptr(0), nil, 0.5),
		},
	}
}
