package distributions

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"

	"distkit/domain/dist"
)

var (
	muAliases    = []string{"mu", "μ"}
	sigmaAliases = []string{"sigma", "σ"}
)

// LogNormal is parameterized by the mean (mu) and standard deviation (sigma)
// of the underlying log. Both ASCII and Greek parameter names are accepted.
type LogNormal struct{}

func (LogNormal) Name() string { return "lognormal" }

func (LogNormal) Validate(p dist.Params) dist.ValidationResult {
	var msgs []string
	if !p.HasEither(muAliases...) {
		msgs = append(msgs, "mu (log-mean) is required")
	}
	if !p.HasEither(sigmaAliases...) {
		msgs = append(msgs, "sigma (log-std) is required")
	} else if p.GetEither(sigmaAliases, 0) <= 0 {
		msgs = append(msgs, "sigma must be positive")
	}
	if len(msgs) > 0 {
		return dist.Invalid(msgs...)
	}
	return dist.Valid()
}

func (LogNormal) logParams(p dist.Params) (mu, sigma float64) {
	return p.GetEither(muAliases, 0), p.GetEither(sigmaAliases, 0)
}

func (l LogNormal) dist(p dist.Params) distuv.LogNormal {
	mu, sigma := l.logParams(p)
	return distuv.LogNormal{Mu: mu, Sigma: sigma}
}

func (l LogNormal) Mean(p dist.Params) float64 {
	mu, sigma := l.logParams(p)
	return math.Exp(mu + sigma*sigma/2)
}

func (l LogNormal) StdDev(p dist.Params) float64 {
	mu, sigma := l.logParams(p)
	variance := (math.Exp(sigma*sigma) - 1) * math.Exp(2*mu+sigma*sigma)
	return math.Sqrt(variance)
}

func (l LogNormal) PDF(x float64, p dist.Params) float64 {
	if x <= 0 {
		return 0
	}
	return l.dist(p).Prob(x)
}

func (l LogNormal) CDF(x float64, p dist.Params) float64 {
	if x <= 0 {
		return 0
	}
	return l.dist(p).CDF(x)
}

func (l LogNormal) Quantile(prob float64, p dist.Params) float64 {
	return l.dist(p).Quantile(prob)
}

func (l LogNormal) GeneratePDF(p dist.Params, xs []float64, reqs []dist.PercentileRequest) dist.Curve {
	return buildCurve(l, dist.CurvePDF, p, xs, reqs, l.markers(p))
}

func (l LogNormal) GenerateCDF(p dist.Params, xs []float64, reqs []dist.PercentileRequest) dist.Curve {
	return buildCurve(l, dist.CurveCDF, p, xs, reqs, l.markers(p))
}

func (l LogNormal) markers(p dist.Params) []keyMarker {
	mu, sigma := l.logParams(p)
	return []keyMarker{
		{label: "Mean", x: l.Mean(p)},
		{label: "Median", x: math.Exp(mu)},
		{label: "Mode", x: math.Exp(mu - sigma*sigma)},
	}
}

func (LogNormal) Metadata(currentValue *float64) dist.Metadata {
	// Default mu so the median tracks the current value
	mu := math.Log(100.0)
	if cv := cvOr(currentValue, 0); cv > 0 {
		mu = math.Log(cv)
	}
	return dist.Metadata{
		Name:               "Log-Normal",
		Description:        "Right-skewed distribution of a quantity whose logarithm is normal; strictly positive.",
		Applications:       []string{"Rainfall volumes", "Repair durations", "Commodity price levels"},
		Examples:           []string{"Monthly rainfall where extreme wet months are rare but large"},
		DefaultCurve:       dist.CurvePDF,
		NonNegativeSupport: true,
		MinPointsRequired:  3,
		Parameters: []dist.ParameterDescriptor{
			numParam("mu", true, mu, nil, nil, 0.01),
			numParam("sigma", true, 0.25, fptr(0), nil, 0.01),
		},
	}
}
