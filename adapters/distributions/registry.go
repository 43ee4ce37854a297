package distributions

import (
	"sort"
	"strings"

	"distkit/domain/dist"
	"distkit/ports"
)

// Fallbacks returned for unknown distribution types so the UI always has
// something displayable
const (
	fallbackMinPoints    = 3
	fallbackDefaultCurve = dist.CurvePDF
)

// Registry is the immutable type-name to implementation mapping. It is built
// once at startup and safe to share across arbitrarily many concurrent
// callers; every implementation is a stateless singleton.
type Registry struct {
	byName map[string]ports.Distribution
}

var _ ports.Registry = (*Registry)(nil)

// NewRegistry builds the registry with all eleven families registered
func NewRegistry() *Registry {
	r := &Registry{byName: make(map[string]ports.Distribution)}
	for _, d := range []ports.Distribution{
		Fixed{},
		Normal{},
		LogNormal{},
		Triangular{},
		Uniform{},
		Weibull{},
		Exponential{},
		Poisson{},
		Gamma{},
		Kaimal{},
		GeometricBrownianMotion{},
	} {
		r.byName[d.Name()] = d
	}
	return r
}

// canonicalName lower-cases the lookup key and folds spelling variants of the
// longer family names onto their registry keys
func canonicalName(distType string) string {
	name := strings.ToLower(strings.TrimSpace(distType))
	switch name {
	case "log-normal", "log normal":
		return "lognormal"
	case "geometricbrownianmotion", "geometric brownian motion":
		return "gbm"
	}
	return name
}

// Get resolves a family by type name, case-insensitively. Unknown types yield
// ok=false, never a panic.
func (r *Registry) Get(distType string) (ports.Distribution, bool) {
	d, ok := r.byName[canonicalName(distType)]
	return d, ok
}

// Types returns the sorted registry keys
func (r *Registry) Types() []string {
	out := make([]string, 0, len(r.byName))
	for name := range r.byName {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Metadata returns the family self-description, optionally biased by a
// current value
func (r *Registry) Metadata(distType string, currentValue *float64) (dist.Metadata, bool) {
	d, ok := r.Get(distType)
	if !ok {
		return dist.Metadata{}, false
	}
	return d.Metadata(currentValue), true
}

// AllMetadata returns the static metadata of every registered family, keyed
// by registry name
func (r *Registry) AllMetadata() map[string]dist.Metadata {
	out := make(map[string]dist.Metadata, len(r.byName))
	for name, d := range r.byName {
		out[name] = d.Metadata(nil)
	}
	return out
}

// Mean delegates to the family, falling back to parameters.value for unknown
// types
func (r *Registry) Mean(distType string, params dist.Params) float64 {
	d, ok := r.Get(distType)
	if !ok {
		return params.Get("value", 0)
	}
	return d.Mean(params)
}

// StdDev delegates to the family, falling back to 0 for unknown types
func (r *Registry) StdDev(distType string, params dist.Params) float64 {
	d, ok := r.Get(distType)
	if !ok {
		return 0
	}
	return d.StdDev(params)
}

// Percentile delegates to the family quantile (percentile in 0-100), falling
// back to parameters.value for unknown types
func (r *Registry) Percentile(distType string, params dist.Params, percentile float64) float64 {
	d, ok := r.Get(distType)
	if !ok {
		return params.Get("value", 0)
	}
	return d.Quantile(percentile/100, params)
}

// MinRequiredPoints reports how many observed points a fit of this family
// needs; 3 for unknown types
func (r *Registry) MinRequiredPoints(distType string) int {
	d, ok := r.Get(distType)
	if !ok {
		return fallbackMinPoints
	}
	return d.Metadata(nil).MinPointsRequired
}

// NonNegative reports whether the family's support excludes negative values;
// false for unknown types
func (r *Registry) NonNegative(distType string) bool {
	d, ok := r.Get(distType)
	if !ok {
		return false
	}
	return d.Metadata(nil).NonNegativeSupport
}

// DefaultCurve reports the family's preferred curve kind; "pdf" for unknown
// types
func (r *Registry) DefaultCurve(distType string) string {
	d, ok := r.Get(distType)
	if !ok {
		return fallbackDefaultCurve
	}
	return d.Metadata(nil).DefaultCurve
}
