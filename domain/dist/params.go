package dist

import "math"

// Params is a family-specific parameter mapping (e.g. Normal: value, stdDev;
// Weibull: scale, shape). Callers outside the engine may hand us partial or
// garbage maps, so every read goes through the default-valued accessors.
type Params map[string]float64

// Get returns the named parameter, or def when it is absent or non-finite
func (p Params) Get(name string, def float64) float64 {
	v, ok := p[name]
	if !ok || math.IsNaN(v) || math.IsInf(v, 0) {
		return def
	}
	return v
}

// GetEither returns the first of the named parameters that is present and
// finite, or def. Used for families with aliased names (e.g. "mu" / "μ").
func (p Params) GetEither(names []string, def float64) float64 {
	for _, name := range names {
		if v, ok := p[name]; ok && !math.IsNaN(v) && !math.IsInf(v, 0) {
			return v
		}
	}
	return def
}

// Has reports whether the named parameter is present and finite
func (p Params) Has(name string) bool {
	v, ok := p[name]
	return ok && !math.IsNaN(v) && !math.IsInf(v, 0)
}

// HasEither reports whether any of the named parameters is present and finite
func (p Params) HasEither(names ...string) bool {
	for _, name := range names {
		if p.Has(name) {
			return true
		}
	}
	return false
}

// Clone returns an independent copy; the engine never mutates caller maps
func (p Params) Clone() Params {
	if p == nil {
		return Params{}
	}
	out := make(Params, len(p))
	for k, v := range p {
		out[k] = v
	}
	return out
}
