package catalog

import "math"

// Range is an inclusive power range in whole kW. All arithmetic applies
// identically to both bounds, so min <= max is preserved by construction.
type Range struct {
	MinKW int `json:"minKw"`
	MaxKW int `json:"maxKw"`
}

// Add returns the component-wise sum of two ranges.
func (r Range) Add(o Range) Range {
	return Range{r.MinKW + o.MinKW, r.MaxKW + o.MaxKW}
}

// Scale multiplies both bounds by f, rounding to the nearest kW.
func (r Range) Scale(f float64) Range {
	return Range{
		MinKW: int(math.Round(float64(r.MinKW) * f)),
		MaxKW: int(math.Round(float64(r.MaxKW) * f)),
	}
}

// ClampMax caps both bounds at limit. It never raises a bound.
func (r Range) ClampMax(limit int) Range {
	if r.MinKW > limit {
		r.MinKW = limit
	}
	if r.MaxKW > limit {
		r.MaxKW = limit
	}
	return r
}

// Mid returns the midpoint of the range.
func (r Range) Mid() float64 {
	return float64(r.MinKW+r.MaxKW) / 2
}

// IsZero reports whether the range is the neutral [0,0] value.
func (r Range) IsZero() bool {
	return r.MinKW == 0 && r.MaxKW == 0
}
