package powercalc

import (
	"github.com/Jakemex/TuneWorksApp/internal/catalog"
)

// Overlay is one map-mode series: its scaled range and the peak estimate
// the dyno synthesizer is fed.
type Overlay struct {
	Mode   catalog.MapMode
	Range  catalog.Range
	PeakKW float64
}

// Overlays expands the selection into one overlay per visible map mode.
// The mode scalar and emissions scalar are applied together to the
// pre-emissions range, then the turbo cap clamps the result. Under single
// calibration exactly one max-profile overlay is produced. Under
// multi-mapping with every mode toggled off, a single synthetic max
// overlay is returned so the curve synthesizer always has a series.
func Overlays(v *catalog.Variant, sel Selection) []Overlay {
	pre := PreEmissions(v, sel)
	es := sel.Emissions.Scalar()
	limit, hasCap := v.Cap(sel.Turbo)

	mk := func(mode catalog.MapMode) Overlay {
		r := pre.Scale(es * catalog.MapScalar[mode])
		if hasCap {
			r = r.ClampMax(limit)
		}
		return Overlay{Mode: mode, Range: r, PeakKW: r.Mid()}
	}

	if sel.Tuning != catalog.TuningMultimap {
		return []Overlay{mk(catalog.MapMax)}
	}

	var out []Overlay
	for _, mode := range catalog.MapModes {
		if sel.Maps[mode] {
			out = append(out, mk(mode))
		}
	}
	if len(out) == 0 {
		out = []Overlay{mk(catalog.MapMax)}
	}
	return out
}
