// Package powercalc turns a variant and a selection into an estimated
// power range and per-map-mode overlays. Every lookup degrades to a
// neutral value on a missing key; the calculator never fails, even when
// invoked with a combination the UI would not normally allow.
package powercalc

import (
	"github.com/Jakemex/TuneWorksApp/internal/catalog"
)

// Selection is the calculator's view of the user's choices. It carries no
// variant reference; legality against the variant is re-checked here.
type Selection struct {
	Turbo        catalog.Turbo
	Tuning       catalog.TuningMode
	Emissions    catalog.Emissions
	Mods         map[catalog.Mod]bool
	InjectorSize string
	Maps         map[catalog.MapMode]bool
}

// PreEmissions applies the base lookup and every additive step: bolt-on
// modifications in fixed order, then injectors, then the lift pump.
func PreEmissions(v *catalog.Variant, sel Selection) catalog.Range {
	r := v.Base(sel.Turbo, sel.Tuning)

	for _, m := range catalog.BoltOnMods {
		if v.AllowsMod(m) && sel.Mods[m] {
			r = r.Add(v.ModAdd(m))
		}
	}

	if v.AllowsMod(catalog.ModInjectors) && sel.Mods[catalog.ModInjectors] {
		r = r.Add(catalog.InjectorAdd(v.Family, sel.InjectorSize))
	}

	if v.AllowsMod(catalog.ModLiftPump) && sel.Mods[catalog.ModLiftPump] {
		r = r.Add(v.ModAdd(catalog.ModLiftPump))
	}

	return r
}

// Calculate produces the final estimated range: additive steps, then the
// emissions multiplier, then the per-turbo hard cap.
func Calculate(v *catalog.Variant, sel Selection) catalog.Range {
	r := PreEmissions(v, sel)
	r = r.Scale(sel.Emissions.Scalar())
	if limit, ok := v.Cap(sel.Turbo); ok {
		r = r.ClampMax(limit)
	}
	return r
}
