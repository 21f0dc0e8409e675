// Package session holds the mutable per-session selection record. All
// mutation goes through validated setters that re-check legality against
// the active variant, so the calculators downstream can assume a
// reconciled state without defending against one that is not.
package session

import (
	"github.com/Jakemex/TuneWorksApp/internal/catalog"
	"github.com/Jakemex/TuneWorksApp/internal/powercalc"
)

// State is the single selection record. It is passed explicitly to every
// calculator call; there is no ambient state.
type State struct {
	Variant *catalog.Variant
	Sel     powercalc.Selection

	// PumpLocked is set while the engine family forces the lift pump on;
	// SetLiftPump is a no-op for as long as it holds.
	PumpLocked bool
}

// New creates a state with variant-appropriate defaults: first allowed
// turbo and tuning mode, everything off, emissions intact, first injector
// size, all map modes shown.
func New(v *catalog.Variant) *State {
	s := &State{Variant: v}
	s.resetToDefaults()
	return s
}

func (s *State) resetToDefaults() {
	v := s.Variant
	s.Sel = powercalc.Selection{
		Turbo:     v.Turbos[0],
		Tuning:    v.TuningModes[0],
		Emissions: catalog.EmissionsIntact,
		Mods:      map[catalog.Mod]bool{},
		Maps:      map[catalog.MapMode]bool{},
	}
	if len(v.InjectorSizes) > 0 {
		s.Sel.InjectorSize = v.InjectorSizes[0]
	}
	for _, m := range catalog.MapModes {
		s.Sel.Maps[m] = true
	}
	s.PumpLocked = false
	s.reconcilePump()
}

// SetVariant switches the active variant and reconciles every field that
// the new variant no longer permits, in a fixed order: turbo, tuning mode,
// modification toggles, injector size, lift pump, then map-mode toggles.
func (s *State) SetVariant(v *catalog.Variant) {
	s.Variant = v

	if !v.AllowsTurbo(s.Sel.Turbo) {
		s.Sel.Turbo = v.Turbos[0]
	}
	if !v.AllowsTuning(s.Sel.Tuning) {
		s.Sel.Tuning = v.TuningModes[0]
	}
	for m := range s.Sel.Mods {
		if !v.AllowsMod(m) {
			s.Sel.Mods[m] = false
		}
	}
	s.Sel.InjectorSize = ""
	if len(v.InjectorSizes) > 0 {
		s.Sel.InjectorSize = v.InjectorSizes[0]
	}
	if !v.AllowsMod(catalog.ModLiftPump) {
		s.Sel.Mods[catalog.ModLiftPump] = false
	}
	for _, m := range catalog.MapModes {
		s.Sel.Maps[m] = true
	}

	s.PumpLocked = false
	s.reconcilePump()
}

// SetTurbo selects a turbo; a code outside the variant's resolved set is
// silently corrected back to the first allowed turbo.
func (s *State) SetTurbo(t catalog.Turbo) {
	if s.Variant.AllowsTurbo(t) {
		s.Sel.Turbo = t
		return
	}
	s.Sel.Turbo = s.Variant.Turbos[0]
}

// SetTuning selects a tuning mode with the same correction rule as
// SetTurbo.
func (s *State) SetTuning(m catalog.TuningMode) {
	if s.Variant.AllowsTuning(m) {
		s.Sel.Tuning = m
		return
	}
	s.Sel.Tuning = s.Variant.TuningModes[0]
}

// SetEmissions records the emissions-equipment state.
func (s *State) SetEmissions(e catalog.Emissions) {
	if e == catalog.EmissionsModified {
		s.Sel.Emissions = catalog.EmissionsModified
		return
	}
	s.Sel.Emissions = catalog.EmissionsIntact
}

// SetMod toggles a modification. Toggles for mods the variant does not
// allow are ignored; the lift pump goes through SetLiftPump.
func (s *State) SetMod(m catalog.Mod, on bool) {
	if m == catalog.ModLiftPump {
		s.SetLiftPump(on)
		return
	}
	if !s.Variant.AllowsMod(m) {
		return
	}
	s.Sel.Mods[m] = on
	if m == catalog.ModInjectors {
		s.reconcilePump()
	}
}

// SetInjectorSize selects an injector size; labels the variant does not
// offer are ignored.
func (s *State) SetInjectorSize(label string) {
	if !s.Variant.HasInjectorSize(label) {
		return
	}
	s.Sel.InjectorSize = label
	s.reconcilePump()
}

// SetLiftPump toggles the supporting pump unless it is locked on or the
// variant does not allow it.
func (s *State) SetLiftPump(on bool) {
	if s.PumpLocked || !s.Variant.AllowsMod(catalog.ModLiftPump) {
		return
	}
	s.Sel.Mods[catalog.ModLiftPump] = on
}

// SetMap toggles a map-mode overlay.
func (s *State) SetMap(m catalog.MapMode, on bool) {
	s.Sel.Maps[m] = on
}

// reconcilePump applies the cross-field rule: a unit-injector engine at
// its maximum injector step cannot keep supply pressure on the stock pump,
// so the uprated pump is forced on and its control locked while the
// condition holds.
func (s *State) reconcilePump() {
	v := s.Variant
	required := v.Family.RequiresPumpAtMaxStep() &&
		v.AllowsMod(catalog.ModInjectors) && s.Sel.Mods[catalog.ModInjectors] &&
		s.Sel.InjectorSize != "" && s.Sel.InjectorSize == v.MaxInjectorSize()

	if required {
		if v.AllowsMod(catalog.ModLiftPump) {
			s.Sel.Mods[catalog.ModLiftPump] = true
			s.PumpLocked = true
		}
		return
	}
	s.PumpLocked = false
}

// Estimate returns the final range for the current state.
func (s *State) Estimate() catalog.Range {
	return powercalc.Calculate(s.Variant, s.Sel)
}

// Overlays returns the map-mode overlays for the current state.
func (s *State) Overlays() []powercalc.Overlay {
	return powercalc.Overlays(s.Variant, s.Sel)
}
