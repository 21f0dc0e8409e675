package catalog

import "fmt"

// Variant is one vehicle/engine configuration with its legal option space.
// Variants are built once at catalog construction and never mutated.
type Variant struct {
	Key      string
	Make     string
	Model    string
	Engine   string
	Family   EngineFamily
	Platform string

	RPMMin int
	RPMMax int

	Turbos        []Turbo // fitment-resolved, baseline first
	TuningModes   []TuningMode
	Mods          []Mod
	InjectorSizes []string

	BasePower      map[Turbo]map[TuningMode]Range
	ModAddOverride map[Mod]Range
	TurboCap       map[Turbo]int
}

// Label returns the full vehicle description line.
func (v *Variant) Label() string {
	return fmt.Sprintf("%s %s %s", v.Make, v.Model, v.Engine)
}

// AllowsTurbo reports whether t is in the variant's resolved turbo set.
func (v *Variant) AllowsTurbo(t Turbo) bool {
	for _, x := range v.Turbos {
		if x == t {
			return true
		}
	}
	return false
}

// AllowsTuning reports whether m is a supported tuning mode.
func (v *Variant) AllowsTuning(m TuningMode) bool {
	for _, x := range v.TuningModes {
		if x == m {
			return true
		}
	}
	return false
}

// AllowsMod reports whether the modification may be toggled on.
func (v *Variant) AllowsMod(m Mod) bool {
	for _, x := range v.Mods {
		if x == m {
			return true
		}
	}
	return false
}

// ModAdd returns the additive range for a modification, preferring the
// variant override over the default table. Unknown keys contribute nothing.
func (v *Variant) ModAdd(m Mod) Range {
	if r, ok := v.ModAddOverride[m]; ok {
		return r
	}
	if r, ok := DefaultModAdd[m]; ok {
		return r
	}
	return Range{}
}

// Base returns the base power range for a turbo and tuning mode, or the
// neutral zero range when the combination is not in the table.
func (v *Variant) Base(t Turbo, m TuningMode) Range {
	if byMode, ok := v.BasePower[t]; ok {
		if r, ok := byMode[m]; ok {
			return r
		}
	}
	return Range{}
}

// Cap returns the hard cap for a turbo, if one is defined.
func (v *Variant) Cap(t Turbo) (int, bool) {
	c, ok := v.TurboCap[t]
	return c, ok
}

// MaxInjectorSize returns the largest selectable injector label, or "".
func (v *Variant) MaxInjectorSize() string {
	if len(v.InjectorSizes) == 0 {
		return ""
	}
	return v.InjectorSizes[len(v.InjectorSizes)-1]
}

// HasInjectorSize reports whether the label is selectable on this variant.
func (v *Variant) HasInjectorSize(label string) bool {
	for _, s := range v.InjectorSizes {
		if s == label {
			return true
		}
	}
	return false
}

// Validate checks the catalog invariants: every base-power key must belong
// to the resolved turbo and tuning sets, and every allowed modification
// must resolve to an add value.
func (v *Variant) Validate() error {
	if len(v.Turbos) == 0 || v.Turbos[0] != TurboStock {
		return fmt.Errorf("variant %s: turbo set must start with the stock baseline", v.Key)
	}
	for t, byMode := range v.BasePower {
		if !v.AllowsTurbo(t) {
			return fmt.Errorf("variant %s: base power references disallowed turbo %s", v.Key, t)
		}
		for m := range byMode {
			if !v.AllowsTuning(m) {
				return fmt.Errorf("variant %s: base power references disallowed tuning mode %s", v.Key, m)
			}
		}
	}
	for _, m := range v.Mods {
		if m == ModInjectors {
			continue // injector adds come from the family table
		}
		if v.ModAdd(m).IsZero() {
			return fmt.Errorf("variant %s: modification %s has no add value", v.Key, m)
		}
	}
	return nil
}
