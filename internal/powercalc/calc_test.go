package powercalc

import (
	"reflect"
	"testing"

	"github.com/Jakemex/TuneWorksApp/internal/catalog"
)

func mustGet(t *testing.T, cat *catalog.Catalog, key string) *catalog.Variant {
	t.Helper()
	v, ok := cat.Get(key)
	if !ok {
		t.Fatalf("variant %s not in catalog", key)
	}
	return v
}

func TestCalculateIntakeAndEmissions(t *testing.T) {
	cat := catalog.New(catalog.DefaultFitment)
	v := mustGet(t, cat, "golf5-20cr140")

	// Base [125,145], intake [1,4], emissions 1.1:
	// round(126*1.1)=139, round(149*1.1)=164.
	sel := Selection{
		Turbo:     catalog.TurboStock,
		Tuning:    catalog.TuningSingle,
		Emissions: catalog.EmissionsModified,
		Mods:      map[catalog.Mod]bool{catalog.ModIntake: true},
	}
	if got, want := Calculate(v, sel), (catalog.Range{MinKW: 139, MaxKW: 164}); got != want {
		t.Errorf("Calculate = %v, want %v", got, want)
	}
}

func TestCalculateInvalidCombinationIsZero(t *testing.T) {
	cat := catalog.New(catalog.DefaultFitment)
	v := mustGet(t, cat, "golf4-19pd130")

	sel := Selection{
		Turbo:     catalog.TurboGTD3076R, // never fitted to this platform
		Tuning:    catalog.TuningSingle,
		Emissions: catalog.EmissionsModified,
		Mods:      map[catalog.Mod]bool{catalog.ModIntake: true, catalog.ModIntercooler: true},
	}
	got := Calculate(v, sel)
	// Base degrades to [0,0]; the allowed mods still add, emissions still
	// scales. The calculator never fails, it just renders a small range.
	if got.MinKW > got.MaxKW || got.MinKW < 0 {
		t.Errorf("Calculate = %v, want ordered non-negative range", got)
	}

	sel.Mods = nil
	if got := Calculate(v, sel); !got.IsZero() {
		t.Errorf("Calculate with no mods = %v, want zero range", got)
	}
}

func TestCalculateDisallowedModsIgnored(t *testing.T) {
	cat := catalog.New(catalog.DefaultFitment)
	v := mustGet(t, cat, "octavia2-19pd105") // no charge pipe, no heat exchanger

	base := Selection{Turbo: catalog.TurboStock, Tuning: catalog.TuningSingle, Emissions: catalog.EmissionsIntact}
	with := base
	with.Mods = map[catalog.Mod]bool{catalog.ModChargePipe: true, catalog.ModHeatExchanger: true}

	if got, want := Calculate(v, with), Calculate(v, base); got != want {
		t.Errorf("disallowed mods changed result: %v != %v", got, want)
	}
}

func TestCalculateUnknownInjectorSizeIsNeutral(t *testing.T) {
	cat := catalog.New(catalog.DefaultFitment)
	v := mustGet(t, cat, "golf5-20cr140")

	off := Selection{Turbo: catalog.TurboStock, Tuning: catalog.TuningSingle, Emissions: catalog.EmissionsIntact}
	on := off
	on.Mods = map[catalog.Mod]bool{catalog.ModInjectors: true}
	on.InjectorSize = "PP999"

	if got, want := Calculate(v, on), Calculate(v, off); got != want {
		t.Errorf("unknown injector size changed result: %v != %v", got, want)
	}
}

func TestCalculateOrderedAndNonNegativeEverywhere(t *testing.T) {
	cat := catalog.New(catalog.DefaultFitment)
	for _, v := range cat.Variants() {
		for _, turbo := range v.Turbos {
			for _, mode := range v.TuningModes {
				sel := Selection{
					Turbo:        turbo,
					Tuning:       mode,
					Emissions:    catalog.EmissionsModified,
					Mods:         map[catalog.Mod]bool{},
					InjectorSize: v.MaxInjectorSize(),
				}
				for _, m := range v.Mods {
					sel.Mods[m] = true
				}

				got := Calculate(v, sel)
				if got.MinKW > got.MaxKW {
					t.Errorf("%s/%s/%s: min %d > max %d", v.Key, turbo, mode, got.MinKW, got.MaxKW)
				}
				if got.MinKW < 0 {
					t.Errorf("%s/%s/%s: negative bound %d", v.Key, turbo, mode, got.MinKW)
				}
				if limit, ok := v.Cap(turbo); ok && got.MaxKW > limit {
					t.Errorf("%s/%s/%s: max %d exceeds cap %d", v.Key, turbo, mode, got.MaxKW, limit)
				}
			}
		}
	}
}

func TestCalculateIdempotent(t *testing.T) {
	cat := catalog.New(catalog.DefaultFitment)
	v := mustGet(t, cat, "a4b8-20cr170")

	sel := Selection{
		Turbo:        catalog.TurboGTD3076R,
		Tuning:       catalog.TuningMultimap,
		Emissions:    catalog.EmissionsModified,
		Mods:         map[catalog.Mod]bool{catalog.ModIntake: true, catalog.ModIntercooler: true, catalog.ModInjectors: true},
		InjectorSize: "+30% nozzles",
	}
	first := Calculate(v, sel)
	second := Calculate(v, sel)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("Calculate not idempotent: %v then %v", first, second)
	}
}

func TestCalculateCapNeverRaises(t *testing.T) {
	cat := catalog.New(catalog.DefaultFitment)
	v := mustGet(t, cat, "golf4-19pd130")

	// Stock turbo has no cap; the capped GTB2260VK result must never be
	// lifted toward its cap of 185.
	sel := Selection{Turbo: catalog.TurboGTB2260VK, Tuning: catalog.TuningSingle, Emissions: catalog.EmissionsIntact}
	got := Calculate(v, sel)
	if want := v.Base(catalog.TurboGTB2260VK, catalog.TuningSingle); got != want {
		t.Errorf("cap raised bounds: %v, want %v", got, want)
	}
}

func TestVariantOverrideIsUsed(t *testing.T) {
	cat := catalog.New(catalog.DefaultFitment)
	v := mustGet(t, cat, "a4b8-20cr170") // intercooler override [6,12]

	base := Selection{Turbo: catalog.TurboStock, Tuning: catalog.TuningSingle, Emissions: catalog.EmissionsIntact}
	with := base
	with.Mods = map[catalog.Mod]bool{catalog.ModIntercooler: true}

	diff := Calculate(v, with).Add(Calculate(v, base).Scale(-1))
	if diff != (catalog.Range{MinKW: 6, MaxKW: 12}) {
		t.Errorf("intercooler add = %v, want override [6,12]", diff)
	}
}
