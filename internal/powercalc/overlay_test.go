package powercalc

import (
	"testing"

	"github.com/Jakemex/TuneWorksApp/internal/catalog"
)

func TestOverlaysSingleCalibration(t *testing.T) {
	cat := catalog.New(catalog.DefaultFitment)
	v := mustGet(t, cat, "golf5-20cr140")

	sel := Selection{
		Turbo:     catalog.TurboStock,
		Tuning:    catalog.TuningSingle,
		Emissions: catalog.EmissionsIntact,
		Maps:      map[catalog.MapMode]bool{}, // irrelevant under single
	}
	got := Overlays(v, sel)
	if len(got) != 1 {
		t.Fatalf("Overlays = %d series, want 1", len(got))
	}
	if got[0].Mode != catalog.MapMax {
		t.Errorf("mode = %s, want max", got[0].Mode)
	}
	if got[0].Range != v.Base(catalog.TurboStock, catalog.TuningSingle) {
		t.Errorf("range = %v, want unscaled base", got[0].Range)
	}
}

func TestOverlaysMultimap(t *testing.T) {
	cat := catalog.New(catalog.DefaultFitment)
	v := mustGet(t, cat, "golf5-20cr140")

	sel := Selection{
		Turbo:     catalog.TurboStock,
		Tuning:    catalog.TuningMultimap,
		Emissions: catalog.EmissionsModified,
		Maps: map[catalog.MapMode]bool{
			catalog.MapEco: true, catalog.MapDaily: true,
			catalog.MapTow: true, catalog.MapMax: true,
		},
	}
	got := Overlays(v, sel)
	if len(got) != 4 {
		t.Fatalf("Overlays = %d series, want 4", len(got))
	}

	// Fixed order, and monotonically increasing peaks with the scalar.
	wantOrder := []catalog.MapMode{catalog.MapEco, catalog.MapDaily, catalog.MapTow, catalog.MapMax}
	for i, ov := range got {
		if ov.Mode != wantOrder[i] {
			t.Errorf("overlay %d mode = %s, want %s", i, ov.Mode, wantOrder[i])
		}
		if i > 0 && got[i-1].PeakKW > ov.PeakKW {
			t.Errorf("peaks not ascending: %s %.1f > %s %.1f",
				got[i-1].Mode, got[i-1].PeakKW, ov.Mode, ov.PeakKW)
		}
	}

	// Max overlay applies emissions alone: base [127,147] * 1.1.
	base := v.Base(catalog.TurboStock, catalog.TuningMultimap)
	if want := base.Scale(1.1); got[3].Range != want {
		t.Errorf("max overlay range = %v, want %v", got[3].Range, want)
	}
}

func TestOverlaysAllDisabledFallsBack(t *testing.T) {
	cat := catalog.New(catalog.DefaultFitment)
	v := mustGet(t, cat, "golf4-19pd130")

	sel := Selection{
		Turbo:     catalog.TurboGTB1756VK,
		Tuning:    catalog.TuningMultimap,
		Emissions: catalog.EmissionsModified,
		Maps:      map[catalog.MapMode]bool{}, // everything off
	}
	got := Overlays(v, sel)
	if len(got) != 1 {
		t.Fatalf("Overlays = %d series, want exactly 1 fallback", len(got))
	}
	if got[0].Mode != catalog.MapMax {
		t.Errorf("fallback mode = %s, want max", got[0].Mode)
	}
	want := v.Base(catalog.TurboGTB1756VK, catalog.TuningMultimap).Scale(1.1)
	if got[0].Range != want {
		t.Errorf("fallback range = %v, want emissions-only %v", got[0].Range, want)
	}
}

func TestOverlaysRespectTurboCap(t *testing.T) {
	cat := catalog.New(catalog.DefaultFitment)
	v := mustGet(t, cat, "golf4-19pd130") // GTB2260VK capped at 185

	sel := Selection{
		Turbo:     catalog.TurboGTB2260VK,
		Tuning:    catalog.TuningMultimap,
		Emissions: catalog.EmissionsModified,
		Maps: map[catalog.MapMode]bool{
			catalog.MapEco: true, catalog.MapDaily: true,
			catalog.MapTow: true, catalog.MapMax: true,
		},
	}
	for _, ov := range Overlays(v, sel) {
		if ov.Range.MaxKW > 185 {
			t.Errorf("%s overlay max %d exceeds cap 185", ov.Mode, ov.Range.MaxKW)
		}
		if ov.PeakKW > 185 {
			t.Errorf("%s overlay peak %.1f exceeds cap 185", ov.Mode, ov.PeakKW)
		}
	}
}
