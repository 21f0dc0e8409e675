package session

import (
	"strings"
	"testing"

	"github.com/Jakemex/TuneWorksApp/internal/catalog"
)

func TestSummaryLineOrderSingle(t *testing.T) {
	s := newState(t, "golf5-20cr140")
	s.SetMod(catalog.ModIntake, true)
	s.SetEmissions(catalog.EmissionsModified)

	want := strings.Join([]string{
		"TuneWorks Estimate",
		"VW Golf Mk5 2.0 TDI CR 140",
		"Turbo: Stock | Tuning: single calibration",
		"Emissions equipment: modified",
		"Estimated power: 139-164 kW",
		"Modifications: intake",
	}, "\n")
	if got := s.Summary(); got != want {
		t.Errorf("Summary =\n%s\nwant\n%s", got, want)
	}
}

func TestSummaryMultimapAndPumpNote(t *testing.T) {
	s := newState(t, "golf4-19pd130")
	s.SetTuning(catalog.TuningMultimap)
	s.SetMod(catalog.ModInjectors, true)
	s.SetInjectorSize("PP764")
	s.SetMap(catalog.MapEco, false)

	got := s.Summary()
	lines := strings.Split(got, "\n")
	if len(lines) != 8 {
		t.Fatalf("Summary has %d lines, want 8:\n%s", len(lines), got)
	}
	if lines[3] != "Maps shown: Daily, Tow, Max" {
		t.Errorf("maps line = %q", lines[3])
	}
	if !strings.HasPrefix(lines[6], "Modifications: injectors (PP764), lift pump") {
		t.Errorf("mods line = %q", lines[6])
	}
	if lines[7] != "Note: uprated lift pump required with PP764 injectors" {
		t.Errorf("note line = %q", lines[7])
	}
}

func TestSummaryNoModsLine(t *testing.T) {
	s := newState(t, "t5-25tdi174")
	got := s.Summary()
	if !strings.HasSuffix(got, "Modifications: none") {
		t.Errorf("Summary should end with the empty mods line:\n%s", got)
	}
	if strings.Contains(got, "Maps shown") {
		t.Error("single-calibration summary must not contain a maps line")
	}
}

func TestDynoTextOneLinePerOverlay(t *testing.T) {
	s := newState(t, "golf5-20cr140")
	s.SetTuning(catalog.TuningMultimap)

	lines := strings.Split(s.DynoText(), "\n")
	if len(lines) != 4 {
		t.Fatalf("DynoText has %d lines, want 4:\n%s", len(lines), s.DynoText())
	}
	for _, line := range lines {
		if !strings.Contains(line, "kW") || !strings.Contains(line, "rpm") {
			t.Errorf("malformed dyno line %q", line)
		}
	}
}
