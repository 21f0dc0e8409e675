package session

import (
	"fmt"
	"strings"

	"github.com/Jakemex/TuneWorksApp/internal/catalog"
	"github.com/Jakemex/TuneWorksApp/internal/dyno"
)

// appName heads every summary; operators paste the block verbatim, so the
// line order and presence rules below are part of the contract.
const appName = "TuneWorks Estimate"

// psPerKW converts kW to metric horsepower for the dyno lines.
const psPerKW = 1.35962

// Summary renders the fixed multi-line estimate text:
//
//	app name
//	vehicle + variant label
//	turbo + tuning line
//	maps-shown line (multi-map only)
//	emissions line
//	estimated power line
//	modifications line
//	lift-pump note (only while the pump is locked on)
func (s *State) Summary() string {
	v := s.Variant
	rng := s.Estimate()

	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", appName)
	fmt.Fprintf(&b, "%s\n", v.Label())
	fmt.Fprintf(&b, "Turbo: %s | Tuning: %s\n", s.Sel.Turbo.Display(), s.Sel.Tuning.Display())

	if s.Sel.Tuning == catalog.TuningMultimap {
		fmt.Fprintf(&b, "Maps shown: %s\n", s.mapsShown())
	}

	fmt.Fprintf(&b, "Emissions equipment: %s\n", string(s.Sel.Emissions))
	fmt.Fprintf(&b, "Estimated power: %d-%d kW\n", rng.MinKW, rng.MaxKW)
	fmt.Fprintf(&b, "Modifications: %s", s.modsLine())

	if s.PumpLocked {
		fmt.Fprintf(&b, "\nNote: uprated lift pump required with %s injectors", s.Sel.InjectorSize)
	}
	return b.String()
}

func (s *State) mapsShown() string {
	var names []string
	for _, ov := range s.Overlays() {
		names = append(names, ov.Mode.Display())
	}
	return strings.Join(names, ", ")
}

func (s *State) modsLine() string {
	var names []string
	for _, m := range s.Variant.Mods {
		if !s.Sel.Mods[m] {
			continue
		}
		name := m.Display()
		if m == catalog.ModInjectors && s.Sel.InjectorSize != "" {
			name = fmt.Sprintf("injectors (%s)", s.Sel.InjectorSize)
		}
		names = append(names, name)
	}
	if len(names) == 0 {
		return "none"
	}
	return strings.Join(names, ", ")
}

// DynoText renders one line per overlay with the peak estimate and the
// modeled peak RPM for the selected turbo.
func (s *State) DynoText() string {
	var lines []string
	for _, ov := range s.Overlays() {
		lines = append(lines, fmt.Sprintf("%s: %.0f kW / %.0f PS peak @ %d rpm",
			ov.Mode.Display(), ov.PeakKW, ov.PeakKW*psPerKW, dyno.PeakRPM(s.Sel.Turbo)))
	}
	return strings.Join(lines, "\n")
}
