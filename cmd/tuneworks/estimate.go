package main

import (
	"fmt"
	"strings"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/Jakemex/TuneWorksApp/internal/catalog"
	"github.com/Jakemex/TuneWorksApp/internal/dyno"
	"github.com/Jakemex/TuneWorksApp/internal/session"
)

func estimateCmd() *cobra.Command {
	var turbo, tuning, injector string
	var mods, maps []string
	var emissionsModified bool
	cmd := &cobra.Command{
		Use:   "estimate [variant-key]",
		Short: "Run a one-shot estimate for a variant",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runEstimate(args[0], turbo, tuning, injector, mods, maps, emissionsModified)
		},
	}
	cmd.Flags().StringVar(&turbo, "turbo", "", "turbo code (default: first allowed)")
	cmd.Flags().StringVar(&tuning, "tuning", "", "tuning mode: single or multimap")
	cmd.Flags().StringVar(&injector, "injector", "", "injector size label")
	cmd.Flags().StringSliceVar(&mods, "mods", nil, "modifications to enable")
	cmd.Flags().StringSliceVar(&maps, "maps", nil, "map modes to show (default: all)")
	cmd.Flags().BoolVar(&emissionsModified, "emissions-modified", false, "emissions equipment removed")
	return cmd
}

func runEstimate(variantKey, turbo, tuning, injector string, mods, maps []string, emissionsModified bool) error {
	cat := catalog.New(catalog.DefaultFitment)
	v, ok := cat.Get(variantKey)
	if !ok {
		var keys []string
		for _, x := range cat.Variants() {
			keys = append(keys, x.Key)
		}
		return fmt.Errorf("unknown variant %q (known: %s)", variantKey, strings.Join(keys, ", "))
	}

	st := session.New(v)
	if turbo != "" {
		st.SetTurbo(catalog.Turbo(turbo))
	}
	if tuning != "" {
		st.SetTuning(catalog.TuningMode(tuning))
	}
	if emissionsModified {
		st.SetEmissions(catalog.EmissionsModified)
	}
	for _, m := range mods {
		st.SetMod(catalog.Mod(m), true)
	}
	if injector != "" {
		st.SetInjectorSize(injector)
	}
	if len(maps) > 0 {
		for _, m := range catalog.MapModes {
			st.SetMap(m, false)
		}
		for _, m := range maps {
			st.SetMap(catalog.MapMode(m), true)
		}
	}

	pterm.DefaultSection.Println("Summary")
	pterm.Println(st.Summary())

	pterm.DefaultSection.Println("Overlays")
	overlayData := pterm.TableData{{"Mode", "Range (kW)", "Peak (kW)"}}
	for _, ov := range st.Overlays() {
		overlayData = append(overlayData, []string{
			ov.Mode.Display(),
			fmt.Sprintf("%d-%d", ov.Range.MinKW, ov.Range.MaxKW),
			fmt.Sprintf("%.0f", ov.PeakKW),
		})
	}
	pterm.DefaultTable.WithHasHeader().WithData(overlayData).Render()
	pterm.Println(st.DynoText())

	// Print the top overlay's curve at a coarser pitch than the sweep.
	overlays := st.Overlays()
	top := overlays[len(overlays)-1]
	curveData := pterm.TableData{{"RPM", "kW", "Nm"}}
	for _, s := range dyno.Curve(top.PeakKW, st.Sel.Turbo) {
		if s.RPM%500 != 0 {
			continue
		}
		curveData = append(curveData, []string{
			fmt.Sprintf("%d", s.RPM), fmt.Sprintf("%d", s.KW), fmt.Sprintf("%d", s.NM),
		})
	}
	pterm.DefaultSection.Printfln("Dyno curve (%s)", top.Mode.Display())
	pterm.DefaultTable.WithHasHeader().WithData(curveData).Render()
	return nil
}
