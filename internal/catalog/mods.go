package catalog

// Mod is a supporting hardware modification key.
type Mod string

const (
	ModIntake        Mod = "intake"
	ModIntercooler   Mod = "intercooler"
	ModChargePipe    Mod = "chargepipe"
	ModHeatExchanger Mod = "heatexchanger"
	ModInjectors     Mod = "injectors"
	ModLiftPump      Mod = "liftpump"
)

// BoltOnMods is the fixed order in which plain bolt-on adds are applied.
// Injectors and the lift pump are handled as separate calculator steps.
var BoltOnMods = []Mod{ModIntake, ModIntercooler, ModChargePipe, ModHeatExchanger}

// DefaultModAdd holds the additive kW range each modification contributes
// unless the variant overrides it.
var DefaultModAdd = map[Mod]Range{
	ModIntake:        {1, 4},
	ModIntercooler:   {4, 9},
	ModChargePipe:    {2, 5},
	ModHeatExchanger: {3, 6},
	ModLiftPump:      {2, 6},
}

var modDisplay = map[Mod]string{
	ModIntake:        "intake",
	ModIntercooler:   "intercooler",
	ModChargePipe:    "charge pipe",
	ModHeatExchanger: "heat exchanger",
	ModInjectors:     "injectors",
	ModLiftPump:      "lift pump",
}

// Display returns the human-readable name for a modification.
func (m Mod) Display() string {
	if d, ok := modDisplay[m]; ok {
		return d
	}
	return string(m)
}

// EngineFamily groups variants that share injector hardware.
type EngineFamily string

const (
	FamilyPD EngineFamily = "pd" // unit-injector engines
	FamilyCR EngineFamily = "cr" // common-rail engines
)

// RequiresPumpAtMaxStep reports whether the family's largest injector step
// needs the uprated lift pump to maintain supply pressure.
func (f EngineFamily) RequiresPumpAtMaxStep() bool {
	return f == FamilyPD
}

// InjectorStep is one selectable injector size with its additive range.
type InjectorStep struct {
	Label string
	Add   Range
}

// PDInjectorSteps is the two-step table for unit-injector engines.
var PDInjectorSteps = []InjectorStep{
	{"PP520", Range{8, 14}},
	{"PP764", Range{18, 30}},
}

// CRInjectorSteps is the generic common-rail nozzle table.
var CRInjectorSteps = []InjectorStep{
	{"+10% nozzles", Range{5, 9}},
	{"+20% nozzles", Range{10, 16}},
	{"+30% nozzles", Range{16, 24}},
	{"+40% nozzles", Range{22, 32}},
}

// InjectorSteps returns the injector table for an engine family.
func InjectorSteps(f EngineFamily) []InjectorStep {
	if f == FamilyPD {
		return PDInjectorSteps
	}
	return CRInjectorSteps
}

// InjectorAdd looks up the additive range for a size label. Unknown labels
// contribute nothing.
func InjectorAdd(f EngineFamily, label string) Range {
	for _, step := range InjectorSteps(f) {
		if step.Label == label {
			return step.Add
		}
	}
	return Range{}
}

// TuningMode selects between one fixed calibration and switchable maps.
type TuningMode string

const (
	TuningSingle   TuningMode = "single"
	TuningMultimap TuningMode = "multimap"
)

// Display returns the human-readable name for a tuning mode.
func (t TuningMode) Display() string {
	switch t {
	case TuningSingle:
		return "single calibration"
	case TuningMultimap:
		return "multi-map"
	}
	return string(t)
}

// MapMode is one switchable calibration profile under multi-mapping.
type MapMode string

const (
	MapEco   MapMode = "eco"
	MapDaily MapMode = "daily"
	MapTow   MapMode = "tow"
	MapMax   MapMode = "max"
)

// MapModes is the fixed presentation order for overlays.
var MapModes = []MapMode{MapEco, MapDaily, MapTow, MapMax}

// MapScalar scales each profile relative to the maximum profile.
var MapScalar = map[MapMode]float64{
	MapEco:   0.75,
	MapDaily: 0.85,
	MapTow:   0.92,
	MapMax:   1.0,
}

var mapDisplay = map[MapMode]string{
	MapEco:   "Eco",
	MapDaily: "Daily",
	MapTow:   "Tow",
	MapMax:   "Max",
}

// Display returns the human-readable name for a map mode.
func (m MapMode) Display() string {
	if d, ok := mapDisplay[m]; ok {
		return d
	}
	return string(m)
}

// Emissions is the state of the emissions-control equipment.
type Emissions string

const (
	EmissionsIntact   Emissions = "intact"
	EmissionsModified Emissions = "modified"
)

// emissionsModifiedScalar is the output gain with emissions equipment
// removed (no DPF back-pressure, EGR closed).
const emissionsModifiedScalar = 1.1

// Scalar returns the multiplier applied to the final range.
func (e Emissions) Scalar() float64 {
	if e == EmissionsModified {
		return emissionsModifiedScalar
	}
	return 1.0
}
