package catalog

// Catalog is the immutable variant set, constructed once at startup with a
// fitment table applied.
type Catalog struct {
	variants []*Variant
	byKey    map[string]*Variant
}

// New builds the catalog, resolving each variant's turbo set against the
// given fitment table.
func New(fitment Table) *Catalog {
	c := &Catalog{byKey: make(map[string]*Variant)}
	for _, v := range variantDefs() {
		v.Turbos = Resolve(fitment, v.Platform, v.Turbos)
		c.variants = append(c.variants, v)
		c.byKey[v.Key] = v
	}
	return c
}

// Variants returns all variants in catalog order.
func (c *Catalog) Variants() []*Variant {
	return c.variants
}

// Get looks up a variant by key.
func (c *Catalog) Get(key string) (*Variant, bool) {
	v, ok := c.byKey[key]
	return v, ok
}

// Makes lists vehicle makes in catalog order, deduplicated.
func (c *Catalog) Makes() []string {
	var out []string
	seen := map[string]bool{}
	for _, v := range c.variants {
		if !seen[v.Make] {
			seen[v.Make] = true
			out = append(out, v.Make)
		}
	}
	return out
}

// Models lists models for a make in catalog order, deduplicated.
func (c *Catalog) Models(mk string) []string {
	var out []string
	seen := map[string]bool{}
	for _, v := range c.variants {
		if v.Make != mk || seen[v.Model] {
			continue
		}
		seen[v.Model] = true
		out = append(out, v.Model)
	}
	return out
}

// VariantsFor lists the variants of a make+model.
func (c *Catalog) VariantsFor(mk, model string) []*Variant {
	var out []*Variant
	for _, v := range c.variants {
		if v.Make == mk && v.Model == model {
			out = append(out, v)
		}
	}
	return out
}

func injectorLabels(steps []InjectorStep) []string {
	out := make([]string, len(steps))
	for i, s := range steps {
		out[i] = s.Label
	}
	return out
}

// variantDefs returns the hand-authored variant set. Turbo lists here are
// the allow-lists Resolve filters against, not the final resolved sets.
func variantDefs() []*Variant {
	return []*Variant{
		{
			Key:      "golf4-19pd130",
			Make:     "VW",
			Model:    "Golf Mk4",
			Engine:   "1.9 TDI PD 130",
			Family:   FamilyPD,
			Platform: "vw-golf-mk4-19tdi",
			RPMMin:   850,
			RPMMax:   4800,
			Turbos:   []Turbo{TurboStock, TurboGTB1756VK, TurboGTB2260VK},
			TuningModes: []TuningMode{TuningSingle, TuningMultimap},
			Mods: []Mod{ModIntake, ModIntercooler, ModChargePipe, ModInjectors, ModLiftPump},
			InjectorSizes: injectorLabels(PDInjectorSteps),
			BasePower: map[Turbo]map[TuningMode]Range{
				TurboStock:     {TuningSingle: {118, 128}, TuningMultimap: {120, 130}},
				TurboGTB1756VK: {TuningSingle: {136, 150}, TuningMultimap: {138, 152}},
				TurboGTB2260VK: {TuningSingle: {160, 178}, TuningMultimap: {162, 180}},
			},
			TurboCap: map[Turbo]int{TurboGTB2260VK: 185},
		},
		{
			Key:      "golf5-20cr140",
			Make:     "VW",
			Model:    "Golf Mk5",
			Engine:   "2.0 TDI CR 140",
			Family:   FamilyCR,
			Platform: "vw-golf-mk5-20tdi",
			RPMMin:   900,
			RPMMax:   5000,
			Turbos:   []Turbo{TurboStock, TurboGTB2260VK, TurboGTB2871R},
			TuningModes: []TuningMode{TuningSingle, TuningMultimap},
			Mods: []Mod{ModIntake, ModIntercooler, ModChargePipe, ModHeatExchanger, ModInjectors, ModLiftPump},
			InjectorSizes: injectorLabels(CRInjectorSteps),
			BasePower: map[Turbo]map[TuningMode]Range{
				TurboStock:     {TuningSingle: {125, 145}, TuningMultimap: {127, 147}},
				TurboGTB2260VK: {TuningSingle: {168, 186}, TuningMultimap: {170, 188}},
				TurboGTB2871R:  {TuningSingle: {196, 214}, TuningMultimap: {198, 216}},
			},
			TurboCap: map[Turbo]int{TurboGTB2871R: 210},
		},
		{
			Key:      "octavia2-19pd105",
			Make:     "Skoda",
			Model:    "Octavia Mk2",
			Engine:   "1.9 TDI PD 105",
			Family:   FamilyPD,
			Platform: "skoda-octavia-mk2-19tdi",
			RPMMin:   850,
			RPMMax:   4600,
			Turbos:   []Turbo{TurboStock, TurboGTB1756VK},
			TuningModes: []TuningMode{TuningSingle, TuningMultimap},
			Mods: []Mod{ModIntake, ModIntercooler, ModInjectors, ModLiftPump},
			InjectorSizes: injectorLabels(PDInjectorSteps),
			BasePower: map[Turbo]map[TuningMode]Range{
				TurboStock:     {TuningSingle: {96, 104}, TuningMultimap: {98, 106}},
				TurboGTB1756VK: {TuningSingle: {125, 138}, TuningMultimap: {127, 140}},
			},
		},
		{
			Key:      "a4b8-20cr170",
			Make:     "Audi",
			Model:    "A4 B8",
			Engine:   "2.0 TDI CR 170",
			Family:   FamilyCR,
			Platform: "audi-a4-b8-20tdi",
			RPMMin:   900,
			RPMMax:   5100,
			Turbos:   []Turbo{TurboStock, TurboGTB2871R, TurboGTD3076R},
			TuningModes: []TuningMode{TuningSingle, TuningMultimap},
			Mods: []Mod{ModIntake, ModIntercooler, ModChargePipe, ModHeatExchanger, ModInjectors, ModLiftPump},
			InjectorSizes: injectorLabels(CRInjectorSteps),
			BasePower: map[Turbo]map[TuningMode]Range{
				TurboStock:    {TuningSingle: {148, 162}, TuningMultimap: {150, 164}},
				TurboGTB2871R: {TuningSingle: {205, 226}, TuningMultimap: {207, 228}},
				TurboGTD3076R: {TuningSingle: {228, 252}, TuningMultimap: {230, 254}},
			},
			ModAddOverride: map[Mod]Range{ModIntercooler: {6, 12}},
			TurboCap:       map[Turbo]int{TurboGTD3076R: 245},
		},
		{
			Key:      "t5-25tdi174",
			Make:     "VW",
			Model:    "Transporter T5",
			Engine:   "2.5 TDI PD 174",
			Family:   FamilyPD,
			Platform: "vw-t5-25tdi",
			RPMMin:   800,
			RPMMax:   4500,
			Turbos:   []Turbo{TurboStock, TurboGTB2260VK},
			TuningModes: []TuningMode{TuningSingle},
			Mods: []Mod{ModIntake, ModIntercooler, ModChargePipe, ModLiftPump},
			BasePower: map[Turbo]map[TuningMode]Range{
				TurboStock:     {TuningSingle: {150, 160}},
				TurboGTB2260VK: {TuningSingle: {185, 205}},
			},
			TurboCap: map[Turbo]int{TurboGTB2260VK: 200},
		},
	}
}
