// Package models holds the JSON shapes served by the API.
package models

// VariantListItem is the shape for variant listings.
type VariantListItem struct {
	Key    string `json:"key"`
	Make   string `json:"make"`
	Model  string `json:"model"`
	Engine string `json:"engine"`
}

// VariantDetail describes a variant's full legal option space.
type VariantDetail struct {
	Key           string         `json:"key"`
	Make          string         `json:"make"`
	Model         string         `json:"model"`
	Engine        string         `json:"engine"`
	Family        string         `json:"family"`
	RPMMin        int            `json:"rpmMin"`
	RPMMax        int            `json:"rpmMax"`
	Turbos        []string       `json:"turbos"`
	TuningModes   []string       `json:"tuningModes"`
	Mods          []string       `json:"mods"`
	InjectorSizes []string       `json:"injectorSizes,omitempty"`
	TurboCaps     map[string]int `json:"turboCaps,omitempty"`
}

// SelectionPatch carries partial selection updates; nil fields are left
// untouched.
type SelectionPatch struct {
	Variant      *string          `json:"variant,omitempty"`
	Turbo        *string          `json:"turbo,omitempty"`
	Tuning       *string          `json:"tuning,omitempty"`
	Emissions    *string          `json:"emissions,omitempty"`
	Mods         map[string]bool  `json:"mods,omitempty"`
	InjectorSize *string          `json:"injectorSize,omitempty"`
	Maps         map[string]bool  `json:"maps,omitempty"`
}

// SelectionView mirrors the reconciled server-side state back to the
// client.
type SelectionView struct {
	SessionID    string          `json:"sessionId,omitempty"`
	Variant      string          `json:"variant"`
	Turbo        string          `json:"turbo"`
	Tuning       string          `json:"tuning"`
	Emissions    string          `json:"emissions"`
	Mods         map[string]bool `json:"mods"`
	InjectorSize string          `json:"injectorSize,omitempty"`
	PumpLocked   bool            `json:"pumpLocked"`
	Maps         map[string]bool `json:"maps"`
}

// RangeView is a min/max kW pair.
type RangeView struct {
	MinKW int `json:"minKw"`
	MaxKW int `json:"maxKw"`
}

// OverlayView is one map-mode series.
type OverlayView struct {
	Mode   string       `json:"mode"`
	Range  RangeView    `json:"range"`
	PeakKW float64      `json:"peakKw"`
	Curve  []CurvePoint `json:"curve"`
}

// CurvePoint is one synthesized dyno sample.
type CurvePoint struct {
	RPM int `json:"rpm"`
	KW  int `json:"kw"`
	NM  int `json:"nm"`
}

// EstimateResponse is the full calculation result for a selection.
type EstimateResponse struct {
	Selection SelectionView `json:"selection"`
	Range     RangeView     `json:"range"`
	Overlays  []OverlayView `json:"overlays"`
	Summary   string        `json:"summary"`
	DynoText  string        `json:"dynoText"`
}

// FitmentMeta identifies the fitment generation the server is running on.
type FitmentMeta struct {
	Generation string `json:"generation"`
	CreatedAt  string `json:"createdAt"`
	Source     string `json:"source"`
}
