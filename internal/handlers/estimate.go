package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"sync"

	"github.com/google/uuid"

	"github.com/Jakemex/TuneWorksApp/internal/catalog"
	"github.com/Jakemex/TuneWorksApp/internal/dyno"
	"github.com/Jakemex/TuneWorksApp/internal/models"
	"github.com/Jakemex/TuneWorksApp/internal/session"
)

// SessionHandler owns the per-session selection states. Each state is only
// mutated under the handler lock, preserving the single-logical-thread
// mutation model per session.
type SessionHandler struct {
	Cat *catalog.Catalog

	mu       sync.Mutex
	sessions map[string]*session.State
}

func NewSessionHandler(cat *catalog.Catalog) *SessionHandler {
	return &SessionHandler{Cat: cat, sessions: make(map[string]*session.State)}
}

// Create starts a session for a variant with default selections.
func (h *SessionHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Variant string `json:"variant"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid body", http.StatusBadRequest)
		return
	}
	v, ok := h.Cat.Get(req.Variant)
	if !ok {
		http.Error(w, "unknown variant", http.StatusNotFound)
		return
	}

	id := uuid.NewString()
	st := session.New(v)

	h.mu.Lock()
	h.sessions[id] = st
	h.mu.Unlock()

	w.WriteHeader(http.StatusCreated)
	writeJSON(w, selectionView(id, st))
}

// Get returns the reconciled selection for a session.
func (h *SessionHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	h.mu.Lock()
	defer h.mu.Unlock()
	st, ok := h.sessions[id]
	if !ok {
		http.Error(w, "not found", http.StatusNotFound)
		return
	}
	writeJSON(w, selectionView(id, st))
}

// Patch applies partial selection updates through the validated setters
// and returns the reconciled state.
func (h *SessionHandler) Patch(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	var patch models.SelectionPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		http.Error(w, "invalid body", http.StatusBadRequest)
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	st, ok := h.sessions[id]
	if !ok {
		http.Error(w, "not found", http.StatusNotFound)
		return
	}
	if err := h.applyPatch(st, patch); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	writeJSON(w, selectionView(id, st))
}

// Estimate runs the calculators for a session's current state.
func (h *SessionHandler) Estimate(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	h.mu.Lock()
	defer h.mu.Unlock()
	st, ok := h.sessions[id]
	if !ok {
		http.Error(w, "not found", http.StatusNotFound)
		return
	}
	writeJSON(w, estimate(id, st))
}

// EstimateOnce serves the stateless estimate path: a variant key plus a
// full selection patch, run through the same setter validation as a
// session, calculated once and discarded.
func (h *SessionHandler) EstimateOnce(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Variant string `json:"variant"`
		models.SelectionPatch
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid body", http.StatusBadRequest)
		return
	}
	v, ok := h.Cat.Get(req.Variant)
	if !ok {
		http.Error(w, "unknown variant", http.StatusNotFound)
		return
	}

	st := session.New(v)
	if err := h.applyPatch(st, req.SelectionPatch); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	writeJSON(w, estimate("", st))
}

func (h *SessionHandler) applyPatch(st *session.State, patch models.SelectionPatch) error {
	if patch.Variant != nil {
		v, ok := h.Cat.Get(*patch.Variant)
		if !ok {
			return errors.New("unknown variant")
		}
		st.SetVariant(v)
	}
	if patch.Turbo != nil {
		st.SetTurbo(catalog.Turbo(*patch.Turbo))
	}
	if patch.Tuning != nil {
		st.SetTuning(catalog.TuningMode(*patch.Tuning))
	}
	if patch.Emissions != nil {
		st.SetEmissions(catalog.Emissions(*patch.Emissions))
	}
	for m, on := range patch.Mods {
		st.SetMod(catalog.Mod(m), on)
	}
	if patch.InjectorSize != nil {
		st.SetInjectorSize(*patch.InjectorSize)
	}
	for m, on := range patch.Maps {
		st.SetMap(catalog.MapMode(m), on)
	}
	return nil
}

func selectionView(id string, st *session.State) models.SelectionView {
	view := models.SelectionView{
		SessionID:    id,
		Variant:      st.Variant.Key,
		Turbo:        string(st.Sel.Turbo),
		Tuning:       string(st.Sel.Tuning),
		Emissions:    string(st.Sel.Emissions),
		InjectorSize: st.Sel.InjectorSize,
		PumpLocked:   st.PumpLocked,
		Mods:         map[string]bool{},
		Maps:         map[string]bool{},
	}
	for _, m := range st.Variant.Mods {
		view.Mods[string(m)] = st.Sel.Mods[m]
	}
	for _, m := range catalog.MapModes {
		view.Maps[string(m)] = st.Sel.Maps[m]
	}
	return view
}

func estimate(id string, st *session.State) models.EstimateResponse {
	rng := st.Estimate()
	resp := models.EstimateResponse{
		Selection: selectionView(id, st),
		Range:     models.RangeView{MinKW: rng.MinKW, MaxKW: rng.MaxKW},
		Summary:   st.Summary(),
		DynoText:  st.DynoText(),
	}
	for _, ov := range st.Overlays() {
		view := models.OverlayView{
			Mode:   string(ov.Mode),
			Range:  models.RangeView{MinKW: ov.Range.MinKW, MaxKW: ov.Range.MaxKW},
			PeakKW: ov.PeakKW,
		}
		for _, s := range dyno.Curve(ov.PeakKW, st.Sel.Turbo) {
			view.Curve = append(view.Curve, models.CurvePoint{RPM: s.RPM, KW: s.KW, NM: s.NM})
		}
		resp.Overlays = append(resp.Overlays, view)
	}
	return resp
}
