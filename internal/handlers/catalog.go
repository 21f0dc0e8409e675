package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/Jakemex/TuneWorksApp/internal/catalog"
	"github.com/Jakemex/TuneWorksApp/internal/db"
	"github.com/Jakemex/TuneWorksApp/internal/models"
)

// CatalogHandler serves the read-only catalog query surface.
type CatalogHandler struct {
	Cat        *catalog.Catalog
	Generation db.Generation
	Source     string // "sqlite" or "embedded"
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}

func (h *CatalogHandler) Makes(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.Cat.Makes())
}

func (h *CatalogHandler) Models(w http.ResponseWriter, r *http.Request) {
	mk := r.URL.Query().Get("make")
	if mk == "" {
		http.Error(w, "missing make", http.StatusBadRequest)
		return
	}
	writeJSON(w, h.Cat.Models(mk))
}

func (h *CatalogHandler) Variants(w http.ResponseWriter, r *http.Request) {
	mk := r.URL.Query().Get("make")
	model := r.URL.Query().Get("model")
	if mk == "" || model == "" {
		http.Error(w, "missing make or model", http.StatusBadRequest)
		return
	}

	items := []models.VariantListItem{}
	for _, v := range h.Cat.VariantsFor(mk, model) {
		items = append(items, models.VariantListItem{
			Key: v.Key, Make: v.Make, Model: v.Model, Engine: v.Engine,
		})
	}
	writeJSON(w, items)
}

func (h *CatalogHandler) VariantByKey(w http.ResponseWriter, r *http.Request) {
	v, ok := h.Cat.Get(r.PathValue("key"))
	if !ok {
		http.Error(w, "not found", http.StatusNotFound)
		return
	}
	writeJSON(w, variantDetail(v))
}

func (h *CatalogHandler) FitmentMeta(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, models.FitmentMeta{
		Generation: h.Generation.ID,
		CreatedAt:  h.Generation.CreatedAt.UTC().Format(time.RFC3339),
		Source:     h.Source,
	})
}

func variantDetail(v *catalog.Variant) models.VariantDetail {
	d := models.VariantDetail{
		Key:    v.Key,
		Make:   v.Make,
		Model:  v.Model,
		Engine: v.Engine,
		Family: string(v.Family),
		RPMMin: v.RPMMin,
		RPMMax: v.RPMMax,
	}
	for _, t := range v.Turbos {
		d.Turbos = append(d.Turbos, string(t))
	}
	for _, m := range v.TuningModes {
		d.TuningModes = append(d.TuningModes, string(m))
	}
	for _, m := range v.Mods {
		d.Mods = append(d.Mods, string(m))
	}
	d.InjectorSizes = append(d.InjectorSizes, v.InjectorSizes...)
	if len(v.TurboCap) > 0 {
		d.TurboCaps = map[string]int{}
		for t, c := range v.TurboCap {
			d.TurboCaps[string(t)] = c
		}
	}
	return d
}
