package httpapi

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/PelusheLD/Pepito-s-House/server/internal/domain"
)

func (h *Handler) listSettings(w http.ResponseWriter, r *http.Request) {
	settings, err := h.Settings.ListSettings()
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, settings)
}

func (h *Handler) getSetting(w http.ResponseWriter, r *http.Request) {
	setting, err := h.Settings.GetSetting(mux.Vars(r)["key"])
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, setting)
}

func (h *Handler) updateSetting(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Value string `json:"value"`
	}
	if !decodeBody(w, r, &body) {
		return
	}

	setting, err := h.Settings.UpdateSetting(mux.Vars(r)["key"], body.Value)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, setting)
}

func (h *Handler) getLocation(w http.ResponseWriter, r *http.Request) {
	location, err := h.Settings.GetLocation(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, location)
}

func (h *Handler) updateLocation(w http.ResponseWriter, r *http.Request) {
	var update domain.LocationUpdate
	if !decodeBody(w, r, &update) {
		return
	}

	location, err := h.Settings.UpdateLocation(r.Context(), update)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, location)
}
