package httpapi

import (
	"net/http"

	"github.com/PelusheLD/Pepito-s-House/server/internal/domain"
)

func (h *Handler) listStaff(w http.ResponseWriter, r *http.Request) {
	staff, err := h.Catalog.ListStaff()
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, staff)
}

func (h *Handler) createStaff(w http.ResponseWriter, r *http.Request) {
	var input domain.StaffInput
	if !decodeBody(w, r, &input) {
		return
	}

	member, err := h.Catalog.CreateStaff(input)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, member)
}

func (h *Handler) updateStaff(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		writeMessage(w, http.StatusBadRequest, "invalid staff id")
		return
	}

	var update domain.StaffUpdate
	if !decodeBody(w, r, &update) {
		return
	}

	member, err := h.Catalog.UpdateStaff(id, update)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, member)
}

func (h *Handler) deleteStaff(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		writeMessage(w, http.StatusBadRequest, "invalid staff id")
		return
	}

	if err := h.Catalog.DeleteStaff(id); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) listSocialMedia(w http.ResponseWriter, r *http.Request) {
	links, err := h.Catalog.ListSocialMedia()
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, links)
}

func (h *Handler) getSocialMedia(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		writeMessage(w, http.StatusBadRequest, "invalid social media id")
		return
	}

	link, err := h.Catalog.GetSocialMedia(id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, link)
}

func (h *Handler) createSocialMedia(w http.ResponseWriter, r *http.Request) {
	var input domain.SocialMediaInput
	if !decodeBody(w, r, &input) {
		return
	}

	link, err := h.Catalog.CreateSocialMedia(input)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, link)
}

func (h *Handler) updateSocialMedia(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		writeMessage(w, http.StatusBadRequest, "invalid social media id")
		return
	}

	var update domain.SocialMediaUpdate
	if !decodeBody(w, r, &update) {
		return
	}

	link, err := h.Catalog.UpdateSocialMedia(id, update)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, link)
}

func (h *Handler) deleteSocialMedia(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		writeMessage(w, http.StatusBadRequest, "invalid social media id")
		return
	}

	if err := h.Catalog.DeleteSocialMedia(id); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
