package httpapi

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/PelusheLD/Pepito-s-House/server/internal/domain"
)

func (h *Handler) createReservation(w http.ResponseWriter, r *http.Request) {
	var input domain.ReservationInput
	if !decodeBody(w, r, &input) {
		return
	}

	res, err := h.Reservations.Create(r.Context(), input)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, res)
}

func (h *Handler) listReservations(w http.ResponseWriter, r *http.Request) {
	reservations, err := h.Reservations.List()
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, reservations)
}

func (h *Handler) listReservationsByStatus(w http.ResponseWriter, r *http.Request) {
	reservations, err := h.Reservations.ListByStatus(mux.Vars(r)["status"])
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, reservations)
}

func (h *Handler) getReservation(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		writeMessage(w, http.StatusBadRequest, "invalid reservation id")
		return
	}

	res, err := h.Reservations.Get(id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (h *Handler) updateReservation(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		writeMessage(w, http.StatusBadRequest, "invalid reservation id")
		return
	}

	var update domain.ReservationUpdate
	if !decodeBody(w, r, &update) {
		return
	}

	res, err := h.Reservations.Update(r.Context(), id, update)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (h *Handler) deleteReservation(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		writeMessage(w, http.StatusBadRequest, "invalid reservation id")
		return
	}

	if err := h.Reservations.Delete(id); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// reservationNotification composes the WhatsApp message for a reservation.
// The optional status query parameter overrides the stored status, so the
// admin can preview a confirmation message before flipping the record.
func (h *Handler) reservationNotification(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		writeMessage(w, http.StatusBadRequest, "invalid reservation id")
		return
	}

	status := r.URL.Query().Get("status")

	notification, err := h.Reservations.ComposeNotification(r.Context(), id, status)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, notification)
}

func (h *Handler) reservationStats(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}
	if _, err := time.Parse("2006-01-02", date); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid date, expected YYYY-MM-DD")
		return
	}

	stats, err := h.Reservations.StatsForDate(r.Context(), date)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}
