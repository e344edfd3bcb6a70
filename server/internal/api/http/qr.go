package httpapi

import (
	"net/http"

	qrcode "github.com/skip2/go-qrcode"

	"github.com/PelusheLD/Pepito-s-House/internal/whatsapp"
)

const orderQRGreeting = "Hola, quiero hacer un pedido."

// orderQR renders a QR code that opens a WhatsApp chat with the restaurant.
// Meant for printed table cards, so the PNG is cacheable.
func (h *Handler) orderQR(w http.ResponseWriter, r *http.Request) {
	location, err := h.Settings.GetLocation(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}

	link, err := whatsapp.Link(location.Phone, orderQRGreeting, h.CountryCode)
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "no restaurant phone configured")
		return
	}

	png, err := qrcode.Encode(link, qrcode.Medium, 256)
	if err != nil {
		writeMessage(w, http.StatusInternalServerError, "failed to generate QR code")
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.WriteHeader(http.StatusOK)
	w.Write(png)
}
