package kioskapi

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/PelusheLD/Pepito-s-House/internal/whatsapp"
	"github.com/PelusheLD/Pepito-s-House/kiosk/internal/booking"
	"github.com/PelusheLD/Pepito-s-House/kiosk/internal/cart"
	"github.com/PelusheLD/Pepito-s-House/kiosk/internal/client"
)

// Handler is the kiosk's local HTTP surface. It owns the cart and proxies
// reads to the restaurant API so the touch screen only ever talks to
// localhost.
type Handler struct {
	Cart        *cart.Store
	API         *client.Client
	CountryCode string
}

func NewHandler(cartStore *cart.Store, api *client.Client, countryCode string) *Handler {
	return &Handler{Cart: cartStore, API: api, CountryCode: countryCode}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/menu", h.menu).Methods("GET")
	r.HandleFunc("/menu/featured", h.featuredMenu).Methods("GET")
	r.HandleFunc("/location", h.location).Methods("GET")

	r.HandleFunc("/cart", h.viewCart).Methods("GET")
	r.HandleFunc("/cart/items", h.addItem).Methods("POST")
	r.HandleFunc("/cart/items/{id}", h.updateItem).Methods("PUT")
	r.HandleFunc("/cart/items/{id}", h.removeItem).Methods("DELETE")
	r.HandleFunc("/cart", h.clearCart).Methods("DELETE")

	r.HandleFunc("/checkout", h.checkout).Methods("POST")
	r.HandleFunc("/reservations", h.createReservation).Methods("POST")
}

func (h *Handler) menu(w http.ResponseWriter, r *http.Request) {
	items, err := h.API.Menu(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *Handler) featuredMenu(w http.ResponseWriter, r *http.Request) {
	items, err := h.API.FeaturedMenu(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *Handler) location(w http.ResponseWriter, r *http.Request) {
	location, err := h.API.Location(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, location)
}

type cartView struct {
	Items      []cart.Line `json:"items"`
	TotalItems int         `json:"totalItems"`
	TotalPrice float64     `json:"totalPrice"`
}

func (h *Handler) currentCart() cartView {
	return cartView{
		Items:      h.Cart.Lines(),
		TotalItems: h.Cart.TotalItems(),
		TotalPrice: h.Cart.TotalPrice(),
	}
}

func (h *Handler) viewCart(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.currentCart())
}

func (h *Handler) addItem(w http.ResponseWriter, r *http.Request) {
	var body struct {
		MenuItemID int `json:"menuItemId"`
		Quantity   int `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	item, err := h.API.MenuItem(r.Context(), body.MenuItemID)
	if err != nil {
		writeError(w, err)
		return
	}
	if !item.IsAvailable {
		writeMessage(w, http.StatusConflict, "menu item is not available")
		return
	}

	h.Cart.AddItem(item, body.Quantity)
	writeJSON(w, http.StatusOK, h.currentCart())
}

func (h *Handler) updateItem(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Quantity int `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	h.Cart.UpdateQuantity(mux.Vars(r)["id"], body.Quantity)
	writeJSON(w, http.StatusOK, h.currentCart())
}

func (h *Handler) removeItem(w http.ResponseWriter, r *http.Request) {
	h.Cart.RemoveItem(mux.Vars(r)["id"])
	writeJSON(w, http.StatusOK, h.currentCart())
}

func (h *Handler) clearCart(w http.ResponseWriter, r *http.Request) {
	h.Cart.Clear()
	writeJSON(w, http.StatusOK, h.currentCart())
}

func (h *Handler) checkout(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Delivery        bool   `json:"delivery"`
		DeliveryDetails string `json:"deliveryDetails"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	location, err := h.API.Location(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	var delivery *whatsapp.DeliveryInfo
	if body.Delivery {
		delivery = &whatsapp.DeliveryInfo{Delivery: true, Details: body.DeliveryDetails}
	}

	message, url, err := h.Cart.Checkout(location.Phone, h.CountryCode, delivery)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"message": message,
		"url":     url,
	})
}

func (h *Handler) createReservation(w http.ResponseWriter, r *http.Request) {
	var form booking.Form
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := form.Validate(time.Now()); err != nil {
		writeMessage(w, http.StatusBadRequest, err.Error())
		return
	}

	res, err := h.API.CreateReservation(r.Context(), form.Request())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, res)
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func writeMessage(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"message": message})
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, cart.ErrEmptyCart):
		writeMessage(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, whatsapp.ErrNoPhone):
		writeMessage(w, http.StatusBadRequest, "no restaurant phone configured")
	case errors.Is(err, client.ErrUnavailable):
		writeMessage(w, http.StatusBadGateway, err.Error())
	default:
		log.Printf("[kiosk] request failed: %v", err)
		writeMessage(w, http.StatusBadRequest, err.Error())
	}
}
