package httpapi

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/PelusheLD/Pepito-s-House/server/internal/auth"
	"github.com/PelusheLD/Pepito-s-House/server/internal/service"
)

type Handler struct {
	Menu         service.MenuServiceInterface
	Reservations service.ReservationServiceInterface
	Settings     *service.SettingsService
	Catalog      *service.CatalogService
	Users        *service.UserService
	Tokens       *auth.JWTManager
	CountryCode  string
}

func NewHandler(menu service.MenuServiceInterface, reservations service.ReservationServiceInterface,
	settings *service.SettingsService, catalog *service.CatalogService, users *service.UserService,
	tokens *auth.JWTManager, countryCode string) *Handler {
	return &Handler{
		Menu:         menu,
		Reservations: reservations,
		Settings:     settings,
		Catalog:      catalog,
		Users:        users,
		Tokens:       tokens,
		CountryCode:  countryCode,
	}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")

	// Menu items. The featured route must precede the {id} route.
	r.HandleFunc("/api/menu-items", h.listMenuItems).Methods("GET")
	r.HandleFunc("/api/menu-items/featured", h.listFeaturedMenuItems).Methods("GET")
	r.HandleFunc("/api/menu-items/{id}", h.getMenuItem).Methods("GET")
	r.HandleFunc("/api/menu-items", h.isAdmin(h.createMenuItem)).Methods("POST")
	r.HandleFunc("/api/menu-items/{id}", h.isAdmin(h.updateMenuItem)).Methods("PUT")
	r.HandleFunc("/api/menu-items/{id}", h.isAdmin(h.deleteMenuItem)).Methods("DELETE")

	// Categories.
	r.HandleFunc("/api/categories", h.listCategories).Methods("GET")
	r.HandleFunc("/api/categories/{id}/menu-items", h.listMenuItemsByCategory).Methods("GET")
	r.HandleFunc("/api/categories", h.isAdmin(h.createCategory)).Methods("POST")
	r.HandleFunc("/api/categories/{id}", h.isAdmin(h.updateCategory)).Methods("PUT")
	r.HandleFunc("/api/categories/{id}", h.isAdmin(h.deleteCategory)).Methods("DELETE")

	// Staff.
	r.HandleFunc("/api/staff", h.listStaff).Methods("GET")
	r.HandleFunc("/api/staff", h.isAdmin(h.createStaff)).Methods("POST")
	r.HandleFunc("/api/staff/{id}", h.isAdmin(h.updateStaff)).Methods("PUT")
	r.HandleFunc("/api/staff/{id}", h.isAdmin(h.deleteStaff)).Methods("DELETE")

	// Settings and location.
	r.HandleFunc("/api/settings", h.listSettings).Methods("GET")
	r.HandleFunc("/api/settings/{key}", h.getSetting).Methods("GET")
	r.HandleFunc("/api/settings/{key}", h.isAdmin(h.updateSetting)).Methods("PUT")
	r.HandleFunc("/api/location", h.getLocation).Methods("GET")
	r.HandleFunc("/api/location", h.isAdmin(h.updateLocation)).Methods("PUT")

	// Social media.
	r.HandleFunc("/api/social-media", h.listSocialMedia).Methods("GET")
	r.HandleFunc("/api/social-media/{id}", h.getSocialMedia).Methods("GET")
	r.HandleFunc("/api/social-media", h.isAdmin(h.createSocialMedia)).Methods("POST")
	r.HandleFunc("/api/social-media/{id}", h.isAdmin(h.updateSocialMedia)).Methods("PUT")
	r.HandleFunc("/api/social-media/{id}", h.isAdmin(h.deleteSocialMedia)).Methods("DELETE")

	// Reservations. Creation is public; everything else is admin.
	r.HandleFunc("/api/reservations", h.createReservation).Methods("POST")
	r.HandleFunc("/api/reservations", h.isAdmin(h.listReservations)).Methods("GET")
	r.HandleFunc("/api/reservations/stats", h.isAdmin(h.reservationStats)).Methods("GET")
	r.HandleFunc("/api/reservations/status/{status}", h.isAdmin(h.listReservationsByStatus)).Methods("GET")
	r.HandleFunc("/api/reservations/{id}", h.isAdmin(h.getReservation)).Methods("GET")
	r.HandleFunc("/api/reservations/{id}/notification", h.isAdmin(h.reservationNotification)).Methods("GET")
	r.HandleFunc("/api/reservations/{id}", h.isAdmin(h.updateReservation)).Methods("PUT")
	r.HandleFunc("/api/reservations/{id}", h.isAdmin(h.deleteReservation)).Methods("DELETE")

	// Users and auth.
	r.HandleFunc("/api/users", h.isAdmin(h.listUsers)).Methods("GET")
	r.HandleFunc("/api/users", h.isAdmin(h.createUser)).Methods("POST")
	r.HandleFunc("/api/users/{id}", h.isAdmin(h.deleteUser)).Methods("DELETE")
	r.HandleFunc("/api/users/{id}/reset-password", h.isAdmin(h.resetPassword)).Methods("POST")
	r.HandleFunc("/api/login", h.login).Methods("POST")
	r.HandleFunc("/api/register", h.isAdmin(h.createUser)).Methods("POST")
	r.HandleFunc("/api/logout", h.logout).Methods("POST")
	r.HandleFunc("/api/user", h.currentUser).Methods("GET")
	r.HandleFunc("/api/change-password", h.changePassword).Methods("POST")

	// Order QR card.
	r.HandleFunc("/api/order-qr", h.orderQR).Methods("GET")
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"service":   "pepitos-house",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}
