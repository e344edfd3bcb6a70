package tests

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	kioskapi "github.com/PelusheLD/Pepito-s-House/kiosk/internal/api/http"
	"github.com/PelusheLD/Pepito-s-House/kiosk/internal/cart"
	"github.com/PelusheLD/Pepito-s-House/kiosk/internal/client"
)

// fakeAPI stands in for the restaurant server.
func fakeAPI(t *testing.T) *httptest.Server {
	r := mux.NewRouter()
	r.HandleFunc("/api/menu-items/1", func(w http.ResponseWriter, req *http.Request) {
		json.NewEncoder(w).Encode(client.MenuItem{ID: 1, Name: "Arepa", Price: 5.5, IsAvailable: true})
	}).Methods("GET")
	r.HandleFunc("/api/menu-items/2", func(w http.ResponseWriter, req *http.Request) {
		json.NewEncoder(w).Encode(client.MenuItem{ID: 2, Name: "Agotado", Price: 3.0, IsAvailable: false})
	}).Methods("GET")
	r.HandleFunc("/api/location", func(w http.ResponseWriter, req *http.Request) {
		json.NewEncoder(w).Encode(client.Location{Address: "Av. Principal", Phone: "4141234567"})
	}).Methods("GET")
	r.HandleFunc("/api/reservations", func(w http.ResponseWriter, req *http.Request) {
		var payload client.ReservationRequest
		assert.NoError(t, json.NewDecoder(req.Body).Decode(&payload))
		assert.Regexp(t, `^\d{4}-\d{2}-\d{2}$`, payload.Date)
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(client.Reservation{ID: 9, Status: "pending"})
	}).Methods("POST")

	server := httptest.NewServer(r)
	t.Cleanup(server.Close)
	return server
}

func newKioskRouter(t *testing.T) *mux.Router {
	api := client.New(fakeAPI(t).URL)
	handler := kioskapi.NewHandler(cart.NewStore(nil), api, "58")

	r := mux.NewRouter()
	handler.RegisterRoutes(r)
	return r
}

func do(r *mux.Router, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestKioskAddItemAndCheckout(t *testing.T) {
	r := newKioskRouter(t)

	w := do(r, "POST", "/cart/items", `{"menuItemId":1,"quantity":2}`)
	assert.Equal(t, http.StatusOK, w.Code)

	var view struct {
		TotalItems int     `json:"totalItems"`
		TotalPrice float64 `json:"totalPrice"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &view))
	assert.Equal(t, 2, view.TotalItems)
	assert.InDelta(t, 11.0, view.TotalPrice, 0.001)

	w = do(r, "POST", "/checkout", `{"delivery":false}`)
	assert.Equal(t, http.StatusOK, w.Code)

	var checkout map[string]string
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &checkout))
	assert.Contains(t, checkout["url"], "https://wa.me/584141234567?text=")
	assert.Contains(t, checkout["message"], "Total: $11.00")

	// Checkout keeps the cart so the customer can retry.
	w = do(r, "GET", "/cart", "")
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &view))
	assert.Equal(t, 2, view.TotalItems)
}

func TestKioskRejectsUnavailableItem(t *testing.T) {
	r := newKioskRouter(t)

	w := do(r, "POST", "/cart/items", `{"menuItemId":2,"quantity":1}`)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestKioskCheckoutEmptyCart(t *testing.T) {
	r := newKioskRouter(t)

	w := do(r, "POST", "/checkout", `{"delivery":false}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestKioskReservation(t *testing.T) {
	r := newKioskRouter(t)

	t.Run("valid form reaches the API", func(t *testing.T) {
		date := time.Now().AddDate(0, 0, 7).Format("2006-01-02")
		body := fmt.Sprintf(`{"name":"Maria Perez","email":"maria@example.com","phone":"4141234567","date":%q,"time":"20:00","guests":4}`, date)
		w := do(r, "POST", "/reservations", body)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), `"status":"pending"`)
	})

	t.Run("invalid form never leaves the kiosk", func(t *testing.T) {
		body := `{"name":"Maria Perez","email":"maria@example.com","phone":"4141234567","date":"2030-01-01","time":"20:00","guests":50}`
		w := do(r, "POST", "/reservations", body)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
