package main

import (
	"log"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/cors"

	"github.com/PelusheLD/Pepito-s-House/config"
	kioskapi "github.com/PelusheLD/Pepito-s-House/kiosk/internal/api/http"
	"github.com/PelusheLD/Pepito-s-House/kiosk/internal/cart"
	"github.com/PelusheLD/Pepito-s-House/kiosk/internal/client"
)

func main() {
	cfg := config.LoadKiosk()

	store := cart.NewStore(cart.NewFilePersister(cfg.CartFile))
	api := client.New(cfg.APIBaseURL)

	h := kioskapi.NewHandler(store, api, cfg.CountryCode)

	r := mux.NewRouter()
	h.RegisterRoutes(r)

	handler := cors.Default().Handler(r)

	log.Println("Pepito's House kiosk starting on port " + cfg.Port)
	log.Fatal(http.ListenAndServe(":"+cfg.Port, handler))
}
