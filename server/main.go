package main

import (
	"log"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/cors"

	"github.com/PelusheLD/Pepito-s-House/config"
	"github.com/PelusheLD/Pepito-s-House/internal/events"
	httpapi "github.com/PelusheLD/Pepito-s-House/server/internal/api/http"
	"github.com/PelusheLD/Pepito-s-House/server/internal/auth"
	"github.com/PelusheLD/Pepito-s-House/server/internal/service"
	"github.com/PelusheLD/Pepito-s-House/server/internal/storage"
)

func main() {
	cfg := config.LoadApp()

	db := config.MustInitPostgres()
	defer db.Close()

	if err := storage.EnsureSchema(db); err != nil {
		log.Fatal("Failed to ensure schema:", err)
	}

	rdb := config.MustInitRedis()
	defer rdb.Close()

	kafkaWriter := config.NewKafkaWriter(events.Topic)
	defer kafkaWriter.Close()

	menuRepo := storage.NewMenuRepository(db)
	categoryRepo := storage.NewCategoryRepository(db)
	reservationRepo := storage.NewReservationRepository(db)
	userRepo := storage.NewUserRepository(db)
	settingsRepo := storage.NewSettingsRepository(db)
	locationRepo := storage.NewLocationRepository(db)
	staffRepo := storage.NewStaffRepository(db)
	socialRepo := storage.NewSocialMediaRepository(db)

	locationCache := storage.NewLocationCache(rdb, 10*time.Minute)
	statsReader := storage.NewStatsReader(rdb)
	publisher := storage.NewKafkaPublisher(kafkaWriter)

	tokens := auth.NewJWTManager(cfg.JWTSecret, cfg.TokenTTL)

	menuService := service.NewMenuService(menuRepo, categoryRepo)
	settingsService := service.NewSettingsService(settingsRepo, locationRepo, locationCache)
	reservationService := service.NewReservationService(reservationRepo, publisher, statsReader, settingsService, cfg.CountryCode)
	catalogService := service.NewCatalogService(staffRepo, socialRepo)
	userService := service.NewUserService(userRepo, tokens)

	if err := userService.EnsureDefaultAdmin(cfg.DefaultAdminUser, cfg.DefaultAdminPass); err != nil {
		log.Fatal("Failed to ensure default admin:", err)
	}

	h := httpapi.NewHandler(menuService, reservationService, settingsService, catalogService, userService, tokens, cfg.CountryCode)

	r := mux.NewRouter()
	h.RegisterRoutes(r)

	handler := cors.Default().Handler(r)

	log.Println("Pepito's House server starting on port " + cfg.Port)
	log.Fatal(http.ListenAndServe(":"+cfg.Port, handler))
}
