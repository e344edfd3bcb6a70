package service

import (
	"context"
	"database/sql"
	"errors"
	"log"

	"github.com/PelusheLD/Pepito-s-House/server/internal/domain"
)

// SiteConfig is the typed view over the settings key-value bag. Defaults
// live here, in one place, instead of inline fallbacks at every call site.
type SiteConfig struct {
	RestaurantName string
	Tagline        string
	Currency       string
}

var siteDefaults = SiteConfig{
	RestaurantName: "Pepito's House",
	Tagline:        "Restaurante & Delivery",
	Currency:       "USD",
}

type SettingsService struct {
	settings SettingsRepository
	location LocationRepository
	cache    LocationCache
}

func NewSettingsService(settings SettingsRepository, location LocationRepository, cache LocationCache) *SettingsService {
	return &SettingsService{settings: settings, location: location, cache: cache}
}

func (s *SettingsService) ListSettings() ([]domain.Setting, error) {
	return s.settings.List()
}

func (s *SettingsService) GetSetting(key string) (domain.Setting, error) {
	setting, err := s.settings.Get(key)
	if errors.Is(err, sql.ErrNoRows) {
		return setting, ErrNotFound
	}
	return setting, err
}

func (s *SettingsService) UpdateSetting(key, value string) (domain.Setting, error) {
	if value == "" {
		return domain.Setting{}, ErrInvalidInput
	}
	return s.settings.Upsert(key, value)
}

// SiteConfig resolves the typed configuration, falling back to defaults for
// missing keys. Failures degrade to defaults: site copy is never worth a 500.
func (s *SettingsService) SiteConfig(ctx context.Context) SiteConfig {
	cfg := siteDefaults

	settings, err := s.settings.List()
	if err != nil {
		log.Printf("[server] settings unavailable, using defaults: %v", err)
		return cfg
	}

	for _, setting := range settings {
		switch setting.Key {
		case "restaurantName":
			cfg.RestaurantName = setting.Value
		case "tagline":
			cfg.Tagline = setting.Value
		case "currency":
			cfg.Currency = setting.Value
		}
	}
	return cfg
}

// GetLocation serves the singleton record, preferring the Redis copy.
// Before first configuration an empty record is returned, not an error.
func (s *SettingsService) GetLocation(ctx context.Context) (domain.Location, error) {
	if loc, ok := s.cache.Get(ctx); ok {
		return loc, nil
	}

	loc, err := s.location.Get()
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Location{}, nil
	}
	if err != nil {
		return domain.Location{}, err
	}

	if err := s.cache.Set(ctx, loc); err != nil {
		log.Printf("[server] failed to cache location: %v", err)
	}
	return loc, nil
}

// UpdateLocation merges a partial edit into the singleton, creating it on
// first write, and invalidates the cache.
func (s *SettingsService) UpdateLocation(ctx context.Context, update domain.LocationUpdate) (domain.Location, error) {
	loc, err := s.location.Get()
	creating := errors.Is(err, sql.ErrNoRows)
	if err != nil && !creating {
		return domain.Location{}, err
	}

	if update.Address != nil {
		loc.Address = *update.Address
	}
	if update.Phone != nil {
		loc.Phone = *update.Phone
	}
	if update.Email != nil {
		loc.Email = *update.Email
	}
	if update.MapCoordinates != nil {
		loc.MapCoordinates = *update.MapCoordinates
	}
	if update.Hours != nil {
		loc.Hours = *update.Hours
	}

	if creating {
		err = s.location.Insert(&loc)
	} else {
		err = s.location.Update(&loc)
	}
	if err != nil {
		return domain.Location{}, err
	}

	if err := s.cache.Invalidate(ctx); err != nil {
		log.Printf("[server] failed to invalidate location cache: %v", err)
	}
	return loc, nil
}
