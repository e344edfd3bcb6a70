package storage

import (
	"database/sql"

	"github.com/PelusheLD/Pepito-s-House/server/internal/domain"
)

type SettingsRepository struct {
	DB *sql.DB
}

func NewSettingsRepository(db *sql.DB) *SettingsRepository {
	return &SettingsRepository{DB: db}
}

func (r *SettingsRepository) List() ([]domain.Setting, error) {
	rows, err := r.DB.Query("SELECT id, key, value FROM settings ORDER BY key")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	settings := []domain.Setting{}
	for rows.Next() {
		var s domain.Setting
		if err := rows.Scan(&s.ID, &s.Key, &s.Value); err != nil {
			continue
		}
		settings = append(settings, s)
	}
	return settings, rows.Err()
}

func (r *SettingsRepository) Get(key string) (domain.Setting, error) {
	var s domain.Setting
	err := r.DB.QueryRow("SELECT id, key, value FROM settings WHERE key = $1", key).
		Scan(&s.ID, &s.Key, &s.Value)
	return s, err
}

// Upsert writes a setting, creating the key if it does not exist yet.
func (r *SettingsRepository) Upsert(key, value string) (domain.Setting, error) {
	var s domain.Setting
	err := r.DB.QueryRow(`
		INSERT INTO settings (key, value) VALUES ($1, $2)
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value
		RETURNING id, key, value`, key, value).
		Scan(&s.ID, &s.Key, &s.Value)
	return s, err
}

// LocationRepository manages the singleton location record.
type LocationRepository struct {
	DB *sql.DB
}

func NewLocationRepository(db *sql.DB) *LocationRepository {
	return &LocationRepository{DB: db}
}

const locationColumns = "id, address, phone, email, map_coordinates, hours"

// Get returns the singleton record; sql.ErrNoRows before first configuration.
func (r *LocationRepository) Get() (domain.Location, error) {
	var loc domain.Location
	err := r.DB.QueryRow("SELECT " + locationColumns + " FROM locations ORDER BY id LIMIT 1").
		Scan(&loc.ID, &loc.Address, &loc.Phone, &loc.Email, &loc.MapCoordinates, &loc.Hours)
	return loc, err
}

func (r *LocationRepository) Insert(loc *domain.Location) error {
	return r.DB.QueryRow(`
		INSERT INTO locations (address, phone, email, map_coordinates, hours)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`,
		loc.Address, loc.Phone, loc.Email, loc.MapCoordinates, loc.Hours).Scan(&loc.ID)
}

func (r *LocationRepository) Update(loc *domain.Location) error {
	_, err := r.DB.Exec(`
		UPDATE locations
		SET address = $1, phone = $2, email = $3, map_coordinates = $4, hours = $5
		WHERE id = $6`,
		loc.Address, loc.Phone, loc.Email, loc.MapCoordinates, loc.Hours, loc.ID)
	return err
}
