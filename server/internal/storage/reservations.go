package storage

import (
	"database/sql"
	"time"

	"github.com/PelusheLD/Pepito-s-House/server/internal/domain"
)

type ReservationRepository struct {
	DB *sql.DB
}

func NewReservationRepository(db *sql.DB) *ReservationRepository {
	return &ReservationRepository{DB: db}
}

const reservationColumns = "id, name, email, phone, date, time, guests, message, status, created_at"

func scanReservation(row interface{ Scan(...interface{}) error }) (domain.Reservation, error) {
	var res domain.Reservation
	var date time.Time
	err := row.Scan(&res.ID, &res.Name, &res.Email, &res.Phone, &date,
		&res.Time, &res.Guests, &res.Message, &res.Status, &res.CreatedAt)
	if err != nil {
		return res, err
	}
	res.Date = date.Format("2006-01-02")
	return res, nil
}

func (r *ReservationRepository) list(where string, args ...interface{}) ([]domain.Reservation, error) {
	rows, err := r.DB.Query(`
		SELECT `+reservationColumns+`
		FROM reservations
		`+where+`
		ORDER BY created_at DESC`, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	reservations := []domain.Reservation{}
	for rows.Next() {
		res, err := scanReservation(rows)
		if err != nil {
			continue
		}
		reservations = append(reservations, res)
	}
	return reservations, rows.Err()
}

func (r *ReservationRepository) List() ([]domain.Reservation, error) {
	return r.list("")
}

func (r *ReservationRepository) ListByStatus(status string) ([]domain.Reservation, error) {
	return r.list("WHERE status = $1", status)
}

func (r *ReservationRepository) GetByID(id int) (domain.Reservation, error) {
	row := r.DB.QueryRow(`
		SELECT `+reservationColumns+`
		FROM reservations
		WHERE id = $1`, id)
	return scanReservation(row)
}

func (r *ReservationRepository) Insert(res *domain.Reservation) error {
	return r.DB.QueryRow(`
		INSERT INTO reservations (name, email, phone, date, time, guests, message, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at`,
		res.Name, res.Email, res.Phone, res.Date, res.Time, res.Guests, res.Message, res.Status).
		Scan(&res.ID, &res.CreatedAt)
}

func (r *ReservationRepository) Update(res *domain.Reservation) error {
	_, err := r.DB.Exec(`
		UPDATE reservations
		SET name = $1, email = $2, phone = $3, date = $4, time = $5,
			guests = $6, message = $7, status = $8
		WHERE id = $9`,
		res.Name, res.Email, res.Phone, res.Date, res.Time,
		res.Guests, res.Message, res.Status, res.ID)
	return err
}

func (r *ReservationRepository) Delete(id int) error {
	result, err := r.DB.Exec("DELETE FROM reservations WHERE id = $1", id)
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// CountByDate aggregates reservation counts per status for one calendar day.
// This is the database fallback behind the Redis counters the stats consumer
// maintains.
func (r *ReservationRepository) CountByDate(date string) (map[string]int, error) {
	rows, err := r.DB.Query(`
		SELECT status, COUNT(*) AS count
		FROM reservations
		WHERE date = $1
		GROUP BY status`, date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := map[string]int{}
	for rows.Next() {
		var status string
		var count int
		if err := rows.Scan(&status, &count); err != nil {
			continue
		}
		counts[status] = count
	}
	return counts, rows.Err()
}
