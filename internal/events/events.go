// Package events defines the reservation event contract shared by the
// server (producer) and the stats consumer.
package events

import "time"

const Topic = "reservations"

const (
	TypeReservationCreated = "reservation_created"
	TypeStatusChanged      = "status_changed"
)

type ReservationEvent struct {
	Type          string    `json:"type"`
	ReservationID int       `json:"reservation_id"`
	Status        string    `json:"status"`
	PrevStatus    string    `json:"prev_status,omitempty"`
	Date          string    `json:"date"`
	Guests        int       `json:"guests"`
	Timestamp     time.Time `json:"timestamp"`
}

// DailyStatsKey names the Redis hash holding per-status reservation
// counters for one date (YYYY-MM-DD).
func DailyStatsKey(date string) string {
	return "resv:daily:" + date
}
