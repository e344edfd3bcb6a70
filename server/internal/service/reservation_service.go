package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/PelusheLD/Pepito-s-House/internal/events"
	"github.com/PelusheLD/Pepito-s-House/internal/whatsapp"
	"github.com/PelusheLD/Pepito-s-House/server/internal/domain"
)

type ReservationService struct {
	repository ReservationRepository
	publisher  ReservationPublisher
	stats      StatsReader
	settings   SiteConfigProvider
	country    string
}

func NewReservationService(repository ReservationRepository, publisher ReservationPublisher,
	stats StatsReader, settings SiteConfigProvider, countryCode string) *ReservationService {
	return &ReservationService{
		repository: repository,
		publisher:  publisher,
		stats:      stats,
		settings:   settings,
		country:    countryCode,
	}
}

// NormalizeDate accepts ISO-8601 (canonical) and dd/mm/yyyy (older clients)
// and returns the canonical form.
func NormalizeDate(raw string) (string, error) {
	for _, layout := range []string{"2006-01-02", time.RFC3339, "02/01/2006"} {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.Format("2006-01-02"), nil
		}
	}
	return "", fmt.Errorf("%w: date must be ISO-8601 or dd/mm/yyyy", ErrInvalidInput)
}

// Create handles the public submission. The reservation always starts
// pending regardless of any status the client sent.
func (s *ReservationService) Create(ctx context.Context, input domain.ReservationInput) (domain.Reservation, error) {
	if err := checkStruct(input); err != nil {
		return domain.Reservation{}, err
	}

	date, err := NormalizeDate(input.Date)
	if err != nil {
		return domain.Reservation{}, err
	}

	res := domain.Reservation{
		Name:    input.Name,
		Email:   input.Email,
		Phone:   input.Phone,
		Date:    date,
		Time:    input.Time,
		Guests:  input.Guests,
		Message: input.Message,
		Status:  domain.StatusPending,
	}

	if err := s.repository.Insert(&res); err != nil {
		return domain.Reservation{}, err
	}

	s.publish(ctx, events.TypeReservationCreated, res, "")
	return res, nil
}

func (s *ReservationService) List() ([]domain.Reservation, error) {
	return s.repository.List()
}

func (s *ReservationService) ListByStatus(status string) ([]domain.Reservation, error) {
	if !domain.ValidStatus(status) {
		return nil, ErrInvalidStatus
	}
	return s.repository.ListByStatus(status)
}

func (s *ReservationService) Get(id int) (domain.Reservation, error) {
	res, err := s.repository.GetByID(id)
	if errors.Is(err, sql.ErrNoRows) {
		return res, ErrNotFound
	}
	return res, err
}

// Update applies a partial admin edit. Any status may follow any other so
// mistakes can be corrected, but the status value itself must be a known one.
func (s *ReservationService) Update(ctx context.Context, id int, update domain.ReservationUpdate) (domain.Reservation, error) {
	res, err := s.Get(id)
	if err != nil {
		return res, err
	}
	previousStatus := res.Status

	if update.Name != nil {
		res.Name = *update.Name
	}
	if update.Email != nil {
		res.Email = *update.Email
	}
	if update.Phone != nil {
		res.Phone = *update.Phone
	}
	if update.Date != nil {
		date, err := NormalizeDate(*update.Date)
		if err != nil {
			return domain.Reservation{}, err
		}
		res.Date = date
	}
	if update.Time != nil {
		res.Time = *update.Time
	}
	if update.Guests != nil {
		res.Guests = *update.Guests
	}
	if update.Message != nil {
		res.Message = *update.Message
	}
	if update.Status != nil {
		if !domain.ValidStatus(*update.Status) {
			return domain.Reservation{}, ErrInvalidStatus
		}
		res.Status = *update.Status
	}

	if err := s.repository.Update(&res); err != nil {
		return domain.Reservation{}, err
	}

	if res.Status != previousStatus {
		s.publish(ctx, events.TypeStatusChanged, res, previousStatus)
	}
	return res, nil
}

func (s *ReservationService) Delete(id int) error {
	err := s.repository.Delete(id)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	return err
}

// Notification holds a composed status message and the deep-link an operator
// can open to send it. The server never sends anything itself.
type Notification struct {
	Message string `json:"message"`
	URL     string `json:"url"`
}

// ComposeNotification builds the courtesy note for the given target status,
// addressed to the reservation's own phone number.
func (s *ReservationService) ComposeNotification(ctx context.Context, id int, status string) (Notification, error) {
	if !domain.ValidStatus(status) {
		return Notification{}, ErrInvalidStatus
	}

	res, err := s.Get(id)
	if err != nil {
		return Notification{}, err
	}

	date, err := time.Parse("2006-01-02", res.Date)
	if err != nil {
		return Notification{}, fmt.Errorf("stored date unparseable: %w", err)
	}

	restaurant := s.settings.SiteConfig(ctx).RestaurantName
	message := whatsapp.ReservationMessage(restaurant, res.Name, date, res.Time, res.Guests, status)
	if message == "" {
		return Notification{}, fmt.Errorf("%w: no notification template for status %q", ErrInvalidInput, status)
	}

	url, err := whatsapp.Link(res.Phone, message, s.country)
	if err != nil {
		return Notification{}, ErrNoPhoneConfigured
	}

	return Notification{Message: message, URL: url}, nil
}

// StatsForDate serves the admin dashboard counters: Redis first, database
// when the counters are cold.
func (s *ReservationService) StatsForDate(ctx context.Context, date string) (domain.DayStats, error) {
	normalized, err := NormalizeDate(date)
	if err != nil {
		return domain.DayStats{}, err
	}

	counts, err := s.stats.CountsForDate(ctx, normalized)
	if err != nil || len(counts) == 0 {
		counts, err = s.repository.CountByDate(normalized)
		if err != nil {
			return domain.DayStats{}, err
		}
	}

	stats := domain.DayStats{Date: normalized, Counts: counts}
	for _, n := range counts {
		stats.Total += n
	}
	return stats, nil
}

func (s *ReservationService) publish(ctx context.Context, eventType string, res domain.Reservation, prevStatus string) {
	if s.publisher == nil {
		return
	}
	err := s.publisher.PublishReservationEvent(ctx, events.ReservationEvent{
		Type:          eventType,
		ReservationID: res.ID,
		Status:        res.Status,
		PrevStatus:    prevStatus,
		Date:          res.Date,
		Guests:        res.Guests,
		Timestamp:     time.Now(),
	})
	if err != nil {
		log.Printf("[server] failed to publish %s event for reservation %d: %v", eventType, res.ID, err)
	}
}
