// Package booking validates the reservation form before it leaves the
// kiosk, so obviously bad submissions never reach the network.
package booking

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/PelusheLD/Pepito-s-House/kiosk/internal/client"
)

// TimeSlots mirrors the server's service windows.
var TimeSlots = []string{
	"12:00", "12:30", "13:00", "13:30", "14:00", "14:30",
	"19:00", "19:30", "20:00", "20:30", "21:00", "21:30", "22:00",
}

// BookingWindow is how far ahead a table can be reserved.
const BookingWindow = 3 * 30 * 24 * time.Hour

var ErrInvalidForm = errors.New("invalid reservation form")

type Form struct {
	Name    string `json:"name" validate:"required,min=3"`
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone" validate:"required,min=7"`
	Date    string `json:"date" validate:"required"`
	Time    string `json:"time" validate:"required,oneof=12:00 12:30 13:00 13:30 14:00 14:30 19:00 19:30 20:00 20:30 21:00 21:30 22:00"`
	Guests  int    `json:"guests" validate:"required,min=1,max=20"`
	Message string `json:"message"`
}

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

func formValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})
	return validate
}

// Validate checks field rules plus the booking window: the date must fall
// between today and three months out. now lets tests pin the clock.
func (f Form) Validate(now time.Time) error {
	if err := formValidator().Struct(f); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			fields := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				fields = append(fields, strings.ToLower(fe.Field()))
			}
			return fmt.Errorf("%w: check %s", ErrInvalidForm, strings.Join(fields, ", "))
		}
		return err
	}

	date, err := time.Parse("2006-01-02", f.Date)
	if err != nil {
		if date, err = time.Parse("02/01/2006", f.Date); err != nil {
			return fmt.Errorf("%w: date must be YYYY-MM-DD", ErrInvalidForm)
		}
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if date.Before(today) {
		return fmt.Errorf("%w: date is in the past", ErrInvalidForm)
	}
	if date.After(today.Add(BookingWindow)) {
		return fmt.Errorf("%w: date is too far ahead", ErrInvalidForm)
	}
	return nil
}

// Request converts a validated form into the API payload, normalizing the
// date to ISO-8601.
func (f Form) Request() client.ReservationRequest {
	date := f.Date
	if t, err := time.Parse("02/01/2006", f.Date); err == nil {
		date = t.Format("2006-01-02")
	}
	return client.ReservationRequest{
		Name:    f.Name,
		Email:   f.Email,
		Phone:   f.Phone,
		Date:    date,
		Time:    f.Time,
		Guests:  f.Guests,
		Message: f.Message,
	}
}
