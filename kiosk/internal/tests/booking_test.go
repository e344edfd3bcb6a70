package tests

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/PelusheLD/Pepito-s-House/kiosk/internal/booking"
)

func validForm() booking.Form {
	return booking.Form{
		Name:   "Maria Perez",
		Email:  "maria@example.com",
		Phone:  "4141234567",
		Date:   "2026-10-15",
		Time:   "20:00",
		Guests: 4,
	}
}

func TestForm_Validate(t *testing.T) {
	now := time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		mutate  func(*booking.Form)
		wantErr bool
	}{
		{name: "valid", mutate: func(f *booking.Form) {}},
		{name: "today is allowed", mutate: func(f *booking.Form) { f.Date = "2026-10-01" }},
		{name: "legacy date format", mutate: func(f *booking.Form) { f.Date = "15/10/2026" }},
		{name: "short name", mutate: func(f *booking.Form) { f.Name = "Al" }, wantErr: true},
		{name: "bad email", mutate: func(f *booking.Form) { f.Email = "not-an-email" }, wantErr: true},
		{name: "short phone", mutate: func(f *booking.Form) { f.Phone = "555" }, wantErr: true},
		{name: "zero guests", mutate: func(f *booking.Form) { f.Guests = 0 }, wantErr: true},
		{name: "too many guests", mutate: func(f *booking.Form) { f.Guests = 21 }, wantErr: true},
		{name: "time outside service windows", mutate: func(f *booking.Form) { f.Time = "16:00" }, wantErr: true},
		{name: "date in the past", mutate: func(f *booking.Form) { f.Date = "2026-09-30" }, wantErr: true},
		{name: "date beyond the booking window", mutate: func(f *booking.Form) { f.Date = "2027-03-01" }, wantErr: true},
		{name: "unparseable date", mutate: func(f *booking.Form) { f.Date = "soon" }, wantErr: true},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			form := validForm()
			testCase.mutate(&form)

			err := form.Validate(now)

			if testCase.wantErr {
				assert.ErrorIs(t, err, booking.ErrInvalidForm)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestForm_RequestNormalizesDate(t *testing.T) {
	form := validForm()
	form.Date = "15/10/2026"

	req := form.Request()

	assert.Equal(t, "2026-10-15", req.Date)
	assert.Equal(t, "Maria Perez", req.Name)
	assert.Equal(t, 4, req.Guests)
}
