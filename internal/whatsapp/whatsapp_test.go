package whatsapp

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLink(t *testing.T) {
	tests := []struct {
		name    string
		phone   string
		want    string
		wantErr bool
	}{
		{
			name:  "digits only with country prefix added",
			phone: "414-123-4567",
			want:  "https://wa.me/584141234567?text=hola",
		},
		{
			name:  "existing country code is kept",
			phone: "+58 414 1234567",
			want:  "https://wa.me/584141234567?text=hola",
		},
		{
			name:    "empty phone",
			phone:   "",
			wantErr: true,
		},
		{
			name:    "phone without digits",
			phone:   "n/a",
			wantErr: true,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			url, err := Link(testCase.phone, "hola", "58")

			if testCase.wantErr {
				assert.ErrorIs(t, err, ErrNoPhone)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, testCase.want, url)
			}
		})
	}
}

func TestEncode(t *testing.T) {
	url, err := Link("4141234567", "Hola, ¿mesa para 2?\nGracias", "58")

	assert.NoError(t, err)
	// Spaces, newlines and non-ASCII must be percent-encoded, never '+'.
	assert.Contains(t, url, "%20")
	assert.Contains(t, url, "%0A")
	assert.NotContains(t, url, "+")
	assert.NotContains(t, url, " ")
}

func TestOrderMessage(t *testing.T) {
	lines := []OrderLine{
		{Quantity: 2, Name: "Arepa reina pepiada", Price: 5.5},
		{Quantity: 1, Name: "Tequeños", Price: 4.0},
	}

	t.Run("pickup", func(t *testing.T) {
		message := OrderMessage(lines, 15.0, &DeliveryInfo{Delivery: false})

		assert.Contains(t, message, "Hola, quiero hacer un pedido:")
		assert.Contains(t, message, "2x Arepa reina pepiada - $11.00")
		assert.Contains(t, message, "1x Tequeños - $4.00")
		assert.Contains(t, message, "Total: $15.00")
		assert.Contains(t, message, "Retiro en el local.")
	})

	t.Run("delivery includes address and surcharge note", func(t *testing.T) {
		message := OrderMessage(lines, 15.0, &DeliveryInfo{Delivery: true, Details: "Calle 5, casa 12"})

		assert.Contains(t, message, "Entrega a domicilio:")
		assert.Contains(t, message, "Calle 5, casa 12")
		assert.Contains(t, message, "recargo adicional por servicio")
		assert.NotContains(t, message, "Retiro en el local.")
	})

	t.Run("nil delivery info omits the section", func(t *testing.T) {
		message := OrderMessage(lines, 15.0, nil)

		assert.NotContains(t, message, "Retiro")
		assert.NotContains(t, message, "Entrega")
	})
}

func TestSpanishDate(t *testing.T) {
	assert.Equal(t, "2 de enero", SpanishDate(time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "15 de octubre", SpanishDate(time.Date(2026, 10, 15, 0, 0, 0, 0, time.UTC)))
}

func TestReservationMessage(t *testing.T) {
	date := time.Date(2026, 10, 15, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name         string
		guests       int
		status       string
		wantContains []string
		wantEmpty    bool
	}{
		{
			name:   "confirmed plural",
			guests: 4,
			status: "confirmed",
			wantContains: []string{
				"Hola Maria",
				"tu reserva en Pepito's House ha sido confirmada",
				"el 15 de octubre a las 20:00",
				"para 4 personas",
			},
		},
		{
			name:         "confirmed singular",
			guests:       1,
			status:       "confirmed",
			wantContains: []string{"para 1 persona."},
		},
		{
			name:         "in progress",
			guests:       4,
			status:       "in-progress",
			wantContains: []string{"disfrutando tu experiencia en Pepito's House"},
		},
		{
			name:         "completed",
			guests:       4,
			status:       "completed",
			wantContains: []string{"gracias por visitarnos"},
		},
		{
			name:         "cancelled",
			guests:       4,
			status:       "cancelled",
			wantContains: []string{"ha sido cancelada", "15 de octubre"},
		},
		{
			name:      "pending has no message",
			guests:    4,
			status:    "pending",
			wantEmpty: true,
		},
		{
			name:      "unknown status",
			guests:    4,
			status:    "archived",
			wantEmpty: true,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			message := ReservationMessage("Pepito's House", "Maria", date, "20:00", testCase.guests, testCase.status)

			if testCase.wantEmpty {
				assert.Empty(t, message)
				return
			}
			for _, fragment := range testCase.wantContains {
				assert.Contains(t, message, fragment)
			}
		})
	}
}

func TestDigits(t *testing.T) {
	assert.Equal(t, "4141234567", Digits("(414) 123-4567"))
	assert.Equal(t, "", Digits("sin telefono"))
}

func TestFormatPrice(t *testing.T) {
	assert.Equal(t, "$5.50", FormatPrice(5.5))
	assert.Equal(t, "$0.00", FormatPrice(0))
}