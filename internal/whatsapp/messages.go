package whatsapp

import (
	"fmt"
	"strings"
	"time"
)

// OrderLine is one cart line as it appears in the checkout message.
type OrderLine struct {
	Quantity int
	Name     string
	Price    float64
}

// DeliveryInfo describes how the customer wants to receive the order.
// Delivery carries a flat informational surcharge note; no fee is computed
// here or added to the total.
type DeliveryInfo struct {
	Delivery bool
	Details  string
}

// OrderMessage renders the itemized checkout text: one line per cart item,
// a total line, and an optional delivery-or-pickup section.
func OrderMessage(lines []OrderLine, total float64, info *DeliveryInfo) string {
	var b strings.Builder
	b.WriteString("Hola, quiero hacer un pedido:\n\n")

	for _, line := range lines {
		fmt.Fprintf(&b, "%dx %s - %s\n", line.Quantity, line.Name, FormatPrice(line.Price*float64(line.Quantity)))
	}

	fmt.Fprintf(&b, "\nTotal: %s", FormatPrice(total))

	if info != nil {
		if info.Delivery {
			b.WriteString("\n\nEntrega a domicilio:\n")
			b.WriteString(info.Details)
			b.WriteString("\nNota: el delivery tiene un recargo adicional por servicio.")
		} else {
			b.WriteString("\n\nRetiro en el local.")
		}
	}

	return b.String()
}

var spanishMonths = [...]string{
	"enero", "febrero", "marzo", "abril", "mayo", "junio",
	"julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre",
}

// SpanishDate renders a date as "2 de enero".
func SpanishDate(t time.Time) string {
	return fmt.Sprintf("%d de %s", t.Day(), spanishMonths[t.Month()-1])
}

// ReservationMessage composes the courtesy note an operator sends when a
// reservation reaches the given status. Unknown statuses yield an empty
// string; the pending state has no outbound message.
func ReservationMessage(restaurant, name string, date time.Time, timeSlot string, guests int, status string) string {
	when := SpanishDate(date)

	switch status {
	case "confirmed":
		people := "personas"
		if guests == 1 {
			people = "persona"
		}
		return fmt.Sprintf("Hola %s, ¡tu reserva en %s ha sido confirmada! Te esperamos el %s a las %s para %d %s. Cualquier cambio, por favor avísanos con anticipación. ¡Gracias!",
			name, restaurant, when, timeSlot, guests, people)
	case "in-progress":
		return fmt.Sprintf("Hola %s, ¡esperamos estés disfrutando tu experiencia en %s! Si necesitas algo adicional, no dudes en pedirlo a nuestro personal.",
			name, restaurant)
	case "completed":
		return fmt.Sprintf("Hola %s, ¡gracias por visitarnos en %s! Esperamos que hayas disfrutado tu experiencia. Nos encantaría recibir tus comentarios y verte nuevamente pronto.",
			name, restaurant)
	case "cancelled":
		return fmt.Sprintf("Hola %s, lamentamos informarte que tu reserva en %s para el %s a las %s ha sido cancelada. Para más información o para reprogramar, por favor contáctanos.",
			name, restaurant, when, timeSlot)
	}

	return ""
}
