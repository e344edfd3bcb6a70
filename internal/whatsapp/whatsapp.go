// Package whatsapp builds wa.me deep-links and the message texts the
// restaurant hands to a human to send. Nothing here talks to the WhatsApp
// API: the output is always a URL for an operator or customer to open.
package whatsapp

import (
	"errors"
	"fmt"
	"strings"
)

var ErrNoPhone = errors.New("no destination phone number configured")

// Link builds a wa.me deep-link for the given phone and message text.
// The phone is reduced to digits and prefixed with countryCode when it does
// not already start with it. An empty phone is an error: callers must refuse
// to proceed rather than hand out a broken link.
func Link(phone, message, countryCode string) (string, error) {
	digits := Digits(phone)
	if digits == "" {
		return "", ErrNoPhone
	}

	if countryCode != "" && !strings.HasPrefix(digits, countryCode) {
		digits = countryCode + digits
	}

	return "https://wa.me/" + digits + "?text=" + encode(message), nil
}

// Digits strips everything except decimal digits from a phone number.
func Digits(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// encode percent-encodes message text the way encodeURIComponent does,
// so newlines become %0A and spaces %20 rather than '+'.
func encode(s string) string {
	var b strings.Builder
	for _, c := range []byte(s) {
		switch {
		case c >= 'A' && c <= 'Z', c >= 'a' && c <= 'z', c >= '0' && c <= '9':
			b.WriteByte(c)
		case c == '-' || c == '_' || c == '.' || c == '~':
			b.WriteByte(c)
		default:
			fmt.Fprintf(&b, "%%%02X", c)
		}
	}
	return b.String()
}

// FormatPrice renders an amount the way the menu displays it.
func FormatPrice(amount float64) string {
	return fmt.Sprintf("$%.2f", amount)
}
