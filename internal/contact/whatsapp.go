// Package contact builds the outbound messaging link for a listing.
package contact

import (
	"fmt"
	"strconv"

	"bookbarter/internal/listing"
)

const waBaseURL = "https://wa.me/"

// WhatsAppLink returns the wa.me deep link for l, with a pre-filled
// enquiry message addressed to the seller. Pure; the caller decides
// whether to open or redirect to it. No validation is done on the
// number — a bad one fails at WhatsApp, outside this system.
func WhatsAppLink(l listing.Listing) string {
	msg := fmt.Sprintf(
		"Hi %s! I'm interested in your book \"%s\" listed on BookBarter for ₹%s. Is it still available?",
		l.Seller, l.Title, formatPrice(l.Price),
	)
	return waBaseURL + l.WhatsApp + "?text=" + encodeComponent(msg)
}

// formatPrice renders the price the way the listing page shows it: no
// exponent, no trailing zeros (960, not 960.00).
func formatPrice(p float64) string {
	return strconv.FormatFloat(p, 'f', -1, 64)
}

// encodeComponent percent-encodes s exactly like JavaScript's
// encodeURIComponent, which is what WhatsApp's text parameter expects.
// url.QueryEscape is close but emits '+' for spaces and escapes !'()*~.
func encodeComponent(s string) string {
	const hex = "0123456789ABCDEF"
	buf := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if isComponentSafe(c) {
			buf = append(buf, c)
			continue
		}
		buf = append(buf, '%', hex[c>>4], hex[c&0xf])
	}
	return string(buf)
}

func isComponentSafe(c byte) bool {
	switch {
	case 'A' <= c && c <= 'Z', 'a' <= c && c <= 'z', '0' <= c && c <= '9':
		return true
	}
	switch c {
	case '-', '_', '.', '!', '~', '*', '\'', '(', ')':
		return true
	}
	return false
}
