// Package chatlink builds chat deep links that open a conversation with a pre-filled message.
package chatlink

import (
	"errors"
	"net/url"
	"strings"
	"unicode"
)

// ErrInvalidPhone is returned when a phone number contains no digits.
var ErrInvalidPhone = errors.New("phone number has no digits")

// DefaultBaseURL is the WhatsApp click-to-chat endpoint.
const DefaultBaseURL = "https://wa.me/"

// Builder renders links against a base URL such as "https://wa.me/".
type Builder struct {
	baseURL string
}

// NewBuilder creates a Builder. An empty baseURL uses DefaultBaseURL.
func NewBuilder(baseURL string) *Builder {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}
	return &Builder{baseURL: baseURL}
}

// Link returns baseURL + digits(phone) + "?text=" + the encoded text.
func (b *Builder) Link(phone, text string) (string, error) {
	digits := Digits(phone)
	if digits == "" {
		return "", ErrInvalidPhone
	}
	return b.baseURL + digits + "?text=" + Encode(text), nil
}

// Digits strips everything but ASCII digits from phone.
func Digits(phone string) string {
	var sb strings.Builder
	for _, r := range phone {
		if r < unicode.MaxASCII && unicode.IsDigit(r) {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

// componentSafe undoes QueryEscape for the marks encodeURIComponent leaves alone.
var componentSafe = strings.NewReplacer("+", "%20", "%21", "!", "%27", "'", "%28", "(", "%29", ")", "%2A", "*")

// Encode percent-encodes s the way browsers' encodeURIComponent does for message text.
func Encode(s string) string {
	return componentSafe.Replace(url.QueryEscape(s))
}
