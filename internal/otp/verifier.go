// Package otp implements the phone number and one-time code checks of the
// sign-in screen. Codes are compared against a fixed demo code; nothing
// is sent anywhere.
package otp

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

const (
	// PhoneDigits is the length of a valid phone number.
	PhoneDigits = 10
	// CodeDigits is the length of a one-time code.
	CodeDigits = 6
)

var (
	ErrInvalidPhone   = errors.New("please enter a valid 10-digit phone number")
	ErrIncompleteCode = errors.New("please enter all 6 digits")
	ErrWrongCode      = errors.New("invalid OTP")
)

// NormalizePhone keeps the digits of raw, truncated to PhoneDigits.
func NormalizePhone(raw string) string {
	return digits(raw, PhoneDigits)
}

// ValidatePhone returns the normalized phone number or ErrInvalidPhone.
func ValidatePhone(raw string) (string, error) {
	phone := digits(raw, -1)
	if len(phone) != PhoneDigits {
		return "", ErrInvalidPhone
	}
	return phone, nil
}

// NormalizeCode keeps the digits of raw, truncated to CodeDigits.
func NormalizeCode(raw string) string {
	return digits(raw, CodeDigits)
}

// Verifier checks one-time codes against the configured code.
type Verifier struct {
	code string
}

// NewVerifier creates a verifier accepting code.
func NewVerifier(code string) *Verifier {
	return &Verifier{code: code}
}

// Check validates a submitted code. Wrong codes wrap ErrWrongCode and
// carry the accepted code as a hint.
func (v *Verifier) Check(code string) error {
	if len(code) != CodeDigits || digits(code, -1) != code {
		return ErrIncompleteCode
	}
	if code != v.code {
		return fmt.Errorf("%w, try %s", ErrWrongCode, v.code)
	}
	return nil
}

func digits(s string, limit int) string {
	var b strings.Builder
	for _, r := range s {
		if limit >= 0 && b.Len() >= limit {
			break
		}
		if r < unicode.MaxASCII && unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}
