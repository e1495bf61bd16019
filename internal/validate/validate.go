// Package validate holds the field-level checks shared by both backends.
// Everything here is pure: no storage, no context.
package validate

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

var (
	ErrInvalidFormat = errors.New("invalid format")
	ErrInvalidValue  = errors.New("invalid value")
)

// one or more non-space, non-@ characters, a single @, more of the same,
// a literal dot, and a non-empty tail
var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Email checks the address against the pattern above and returns the
// lower-cased form. Addresses are stored and looked up lower-cased.
func Email(raw string) (string, error) {
	if !emailRe.MatchString(raw) {
		return "", fmt.Errorf("%w: email %q", ErrInvalidFormat, raw)
	}
	return strings.ToLower(raw), nil
}

// Enum reports whether v is one of the allowed values.
func Enum(v int, allowed ...int) error {
	for _, a := range allowed {
		if v == a {
			return nil
		}
	}
	return fmt.Errorf("%w: %d not in %v", ErrInvalidValue, v, allowed)
}

// NonNegative rejects values below zero.
func NonNegative(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: %d is negative", ErrInvalidValue, n)
	}
	return nil
}

// MaxLen rejects strings longer than limit.
func MaxLen(s string, limit int) error {
	if len(s) > limit {
		return fmt.Errorf("%w: length %d exceeds %d", ErrInvalidValue, len(s), limit)
	}
	return nil
}
