// Package password implements the signup password-strength policy.
package password

import (
	"strings"
	"unicode/utf8"
)

// Requirement phrases, in the order they are checked and reported.
const (
	ReqLength    = "at least 8 characters"
	ReqUppercase = "an uppercase letter"
	ReqLowercase = "a lowercase letter"
	ReqDigit     = "a digit"
	ReqSpecial   = "a special character"
)

// Check returns the unmet requirements for a candidate password, in fixed
// order: length, uppercase, lowercase, digit, special. An empty result
// means the password is acceptable. Character classes are ASCII; anything
// outside [A-Za-z0-9] counts as special.
func Check(candidate string) []string {
	var upper, lower, digit, special bool
	for _, r := range candidate {
		switch {
		case r >= 'A' && r <= 'Z':
			upper = true
		case r >= 'a' && r <= 'z':
			lower = true
		case r >= '0' && r <= '9':
			digit = true
		default:
			special = true
		}
	}

	var missing []string
	if utf8.RuneCountInString(candidate) < 8 {
		missing = append(missing, ReqLength)
	}
	if !upper {
		missing = append(missing, ReqUppercase)
	}
	if !lower {
		missing = append(missing, ReqLowercase)
	}
	if !digit {
		missing = append(missing, ReqDigit)
	}
	if !special {
		missing = append(missing, ReqSpecial)
	}
	return missing
}

// Message formats unmet requirements as the user-facing signup error.
func Message(missing []string) string {
	return "Password must contain: " + strings.Join(missing, ", ") + "."
}
