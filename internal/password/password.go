// Package password holds the client-side password rules: a rule list used to
// gate sign-up forms and a coarse strength score shown as a meter.
package password

import (
	"errors"
	"strings"
	"unicode"
)

var (
	ErrCurrentMissing = errors.New("password: current password is required")
	ErrSameAsCurrent  = errors.New("password: new password must differ from the current one")
	ErrMismatch       = errors.New("password: confirmation does not match")
	ErrTooWeak        = errors.New("password: does not meet the strength rules")
)

// Label buckets a score for display.
type Label string

const (
	LabelWeak   Label = "weak"
	LabelMedium Label = "medium"
	LabelStrong Label = "strong"
)

const specials = "!@#$%^&*()_+-=[]{};':\"\\|,.<>/?"

// ValidateStrength returns the rules the password fails, one message per
// unmet rule, empty when all pass.
func ValidateStrength(pw string) []string {
	var failed []string
	if len(pw) < 8 {
		failed = append(failed, "at least 8 characters")
	}
	if !strings.ContainsFunc(pw, unicode.IsUpper) {
		failed = append(failed, "an uppercase letter")
	}
	if !strings.ContainsFunc(pw, unicode.IsLower) {
		failed = append(failed, "a lowercase letter")
	}
	if !strings.ContainsFunc(pw, unicode.IsDigit) {
		failed = append(failed, "a digit")
	}
	if !strings.ContainsAny(pw, specials) {
		failed = append(failed, "a special character")
	}
	return failed
}

// Strength scores a password for the meter. Length grants up to three points
// (8, 12, 16 characters), each character class one more, plus one for
// characters outside the usual classes. Longer or more varied input never
// scores lower.
func Strength(pw string) (int, Label) {
	score := 0
	if len(pw) >= 8 {
		score++
	}
	if len(pw) >= 12 {
		score++
	}
	if len(pw) >= 16 {
		score++
	}

	var upper, lower, digit, special, exotic bool
	for _, r := range pw {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsDigit(r):
			digit = true
		case strings.ContainsRune(specials, r):
			special = true
		default:
			exotic = true
		}
	}
	for _, hit := range []bool{upper, lower, digit, special, exotic} {
		if hit {
			score++
		}
	}

	switch {
	case score <= 2:
		return score, LabelWeak
	case score <= 4:
		return score, LabelMedium
	default:
		return score, LabelStrong
	}
}

// ValidateUpdate checks a change-password form before touching the provider.
func ValidateUpdate(current, next, confirm string) error {
	if current == "" {
		return ErrCurrentMissing
	}
	if len(ValidateStrength(next)) > 0 {
		return ErrTooWeak
	}
	if next == current {
		return ErrSameAsCurrent
	}
	if next != confirm {
		return ErrMismatch
	}
	return nil
}
