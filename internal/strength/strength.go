// Package strength scores candidate secrets against composition rules.
// It is a pure utility with no dependency on session or storage state; the
// registration policy and the CLI feedback both go through Evaluate.
package strength

import (
	"unicode"

	"github.com/mkoshelev/lockvault/internal/models"
)

// PolicyMinLength is the minimum credential length accepted at registration.
const PolicyMinLength = 8

type classes struct {
	lower, upper, digit, symbol bool
}

func classify(candidate string) classes {
	var c classes
	for _, r := range candidate {
		switch {
		case unicode.IsLower(r):
			c.lower = true
		case unicode.IsUpper(r):
			c.upper = true
		case unicode.IsDigit(r):
			c.digit = true
		default:
			c.symbol = true
		}
	}
	return c
}

// Evaluate scores candidate with six one-point checks: length >= 8,
// length >= 12, and presence of lowercase, uppercase, digit, and symbol
// characters. The total maps to a level and a 0-100 score.
func Evaluate(candidate string) models.StrengthReport {
	score := 0
	if len(candidate) >= 8 {
		score++
	}
	if len(candidate) >= 12 {
		score++
	}

	c := classify(candidate)
	for _, ok := range []bool{c.lower, c.upper, c.digit, c.symbol} {
		if ok {
			score++
		}
	}

	switch {
	case score <= 2:
		return models.StrengthReport{Level: models.StrengthWeak, Score: 25}
	case score <= 4:
		return models.StrengthReport{Level: models.StrengthFair, Score: 50}
	case score <= 5:
		return models.StrengthReport{Level: models.StrengthGood, Score: 75}
	default:
		return models.StrengthReport{Level: models.StrengthStrong, Score: 100}
	}
}

// MeetsPolicy reports whether candidate satisfies the registration policy:
// at least PolicyMinLength characters and at least one character from each
// of the lowercase, uppercase, digit, and symbol classes. It applies the
// same class checks as Evaluate.
func MeetsPolicy(candidate string) bool {
	if len(candidate) < PolicyMinLength {
		return false
	}
	c := classify(candidate)
	return c.lower && c.upper && c.digit && c.symbol
}
