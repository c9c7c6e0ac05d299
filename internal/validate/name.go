package validate

import (
	"regexp"
	"strings"
	"unicode"
)

const (
	nameMinLen = 2
	nameMaxLen = 100
)

// letters (any script, with combining accents), space, hyphen, apostrophe, period
var nameCharsRe = regexp.MustCompile(`^[\p{L}\p{M} .'-]+$`)

var doubleSpaceRe = regexp.MustCompile(`\s{2,}`)

// Name checks a display name. Sanitized is the trimmed value with
// internal whitespace runs collapsed to a single space.
func Name(raw string) Verdict {
	v := Verdict{Valid: true}

	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		v.fail("Name is required")
		return v
	}
	if len([]rune(trimmed)) < nameMinLen {
		v.fail("Name must be at least 2 characters")
	}
	if len([]rune(trimmed)) > nameMaxLen {
		v.fail("Name must be at most 100 characters")
	}
	if !nameCharsRe.MatchString(trimmed) {
		v.fail("Name may only contain letters, spaces, hyphens, apostrophes and periods")
	}
	if doubleSpaceRe.MatchString(trimmed) {
		v.fail("Name must not contain consecutive spaces")
	}
	if !containsLetter(trimmed) {
		v.fail("Name must contain at least one letter")
	}

	if v.Valid {
		v.Sanitized = strings.Join(strings.Fields(trimmed), " ")
	}
	return v
}

func containsLetter(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) {
			return true
		}
	}
	return false
}
