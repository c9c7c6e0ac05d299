package validate

import (
	"strings"
	"unicode"
)

const (
	passwordMinLen   = 8
	passwordMaxLen   = 128
	passwordBonusLen = 12
)

const passwordSymbols = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

// exact matches, compared case-insensitively
var commonPasswords = []string{
	"password", "123456", "12345678", "123456789", "qwerty",
	"abc123", "password1", "password123", "admin", "letmein",
	"welcome", "monkey", "iloveyou", "dragon", "sunshine",
	"princess", "football", "baseball", "trustno1", "111111",
}

// recognizable keyboard/alphabet runs, matched as substrings
var sequentialRuns = []string{"123456", "abcdef", "qwerty"}

// PasswordContext carries sibling identity fields so the engine can
// reject passwords derived from them.
type PasswordContext struct {
	Name  string
	Email string
}

// Password evaluates a candidate password against the account password
// policy and computes the 0-5 strength score. Each satisfied criterion
// adds to the running score whether or not it also gates validity;
// deny-list membership and personal-info containment subtract from it.
// Warnings and suggestions never affect Valid.
func Password(raw string, ctx PasswordContext) PasswordVerdict {
	v := PasswordVerdict{Verdict: Verdict{Valid: true}}

	if raw == "" {
		v.fail("Password is required")
		return v
	}

	strength := 0

	if len(raw) < passwordMinLen {
		v.fail("Password must be at least 8 characters")
	} else {
		strength++
	}
	if len(raw) > passwordMaxLen {
		v.fail("Password must be at most 128 characters")
	}

	var hasUpper, hasLower, hasDigit, hasSymbol bool
	for _, r := range raw {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		case strings.ContainsRune(passwordSymbols, r):
			hasSymbol = true
		}
	}

	if hasUpper {
		strength++
	} else {
		v.fail("Password must contain an uppercase letter")
		v.Suggestions = append(v.Suggestions, "Add an uppercase letter")
	}
	if hasLower {
		strength++
	} else {
		v.fail("Password must contain a lowercase letter")
		v.Suggestions = append(v.Suggestions, "Add a lowercase letter")
	}
	if hasDigit {
		strength++
	} else {
		v.fail("Password must contain a number")
		v.Suggestions = append(v.Suggestions, "Add a number")
	}
	if hasSymbol {
		strength++
	} else {
		v.fail("Password must contain a special character")
		v.Suggestions = append(v.Suggestions, "Add a special character (e.g. !@#$%)")
	}

	if len(raw) >= passwordBonusLen {
		strength++
	} else {
		v.Suggestions = append(v.Suggestions, "Use 12 or more characters for a stronger password")
	}

	lower := strings.ToLower(raw)

	for _, banned := range commonPasswords {
		if lower == banned {
			v.fail("Password is too common")
			strength -= 2
			break
		}
	}

	for _, run := range sequentialRuns {
		if strings.Contains(lower, run) {
			v.warn("Avoid sequential characters")
			strength--
			break
		}
	}

	if hasTripleRepeat(raw) {
		v.warn("Avoid repeating the same character")
		strength--
	}

	if containsName(lower, ctx.Name) {
		v.fail("Password must not contain your name")
		strength -= 2
	}
	if email := NormalizeEmail(ctx.Email); email != "" {
		if at := strings.IndexByte(email, '@'); at > 0 {
			if local := email[:at]; strings.Contains(lower, local) {
				v.fail("Password must not contain your email address")
				strength -= 2
			}
		}
	}

	if strength < 0 {
		strength = 0
	}
	if strength > 5 {
		strength = 5
	}
	v.Strength = strength

	if v.Valid {
		v.Sanitized = raw
	}
	return v
}

// containsName matches the whole name (with and without spaces) and
// each individual name part, so "johnSmith1!" is caught for "John Smith".
func containsName(lowerPassword, name string) bool {
	tokens := strings.Fields(strings.ToLower(strings.TrimSpace(name)))
	if len(tokens) == 0 {
		return false
	}
	if strings.Contains(lowerPassword, strings.Join(tokens, "")) {
		return true
	}
	for _, tok := range tokens {
		if len(tok) >= 2 && strings.Contains(lowerPassword, tok) {
			return true
		}
	}
	return false
}

func hasTripleRepeat(s string) bool {
	runes := []rune(s)
	for i := 2; i < len(runes); i++ {
		if runes[i] == runes[i-1] && runes[i] == runes[i-2] {
			return true
		}
	}
	return false
}
