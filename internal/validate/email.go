package validate

import (
	"regexp"
	"strings"
)

const emailMaxLen = 254

// dot-atom local part; dot-separated domain labels of up to 63
// alphanumeric/hyphen chars with no leading or trailing hyphen
var emailRe = regexp.MustCompile(
	`^[a-z0-9!#$%&'*+/=?^_` + "`" + `{|}~-]+(\.[a-z0-9!#$%&'*+/=?^_` + "`" + `{|}~-]+)*` +
		`@[a-z0-9]([a-z0-9-]{0,61}[a-z0-9])?(\.[a-z0-9]([a-z0-9-]{0,61}[a-z0-9])?)+$`)

// common misspellings of popular providers; a match is a warning, not a
// rejection (people do own these domains)
var typoDomains = map[string]string{
	"gmial.com":   "gmail.com",
	"gmal.com":    "gmail.com",
	"gmaill.com":  "gmail.com",
	"gnail.com":   "gmail.com",
	"yahooo.com":  "yahoo.com",
	"yaho.com":    "yahoo.com",
	"hotmial.com": "hotmail.com",
	"hotmal.com":  "hotmail.com",
	"outlok.com":  "outlook.com",
	"outloook.com": "outlook.com",
}

// Email checks an address and normalizes it to trimmed lowercase.
// Normalization is a fixed point: Email(Email(x).Sanitized).Sanitized
// equals Email(x).Sanitized for any valid x.
func Email(raw string) Verdict {
	v := Verdict{Valid: true}

	norm := strings.ToLower(strings.TrimSpace(raw))
	if norm == "" {
		v.fail("Email is required")
		return v
	}
	if len(norm) > emailMaxLen {
		v.fail("Email must be at most 254 characters")
		return v
	}
	if !emailRe.MatchString(norm) {
		v.fail("Email format is invalid")
		return v
	}

	if at := strings.LastIndexByte(norm, '@'); at >= 0 {
		if meant, ok := typoDomains[norm[at+1:]]; ok {
			v.warn("Did you mean @" + meant + "?")
		}
	}

	v.Sanitized = norm
	return v
}

// NormalizeEmail applies the same trim+lowercase normalization without
// running format checks. Used before any lookup or comparison.
func NormalizeEmail(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}
