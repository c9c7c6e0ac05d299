package validate

import (
	"strconv"
	"strings"
)

const (
	ageMin = 1
	ageMax = 150

	// below this, signup needs a parent or guardian; advisory only,
	// not a rejection (warnings channel, matching the rest of the engine)
	ageConsentThreshold = 13
)

// Age coerces a raw string to an integer and range-checks it.
func Age(raw string) AgeVerdict {
	v := AgeVerdict{Verdict: Verdict{Valid: true}}

	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		v.fail("Age is required")
		return v
	}

	n, err := strconv.Atoi(trimmed)
	if err != nil {
		v.fail("Age must be a whole number")
		return v
	}
	if n < ageMin || n > ageMax {
		v.fail("Age must be between 1 and 150")
		return v
	}

	if n < ageConsentThreshold {
		v.warn("Users under 13 require parental consent")
	}

	v.Value = n
	v.Sanitized = strconv.Itoa(n)
	return v
}
