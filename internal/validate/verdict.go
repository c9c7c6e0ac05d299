// Package validate is the field validation engine shared by signup,
// profile editing and the auth service. All functions are pure and
// total: they never panic and always return a verdict, even for
// garbage input or misconfigured form rules.
package validate

// Verdict is the result of checking a single field.
type Verdict struct {
	Valid     bool
	Errors    []string
	Warnings  []string
	Sanitized string
}

func (v *Verdict) fail(msg string) {
	v.Valid = false
	v.Errors = append(v.Errors, msg)
}

func (v *Verdict) warn(msg string) {
	v.Warnings = append(v.Warnings, msg)
}

// PasswordVerdict extends Verdict with the advisory strength score and
// improvement suggestions. Suggestions and warnings never affect Valid.
type PasswordVerdict struct {
	Verdict
	Suggestions []string
	Strength    int
}

// AgeVerdict carries the coerced integer alongside the usual verdict.
type AgeVerdict struct {
	Verdict
	Value int
}

// Label is the presentation pair for a strength score. Advisory only.
type Label struct {
	Text       string
	Color      string
	Background string
}

var strengthLabels = [6]Label{
	{"Very Weak", "#dc2626", "#fee2e2"},
	{"Weak", "#ea580c", "#ffedd5"},
	{"Fair", "#d97706", "#fef3c7"},
	{"Good", "#65a30d", "#ecfccb"},
	{"Strong", "#16a34a", "#dcfce7"},
	{"Very Strong", "#15803d", "#bbf7d0"},
}

// StrengthLabel maps a 0-5 strength score to its display label.
// Out-of-range scores are clamped.
func StrengthLabel(n int) Label {
	if n < 0 {
		n = 0
	}
	if n > 5 {
		n = 5
	}
	return strengthLabels[n]
}
