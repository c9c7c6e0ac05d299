package validate

import (
	"fmt"
	"regexp"
	"strings"
)

// FieldKind selects the validator strategy for a form field. Unknown
// field names get no implicit behavior: callers bind kinds explicitly,
// and an unconfigured field is simply passed through.
type FieldKind int

const (
	FieldGeneric FieldKind = iota
	FieldName
	FieldEmail
	FieldPassword
	FieldConfirmPassword
	FieldAge
)

// FieldRule configures validation for one form field. Zero values mean
// "no constraint": a rule with only Kind set applies just that kind's
// built-in checks.
type FieldRule struct {
	Kind     FieldKind
	Required bool

	// generic-kind constraints
	MinLen         int
	MaxLen         int
	Pattern        *regexp.Regexp
	PatternMessage string
}

// FormResult aggregates per-field verdicts. Sanitized carries only the
// fields that validated cleanly.
type FormResult struct {
	Valid     bool
	Errors    map[string][]string
	Warnings  map[string][]string
	Sanitized map[string]string
}

// Form validates a set of raw string values against per-field rules.
// Optional fields that are empty are skipped and passed through
// unsanitized. The password validator receives the form's own name and
// email values as containment context; confirm_password is compared
// against the sibling "password" value byte for byte.
func Form(values map[string]string, rules map[string]FieldRule) FormResult {
	res := FormResult{
		Valid:     true,
		Errors:    map[string][]string{},
		Warnings:  map[string][]string{},
		Sanitized: map[string]string{},
	}

	for field, rule := range rules {
		raw := values[field]

		if !rule.Required && strings.TrimSpace(raw) == "" {
			res.Sanitized[field] = raw
			continue
		}

		var verdict Verdict
		switch rule.Kind {
		case FieldName:
			verdict = Name(raw)
		case FieldEmail:
			verdict = Email(raw)
		case FieldPassword:
			pv := Password(raw, PasswordContext{
				Name:  values["name"],
				Email: values["email"],
			})
			verdict = pv.Verdict
		case FieldConfirmPassword:
			verdict = confirmPassword(raw, values["password"])
		case FieldAge:
			av := Age(raw)
			verdict = av.Verdict
		default:
			verdict = generic(field, raw, rule)
		}

		if len(verdict.Errors) > 0 {
			res.Valid = false
			res.Errors[field] = verdict.Errors
		} else {
			res.Sanitized[field] = verdict.Sanitized
		}
		if len(verdict.Warnings) > 0 {
			res.Warnings[field] = verdict.Warnings
		}
	}

	return res
}

func confirmPassword(raw, password string) Verdict {
	v := Verdict{Valid: true}
	if raw == "" {
		v.fail("Please confirm your password")
		return v
	}
	if raw != password {
		v.fail("Passwords do not match")
		return v
	}
	v.Sanitized = raw
	return v
}

func generic(field, raw string, rule FieldRule) Verdict {
	v := Verdict{Valid: true}

	if rule.Required && strings.TrimSpace(raw) == "" {
		v.fail(fmt.Sprintf("%s is required", field))
		return v
	}
	if rule.MinLen > 0 && len(raw) < rule.MinLen {
		v.fail(fmt.Sprintf("%s must be at least %d characters", field, rule.MinLen))
	}
	if rule.MaxLen > 0 && len(raw) > rule.MaxLen {
		v.fail(fmt.Sprintf("%s must be at most %d characters", field, rule.MaxLen))
	}
	if rule.Pattern != nil && !rule.Pattern.MatchString(raw) {
		msg := rule.PatternMessage
		if msg == "" {
			msg = fmt.Sprintf("%s has an invalid format", field)
		}
		v.fail(msg)
	}

	if v.Valid {
		v.Sanitized = raw
	}
	return v
}
