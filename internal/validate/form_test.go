package validate

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/require"
)

func signupRules() map[string]FieldRule {
	return map[string]FieldRule{
		"name":             {Kind: FieldName, Required: true},
		"email":            {Kind: FieldEmail, Required: true},
		"password":         {Kind: FieldPassword, Required: true},
		"confirm_password": {Kind: FieldConfirmPassword, Required: true},
		"age":              {Kind: FieldAge, Required: true},
	}
}

func TestForm(t *testing.T) {
	t.Parallel()

	t.Run("clean signup form", func(t *testing.T) {
		res := Form(map[string]string{
			"name":             " Ada Lovelace ",
			"email":            "Ada@Example.Com",
			"password":         "Str0ng!Pass",
			"confirm_password": "Str0ng!Pass",
			"age":              "20",
		}, signupRules())
		require.True(t, res.Valid)
		require.Empty(t, res.Errors)
		require.Equal(t, "Ada Lovelace", res.Sanitized["name"])
		require.Equal(t, "ada@example.com", res.Sanitized["email"])
		require.Equal(t, "20", res.Sanitized["age"])
	})

	t.Run("password containing the form's own name fails", func(t *testing.T) {
		res := Form(map[string]string{
			"name":             "John Smith",
			"email":            "john@example.com",
			"password":         "johnSmith1!",
			"confirm_password": "johnSmith1!",
			"age":              "30",
		}, signupRules())
		require.False(t, res.Valid)
		require.NotEmpty(t, res.Errors["password"])
	})

	t.Run("confirm password must match exactly", func(t *testing.T) {
		res := Form(map[string]string{
			"name":             "Ada Lovelace",
			"email":            "ada@example.com",
			"password":         "Str0ng!Pass",
			"confirm_password": "Str0ng!pass",
			"age":              "20",
		}, signupRules())
		require.False(t, res.Valid)
		require.Contains(t, res.Errors["confirm_password"], "Passwords do not match")
	})

	t.Run("optional empty field skips validation", func(t *testing.T) {
		rules := map[string]FieldRule{
			"email": {Kind: FieldEmail, Required: true},
			"bio":   {Kind: FieldGeneric, MaxLen: 10},
		}
		res := Form(map[string]string{"email": "a@b.co", "bio": ""}, rules)
		require.True(t, res.Valid)
	})

	t.Run("generic rule with pattern and custom message", func(t *testing.T) {
		rules := map[string]FieldRule{
			"code": {
				Kind:           FieldGeneric,
				Required:       true,
				Pattern:        regexp.MustCompile(`^\d{6}$`),
				PatternMessage: "Code must be 6 digits",
			},
		}
		res := Form(map[string]string{"code": "12ab56"}, rules)
		require.False(t, res.Valid)
		require.Contains(t, res.Errors["code"], "Code must be 6 digits")
	})

	t.Run("zero-value rule imposes no constraint", func(t *testing.T) {
		res := Form(map[string]string{"anything": "x"}, map[string]FieldRule{"anything": {}})
		require.True(t, res.Valid)
		require.Equal(t, "x", res.Sanitized["anything"])
	})

	t.Run("warnings surface without failing the form", func(t *testing.T) {
		rules := map[string]FieldRule{"email": {Kind: FieldEmail, Required: true}}
		res := Form(map[string]string{"email": "kid@gmial.com"}, rules)
		require.True(t, res.Valid)
		require.NotEmpty(t, res.Warnings["email"])
	})
}
