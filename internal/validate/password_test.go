package validate

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPasswordPolicy(t *testing.T) {
	t.Parallel()

	t.Run("accepts a compliant password", func(t *testing.T) {
		v := Password("Str0ng!Pass", PasswordContext{})
		require.True(t, v.Valid)
		require.Empty(t, v.Errors)
		require.Equal(t, "Str0ng!Pass", v.Sanitized)
	})

	t.Run("empty is required", func(t *testing.T) {
		v := Password("", PasswordContext{})
		require.False(t, v.Valid)
		require.Contains(t, v.Errors, "Password is required")
	})

	t.Run("weak password reports every missing rule", func(t *testing.T) {
		v := Password("abc123", PasswordContext{})
		require.False(t, v.Valid)
		require.Contains(t, v.Errors, "Password must be at least 8 characters")
		require.Contains(t, v.Errors, "Password must contain an uppercase letter")
		require.Contains(t, v.Errors, "Password must contain a special character")
	})

	t.Run("over 128 characters rejected", func(t *testing.T) {
		v := Password("Aa1!"+strings.Repeat("x", 130), PasswordContext{})
		require.False(t, v.Valid)
		require.Contains(t, v.Errors, "Password must be at most 128 characters")
	})

	t.Run("missing classes become suggestions", func(t *testing.T) {
		v := Password("lowercaseonly", PasswordContext{})
		require.Contains(t, v.Suggestions, "Add an uppercase letter")
		require.Contains(t, v.Suggestions, "Add a number")
	})
}

func TestPasswordDenyList(t *testing.T) {
	t.Parallel()

	for _, pw := range []string{"password", "PASSWORD", "Qwerty", "123456", "LetMeIn"} {
		v := Password(pw, PasswordContext{})
		require.False(t, v.Valid, "deny-listed password %q must be invalid", pw)
		require.Contains(t, v.Errors, "Password is too common")
	}
}

func TestPasswordPersonalInfo(t *testing.T) {
	t.Parallel()

	t.Run("name containment is blocking", func(t *testing.T) {
		// satisfies all four class rules and length, but embeds the name
		v := Password("johnSmith1!", PasswordContext{Name: "John Smith"})
		require.False(t, v.Valid)
		require.Contains(t, v.Errors, "Password must not contain your name")
	})

	t.Run("email local part containment is blocking", func(t *testing.T) {
		v := Password("Ada.lovelace1!", PasswordContext{Email: "lovelace@example.com"})
		require.False(t, v.Valid)
		require.Contains(t, v.Errors, "Password must not contain your email address")
	})

	t.Run("unrelated context passes", func(t *testing.T) {
		v := Password("Tr1cky!Horse", PasswordContext{Name: "Ada Lovelace", Email: "ada@example.com"})
		require.True(t, v.Valid)
	})
}

func TestPasswordStrength(t *testing.T) {
	t.Parallel()

	t.Run("all criteria reach five", func(t *testing.T) {
		v := Password("Str0ng!Passphrase", PasswordContext{})
		require.Equal(t, 5, v.Strength)
	})

	t.Run("sequential run warns and lowers strength", func(t *testing.T) {
		with := Password("Aa!123456z", PasswordContext{})
		without := Password("Aa!135792z", PasswordContext{})
		require.True(t, with.Valid) // warning only
		require.NotEmpty(t, with.Warnings)
		require.Less(t, with.Strength, without.Strength)
	})

	t.Run("triple repeat warns", func(t *testing.T) {
		v := Password("Aaa!x19Qzzz", PasswordContext{})
		require.True(t, v.Valid)
		require.Contains(t, v.Warnings, "Avoid repeating the same character")
	})

	t.Run("floored at zero", func(t *testing.T) {
		v := Password("password", PasswordContext{})
		require.GreaterOrEqual(t, v.Strength, 0)
	})

	t.Run("adding a missing class never lowers strength or flips validity", func(t *testing.T) {
		base := "str0ng!pass" // valid except for missing uppercase
		before := Password(base, PasswordContext{})
		after := Password(base+"A", PasswordContext{})
		require.GreaterOrEqual(t, after.Strength, before.Strength)
		require.True(t, after.Valid)
	})
}

func TestStrengthLabel(t *testing.T) {
	t.Parallel()

	require.Equal(t, "Very Weak", StrengthLabel(0).Text)
	require.Equal(t, "Very Strong", StrengthLabel(5).Text)
	require.Equal(t, "Very Weak", StrengthLabel(-3).Text)
	require.Equal(t, "Very Strong", StrengthLabel(9).Text)
	require.NotEmpty(t, StrengthLabel(3).Color)
}
