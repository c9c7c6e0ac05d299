package validate

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestName(t *testing.T) {
	t.Parallel()

	t.Run("valid names", func(t *testing.T) {
		for _, n := range []string{"Ada Lovelace", "Jean-Luc", "O'Brien", "J. R. Tolkien", "Ng"} {
			v := Name(n)
			require.True(t, v.Valid, "expected %q to be valid: %v", n, v.Errors)
		}
	})

	t.Run("empty is required", func(t *testing.T) {
		v := Name("   ")
		require.False(t, v.Valid)
		require.Contains(t, v.Errors, "Name is required")
	})

	t.Run("length bounds", func(t *testing.T) {
		require.False(t, Name("A").Valid)
		long := make([]byte, 101)
		for i := range long {
			long[i] = 'a'
		}
		require.False(t, Name(string(long)).Valid)
	})

	t.Run("rejects digits and symbols", func(t *testing.T) {
		require.False(t, Name("R2D2").Valid)
		require.False(t, Name("Ada@Home").Valid)
	})

	t.Run("rejects consecutive spaces", func(t *testing.T) {
		require.False(t, Name("Ada  Lovelace").Valid)
	})

	t.Run("rejects punctuation with no letters", func(t *testing.T) {
		require.False(t, Name("-- ..").Valid)
	})

	t.Run("sanitizes surrounding whitespace", func(t *testing.T) {
		v := Name("  Ada Lovelace ")
		require.True(t, v.Valid)
		require.Equal(t, "Ada Lovelace", v.Sanitized)
	})

	t.Run("accented letters pass", func(t *testing.T) {
		require.True(t, Name("José Álvarez").Valid)
	})
}

func TestEmail(t *testing.T) {
	t.Parallel()

	t.Run("normalizes to trimmed lowercase", func(t *testing.T) {
		v := Email("  Ada@Example.COM ")
		require.True(t, v.Valid)
		require.Equal(t, "ada@example.com", v.Sanitized)
	})

	t.Run("sanitization is a fixed point", func(t *testing.T) {
		for _, raw := range []string{"Ada@Example.Com", " USER@SUB.DOMAIN.ORG ", "a.b+c@x-y.io"} {
			once := Email(raw)
			require.True(t, once.Valid)
			twice := Email(once.Sanitized)
			require.True(t, twice.Valid)
			require.Equal(t, once.Sanitized, twice.Sanitized)
		}
	})

	t.Run("rejects malformed addresses", func(t *testing.T) {
		for _, raw := range []string{
			"", "plain", "@nodomain.com", "user@", "user@@x.com",
			"user@domain", "user@-bad.com", "user@bad-.com",
			".leading@x.com", "double..dot@x.com",
		} {
			require.False(t, Email(raw).Valid, "expected %q to be invalid", raw)
		}
	})

	t.Run("rejects over 254 characters", func(t *testing.T) {
		local := make([]byte, 250)
		for i := range local {
			local[i] = 'a'
		}
		require.False(t, Email(string(local)+"@example.com").Valid)
	})

	t.Run("typo domains warn but do not fail", func(t *testing.T) {
		v := Email("someone@gmial.com")
		require.True(t, v.Valid)
		require.Contains(t, v.Warnings, "Did you mean @gmail.com?")
	})
}

func TestAge(t *testing.T) {
	t.Parallel()

	t.Run("coerces strings", func(t *testing.T) {
		v := Age(" 20 ")
		require.True(t, v.Valid)
		require.Equal(t, 20, v.Value)
		require.Equal(t, "20", v.Sanitized)
	})

	t.Run("required", func(t *testing.T) {
		require.False(t, Age("").Valid)
	})

	t.Run("non-integer rejected", func(t *testing.T) {
		require.False(t, Age("twelve").Valid)
		require.False(t, Age("12.5").Valid)
	})

	t.Run("range 1-150", func(t *testing.T) {
		require.False(t, Age("0").Valid)
		require.False(t, Age("151").Valid)
		require.True(t, Age("1").Valid)
		require.True(t, Age("150").Valid)
	})

	t.Run("under 13 is advisory only", func(t *testing.T) {
		v := Age("10")
		require.True(t, v.Valid)
		require.Contains(t, v.Warnings, "Users under 13 require parental consent")
	})
}
