package http

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	plathttp "edulink/internal/platform/http"
)

type stubMailer struct {
	mu    sync.Mutex
	codes map[string]string // email -> last code, login and reset alike
}

func (m *stubMailer) SendLoginCode(_ context.Context, to, code string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.codes[to] = code
	return nil
}

func (m *stubMailer) SendResetCode(_ context.Context, to, code string) error {
	return m.SendLoginCode(context.Background(), to, code)
}

func (m *stubMailer) last(to string) string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.codes[to]
}

func newTestApp(t *testing.T) (*fiber.App, *stubMailer) {
	t.Helper()
	mailer := &stubMailer{codes: map[string]string{}}
	app := plathttp.NewServer(plathttp.Options{AppName: "edulink-auth-test"}, NewModule(mailer))
	return app, mailer
}

func postJSON(t *testing.T, app *fiber.App, path, token string, body any) (int, map[string]any) {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest("POST", path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var out map[string]any
	require.NoError(t, json.Unmarshal(data, &out), "body: %s", data)
	return resp.StatusCode, out
}

func getJSON(t *testing.T, app *fiber.App, path, token string) (int, map[string]any) {
	t.Helper()
	req := httptest.NewRequest("GET", path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var out map[string]any
	require.NoError(t, json.Unmarshal(data, &out))
	return resp.StatusCode, out
}

func registerAda(t *testing.T, app *fiber.App) map[string]any {
	t.Helper()
	status, body := postJSON(t, app, "/api/v1/auth/register", "", fiber.Map{
		"name":     "Ada Lovelace",
		"email":    "Ada@Example.Com",
		"password": "Str0ng!Pass",
		"role":     "student",
		"age":      20,
	})
	require.Equal(t, fiber.StatusCreated, status, "register failed: %v", body)
	return body
}

func TestRegisterEndpoint(t *testing.T) {
	t.Parallel()

	t.Run("register issues tokens immediately", func(t *testing.T) {
		app, _ := newTestApp(t)
		body := registerAda(t, app)

		user := body["user"].(map[string]any)
		require.Equal(t, "ada@example.com", user["email"])
		require.Equal(t, "student", user["role"])
		require.NotEmpty(t, body["access_token"])
		require.NotEmpty(t, body["refresh_token"])
	})

	t.Run("weak password reports per-field errors", func(t *testing.T) {
		app, _ := newTestApp(t)
		status, body := postJSON(t, app, "/api/v1/auth/register", "", fiber.Map{
			"name":     "Ada Lovelace",
			"email":    "ada@example.com",
			"password": "abc123",
			"role":     "student",
			"age":      20,
		})
		require.Equal(t, fiber.StatusBadRequest, status)
		require.Equal(t, "VALIDATION_ERROR", body["error_code"])
		fields := body["fields"].(map[string]any)
		require.NotEmpty(t, fields["password"])
	})

	t.Run("duplicate email conflicts", func(t *testing.T) {
		app, _ := newTestApp(t)
		registerAda(t, app)
		status, body := postJSON(t, app, "/api/v1/auth/register", "", fiber.Map{
			"name":     "Ada Again",
			"email":    "ADA@example.com",
			"password": "An0ther!Pass",
			"role":     "student",
			"age":      21,
		})
		require.Equal(t, fiber.StatusConflict, status)
		require.Equal(t, "EMAIL_TAKEN", body["error_code"])
	})
}

func TestLoginEndpoint(t *testing.T) {
	t.Parallel()

	t.Run("login and fetch profile", func(t *testing.T) {
		app, _ := newTestApp(t)
		registerAda(t, app)

		status, body := postJSON(t, app, "/api/v1/auth/login", "", fiber.Map{
			"email":    "ada@example.com",
			"password": "Str0ng!Pass",
		})
		require.Equal(t, fiber.StatusOK, status)
		token := body["access_token"].(string)
		require.NotEmpty(t, token)

		status, body = getJSON(t, app, "/api/v1/auth/me", token)
		require.Equal(t, fiber.StatusOK, status)
		user := body["user"].(map[string]any)
		require.Equal(t, "Ada Lovelace", user["name"])
	})

	t.Run("profile requires a bearer token", func(t *testing.T) {
		app, _ := newTestApp(t)
		status, body := getJSON(t, app, "/api/v1/auth/me", "")
		require.Equal(t, fiber.StatusUnauthorized, status)
		require.Equal(t, "UNAUTHORIZED", body["error_code"])
	})

	t.Run("unknown email and wrong password share an envelope", func(t *testing.T) {
		app, _ := newTestApp(t)
		registerAda(t, app)

		s1, b1 := postJSON(t, app, "/api/v1/auth/login", "", fiber.Map{
			"email": "ghost@example.com", "password": "whatever",
		})
		s2, b2 := postJSON(t, app, "/api/v1/auth/login", "", fiber.Map{
			"email": "ada@example.com", "password": "wrongpass",
		})
		require.Equal(t, s1, s2)
		require.Equal(t, b1["error_code"], b2["error_code"])
		require.Equal(t, b1["message"], b2["message"])
	})

	t.Run("role mismatch names the actual role", func(t *testing.T) {
		app, _ := newTestApp(t)
		registerAda(t, app)

		status, body := postJSON(t, app, "/api/v1/auth/login", "", fiber.Map{
			"email": "ada@example.com", "password": "Str0ng!Pass", "role": "tutor",
		})
		require.Equal(t, fiber.StatusBadRequest, status)
		require.Equal(t, "ROLE_MISMATCH", body["error_code"])
		require.Equal(t, "student", body["actual_role"])
	})
}

func TestTwoFactorEndpoints(t *testing.T) {
	t.Parallel()

	app, mailer := newTestApp(t)
	body := registerAda(t, app)
	token := body["access_token"].(string)

	// turn 2FA on with the session from registration
	status, body := postJSON(t, app, "/api/v1/auth/enable-2fa", token, fiber.Map{})
	require.Equal(t, fiber.StatusOK, status)
	require.Equal(t, true, body["two_factor_enabled"])

	// login now yields a challenge, not a token
	status, body = postJSON(t, app, "/api/v1/auth/login", "", fiber.Map{
		"email": "ada@example.com", "password": "Str0ng!Pass",
	})
	require.Equal(t, fiber.StatusOK, status)
	require.Equal(t, true, body["requires_2fa"])
	require.Nil(t, body["access_token"])
	userID := body["user_id"].(string)

	code := mailer.last("ada@example.com")
	require.Len(t, code, 6)

	// wrong length fails fast
	status, body = postJSON(t, app, "/api/v1/auth/verify-2fa", "", fiber.Map{
		"user_id": userID, "otp": "12",
	})
	require.Equal(t, fiber.StatusBadRequest, status)
	require.Equal(t, "INVALID_FIELDS", body["error_code"])

	// the mailed code completes the login
	status, body = postJSON(t, app, "/api/v1/auth/verify-2fa", "", fiber.Map{
		"user_id": userID, "otp": code,
	})
	require.Equal(t, fiber.StatusOK, status, "verify failed: %v", body)
	require.NotEmpty(t, body["access_token"])

	// replaying the consumed code fails
	status, body = postJSON(t, app, "/api/v1/auth/verify-2fa", "", fiber.Map{
		"user_id": userID, "otp": code,
	})
	require.Equal(t, fiber.StatusBadRequest, status)
	require.Equal(t, "NO_PENDING_CHALLENGE", body["error_code"])
}

func TestPasswordStrengthEndpoint(t *testing.T) {
	t.Parallel()

	app, _ := newTestApp(t)
	status, body := postJSON(t, app, "/api/v1/auth/password-strength", "", fiber.Map{
		"password": "Str0ng!Passphrase",
	})
	require.Equal(t, fiber.StatusOK, status)
	require.Equal(t, true, body["valid"])
	require.Equal(t, float64(5), body["strength"])
	require.Equal(t, "Very Strong", body["label"])
}
