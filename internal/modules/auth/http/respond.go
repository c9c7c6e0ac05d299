package http

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"edulink/internal/modules/auth/domain"
	"edulink/internal/modules/auth/service"
	"edulink/internal/platform/security"
)

// fail maps service errors to the {error_code, message} envelope used
// across the API. Anything unrecognized is a 500 with no detail leaked.
func fail(c *fiber.Ctx, err error) error {
	var ve *service.ValidationError
	if errors.As(err, &ve) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error_code": "VALIDATION_ERROR",
			"message":    "One or more fields are invalid",
			"fields":     ve.Fields,
		})
	}

	var rm *service.RoleMismatchError
	if errors.As(err, &rm) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error_code":  "ROLE_MISMATCH",
			"message":     rm.Error(),
			"actual_role": rm.Actual,
		})
	}

	switch {
	case errors.Is(err, service.ErrInvalidCredentials):
		return respond(c, fiber.StatusBadRequest, "INVALID_CREDENTIALS", "Invalid email or password")
	case errors.Is(err, service.ErrAccountSuspended):
		return respond(c, fiber.StatusForbidden, "ACCOUNT_SUSPENDED", "This account has been suspended")
	case errors.Is(err, service.ErrNoPendingChallenge):
		return respond(c, fiber.StatusBadRequest, "NO_PENDING_CHALLENGE", "No verification code is pending, sign in again")
	case errors.Is(err, service.ErrCodeExpired):
		return respond(c, fiber.StatusBadRequest, "CODE_EXPIRED", "Verification code has expired, sign in again")
	case errors.Is(err, service.ErrInvalidCode):
		return respond(c, fiber.StatusBadRequest, "INVALID_CODE", "Incorrect verification code")
	case errors.Is(err, service.ErrEmailTaken):
		return respond(c, fiber.StatusConflict, "EMAIL_TAKEN", "An account with this email already exists")
	case errors.Is(err, service.ErrResendCooldown):
		return respond(c, fiber.StatusTooManyRequests, "RATE_LIMIT_EXCEEDED", "A code was sent recently, try again shortly")
	case errors.Is(err, service.ErrInvalidRefresh):
		return respond(c, fiber.StatusUnauthorized, "INVALID_REFRESH", "Invalid or expired refresh token")
	case errors.Is(err, service.ErrNotFound):
		return respond(c, fiber.StatusNotFound, "NOT_FOUND", "Not found")
	case errors.Is(err, security.ErrOAuthToken):
		return respond(c, fiber.StatusBadRequest, "INVALID_TOKEN", "Invalid provider token")
	}
	return respond(c, fiber.StatusInternalServerError, "SERVER_ERROR", "Something went wrong")
}

func respond(c *fiber.Ctx, status int, code, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"error_code": code,
		"message":    message,
	})
}

func badRequest(c *fiber.Ctx) error {
	return respond(c, fiber.StatusBadRequest, "INVALID_FIELDS", "Malformed request body")
}

func unauthorized(c *fiber.Ctx) error {
	return respond(c, fiber.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
}

func userPayload(u *domain.User) fiber.Map {
	return fiber.Map{
		"id":                 u.ID,
		"name":               u.Name,
		"email":              u.Email,
		"role":               u.Role,
		"age":                u.Age,
		"status":             u.Status,
		"two_factor_enabled": u.TwoFactorEnabled,
		"auth_provider":      u.Provider,
		"created_at":         u.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func sessionPayload(s *service.Session) fiber.Map {
	return fiber.Map{
		"user":          userPayload(s.User),
		"access_token":  s.AccessToken,
		"refresh_token": s.RefreshToken,
		"expires_at":    s.ExpiresAt.UTC().Format(time.RFC3339),
	}
}

func deviceInfo(c *fiber.Ctx, deviceName string) service.DeviceInfo {
	return service.DeviceInfo{
		DeviceName: deviceName,
		IPAddress:  c.IP(),
		UserAgent:  c.Get("User-Agent"),
	}
}
