package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"edulink/internal/modules/auth/service"
)

type forgotReq struct {
	Email string `json:"email"`
}

// ForgotPasswordHandler answers 200 whether or not the address is
// registered; only the cooldown is surfaced.
func ForgotPasswordHandler(svc *service.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req forgotReq
		if err := c.BodyParser(&req); err != nil || strings.TrimSpace(req.Email) == "" {
			return badRequest(c)
		}
		if err := svc.ForgotPassword(c.Context(), req.Email); err != nil {
			return fail(c, err)
		}
		return c.JSON(fiber.Map{"message": "If that email is registered, a recovery code has been sent"})
	}
}

type resetReq struct {
	Email       string `json:"email"`
	Code        string `json:"code"`
	NewPassword string `json:"new_password"`
}

func ResetPasswordHandler(svc *service.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req resetReq
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c)
		}
		req.Code = strings.TrimSpace(req.Code)
		if req.Email == "" || len(req.Code) != 6 || req.NewPassword == "" {
			return respond(c, fiber.StatusBadRequest, "INVALID_FIELDS", "Email, code and new password are required")
		}
		if err := svc.ResetPassword(c.Context(), req.Email, req.Code, req.NewPassword); err != nil {
			return fail(c, err)
		}
		return c.JSON(fiber.Map{"message": "Password has been reset, sign in with your new password"})
	}
}
