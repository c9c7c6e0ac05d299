package http

import (
	"github.com/gofiber/fiber/v2"

	"edulink/internal/modules/auth/service"
)

func Enable2FAHandler(svc *service.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		uid, _ := c.Locals("user_id").(string)
		if uid == "" {
			return unauthorized(c)
		}
		if err := svc.EnableTwoFactor(c.Context(), uid); err != nil {
			return fail(c, err)
		}
		return c.JSON(fiber.Map{"two_factor_enabled": true})
	}
}

type disable2FAReq struct {
	Password string `json:"password"`
}

func Disable2FAHandler(svc *service.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		uid, _ := c.Locals("user_id").(string)
		if uid == "" {
			return unauthorized(c)
		}
		var req disable2FAReq
		if err := c.BodyParser(&req); err != nil || req.Password == "" {
			return respond(c, fiber.StatusBadRequest, "INVALID_FIELDS", "Password is required to disable 2FA")
		}
		if err := svc.DisableTwoFactor(c.Context(), uid, req.Password); err != nil {
			return fail(c, err)
		}
		return c.JSON(fiber.Map{"two_factor_enabled": false})
	}
}
