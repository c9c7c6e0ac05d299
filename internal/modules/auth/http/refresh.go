package http

import (
	"github.com/gofiber/fiber/v2"

	"edulink/internal/modules/auth/service"
)

type refreshReq struct {
	RefreshToken string `json:"refresh_token"`
	DeviceName   string `json:"device_name"`
}

func RefreshHandler(svc *service.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req refreshReq
		if err := c.BodyParser(&req); err != nil || req.RefreshToken == "" {
			return badRequest(c)
		}
		sess, err := svc.Refresh(c.Context(), req.RefreshToken, deviceInfo(c, req.DeviceName))
		if err != nil {
			return fail(c, err)
		}
		return c.JSON(sessionPayload(sess))
	}
}

func LogoutHandler(svc *service.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		uid, _ := c.Locals("user_id").(string)
		sid, _ := c.Locals("session_id").(string)
		if uid == "" || sid == "" {
			return unauthorized(c)
		}
		if err := svc.Logout(c.Context(), sid, uid); err != nil {
			return fail(c, err)
		}
		return c.JSON(fiber.Map{"message": "Signed out"})
	}
}
