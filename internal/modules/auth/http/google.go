package http

import (
	"github.com/gofiber/fiber/v2"

	"edulink/internal/modules/auth/service"
)

type googleReq struct {
	AccessToken string `json:"access_token"`
	DeviceName  string `json:"device_name"`
}

func GoogleSignInHandler(svc *service.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req googleReq
		if err := c.BodyParser(&req); err != nil || req.AccessToken == "" {
			return badRequest(c)
		}
		res, err := svc.LoginWithGoogle(c.Context(), req.AccessToken, deviceInfo(c, req.DeviceName))
		if err != nil {
			return fail(c, err)
		}
		if res.Requires2FA {
			return c.JSON(fiber.Map{
				"requires_2fa": true,
				"user_id":      res.UserID,
				"message":      "A verification code has been sent to your email",
			})
		}
		return c.JSON(sessionPayload(res.Session))
	}
}
