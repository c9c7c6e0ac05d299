package http

import (
	"github.com/gofiber/fiber/v2"

	"edulink/internal/modules/auth/domain"
	"edulink/internal/modules/auth/service"
)

type loginReq struct {
	Email      string `json:"email"`
	Password   string `json:"password"`
	Role       string `json:"role"` // optional UX hint, never an authorization input
	DeviceName string `json:"device_name"`
}

func LoginHandler(svc *service.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req loginReq
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c)
		}
		if req.Email == "" || req.Password == "" {
			return respond(c, fiber.StatusBadRequest, "INVALID_FIELDS", "Email and password are required")
		}

		res, err := svc.Login(c.Context(), req.Email, req.Password,
			domain.Role(req.Role), deviceInfo(c, req.DeviceName))
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
