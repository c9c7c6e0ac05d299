package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"edulink/internal/modules/auth/service"
)

type verify2FAReq struct {
	UserID     string `json:"user_id"`
	OTP        string `json:"otp"`
	DeviceName string `json:"device_name"`
}

func Verify2FAHandler(svc *service.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req verify2FAReq
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c)
		}
		req.OTP = strings.TrimSpace(req.OTP)
		if req.UserID == "" || len(req.OTP) != 6 {
			return respond(c, fiber.StatusBadRequest, "INVALID_FIELDS", "A user id and 6-digit code are required")
		}

		res, err := svc.VerifyOTP(c.Context(), req.UserID, req.OTP, deviceInfo(c, req.DeviceName))
		if err != nil {
			return fail(c, err)
		}
		return c.JSON(sessionPayload(res.Session))
	}
}

type resend2FAReq struct {
	UserID string `json:"user_id"`
}

func Resend2FAHandler(svc *service.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req resend2FAReq
		if err := c.BodyParser(&req); err != nil || req.UserID == "" {
			return badRequest(c)
		}
		if err := svc.ResendOTP(c.Context(), req.UserID); err != nil {
			return fail(c, err)
		}
		return c.JSON(fiber.Map{"message": "A new verification code has been sent"})
	}
}
