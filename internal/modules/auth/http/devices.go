package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"edulink/internal/modules/auth/service"
)

func ListDevicesHandler(svc *service.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		uid, _ := c.Locals("user_id").(string)
		if uid == "" {
			return unauthorized(c)
		}
		page := c.QueryInt("page", 1)
		limit := c.QueryInt("limit", 20)

		sessions, total, err := svc.Devices(c.Context(), uid, page, limit)
		if err != nil {
			return fail(c, err)
		}

		sid, _ := c.Locals("session_id").(string)
		items := make([]fiber.Map, 0, len(sessions))
		for _, s := range sessions {
			items = append(items, fiber.Map{
				"id":          s.ID,
				"device_name": s.DeviceName,
				"ip_address":  s.IPAddress,
				"user_agent":  s.UserAgent,
				"last_active": s.LastActive.UTC().Format(time.RFC3339),
				"created_at":  s.CreatedAt.UTC().Format(time.RFC3339),
				"revoked":     s.RevokedAt != nil,
				"current":     s.ID == sid,
			})
		}
		return c.JSON(fiber.Map{"devices": items, "total": total})
	}
}

func DeleteDeviceHandler(svc *service.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		uid, _ := c.Locals("user_id").(string)
		if uid == "" {
			return unauthorized(c)
		}
		deviceID := c.Params("device_id")
		if deviceID == "" {
			return badRequest(c)
		}
		if err := svc.RevokeDevice(c.Context(), deviceID, uid); err != nil {
			return fail(c, err)
		}
		return c.JSON(fiber.Map{"message": "Device signed out"})
	}
}

func DeleteOtherDevicesHandler(svc *service.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		uid, _ := c.Locals("user_id").(string)
		sid, _ := c.Locals("session_id").(string)
		if uid == "" || sid == "" {
			return unauthorized(c)
		}
		n, err := svc.RevokeOtherDevices(c.Context(), sid, uid)
		if err != nil {
			return fail(c, err)
		}
		return c.JSON(fiber.Map{"message": "Other devices signed out", "revoked": n})
	}
}
