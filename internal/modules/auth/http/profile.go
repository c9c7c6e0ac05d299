package http

import (
	"encoding/json"

	"github.com/gofiber/fiber/v2"

	"edulink/internal/modules/auth/service"
)

func GetProfileHandler(svc *service.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		uid, _ := c.Locals("user_id").(string)
		if uid == "" {
			return unauthorized(c)
		}
		u, err := svc.Profile(c.Context(), uid)
		if err != nil {
			return fail(c, err)
		}
		return c.JSON(fiber.Map{"user": userPayload(u)})
	}
}

type updateProfileReq struct {
	Name *string      `json:"name"`
	Age  *json.Number `json:"age"`
}

func UpdateProfileHandler(svc *service.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		uid, _ := c.Locals("user_id").(string)
		if uid == "" {
			return unauthorized(c)
		}
		var req updateProfileReq
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c)
		}
		var age *string
		if req.Age != nil {
			s := req.Age.String()
			age = &s
		}
		if err := svc.UpdateProfile(c.Context(), uid, req.Name, age); err != nil {
			return fail(c, err)
		}
		return c.JSON(fiber.Map{"message": "Profile updated"})
	}
}
