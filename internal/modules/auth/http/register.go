package http

import (
	"encoding/json"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"edulink/internal/modules/auth/service"
)

type registerReq struct {
	Name            string      `json:"name" validate:"required"`
	Email           string      `json:"email" validate:"required"`
	Password        string      `json:"password" validate:"required"`
	ConfirmPassword string      `json:"confirm_password"`
	Role            string      `json:"role" validate:"required,oneof=student tutor admin"`
	Age             json.Number `json:"age" validate:"required"`
	DeviceName      string      `json:"device_name"`
}

// coarse shape check only; the validation engine owns the real rules
var reqCheck = validator.New()

// RegisterHandler creates the account and signs it in immediately.
// Field-level rules live in the validation engine, not here.
func RegisterHandler(svc *service.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req registerReq
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c)
		}
		if err := reqCheck.Struct(req); err != nil {
			return respond(c, fiber.StatusBadRequest, "INVALID_FIELDS",
				"Name, email, password, role and age are required")
		}

		sess, err := svc.Register(c.Context(), service.RegisterParams{
			Name:            req.Name,
			Email:           req.Email,
			Password:        req.Password,
			ConfirmPassword: req.ConfirmPassword,
			Role:            req.Role,
			Age:             req.Age.String(),
		}, deviceInfo(c, req.DeviceName))
		if err != nil {
			return fail(c, err)
		}

		return c.Status(fiber.StatusCreated).JSON(sessionPayload(sess))
	}
}
