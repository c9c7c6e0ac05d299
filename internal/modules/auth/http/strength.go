package http

import (
	"github.com/gofiber/fiber/v2"

	"edulink/internal/validate"
)

type strengthReq struct {
	Password string `json:"password"`
	Name     string `json:"name"`
	Email    string `json:"email"`
}

// PasswordStrengthHandler backs the signup form's live strength meter.
// Purely advisory: registration re-runs the same engine server-side.
func PasswordStrengthHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req strengthReq
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c)
		}

		pv := validate.Password(req.Password, validate.PasswordContext{
			Name:  req.Name,
			Email: req.Email,
		})
		label := validate.StrengthLabel(pv.Strength)

		return c.JSON(fiber.Map{
			"valid":       pv.Valid,
			"errors":      pv.Errors,
			"warnings":    pv.Warnings,
			"suggestions": pv.Suggestions,
			"strength":    pv.Strength,
			"label":       label.Text,
			"color":       label.Color,
			"background":  label.Background,
		})
	}
}
