package http

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

// JWTAuth validates the bearer token and stashes its claims in Locals.
// A 401 here is the signal clients use to drop their cached session.
func JWTAuth(secret []byte) fiber.Handler {
	return func(c *fiber.Ctx) error {
		h := c.Get("Authorization")
		if !strings.HasPrefix(h, "Bearer ") {
			return unauthorized(c)
		}
		tokenStr := strings.TrimPrefix(h, "Bearer ")
		tok, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
			}
			return secret, nil
		})
		if err != nil || !tok.Valid {
			return unauthorized(c)
		}
		claims, ok := tok.Claims.(jwt.MapClaims)
		if !ok {
			return unauthorized(c)
		}
		if sub, _ := claims["sub"].(string); sub != "" {
			c.Locals("user_id", sub)
		}
		if role, _ := claims["role"].(string); role != "" {
			c.Locals("role", role)
		}
		if sid, _ := claims["sid"].(string); sid != "" {
			c.Locals("session_id", sid)
		}
		return c.Next()
	}
}

func unauthorized(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
		"error_code": "UNAUTHORIZED",
		"message":    "Authentication required",
	})
}
