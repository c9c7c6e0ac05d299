package http

import "github.com/gofiber/fiber/v2"

// Module is implemented by each feature module; Register mounts its
// routes on the versioned API group.
type Module interface {
	Register(r fiber.Router)
}
