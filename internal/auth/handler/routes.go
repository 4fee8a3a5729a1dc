package handler

import (
	"github.com/gofiber/fiber/v2"
)

func RegisterRoutes(app *fiber.App, h *AuthHandler) {
	app.Post("/api/v1/signup", h.Signup)
	app.Post("/api/v1/signin", h.Signin)
	app.Post("/api/v1/refresh", h.Refresh)
	app.Post("/api/v1/signout", h.Signout)
	app.Post("/api/v1/validate", h.Validate)
}
