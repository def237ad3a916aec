package handlers

import (
	"github.com/99designs/gqlgen/graphql/playground"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
)

const welcomeText = "Welcome to the PhotoShare API"

// RootHandler serves the plain-text landing page
func RootHandler(c *fiber.Ctx) error {
	return c.SendString(welcomeText)
}

// PlaygroundHandler serves the interactive explorer pointed at endpoint
func PlaygroundHandler(endpoint string) fiber.Handler {
	return adaptor.HTTPHandler(playground.Handler("PhotoShare Playground", endpoint))
}

// HealthHandler reports liveness
func HealthHandler(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}
