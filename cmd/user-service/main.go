package main

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/spf13/viper"
)

// Single-route stub: static responses only, no persistence.
func main() {
	viper.SetDefault("PORT", "3001")
	viper.AutomaticEnv()

	app := fiber.New(fiber.Config{
		AppName: "User Service",
	})
	app.Use(logger.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "healthy", "service": "user-service"})
	})

	app.Get("/api/users", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"users": []fiber.Map{
				{"id": 1, "name": "John Doe", "email": "john@example.com"},
				{"id": 2, "name": "Jane Smith", "email": "jane@example.com"},
			},
		})
	})

	app.Post("/api/users", func(c *fiber.Ctx) error {
		var body struct {
			Name  string `json:"name"`
			Email string `json:"email"`
		}
		if err := c.BodyParser(&body); err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
		}
		return c.Status(201).JSON(fiber.Map{
			"id":      3,
			"name":    body.Name,
			"email":   body.Email,
			"created": time.Now(),
		})
	})

	log.Fatal(app.Listen(":" + viper.GetString("PORT")))
}
