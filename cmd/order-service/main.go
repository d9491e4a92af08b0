package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/spf13/viper"
)

// Single-route stub: static responses only, no persistence.
func main() {
	viper.SetDefault("PORT", "3000")
	viper.AutomaticEnv()

	app := fiber.New(fiber.Config{
		AppName: "Order Service",
	})
	app.Use(logger.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "order-service up"})
	})

	log.Fatal(app.Listen(":" + viper.GetString("PORT")))
}
