package main

import (
	"log"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"

	"github.com/catosacessorios/agendpet-api/db"
	"github.com/catosacessorios/agendpet-api/redis"
	"github.com/catosacessorios/agendpet-api/routes"
)

func main() {
	app := fiber.New()
	db.Init()
	if os.Getenv("RUN_MIGRATIONS") == "true" {
		db.Migrate()
	}
	redis.InitRedis()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
	}))

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("AgendPet API")
	})
	routes.SetupAuthRoutes(app)
	routes.SetupPetshopRoutes(app)
	routes.SetupServiceRoutes(app)
	routes.SetupWindowRoutes(app)
	routes.SetupClientRoutes(app)
	routes.SetupAppointmentRoutes(app)
	routes.SetupConsumerRoutes(app)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}
	log.Printf("Server starting on port %s", port)
	if err := app.Listen(":" + port); err != nil {
		log.Fatal("Server error: ", err)
	}
}
