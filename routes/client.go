package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/catosacessorios/agendpet-api/controllers"
	"github.com/catosacessorios/agendpet-api/middleware"
	"github.com/catosacessorios/agendpet-api/models"
)

// SetupClientRoutes configures the admin's client and pet registry routes
func SetupClientRoutes(app *fiber.App) {
	clients := app.Group("/clients", middleware.Protected(), middleware.RequireRole(models.RoleAdmin))
	clients.Get("/", controllers.GetClients)
	clients.Get("/:id", controllers.GetClient)
	clients.Post("/", controllers.CreateClient)
	clients.Patch("/:id", controllers.UpdateClient)
	clients.Delete("/:id", controllers.DeleteClient)

	// Pets are managed under their owner
	clients.Get("/:id/pets", controllers.GetClientPets)
	clients.Post("/:id/pets", controllers.CreateClientPet)
	clients.Patch("/:id/pets/:petId", controllers.UpdateClientPet)
	clients.Delete("/:id/pets/:petId", controllers.DeleteClientPet)
}
