package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/catosacessorios/agendpet-api/controllers"
	"github.com/catosacessorios/agendpet-api/middleware"
	"github.com/catosacessorios/agendpet-api/models"
)

// SetupServiceRoutes configures all service catalog routes
func SetupServiceRoutes(app *fiber.App) {
	services := app.Group("/services", middleware.Protected(), middleware.RequireRole(models.RoleAdmin))
	services.Get("/", controllers.GetAllServices)
	services.Get("/:id", controllers.GetService)
	services.Post("/", controllers.CreateService)
	services.Patch("/:id", controllers.UpdateService)
	services.Delete("/:id", controllers.DeleteService)
}
