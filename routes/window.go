package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/catosacessorios/agendpet-api/controllers"
	"github.com/catosacessorios/agendpet-api/middleware"
	"github.com/catosacessorios/agendpet-api/models"
)

// SetupWindowRoutes configures the weekly availability window routes
func SetupWindowRoutes(app *fiber.App) {
	windows := app.Group("/windows", middleware.Protected(), middleware.RequireRole(models.RoleAdmin))
	windows.Get("/", controllers.GetWindows)
	windows.Post("/", controllers.CreateWindow)
	windows.Delete("/:id", controllers.DeleteWindow)
}
