package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/catosacessorios/agendpet-api/controllers"
	"github.com/catosacessorios/agendpet-api/middleware"
	"github.com/catosacessorios/agendpet-api/models"
)

// SetupPetshopRoutes configures the admin's petshop profile and dashboard routes
func SetupPetshopRoutes(app *fiber.App) {
	petshop := app.Group("/petshop", middleware.Protected(), middleware.RequireRole(models.RoleAdmin))
	petshop.Get("/", controllers.GetPetshop)
	petshop.Patch("/", controllers.UpdatePetshop)

	petshop.Get("/dashboard", controllers.GetDashboardOverview)
	petshop.Get("/dashboard/upcoming", controllers.GetUpcomingAppointments)
}
