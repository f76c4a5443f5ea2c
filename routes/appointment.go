package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/catosacessorios/agendpet-api/controllers"
	"github.com/catosacessorios/agendpet-api/middleware"
	"github.com/catosacessorios/agendpet-api/models"
)

// SetupAppointmentRoutes configures the admin's appointment book routes
func SetupAppointmentRoutes(app *fiber.App) {
	appointments := app.Group("/appointments", middleware.Protected(), middleware.RequireRole(models.RoleAdmin))
	appointments.Get("/", controllers.GetAppointments)
	appointments.Get("/:id", controllers.GetAppointment)
	appointments.Post("/", controllers.CreateAppointment)
	appointments.Patch("/:id/status", controllers.UpdateAppointmentStatus)
}
