package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/catosacessorios/agendpet-api/controllers/consumer"
	"github.com/catosacessorios/agendpet-api/middleware"
	"github.com/catosacessorios/agendpet-api/models"
)

// SetupConsumerRoutes configures the customer-facing routes. Browsing the
// catalog and availability is public; booking and pet management require a
// logged-in customer.
func SetupConsumerRoutes(app *fiber.App) {
	consumerGroup := app.Group("/consumer")

	// Public catalog and availability
	consumerGroup.Get("/petshops", consumer.GetAllPetshops)
	consumerGroup.Get("/petshops/:id/services", consumer.GetPetshopServices)
	consumerGroup.Get("/petshops/:id/dates", consumer.GetBookableDates)
	consumerGroup.Get("/petshops/:id/slots", consumer.GetAvailableSlots)

	protected := consumerGroup.Group("/", middleware.Protected(), middleware.RequireRole(models.RoleCliente))
	protected.Post("/appointments", consumer.CreateAppointment)
	protected.Get("/appointments", consumer.GetMyAppointments)
	protected.Patch("/appointments/:id/cancel", consumer.CancelAppointment)

	protected.Get("/pets", consumer.GetMyPets)
	protected.Post("/pets", consumer.CreatePet)
	protected.Patch("/pets/:id", consumer.UpdatePet)
	protected.Delete("/pets/:id", consumer.DeletePet)
	protected.Post("/pets/:id/photo", consumer.UploadPetPhoto)
}
