package consumer

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/catosacessorios/agendpet-api/controllers"
	"github.com/catosacessorios/agendpet-api/db"
	"github.com/catosacessorios/agendpet-api/models"
	"github.com/catosacessorios/agendpet-api/redis"
	"github.com/catosacessorios/agendpet-api/utils"
)

// clientForUser resolves the client profile linked to the logged-in user.
func clientForUser(userID uint) (models.Client, error) {
	var client models.Client
	err := db.DB.Where("user_id = ?", userID).First(&client).Error
	return client, err
}

type BookingInput struct {
	PetshopID uint   `json:"petshop_id"`
	ServiceID uint   `json:"service_id"`
	PetID     *uint  `json:"pet_id"`
	Date      string `json:"date"`       // "YYYY-MM-DD"
	StartTime string `json:"start_time"` // "HH:MM"
	Notes     string `json:"notes"`
}

// CreateAppointment books a slot for the logged-in customer. The client is
// always derived from the token, never from the body.
func CreateAppointment(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	client, err := clientForUser(userID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Client profile not found",
		})
	}

	var input BookingInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}
	if input.PetshopID == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Petshop ID is required",
		})
	}

	var petshop models.Petshop
	if err := db.DB.First(&petshop, input.PetshopID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Petshop not found",
		})
	}

	appointment, status, err := controllers.BookSlot(petshop.ID, client.ID, controllers.AppointmentInput{
		ClientID:  client.ID,
		ServiceID: input.ServiceID,
		PetID:     input.PetID,
		Date:      input.Date,
		StartTime: input.StartTime,
		Notes:     input.Notes,
	})
	if err != nil {
		return c.Status(status).JSON(utils.ErrorResponse{
			Message: "Failed to create appointment",
			Error:   err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(appointment)
}

// GetMyAppointments lists the customer's appointments across petshops
func GetMyAppointments(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	client, err := clientForUser(userID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Client profile not found",
		})
	}

	query := db.DB.Preload("Service").Preload("Petshop").Preload("Pet").
		Where("client_id = ?", client.ID)
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	today := time.Now().Format("2006-01-02")
	switch c.Query("when") {
	case "upcoming":
		query = query.Where("appointment_date >= ?", today)
	case "past":
		query = query.Where("appointment_date < ?", today)
	}

	var appointments []models.Appointment
	if err := query.Order("appointment_date desc, start_time desc").
		Find(&appointments).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch appointments",
		})
	}
	return c.JSON(appointments)
}

// cancelableOn reports whether an appointment on the given date may still be
// canceled: today or later, never in the past. Both are "YYYY-MM-DD" strings,
// so the comparison is lexicographic.
func cancelableOn(appointmentDate, today string) bool {
	return appointmentDate >= today
}

// CancelAppointment cancels one of the customer's own future appointments
func CancelAppointment(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	client, err := clientForUser(userID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Client profile not found",
		})
	}

	var appointment models.Appointment
	if err := db.DB.Where("id = ? AND client_id = ?", c.Params("id"), client.ID).
		First(&appointment).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Appointment not found",
		})
	}

	if !cancelableOn(appointment.AppointmentDate, time.Now().Format("2006-01-02")) {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": "Past appointments cannot be canceled",
		})
	}

	if err := appointment.UpdateStatus(db.DB, models.StatusCanceled); err != nil {
		return c.Status(fiber.StatusConflict).JSON(utils.ErrorResponse{
			Message: "Invalid status transition",
			Error:   err.Error(),
		})
	}

	// The freed slot should show up on the next availability read
	redis.InvalidateSlotCache(appointment.PetshopID, appointment.AppointmentDate)

	return c.JSON(appointment)
}
