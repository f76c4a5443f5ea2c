package controllers

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/catosacessorios/agendpet-api/availability"
	"github.com/catosacessorios/agendpet-api/db"
	"github.com/catosacessorios/agendpet-api/models"
	"github.com/catosacessorios/agendpet-api/redis"
	"github.com/catosacessorios/agendpet-api/utils"
)

// GetAppointments lists the petshop's appointments, optionally filtered by
// date and status
func GetAppointments(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	petshop, err := petshopForUser(userID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Petshop not found",
		})
	}

	query := db.DB.Preload("Service").Preload("Client").Preload("Pet").
		Where("petshop_id = ?", petshop.ID)

	if date := c.Query("date"); date != "" {
		if !utils.ValidateDate(date) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Invalid date format, use YYYY-MM-DD",
			})
		}
		query = query.Where("appointment_date = ?", date)
	}
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var appointments []models.Appointment
	if err := query.Order("appointment_date, start_time").Find(&appointments).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch appointments",
			Error:   err.Error(),
		})
	}
	return c.JSON(appointments)
}

// GetAppointment returns one of the petshop's appointments
func GetAppointment(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	petshop, err := petshopForUser(userID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Petshop not found",
		})
	}

	var appointment models.Appointment
	if err := db.DB.Preload("Service").Preload("Client").Preload("Pet").
		Where("id = ? AND petshop_id = ?", c.Params("id"), petshop.ID).
		First(&appointment).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Appointment not found",
			Error:   err.Error(),
		})
	}
	return c.JSON(appointment)
}

type AppointmentInput struct {
	ClientID  uint   `json:"client_id"`
	ServiceID uint   `json:"service_id"`
	PetID     *uint  `json:"pet_id"`
	Date      string `json:"date"`       // "YYYY-MM-DD"
	StartTime string `json:"start_time"` // "HH:MM"
	Notes     string `json:"notes"`
}

// CreateAppointment books a slot manually for one of the petshop's clients.
// The end time is always recomputed from the service duration, and the
// conflict check runs in the same transaction as the insert.
func CreateAppointment(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	petshop, err := petshopForUser(userID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Petshop not found",
		})
	}

	var input AppointmentInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}

	var client models.Client
	if err := db.DB.Where("id = ? AND petshop_id = ?", input.ClientID, petshop.ID).
		First(&client).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Client not found",
			Error:   err.Error(),
		})
	}

	appointment, status, err := BookSlot(petshop.ID, client.ID, input)
	if err != nil {
		return c.Status(status).JSON(utils.ErrorResponse{
			Message: "Failed to create appointment",
			Error:   err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(appointment)
}

// BookSlot is the shared booking write path: it validates the request against
// the petshop's windows, recomputes the end time from the service duration
// and inserts the appointment under a petshop-level lock so no two bookings
// can claim overlapping intervals. Returns the fiber status to use on error.
func BookSlot(petshopID, clientID uint, input AppointmentInput) (*models.Appointment, int, error) {
	if input.ServiceID == 0 || input.Date == "" || input.StartTime == "" {
		return nil, fiber.StatusBadRequest, fmt.Errorf("service_id, date and start_time are required")
	}

	date, err := time.Parse("2006-01-02", input.Date)
	if err != nil {
		return nil, fiber.StatusBadRequest, fmt.Errorf("invalid date format, use YYYY-MM-DD")
	}

	startMin, err := availability.ParseClock(input.StartTime)
	if err != nil {
		return nil, fiber.StatusBadRequest, err
	}

	var service models.Service
	if err := db.DB.Where("id = ? AND petshop_id = ? AND active = ?", input.ServiceID, petshopID, true).
		First(&service).Error; err != nil {
		return nil, fiber.StatusNotFound, fmt.Errorf("service not found")
	}

	if input.PetID != nil {
		var pet models.Pet
		if err := db.DB.Where("id = ? AND client_id = ?", *input.PetID, clientID).
			First(&pet).Error; err != nil {
			return nil, fiber.StatusNotFound, fmt.Errorf("pet not found")
		}
	}

	endMin := startMin + service.DurationMinutes
	if endMin > availability.MinutesPerDay {
		return nil, fiber.StatusBadRequest, fmt.Errorf("appointment would run past midnight")
	}

	appointment := models.Appointment{
		PetshopID:       petshopID,
		ClientID:        clientID,
		PetID:           input.PetID,
		ServiceID:       service.ID,
		AppointmentDate: date.Format("2006-01-02"),
		StartTime:       availability.FormatClock(startMin),
		EndTime:         availability.FormatClock(endMin),
		Status:          models.StatusPending,
		Notes:           input.Notes,
	}

	err = db.DB.Transaction(func(tx *gorm.DB) error {
		var locked models.Petshop
		if err := tx.Raw(`SELECT * FROM petshops WHERE id = ? FOR UPDATE`, petshopID).
			Scan(&locked).Error; err != nil {
			return err
		}

		withinWindow, err := utils.CheckWithinWindow(tx, petshopID, int(date.Weekday()), startMin, service.DurationMinutes)
		if err != nil {
			return err
		}
		if !withinWindow {
			return errOutsideWindow
		}

		free, err := utils.CheckSlotAvailable(tx, petshopID, appointment.AppointmentDate,
			appointment.StartTime, appointment.EndTime)
		if err != nil {
			return err
		}
		if !free {
			return errSlotTaken
		}

		return tx.Create(&appointment).Error
	})
	if err != nil {
		switch err {
		case errOutsideWindow:
			return nil, fiber.StatusConflict, fmt.Errorf("start time is outside the petshop's availability")
		case errSlotTaken:
			return nil, fiber.StatusConflict, fmt.Errorf("time slot no longer available")
		}
		return nil, fiber.StatusInternalServerError, err
	}

	// Drop the cached slot lists so the next read reflects this booking
	redis.InvalidateSlotCache(petshopID, appointment.AppointmentDate)

	return &appointment, fiber.StatusCreated, nil
}

var (
	errOutsideWindow = fmt.Errorf("outside availability window")
	errSlotTaken     = fmt.Errorf("slot taken")
)

type StatusInput struct {
	Status models.AppointmentStatus `json:"status"`
}

// UpdateAppointmentStatus applies a state-machine transition. The admin may
// perform any legal transition.
func UpdateAppointmentStatus(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	petshop, err := petshopForUser(userID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Petshop not found",
		})
	}

	var appointment models.Appointment
	if err := db.DB.Where("id = ? AND petshop_id = ?", c.Params("id"), petshop.ID).
		First(&appointment).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Appointment not found",
			Error:   err.Error(),
		})
	}

	var input StatusInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}

	if err := appointment.UpdateStatus(db.DB, input.Status); err != nil {
		return c.Status(fiber.StatusConflict).JSON(utils.ErrorResponse{
			Message: "Invalid status transition",
			Error:   err.Error(),
		})
	}

	// Canceling frees the slot for other customers
	if input.Status == models.StatusCanceled {
		redis.InvalidateSlotCache(petshop.ID, appointment.AppointmentDate)
	}

	return c.JSON(appointment)
}
