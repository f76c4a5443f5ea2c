package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/catosacessorios/agendpet-api/availability"
	"github.com/catosacessorios/agendpet-api/db"
	"github.com/catosacessorios/agendpet-api/models"
	"github.com/catosacessorios/agendpet-api/utils"
)

// GetWindows lists the availability windows of the admin's petshop
func GetWindows(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	petshop, err := petshopForUser(userID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Petshop not found",
		})
	}

	var windows []models.AvailableWindow
	if err := db.DB.Where("petshop_id = ?", petshop.ID).
		Order("day_of_week, start_time").Find(&windows).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch windows",
		})
	}
	return c.JSON(windows)
}

type WindowInput struct {
	DayOfWeek *int   `json:"day_of_week"` // 0 = Sunday .. 6 = Saturday
	StartTime string `json:"start_time"`  // "HH:MM"
	EndTime   string `json:"end_time"`    // "HH:MM"
}

// CreateWindow declares a new recurring availability window, rejecting any
// window that overlaps an existing one for the same day. The overlap check
// and the insert run in one transaction holding the petshop row FOR UPDATE,
// so two concurrent defines for the same shop cannot both pass the check.
func CreateWindow(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	petshop, err := petshopForUser(userID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Petshop not found",
		})
	}

	var input WindowInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}

	if input.DayOfWeek == nil || input.StartTime == "" || input.EndTime == "" {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "day_of_week, start_time and end_time are required",
		})
	}

	start, err := availability.ParseClock(input.StartTime)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Invalid start_time",
			Error:   err.Error(),
		})
	}
	end, err := availability.ParseClock(input.EndTime)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Invalid end_time",
			Error:   err.Error(),
		})
	}

	candidate := availability.Window{DayOfWeek: *input.DayOfWeek, Start: start, End: end}
	if err := availability.ValidateWindow(candidate); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Invalid window",
			Error:   err.Error(),
		})
	}

	window := models.AvailableWindow{
		PetshopID: petshop.ID,
		DayOfWeek: candidate.DayOfWeek,
		StartTime: availability.FormatClock(candidate.Start),
		EndTime:   availability.FormatClock(candidate.End),
	}

	err = db.DB.Transaction(func(tx *gorm.DB) error {
		// Serialize window creation per petshop: a plain read-then-insert
		// would let two concurrent defines both pass the overlap check.
		var locked models.Petshop
		if err := tx.Raw(`SELECT * FROM petshops WHERE id = ? FOR UPDATE`, petshop.ID).
			Scan(&locked).Error; err != nil {
			return err
		}

		var rows []models.AvailableWindow
		if err := tx.Where("petshop_id = ? AND day_of_week = ?", petshop.ID, candidate.DayOfWeek).
			Find(&rows).Error; err != nil {
			return err
		}

		existing := make([]availability.Window, 0, len(rows))
		for _, r := range rows {
			s, err := availability.ParseClock(r.StartTime)
			if err != nil {
				continue
			}
			e, err := availability.ParseClock(r.EndTime)
			if err != nil {
				continue
			}
			existing = append(existing, availability.Window{DayOfWeek: r.DayOfWeek, Start: s, End: e})
		}

		if err := availability.CheckWindowConflict(candidate, existing); err != nil {
			return err
		}

		return tx.Create(&window).Error
	})
	if err != nil {
		if errors.Is(err, availability.ErrWindowConflict) {
			return c.Status(fiber.StatusConflict).JSON(utils.ErrorResponse{
				Message: "Window overlaps an existing window",
				Error:   err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to create window",
			Error:   err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(window)
}

// DeleteWindow removes a window. There is no update: the admin deletes and
// recreates to change a window.
func DeleteWindow(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	petshop, err := petshopForUser(userID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Petshop not found",
		})
	}

	var window models.AvailableWindow
	if err := db.DB.Where("id = ? AND petshop_id = ?", c.Params("id"), petshop.ID).
		First(&window).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Window not found",
		})
	}

	if err := db.DB.Delete(&window).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to delete window",
		})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
