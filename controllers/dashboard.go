package controllers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/catosacessorios/agendpet-api/db"
	"github.com/catosacessorios/agendpet-api/models"
)

// GetDashboardOverview returns booking statistics for the admin's petshop
func GetDashboardOverview(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	petshop, err := petshopForUser(userID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Petshop not found",
		})
	}

	var statistics struct {
		TotalAppointments int64     `json:"total_appointments"`
		PendingCount      int64     `json:"pending_count"`
		ConfirmedCount    int64     `json:"confirmed_count"`
		CompletedCount    int64     `json:"completed_count"`
		CanceledCount     int64     `json:"canceled_count"`
		TotalServices     int64     `json:"total_services"`
		TotalClients      int64     `json:"total_clients"`
		TotalRevenue      float64   `json:"total_revenue"`
		LastUpdated       time.Time `json:"last_updated"`
	}

	countByStatus := func(status models.AppointmentStatus, dest *int64) {
		db.DB.Model(&models.Appointment{}).
			Where("petshop_id = ? AND status = ?", petshop.ID, status).
			Count(dest)
	}

	db.DB.Model(&models.Appointment{}).Where("petshop_id = ?", petshop.ID).
		Count(&statistics.TotalAppointments)
	countByStatus(models.StatusPending, &statistics.PendingCount)
	countByStatus(models.StatusConfirmed, &statistics.ConfirmedCount)
	countByStatus(models.StatusCompleted, &statistics.CompletedCount)
	countByStatus(models.StatusCanceled, &statistics.CanceledCount)

	db.DB.Model(&models.Service{}).Where("petshop_id = ?", petshop.ID).Count(&statistics.TotalServices)
	db.DB.Model(&models.Client{}).Where("petshop_id = ?", petshop.ID).Count(&statistics.TotalClients)

	// Revenue from completed appointments
	type RevenueResult struct {
		TotalRevenue float64
	}
	var revenueResult RevenueResult
	db.DB.Table("appointments").
		Joins("JOIN services ON appointments.service_id = services.id").
		Where("appointments.petshop_id = ? AND appointments.status = ?", petshop.ID, models.StatusCompleted).
		Select("SUM(services.price) as total_revenue").
		Scan(&revenueResult)
	statistics.TotalRevenue = revenueResult.TotalRevenue

	statistics.LastUpdated = time.Now()

	return c.JSON(statistics)
}

// GetUpcomingAppointments returns the next appointments for the petshop
func GetUpcomingAppointments(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	petshop, err := petshopForUser(userID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Petshop not found",
		})
	}

	limit := 5
	if c.Query("limit") != "" {
		if parsed := c.QueryInt("limit"); parsed > 0 {
			limit = parsed
		}
	}

	today := time.Now().Format("2006-01-02")
	var appointments []models.Appointment
	if err := db.DB.Preload("Service").Preload("Client").Preload("Pet").
		Where("petshop_id = ? AND appointment_date >= ? AND status IN ?",
			petshop.ID, today, []models.AppointmentStatus{models.StatusPending, models.StatusConfirmed}).
		Order("appointment_date, start_time").
		Limit(limit).
		Find(&appointments).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch appointments",
		})
	}
	return c.JSON(appointments)
}
