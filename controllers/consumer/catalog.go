package consumer

import (
	"encoding/json"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/catosacessorios/agendpet-api/availability"
	"github.com/catosacessorios/agendpet-api/db"
	"github.com/catosacessorios/agendpet-api/models"
	"github.com/catosacessorios/agendpet-api/redis"
)

// clampPagination sanitizes caller-supplied paging values. Zero or negative
// input falls back to the defaults; the limit feeds a division later, so it
// must never be zero.
func clampPagination(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	return page, limit
}

// GetAllPetshops returns the petshops customers can book with
func GetAllPetshops(c *fiber.Ctx) error {
	page, _ := strconv.Atoi(c.Query("page", "1"))
	limit, _ := strconv.Atoi(c.Query("limit", "10"))
	page, limit = clampPagination(page, limit)
	offset := (page - 1) * limit

	var petshops []models.Petshop
	if err := db.DB.Limit(limit).Offset(offset).Order("name").Find(&petshops).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch petshops",
		})
	}

	var count int64
	db.DB.Model(&models.Petshop{}).Count(&count)

	return c.JSON(fiber.Map{
		"petshops": petshops,
		"total":    count,
		"page":     page,
		"limit":    limit,
		"pages":    (int(count) + limit - 1) / limit,
	})
}

// GetPetshopServices returns the active services of a petshop
func GetPetshopServices(c *fiber.Ctx) error {
	var petshop models.Petshop
	if err := db.DB.First(&petshop, c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Petshop not found",
		})
	}

	var services []models.Service
	if err := db.DB.Where("petshop_id = ? AND active = ?", petshop.ID, true).
		Order("name").Find(&services).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch services",
		})
	}
	return c.JSON(services)
}

// GetBookableDates returns the dates within the booking horizon that fall on
// a weekday the petshop has at least one availability window for.
func GetBookableDates(c *fiber.Ctx) error {
	var petshop models.Petshop
	if err := db.DB.First(&petshop, c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Petshop not found",
		})
	}

	var rows []models.AvailableWindow
	if err := db.DB.Where("petshop_id = ?", petshop.ID).Find(&rows).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch windows",
		})
	}

	windows := make([]availability.Window, 0, len(rows))
	for _, r := range rows {
		windows = append(windows, availability.Window{DayOfWeek: r.DayOfWeek})
	}

	dates := availability.BookableDates(windows, time.Now(), availability.BookingHorizonDays)
	formatted := make([]string, 0, len(dates))
	for _, d := range dates {
		formatted = append(formatted, d.Format("2006-01-02"))
	}

	return c.JSON(fiber.Map{
		"dates":      formatted,
		"petshop_id": petshop.ID,
	})
}

// GetAvailableSlots returns the bookable start times for a service on a given
// date: the petshop's windows for that weekday minus everything already
// booked. Results are cached briefly in redis; every booking write for the
// same (petshop, service, date) drops the cache entry.
func GetAvailableSlots(c *fiber.Ctx) error {
	dateStr := c.Query("date")         // Expected format: "YYYY-MM-DD"
	serviceID := c.Query("service_id") // Required

	if serviceID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Service ID is required",
		})
	}
	date, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid date format, use YYYY-MM-DD",
		})
	}

	var petshop models.Petshop
	if err := db.DB.First(&petshop, c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Petshop not found",
		})
	}

	var service models.Service
	if err := db.DB.Where("id = ? AND petshop_id = ? AND active = ?", serviceID, petshop.ID, true).
		First(&service).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Service not found or does not belong to petshop",
		})
	}

	cacheKey := redis.SlotCacheKey(petshop.ID, service.ID, dateStr)
	if cached, err := redis.Client.Get(redis.Ctx, cacheKey).Result(); err == nil {
		var slots []string
		if json.Unmarshal([]byte(cached), &slots) == nil {
			return c.JSON(fiber.Map{
				"slots":      slots,
				"petshop_id": petshop.ID,
				"date":       dateStr,
				"service_id": service.ID,
			})
		}
	}

	dayOfWeek := int(date.Weekday())
	var rows []models.AvailableWindow
	if err := db.DB.Where("petshop_id = ? AND day_of_week = ?", petshop.ID, dayOfWeek).
		Order("start_time").Find(&rows).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch windows",
		})
	}

	windows := make([]availability.Window, 0, len(rows))
	for _, r := range rows {
		w, err := windowFromRow(r)
		if err != nil {
			continue
		}
		windows = append(windows, w)
	}

	// Canceled appointments free their slot
	var appointments []models.Appointment
	if err := db.DB.Where("petshop_id = ? AND appointment_date = ? AND status != ?",
		petshop.ID, dateStr, models.StatusCanceled).Find(&appointments).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch appointments",
		})
	}

	busy := make([]availability.Busy, 0, len(appointments))
	for _, a := range appointments {
		start, err := availability.ParseClock(a.StartTime)
		if err != nil {
			continue
		}
		end, err := availability.ParseClock(a.EndTime)
		if err != nil {
			continue
		}
		busy = append(busy, availability.Busy{Start: start, End: end})
	}

	slots := availability.BookableSlots(windows, busy, service.DurationMinutes)
	if slots == nil {
		slots = []string{}
	}

	if encoded, err := json.Marshal(slots); err == nil {
		redis.Client.Set(redis.Ctx, cacheKey, encoded, redis.SlotCacheTTL)
	}

	return c.JSON(fiber.Map{
		"slots":      slots,
		"petshop_id": petshop.ID,
		"date":       dateStr,
		"service_id": service.ID,
	})
}

func windowFromRow(r models.AvailableWindow) (availability.Window, error) {
	start, err := availability.ParseClock(r.StartTime)
	if err != nil {
		return availability.Window{}, err
	}
	end, err := availability.ParseClock(r.EndTime)
	if err != nil {
		return availability.Window{}, err
	}
	return availability.Window{DayOfWeek: r.DayOfWeek, Start: start, End: end}, nil
}
