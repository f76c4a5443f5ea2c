package utils

import (
	"github.com/catosacessorios/agendpet-api/availability"
	"github.com/catosacessorios/agendpet-api/models"
	"gorm.io/gorm"
)

// CheckSlotAvailable checks whether the interval [startTime, endTime) on the
// given date is free of non-canceled appointments for the petshop. Conflicting
// rows are locked FOR UPDATE, so when called inside a transaction the
// subsequent insert cannot race a concurrent booking for the same slot.
//
// Times are zero-padded "HH:MM" strings; the comparisons below rely on that
// fixed width.
func CheckSlotAvailable(tx *gorm.DB, petshopID uint, date, startTime, endTime string) (bool, error) {
	var existing models.Appointment
	err := tx.Raw(`
		SELECT *
		FROM appointments
		WHERE petshop_id = ?
		  AND appointment_date = ?
		  AND status != ?
		  AND deleted_at IS NULL
		  AND start_time < ? AND end_time > ?
		LIMIT 1
		FOR UPDATE
	`, petshopID, date, models.StatusCanceled, endTime, startTime).
		Scan(&existing).Error
	if err != nil {
		return false, err
	}

	// If there is any conflicting appointment, the slot is taken
	if existing.ID != 0 {
		return false, nil
	}

	return true, nil
}

// CheckWithinWindow checks that a booking starting at startMin with the given
// duration falls inside one of the petshop's windows for that weekday and is
// aligned to the slot grid the customer was shown (window start + whole
// multiples of the duration).
func CheckWithinWindow(tx *gorm.DB, petshopID uint, dayOfWeek, startMin, durationMin int) (bool, error) {
	var windows []models.AvailableWindow
	if err := tx.Where("petshop_id = ? AND day_of_week = ?", petshopID, dayOfWeek).
		Find(&windows).Error; err != nil {
		return false, err
	}

	for _, w := range windows {
		ws, err := availability.ParseClock(w.StartTime)
		if err != nil {
			continue
		}
		we, err := availability.ParseClock(w.EndTime)
		if err != nil {
			continue
		}
		if startMin >= ws && startMin+durationMin <= we && (startMin-ws)%durationMin == 0 {
			return true, nil
		}
	}
	return false, nil
}
