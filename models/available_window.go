package models

import (
	"gorm.io/gorm"
)

// AvailableWindow is a recurring weekly availability rule: the petshop takes
// bookings on DayOfWeek between StartTime and EndTime. Windows for the same
// petshop and day must not overlap (half-open [start, end) semantics).
//
// Windows are never updated in place; the admin deletes and recreates them.
type AvailableWindow struct {
	gorm.Model
	PetshopID uint    `json:"petshop_id"`
	Petshop   Petshop `json:"petshop,omitempty" gorm:"foreignKey:PetshopID"`
	DayOfWeek int     `json:"day_of_week"` // 0 = Sunday .. 6 = Saturday
	StartTime string  `json:"start_time"`  // Format "HH:MM" in 24h
	EndTime   string  `json:"end_time"`    // Format "HH:MM" in 24h
}
