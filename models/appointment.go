package models

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AppointmentStatus string

const (
	StatusPending   AppointmentStatus = "pending"
	StatusConfirmed AppointmentStatus = "confirmed"
	StatusCanceled  AppointmentStatus = "canceled"
	StatusCompleted AppointmentStatus = "completed"
)

type Appointment struct {
	gorm.Model
	Reference       string            `json:"reference" gorm:"uniqueIndex"`
	PetshopID       uint              `json:"petshop_id"`
	Petshop         Petshop           `json:"petshop,omitempty" gorm:"foreignKey:PetshopID"`
	ClientID        uint              `json:"client_id"`
	Client          Client            `json:"client,omitempty" gorm:"foreignKey:ClientID"`
	PetID           *uint             `json:"pet_id,omitempty"`
	Pet             *Pet              `json:"pet,omitempty" gorm:"foreignKey:PetID"`
	ServiceID       uint              `json:"service_id"`
	Service         Service           `json:"service,omitempty" gorm:"foreignKey:ServiceID"`
	AppointmentDate string            `json:"appointment_date"` // Format "YYYY-MM-DD"
	StartTime       string            `json:"start_time"`       // Format "HH:MM" in 24h
	EndTime         string            `json:"end_time"`         // Always start_time + service duration
	Status          AppointmentStatus `json:"status"`
	Notes           string            `json:"notes"`
}

func (a *Appointment) BeforeCreate(tx *gorm.DB) error {
	if a.Status == "" {
		a.Status = StatusPending
	}
	if a.Reference == "" {
		a.Reference = uuid.NewString()
	}
	return nil
}

// CanTransition reports whether moving from one status to another is legal.
// Pending may become confirmed or canceled, confirmed may become completed or
// canceled. There is no way out of completed or canceled.
func CanTransition(from, to AppointmentStatus) error {
	switch from {
	case StatusPending:
		if to != StatusConfirmed && to != StatusCanceled {
			return fmt.Errorf("invalid transition from pending to %s", to)
		}
	case StatusConfirmed:
		if to != StatusCompleted && to != StatusCanceled {
			return fmt.Errorf("invalid transition from confirmed to %s", to)
		}
	case StatusCompleted, StatusCanceled:
		return fmt.Errorf("no transitions allowed from %s", from)
	default:
		return fmt.Errorf("unknown status %s", from)
	}
	return nil
}

func (a *Appointment) UpdateStatus(tx *gorm.DB, newStatus AppointmentStatus) error {
	if err := CanTransition(a.Status, newStatus); err != nil {
		return err
	}

	a.Status = newStatus
	if err := tx.Save(a).Error; err != nil {
		return err
	}
	return nil
}
