package models

import (
	"gorm.io/gorm"
)

type Service struct {
	gorm.Model
	PetshopID       uint    `json:"petshop_id"`
	Petshop         Petshop `json:"petshop,omitempty" gorm:"foreignKey:PetshopID"`
	Name            string  `json:"name"`
	Description     string  `json:"description"`
	Price           float64 `json:"price"`
	DurationMinutes int     `json:"duration_minutes"`
	Active          bool    `json:"active" gorm:"default:true"`
}
