package models

import (
	"gorm.io/gorm"
)

type Pet struct {
	gorm.Model
	ClientID uint    `json:"client_id"`
	Client   Client  `json:"client,omitempty" gorm:"foreignKey:ClientID"`
	Name     string  `json:"name"`
	Species  string  `json:"species"` // e.g. "dog", "cat"
	Breed    string  `json:"breed"`
	Age      int     `json:"age"`
	Weight   float64 `json:"weight"` // kg
	Notes    string  `json:"notes"`
	PhotoURL string  `json:"photo_url"`
}
