package models

import (
	"gorm.io/gorm"
)

// Petshop is the tenant root. Every service, availability window, client and
// appointment belongs to exactly one petshop, and every query touching those
// rows must filter by petshop_id.
type Petshop struct {
	gorm.Model
	OwnerID uint   `json:"owner_id"`
	Owner   User   `json:"owner,omitempty" gorm:"foreignKey:OwnerID"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`

	Services []Service         `json:"services,omitempty" gorm:"foreignKey:PetshopID"`
	Windows  []AvailableWindow `json:"windows,omitempty" gorm:"foreignKey:PetshopID"`
}
