package models

import (
	"gorm.io/gorm"
)

// Client is a customer record. Admin-created clients carry the petshop they
// belong to; self-registered customers carry the user account they signed up
// with and no petshop.
type Client struct {
	gorm.Model
	PetshopID *uint  `json:"petshop_id,omitempty"`
	UserID    *uint  `json:"user_id,omitempty"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`

	Pets []Pet `json:"pets,omitempty" gorm:"foreignKey:ClientID"`
}
