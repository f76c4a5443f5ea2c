package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/catosacessorios/agendpet-api/db"
	"github.com/catosacessorios/agendpet-api/models"
)

// petshopForUser resolves the petshop owned by the authenticated admin. Every
// admin handler goes through this so tenant scoping is always explicit.
func petshopForUser(userID uint) (models.Petshop, error) {
	var petshop models.Petshop
	err := db.DB.Where("owner_id = ?", userID).First(&petshop).Error
	return petshop, err
}

// GetPetshop returns the authenticated admin's petshop
func GetPetshop(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	petshop, err := petshopForUser(userID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Petshop not found",
		})
	}

	return c.JSON(petshop)
}

type PetshopInput struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// UpdatePetshop updates the petshop's profile and contact details
func UpdatePetshop(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	petshop, err := petshopForUser(userID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Petshop not found",
		})
	}

	var input PetshopInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Failed to parse request body",
		})
	}

	if input.Name != "" {
		petshop.Name = input.Name
	}
	if input.Email != "" {
		petshop.Email = input.Email
	}
	if input.Phone != "" {
		petshop.Phone = input.Phone
	}
	if input.Address != "" {
		petshop.Address = input.Address
	}

	if err := db.DB.Save(&petshop).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update petshop",
		})
	}

	return c.JSON(petshop)
}
