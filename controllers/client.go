package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/catosacessorios/agendpet-api/db"
	"github.com/catosacessorios/agendpet-api/models"
	"github.com/catosacessorios/agendpet-api/utils"
)

// clientOfPetshop resolves a client row making sure it belongs to the petshop.
func clientOfPetshop(petshopID uint, clientID string) (models.Client, error) {
	var client models.Client
	err := db.DB.Where("id = ? AND petshop_id = ?", clientID, petshopID).First(&client).Error
	return client, err
}

// GetClients lists the clients of the admin's petshop
func GetClients(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	petshop, err := petshopForUser(userID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Petshop not found",
		})
	}

	var clients []models.Client
	if err := db.DB.Preload("Pets").Where("petshop_id = ?", petshop.ID).
		Order("name").Find(&clients).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch clients",
		})
	}
	return c.JSON(clients)
}

// GetClient returns one client with their pets
func GetClient(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	petshop, err := petshopForUser(userID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Petshop not found",
		})
	}

	var client models.Client
	if err := db.DB.Preload("Pets").Where("id = ? AND petshop_id = ?", c.Params("id"), petshop.ID).
		First(&client).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Client not found",
		})
	}
	return c.JSON(client)
}

type ClientInput struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// CreateClient registers a client on the petshop's behalf
func CreateClient(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	petshop, err := petshopForUser(userID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Petshop not found",
		})
	}

	var input ClientInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Failed to parse request body",
		})
	}
	if input.Name == "" || input.Phone == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Name and phone are required",
		})
	}
	if !utils.ValidatePhone(input.Phone) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid phone number",
		})
	}

	client := models.Client{
		PetshopID: &petshop.ID,
		Name:      input.Name,
		Email:     input.Email,
		Phone:     input.Phone,
	}
	if err := db.DB.Create(&client).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create client",
		})
	}
	return c.Status(fiber.StatusCreated).JSON(client)
}

// UpdateClient updates a client of the admin's petshop
func UpdateClient(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	petshop, err := petshopForUser(userID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Petshop not found",
		})
	}

	client, err := clientOfPetshop(petshop.ID, c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Client not found",
		})
	}

	var input ClientInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Failed to parse request body",
		})
	}
	if input.Phone != "" && !utils.ValidatePhone(input.Phone) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid phone number",
		})
	}

	if input.Name != "" {
		client.Name = input.Name
	}
	if input.Email != "" {
		client.Email = input.Email
	}
	if input.Phone != "" {
		client.Phone = input.Phone
	}

	if err := db.DB.Save(&client).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update client",
		})
	}
	return c.JSON(client)
}

// DeleteClient removes a client of the admin's petshop
func DeleteClient(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	petshop, err := petshopForUser(userID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Petshop not found",
		})
	}

	client, err := clientOfPetshop(petshop.ID, c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Client not found",
		})
	}

	if err := db.DB.Delete(&client).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to delete client",
		})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
