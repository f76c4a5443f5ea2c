package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/catosacessorios/agendpet-api/db"
	"github.com/catosacessorios/agendpet-api/models"
)

type PetInput struct {
	Name    string  `json:"name"`
	Species string  `json:"species"`
	Breed   string  `json:"breed"`
	Age     int     `json:"age"`
	Weight  float64 `json:"weight"`
	Notes   string  `json:"notes"`
}

// GetClientPets lists the pets of one of the petshop's clients
func GetClientPets(c *fiber.Ctx) error {
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

	var pets []models.Pet
	if err := db.DB.Where("client_id = ?", client.ID).Find(&pets).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch pets",
		})
	}
	return c.JSON(pets)
}

// CreateClientPet registers a pet on a client's behalf
func CreateClientPet(c *fiber.Ctx) error {
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

	var input PetInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Failed to parse request body",
		})
	}
	if input.Name == "" || input.Species == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Name and species are required",
		})
	}

	pet := models.Pet{
		ClientID: client.ID,
		Name:     input.Name,
		Species:  input.Species,
		Breed:    input.Breed,
		Age:      input.Age,
		Weight:   input.Weight,
		Notes:    input.Notes,
	}
	if err := db.DB.Create(&pet).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create pet",
		})
	}
	return c.Status(fiber.StatusCreated).JSON(pet)
}

// UpdateClientPet updates one of a client's pets
func UpdateClientPet(c *fiber.Ctx) error {
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

	var pet models.Pet
	if err := db.DB.Where("id = ? AND client_id = ?", c.Params("petId"), client.ID).
		First(&pet).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Pet not found",
		})
	}

	var input PetInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Failed to parse request body",
		})
	}

	applyPetInput(&pet, input)

	if err := db.DB.Save(&pet).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update pet",
		})
	}
	return c.JSON(pet)
}

// DeleteClientPet removes one of a client's pets
func DeleteClientPet(c *fiber.Ctx) error {
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

	var pet models.Pet
	if err := db.DB.Where("id = ? AND client_id = ?", c.Params("petId"), client.ID).
		First(&pet).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Pet not found",
		})
	}

	if err := db.DB.Delete(&pet).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to delete pet",
		})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func applyPetInput(pet *models.Pet, input PetInput) {
	if input.Name != "" {
		pet.Name = input.Name
	}
	if input.Species != "" {
		pet.Species = input.Species
	}
	if input.Breed != "" {
		pet.Breed = input.Breed
	}
	if input.Age > 0 {
		pet.Age = input.Age
	}
	if input.Weight > 0 {
		pet.Weight = input.Weight
	}
	if input.Notes != "" {
		pet.Notes = input.Notes
	}
}
