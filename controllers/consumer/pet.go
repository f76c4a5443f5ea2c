package consumer

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/catosacessorios/agendpet-api/db"
	"github.com/catosacessorios/agendpet-api/models"
	"github.com/catosacessorios/agendpet-api/utils"
)

// GetMyPets lists the customer's pets
func GetMyPets(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	client, err := clientForUser(userID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Client profile not found",
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

// CreatePet registers a pet for the logged-in customer
func CreatePet(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	client, err := clientForUser(userID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Client profile not found",
		})
	}

	var input petInput
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

type petInput struct {
	Name    string  `json:"name"`
	Species string  `json:"species"`
	Breed   string  `json:"breed"`
	Age     int     `json:"age"`
	Weight  float64 `json:"weight"`
	Notes   string  `json:"notes"`
}

// UpdatePet updates one of the customer's pets
func UpdatePet(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	client, err := clientForUser(userID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Client profile not found",
		})
	}

	var pet models.Pet
	if err := db.DB.Where("id = ? AND client_id = ?", c.Params("id"), client.ID).
		First(&pet).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Pet not found",
		})
	}

	var input petInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Failed to parse request body",
		})
	}

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

	if err := db.DB.Save(&pet).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update pet",
		})
	}
	return c.JSON(pet)
}

// DeletePet removes one of the customer's pets
func DeletePet(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	client, err := clientForUser(userID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Client profile not found",
		})
	}

	var pet models.Pet
	if err := db.DB.Where("id = ? AND client_id = ?", c.Params("id"), client.ID).
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

// UploadPetPhoto attaches a photo to one of the customer's pets. The file goes
// to cloudinary and only the resulting URL is stored.
func UploadPetPhoto(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	client, err := clientForUser(userID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Client profile not found",
		})
	}

	var pet models.Pet
	if err := db.DB.Where("id = ? AND client_id = ?", c.Params("id"), client.ID).
		First(&pet).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Pet not found",
		})
	}

	fileHeader, err := c.FormFile("photo")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Photo file is required",
		})
	}

	file, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to read uploaded file",
		})
	}
	defer file.Close()

	publicID := fmt.Sprintf("pet_%d_%d", pet.ID, time.Now().Unix())
	url, err := utils.UploadPetPhoto(file, publicID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to upload photo",
			Error:   err.Error(),
		})
	}

	pet.PhotoURL = url
	if err := db.DB.Save(&pet).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to save photo URL",
		})
	}
	return c.JSON(pet)
}
