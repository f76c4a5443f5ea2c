package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/catosacessorios/agendpet-api/db"
	"github.com/catosacessorios/agendpet-api/models"
)

// GetAllServices lists the services of the authenticated admin's petshop
func GetAllServices(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	petshop, err := petshopForUser(userID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Petshop not found",
		})
	}

	query := db.DB.Where("petshop_id = ?", petshop.ID)
	if c.Query("active") == "true" {
		query = query.Where("active = ?", true)
	}

	var services []models.Service
	if err := query.Order("name").Find(&services).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch services",
		})
	}
	return c.JSON(services)
}

// GetService returns one service of the admin's petshop
func GetService(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	petshop, err := petshopForUser(userID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Petshop not found",
		})
	}

	var service models.Service
	if err := db.DB.Where("id = ? AND petshop_id = ?", c.Params("id"), petshop.ID).
		First(&service).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Service not found",
		})
	}
	return c.JSON(service)
}

type ServiceInput struct {
	Name            string  `json:"name"`
	Description     string  `json:"description"`
	Price           float64 `json:"price"`
	DurationMinutes int     `json:"duration_minutes"`
	Active          *bool   `json:"active"`
}

// CreateService creates a new service for the admin's petshop
func CreateService(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	petshop, err := petshopForUser(userID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Petshop not found",
		})
	}

	var input ServiceInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Failed to parse request body",
		})
	}
	if input.Name == "" || input.DurationMinutes <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Name and a positive duration are required",
		})
	}
	if input.Price < 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Price cannot be negative",
		})
	}

	service := models.Service{
		PetshopID:       petshop.ID,
		Name:            input.Name,
		Description:     input.Description,
		Price:           input.Price,
		DurationMinutes: input.DurationMinutes,
		Active:          true,
	}
	if input.Active != nil {
		service.Active = *input.Active
	}

	if err := db.DB.Create(&service).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create service",
		})
	}
	return c.Status(fiber.StatusCreated).JSON(service)
}

// UpdateService updates a service of the admin's petshop
func UpdateService(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	petshop, err := petshopForUser(userID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Petshop not found",
		})
	}

	var service models.Service
	if err := db.DB.Where("id = ? AND petshop_id = ?", c.Params("id"), petshop.ID).
		First(&service).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Service not found",
		})
	}

	var input ServiceInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Failed to parse request body",
		})
	}

	if input.Name != "" {
		service.Name = input.Name
	}
	if input.Description != "" {
		service.Description = input.Description
	}
	if input.Price > 0 {
		service.Price = input.Price
	}
	if input.DurationMinutes > 0 {
		service.DurationMinutes = input.DurationMinutes
	}
	if input.Active != nil {
		service.Active = *input.Active
	}

	if err := db.DB.Save(&service).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update service",
		})
	}
	return c.JSON(service)
}

// DeleteService soft-deletes a service of the admin's petshop
func DeleteService(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	petshop, err := petshopForUser(userID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Petshop not found",
		})
	}

	var service models.Service
	if err := db.DB.Where("id = ? AND petshop_id = ?", c.Params("id"), petshop.ID).
		First(&service).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Service not found",
		})
	}

	if err := db.DB.Delete(&service).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to delete service",
		})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
