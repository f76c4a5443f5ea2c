package db

import (
	"fmt"
	"log"

	"github.com/catosacessorios/agendpet-api/models"
)

func Migrate() {
	if DB == nil {
		Init()
	}

	// Run AutoMigrate only when explicitly called
	err := DB.AutoMigrate(
		&models.Role{},
		&models.User{},
		&models.Petshop{},
		&models.Client{},
		&models.Pet{},
		&models.Service{},
		&models.AvailableWindow{},
		&models.Appointment{},
	)
	if err != nil {
		log.Fatal("Failed to run migrations: ", err)
	}

	seedRoles()

	fmt.Println("✅ Migrations applied successfully!")
}

// seedRoles creates the two fixed roles. A user gets exactly one of them at
// signup and keeps it for good.
func seedRoles() {
	roles := []models.Role{
		{Name: models.RoleAdmin, Description: "Petshop administrator with full access to their shop"},
		{Name: models.RoleCliente, Description: "Customer who books appointments"},
	}

	for _, role := range roles {
		var existing models.Role
		if DB.Where("name = ?", role.Name).First(&existing).RowsAffected == 0 {
			if err := DB.Create(&role).Error; err != nil {
				log.Fatal("Failed to seed roles: ", err)
			}
		}
	}
}
