package initializers

import (
	"log"

	"github.com/FloresaZogaj1/topbackend/models"
)

// SyncDatabase guarantees the expected schema before the server starts
// accepting requests. Write paths never branch on introspected columns.
func SyncDatabase() {
	err := DB.AutoMigrate(
		&models.User{},
		&models.Product{},
		&models.Order{},
		&models.OrderItem{},
		&models.Customer{},
		&models.Warranty{},
		&models.SoftSaveContract{},
	)
	if err != nil {
		log.Fatal("Database migration failed: ", err)
	}
	log.Println("Database synced successfully.")
}
