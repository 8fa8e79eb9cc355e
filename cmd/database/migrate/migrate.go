package migration

import (
	"ReliefStock-Backend/entities"
	"fmt"
	"log"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	db.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")

	if err := db.AutoMigrate(&entities.User{}); err != nil {
		log.Fatalf("Error migrating user table: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Donor{}); err != nil {
		log.Fatalf("Error migrating donor table: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Receiver{}); err != nil {
		log.Fatalf("Error migrating receiver table: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Item{}); err != nil {
		log.Fatalf("Error migrating item table: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Donation{}); err != nil {
		log.Fatalf("Error migrating donation table: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.DonationRequest{}); err != nil {
		log.Fatalf("Error migrating donation request table: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Alert{}); err != nil {
		log.Fatalf("Error migrating alert table: %v", err)
		return err
	}

	fmt.Println("Database migration complete")
	return nil
}
