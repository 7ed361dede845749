package main

import (
	"fmt"
	"log"

	"food_ordering/internal/config"
	"food_ordering/internal/database"
	"food_ordering/internal/models"
	"food_ordering/internal/repository"
)

func main() {
	fmt.Println("Initializing database...")

	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.Initialize(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Seed a demo menu if the catalog is empty
	menuRepo := repository.NewMenuRepository(db)
	existing, err := menuRepo.GetAll()
	if err != nil {
		log.Fatal("Failed to read menu:", err)
	}
	if len(existing) > 0 {
		fmt.Println("Menu already seeded")
		return
	}

	fmt.Println("Seeding demo menu...")
	items := []models.MenuItem{
		{ItemName: "Margherita Pizza", ItemPrice: 9.50},
		{ItemName: "Pepperoni Pizza", ItemPrice: 11.00},
		{ItemName: "Caesar Salad", ItemPrice: 7.25},
		{ItemName: "Garlic Bread", ItemPrice: 4.00},
		{ItemName: "Tiramisu", ItemPrice: 5.75},
		{ItemName: "Lemonade", ItemPrice: 2.50},
	}
	for i := range items {
		if err := menuRepo.Create(&items[i]); err != nil {
			log.Printf("Warning: Failed to create menu item %q: %v", items[i].ItemName, err)
		}
	}

	fmt.Println("Database initialization completed successfully!")
}
