package main

import (
	"log"

	"github.com/TECHTUNE-I-T-SOLUTIONS/gloriousfuture/app/config"
	"github.com/TECHTUNE-I-T-SOLUTIONS/gloriousfuture/app/database"
)

func main() {
	log.Println("Running migrations...")

	config.Init()
	db := config.GetDB()
	defer db.Close()

	if err := database.RunMigrations(db); err != nil {
		log.Fatal("Migration failed:", err)
	}

	log.Println("Migrations completed successfully")
}
