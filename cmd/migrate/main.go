package main

import (
	"log"

	"github.com/abdulmumenalnahari-dot/Private-school-management-system/app/config"
	"github.com/abdulmumenalnahari-dot/Private-school-management-system/app/database"
)

// Standalone migration runner for deployments that apply the schema before
// starting the server.
func main() {
	config.Init()
	db := config.GetDB()
	defer db.Close()

	if err := database.RunMigrations(db); err != nil {
		log.Fatal("Migration failed:", err)
	}
	log.Println("Migration completed successfully")
}
