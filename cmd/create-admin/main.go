package main

import (
	"flag"
	"log"

	"go-storepos/internal/model"
	"go-storepos/pkg/database"

	"github.com/joho/godotenv"
)

func main() {
	email := flag.String("email", "admin@example.com", "admin email")
	username := flag.String("username", "admin", "admin username")
	name := flag.String("name", "Administrator", "admin display name")
	password := flag.String("password", "", "admin password (required)")
	flag.Parse()

	if *password == "" {
		log.Fatal("-password is required")
	}

	// 1. Load Env
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, relying on system env")
	}

	// 2. Setup Database
	db := database.ConnectDB()

	// 3. Upsert admin
	var user model.User
	err := db.Where("email = ?", *email).First(&user).Error
	if err == nil {
		if err := user.SetPassword(*password); err != nil {
			log.Fatalf("Failed to hash password: %v", err)
		}
		if err := db.Model(&user).Update("password", user.Password).Error; err != nil {
			log.Fatalf("Failed to update password in DB: %v", err)
		}
		log.Printf("Password for %s has been reset", *email)
		return
	}

	user = model.User{
		Name:     *name,
		Username: *username,
		Email:    *email,
		Role:     model.RoleAdmin,
		Status:   model.StatusEmployed,
	}
	if err := user.SetPassword(*password); err != nil {
		log.Fatalf("Failed to hash password: %v", err)
	}
	if err := db.Create(&user).Error; err != nil {
		log.Fatalf("Failed to create admin user: %v", err)
	}

	log.Printf("Admin user %s created", *email)
}
