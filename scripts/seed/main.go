package main

import (
	"log"

	"golang.org/x/crypto/bcrypt"

	"hostelshub_backend/internals/configs"
	"hostelshub_backend/internals/constants"
	database "hostelshub_backend/internals/databases"
	userModel "hostelshub_backend/internals/features/users/user/model"
)

// Seeds the platform admin account. Safe to re-run; an existing admin
// with the configured email is left untouched.
func main() {
	configs.LoadEnv()
	database.ConnectDB()
	database.Migrate()

	email := configs.GetEnvOr("ADMIN_EMAIL", "admin@hostelshub.pk")
	password := configs.GetEnv("ADMIN_PASSWORD")
	if password == "" {
		log.Fatal("ADMIN_PASSWORD must be set")
	}

	var existing int64
	if err := database.DB.Model(&userModel.UserModel{}).
		Where("email = ?", email).
		Count(&existing).Error; err != nil {
		log.Fatalf("seed: %v", err)
	}
	if existing > 0 {
		log.Printf("admin %s already exists, nothing to do", email)
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("seed: %v", err)
	}

	admin := userModel.UserModel{
		UserName: configs.GetEnvOr("ADMIN_NAME", "Platform Admin"),
		Email:    email,
		Password: string(hashed),
		Role:     constants.RoleAdmin,
	}
	if err := database.DB.Create(&admin).Error; err != nil {
		log.Fatalf("seed: %v", err)
	}
	log.Printf("admin %s created", email)
}
