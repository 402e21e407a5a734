package seeder

import (
	"context"
	"fmt"
	"log"
	"time"

	"golang.org/x/crypto/bcrypt"

	"smart-hostel/models"
	"smart-hostel/pkg/token"
	"smart-hostel/repository"
)

const DemoPassword = "Password123"

// DemoUsers are the accounts created by SeedUsers, one per role.
var DemoUsers = []models.User{
	{Username: "demo.student", Email: "student@hostel.local", Role: models.RoleStudent},
	{Username: "demo.warden", Email: "warden@hostel.local", Role: models.RoleWarden},
	{Username: "demo.security", Email: "security@hostel.local", Role: models.RoleSecurity},
}

// SeedUsers creates the demo accounts that do not exist yet and, when maker is
// not nil, logs a development token for each of them.
func SeedUsers(ctx context.Context, userRepo repository.UserRepository, maker token.Maker, ttl time.Duration) error {
	log.Println("Seeding demo users...")

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(DemoPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	for _, demo := range DemoUsers {
		user, err := userRepo.FindUserByEmail(ctx, demo.Email)
		if err != nil {
			return fmt.Errorf("failed to look up %s: %w", demo.Email, err)
		}
		if user != nil {
			log.Printf("User %s already exists, skipping.", demo.Email)
		} else {
			newUser := demo
			newUser.Password = string(hashedPassword)
			user, err = userRepo.CreateUser(ctx, &newUser)
			if err != nil {
				return fmt.Errorf("failed to create %s: %w", demo.Email, err)
			}
			log.Printf("User %s (%s) created.", user.Email, user.Role)
		}

		if maker == nil {
			continue
		}
		tok, err := maker.GenerateToken(user, ttl)
		if err != nil {
			return fmt.Errorf("failed to issue token for %s: %w", demo.Email, err)
		}
		log.Printf("Dev token for %s (%s): %s", user.Email, user.Role, tok)
	}
	return nil
}
