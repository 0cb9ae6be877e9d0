package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"

	"stonks/internal/config"
	"stonks/internal/db"
	"stonks/internal/model"
	"stonks/internal/repository"
)

const seedPassword = "changeme123"

type seedUser struct {
	Name  string
	Email string
}

var seedUsers = []seedUser{
	{Name: "Ann Example", Email: "ann@example.com"},
	{Name: "Bob Example", Email: "bob@example.com"},
	{Name: "Cara Example", Email: "cara@example.com"},
}

func main() {
	log.Println("Starting seed script...")

	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := gormDB.AutoMigrate(&model.User{}, &model.Wager{}, &model.WagerMember{}); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	ctx := context.Background()
	userRepo := repository.NewUserRepository(gormDB)
	wagerRepo := repository.NewWagerRepository(gormDB)

	hash, err := bcrypt.GenerateFromPassword([]byte(seedPassword), 10)
	if err != nil {
		log.Fatalf("Failed to hash seed password: %v", err)
	}

	created := 0
	for _, su := range seedUsers {
		if existing, err := userRepo.FindByEmail(ctx, su.Email); err == nil && existing != nil {
			log.Printf("User %s already exists, skipping", su.Email)
			continue
		}

		user := &model.User{
			Name:         su.Name,
			Email:        su.Email,
			PasswordHash: string(hash),
		}
		if err := userRepo.Create(ctx, user); err != nil {
			log.Fatalf("Failed to create user %s: %v", su.Email, err)
		}

		start := time.Now().Truncate(24 * time.Hour)
		wager := &model.Wager{
			UserID:      user.ID,
			GroupName:   fmt.Sprintf("%s's group", su.Name),
			Description: "Demo wager created by the seed script",
			Amount:      decimal.NewFromInt(50),
			StartDate:   datatypes.Date(start),
			EndDate:     datatypes.Date(start.AddDate(0, 1, 0)),
			Payout:      "winner-take-all",
		}
		members := []model.WagerMember{
			{Email: "friend1@example.com"},
			{Email: "friend2@example.com"},
		}
		if err := wagerRepo.CreateWithMembers(ctx, wager, members); err != nil {
			log.Fatalf("Failed to create demo wager for %s: %v", su.Email, err)
		}
		created++
	}

	log.Printf("Seed complete: %d users created (password %q)", created, seedPassword)
}
