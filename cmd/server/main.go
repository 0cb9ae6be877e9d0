package main

import (
	"log"
	"net/http"
	"os"

	_ "stonks/docs" // swagger docs

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"stonks/internal/cache"
	"stonks/internal/config"
	"stonks/internal/db"
	"stonks/internal/handler"
	"stonks/internal/model"
	"stonks/internal/repository"
	"stonks/internal/router"
	"stonks/internal/service"
)

// @title Stonks Wagering API
// @version 1.0
// @description Social wagering backend with signup, login, and group wagers.
// @host localhost:3000
// @BasePath /
// @schemes http
func main() {
	cfg := config.Load()

	e := echo.New()
	e.Use(middleware.RequestID())

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	// Drop tables if RESET_DB environment variable is set
	if os.Getenv("RESET_DB") == "true" {
		log.Println("RESET_DB=true detected, dropping all tables...")
		tables := []interface{}{
			&model.WagerMember{},
			&model.Wager{},
			&model.User{},
		}
		for _, table := range tables {
			if err := gormDB.Migrator().DropTable(table); err != nil {
				log.Printf("Warning: Failed to drop table (may not exist): %v", err)
			}
		}
		log.Println("Tables dropped")
	}

	// Run migrations for all models
	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Wager{},
		&model.WagerMember{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	wagerRepo := repository.NewWagerRepository(gormDB)

	// Initialize services
	authService := service.NewAuthService(userRepo)
	wagerService := service.NewWagerService(wagerRepo, cacheClient, cfg.EnforceDateOrder)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	wagerHandler := handler.NewWagerHandler(wagerService)

	// Register routes
	router.Register(e, authHandler, wagerHandler)

	if cfg.EnforceDateOrder {
		log.Println("ENFORCE_DATE_ORDER=true: rejecting wagers with start date after end date")
	}

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
