package main

import (
	"context"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"smart-hostel/config"
	_ "smart-hostel/docs"
	"smart-hostel/handlers"
	"smart-hostel/pkg/qr"
	"smart-hostel/pkg/token"
	"smart-hostel/repository"
	"smart-hostel/repository/memstore"
	"smart-hostel/router"
	"smart-hostel/seeder"
	"smart-hostel/service"

	_ "time/tzdata"
)

// @title Smart Hostel Outpass API
// @version 1.0
// @description Student outpass requests, warden decisions and QR gate verification
//
// @contact.name API Support
//
// @license.name MIT
// @license.url https://opensource.org/licenses/MIT
//
// @host localhost:3000
// @BasePath /
// @schemes http https
//
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the token.
//
// @tag.name Student
// @tag.description Outpass requests of the logged-in student
//
// @tag.name Warden
// @tag.description Approval and full request listing
//
// @tag.name Gate
// @tag.description QR verification at the hostel gate
//
// @tag.name Staff
// @tag.description Security and warden dashboards
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	gateDevices, err := config.LoadGateDevices(cfg.GateDevicesFile)
	if err != nil {
		log.Fatalf("Invalid gate device registry: %v", err)
	}

	var (
		outpassRepo repository.OutpassRepository
		userRepo    repository.UserRepository
		eventRepo   repository.GateEventRepository
	)
	switch cfg.StoreDriver {
	case config.StoreMongo:
		client, err := config.MongoConnect(cfg.MONGOSTRING)
		if err != nil {
			log.Fatalf("%v", err)
		}
		defer config.DisconnectDB(client)

		db := client.Database(cfg.DBName)
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		if err := config.InitDatabase(ctx, db); err != nil {
			log.Printf("Warning: %v", err)
		}
		cancel()

		outpassRepo = repository.NewOutpassRepository(db)
		userRepo = repository.NewUserRepository(db)
		eventRepo = repository.NewGateEventRepository(db)
	case config.StoreMemory:
		log.Println("Warning: using the in-memory store, data is lost on restart")
		outpassRepo = memstore.NewOutpassRepository()
		userRepo = memstore.NewUserRepository()
		eventRepo = memstore.NewGateEventRepository()
	}

	tokens, err := token.NewMaker(cfg.TokenFormat, cfg.PASETO_SECRET, cfg.JWTSecret)
	if err != nil {
		log.Fatalf("Failed to set up token verification: %v", err)
	}

	if cfg.SeedDemoUsers {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		if err := seeder.SeedUsers(ctx, userRepo, tokens, 24*time.Hour); err != nil {
			log.Printf("Warning: seeding demo users failed: %v", err)
		}
		cancel()
	}

	outpassService := service.NewOutpassService(outpassRepo, eventRepo, qr.NewCodec(cfg.QRSize),
		service.WithLocation(cfg.Location))
	projector := service.NewProjector(outpassRepo, userRepo, eventRepo)

	app := fiber.New(fiber.Config{
		AppName:      "Smart Hostel Outpass API",
		ErrorHandler: handlers.ErrorHandler,
	})

	app.Use(recover.New())
	config.SetupCORS(app, cfg.CORSOrigins)
	app.Use(logger.New())

	router.SetupRoutes(app, router.Dependencies{
		Outpasses:   outpassService,
		Projector:   projector,
		Policy:      service.NewPolicy(userRepo),
		Verifier:    tokens,
		GateDevices: gateDevices,
	})

	log.Printf("Server running on port %s", cfg.Port)
	log.Printf("API Documentation: http://localhost:%s/docs/index.html", cfg.Port)
	log.Printf("Health Check: http://localhost:%s/", cfg.Port)
	log.Printf("CORS enabled for origins: %v", cfg.CORSOrigins)
	if len(gateDevices) == 0 {
		log.Println("Warning: no gate devices configured, QR verification is open to any caller")
	}
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Printf("Server stopped: %v", err)
	}
}
