package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/joho/godotenv"

	"event-checkin-backend/config"
	"event-checkin-backend/pkg/paseto"
	"event-checkin-backend/repository"
	"event-checkin-backend/router"
	"event-checkin-backend/seeder"

	_ "time/tzdata" // scan timestamps display in IST wherever the server runs
)

// @title Event Check-In API
// @version 1.0
// @description Backend for event registration, QR-coded digital tickets and staff check-in/check-out scanning.
//
// @contact.name API Support
// @contact.url https://github.com/your-repo
// @contact.email support@example.com
//
// @license.name MIT
// @license.url https://opensource.org/licenses/MIT
//
// @host localhost:3000
// @BasePath /api/v1
// @schemes http https
//
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the gate token.
//
// @tag.name Registration
// @tag.description Attendee registration endpoints
//
// @tag.name Ticket
// @tag.description Digital ticket rendering and export
//
// @tag.name Gate
// @tag.description Staff gate endpoints
//
// @tag.name Scanner
// @tag.description Check-in/check-out scanning endpoints
//
// @tag.name Files
// @tag.description Stored photo serving
func main() {

	// Load .env file
	err := godotenv.Load()
	if err != nil {
		log.Println("Warning: .env file not found, using system environment variables")
	}

	cfg := config.LoadConfig()

	if err := paseto.Init(cfg.PASETO_SECRET); err != nil {
		log.Fatalf("Failed to initialize token package: %v", err)
	}

	config.MongoConnect()
	config.InitDatabase()

	defer config.DisconnectDB()

	if cfg.SeedDemo {
		seeder.SeedAttendees(repository.NewAttendeeRepository())
	}

	app := fiber.New()

	config.SetupCORS(app)

	app.Use(logger.New())

	router.SetupRoutes(app, cfg)

	log.Printf("Server running on port %s", cfg.Port)
	log.Printf("API Documentation: http://localhost:%s/docs/index.html", cfg.Port)
	log.Printf("Health Check: http://localhost:%s/", cfg.Port)
	log.Printf("CORS enabled for origins: %v", config.GetAllowedOrigins())
	log.Fatal(app.Listen(":" + cfg.Port))
}
