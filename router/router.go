package router

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"

	_ "event-checkin-backend/docs"

	"event-checkin-backend/config"
	"event-checkin-backend/config/middleware"
	"event-checkin-backend/handlers"
	"event-checkin-backend/pkg/scanner"
	"event-checkin-backend/pkg/storage"
	"event-checkin-backend/repository"
)

func SetupRoutes(app *fiber.App, cfg *config.AppConfig) {
	log.Println("Registering application routes...")

	photoStore, err := storage.NewPhotoStore(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize photo storage: %v", err)
	}

	attendeeRepo := repository.NewAttendeeRepository()
	historyRepo := repository.NewScanHistoryRepository()

	retrier := scanner.NewHistoryRetrier(historyRepo)
	engine := scanner.NewEngine(attendeeRepo, historyRepo, retrier)

	gateHandler := handlers.NewGateHandler(cfg)
	registrationHandler := handlers.NewRegistrationHandler(attendeeRepo, photoStore, cfg)
	ticketHandler := handlers.NewTicketHandler(attendeeRepo)
	scanHandler := handlers.NewScanHandler(engine, historyRepo)
	fileHandler := handlers.NewFileHandler()

	// Health check & Docs
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Event Check-In API",
			"status":  "running",
			"docs":    "/docs/index.html",
		})
	})
	app.Get("/docs/*", swagger.HandlerDefault)

	// API v1 group
	api := app.Group("/api/v1")

	// Registration and tickets are public, the attendee owns the link.
	api.Post("/attendees", registrationHandler.RegisterAttendee)
	api.Get("/attendees/:id", registrationHandler.GetAttendee)
	api.Get("/attendees/:id/ticket", ticketHandler.GetTicket)
	api.Get("/attendees/:id/ticket.png", ticketHandler.GetTicketPNG)
	api.Get("/files/:id", fileHandler.GetFile)

	// Staff gate
	gateGroup := api.Group("/gate")
	gateGroup.Post("/login", gateHandler.Login)
	gateGroup.Post("/logout", middleware.OperatorMiddleware(), gateHandler.Logout)

	// Scanner routes, operators only
	scanGroup := api.Group("/scan", middleware.OperatorMiddleware())
	scanGroup.Post("/", scanHandler.Scan)
	scanGroup.Post("/confirm", scanHandler.Confirm)
	scanGroup.Post("/cancel", scanHandler.Cancel)
	scanGroup.Get("/history", scanHandler.GetScanHistory)

	api.Get("/attendees", middleware.OperatorMiddleware(), registrationHandler.GetAllAttendees)

	log.Println("All application routes registered.")
	log.Println("- POST /api/v1/attendees")
	log.Println("- GET  /api/v1/attendees/:id")
	log.Println("- GET  /api/v1/attendees/:id/ticket")
	log.Println("- GET  /api/v1/attendees/:id/ticket.png")
	log.Println("- GET  /api/v1/files/:id")
	log.Println("- POST /api/v1/gate/login")
	log.Println("- POST /api/v1/gate/logout (operator)")
	log.Println("- POST /api/v1/scan (operator)")
	log.Println("- POST /api/v1/scan/confirm (operator)")
	log.Println("- POST /api/v1/scan/cancel (operator)")
	log.Println("- GET  /api/v1/scan/history (operator)")
	log.Println("- GET  /api/v1/attendees (operator)")
	log.Println("Swagger documentation available at: /docs/index.html")
}
