package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/saeid-a/GymScheduleBack/internal/config"
	"github.com/saeid-a/GymScheduleBack/internal/importer"
	"github.com/saeid-a/GymScheduleBack/internal/routes"
	"github.com/saeid-a/GymScheduleBack/internal/services"
)

func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Build the gym, optionally from a schedule file
	gym := services.NewGymService(cfg.GymName, services.WithLocation(cfg.Location()))
	if cfg.ScheduleFile != "" {
		file, err := importer.LoadFile(cfg.ScheduleFile)
		if err != nil {
			log.Fatalf("Failed to load schedule file: %v", err)
		}
		var summary *importer.Summary
		gym, summary, err = importer.Build(file, cfg.Location())
		if err != nil {
			log.Fatalf("Failed to import schedule file: %v", err)
		}
		log.Printf("Imported %q: %d instructors, %d rooms, %d workout classes, %d offerings, %d registrations",
			gym.Name(), summary.Instructors, summary.Rooms, summary.WorkoutClasses, summary.Scheduled, summary.Registered)
		for _, rejected := range summary.RejectedInstructors {
			log.Printf("Skipped duplicate instructor: %s", rejected)
		}
		for _, rejected := range summary.RejectedEvents {
			log.Printf("Skipped conflicting offering: %s", rejected)
		}
		for _, rejected := range summary.RejectedParticipants {
			log.Printf("Skipped registration: %s", rejected)
		}
	}

	// 3. Setup Fiber
	app := fiber.New()

	// Middleware
	app.Use(cors.New())
	app.Use(requestid.New())
	app.Use(logger.New(logger.Config{
		Format: "${time} ${locals:requestid} ${status} - ${method} ${path} ${latency}\n",
	}))
	app.Use(recover.New())

	// Routes
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "ok",
			"gym":    gym.Name(),
		})
	})
	if err := routes.RegisterRoutes(app, cfg, gym); err != nil {
		log.Fatalf("Failed to register routes: %v", err)
	}

	// 4. Start Server
	log.Printf("Server starting on port %s", cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("Server failed to start: %v", err)
	}
}
