package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/saeid-a/GymScheduleBack/internal/config"
	"github.com/saeid-a/GymScheduleBack/internal/handlers"
	"github.com/saeid-a/GymScheduleBack/internal/services"
)

func RegisterRoutes(app *fiber.App, cfg *config.Config, gym *services.GymService) error {
	gymHandler := handlers.NewGymHandler(gym, cfg.Location(), services.PayRates{
		Base:                  cfg.PayrollBaseRate,
		BonusPerQualification: cfg.PayrollBonusRate,
	})

	api := app.Group("/api/v1")

	api.Get("/gym", gymHandler.Snapshot)

	instructors := api.Group("/instructors")
	instructors.Get("", gymHandler.ListInstructors)
	instructors.Post("", gymHandler.AddInstructor)
	instructors.Post("/:id/qualifications", gymHandler.AddQualification)

	rooms := api.Group("/rooms")
	rooms.Get("", gymHandler.ListRooms)
	rooms.Post("", gymHandler.AddRoom)

	workouts := api.Group("/workouts")
	workouts.Get("", gymHandler.ListWorkoutClasses)
	workouts.Post("", gymHandler.AddWorkoutClass)

	offerings := api.Group("/offerings")
	offerings.Get("", gymHandler.OfferingsAt)
	offerings.Post("", gymHandler.ScheduleOffering)
	offerings.Post("/register", gymHandler.RegisterClient)

	api.Get("/schedule", gymHandler.ScheduleListing)

	reports := api.Group("/reports")
	reports.Get("/hours", gymHandler.HoursWorked)
	reports.Get("/payroll", gymHandler.Payroll)

	return registerDocsRoutes(app, cfg)
}
