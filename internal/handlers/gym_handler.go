package handlers

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/saeid-a/GymScheduleBack/internal/importer"
	"github.com/saeid-a/GymScheduleBack/internal/models"
	"github.com/saeid-a/GymScheduleBack/internal/services"
)

type gymApplicationService interface {
	AddInstructor(id int64, name string, qualifications ...string) (bool, error)
	AddQualification(instructorID int64, qualification string) (bool, error)
	AddWorkoutClass(name string, requiredQualifications ...string) (bool, error)
	AddRoom(name string, capacity int) (bool, error)
	Schedule(at time.Time, room, workoutName string, instructorID int64) (bool, error)
	Register(at time.Time, client, workoutName string) (bool, error)
	HoursWorked(from, to time.Time) map[int64]int
	Payroll(from, to time.Time, rates services.PayRates) []models.PayrollEntry
	OfferingsAt(at time.Time) []models.OfferingView
	ScheduleListing(week *time.Time) []models.OfferingView
	ListInstructors() []models.Instructor
	ListWorkoutClasses() []models.WorkoutClass
	ListRooms() []models.Room
	Snapshot() models.GymSnapshot
}

type GymHandler struct {
	service  gymApplicationService
	location *time.Location
	rates    services.PayRates
}

func NewGymHandler(service *services.GymService, location *time.Location, rates services.PayRates) *GymHandler {
	if location == nil {
		location = time.UTC
	}
	return &GymHandler{service: service, location: location, rates: rates}
}

type addInstructorRequest struct {
	ID             int64    `json:"id"`
	Name           string   `json:"name"`
	Qualifications []string `json:"qualifications"`
}

type addQualificationRequest struct {
	Name string `json:"name"`
}

type addRoomRequest struct {
	Name     string `json:"name"`
	Capacity int    `json:"capacity"`
}

type addWorkoutRequest struct {
	Name                   string   `json:"name"`
	RequiredQualifications []string `json:"required_qualifications"`
}

type scheduleRequest struct {
	Time         string `json:"time"`
	Room         string `json:"room"`
	Workout      string `json:"workout"`
	InstructorID int64  `json:"instructor_id"`
}

type registerRequest struct {
	Time    string `json:"time"`
	Client  string `json:"client"`
	Workout string `json:"workout"`
}

func (h *GymHandler) AddInstructor(c *fiber.Ctx) error {
	var req addInstructorRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if req.ID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "id must be greater than 0"})
	}

	added, err := h.service.AddInstructor(req.ID, req.Name, req.Qualifications...)
	if err != nil {
		return mapGymError(c, err)
	}
	if !added {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Instructor already exists"})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"added": true})
}

func (h *GymHandler) AddQualification(c *fiber.Ctx) error {
	instructorID, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || instructorID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid instructor id"})
	}

	var req addQualificationRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	added, err := h.service.AddQualification(instructorID, req.Name)
	if err != nil {
		return mapGymError(c, err)
	}
	return c.JSON(fiber.Map{"added": added})
}

func (h *GymHandler) ListInstructors(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"instructors": h.service.ListInstructors()})
}

func (h *GymHandler) AddRoom(c *fiber.Ctx) error {
	var req addRoomRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	added, err := h.service.AddRoom(req.Name, req.Capacity)
	if err != nil {
		return mapGymError(c, err)
	}
	if !added {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Room already exists"})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"added": true})
}

func (h *GymHandler) ListRooms(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"rooms": h.service.ListRooms()})
}

func (h *GymHandler) AddWorkoutClass(c *fiber.Ctx) error {
	var req addWorkoutRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	added, err := h.service.AddWorkoutClass(req.Name, req.RequiredQualifications...)
	if err != nil {
		return mapGymError(c, err)
	}
	if !added {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Workout class already exists"})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"added": true})
}

func (h *GymHandler) ListWorkoutClasses(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"workouts": h.service.ListWorkoutClasses()})
}

func (h *GymHandler) ScheduleOffering(c *fiber.Ctx) error {
	var req scheduleRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	at, err := importer.ParseTime(req.Time, h.location)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "time must be a valid timestamp"})
	}

	scheduled, err := h.service.Schedule(at, strings.TrimSpace(req.Room), strings.TrimSpace(req.Workout), req.InstructorID)
	if err != nil {
		return mapGymError(c, err)
	}
	if !scheduled {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Offering conflicts with the schedule or the instructor is not qualified"})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"offerings": h.service.OfferingsAt(at)})
}

func (h *GymHandler) RegisterClient(c *fiber.Ctx) error {
	var req registerRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	at, err := importer.ParseTime(req.Time, h.location)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "time must be a valid timestamp"})
	}

	registered, err := h.service.Register(at, req.Client, strings.TrimSpace(req.Workout))
	if err != nil {
		return mapGymError(c, err)
	}
	if !registered {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Client is already booked at that time or the class is full"})
	}
	return c.JSON(fiber.Map{"registered": true})
}

func (h *GymHandler) OfferingsAt(c *fiber.Ctx) error {
	at, err := importer.ParseTime(c.Query("time"), h.location)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "time must be a valid timestamp"})
	}
	return c.JSON(fiber.Map{"offerings": h.service.OfferingsAt(at)})
}

func (h *GymHandler) ScheduleListing(c *fiber.Ctx) error {
	var week *time.Time
	if raw := strings.TrimSpace(c.Query("week")); raw != "" {
		anchor, err := time.ParseInLocation("2006-01-02", raw, h.location)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "week must be a YYYY-MM-DD date"})
		}
		week = &anchor
	}
	return c.JSON(fiber.Map{"schedule": h.service.ScheduleListing(week)})
}

func (h *GymHandler) HoursWorked(c *fiber.Ctx) error {
	from, to, err := h.parseRange(c)
	if err != nil {
		return mapGymError(c, err)
	}

	hours := h.service.HoursWorked(from, to)
	byID := make(map[string]int, len(hours))
	for id, worked := range hours {
		byID[strconv.FormatInt(id, 10)] = worked
	}
	return c.JSON(fiber.Map{"hours": byID})
}

func (h *GymHandler) Payroll(c *fiber.Ctx) error {
	from, to, err := h.parseRange(c)
	if err != nil {
		return mapGymError(c, err)
	}

	rates := h.rates
	if raw := strings.TrimSpace(c.Query("base_rate")); raw != "" {
		base, err := strconv.ParseFloat(raw, 64)
		if err != nil || base < 0 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "base_rate must be a non-negative number"})
		}
		rates.Base = base
	}
	return c.JSON(fiber.Map{"payroll": h.service.Payroll(from, to, rates)})
}

func (h *GymHandler) Snapshot(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"gym": h.service.Snapshot()})
}

func (h *GymHandler) parseRange(c *fiber.Ctx) (time.Time, time.Time, error) {
	from, err := importer.ParseTime(c.Query("from"), h.location)
	if err != nil {
		return time.Time{}, time.Time{}, errInvalidRange
	}
	to, err := importer.ParseTime(c.Query("to"), h.location)
	if err != nil {
		return time.Time{}, time.Time{}, errInvalidRange
	}
	if to.Before(from) {
		return time.Time{}, time.Time{}, errInvalidRange
	}
	return from, to, nil
}

var errInvalidRange = errors.New("from and to must be valid timestamps with from <= to")

func mapGymError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, errInvalidRange),
		errors.Is(err, services.ErrInvalidInput),
		errors.Is(err, services.ErrInvalidTimeSlot):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, services.ErrInstructorNotFound),
		errors.Is(err, services.ErrWorkoutNotFound),
		errors.Is(err, services.ErrRoomNotFound),
		errors.Is(err, services.ErrNoOffering):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to process gym request"})
	}
}
