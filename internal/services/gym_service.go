package services

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/saeid-a/GymScheduleBack/internal/models"
	"github.com/saeid-a/GymScheduleBack/internal/repository"
)

var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrInvalidTimeSlot    = errors.New("time must start on the hour")
	ErrInstructorNotFound = errors.New("instructor not found")
	ErrWorkoutNotFound    = errors.New("workout class not found")
	ErrRoomNotFound       = errors.New("room not found")
	ErrNoOffering         = errors.New("workout class is not offered at that time")
)

// GymService owns the registries and the schedule index. One lock guards
// all of them so that every mutation is observed whole.
type GymService struct {
	mu          sync.RWMutex
	name        string
	location    *time.Location
	instructors *repository.InstructorRepository
	workouts    *repository.WorkoutRepository
	rooms       *repository.RoomRepository
	schedule    *repository.ScheduleRepository
}

// Option configures a GymService.
type Option func(*GymService)

// WithLocation sets the zone used for hour alignment and for formatting
// listings. Defaults to UTC.
func WithLocation(loc *time.Location) Option {
	return func(s *GymService) {
		if loc != nil {
			s.location = loc
		}
	}
}

func NewGymService(name string, opts ...Option) *GymService {
	s := &GymService{
		name:        name,
		location:    time.UTC,
		instructors: repository.NewInstructorRepository(),
		workouts:    repository.NewWorkoutRepository(),
		rooms:       repository.NewRoomRepository(),
		schedule:    repository.NewScheduleRepository(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *GymService) Name() string {
	return s.name
}

func (s *GymService) Location() *time.Location {
	return s.location
}

// AddInstructor reports false when an instructor with id already exists.
func (s *GymService) AddInstructor(id int64, name string, qualifications ...string) (bool, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return false, fmt.Errorf("instructor name is required: %w", ErrInvalidInput)
	}
	for _, qualification := range qualifications {
		if strings.TrimSpace(qualification) == "" {
			return false, fmt.Errorf("qualification name is required: %w", ErrInvalidInput)
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return s.instructors.Add(models.Instructor{
		ID:             id,
		Name:           name,
		Qualifications: qualifications,
	}), nil
}

// AddQualification reports false when the instructor already holds it.
func (s *GymService) AddQualification(instructorID int64, qualification string) (bool, error) {
	if strings.TrimSpace(qualification) == "" {
		return false, fmt.Errorf("qualification name is required: %w", ErrInvalidInput)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	added, err := s.instructors.AddQualification(instructorID, qualification)
	if errors.Is(err, repository.ErrNotFound) {
		return false, fmt.Errorf("instructor %d: %w", instructorID, ErrInstructorNotFound)
	}
	return added, err
}

func (s *GymService) AddWorkoutClass(name string, requiredQualifications ...string) (bool, error) {
	if strings.TrimSpace(name) == "" {
		return false, fmt.Errorf("workout class name is required: %w", ErrInvalidInput)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return s.workouts.Add(models.WorkoutClass{
		Name:                   name,
		RequiredQualifications: requiredQualifications,
	}), nil
}

func (s *GymService) AddRoom(name string, capacity int) (bool, error) {
	if strings.TrimSpace(name) == "" {
		return false, fmt.Errorf("room name is required: %w", ErrInvalidInput)
	}
	if capacity <= 0 {
		return false, fmt.Errorf("room capacity must be greater than 0: %w", ErrInvalidInput)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return s.rooms.Add(models.Room{Name: name, Capacity: capacity}), nil
}

// Schedule books a new offering with an empty roster. It reports false when
// the room is taken, the instructor is already teaching at that time, or the
// instructor lacks a required qualification.
func (s *GymService) Schedule(at time.Time, room, workoutName string, instructorID int64) (bool, error) {
	if !isHourAligned(at, s.location) {
		return false, ErrInvalidTimeSlot
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.rooms.GetByName(room); err != nil {
		return false, fmt.Errorf("room %q: %w", room, ErrRoomNotFound)
	}
	workout, err := s.workouts.GetByName(workoutName)
	if err != nil {
		return false, fmt.Errorf("workout class %q: %w", workoutName, ErrWorkoutNotFound)
	}
	if !s.instructors.Exists(instructorID) {
		return false, fmt.Errorf("instructor %d: %w", instructorID, ErrInstructorNotFound)
	}

	if s.schedule.RoomBooked(at, room) || s.schedule.InstructorBusy(at, instructorID) {
		return false, nil
	}
	if !s.instructors.IsQualified(instructorID, workout.RequiredQualifications) {
		return false, nil
	}

	return s.schedule.Insert(at, room, models.Offering{
		InstructorID: instructorID,
		Workout:      workout.Name,
	}), nil
}

// Snapshot copies the whole gym state.
func (s *GymService) Snapshot() models.GymSnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return models.GymSnapshot{
		Name:        s.name,
		Instructors: s.instructors.List(),
		Workouts:    s.workouts.List(),
		Rooms:       s.rooms.List(),
		Schedule:    s.schedule.List(),
	}
}

func (s *GymService) ListInstructors() []models.Instructor {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.instructors.List()
}

func (s *GymService) ListWorkoutClasses() []models.WorkoutClass {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.workouts.List()
}

func (s *GymService) ListRooms() []models.Room {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.rooms.List()
}

// isHourAligned checks at on the wall clock of loc.
func isHourAligned(at time.Time, loc *time.Location) bool {
	if at.IsZero() {
		return false
	}
	local := at.In(loc)
	return local.Minute() == 0 && local.Second() == 0 && local.Nanosecond() == 0
}
