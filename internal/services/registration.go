package services

import (
	"fmt"
	"strings"
	"time"
)

// Register places client in an offering of workoutName at the given time.
// It reports false when the client is already booked at that time or every
// matching room is full. When several rooms qualify, the client goes to the
// fullest room that still has space so that offerings fill before a
// less-occupied room is used; equally full rooms resolve to the first name.
func (s *GymService) Register(at time.Time, client, workoutName string) (bool, error) {
	client = strings.TrimSpace(client)
	if client == "" {
		return false, fmt.Errorf("client is required: %w", ErrInvalidInput)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.workouts.GetByName(workoutName); err != nil {
		return false, fmt.Errorf("workout class %q: %w", workoutName, ErrWorkoutNotFound)
	}

	chosen := ""
	chosenSize := -1
	offered := false
	for _, room := range s.schedule.Rooms(at) {
		offering, _ := s.schedule.Offering(at, room)
		if offering.Workout != workoutName {
			continue
		}
		offered = true

		size := len(offering.Clients)
		if s.rooms.Capacity(room)-size <= 0 {
			continue
		}
		if size > chosenSize {
			chosen = room
			chosenSize = size
		}
	}
	if !offered {
		return false, fmt.Errorf("%q at %s: %w", workoutName, at.Format(time.RFC3339), ErrNoOffering)
	}

	if s.schedule.ClientBooked(at, client) || chosen == "" {
		return false, nil
	}
	return s.schedule.AppendClient(at, chosen, client), nil
}
