// Package importer builds a gym from a YAML description.
package importer

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/saeid-a/GymScheduleBack/internal/services"
)

type GymFile struct {
	Name           string            `yaml:"name"`
	Instructors    []InstructorEntry `yaml:"instructors"`
	Rooms          []RoomEntry       `yaml:"rooms"`
	WorkoutClasses []WorkoutEntry    `yaml:"workout_classes"`
	Schedule       []EventEntry      `yaml:"schedule"`
}

type InstructorEntry struct {
	ID           int64    `yaml:"id"`
	Name         string   `yaml:"name"`
	Certificates []string `yaml:"certificates"`
}

type RoomEntry struct {
	Name     string `yaml:"name"`
	Capacity int    `yaml:"capacity"`
}

type WorkoutEntry struct {
	Name         string   `yaml:"name"`
	Certificates []string `yaml:"certificates"`
}

type EventEntry struct {
	Time         string   `yaml:"time"`
	Room         string   `yaml:"room"`
	Instructor   int64    `yaml:"instructor"`
	WorkoutClass string   `yaml:"workout_class"`
	Participants []string `yaml:"participants"`
}

// Summary counts what Apply did. Rejected entries are booking conflicts or
// duplicates, not malformed input.
type Summary struct {
	Instructors          int
	Rooms                int
	WorkoutClasses       int
	Scheduled            int
	Registered           int
	RejectedInstructors  []string
	RejectedEvents       []string
	RejectedParticipants []string
}

var timeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02T15:04",
}

func LoadFile(path string) (*GymFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read gym file: %w", err)
	}
	return Parse(data)
}

func Parse(data []byte) (*GymFile, error) {
	var file GymFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse gym file: %w", err)
	}
	if strings.TrimSpace(file.Name) == "" {
		return nil, errors.New("parse gym file: name is required")
	}
	return &file, nil
}

// ParseTime accepts RFC3339 or a naive "YYYY-MM-DD HH:MM[:SS]" timestamp,
// the latter interpreted in loc.
func ParseTime(value string, loc *time.Location) (time.Time, error) {
	value = strings.TrimSpace(value)
	if loc == nil {
		loc = time.UTC
	}
	for _, layout := range timeLayouts {
		if layout == time.RFC3339 {
			if t, err := time.Parse(layout, value); err == nil {
				return t, nil
			}
			continue
		}
		if t, err := time.ParseInLocation(layout, value, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognised time %q", value)
}

// Build creates a new gym from file.
func Build(file *GymFile, loc *time.Location) (*services.GymService, *Summary, error) {
	gym := services.NewGymService(file.Name, services.WithLocation(loc))
	summary, err := Apply(gym, file, loc)
	if err != nil {
		return nil, nil, err
	}
	return gym, summary, nil
}

// Apply registers instructors, rooms and workout classes before scheduling
// events and registering their participants.
func Apply(gym *services.GymService, file *GymFile, loc *time.Location) (*Summary, error) {
	summary := &Summary{}

	for _, entry := range file.Instructors {
		added, err := gym.AddInstructor(entry.ID, entry.Name)
		if err != nil {
			return nil, fmt.Errorf("instructor %d: %w", entry.ID, err)
		}
		if !added {
			summary.RejectedInstructors = append(summary.RejectedInstructors, fmt.Sprintf("%d %s", entry.ID, entry.Name))
			continue
		}
		summary.Instructors++
		for _, certificate := range entry.Certificates {
			if _, err := gym.AddQualification(entry.ID, certificate); err != nil {
				return nil, fmt.Errorf("instructor %d: %w", entry.ID, err)
			}
		}
	}

	for _, entry := range file.Rooms {
		added, err := gym.AddRoom(entry.Name, entry.Capacity)
		if err != nil {
			return nil, fmt.Errorf("room %q: %w", entry.Name, err)
		}
		if added {
			summary.Rooms++
		}
	}

	for _, entry := range file.WorkoutClasses {
		added, err := gym.AddWorkoutClass(entry.Name, entry.Certificates...)
		if err != nil {
			return nil, fmt.Errorf("workout class %q: %w", entry.Name, err)
		}
		if added {
			summary.WorkoutClasses++
		}
	}

	for i, event := range file.Schedule {
		at, err := ParseTime(event.Time, loc)
		if err != nil {
			return nil, fmt.Errorf("schedule entry %d: %w", i, err)
		}
		label := fmt.Sprintf("%s %s in %s", at.Format("2006-01-02 15:04"), event.WorkoutClass, event.Room)

		scheduled, err := gym.Schedule(at, event.Room, event.WorkoutClass, event.Instructor)
		if err != nil {
			return nil, fmt.Errorf("schedule entry %d: %w", i, err)
		}
		if !scheduled {
			summary.RejectedEvents = append(summary.RejectedEvents, label)
			continue
		}
		summary.Scheduled++

		for _, participant := range event.Participants {
			registered, err := gym.Register(at, participant, event.WorkoutClass)
			if err != nil {
				return nil, fmt.Errorf("schedule entry %d participant %q: %w", i, participant, err)
			}
			if !registered {
				summary.RejectedParticipants = append(summary.RejectedParticipants, participant+" @ "+label)
				continue
			}
			summary.Registered++
		}
	}

	return summary, nil
}
