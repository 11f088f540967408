package models

import (
	"slices"
	"time"
)

type Instructor struct {
	ID             int64    `json:"id"`
	Name           string   `json:"name"`
	Qualifications []string `json:"qualifications"`
}

type WorkoutClass struct {
	Name                   string   `json:"name"`
	RequiredQualifications []string `json:"required_qualifications"`
}

// Equal reports whether both classes share a name and the same set of
// required qualifications, regardless of order.
func (w WorkoutClass) Equal(other WorkoutClass) bool {
	if w.Name != other.Name {
		return false
	}
	return slices.Equal(uniqueSorted(w.RequiredQualifications), uniqueSorted(other.RequiredQualifications))
}

type Room struct {
	Name     string `json:"name"`
	Capacity int    `json:"capacity"`
}

type Offering struct {
	InstructorID int64    `json:"instructor_id"`
	Workout      string   `json:"workout"`
	Clients      []string `json:"clients"`
}

type ScheduledOffering struct {
	Time time.Time `json:"time"`
	Room string    `json:"room"`
	Offering
}

type GymSnapshot struct {
	Name        string              `json:"name"`
	Instructors []Instructor        `json:"instructors"`
	Workouts    []WorkoutClass      `json:"workouts"`
	Rooms       []Room              `json:"rooms"`
	Schedule    []ScheduledOffering `json:"schedule"`
}

func uniqueSorted(values []string) []string {
	out := slices.Clone(values)
	slices.Sort(out)
	return slices.Compact(out)
}
