package services

import (
	"time"

	"github.com/saeid-a/GymScheduleBack/internal/models"
)

// DefaultBonusRate is the extra hourly pay per qualification held.
const DefaultBonusRate = 1.50

type PayRates struct {
	Base                  float64
	BonusPerQualification float64
}

// HourlyRate is the pay for one hour taught by an instructor holding the
// given number of qualifications.
func (r PayRates) HourlyRate(qualifications int) float64 {
	return r.Base + r.BonusPerQualification*float64(qualifications)
}

// HoursWorked counts, for every registered instructor, the slots starting
// between from and to (inclusive) in which they teach.
func (s *GymService) HoursWorked(from, to time.Time) map[int64]int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.hoursWorked(from, to)
}

// Payroll reports hours and wages between from and to for every registered
// instructor, ordered by instructor id.
func (s *GymService) Payroll(from, to time.Time, rates PayRates) []models.PayrollEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	hours := s.hoursWorked(from, to)
	instructors := s.instructors.List()
	entries := make([]models.PayrollEntry, 0, len(instructors))
	for _, instructor := range instructors {
		worked := hours[instructor.ID]
		entries = append(entries, models.PayrollEntry{
			InstructorID: instructor.ID,
			Name:         instructor.Name,
			Hours:        worked,
			Wages:        float64(worked) * rates.HourlyRate(s.instructors.QualificationCount(instructor.ID)),
		})
	}
	return entries
}

func (s *GymService) hoursWorked(from, to time.Time) map[int64]int {
	hours := make(map[int64]int)
	for _, instructor := range s.instructors.List() {
		hours[instructor.ID] = 0
	}
	for _, at := range s.schedule.SlotsBetween(from, to) {
		for _, id := range s.schedule.Instructors(at) {
			hours[id]++
		}
	}
	return hours
}
