package services

import (
	"fmt"
	"time"

	"github.com/saeid-a/GymScheduleBack/internal/models"
)

const (
	viewDateLayout = "Monday, 2006-01-02"
	viewTimeLayout = "15:04"
)

// instructorLabeler numbers instructors that share a display name. Numbers
// are handed out per name in the order instructors are first displayed and
// only live for one listing.
type instructorLabeler struct {
	service  *GymService
	next     map[string]int
	assigned map[int64]int
}

func (s *GymService) newInstructorLabeler() *instructorLabeler {
	return &instructorLabeler{
		service:  s,
		next:     make(map[string]int),
		assigned: make(map[int64]int),
	}
}

func (l *instructorLabeler) label(instructor *models.Instructor) string {
	if l.service.instructors.NameCount(instructor.Name) <= 1 {
		return instructor.Name
	}
	n, ok := l.assigned[instructor.ID]
	if !ok {
		l.next[instructor.Name]++
		n = l.next[instructor.Name]
		l.assigned[instructor.ID] = n
	}
	return fmt.Sprintf("%s (%d)", instructor.Name, n)
}

// OfferingsAt describes every offering starting at the given instant, ordered
// by room name. Dates and times are shown in the gym's location.
func (s *GymService) OfferingsAt(at time.Time) []models.OfferingView {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.offeringsAt(at, s.newInstructorLabeler())
}

// ScheduleListing describes the full schedule in chronological order, with
// offerings at the same time ordered by room name. A non-nil week limits the
// listing to the Monday-to-Sunday week containing it.
func (s *GymService) ScheduleListing(week *time.Time) []models.OfferingView {
	s.mu.RLock()
	defer s.mu.RUnlock()

	slots := s.schedule.Slots()
	if week != nil {
		start, end := WeekBounds(*week)
		slots = s.schedule.SlotsBetween(start, end.Add(-time.Nanosecond))
	}

	labeler := s.newInstructorLabeler()
	views := make([]models.OfferingView, 0)
	for _, at := range slots {
		views = append(views, s.offeringsAt(at, labeler)...)
	}
	return views
}

func (s *GymService) offeringsAt(at time.Time, labeler *instructorLabeler) []models.OfferingView {
	rooms := s.schedule.Rooms(at)
	views := make([]models.OfferingView, 0, len(rooms))
	start := at.In(s.location)
	for _, room := range rooms {
		offering, ok := s.schedule.Offering(at, room)
		if !ok {
			continue
		}
		instructor, err := s.instructors.GetByID(offering.InstructorID)
		if err != nil {
			continue
		}

		registered := len(offering.Clients)
		available := s.rooms.Capacity(room) - registered
		if available < 0 {
			available = 0
		}
		views = append(views, models.OfferingView{
			Date:       start.Format(viewDateLayout),
			Time:       start.Format(viewTimeLayout),
			Class:      offering.Workout,
			Room:       room,
			Registered: registered,
			Available:  available,
			Instructor: labeler.label(instructor),
		})
	}
	return views
}

// WeekBounds returns the Monday 00:00 starting the week that contains t and
// the following Monday 00:00, both in t's location.
func WeekBounds(t time.Time) (time.Time, time.Time) {
	daysSinceMonday := (int(t.Weekday()) + 6) % 7
	year, month, day := t.Date()
	start := time.Date(year, month, day-daysSinceMonday, 0, 0, 0, 0, t.Location())
	return start, start.AddDate(0, 0, 7)
}
