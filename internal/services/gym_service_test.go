package services

import (
	"errors"
	"fmt"
	"reflect"
	"sync"
	"testing"
	"time"
)

var friday = time.Date(2022, 9, 9, 12, 0, 0, 0, time.UTC)

func newTestGym(t *testing.T) *GymService {
	t.Helper()
	gym := NewGymService("Athletic Centre")
	mustOK(t)(gym.AddInstructor(1, "Diane", "Cardio 1"))
	mustOK(t)(gym.AddInstructor(2, "David", "Strength Training"))
	mustOK(t)(gym.AddWorkoutClass("Boot Camp", "Cardio 1"))
	mustOK(t)(gym.AddWorkoutClass("KickBoxing", "Strength Training"))
	mustOK(t)(gym.AddRoom("Room 1", 20))
	mustOK(t)(gym.AddRoom("Room 2", 10))
	return gym
}

// failer is satisfied by *testing.T and *rapid.T.
type failer interface {
	Helper()
	Fatalf(format string, args ...any)
}

// mustOK fails the test unless the wrapped call succeeded without error.
func mustOK(t failer) func(bool, error) {
	return func(ok bool, err error) {
		t.Helper()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !ok {
			t.Fatalf("expected operation to succeed")
		}
	}
}

func TestAddOperationsAreIdempotent(t *testing.T) {
	gym := newTestGym(t)
	before := gym.Snapshot()

	cases := []struct {
		name string
		call func() (bool, error)
	}{
		{"instructor", func() (bool, error) { return gym.AddInstructor(1, "Someone Else") }},
		{"workout", func() (bool, error) { return gym.AddWorkoutClass("Boot Camp", "Yoga") }},
		{"room", func() (bool, error) { return gym.AddRoom("Room 1", 99) }},
		{"qualification", func() (bool, error) { return gym.AddQualification(1, "Cardio 1") }},
	}
	for _, tc := range cases {
		ok, err := tc.call()
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", tc.name, err)
		}
		if ok {
			t.Fatalf("%s: expected duplicate add to report false", tc.name)
		}
	}

	if after := gym.Snapshot(); !reflect.DeepEqual(before, after) {
		t.Fatalf("expected state to be unchanged, got %+v", after)
	}
}

func TestAddQualificationGrowsInstructor(t *testing.T) {
	gym := newTestGym(t)

	mustOK(t)(gym.AddQualification(2, "Cardio 1"))

	instructors := gym.ListInstructors()
	if got := instructors[1].Qualifications; !reflect.DeepEqual(got, []string{"Cardio 1", "Strength Training"}) {
		t.Fatalf("unexpected qualifications: %v", got)
	}
}

func TestAddQualificationUnknownInstructor(t *testing.T) {
	gym := newTestGym(t)

	if _, err := gym.AddQualification(99, "Cardio 1"); !errors.Is(err, ErrInstructorNotFound) {
		t.Fatalf("expected ErrInstructorNotFound, got %v", err)
	}
}

func TestAddRoomRejectsNonPositiveCapacity(t *testing.T) {
	gym := newTestGym(t)

	if _, err := gym.AddRoom("Closet", 0); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if rooms := gym.ListRooms(); len(rooms) != 2 {
		t.Fatalf("expected 2 rooms, got %d", len(rooms))
	}
}

func TestScheduleRejectsInstructorDoubleBooking(t *testing.T) {
	gym := newTestGym(t)

	mustOK(t)(gym.Schedule(friday, "Room 1", "Boot Camp", 1))

	ok, err := gym.Schedule(friday, "Room 2", "Boot Camp", 1)
	if err != nil {
		t.Fatalf("Schedule: %v", err)
	}
	if ok {
		t.Fatalf("expected second booking of instructor 1 to fail")
	}
	if views := gym.OfferingsAt(friday); len(views) != 1 || views[0].Room != "Room 1" {
		t.Fatalf("expected only Room 1 to be scheduled, got %+v", views)
	}
}

func TestScheduleRejectsRoomDoubleBooking(t *testing.T) {
	gym := newTestGym(t)
	mustOK(t)(gym.AddQualification(2, "Cardio 1"))

	mustOK(t)(gym.Schedule(friday, "Room 1", "Boot Camp", 1))
	ok, err := gym.Schedule(friday, "Room 1", "KickBoxing", 2)
	if err != nil {
		t.Fatalf("Schedule: %v", err)
	}
	if ok {
		t.Fatalf("expected room double booking to fail")
	}

	ok, err = gym.Schedule(friday.Add(time.Hour), "Room 1", "KickBoxing", 2)
	if err != nil || !ok {
		t.Fatalf("expected the next hour to be free, got ok=%v err=%v", ok, err)
	}
}

func TestScheduleRequiresQualifications(t *testing.T) {
	gym := newTestGym(t)

	ok, err := gym.Schedule(friday, "Room 1", "KickBoxing", 1)
	if err != nil {
		t.Fatalf("Schedule: %v", err)
	}
	if ok {
		t.Fatalf("expected unqualified instructor to be rejected")
	}
	if got := gym.OfferingsAt(friday); len(got) != 0 {
		t.Fatalf("expected empty slot, got %+v", got)
	}
	if got := gym.Snapshot().Schedule; len(got) != 0 {
		t.Fatalf("expected no schedule entries, got %+v", got)
	}
}

func TestScheduleUnknownKeys(t *testing.T) {
	gym := newTestGym(t)

	cases := []struct {
		name       string
		room       string
		workout    string
		instructor int64
		want       error
	}{
		{"room", "Basement", "Boot Camp", 1, ErrRoomNotFound},
		{"workout", "Room 1", "Pilates", 1, ErrWorkoutNotFound},
		{"instructor", "Room 1", "Boot Camp", 42, ErrInstructorNotFound},
	}
	for _, tc := range cases {
		if _, err := gym.Schedule(friday, tc.room, tc.workout, tc.instructor); !errors.Is(err, tc.want) {
			t.Fatalf("%s: expected %v, got %v", tc.name, tc.want, err)
		}
	}
}

func TestScheduleRequiresHourAlignedTime(t *testing.T) {
	gym := newTestGym(t)

	if _, err := gym.Schedule(friday.Add(30*time.Minute), "Room 1", "Boot Camp", 1); !errors.Is(err, ErrInvalidTimeSlot) {
		t.Fatalf("expected ErrInvalidTimeSlot, got %v", err)
	}
}

func TestScheduleTreatsEqualInstantsAsSameSlot(t *testing.T) {
	gym := newTestGym(t)
	toronto := time.FixedZone("EDT", -4*60*60)

	mustOK(t)(gym.Schedule(friday, "Room 1", "Boot Camp", 1))
	ok, err := gym.Schedule(friday.In(toronto), "Room 2", "Boot Camp", 1)
	if err != nil {
		t.Fatalf("Schedule: %v", err)
	}
	if ok {
		t.Fatalf("expected the same instant in another zone to conflict")
	}
}

func TestScheduleChecksAlignmentInGymLocation(t *testing.T) {
	kolkata := time.FixedZone("IST", 5*60*60+30*60)
	gym := NewGymService("Mumbai", WithLocation(kolkata))
	mustOK(t)(gym.AddInstructor(1, "Diane"))
	mustOK(t)(gym.AddWorkoutClass("Yoga"))
	mustOK(t)(gym.AddRoom("Room 1", 10))
	mustOK(t)(gym.AddRoom("Room 2", 10))

	nine := time.Date(2022, 9, 9, 9, 0, 0, 0, kolkata)
	mustOK(t)(gym.Schedule(nine.UTC(), "Room 1", "Yoga", 1))

	if _, err := gym.Schedule(time.Date(2022, 9, 9, 4, 0, 0, 0, time.UTC), "Room 2", "Yoga", 1); !errors.Is(err, ErrInvalidTimeSlot) {
		t.Fatalf("expected 09:30 local to be rejected, got %v", err)
	}
}

func TestStateStaysConsistentUnderConcurrentUse(t *testing.T) {
	gym := newTestGym(t)
	const workers = 8

	var wg sync.WaitGroup
	wg.Add(workers * 3)
	for w := 0; w < workers; w++ {
		go func(w int) {
			defer wg.Done()
			at := friday.Add(time.Duration(w%3) * time.Hour)
			_, _ = gym.Schedule(at, "Room 1", "Boot Camp", 1)
			_, _ = gym.Schedule(at, "Room 2", "KickBoxing", 2)
		}(w)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < 20; i++ {
				at := friday.Add(time.Duration(i%3) * time.Hour)
				_, _ = gym.Register(at, fmt.Sprintf("client-%d-%d", w, i), "Boot Camp")
			}
		}(w)
		go func() {
			defer wg.Done()
			for i := 0; i < 20; i++ {
				_ = gym.OfferingsAt(friday)
				_ = gym.Payroll(friday, friday.Add(3*time.Hour), PayRates{Base: 25, BonusPerQualification: DefaultBonusRate})
				_ = gym.ScheduleListing(nil)
			}
		}()
	}
	wg.Wait()

	capacity := map[string]int{"Room 1": 20, "Room 2": 10}
	seen := make(map[int64]map[string]bool)
	for _, entry := range gym.Snapshot().Schedule {
		if len(entry.Clients) > capacity[entry.Room] {
			t.Fatalf("roster over capacity: %+v", entry)
		}
		at := entry.Time.Unix()
		if seen[at] == nil {
			seen[at] = make(map[string]bool)
		}
		for _, client := range entry.Clients {
			if seen[at][client] {
				t.Fatalf("client %s double booked at %v", client, entry.Time)
			}
			seen[at][client] = true
		}
	}

	hours := gym.HoursWorked(friday, friday.Add(3*time.Hour))
	if hours[1] != 3 || hours[2] != 3 {
		t.Fatalf("expected each instructor to teach all 3 slots once, got %v", hours)
	}
}
