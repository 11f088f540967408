package repository

import (
	"slices"
	"sort"
	"time"

	"github.com/saeid-a/GymScheduleBack/internal/models"
)

// timeSlot holds every offering that starts at one instant, plus reverse
// indexes used for instructor and client conflict checks.
type timeSlot struct {
	at          time.Time
	rooms       map[string]*models.Offering
	instructors map[int64]string
	clients     map[string]string
}

// ScheduleRepository is the time → room → offering index. A slot is present
// only while it holds at least one offering.
type ScheduleRepository struct {
	slots map[int64]*timeSlot
}

func NewScheduleRepository() *ScheduleRepository {
	return &ScheduleRepository{slots: make(map[int64]*timeSlot)}
}

func slotKey(at time.Time) int64 {
	return at.Unix()
}

// Offering returns a copy of the offering in room at the given slot.
func (r *ScheduleRepository) Offering(at time.Time, room string) (models.Offering, bool) {
	slot, ok := r.slots[slotKey(at)]
	if !ok {
		return models.Offering{}, false
	}
	offering, ok := slot.rooms[room]
	if !ok {
		return models.Offering{}, false
	}
	return copyOffering(offering), true
}

// Rooms lists the rooms booked at the slot in ascending name order.
func (r *ScheduleRepository) Rooms(at time.Time) []string {
	slot, ok := r.slots[slotKey(at)]
	if !ok {
		return nil
	}
	rooms := make([]string, 0, len(slot.rooms))
	for room := range slot.rooms {
		rooms = append(rooms, room)
	}
	sort.Strings(rooms)
	return rooms
}

func (r *ScheduleRepository) RoomBooked(at time.Time, room string) bool {
	slot, ok := r.slots[slotKey(at)]
	if !ok {
		return false
	}
	_, booked := slot.rooms[room]
	return booked
}

func (r *ScheduleRepository) InstructorBusy(at time.Time, instructorID int64) bool {
	slot, ok := r.slots[slotKey(at)]
	if !ok {
		return false
	}
	_, busy := slot.instructors[instructorID]
	return busy
}

func (r *ScheduleRepository) ClientBooked(at time.Time, client string) bool {
	slot, ok := r.slots[slotKey(at)]
	if !ok {
		return false
	}
	_, booked := slot.clients[client]
	return booked
}

// Insert stores a new offering. It reports false without mutating anything
// when the room or the instructor is already booked at the slot.
func (r *ScheduleRepository) Insert(at time.Time, room string, offering models.Offering) bool {
	key := slotKey(at)
	slot, ok := r.slots[key]
	if ok {
		if _, booked := slot.rooms[room]; booked {
			return false
		}
		if _, busy := slot.instructors[offering.InstructorID]; busy {
			return false
		}
		for _, client := range offering.Clients {
			if _, booked := slot.clients[client]; booked {
				return false
			}
		}
	}

	if !ok {
		slot = &timeSlot{
			at:          at,
			rooms:       make(map[string]*models.Offering),
			instructors: make(map[int64]string),
			clients:     make(map[string]string),
		}
		r.slots[key] = slot
	}

	stored := copyOffering(&offering)
	slot.rooms[room] = &stored
	slot.instructors[offering.InstructorID] = room
	for _, client := range stored.Clients {
		slot.clients[client] = room
	}
	return true
}

// AppendClient adds client to the end of the roster in room. It reports false
// when the room has no offering at the slot or the client is already booked
// anywhere in the slot.
func (r *ScheduleRepository) AppendClient(at time.Time, room, client string) bool {
	slot, ok := r.slots[slotKey(at)]
	if !ok {
		return false
	}
	offering, ok := slot.rooms[room]
	if !ok {
		return false
	}
	if _, booked := slot.clients[client]; booked {
		return false
	}
	offering.Clients = append(offering.Clients, client)
	slot.clients[client] = room
	return true
}

// Slots returns every occupied slot in chronological order.
func (r *ScheduleRepository) Slots() []time.Time {
	slots := make([]time.Time, 0, len(r.slots))
	for _, slot := range r.slots {
		slots = append(slots, slot.at)
	}
	sortTimes(slots)
	return slots
}

// SlotsBetween returns occupied slots with from <= slot <= to, oldest first.
func (r *ScheduleRepository) SlotsBetween(from, to time.Time) []time.Time {
	slots := make([]time.Time, 0)
	for _, slot := range r.slots {
		if slot.at.Before(from) || slot.at.After(to) {
			continue
		}
		slots = append(slots, slot.at)
	}
	sortTimes(slots)
	return slots
}

// Instructors returns the ids teaching at the slot, ordered by id.
func (r *ScheduleRepository) Instructors(at time.Time) []int64 {
	slot, ok := r.slots[slotKey(at)]
	if !ok {
		return nil
	}
	ids := make([]int64, 0, len(slot.instructors))
	for id := range slot.instructors {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// List flattens the index into chronological, room-ordered entries.
func (r *ScheduleRepository) List() []models.ScheduledOffering {
	entries := make([]models.ScheduledOffering, 0)
	for _, at := range r.Slots() {
		slot := r.slots[slotKey(at)]
		for _, room := range r.Rooms(at) {
			entries = append(entries, models.ScheduledOffering{
				Time:     slot.at,
				Room:     room,
				Offering: copyOffering(slot.rooms[room]),
			})
		}
	}
	return entries
}

func sortTimes(times []time.Time) {
	sort.Slice(times, func(i, j int) bool {
		return times[i].Before(times[j])
	})
}

func copyOffering(offering *models.Offering) models.Offering {
	clients := make([]string, len(offering.Clients))
	copy(clients, offering.Clients)
	return models.Offering{
		InstructorID: offering.InstructorID,
		Workout:      offering.Workout,
		Clients:      clients,
	}
}
