package repository

import (
	"sort"

	"github.com/saeid-a/GymScheduleBack/internal/models"
)

type RoomRepository struct {
	rooms map[string]models.Room
}

func NewRoomRepository() *RoomRepository {
	return &RoomRepository{rooms: make(map[string]models.Room)}
}

func (r *RoomRepository) Add(room models.Room) bool {
	if _, exists := r.rooms[room.Name]; exists {
		return false
	}
	r.rooms[room.Name] = room
	return true
}

func (r *RoomRepository) GetByName(name string) (*models.Room, error) {
	room, ok := r.rooms[name]
	if !ok {
		return nil, ErrNotFound
	}
	return &room, nil
}

// Capacity returns zero for unknown rooms.
func (r *RoomRepository) Capacity(name string) int {
	return r.rooms[name].Capacity
}

func (r *RoomRepository) List() []models.Room {
	rooms := make([]models.Room, 0, len(r.rooms))
	for _, room := range r.rooms {
		rooms = append(rooms, room)
	}
	sort.Slice(rooms, func(i, j int) bool {
		return rooms[i].Name < rooms[j].Name
	})
	return rooms
}
