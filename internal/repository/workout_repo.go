package repository

import (
	"slices"
	"sort"

	"github.com/saeid-a/GymScheduleBack/internal/models"
)

type WorkoutRepository struct {
	workouts map[string]models.WorkoutClass
}

func NewWorkoutRepository() *WorkoutRepository {
	return &WorkoutRepository{workouts: make(map[string]models.WorkoutClass)}
}

func (r *WorkoutRepository) Add(workout models.WorkoutClass) bool {
	if _, exists := r.workouts[workout.Name]; exists {
		return false
	}
	workout.RequiredQualifications = slices.Clone(workout.RequiredQualifications)
	r.workouts[workout.Name] = workout
	return true
}

func (r *WorkoutRepository) GetByName(name string) (*models.WorkoutClass, error) {
	workout, ok := r.workouts[name]
	if !ok {
		return nil, ErrNotFound
	}
	workout.RequiredQualifications = slices.Clone(workout.RequiredQualifications)
	return &workout, nil
}

func (r *WorkoutRepository) List() []models.WorkoutClass {
	workouts := make([]models.WorkoutClass, 0, len(r.workouts))
	for _, workout := range r.workouts {
		workout.RequiredQualifications = slices.Clone(workout.RequiredQualifications)
		workouts = append(workouts, workout)
	}
	sort.Slice(workouts, func(i, j int) bool {
		return workouts[i].Name < workouts[j].Name
	})
	return workouts
}
