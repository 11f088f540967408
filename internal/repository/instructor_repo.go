package repository

import (
	"slices"
	"sort"

	"github.com/saeid-a/GymScheduleBack/internal/models"
)

type instructorRecord struct {
	id             int64
	name           string
	qualifications map[string]struct{}
}

type InstructorRepository struct {
	instructors map[int64]*instructorRecord
}

func NewInstructorRepository() *InstructorRepository {
	return &InstructorRepository{instructors: make(map[int64]*instructorRecord)}
}

// Add inserts the instructor unless its id is already taken.
func (r *InstructorRepository) Add(instructor models.Instructor) bool {
	if _, exists := r.instructors[instructor.ID]; exists {
		return false
	}

	record := &instructorRecord{
		id:             instructor.ID,
		name:           instructor.Name,
		qualifications: make(map[string]struct{}, len(instructor.Qualifications)),
	}
	for _, qualification := range instructor.Qualifications {
		record.qualifications[qualification] = struct{}{}
	}
	r.instructors[instructor.ID] = record
	return true
}

// AddQualification reports false when the instructor already holds it.
func (r *InstructorRepository) AddQualification(id int64, qualification string) (bool, error) {
	record, ok := r.instructors[id]
	if !ok {
		return false, ErrNotFound
	}
	if _, held := record.qualifications[qualification]; held {
		return false, nil
	}
	record.qualifications[qualification] = struct{}{}
	return true, nil
}

func (r *InstructorRepository) GetByID(id int64) (*models.Instructor, error) {
	record, ok := r.instructors[id]
	if !ok {
		return nil, ErrNotFound
	}
	instructor := record.toModel()
	return &instructor, nil
}

func (r *InstructorRepository) Exists(id int64) bool {
	_, ok := r.instructors[id]
	return ok
}

// IsQualified reports whether the instructor holds every required
// qualification. Unknown instructors are never qualified.
func (r *InstructorRepository) IsQualified(id int64, required []string) bool {
	record, ok := r.instructors[id]
	if !ok {
		return false
	}
	for _, qualification := range required {
		if _, held := record.qualifications[qualification]; !held {
			return false
		}
	}
	return true
}

func (r *InstructorRepository) QualificationCount(id int64) int {
	record, ok := r.instructors[id]
	if !ok {
		return 0
	}
	return len(record.qualifications)
}

// NameCount returns how many registered instructors use name.
func (r *InstructorRepository) NameCount(name string) int {
	count := 0
	for _, record := range r.instructors {
		if record.name == name {
			count++
		}
	}
	return count
}

// List returns every instructor ordered by id.
func (r *InstructorRepository) List() []models.Instructor {
	instructors := make([]models.Instructor, 0, len(r.instructors))
	for _, record := range r.instructors {
		instructors = append(instructors, record.toModel())
	}
	sort.Slice(instructors, func(i, j int) bool {
		return instructors[i].ID < instructors[j].ID
	})
	return instructors
}

func (r *instructorRecord) toModel() models.Instructor {
	qualifications := make([]string, 0, len(r.qualifications))
	for qualification := range r.qualifications {
		qualifications = append(qualifications, qualification)
	}
	slices.Sort(qualifications)
	return models.Instructor{
		ID:             r.id,
		Name:           r.name,
		Qualifications: qualifications,
	}
}
