package student

import (
	"errors"

	"github.com/campuslite/campuslite/core"
)

const collection = "students"

var (
	// errors
	ErrNotFound    = errors.New("student not found")
	errNotAnImage  = errors.New("attachment is not an image")
	errImageTooBig = errors.New("image exceeds the size limit")
)

// Service is the only writer of the "students" collection. Every mutation is
// a full read-modify-write of the collection through the record store.
type Service struct {
	store *core.Store
}

func NewService(store *core.Store) *Service {
	return &Service{store: store}
}

// List returns the full collection snapshot in insertion order.
func (svc *Service) List() []Student {
	var students []Student
	svc.store.Read(collection, &students)
	return students
}

// Add validates the input, assigns a generated id and appends the student.
func (svc *Service) Add(ns NewStudent) (Student, error) {
	if err := ns.Validate(); err != nil {
		return Student{}, err
	}
	std := Student{
		ID:        generateID(),
		StudentID: ns.StudentID,
		Name:      ns.Name,
		Email:     ns.Email,
		Age:       ns.Age,
		Course:    ns.Course,
		Image:     ns.Image,
	}
	students := append(svc.List(), std)
	if err := svc.store.Write(collection, students); err != nil {
		return Student{}, err
	}
	return std, nil
}

// Update replaces all fields except the id. ErrNotFound is returned when no
// student has the given id; the collection is left untouched.
func (svc *Service) Update(id string, us UpdateStudent) (Student, error) {
	if err := us.Validate(); err != nil {
		return Student{}, err
	}
	students := svc.List()
	for i, std := range students {
		if std.ID != id {
			continue
		}
		students[i] = Student{
			ID:        id,
			StudentID: us.StudentID,
			Name:      us.Name,
			Email:     us.Email,
			Age:       us.Age,
			Course:    us.Course,
			Image:     us.Image,
		}
		if err := svc.store.Write(collection, students); err != nil {
			return Student{}, err
		}
		return students[i], nil
	}
	return Student{}, ErrNotFound
}

// Remove deletes the student with the given id and returns the new full list.
// Removing an unknown id is a no-op, not an error.
func (svc *Service) Remove(id string) ([]Student, error) {
	students := svc.List()
	filtered := make([]Student, 0, len(students))
	for _, std := range students {
		if std.ID != id {
			filtered = append(filtered, std)
		}
	}
	if err := svc.store.Write(collection, filtered); err != nil {
		return nil, err
	}
	return filtered, nil
}

// Get returns the student with the given id.
func (svc *Service) Get(id string) (Student, error) {
	for _, std := range svc.List() {
		if std.ID == id {
			return std, nil
		}
	}
	return Student{}, ErrNotFound
}
