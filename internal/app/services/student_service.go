package services

import (
	"context"
	"fmt"

	"github.com/aylin/coursebook/internal/app/models"
	"github.com/aylin/coursebook/internal/pkg/apperrors"
)

// StudentService handles student-related operations
type StudentService interface {
	CreateStudent(ctx context.Context, student *models.Student) error
	GetStudentByID(ctx context.Context, id int64) (*models.Student, error)
	GetAllStudents(ctx context.Context, skip, limit int) ([]*models.Student, error)
	UpdateStudent(ctx context.Context, student *models.Student) error
	DeleteStudent(ctx context.Context, id int64) error
}

type studentService struct {
	students StudentStore
}

// NewStudentService creates a new student service instance
func NewStudentService(students StudentStore) StudentService {
	return &studentService{
		students: students,
	}
}

// CreateStudent creates a new student after checking email uniqueness.
// The check is the fast path with the friendlier message; the unique index on
// students.email remains the authoritative guard underneath.
func (s *studentService) CreateStudent(ctx context.Context, student *models.Student) error {
	existing, err := s.students.GetByEmail(ctx, student.Email)
	if err != nil {
		return fmt.Errorf("error checking student email: %w", err)
	}
	if existing != nil {
		return apperrors.ErrEmailAlreadyExists
	}

	return s.students.Create(ctx, student)
}

// GetStudentByID retrieves a student by ID
func (s *studentService) GetStudentByID(ctx context.Context, id int64) (*models.Student, error) {
	student, err := s.students.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error retrieving student: %w", err)
	}
	if student == nil {
		return nil, apperrors.ErrStudentNotFound
	}

	return student, nil
}

// GetAllStudents retrieves a page of students in storage order
func (s *studentService) GetAllStudents(ctx context.Context, skip, limit int) ([]*models.Student, error) {
	students, err := s.students.GetAll(ctx, skip, limit)
	if err != nil {
		return nil, fmt.Errorf("error listing students: %w", err)
	}

	return students, nil
}

// UpdateStudent overwrites the mutable fields of a student. Updating a student
// to its own current email is not a collision; only an email owned by a
// different student is rejected.
func (s *studentService) UpdateStudent(ctx context.Context, student *models.Student) error {
	existing, err := s.students.GetByID(ctx, student.ID)
	if err != nil {
		return fmt.Errorf("error retrieving student: %w", err)
	}
	if existing == nil {
		return apperrors.ErrStudentNotFound
	}

	taken, err := s.students.EmailExistsForOther(ctx, student.Email, student.ID)
	if err != nil {
		return fmt.Errorf("error checking student email: %w", err)
	}
	if taken {
		return apperrors.ErrEmailAlreadyExists
	}

	return s.students.Update(ctx, student)
}

// DeleteStudent removes a student. The delete is rejected while enrollments
// still reference the student, so no enrollment is ever orphaned.
func (s *studentService) DeleteStudent(ctx context.Context, id int64) error {
	existing, err := s.students.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("error retrieving student: %w", err)
	}
	if existing == nil {
		return apperrors.ErrStudentNotFound
	}

	hasEnrollments, err := s.students.HasEnrollments(ctx, id)
	if err != nil {
		return fmt.Errorf("error checking student enrollments: %w", err)
	}
	if hasEnrollments {
		return apperrors.ErrStudentHasEnrollments
	}

	deleted, err := s.students.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return apperrors.ErrDeleteFailed
	}

	return nil
}
