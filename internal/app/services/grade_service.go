package services

import (
	"context"
	"fmt"

	"github.com/aylin/coursebook/internal/app/models"
	"github.com/aylin/coursebook/internal/pkg/apperrors"
)

// GradeService handles grade-related operations, including the derived letter
// grade. It sits above the enrollment store and never calls upward.
type GradeService interface {
	CreateGrade(ctx context.Context, enrollmentID int64, marks float64) (*models.Grade, error)
	GetGradeByID(ctx context.Context, id int64) (*models.Grade, error)
	GetAllGrades(ctx context.Context, skip, limit int) ([]*models.Grade, error)
	GetGradeByEnrollment(ctx context.Context, enrollmentID int64) (*models.Grade, error)
	UpdateGrade(ctx context.Context, id int64, marks float64) (*models.Grade, error)
	DeleteGrade(ctx context.Context, id int64) error
}

type gradeService struct {
	grades      GradeStore
	enrollments EnrollmentStore
}

// NewGradeService creates a new grade service instance
func NewGradeService(grades GradeStore, enrollments EnrollmentStore) GradeService {
	return &gradeService{
		grades:      grades,
		enrollments: enrollments,
	}
}

// calculateFinalGrade derives the letter grade from numeric marks.
// Band lower bounds are inclusive: 90 is an A, 89.999 a B, exactly 60 a D.
func calculateFinalGrade(marks float64) string {
	switch {
	case marks >= 90:
		return "A"
	case marks >= 80:
		return "B"
	case marks >= 70:
		return "C"
	case marks >= 60:
		return "D"
	default:
		return "F"
	}
}

func validMarks(marks float64) bool {
	return marks >= 0 && marks <= 100
}

// CreateGrade records a grade for an enrollment. The marks range is checked
// before any storage access, then the enrollment must exist, then the
// one-grade-per-enrollment rule applies. The stored letter is always computed
// from marks; nothing the caller supplies can override it.
func (s *gradeService) CreateGrade(ctx context.Context, enrollmentID int64, marks float64) (*models.Grade, error) {
	if !validMarks(marks) {
		return nil, apperrors.ErrMarksOutOfRange
	}

	enrollment, err := s.enrollments.GetByID(ctx, enrollmentID)
	if err != nil {
		return nil, fmt.Errorf("error checking enrollment: %w", err)
	}
	if enrollment == nil {
		return nil, apperrors.ErrEnrollmentNotFound
	}

	existing, err := s.grades.GetByEnrollmentID(ctx, enrollmentID)
	if err != nil {
		return nil, fmt.Errorf("error checking existing grade: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrGradeAlreadyExists
	}

	grade := &models.Grade{
		EnrollmentID: enrollmentID,
		Marks:        marks,
		FinalGrade:   calculateFinalGrade(marks),
	}

	if err := s.grades.Create(ctx, grade); err != nil {
		return nil, err
	}

	return grade, nil
}

// GetGradeByID retrieves a grade by ID
func (s *gradeService) GetGradeByID(ctx context.Context, id int64) (*models.Grade, error) {
	grade, err := s.grades.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error retrieving grade: %w", err)
	}
	if grade == nil {
		return nil, apperrors.ErrGradeNotFound
	}

	return grade, nil
}

// GetAllGrades retrieves a page of grades in storage order
func (s *gradeService) GetAllGrades(ctx context.Context, skip, limit int) ([]*models.Grade, error) {
	grades, err := s.grades.GetAll(ctx, skip, limit)
	if err != nil {
		return nil, fmt.Errorf("error listing grades: %w", err)
	}

	return grades, nil
}

// GetGradeByEnrollment returns the grade attached to an enrollment. A missing
// enrollment and a gradeless enrollment are distinct failures and keep
// distinct messages.
func (s *gradeService) GetGradeByEnrollment(ctx context.Context, enrollmentID int64) (*models.Grade, error) {
	enrollment, err := s.enrollments.GetByID(ctx, enrollmentID)
	if err != nil {
		return nil, fmt.Errorf("error checking enrollment: %w", err)
	}
	if enrollment == nil {
		return nil, apperrors.ErrEnrollmentNotFound
	}

	grade, err := s.grades.GetByEnrollmentID(ctx, enrollmentID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving grade by enrollment: %w", err)
	}
	if grade == nil {
		return nil, apperrors.ErrGradeNotFoundForEnrollment
	}

	return grade, nil
}

// UpdateGrade replaces the marks of a grade and recomputes the letter. The
// range check runs before the existence lookup, mirroring create.
func (s *gradeService) UpdateGrade(ctx context.Context, id int64, marks float64) (*models.Grade, error) {
	if !validMarks(marks) {
		return nil, apperrors.ErrMarksOutOfRange
	}

	grade, err := s.grades.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error retrieving grade: %w", err)
	}
	if grade == nil {
		return nil, apperrors.ErrGradeNotFound
	}

	grade.Marks = marks
	grade.FinalGrade = calculateFinalGrade(marks)

	if err := s.grades.Update(ctx, grade); err != nil {
		return nil, err
	}

	return grade, nil
}

// DeleteGrade removes a grade
func (s *gradeService) DeleteGrade(ctx context.Context, id int64) error {
	existing, err := s.grades.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("error retrieving grade: %w", err)
	}
	if existing == nil {
		return apperrors.ErrGradeNotFound
	}

	deleted, err := s.grades.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return apperrors.ErrDeleteFailed
	}

	return nil
}
