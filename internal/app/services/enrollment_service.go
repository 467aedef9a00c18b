package services

import (
	"context"
	"fmt"

	"github.com/aylin/coursebook/internal/app/models"
	"github.com/aylin/coursebook/internal/pkg/apperrors"
)

// EnrollmentService handles enrollment-related operations. It sits above the
// student and course stores and never calls upward.
type EnrollmentService interface {
	CreateEnrollment(ctx context.Context, enrollment *models.Enrollment) error
	GetEnrollmentByID(ctx context.Context, id int64) (*models.Enrollment, error)
	GetAllEnrollments(ctx context.Context, skip, limit int) ([]*models.Enrollment, error)
	GetEnrollmentsByStudent(ctx context.Context, studentID int64) ([]*models.Enrollment, error)
	GetEnrollmentsByCourse(ctx context.Context, courseID int64) ([]*models.Enrollment, error)
	DeleteEnrollment(ctx context.Context, id int64) error
}

type enrollmentService struct {
	enrollments EnrollmentStore
	students    StudentStore
	courses     CourseStore
}

// NewEnrollmentService creates a new enrollment service instance
func NewEnrollmentService(enrollments EnrollmentStore, students StudentStore, courses CourseStore) EnrollmentService {
	return &enrollmentService{
		enrollments: enrollments,
		students:    students,
		courses:     courses,
	}
}

// CreateEnrollment creates a new enrollment. The three validations run in a
// fixed order and short-circuit: a missing student is reported even when the
// course is also missing or the pair would collide.
func (s *enrollmentService) CreateEnrollment(ctx context.Context, enrollment *models.Enrollment) error {
	student, err := s.students.GetByID(ctx, enrollment.StudentID)
	if err != nil {
		return fmt.Errorf("error checking student: %w", err)
	}
	if student == nil {
		return apperrors.ErrStudentNotFound
	}

	course, err := s.courses.GetByID(ctx, enrollment.CourseID)
	if err != nil {
		return fmt.Errorf("error checking course: %w", err)
	}
	if course == nil {
		return apperrors.ErrCourseNotFound
	}

	existing, err := s.enrollments.GetByStudentAndCourse(ctx, enrollment.StudentID, enrollment.CourseID)
	if err != nil {
		return fmt.Errorf("error checking existing enrollment: %w", err)
	}
	if existing != nil {
		return apperrors.ErrAlreadyEnrolled
	}

	return s.enrollments.Create(ctx, enrollment)
}

// GetEnrollmentByID retrieves an enrollment by ID
func (s *enrollmentService) GetEnrollmentByID(ctx context.Context, id int64) (*models.Enrollment, error) {
	enrollment, err := s.enrollments.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error retrieving enrollment: %w", err)
	}
	if enrollment == nil {
		return nil, apperrors.ErrEnrollmentNotFound
	}

	return enrollment, nil
}

// GetAllEnrollments retrieves a page of enrollments in storage order
func (s *enrollmentService) GetAllEnrollments(ctx context.Context, skip, limit int) ([]*models.Enrollment, error) {
	enrollments, err := s.enrollments.GetAll(ctx, skip, limit)
	if err != nil {
		return nil, fmt.Errorf("error listing enrollments: %w", err)
	}

	return enrollments, nil
}

// GetEnrollmentsByStudent returns all enrollments for a student after
// validating that the student exists. The result is unbounded.
func (s *enrollmentService) GetEnrollmentsByStudent(ctx context.Context, studentID int64) ([]*models.Enrollment, error) {
	student, err := s.students.GetByID(ctx, studentID)
	if err != nil {
		return nil, fmt.Errorf("error checking student: %w", err)
	}
	if student == nil {
		return nil, apperrors.ErrStudentNotFound
	}

	enrollments, err := s.enrollments.GetByStudent(ctx, studentID)
	if err != nil {
		return nil, fmt.Errorf("error listing enrollments by student: %w", err)
	}

	return enrollments, nil
}

// GetEnrollmentsByCourse returns all enrollments for a course after validating
// that the course exists.
func (s *enrollmentService) GetEnrollmentsByCourse(ctx context.Context, courseID int64) ([]*models.Enrollment, error) {
	course, err := s.courses.GetByID(ctx, courseID)
	if err != nil {
		return nil, fmt.Errorf("error checking course: %w", err)
	}
	if course == nil {
		return nil, apperrors.ErrCourseNotFound
	}

	enrollments, err := s.enrollments.GetByCourse(ctx, courseID)
	if err != nil {
		return nil, fmt.Errorf("error listing enrollments by course: %w", err)
	}

	return enrollments, nil
}

// DeleteEnrollment removes an enrollment. The delete is rejected while a grade
// is still attached, so no grade is ever orphaned.
func (s *enrollmentService) DeleteEnrollment(ctx context.Context, id int64) error {
	existing, err := s.enrollments.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("error retrieving enrollment: %w", err)
	}
	if existing == nil {
		return apperrors.ErrEnrollmentNotFound
	}

	hasGrade, err := s.enrollments.HasGrade(ctx, id)
	if err != nil {
		return fmt.Errorf("error checking enrollment grade: %w", err)
	}
	if hasGrade {
		return apperrors.ErrEnrollmentHasGrade
	}

	deleted, err := s.enrollments.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return apperrors.ErrDeleteFailed
	}

	return nil
}
