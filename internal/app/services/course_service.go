package services

import (
	"context"
	"fmt"

	"github.com/aylin/coursebook/internal/app/models"
	"github.com/aylin/coursebook/internal/pkg/apperrors"
)

// CourseService handles course-related operations
type CourseService interface {
	CreateCourse(ctx context.Context, course *models.Course) error
	GetCourseByID(ctx context.Context, id int64) (*models.Course, error)
	GetAllCourses(ctx context.Context, skip, limit int) ([]*models.Course, error)
	UpdateCourse(ctx context.Context, course *models.Course) error
	DeleteCourse(ctx context.Context, id int64) error
}

type courseService struct {
	courses CourseStore
}

// NewCourseService creates a new course service instance
func NewCourseService(courses CourseStore) CourseService {
	return &courseService{
		courses: courses,
	}
}

// CreateCourse creates a new course after checking course code uniqueness.
// Credits are copied through as given; the source system applies no
// positivity check and that behavior is preserved.
func (s *courseService) CreateCourse(ctx context.Context, course *models.Course) error {
	existing, err := s.courses.GetByCode(ctx, course.CourseCode)
	if err != nil {
		return fmt.Errorf("error checking course code: %w", err)
	}
	if existing != nil {
		return apperrors.ErrCourseCodeAlreadyExists
	}

	return s.courses.Create(ctx, course)
}

// GetCourseByID retrieves a course by ID
func (s *courseService) GetCourseByID(ctx context.Context, id int64) (*models.Course, error) {
	course, err := s.courses.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error retrieving course: %w", err)
	}
	if course == nil {
		return nil, apperrors.ErrCourseNotFound
	}

	return course, nil
}

// GetAllCourses retrieves a page of courses in storage order
func (s *courseService) GetAllCourses(ctx context.Context, skip, limit int) ([]*models.Course, error) {
	courses, err := s.courses.GetAll(ctx, skip, limit)
	if err != nil {
		return nil, fmt.Errorf("error listing courses: %w", err)
	}

	return courses, nil
}

// UpdateCourse overwrites the mutable fields of a course. Keeping the course's
// own code is not a collision; only a code owned by a different course is
// rejected.
func (s *courseService) UpdateCourse(ctx context.Context, course *models.Course) error {
	existing, err := s.courses.GetByID(ctx, course.ID)
	if err != nil {
		return fmt.Errorf("error retrieving course: %w", err)
	}
	if existing == nil {
		return apperrors.ErrCourseNotFound
	}

	taken, err := s.courses.CodeExistsForOther(ctx, course.CourseCode, course.ID)
	if err != nil {
		return fmt.Errorf("error checking course code: %w", err)
	}
	if taken {
		return apperrors.ErrCourseCodeAlreadyExists
	}

	return s.courses.Update(ctx, course)
}

// DeleteCourse removes a course. The delete is rejected while enrollments
// still reference the course, so no enrollment is ever orphaned.
func (s *courseService) DeleteCourse(ctx context.Context, id int64) error {
	existing, err := s.courses.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("error retrieving course: %w", err)
	}
	if existing == nil {
		return apperrors.ErrCourseNotFound
	}

	hasEnrollments, err := s.courses.HasEnrollments(ctx, id)
	if err != nil {
		return fmt.Errorf("error checking course enrollments: %w", err)
	}
	if hasEnrollments {
		return apperrors.ErrCourseHasEnrollments
	}

	deleted, err := s.courses.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return apperrors.ErrDeleteFailed
	}

	return nil
}
