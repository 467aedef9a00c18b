package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/aylin/coursebook/internal/app/models"
	"github.com/aylin/coursebook/internal/pkg/apperrors"
	"github.com/aylin/coursebook/internal/pkg/dberrors"
)

// EnrollmentRepository handles database operations for enrollments
type EnrollmentRepository struct {
	db *pgxpool.Pool
}

// NewEnrollmentRepository creates a new enrollment repository
func NewEnrollmentRepository(db *pgxpool.Pool) *EnrollmentRepository {
	return &EnrollmentRepository{
		db: db,
	}
}

// Create inserts a new enrollment and fills in the generated ID.
// The unique index on (student_id, course_id) is the authoritative guard
// against double enrollment when two creates race past the fast-path check.
func (r *EnrollmentRepository) Create(ctx context.Context, enrollment *models.Enrollment) error {
	query := `
		INSERT INTO enrollments (student_id, course_id, enrollment_date)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		enrollment.StudentID, enrollment.CourseID, enrollment.EnrollmentDate).Scan(&enrollment.ID)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "enrollments_student_id_course_id_key") {
			return apperrors.ErrAlreadyEnrolled
		}
		if dberrors.IsForeignKeyViolation(err, "enrollments_student_id_fkey") {
			return apperrors.ErrStudentNotFound
		}
		if dberrors.IsForeignKeyViolation(err, "enrollments_course_id_fkey") {
			return apperrors.ErrCourseNotFound
		}
		return fmt.Errorf("error creating enrollment: %w", err)
	}

	return nil
}

// GetByID retrieves an enrollment by ID. Returns (nil, nil) when no row matches.
func (r *EnrollmentRepository) GetByID(ctx context.Context, id int64) (*models.Enrollment, error) {
	query := `
		SELECT id, student_id, course_id, enrollment_date
		FROM enrollments
		WHERE id = $1
	`

	var enrollment models.Enrollment
	err := r.db.QueryRow(ctx, query, id).Scan(
		&enrollment.ID,
		&enrollment.StudentID,
		&enrollment.CourseID,
		&enrollment.EnrollmentDate,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error retrieving enrollment: %w", err)
	}

	return &enrollment, nil
}

// GetByStudentAndCourse retrieves the enrollment for an exact (student, course)
// pair. Returns (nil, nil) when the pair is not enrolled.
func (r *EnrollmentRepository) GetByStudentAndCourse(ctx context.Context, studentID, courseID int64) (*models.Enrollment, error) {
	query := `
		SELECT id, student_id, course_id, enrollment_date
		FROM enrollments
		WHERE student_id = $1 AND course_id = $2
	`

	var enrollment models.Enrollment
	err := r.db.QueryRow(ctx, query, studentID, courseID).Scan(
		&enrollment.ID,
		&enrollment.StudentID,
		&enrollment.CourseID,
		&enrollment.EnrollmentDate,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error retrieving enrollment by pair: %w", err)
	}

	return &enrollment, nil
}

// GetAll retrieves a contiguous slice of enrollments in storage order
func (r *EnrollmentRepository) GetAll(ctx context.Context, skip, limit int) ([]*models.Enrollment, error) {
	query := squirrel.Select("id", "student_id", "course_id", "enrollment_date").
		From("enrollments").
		OrderBy("id").
		Offset(uint64(skip)).
		Limit(uint64(limit)).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	return r.scanEnrollments(ctx, sql, args...)
}

// GetByStudent retrieves all enrollments for a student, unbounded
func (r *EnrollmentRepository) GetByStudent(ctx context.Context, studentID int64) ([]*models.Enrollment, error) {
	query := `
		SELECT id, student_id, course_id, enrollment_date
		FROM enrollments
		WHERE student_id = $1
		ORDER BY id
	`

	return r.scanEnrollments(ctx, query, studentID)
}

// GetByCourse retrieves all enrollments for a course, unbounded
func (r *EnrollmentRepository) GetByCourse(ctx context.Context, courseID int64) ([]*models.Enrollment, error) {
	query := `
		SELECT id, student_id, course_id, enrollment_date
		FROM enrollments
		WHERE course_id = $1
		ORDER BY id
	`

	return r.scanEnrollments(ctx, query, courseID)
}

func (r *EnrollmentRepository) scanEnrollments(ctx context.Context, sql string, args ...interface{}) ([]*models.Enrollment, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing enrollments: %w", err)
	}
	defer rows.Close()

	var enrollments []*models.Enrollment
	for rows.Next() {
		var enrollment models.Enrollment
		if err := rows.Scan(
			&enrollment.ID,
			&enrollment.StudentID,
			&enrollment.CourseID,
			&enrollment.EnrollmentDate,
		); err != nil {
			return nil, err
		}
		enrollments = append(enrollments, &enrollment)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return enrollments, nil
}

// HasGrade checks whether a grade still references the enrollment
func (r *EnrollmentRepository) HasGrade(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM grades WHERE enrollment_id = $1)`,
		id).Scan(&exists)

	if err != nil {
		return false, fmt.Errorf("error checking enrollment grade: %w", err)
	}

	return exists, nil
}

// Delete removes an enrollment by ID, reporting whether a row was deleted
func (r *EnrollmentRepository) Delete(ctx context.Context, id int64) (bool, error) {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM enrollments WHERE id = $1`, id)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err, "grades_enrollment_id_fkey") {
			return false, apperrors.ErrEnrollmentHasGrade
		}
		return false, fmt.Errorf("error deleting enrollment: %w", err)
	}

	return cmdTag.RowsAffected() > 0, nil
}
