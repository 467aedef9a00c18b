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

// CourseRepository handles database operations for courses
type CourseRepository struct {
	db *pgxpool.Pool
}

// NewCourseRepository creates a new course repository
func NewCourseRepository(db *pgxpool.Pool) *CourseRepository {
	return &CourseRepository{
		db: db,
	}
}

// Create inserts a new course and fills in the generated ID.
// The unique index on courses.course_code is the authoritative duplicate guard.
func (r *CourseRepository) Create(ctx context.Context, course *models.Course) error {
	query := `
		INSERT INTO courses (course_name, course_code, credits)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query, course.CourseName, course.CourseCode, course.Credits).Scan(&course.ID)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "courses_course_code_key") {
			return apperrors.ErrCourseCodeAlreadyExists
		}
		return fmt.Errorf("error creating course: %w", err)
	}

	return nil
}

// GetByID retrieves a course by ID. Returns (nil, nil) when no row matches.
func (r *CourseRepository) GetByID(ctx context.Context, id int64) (*models.Course, error) {
	query := `
		SELECT id, course_name, course_code, credits
		FROM courses
		WHERE id = $1
	`

	var course models.Course
	err := r.db.QueryRow(ctx, query, id).Scan(
		&course.ID,
		&course.CourseName,
		&course.CourseCode,
		&course.Credits,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error retrieving course: %w", err)
	}

	return &course, nil
}

// GetByCode retrieves a course by the unique course code. Returns (nil, nil)
// when no row matches.
func (r *CourseRepository) GetByCode(ctx context.Context, code string) (*models.Course, error) {
	query := `
		SELECT id, course_name, course_code, credits
		FROM courses
		WHERE course_code = $1
	`

	var course models.Course
	err := r.db.QueryRow(ctx, query, code).Scan(
		&course.ID,
		&course.CourseName,
		&course.CourseCode,
		&course.Credits,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error retrieving course by code: %w", err)
	}

	return &course, nil
}

// GetAll retrieves a contiguous slice of courses in storage order
func (r *CourseRepository) GetAll(ctx context.Context, skip, limit int) ([]*models.Course, error) {
	query := squirrel.Select("id", "course_name", "course_code", "credits").
		From("courses").
		OrderBy("id").
		Offset(uint64(skip)).
		Limit(uint64(limit)).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing courses: %w", err)
	}
	defer rows.Close()

	var courses []*models.Course
	for rows.Next() {
		var course models.Course
		if err := rows.Scan(
			&course.ID,
			&course.CourseName,
			&course.CourseCode,
			&course.Credits,
		); err != nil {
			return nil, err
		}
		courses = append(courses, &course)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return courses, nil
}

// CodeExistsForOther checks if the course code is owned by a course other than
// the given one, so an update keeping its own code is not a collision.
func (r *CourseRepository) CodeExistsForOther(ctx context.Context, code string, id int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM courses WHERE course_code = $1 AND id != $2)`,
		code, id).Scan(&exists)

	if err != nil {
		return false, fmt.Errorf("error checking course code uniqueness: %w", err)
	}

	return exists, nil
}

// Update overwrites the mutable fields of a course
func (r *CourseRepository) Update(ctx context.Context, course *models.Course) error {
	query := `
		UPDATE courses
		SET course_name = $1, course_code = $2, credits = $3
		WHERE id = $4
	`

	cmdTag, err := r.db.Exec(ctx, query, course.CourseName, course.CourseCode, course.Credits, course.ID)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "courses_course_code_key") {
			return apperrors.ErrCourseCodeAlreadyExists
		}
		return fmt.Errorf("error updating course: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrCourseNotFound
	}

	return nil
}

// HasEnrollments checks whether any enrollment still references the course
func (r *CourseRepository) HasEnrollments(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM enrollments WHERE course_id = $1)`,
		id).Scan(&exists)

	if err != nil {
		return false, fmt.Errorf("error checking course enrollments: %w", err)
	}

	return exists, nil
}

// Delete removes a course by ID, reporting whether a row was deleted
func (r *CourseRepository) Delete(ctx context.Context, id int64) (bool, error) {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM courses WHERE id = $1`, id)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err, "enrollments_course_id_fkey") {
			return false, apperrors.ErrCourseHasEnrollments
		}
		return false, fmt.Errorf("error deleting course: %w", err)
	}

	return cmdTag.RowsAffected() > 0, nil
}
