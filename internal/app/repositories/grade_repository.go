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

// GradeRepository handles database operations for grades
type GradeRepository struct {
	db *pgxpool.Pool
}

// NewGradeRepository creates a new grade repository
func NewGradeRepository(db *pgxpool.Pool) *GradeRepository {
	return &GradeRepository{
		db: db,
	}
}

// Create inserts a new grade and fills in the generated ID.
// The unique index on grades.enrollment_id enforces one grade per enrollment
// even when two creates race past the fast-path check.
func (r *GradeRepository) Create(ctx context.Context, grade *models.Grade) error {
	query := `
		INSERT INTO grades (enrollment_id, marks, final_grade)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query, grade.EnrollmentID, grade.Marks, grade.FinalGrade).Scan(&grade.ID)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "grades_enrollment_id_key") {
			return apperrors.ErrGradeAlreadyExists
		}
		if dberrors.IsForeignKeyViolation(err, "grades_enrollment_id_fkey") {
			return apperrors.ErrEnrollmentNotFound
		}
		return fmt.Errorf("error creating grade: %w", err)
	}

	return nil
}

// GetByID retrieves a grade by ID. Returns (nil, nil) when no row matches.
func (r *GradeRepository) GetByID(ctx context.Context, id int64) (*models.Grade, error) {
	query := `
		SELECT id, enrollment_id, marks, final_grade
		FROM grades
		WHERE id = $1
	`

	var grade models.Grade
	err := r.db.QueryRow(ctx, query, id).Scan(
		&grade.ID,
		&grade.EnrollmentID,
		&grade.Marks,
		&grade.FinalGrade,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error retrieving grade: %w", err)
	}

	return &grade, nil
}

// GetByEnrollmentID retrieves the grade attached to an enrollment.
// Returns (nil, nil) when the enrollment has no grade.
func (r *GradeRepository) GetByEnrollmentID(ctx context.Context, enrollmentID int64) (*models.Grade, error) {
	query := `
		SELECT id, enrollment_id, marks, final_grade
		FROM grades
		WHERE enrollment_id = $1
	`

	var grade models.Grade
	err := r.db.QueryRow(ctx, query, enrollmentID).Scan(
		&grade.ID,
		&grade.EnrollmentID,
		&grade.Marks,
		&grade.FinalGrade,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error retrieving grade by enrollment: %w", err)
	}

	return &grade, nil
}

// GetAll retrieves a contiguous slice of grades in storage order
func (r *GradeRepository) GetAll(ctx context.Context, skip, limit int) ([]*models.Grade, error) {
	query := squirrel.Select("id", "enrollment_id", "marks", "final_grade").
		From("grades").
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
		return nil, fmt.Errorf("error listing grades: %w", err)
	}
	defer rows.Close()

	var grades []*models.Grade
	for rows.Next() {
		var grade models.Grade
		if err := rows.Scan(
			&grade.ID,
			&grade.EnrollmentID,
			&grade.Marks,
			&grade.FinalGrade,
		); err != nil {
			return nil, err
		}
		grades = append(grades, &grade)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return grades, nil
}

// Update overwrites marks and the recomputed letter on a located grade
func (r *GradeRepository) Update(ctx context.Context, grade *models.Grade) error {
	query := `
		UPDATE grades
		SET marks = $1, final_grade = $2
		WHERE id = $3
	`

	cmdTag, err := r.db.Exec(ctx, query, grade.Marks, grade.FinalGrade, grade.ID)
	if err != nil {
		return fmt.Errorf("error updating grade: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrGradeNotFound
	}

	return nil
}

// Delete removes a grade by ID, reporting whether a row was deleted
func (r *GradeRepository) Delete(ctx context.Context, id int64) (bool, error) {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM grades WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("error deleting grade: %w", err)
	}

	return cmdTag.RowsAffected() > 0, nil
}
