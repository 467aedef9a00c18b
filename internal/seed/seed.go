package seed

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	appModels "github.com/aylin/coursebook/internal/app/models"
	appRepos "github.com/aylin/coursebook/internal/app/repositories"
	"github.com/aylin/coursebook/internal/pkg/apperrors"
)

// CreateSampleData inserts a handful of students and courses for local
// development. Already-present rows are skipped, so re-running is safe.
func CreateSampleData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	studentRepo := appRepos.NewStudentRepository(dbPool)
	courseRepo := appRepos.NewCourseRepository(dbPool)

	lgr.Info().Msg("Checking/Creating sample data (Students/Courses)...")
	var finalErr error

	students := []*appModels.Student{
		{Name: "Ada Lovelace", Email: "ada.lovelace@example.edu"},
		{Name: "Alan Turing", Email: "alan.turing@example.edu"},
		{Name: "Grace Hopper", Email: "grace.hopper@example.edu"},
	}
	for _, s := range students {
		if err := studentRepo.Create(ctx, s); err != nil && !errors.Is(err, apperrors.ErrEmailAlreadyExists) {
			lgr.Error().Err(err).Str("email", s.Email).Msg("Error creating sample student")
			finalErr = errors.Join(finalErr, err)
		}
	}

	courses := []*appModels.Course{
		{CourseName: "Introduction to Programming", CourseCode: "CS101", Credits: 4},
		{CourseName: "Data Structures", CourseCode: "CS201", Credits: 4},
		{CourseName: "Linear Algebra", CourseCode: "MATH204", Credits: 3},
	}
	for _, c := range courses {
		if err := courseRepo.Create(ctx, c); err != nil && !errors.Is(err, apperrors.ErrCourseCodeAlreadyExists) {
			lgr.Error().Err(err).Str("code", c.CourseCode).Msg("Error creating sample course")
			finalErr = errors.Join(finalErr, err)
		}
	}

	if finalErr == nil {
		lgr.Info().Msg("Sample data check complete.")
	}
	return finalErr
}
