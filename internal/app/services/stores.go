package services

import (
	"context"

	"github.com/aylin/coursebook/internal/app/models"
)

// Store contracts consumed by the services. The pgx repositories satisfy them
// in production; tests substitute in-memory fakes. Point lookups return
// (nil, nil) when no record matches, so the services own the not-found
// decision and its message.

// StudentStore is the storage contract for students
type StudentStore interface {
	Create(ctx context.Context, student *models.Student) error
	GetByID(ctx context.Context, id int64) (*models.Student, error)
	GetByEmail(ctx context.Context, email string) (*models.Student, error)
	GetAll(ctx context.Context, skip, limit int) ([]*models.Student, error)
	EmailExistsForOther(ctx context.Context, email string, id int64) (bool, error)
	Update(ctx context.Context, student *models.Student) error
	HasEnrollments(ctx context.Context, id int64) (bool, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

// CourseStore is the storage contract for courses
type CourseStore interface {
	Create(ctx context.Context, course *models.Course) error
	GetByID(ctx context.Context, id int64) (*models.Course, error)
	GetByCode(ctx context.Context, code string) (*models.Course, error)
	GetAll(ctx context.Context, skip, limit int) ([]*models.Course, error)
	CodeExistsForOther(ctx context.Context, code string, id int64) (bool, error)
	Update(ctx context.Context, course *models.Course) error
	HasEnrollments(ctx context.Context, id int64) (bool, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

// EnrollmentStore is the storage contract for enrollments
type EnrollmentStore interface {
	Create(ctx context.Context, enrollment *models.Enrollment) error
	GetByID(ctx context.Context, id int64) (*models.Enrollment, error)
	GetByStudentAndCourse(ctx context.Context, studentID, courseID int64) (*models.Enrollment, error)
	GetAll(ctx context.Context, skip, limit int) ([]*models.Enrollment, error)
	GetByStudent(ctx context.Context, studentID int64) ([]*models.Enrollment, error)
	GetByCourse(ctx context.Context, courseID int64) ([]*models.Enrollment, error)
	HasGrade(ctx context.Context, id int64) (bool, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

// GradeStore is the storage contract for grades
type GradeStore interface {
	Create(ctx context.Context, grade *models.Grade) error
	GetByID(ctx context.Context, id int64) (*models.Grade, error)
	GetByEnrollmentID(ctx context.Context, enrollmentID int64) (*models.Grade, error)
	GetAll(ctx context.Context, skip, limit int) ([]*models.Grade, error)
	Update(ctx context.Context, grade *models.Grade) error
	Delete(ctx context.Context, id int64) (bool, error)
}
