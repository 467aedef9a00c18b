package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aylin/coursebook/internal/app/models"
	"github.com/aylin/coursebook/internal/app/models/dto"
	"github.com/aylin/coursebook/internal/pkg/apperrors"
)

// Stub services with overridable function fields. Unset fields succeed with
// zero values, so each test only wires the behavior it asserts on.

type stubStudentService struct {
	createFn func(ctx context.Context, student *models.Student) error
	getFn    func(ctx context.Context, id int64) (*models.Student, error)
	listFn   func(ctx context.Context, skip, limit int) ([]*models.Student, error)
	updateFn func(ctx context.Context, student *models.Student) error
	deleteFn func(ctx context.Context, id int64) error
}

func (s *stubStudentService) CreateStudent(ctx context.Context, student *models.Student) error {
	if s.createFn != nil {
		return s.createFn(ctx, student)
	}
	student.ID = 1
	return nil
}

func (s *stubStudentService) GetStudentByID(ctx context.Context, id int64) (*models.Student, error) {
	if s.getFn != nil {
		return s.getFn(ctx, id)
	}
	return &models.Student{ID: id, Name: "Ada Lovelace", Email: "ada@example.edu"}, nil
}

func (s *stubStudentService) GetAllStudents(ctx context.Context, skip, limit int) ([]*models.Student, error) {
	if s.listFn != nil {
		return s.listFn(ctx, skip, limit)
	}
	return []*models.Student{}, nil
}

func (s *stubStudentService) UpdateStudent(ctx context.Context, student *models.Student) error {
	if s.updateFn != nil {
		return s.updateFn(ctx, student)
	}
	return nil
}

func (s *stubStudentService) DeleteStudent(ctx context.Context, id int64) error {
	if s.deleteFn != nil {
		return s.deleteFn(ctx, id)
	}
	return nil
}

type stubGradeService struct {
	createFn          func(ctx context.Context, enrollmentID int64, marks float64) (*models.Grade, error)
	getByEnrollmentFn func(ctx context.Context, enrollmentID int64) (*models.Grade, error)
	updateFn          func(ctx context.Context, id int64, marks float64) (*models.Grade, error)
	deleteFn          func(ctx context.Context, id int64) error
}

func (s *stubGradeService) CreateGrade(ctx context.Context, enrollmentID int64, marks float64) (*models.Grade, error) {
	if s.createFn != nil {
		return s.createFn(ctx, enrollmentID, marks)
	}
	return &models.Grade{ID: 1, EnrollmentID: enrollmentID, Marks: marks, FinalGrade: "B"}, nil
}

func (s *stubGradeService) GetGradeByID(ctx context.Context, id int64) (*models.Grade, error) {
	return &models.Grade{ID: id, EnrollmentID: 1, Marks: 92, FinalGrade: "A"}, nil
}

func (s *stubGradeService) GetAllGrades(ctx context.Context, skip, limit int) ([]*models.Grade, error) {
	return []*models.Grade{}, nil
}

func (s *stubGradeService) GetGradeByEnrollment(ctx context.Context, enrollmentID int64) (*models.Grade, error) {
	if s.getByEnrollmentFn != nil {
		return s.getByEnrollmentFn(ctx, enrollmentID)
	}
	return &models.Grade{ID: 1, EnrollmentID: enrollmentID, Marks: 92, FinalGrade: "A"}, nil
}

func (s *stubGradeService) UpdateGrade(ctx context.Context, id int64, marks float64) (*models.Grade, error) {
	if s.updateFn != nil {
		return s.updateFn(ctx, id, marks)
	}
	return &models.Grade{ID: id, EnrollmentID: 1, Marks: marks, FinalGrade: "B"}, nil
}

func (s *stubGradeService) DeleteGrade(ctx context.Context, id int64) error {
	if s.deleteFn != nil {
		return s.deleteFn(ctx, id)
	}
	return nil
}

type stubEnrollmentService struct {
	createFn func(ctx context.Context, enrollment *models.Enrollment) error
	deleteFn func(ctx context.Context, id int64) error
}

func (s *stubEnrollmentService) CreateEnrollment(ctx context.Context, enrollment *models.Enrollment) error {
	if s.createFn != nil {
		return s.createFn(ctx, enrollment)
	}
	enrollment.ID = 1
	return nil
}

func (s *stubEnrollmentService) GetEnrollmentByID(ctx context.Context, id int64) (*models.Enrollment, error) {
	return &models.Enrollment{ID: id, StudentID: 1, CourseID: 1, EnrollmentDate: time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)}, nil
}

func (s *stubEnrollmentService) GetAllEnrollments(ctx context.Context, skip, limit int) ([]*models.Enrollment, error) {
	return []*models.Enrollment{}, nil
}

func (s *stubEnrollmentService) GetEnrollmentsByStudent(ctx context.Context, studentID int64) ([]*models.Enrollment, error) {
	return []*models.Enrollment{}, nil
}

func (s *stubEnrollmentService) GetEnrollmentsByCourse(ctx context.Context, courseID int64) ([]*models.Enrollment, error) {
	return []*models.Enrollment{}, nil
}

func (s *stubEnrollmentService) DeleteEnrollment(ctx context.Context, id int64) error {
	if s.deleteFn != nil {
		return s.deleteFn(ctx, id)
	}
	return nil
}

func init() {
	gin.SetMode(gin.TestMode)
}

func performRequest(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body == "" {
		reader = bytes.NewReader(nil)
	} else {
		reader = bytes.NewReader([]byte(body))
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func errorCode(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	body := decodeBody(t, w)
	errObj, ok := body["error"].(map[string]interface{})
	require.True(t, ok, "response has no error object: %s", w.Body.String())
	code, _ := errObj["code"].(string)
	return code
}

func studentRouter(svc *stubStudentService) *gin.Engine {
	router := gin.New()
	c := NewStudentController(svc)
	router.POST("/students", c.CreateStudent)
	router.GET("/students", c.GetAllStudents)
	router.GET("/students/:id", c.GetStudentByID)
	router.PUT("/students/:id", c.UpdateStudent)
	router.DELETE("/students/:id", c.DeleteStudent)
	return router
}

func gradeRouter(svc *stubGradeService) *gin.Engine {
	router := gin.New()
	c := NewGradeController(svc)
	router.POST("/grades", c.CreateGrade)
	router.GET("/grades/enrollment/:enrollmentId", c.GetGradeByEnrollment)
	router.PUT("/grades/:id", c.UpdateGrade)
	router.DELETE("/grades/:id", c.DeleteGrade)
	return router
}

func enrollmentRouter(svc *stubEnrollmentService) *gin.Engine {
	router := gin.New()
	c := NewEnrollmentController(svc)
	router.POST("/enrollments", c.CreateEnrollment)
	router.DELETE("/enrollments/:id", c.DeleteEnrollment)
	return router
}

func TestCreateStudentReturnsCreated(t *testing.T) {
	router := studentRouter(&stubStudentService{})

	w := performRequest(router, http.MethodPost, "/students", `{"name":"Ada Lovelace","email":"ada@example.edu"}`)

	assert.Equal(t, http.StatusCreated, w.Code)
	body := decodeBody(t, w)
	data := body["data"].(map[string]interface{})
	assert.Equal(t, "ada@example.edu", data["email"])
}

func TestCreateStudentMissingFields(t *testing.T) {
	router := studentRouter(&stubStudentService{})

	w := performRequest(router, http.MethodPost, "/students", `{"name":"Ada Lovelace"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, string(dto.ErrorCodeValidationFailed), errorCode(t, w))
}

func TestCreateStudentDuplicateEmail(t *testing.T) {
	router := studentRouter(&stubStudentService{
		createFn: func(_ context.Context, _ *models.Student) error {
			return apperrors.ErrEmailAlreadyExists
		},
	})

	w := performRequest(router, http.MethodPost, "/students", `{"name":"Ada","email":"ada@example.edu"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, string(dto.ErrorCodeResourceAlreadyExists), errorCode(t, w))
}

func TestGetStudentNotFound(t *testing.T) {
	router := studentRouter(&stubStudentService{
		getFn: func(_ context.Context, _ int64) (*models.Student, error) {
			return nil, apperrors.ErrStudentNotFound
		},
	})

	w := performRequest(router, http.MethodGet, "/students/42", "")

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, string(dto.ErrorCodeResourceNotFound), errorCode(t, w))
}

func TestGetStudentInvalidID(t *testing.T) {
	router := studentRouter(&stubStudentService{})

	w := performRequest(router, http.MethodGet, "/students/abc", "")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, string(dto.ErrorCodeValidationFailed), errorCode(t, w))
}

func TestDeleteStudentWithEnrollmentsConflicts(t *testing.T) {
	router := studentRouter(&stubStudentService{
		deleteFn: func(_ context.Context, _ int64) error {
			return apperrors.ErrStudentHasEnrollments
		},
	})

	w := performRequest(router, http.MethodDelete, "/students/1", "")

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, string(dto.ErrorCodeResourceConflict), errorCode(t, w))
}

func TestDeleteStudentStorageFailure(t *testing.T) {
	router := studentRouter(&stubStudentService{
		deleteFn: func(_ context.Context, _ int64) error {
			return apperrors.ErrDeleteFailed
		},
	})

	w := performRequest(router, http.MethodDelete, "/students/1", "")

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, string(dto.ErrorCodeDatabaseError), errorCode(t, w))
}

func TestCreateGradeReturnsDerivedLetter(t *testing.T) {
	router := gradeRouter(&stubGradeService{})

	w := performRequest(router, http.MethodPost, "/grades", `{"enrollment_id":1,"marks":85}`)

	assert.Equal(t, http.StatusCreated, w.Code)
	body := decodeBody(t, w)
	data := body["data"].(map[string]interface{})
	assert.Equal(t, "B", data["final_grade"])
}

// A literal zero for marks must pass required-field binding.
func TestCreateGradeZeroMarksBinds(t *testing.T) {
	var gotMarks float64 = -1
	router := gradeRouter(&stubGradeService{
		createFn: func(_ context.Context, enrollmentID int64, marks float64) (*models.Grade, error) {
			gotMarks = marks
			return &models.Grade{ID: 1, EnrollmentID: enrollmentID, Marks: marks, FinalGrade: "F"}, nil
		},
	})

	w := performRequest(router, http.MethodPost, "/grades", `{"enrollment_id":1,"marks":0}`)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, 0.0, gotMarks)
}

func TestCreateGradeMarksOutOfRange(t *testing.T) {
	router := gradeRouter(&stubGradeService{
		createFn: func(_ context.Context, _ int64, _ float64) (*models.Grade, error) {
			return nil, apperrors.ErrMarksOutOfRange
		},
	})

	w := performRequest(router, http.MethodPost, "/grades", `{"enrollment_id":1,"marks":150}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, string(dto.ErrorCodeValueOutOfRange), errorCode(t, w))
}

func TestCreateGradeMissingMarks(t *testing.T) {
	router := gradeRouter(&stubGradeService{})

	w := performRequest(router, http.MethodPost, "/grades", `{"enrollment_id":1}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, string(dto.ErrorCodeValidationFailed), errorCode(t, w))
}

func TestGetGradeByEnrollmentWithoutGrade(t *testing.T) {
	router := gradeRouter(&stubGradeService{
		getByEnrollmentFn: func(_ context.Context, _ int64) (*models.Grade, error) {
			return nil, apperrors.ErrGradeNotFoundForEnrollment
		},
	})

	w := performRequest(router, http.MethodGet, "/grades/enrollment/1", "")

	assert.Equal(t, http.StatusNotFound, w.Code)
	body := decodeBody(t, w)
	errObj := body["error"].(map[string]interface{})
	assert.Equal(t, "Grade not found for this enrollment", errObj["message"])
}

func TestCreateEnrollmentReturnsCreated(t *testing.T) {
	router := enrollmentRouter(&stubEnrollmentService{})

	w := performRequest(router, http.MethodPost, "/enrollments", `{"student_id":1,"course_id":2,"enrollment_date":"2026-01-15"}`)

	assert.Equal(t, http.StatusCreated, w.Code)
	body := decodeBody(t, w)
	data := body["data"].(map[string]interface{})
	assert.Equal(t, "2026-01-15", data["enrollment_date"])
}

func TestCreateEnrollmentBadDate(t *testing.T) {
	router := enrollmentRouter(&stubEnrollmentService{})

	w := performRequest(router, http.MethodPost, "/enrollments", `{"student_id":1,"course_id":2,"enrollment_date":"15/01/2026"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	body := decodeBody(t, w)
	errObj := body["error"].(map[string]interface{})
	assert.Equal(t, "enrollment_date", errObj["field"])
}

func TestCreateEnrollmentMissingStudent(t *testing.T) {
	router := enrollmentRouter(&stubEnrollmentService{
		createFn: func(_ context.Context, _ *models.Enrollment) error {
			return apperrors.ErrStudentNotFound
		},
	})

	w := performRequest(router, http.MethodPost, "/enrollments", `{"student_id":42,"course_id":2,"enrollment_date":"2026-01-15"}`)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, string(dto.ErrorCodeResourceNotFound), errorCode(t, w))
}

func TestCreateEnrollmentDuplicatePair(t *testing.T) {
	router := enrollmentRouter(&stubEnrollmentService{
		createFn: func(_ context.Context, _ *models.Enrollment) error {
			return apperrors.ErrAlreadyEnrolled
		},
	})

	w := performRequest(router, http.MethodPost, "/enrollments", `{"student_id":1,"course_id":2,"enrollment_date":"2026-01-15"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, string(dto.ErrorCodeResourceAlreadyExists), errorCode(t, w))
}

func TestDeleteEnrollmentWithGradeConflicts(t *testing.T) {
	router := enrollmentRouter(&stubEnrollmentService{
		deleteFn: func(_ context.Context, _ int64) error {
			return apperrors.ErrEnrollmentHasGrade
		},
	})

	w := performRequest(router, http.MethodDelete, "/enrollments/1", "")

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, string(dto.ErrorCodeResourceConflict), errorCode(t, w))
}
