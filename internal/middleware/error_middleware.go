package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/aylin/coursebook/internal/app/models/dto"
	"github.com/aylin/coursebook/internal/pkg/apperrors"
)

// HandleAPIError translates service errors into HTTP responses. Controllers
// never pick status codes themselves; every failure funnels through here so
// the taxonomy maps consistently: not-found → 404, duplicate key and marks
// range → 400, delete-would-orphan conflicts → 409, the rest → 500.
func HandleAPIError(c *gin.Context, err error) {
	switch {
	case apperrors.Is(err, apperrors.ErrStudentNotFound,
		apperrors.ErrCourseNotFound,
		apperrors.ErrEnrollmentNotFound,
		apperrors.ErrGradeNotFound,
		apperrors.ErrGradeNotFoundForEnrollment):
		c.JSON(http.StatusNotFound, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, capitalize(err.Error())),
		})

	case apperrors.Is(err, apperrors.ErrEmailAlreadyExists,
		apperrors.ErrCourseCodeAlreadyExists,
		apperrors.ErrAlreadyEnrolled,
		apperrors.ErrGradeAlreadyExists):
		c.JSON(http.StatusBadRequest, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeResourceAlreadyExists, capitalize(err.Error())),
		})

	case errors.Is(err, apperrors.ErrMarksOutOfRange):
		c.JSON(http.StatusBadRequest, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeValueOutOfRange, "Marks must be between 0 and 100").
				WithField("marks"),
		})

	case apperrors.Is(err, apperrors.ErrStudentHasEnrollments,
		apperrors.ErrCourseHasEnrollments,
		apperrors.ErrEnrollmentHasGrade):
		c.JSON(http.StatusConflict, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeResourceConflict, capitalize(err.Error())),
		})

	case errors.Is(err, apperrors.ErrDeleteFailed):
		c.JSON(http.StatusInternalServerError, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeDatabaseError, "Failed to delete record"),
		})

	default:
		c.JSON(http.StatusInternalServerError, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error"),
		})
	}
}

// capitalize upper-cases the first byte of an ASCII sentinel message for the
// response body ("student not found" → "Student not found").
func capitalize(s string) string {
	if s == "" {
		return s
	}
	if s[0] >= 'a' && s[0] <= 'z' {
		return string(s[0]-'a'+'A') + s[1:]
	}
	return s
}
