package apperrors

import "errors"

// Not-found errors. Each entity kind keeps its own sentinel because sibling
// operations report distinct messages (a missing enrollment is not the same
// failure as a missing grade on an existing enrollment).
var (
	ErrStudentNotFound            = errors.New("student not found")
	ErrCourseNotFound             = errors.New("course not found")
	ErrEnrollmentNotFound         = errors.New("enrollment not found")
	ErrGradeNotFound              = errors.New("grade not found")
	ErrGradeNotFoundForEnrollment = errors.New("grade not found for this enrollment")
)

// Uniqueness violations
var (
	ErrEmailAlreadyExists      = errors.New("student with this email already exists")
	ErrCourseCodeAlreadyExists = errors.New("course with this code already exists")
	ErrAlreadyEnrolled         = errors.New("student is already enrolled in this course")
	ErrGradeAlreadyExists      = errors.New("grade already exists for this enrollment, use update instead")
)

// Validation errors
var (
	ErrMarksOutOfRange = errors.New("marks must be between 0 and 100")
)

// Conflict errors raised when a delete would leave dangling references behind.
var (
	ErrStudentHasEnrollments = errors.New("student has enrollments and cannot be deleted")
	ErrCourseHasEnrollments  = errors.New("course has enrollments and cannot be deleted")
	ErrEnrollmentHasGrade    = errors.New("enrollment has a grade and cannot be deleted")
)

// ErrDeleteFailed signals that a delete did not take effect even though the
// preceding existence check passed. Treated as unexpected, never retried.
var ErrDeleteFailed = errors.New("delete did not take effect")

// Is returns whether target or any error in errList matches err.
func Is(err, target error, errList ...error) bool {
	if errors.Is(err, target) {
		return true
	}

	for _, e := range errList {
		if errors.Is(err, e) {
			return true
		}
	}

	return false
}

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
	Details map[string]interface{}
}

// Error implements error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap interface
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewCustomError creates a CustomError with underlying error
func NewCustomError(err error, message string) *CustomError {
	return &CustomError{
		Err:     err,
		Message: message,
	}
}

// WithDetails adds context details to the error
func (e *CustomError) WithDetails(details map[string]interface{}) *CustomError {
	e.Details = details
	return e
}
