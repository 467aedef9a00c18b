package dto

import (
	"time"

	"github.com/aylin/coursebook/internal/app/models"
)

// EnrollmentDateLayout is the wire format for enrollment dates.
const EnrollmentDateLayout = "2006-01-02"

// CreateEnrollmentRequest represents enrollment creation data
type CreateEnrollmentRequest struct {
	StudentID      int64  `json:"student_id" binding:"required"`
	CourseID       int64  `json:"course_id" binding:"required"`
	EnrollmentDate string `json:"enrollment_date" binding:"required"` // YYYY-MM-DD
}

// ParseDate parses the enrollment date field.
func (r *CreateEnrollmentRequest) ParseDate() (time.Time, error) {
	return time.Parse(EnrollmentDateLayout, r.EnrollmentDate)
}

// EnrollmentResponse represents basic enrollment information
type EnrollmentResponse struct {
	ID             int64  `json:"id"`
	StudentID      int64  `json:"student_id"`
	CourseID       int64  `json:"course_id"`
	EnrollmentDate string `json:"enrollment_date"`
}

// FromEnrollment converts a models.Enrollment to an EnrollmentResponse
func FromEnrollment(enrollment *models.Enrollment) EnrollmentResponse {
	if enrollment == nil {
		return EnrollmentResponse{}
	}

	return EnrollmentResponse{
		ID:             enrollment.ID,
		StudentID:      enrollment.StudentID,
		CourseID:       enrollment.CourseID,
		EnrollmentDate: enrollment.EnrollmentDate.Format(EnrollmentDateLayout),
	}
}

// FromEnrollments converts a slice of enrollments to responses
func FromEnrollments(enrollments []*models.Enrollment) []EnrollmentResponse {
	responses := make([]EnrollmentResponse, 0, len(enrollments))
	for _, enrollment := range enrollments {
		responses = append(responses, FromEnrollment(enrollment))
	}
	return responses
}
