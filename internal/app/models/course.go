package models

// Course represents a course offered for enrollment.
type Course struct {
	ID         int64  `json:"id" db:"id"`
	CourseName string `json:"course_name" db:"course_name"`
	CourseCode string `json:"course_code" db:"course_code"` // Unique across all courses
	Credits    int    `json:"credits" db:"credits"`

	// Relations (populated when needed)
	Enrollments []*Enrollment `json:"enrollments,omitempty"`
}
