package models

import "time"

// Enrollment links one student to one course. The (student_id, course_id) pair
// is unique: a student may not enroll in the same course twice.
type Enrollment struct {
	ID             int64     `json:"id" db:"id"`
	StudentID      int64     `json:"student_id" db:"student_id"`
	CourseID       int64     `json:"course_id" db:"course_id"`
	EnrollmentDate time.Time `json:"enrollment_date" db:"enrollment_date"`

	// Relations (populated when needed)
	Student *Student `json:"student,omitempty"`
	Course  *Course  `json:"course,omitempty"`
	Grade   *Grade   `json:"grade,omitempty"` // At most one grade per enrollment
}
