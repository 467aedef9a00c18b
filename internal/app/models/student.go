package models

// Student defines the student model based on the 'students' table
type Student struct {
	ID    int64  `json:"id" db:"id" example:"1"`                     // Unique identifier for the student record
	Name  string `json:"name" db:"name" example:"Ann Veal"`          // Student's full name
	Email string `json:"email" db:"email" example:"ann@example.com"` // Unique across all students

	// Relations (populated when needed)
	Enrollments []*Enrollment `json:"enrollments,omitempty"`
}
