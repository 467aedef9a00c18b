package models

// Grade stores the marks recorded for a single enrollment. FinalGrade is derived
// from Marks and never supplied by the caller.
type Grade struct {
	ID           int64   `json:"id" db:"id"`
	EnrollmentID int64   `json:"enrollment_id" db:"enrollment_id"`
	Marks        float64 `json:"marks" db:"marks"` // Constrained to [0, 100]
	FinalGrade   string  `json:"final_grade" db:"final_grade"`

	// Relations (populated when needed)
	Enrollment *Enrollment `json:"enrollment,omitempty"`
}
