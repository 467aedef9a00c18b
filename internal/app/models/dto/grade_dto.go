package dto

// CreateGradeRequest represents grade creation data. Marks is a pointer so that
// a literal 0 still passes the required-field binding. FinalGrade is accepted
// for wire compatibility but ignored: the stored letter is always recomputed
// from marks.
type CreateGradeRequest struct {
	EnrollmentID int64    `json:"enrollment_id" binding:"required"`
	Marks        *float64 `json:"marks" binding:"required"`
	FinalGrade   string   `json:"final_grade,omitempty"`
}

// UpdateGradeRequest represents grade update data
type UpdateGradeRequest struct {
	Marks      *float64 `json:"marks" binding:"required"`
	FinalGrade string   `json:"final_grade,omitempty"`
}

// GradeResponse represents basic grade information
type GradeResponse struct {
	ID           int64   `json:"id"`
	EnrollmentID int64   `json:"enrollment_id"`
	Marks        float64 `json:"marks"`
	FinalGrade   string  `json:"final_grade"`
}
