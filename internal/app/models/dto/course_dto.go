package dto

// CreateCourseRequest represents course creation data. Credits is a pointer so
// that a zero credit count still passes the required-field binding; the value
// itself is accepted without further validation.
type CreateCourseRequest struct {
	CourseName string `json:"course_name" binding:"required"`
	CourseCode string `json:"course_code" binding:"required"`
	Credits    *int   `json:"credits" binding:"required"`
}

// UpdateCourseRequest represents course update data
type UpdateCourseRequest struct {
	CourseName string `json:"course_name" binding:"required"`
	CourseCode string `json:"course_code" binding:"required"`
	Credits    *int   `json:"credits" binding:"required"`
}

// CourseResponse represents basic course information
type CourseResponse struct {
	ID         int64  `json:"id"`
	CourseName string `json:"course_name"`
	CourseCode string `json:"course_code"`
	Credits    int    `json:"credits"`
}
