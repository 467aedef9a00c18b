package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/aylin/coursebook/internal/app/models"
	"github.com/aylin/coursebook/internal/app/models/dto"
	"github.com/aylin/coursebook/internal/app/services"
	"github.com/aylin/coursebook/internal/middleware"
	"github.com/aylin/coursebook/internal/pkg/helpers"
)

// EnrollmentController handles enrollment-related endpoints
type EnrollmentController struct {
	enrollmentService services.EnrollmentService
}

// NewEnrollmentController creates a new EnrollmentController
func NewEnrollmentController(enrollmentService services.EnrollmentService) *EnrollmentController {
	return &EnrollmentController{
		enrollmentService: enrollmentService,
	}
}

// CreateEnrollment enrolls a student in a course
// @Summary Create a new enrollment
// @Description Enrolls a student in a course; both must exist and the pair must not already be enrolled
// @Tags enrollments
// @Accept json
// @Produce json
// @Param request body dto.CreateEnrollmentRequest true "Enrollment information"
// @Success 201 {object} dto.APIResponse{data=dto.EnrollmentResponse} "Enrollment created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data or duplicate enrollment"
// @Failure 404 {object} dto.ErrorResponse "Student or course not found"
// @Router /enrollments [post]
func (c *EnrollmentController) CreateEnrollment(ctx *gin.Context) {
	var req dto.CreateEnrollmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid enrollment data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	date, err := req.ParseDate()
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid enrollment date")
		errorDetail = errorDetail.WithField("enrollment_date").
			WithDetails("enrollment_date must use the " + dto.EnrollmentDateLayout + " format")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	enrollment := models.Enrollment{
		StudentID:      req.StudentID,
		CourseID:       req.CourseID,
		EnrollmentDate: date,
	}

	if err := c.enrollmentService.CreateEnrollment(ctx, &enrollment); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      dto.FromEnrollment(&enrollment),
		Timestamp: time.Now(),
	})
}

// GetEnrollmentByID retrieves an enrollment by ID
// @Summary Get enrollment details
// @Tags enrollments
// @Produce json
// @Param id path int true "Enrollment ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=dto.EnrollmentResponse} "Enrollment retrieved successfully"
// @Failure 404 {object} dto.ErrorResponse "Enrollment not found"
// @Router /enrollments/{id} [get]
func (c *EnrollmentController) GetEnrollmentByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "enrollment ID")
	if !ok {
		return
	}

	enrollment, err := c.enrollmentService.GetEnrollmentByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.FromEnrollment(enrollment),
		Timestamp: time.Now(),
	})
}

// GetAllEnrollments retrieves a page of enrollments
// @Summary List enrollments
// @Tags enrollments
// @Produce json
// @Param skip query int false "Records to skip" default(0)
// @Param limit query int false "Maximum records to return" default(100)
// @Success 200 {object} dto.APIResponse{data=[]dto.EnrollmentResponse} "Enrollments retrieved successfully"
// @Router /enrollments [get]
func (c *EnrollmentController) GetAllEnrollments(ctx *gin.Context) {
	skip, limit := helpers.ParseSkipLimit(ctx)

	enrollments, err := c.enrollmentService.GetAllEnrollments(ctx, skip, limit)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.FromEnrollments(enrollments),
		Timestamp: time.Now(),
	})
}

// GetEnrollmentsByStudent lists all courses a student is enrolled in
// @Summary List enrollments for a student
// @Tags enrollments
// @Produce json
// @Param studentId path int true "Student ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=[]dto.EnrollmentResponse} "Enrollments retrieved successfully"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Router /enrollments/student/{studentId} [get]
func (c *EnrollmentController) GetEnrollmentsByStudent(ctx *gin.Context) {
	studentID, ok := parseIDParam(ctx, "studentId", "student ID")
	if !ok {
		return
	}

	enrollments, err := c.enrollmentService.GetEnrollmentsByStudent(ctx, studentID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.FromEnrollments(enrollments),
		Timestamp: time.Now(),
	})
}

// GetEnrollmentsByCourse lists all students enrolled in a course
// @Summary List enrollments for a course
// @Tags enrollments
// @Produce json
// @Param courseId path int true "Course ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=[]dto.EnrollmentResponse} "Enrollments retrieved successfully"
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Router /enrollments/course/{courseId} [get]
func (c *EnrollmentController) GetEnrollmentsByCourse(ctx *gin.Context) {
	courseID, ok := parseIDParam(ctx, "courseId", "course ID")
	if !ok {
		return
	}

	enrollments, err := c.enrollmentService.GetEnrollmentsByCourse(ctx, courseID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.FromEnrollments(enrollments),
		Timestamp: time.Now(),
	})
}

// DeleteEnrollment removes an enrollment
// @Summary Delete an enrollment
// @Tags enrollments
// @Produce json
// @Param id path int true "Enrollment ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse "Enrollment deleted successfully"
// @Failure 404 {object} dto.ErrorResponse "Enrollment not found"
// @Failure 409 {object} dto.ErrorResponse "Enrollment still has a grade"
// @Router /enrollments/{id} [delete]
func (c *EnrollmentController) DeleteEnrollment(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "enrollment ID")
	if !ok {
		return
	}

	if err := c.enrollmentService.DeleteEnrollment(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "Enrollment deleted successfully"},
		Timestamp: time.Now(),
	})
}
