package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/aylin/coursebook/internal/app/models/dto"
	"github.com/aylin/coursebook/internal/app/services"
	"github.com/aylin/coursebook/internal/middleware"
	"github.com/aylin/coursebook/internal/pkg/helpers"
)

// GradeController handles grade-related endpoints
type GradeController struct {
	gradeService services.GradeService
}

// NewGradeController creates a new GradeController
func NewGradeController(gradeService services.GradeService) *GradeController {
	return &GradeController{
		gradeService: gradeService,
	}
}

// CreateGrade records a grade for an enrollment
// @Summary Create a new grade
// @Description Records marks for an enrollment; the letter grade is derived from marks, any supplied final_grade is ignored
// @Tags grades
// @Accept json
// @Produce json
// @Param request body dto.CreateGradeRequest true "Grade information"
// @Success 201 {object} dto.APIResponse{data=dto.GradeResponse} "Grade created successfully"
// @Failure 400 {object} dto.ErrorResponse "Marks out of range or grade already exists"
// @Failure 404 {object} dto.ErrorResponse "Enrollment not found"
// @Router /grades [post]
func (c *GradeController) CreateGrade(ctx *gin.Context) {
	var req dto.CreateGradeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid grade data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	grade, err := c.gradeService.CreateGrade(ctx, req.EnrollmentID, *req.Marks)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      grade,
		Timestamp: time.Now(),
	})
}

// GetGradeByID retrieves a grade by ID
// @Summary Get grade details
// @Tags grades
// @Produce json
// @Param id path int true "Grade ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=dto.GradeResponse} "Grade retrieved successfully"
// @Failure 404 {object} dto.ErrorResponse "Grade not found"
// @Router /grades/{id} [get]
func (c *GradeController) GetGradeByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "grade ID")
	if !ok {
		return
	}

	grade, err := c.gradeService.GetGradeByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      grade,
		Timestamp: time.Now(),
	})
}

// GetAllGrades retrieves a page of grades
// @Summary List grades
// @Tags grades
// @Produce json
// @Param skip query int false "Records to skip" default(0)
// @Param limit query int false "Maximum records to return" default(100)
// @Success 200 {object} dto.APIResponse{data=[]dto.GradeResponse} "Grades retrieved successfully"
// @Router /grades [get]
func (c *GradeController) GetAllGrades(ctx *gin.Context) {
	skip, limit := helpers.ParseSkipLimit(ctx)

	grades, err := c.gradeService.GetAllGrades(ctx, skip, limit)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      grades,
		Timestamp: time.Now(),
	})
}

// GetGradeByEnrollment retrieves the grade attached to an enrollment
// @Summary Get the grade for an enrollment
// @Description A missing enrollment and an enrollment without a grade are reported as distinct not-found conditions
// @Tags grades
// @Produce json
// @Param enrollmentId path int true "Enrollment ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=dto.GradeResponse} "Grade retrieved successfully"
// @Failure 404 {object} dto.ErrorResponse "Enrollment not found, or no grade for this enrollment"
// @Router /grades/enrollment/{enrollmentId} [get]
func (c *GradeController) GetGradeByEnrollment(ctx *gin.Context) {
	enrollmentID, ok := parseIDParam(ctx, "enrollmentId", "enrollment ID")
	if !ok {
		return
	}

	grade, err := c.gradeService.GetGradeByEnrollment(ctx, enrollmentID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      grade,
		Timestamp: time.Now(),
	})
}

// UpdateGrade replaces the marks of a grade and recomputes the letter
// @Summary Update a grade
// @Tags grades
// @Accept json
// @Produce json
// @Param id path int true "Grade ID" Format(int64) minimum(1)
// @Param request body dto.UpdateGradeRequest true "Updated grade information"
// @Success 200 {object} dto.APIResponse{data=dto.GradeResponse} "Grade updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Marks out of range"
// @Failure 404 {object} dto.ErrorResponse "Grade not found"
// @Router /grades/{id} [put]
func (c *GradeController) UpdateGrade(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "grade ID")
	if !ok {
		return
	}

	var req dto.UpdateGradeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid grade data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	grade, err := c.gradeService.UpdateGrade(ctx, id, *req.Marks)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      grade,
		Timestamp: time.Now(),
	})
}

// DeleteGrade removes a grade
// @Summary Delete a grade
// @Tags grades
// @Produce json
// @Param id path int true "Grade ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse "Grade deleted successfully"
// @Failure 404 {object} dto.ErrorResponse "Grade not found"
// @Router /grades/{id} [delete]
func (c *GradeController) DeleteGrade(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "grade ID")
	if !ok {
		return
	}

	if err := c.gradeService.DeleteGrade(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "Grade deleted successfully"},
		Timestamp: time.Now(),
	})
}
