package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/aylin/coursebook/internal/app/controllers"
	"github.com/aylin/coursebook/internal/app/models/dto"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	studentController *controllers.StudentController,
	courseController *controllers.CourseController,
	enrollmentController *controllers.EnrollmentController,
	gradeController *controllers.GradeController,
) {
	// API version group
	v1 := router.Group("/api/v1")

	// Student routes
	students := v1.Group("/students")
	{
		students.POST("", studentController.CreateStudent)
		students.GET("", studentController.GetAllStudents)
		students.GET("/:id", studentController.GetStudentByID)
		students.PUT("/:id", studentController.UpdateStudent)
		students.DELETE("/:id", studentController.DeleteStudent)
	}

	// Course routes
	courses := v1.Group("/courses")
	{
		courses.POST("", courseController.CreateCourse)
		courses.GET("", courseController.GetAllCourses)
		courses.GET("/:id", courseController.GetCourseByID)
		courses.PUT("/:id", courseController.UpdateCourse)
		courses.DELETE("/:id", courseController.DeleteCourse)
	}

	// Enrollment routes. The by-student and by-course listings validate the
	// referenced entity before scanning.
	enrollments := v1.Group("/enrollments")
	{
		enrollments.POST("", enrollmentController.CreateEnrollment)
		enrollments.GET("", enrollmentController.GetAllEnrollments)
		enrollments.GET("/student/:studentId", enrollmentController.GetEnrollmentsByStudent)
		enrollments.GET("/course/:courseId", enrollmentController.GetEnrollmentsByCourse)
		enrollments.GET("/:id", enrollmentController.GetEnrollmentByID)
		enrollments.DELETE("/:id", enrollmentController.DeleteEnrollment)
	}

	// Grade routes
	grades := v1.Group("/grades")
	{
		grades.POST("", gradeController.CreateGrade)
		grades.GET("", gradeController.GetAllGrades)
		grades.GET("/enrollment/:enrollmentId", gradeController.GetGradeByEnrollment)
		grades.GET("/:id", gradeController.GetGradeByID)
		grades.PUT("/:id", gradeController.UpdateGrade)
		grades.DELETE("/:id", gradeController.DeleteGrade)
	}

	// Health check endpoint (public)
	v1.GET("/health", func(c *gin.Context) {
		c.JSON(200, dto.APIResponse{
			Data: gin.H{"status": "ok"},
		})
	})
}
