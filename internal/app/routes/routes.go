package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/mert/unirecords/internal/app/controllers"
	"github.com/mert/unirecords/internal/app/models/dto"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	professorController *controllers.ProfessorController,
	studentController *controllers.StudentController,
	courseController *controllers.CourseController,
	enrollmentController *controllers.EnrollmentController,
	analyticsController *controllers.AnalyticsController,
) {
	// API version group
	v1 := router.Group("/api/v1")

	// Professor routes
	professors := v1.Group("/professors")
	{
		professors.POST("", professorController.CreateProfessor)
		professors.GET("", professorController.GetAllProfessors)
		professors.GET("/:id", professorController.GetProfessorByID)
		professors.PUT("/:id", professorController.UpdateProfessor)
		professors.DELETE("/:id", professorController.DeleteProfessor)
		professors.GET("/:id/courses", professorController.GetTeachingSchedule)
	}

	// Student routes
	students := v1.Group("/students")
	{
		students.POST("", studentController.CreateStudent)
		students.GET("", studentController.GetAllStudents)
		students.GET("/:id", studentController.GetStudentByID)
		students.PUT("/:id", studentController.UpdateStudent)
		students.DELETE("/:id", studentController.DeleteStudent)
		students.GET("/:id/courses", studentController.GetStudentCourses)
	}

	// Course routes
	courses := v1.Group("/courses")
	{
		courses.POST("", courseController.CreateCourse)
		courses.GET("", courseController.GetAllCourses)
		courses.GET("/:id", courseController.GetCourseByID)
		courses.PUT("/:id", courseController.UpdateCourse)
		courses.DELETE("/:id", courseController.DeleteCourse)
		courses.GET("/:id/students", courseController.GetCourseRoster)
	}

	// Enrollment routes - the enrollment is addressed by its
	// (student, course) pair, not by its own token
	enrollments := v1.Group("/enrollments")
	{
		enrollments.POST("", enrollmentController.Enroll)
		enrollments.GET("", enrollmentController.GetAllEnrollments)
		enrollments.PUT("/:studentId/:courseId/grade", enrollmentController.Grade)
		enrollments.DELETE("/:studentId/:courseId", enrollmentController.Drop)
	}

	// Analytics routes (derived, read-only)
	analytics := v1.Group("/analytics")
	{
		analytics.GET("/students/gpa-distribution", analyticsController.GetGPADistribution)
		analytics.GET("/courses/enrollment-stats", analyticsController.GetCourseEnrollmentStats)
	}

	// Health check endpoint (public)
	v1.GET("/health", func(c *gin.Context) {
		c.JSON(200, dto.APIResponse{
			Data: gin.H{"status": "ok"},
		})
	})
}
