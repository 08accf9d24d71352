package app

import (
	"eduhub_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers) {
	router.GET("/metrics", monitoring.PrometheusHandler())
	router.GET("/health", c.health.HealthCheck)

	api := router.Group("/api")
	{
		users := api.Group("/users")
		{
			users.POST("/students", c.user.RegisterStudent)
			users.GET("/students/active", c.user.ActiveStudents)
			users.GET("/recent", c.user.RecentlyJoined)
			users.GET("/:userId", c.user.GetUser)
			users.PUT("/:userId/profile", c.user.UpdateProfile)
			users.DELETE("/:userId", c.user.Deactivate)
		}

		courses := api.Group("/courses")
		{
			courses.POST("", c.course.CreateCourse)
			courses.GET("", c.course.ListCourses)
			courses.GET("/search", c.course.Search)
			courses.GET("/:courseId", c.course.CourseDetail)
			courses.GET("/:courseId/students", c.course.EnrolledStudents)
			courses.PUT("/:courseId/publish", c.course.Publish)
			courses.POST("/:courseId/tags", c.course.AddTags)
			courses.GET("/:courseId/lessons", c.lesson.ByCourse)
			courses.POST("/:courseId/lessons", c.lesson.AddLesson)
			courses.GET("/:courseId/assignments", c.submission.AssignmentsByCourse)
		}

		api.DELETE("/lessons/:lessonId", c.lesson.DeleteLesson)

		enrollments := api.Group("/enrollments")
		{
			enrollments.POST("", c.enrollment.Register)
			enrollments.PUT("/:enrollmentId", c.enrollment.UpdateProgress)
			enrollments.DELETE("/:enrollmentId", c.enrollment.Remove)
		}

		api.GET("/assignments/due", c.submission.DueNextWeek)
		api.GET("/assignments/:assignmentId/submissions", c.submission.ByAssignment)
		api.PUT("/submissions/:submissionId/grade", c.submission.Grade)

		analytics := api.Group("/analytics")
		{
			analytics.GET("/courses", c.analytics.CourseEnrollmentStats)
			analytics.GET("/students", c.analytics.StudentPerformance)
			analytics.GET("/instructors", c.analytics.InstructorAnalytics)
			analytics.GET("/advanced", c.analytics.AdvancedAnalytics)
			analytics.POST("/explain", c.analytics.Explain)
		}

		admin := api.Group("/admin")
		{
			admin.POST("/export", c.admin.Export)
			admin.POST("/seed", c.admin.Seed)
			admin.GET("/info", c.admin.DatabaseInfo)
		}
	}
}
