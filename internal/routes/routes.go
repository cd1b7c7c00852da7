// Package routes defines HTTP routes for the attendance service.
package routes

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/smartattend/attendance-service/docs"
	"github.com/smartattend/attendance-service/internal/config"
	"github.com/smartattend/attendance-service/internal/handlers"
	"github.com/smartattend/attendance-service/internal/metrics"
	"github.com/smartattend/attendance-service/internal/middleware"
	"github.com/smartattend/attendance-service/internal/models"
)

// Handlers bundles the route handlers wired in main.
type Handlers struct {
	Auth       *handlers.AuthHandler
	HOD        *handlers.HODHandler
	Faculty    *handlers.FacultyHandler
	Student    *handlers.StudentHandler
	Attendance *handlers.AttendanceHandler
	Health     *handlers.HealthHandler
}

// Setup configures all HTTP routes for the application.
func Setup(router *gin.Engine, h Handlers, auth *middleware.Auth, cfg *config.Config, collector *metrics.Metrics) {
	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}))
	router.Use(middleware.CSRF(cfg.AllowedOrigins))
	router.Use(collector.Middleware())

	router.GET("/health", h.Health.Check)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := router.Group("/api")

	authGroup := api.Group("/auth")
	{
		authGroup.POST("/hod/login", h.Auth.HODLogin)
		authGroup.POST("/faculty/login", h.Auth.FacultyLogin)
		authGroup.POST("/student/login", h.Auth.StudentLogin)
		authGroup.POST("/logout", h.Auth.Logout)
	}

	hod := api.Group("/hod", auth.RequireRole(models.RoleHOD))
	{
		hod.GET("/profile", h.HOD.Profile)
		hod.PUT("/profile", h.HOD.UpdateProfile)
		hod.GET("/faculty", h.HOD.ListFaculty)
		hod.POST("/faculty", h.HOD.CreateFaculty)
		hod.PUT("/faculty/:id", h.HOD.UpdateFaculty)
		hod.DELETE("/faculty/:id", h.HOD.DeleteFaculty)
		hod.GET("/students", h.HOD.ListStudents)
		hod.POST("/students", h.HOD.CreateStudent)
		hod.PUT("/students/:id", h.HOD.UpdateStudent)
		hod.DELETE("/students/:id", h.HOD.DeleteStudent)
		hod.GET("/departments", h.HOD.ListDepartments)
		hod.POST("/departments", h.HOD.CreateDepartment)
		hod.GET("/classes", h.HOD.ListClasses)
		hod.POST("/classes", h.HOD.CreateClass)
		hod.GET("/subjects", h.HOD.ListSubjects)
		hod.POST("/subjects", h.HOD.CreateSubject)
		hod.POST("/subjects/:id/assign", h.HOD.AssignSubject)
		hod.GET("/analytics/attendance", h.HOD.AttendanceAnalytics)
	}

	faculty := api.Group("/faculty", auth.RequireRole(models.RoleFaculty))
	{
		faculty.GET("/profile", h.Faculty.Profile)
		faculty.PUT("/profile", h.Faculty.UpdateProfile)
		faculty.GET("/subjects/assigned", h.Faculty.AssignedSubjects)
		faculty.GET("/classes/:id/students", h.Faculty.ClassStudents)
		faculty.POST("/attendance/mark", h.Faculty.MarkAttendance)
		faculty.GET("/attendance/class/:id", h.Faculty.ClassAttendance)
	}

	student := api.Group("/student", auth.RequireRole(models.RoleStudent))
	{
		student.GET("/profile", h.Student.Profile)
		student.PUT("/profile", h.Student.UpdateProfile)
		student.GET("/attendance", h.Student.Attendance)
		student.GET("/attendance/summary", h.Student.AttendanceSummary)
	}

	// Legacy simple-server surface, kept unauthenticated as in the original.
	api.POST("/attendance", h.Attendance.Mark)
	api.GET("/attendance", h.Attendance.List)
	api.GET("/students", h.Attendance.ListStudents)
	api.POST("/students", h.Attendance.CreateStudent)

	if cfg.SwaggerHost != "" {
		docs.SwaggerInfo.Host = cfg.SwaggerHost
		router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}
}
