// Package main is the entry point for the attendance service.
package main

import (
	"fmt"
	"log"

	"github.com/gin-gonic/gin"

	_ "github.com/smartattend/attendance-service/docs"
	"github.com/smartattend/attendance-service/internal/config"
	"github.com/smartattend/attendance-service/internal/database"
	"github.com/smartattend/attendance-service/internal/handlers"
	"github.com/smartattend/attendance-service/internal/metrics"
	"github.com/smartattend/attendance-service/internal/middleware"
	"github.com/smartattend/attendance-service/internal/repository"
	"github.com/smartattend/attendance-service/internal/routes"
	"github.com/smartattend/attendance-service/internal/service"
	"github.com/smartattend/attendance-service/pkg/redis"
)

// @title SmartAttend API
// @version 1.0
// @description Attendance tracking service with role-based authentication
// @BasePath /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg := config.Load()

	if err := database.Migrate(cfg); err != nil {
		log.Fatal("Failed to migrate database: ", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatal("Failed to connect to database: ", err)
	}

	redisClient, err := redis.NewClient(cfg)
	if err != nil {
		log.Fatal("Failed to connect to redis: ", err)
	}

	userRepo := repository.NewUserRepository(db)
	hodRepo := repository.NewHODRepository(db)
	facultyRepo := repository.NewFacultyRepository(db)
	studentRepo := repository.NewStudentRepository(db)
	departmentRepo := repository.NewDepartmentRepository(db)
	classRepo := repository.NewClassRepository(db)
	subjectRepo := repository.NewSubjectRepository(db)
	attendanceRepo := repository.NewAttendanceRepository(db)

	passwordService := service.NewPasswordService()
	jwtService, err := service.NewJWTService(cfg.JWTSecret, cfg.JWTAccessTTL, cfg.JWTLoginTTL)
	if err != nil {
		log.Fatal("Failed to initialize token service: ", err)
	}
	authService := service.NewAuthService(userRepo, passwordService, jwtService, redisClient)

	authMiddleware := middleware.NewAuth(jwtService, authService, userRepo)
	collector := metrics.New()

	h := routes.Handlers{
		Auth: handlers.NewAuthHandler(authService),
		HOD: handlers.NewHODHandler(
			userRepo, hodRepo, facultyRepo, studentRepo,
			departmentRepo, classRepo, subjectRepo, attendanceRepo,
			passwordService,
		),
		Faculty:    handlers.NewFacultyHandler(facultyRepo, studentRepo, attendanceRepo),
		Student:    handlers.NewStudentHandler(studentRepo, attendanceRepo),
		Attendance: handlers.NewAttendanceHandler(attendanceRepo, studentRepo),
		Health:     handlers.NewHealthHandler(),
	}

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()
	routes.Setup(router, h, authMiddleware, cfg, collector)

	log.Printf("Starting attendance service on port %s", cfg.Port)
	if err := router.Run(fmt.Sprintf(":%s", cfg.Port)); err != nil {
		log.Fatal("Failed to start server: ", err)
	}
}
