package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/smartattend/attendance-service/internal/models"
	"github.com/smartattend/attendance-service/internal/repository"
)

// AttendanceHandler serves the legacy simple-server surface: day-level
// attendance records with seven period flags, and flat student listing.
type AttendanceHandler struct {
	attendance repository.AttendanceRepository
	students   repository.StudentRepository
}

// NewAttendanceHandler creates a new AttendanceHandler instance.
func NewAttendanceHandler(attendance repository.AttendanceRepository, students repository.StudentRepository) *AttendanceHandler {
	return &AttendanceHandler{attendance: attendance, students: students}
}

// AttendanceRecordRequest is the legacy day-level marking payload.
type AttendanceRecordRequest struct {
	StudentID      uuid.UUID `json:"student_id" binding:"required"`
	UserID         uuid.UUID `json:"user_id"`
	AttendanceDate string    `json:"attendance_date" binding:"required"`
	Batch          string    `json:"batch"`
	Period1        bool      `json:"period1"`
	Period2        bool      `json:"period2"`
	Period3        bool      `json:"period3"`
	Period4        bool      `json:"period4"`
	Period5        bool      `json:"period5"`
	Period6        bool      `json:"period6"`
	Period7        bool      `json:"period7"`
}

// Mark godoc
// @Summary Mark day-level attendance
// @Description Upsert keyed on (student, date); period flags are overwritten
// @Tags attendance
// @Accept json
// @Produce json
// @Param request body AttendanceRecordRequest true "Attendance record"
// @Success 201 {object} models.AttendanceRecord
// @Failure 400 {object} map[string]string
// @Router /attendance [post]
func (h *AttendanceHandler) Mark(c *gin.Context) {
	var req AttendanceRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, err.Error())
		return
	}

	date, err := parseDate(req.AttendanceDate)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid attendance_date, expected YYYY-MM-DD")
		return
	}

	record := &models.AttendanceRecord{
		StudentID:      req.StudentID,
		UserID:         req.UserID,
		AttendanceDate: date,
		Batch:          req.Batch,
		Period1:        req.Period1,
		Period2:        req.Period2,
		Period3:        req.Period3,
		Period4:        req.Period4,
		Period5:        req.Period5,
		Period6:        req.Period6,
		Period7:        req.Period7,
	}
	if err := h.attendance.UpsertRecord(c.Request.Context(), record); err != nil {
		LogAndRespondError(c, http.StatusInternalServerError, err, "failed to mark attendance")
		return
	}

	c.JSON(http.StatusCreated, record)
}

// List godoc
// @Summary List day-level attendance
// @Description Joined with student identity, ordered by student name
// @Tags attendance
// @Produce json
// @Param date query string false "Filter by date (YYYY-MM-DD)"
// @Success 200 {array} models.AttendanceRecordRow
// @Failure 400 {object} map[string]string
// @Router /attendance [get]
func (h *AttendanceHandler) List(c *gin.Context) {
	var date *time.Time
	if raw := c.Query("date"); raw != "" {
		parsed, err := parseDate(raw)
		if err != nil {
			RespondError(c, http.StatusBadRequest, "invalid date, expected YYYY-MM-DD")
			return
		}
		date = &parsed
	}

	rows, err := h.attendance.ListRecords(c.Request.Context(), date)
	if err != nil {
		LogAndRespondError(c, http.StatusInternalServerError, err, "failed to list attendance")
		return
	}

	c.JSON(http.StatusOK, rows)
}

// ListStudents godoc
// @Summary List students (legacy)
// @Tags attendance
// @Produce json
// @Success 200 {array} models.Student
// @Router /students [get]
func (h *AttendanceHandler) ListStudents(c *gin.Context) {
	students, err := h.students.List(c.Request.Context(), nil)
	if err != nil {
		LogAndRespondError(c, http.StatusInternalServerError, err, "failed to list students")
		return
	}
	c.JSON(http.StatusOK, students)
}

// LegacyStudentRequest registers a student row against an existing users row,
// as the original simple server did.
type LegacyStudentRequest struct {
	UserID       uuid.UUID  `json:"user_id" binding:"required"`
	Name         string     `json:"name" binding:"required"`
	RollNumber   string     `json:"roll_no" binding:"required"`
	DepartmentID *uuid.UUID `json:"department_id"`
	BatchYear    int        `json:"batch_year"`
	Phone        string     `json:"phone"`
	ParentPhone  string     `json:"parent_phone"`
}

// CreateStudent godoc
// @Summary Create a student (legacy)
// @Tags attendance
// @Accept json
// @Produce json
// @Param request body LegacyStudentRequest true "Student details"
// @Success 201 {object} models.Student
// @Failure 400 {object} map[string]string
// @Router /students [post]
func (h *AttendanceHandler) CreateStudent(c *gin.Context) {
	var req LegacyStudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, err.Error())
		return
	}

	student := &models.Student{
		UserID:       req.UserID,
		Name:         req.Name,
		RollNumber:   req.RollNumber,
		DepartmentID: req.DepartmentID,
		BatchYear:    req.BatchYear,
		Semester:     1,
		Phone:        req.Phone,
		ParentPhone:  req.ParentPhone,
		IsActive:     true,
	}
	if err := h.students.Create(c.Request.Context(), student); err != nil {
		LogAndRespondError(c, http.StatusInternalServerError, err, "failed to create student")
		return
	}

	c.JSON(http.StatusCreated, student)
}
