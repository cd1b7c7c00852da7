package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/smartattend/attendance-service/internal/middleware"
	"github.com/smartattend/attendance-service/internal/models"
	"github.com/smartattend/attendance-service/internal/repository"
)

// FacultyHandler handles faculty HTTP requests: own profile, assigned
// subjects and classes, and attendance marking.
type FacultyHandler struct {
	faculty    repository.FacultyRepository
	students   repository.StudentRepository
	attendance repository.AttendanceRepository
}

// NewFacultyHandler creates a new FacultyHandler instance.
func NewFacultyHandler(
	faculty repository.FacultyRepository,
	students repository.StudentRepository,
	attendance repository.AttendanceRepository,
) *FacultyHandler {
	return &FacultyHandler{
		faculty:    faculty,
		students:   students,
		attendance: attendance,
	}
}

// profile loads the faculty row behind the authenticated principal.
func (h *FacultyHandler) profile(c *gin.Context) (*models.Faculty, bool) {
	principal, ok := middleware.Principal(c)
	if !ok {
		RespondError(c, http.StatusUnauthorized, "invalid credentials")
		return nil, false
	}

	profile, err := h.faculty.FindByUserID(c.Request.Context(), principal.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			RespondError(c, http.StatusNotFound, "profile not found")
			return nil, false
		}
		LogAndRespondError(c, http.StatusInternalServerError, err, "failed to load profile")
		return nil, false
	}
	return profile, true
}

// Profile godoc
// @Summary Faculty profile
// @Tags faculty
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Faculty
// @Failure 401 {object} map[string]string
// @Router /faculty/profile [get]
func (h *FacultyHandler) Profile(c *gin.Context) {
	profile, ok := h.profile(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, profile)
}

// FacultyProfileUpdate carries the fields a faculty member may change on
// their own profile.
type FacultyProfileUpdate struct {
	Name        *string `json:"name"`
	Phone       *string `json:"phone"`
	Address     *string `json:"address"`
	BiometricID *string `json:"biometric_id"`
}

// UpdateProfile godoc
// @Summary Update faculty profile
// @Tags faculty
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body FacultyProfileUpdate true "Fields to update"
// @Success 200 {object} models.Faculty
// @Router /faculty/profile [put]
func (h *FacultyHandler) UpdateProfile(c *gin.Context) {
	var req FacultyProfileUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, err.Error())
		return
	}

	profile, ok := h.profile(c)
	if !ok {
		return
	}

	if req.Name != nil {
		profile.Name = *req.Name
	}
	if req.Phone != nil {
		profile.Phone = *req.Phone
	}
	if req.Address != nil {
		profile.Address = *req.Address
	}
	if req.BiometricID != nil {
		profile.BiometricID = req.BiometricID
	}

	if err := h.faculty.Update(c.Request.Context(), profile); err != nil {
		LogAndRespondError(c, http.StatusInternalServerError, err, "failed to update profile")
		return
	}

	c.JSON(http.StatusOK, profile)
}

// AssignedSubjects godoc
// @Summary Subjects assigned to the faculty member
// @Tags faculty
// @Security BearerAuth
// @Produce json
// @Success 200 {array} models.Subject
// @Router /faculty/subjects/assigned [get]
func (h *FacultyHandler) AssignedSubjects(c *gin.Context) {
	profile, ok := h.profile(c)
	if !ok {
		return
	}

	subjects, err := h.faculty.AssignedSubjects(c.Request.Context(), profile.ID)
	if err != nil {
		LogAndRespondError(c, http.StatusInternalServerError, err, "failed to list subjects")
		return
	}

	c.JSON(http.StatusOK, subjects)
}

// ClassStudents godoc
// @Summary Students of an assigned class
// @Tags faculty
// @Security BearerAuth
// @Produce json
// @Param id path string true "Class ID"
// @Success 200 {array} models.Student
// @Failure 403 {object} map[string]string
// @Router /faculty/classes/{id}/students [get]
func (h *FacultyHandler) ClassStudents(c *gin.Context) {
	classID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid class id")
		return
	}

	profile, ok := h.profile(c)
	if !ok {
		return
	}

	assigned, err := h.faculty.IsAssignedToClass(c.Request.Context(), profile.ID, classID)
	if err != nil {
		LogAndRespondError(c, http.StatusInternalServerError, err, "failed to check assignment")
		return
	}
	if !assigned {
		RespondError(c, http.StatusForbidden, "class not assigned")
		return
	}

	students, err := h.students.ListByClass(c.Request.Context(), classID)
	if err != nil {
		LogAndRespondError(c, http.StatusInternalServerError, err, "failed to list students")
		return
	}

	c.JSON(http.StatusOK, students)
}

// MarkAttendanceRequest records one student's mark for a subject slot.
type MarkAttendanceRequest struct {
	StudentID         uuid.UUID  `json:"student_id" binding:"required"`
	SubjectID         uuid.UUID  `json:"subject_id" binding:"required"`
	ClassID           *uuid.UUID `json:"class_id"`
	Date              string     `json:"date" binding:"required"`
	TimeSlot          string     `json:"time_slot"`
	Status            string     `json:"status" binding:"required"`
	BiometricVerified bool       `json:"biometric_verified"`
	Notes             string     `json:"notes"`
}

// MarkAttendance godoc
// @Summary Mark attendance
// @Description Insert or overwrite the mark for (student, subject, date, slot)
// @Tags faculty
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body MarkAttendanceRequest true "Attendance mark"
// @Success 201 {object} models.Attendance
// @Failure 400 {object} map[string]string
// @Router /faculty/attendance/mark [post]
func (h *FacultyHandler) MarkAttendance(c *gin.Context) {
	var req MarkAttendanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, err.Error())
		return
	}

	status := models.AttendanceStatus(req.Status)
	if !status.Valid() {
		RespondError(c, http.StatusBadRequest, "invalid attendance status")
		return
	}

	date, err := parseDate(req.Date)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid date, expected YYYY-MM-DD")
		return
	}

	profile, ok := h.profile(c)
	if !ok {
		return
	}

	attendance := &models.Attendance{
		StudentID:         req.StudentID,
		SubjectID:         req.SubjectID,
		FacultyID:         profile.ID,
		ClassID:           req.ClassID,
		Date:              date,
		TimeSlot:          req.TimeSlot,
		Status:            status,
		MarkedBy:          profile.ID,
		MarkedAt:          time.Now(),
		BiometricVerified: req.BiometricVerified,
		Notes:             req.Notes,
	}
	if err := h.attendance.Mark(c.Request.Context(), attendance); err != nil {
		LogAndRespondError(c, http.StatusInternalServerError, err, "failed to mark attendance")
		return
	}

	c.JSON(http.StatusCreated, attendance)
}

// ClassAttendance godoc
// @Summary Attendance of an assigned class
// @Tags faculty
// @Security BearerAuth
// @Produce json
// @Param id path string true "Class ID"
// @Param date query string false "Filter by date (YYYY-MM-DD)"
// @Success 200 {array} models.Attendance
// @Failure 403 {object} map[string]string
// @Router /faculty/attendance/class/{id} [get]
func (h *FacultyHandler) ClassAttendance(c *gin.Context) {
	classID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid class id")
		return
	}

	var date *time.Time
	if raw := c.Query("date"); raw != "" {
		parsed, err := parseDate(raw)
		if err != nil {
			RespondError(c, http.StatusBadRequest, "invalid date, expected YYYY-MM-DD")
			return
		}
		date = &parsed
	}

	profile, ok := h.profile(c)
	if !ok {
		return
	}

	assigned, err := h.faculty.IsAssignedToClass(c.Request.Context(), profile.ID, classID)
	if err != nil {
		LogAndRespondError(c, http.StatusInternalServerError, err, "failed to check assignment")
		return
	}
	if !assigned {
		RespondError(c, http.StatusForbidden, "class not assigned")
		return
	}

	rows, err := h.attendance.ListByClass(c.Request.Context(), classID, date)
	if err != nil {
		LogAndRespondError(c, http.StatusInternalServerError, err, "failed to list attendance")
		return
	}

	c.JSON(http.StatusOK, rows)
}
