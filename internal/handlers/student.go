package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/smartattend/attendance-service/internal/middleware"
	"github.com/smartattend/attendance-service/internal/models"
	"github.com/smartattend/attendance-service/internal/repository"
)

// StudentHandler handles student HTTP requests: own profile and own
// attendance views.
type StudentHandler struct {
	students   repository.StudentRepository
	attendance repository.AttendanceRepository
}

// NewStudentHandler creates a new StudentHandler instance.
func NewStudentHandler(students repository.StudentRepository, attendance repository.AttendanceRepository) *StudentHandler {
	return &StudentHandler{students: students, attendance: attendance}
}

func (h *StudentHandler) profile(c *gin.Context) (*models.Student, bool) {
	principal, ok := middleware.Principal(c)
	if !ok {
		RespondError(c, http.StatusUnauthorized, "invalid credentials")
		return nil, false
	}

	profile, err := h.students.FindByUserID(c.Request.Context(), principal.ID)
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
// @Summary Student profile
// @Tags student
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Student
// @Failure 401 {object} map[string]string
// @Router /student/profile [get]
func (h *StudentHandler) Profile(c *gin.Context) {
	profile, ok := h.profile(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, profile)
}

// StudentProfileUpdate carries the limited set of fields a student may change
// on their own profile.
type StudentProfileUpdate struct {
	Phone       *string `json:"phone"`
	ParentPhone *string `json:"parent_phone"`
	Address     *string `json:"address"`
}

// UpdateProfile godoc
// @Summary Update student profile
// @Tags student
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body StudentProfileUpdate true "Fields to update"
// @Success 200 {object} models.Student
// @Router /student/profile [put]
func (h *StudentHandler) UpdateProfile(c *gin.Context) {
	var req StudentProfileUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, err.Error())
		return
	}

	profile, ok := h.profile(c)
	if !ok {
		return
	}

	if req.Phone != nil {
		profile.Phone = *req.Phone
	}
	if req.ParentPhone != nil {
		profile.ParentPhone = *req.ParentPhone
	}
	if req.Address != nil {
		profile.Address = *req.Address
	}

	if err := h.students.Update(c.Request.Context(), profile); err != nil {
		LogAndRespondError(c, http.StatusInternalServerError, err, "failed to update profile")
		return
	}

	c.JSON(http.StatusOK, profile)
}

// Attendance godoc
// @Summary The student's own attendance records
// @Tags student
// @Security BearerAuth
// @Produce json
// @Success 200 {array} models.Attendance
// @Router /student/attendance [get]
func (h *StudentHandler) Attendance(c *gin.Context) {
	profile, ok := h.profile(c)
	if !ok {
		return
	}

	rows, err := h.attendance.ListByStudent(c.Request.Context(), profile.ID)
	if err != nil {
		LogAndRespondError(c, http.StatusInternalServerError, err, "failed to list attendance")
		return
	}

	c.JSON(http.StatusOK, rows)
}

// AttendanceSummary godoc
// @Summary Per-subject attendance percentages
// @Tags student
// @Security BearerAuth
// @Produce json
// @Success 200 {array} models.AttendanceSummary
// @Router /student/attendance/summary [get]
func (h *StudentHandler) AttendanceSummary(c *gin.Context) {
	profile, ok := h.profile(c)
	if !ok {
		return
	}

	summaries, err := h.attendance.SummaryByStudent(c.Request.Context(), profile.ID)
	if err != nil {
		LogAndRespondError(c, http.StatusInternalServerError, err, "failed to summarize attendance")
		return
	}

	c.JSON(http.StatusOK, summaries)
}
