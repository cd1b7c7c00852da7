package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/smartattend/attendance-service/internal/middleware"
	"github.com/smartattend/attendance-service/internal/models"
	"github.com/smartattend/attendance-service/internal/repository"
	"github.com/smartattend/attendance-service/internal/service"
)

// HODHandler handles head-of-department HTTP requests: own profile plus
// administrative provisioning of faculty, students, departments, classes
// and subjects.
type HODHandler struct {
	users       repository.UserRepository
	hods        repository.HODRepository
	faculty     repository.FacultyRepository
	students    repository.StudentRepository
	departments repository.DepartmentRepository
	classes     repository.ClassRepository
	subjects    repository.SubjectRepository
	attendance  repository.AttendanceRepository
	passwords   service.PasswordService
}

// NewHODHandler creates a new HODHandler instance.
func NewHODHandler(
	users repository.UserRepository,
	hods repository.HODRepository,
	faculty repository.FacultyRepository,
	students repository.StudentRepository,
	departments repository.DepartmentRepository,
	classes repository.ClassRepository,
	subjects repository.SubjectRepository,
	attendance repository.AttendanceRepository,
	passwords service.PasswordService,
) *HODHandler {
	return &HODHandler{
		users:       users,
		hods:        hods,
		faculty:     faculty,
		students:    students,
		departments: departments,
		classes:     classes,
		subjects:    subjects,
		attendance:  attendance,
		passwords:   passwords,
	}
}

// Profile godoc
// @Summary HOD profile
// @Tags hod
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.HOD
// @Failure 401 {object} map[string]string
// @Router /hod/profile [get]
func (h *HODHandler) Profile(c *gin.Context) {
	principal, ok := middleware.Principal(c)
	if !ok {
		RespondError(c, http.StatusUnauthorized, "invalid credentials")
		return
	}

	profile, err := h.hods.FindByUserID(c.Request.Context(), principal.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			RespondError(c, http.StatusNotFound, "profile not found")
			return
		}
		LogAndRespondError(c, http.StatusInternalServerError, err, "failed to load profile")
		return
	}

	c.JSON(http.StatusOK, profile)
}

// HODProfileUpdate carries the fields a HOD may change on their own profile.
type HODProfileUpdate struct {
	Name        *string `json:"name"`
	Phone       *string `json:"phone"`
	BiometricID *string `json:"biometric_id"`
}

// UpdateProfile godoc
// @Summary Update HOD profile
// @Tags hod
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body HODProfileUpdate true "Fields to update"
// @Success 200 {object} models.HOD
// @Router /hod/profile [put]
func (h *HODHandler) UpdateProfile(c *gin.Context) {
	principal, ok := middleware.Principal(c)
	if !ok {
		RespondError(c, http.StatusUnauthorized, "invalid credentials")
		return
	}

	var req HODProfileUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, err.Error())
		return
	}

	profile, err := h.hods.FindByUserID(c.Request.Context(), principal.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			RespondError(c, http.StatusNotFound, "profile not found")
			return
		}
		LogAndRespondError(c, http.StatusInternalServerError, err, "failed to load profile")
		return
	}

	if req.Name != nil {
		profile.Name = *req.Name
	}
	if req.Phone != nil {
		profile.Phone = *req.Phone
	}
	if req.BiometricID != nil {
		profile.BiometricID = req.BiometricID
	}

	if err := h.hods.Update(c.Request.Context(), profile); err != nil {
		LogAndRespondError(c, http.StatusInternalServerError, err, "failed to update profile")
		return
	}

	c.JSON(http.StatusOK, profile)
}

// ----------------------------------------------------------------------------
// Faculty management
// ----------------------------------------------------------------------------

// ListFaculty godoc
// @Summary List faculty
// @Tags hod
// @Security BearerAuth
// @Produce json
// @Success 200 {array} models.Faculty
// @Router /hod/faculty [get]
func (h *HODHandler) ListFaculty(c *gin.Context) {
	faculty, err := h.faculty.List(c.Request.Context(), nil)
	if err != nil {
		LogAndRespondError(c, http.StatusInternalServerError, err, "failed to list faculty")
		return
	}
	c.JSON(http.StatusOK, faculty)
}

// FacultyCreateRequest provisions a faculty member together with their
// credential record.
type FacultyCreateRequest struct {
	Name         string     `json:"name" binding:"required"`
	Email        string     `json:"email" binding:"required,email"`
	Password     string     `json:"password" binding:"required"`
	EmployeeID   string     `json:"employee_id" binding:"required"`
	Designation  string     `json:"designation"`
	DepartmentID *uuid.UUID `json:"department_id"`
	BiometricID  *string    `json:"biometric_id"`
	Phone        string     `json:"phone"`
	Address      string     `json:"address"`
}

// CreateFaculty godoc
// @Summary Create a faculty member
// @Tags hod
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body FacultyCreateRequest true "Faculty details"
// @Success 201 {object} models.Faculty
// @Failure 400 {object} map[string]string
// @Router /hod/faculty [post]
func (h *HODHandler) CreateFaculty(c *gin.Context) {
	var req FacultyCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, err.Error())
		return
	}

	digest, err := h.passwords.Hash(req.Password)
	if err != nil {
		LogAndRespondError(c, http.StatusInternalServerError, err, "failed to create faculty")
		return
	}

	user := &models.User{
		Email:        req.Email,
		PasswordHash: digest,
		Role:         models.RoleFaculty,
		Name:         req.Name,
		IsActive:     true,
	}
	if err := h.users.Create(c.Request.Context(), user); err != nil {
		LogAndRespondError(c, http.StatusInternalServerError, err, "failed to create faculty")
		return
	}

	faculty := &models.Faculty{
		UserID:       user.ID,
		EmployeeID:   req.EmployeeID,
		Name:         req.Name,
		Designation:  req.Designation,
		DepartmentID: req.DepartmentID,
		BiometricID:  req.BiometricID,
		Phone:        req.Phone,
		Address:      req.Address,
		IsActive:     true,
	}
	if err := h.faculty.Create(c.Request.Context(), faculty); err != nil {
		LogAndRespondError(c, http.StatusInternalServerError, err, "failed to create faculty")
		return
	}

	c.JSON(http.StatusCreated, faculty)
}

// FacultyUpdateRequest carries mutable faculty fields.
type FacultyUpdateRequest struct {
	Name         *string    `json:"name"`
	Designation  *string    `json:"designation"`
	DepartmentID *uuid.UUID `json:"department_id"`
	BiometricID  *string    `json:"biometric_id"`
	Phone        *string    `json:"phone"`
	Address      *string    `json:"address"`
	IsActive     *bool      `json:"is_active"`
}

// UpdateFaculty godoc
// @Summary Update a faculty member
// @Tags hod
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Faculty ID"
// @Param request body FacultyUpdateRequest true "Fields to update"
// @Success 200 {object} models.Faculty
// @Failure 404 {object} map[string]string
// @Router /hod/faculty/{id} [put]
func (h *HODHandler) UpdateFaculty(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid faculty id")
		return
	}

	var req FacultyUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, err.Error())
		return
	}

	faculty, err := h.faculty.FindByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			RespondError(c, http.StatusNotFound, "faculty not found")
			return
		}
		LogAndRespondError(c, http.StatusInternalServerError, err, "failed to load faculty")
		return
	}

	if req.Name != nil {
		faculty.Name = *req.Name
	}
	if req.Designation != nil {
		faculty.Designation = *req.Designation
	}
	if req.DepartmentID != nil {
		faculty.DepartmentID = req.DepartmentID
	}
	if req.BiometricID != nil {
		faculty.BiometricID = req.BiometricID
	}
	if req.Phone != nil {
		faculty.Phone = *req.Phone
	}
	if req.Address != nil {
		faculty.Address = *req.Address
	}
	if req.IsActive != nil {
		faculty.IsActive = *req.IsActive
	}

	if err := h.faculty.Update(c.Request.Context(), faculty); err != nil {
		LogAndRespondError(c, http.StatusInternalServerError, err, "failed to update faculty")
		return
	}

	c.JSON(http.StatusOK, faculty)
}

// DeleteFaculty godoc
// @Summary Delete a faculty member
// @Tags hod
// @Security BearerAuth
// @Param id path string true "Faculty ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /hod/faculty/{id} [delete]
func (h *HODHandler) DeleteFaculty(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid faculty id")
		return
	}

	faculty, err := h.faculty.FindByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			RespondError(c, http.StatusNotFound, "faculty not found")
			return
		}
		LogAndRespondError(c, http.StatusInternalServerError, err, "failed to load faculty")
		return
	}

	if err := h.faculty.Delete(c.Request.Context(), faculty.ID); err != nil {
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			RespondError(c, http.StatusConflict, "faculty has attendance history and cannot be deleted")
			return
		}
		LogAndRespondError(c, http.StatusInternalServerError, err, "failed to delete faculty")
		return
	}
	// Removing the users row cascades to the profile and disables login.
	if err := h.users.Delete(c.Request.Context(), faculty.UserID); err != nil {
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			RespondError(c, http.StatusConflict, "faculty has attendance history and cannot be deleted")
			return
		}
		LogAndRespondError(c, http.StatusInternalServerError, err, "failed to delete faculty")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "faculty deleted"})
}

// ----------------------------------------------------------------------------
// Student management
// ----------------------------------------------------------------------------

// ListStudents godoc
// @Summary List students
// @Tags hod
// @Security BearerAuth
// @Produce json
// @Success 200 {array} models.Student
// @Router /hod/students [get]
func (h *HODHandler) ListStudents(c *gin.Context) {
	students, err := h.students.List(c.Request.Context(), nil)
	if err != nil {
		LogAndRespondError(c, http.StatusInternalServerError, err, "failed to list students")
		return
	}
	c.JSON(http.StatusOK, students)
}

// StudentCreateRequest provisions a student together with their credential
// record.
type StudentCreateRequest struct {
	Name         string     `json:"name" binding:"required"`
	Email        string     `json:"email" binding:"required,email"`
	Password     string     `json:"password" binding:"required"`
	RollNumber   string     `json:"roll_number" binding:"required"`
	DepartmentID *uuid.UUID `json:"department_id"`
	BatchYear    int        `json:"batch_year" binding:"required"`
	Semester     int        `json:"semester"`
	ClassID      *uuid.UUID `json:"class_id"`
	BiometricID  *string    `json:"biometric_id"`
	Phone        string     `json:"phone"`
	ParentPhone  string     `json:"parent_phone"`
	Address      string     `json:"address"`
}

// CreateStudent godoc
// @Summary Create a student
// @Tags hod
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body StudentCreateRequest true "Student details"
// @Success 201 {object} models.Student
// @Failure 400 {object} map[string]string
// @Router /hod/students [post]
func (h *HODHandler) CreateStudent(c *gin.Context) {
	var req StudentCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, err.Error())
		return
	}

	digest, err := h.passwords.Hash(req.Password)
	if err != nil {
		LogAndRespondError(c, http.StatusInternalServerError, err, "failed to create student")
		return
	}

	user := &models.User{
		Email:        req.Email,
		PasswordHash: digest,
		Role:         models.RoleStudent,
		Name:         req.Name,
		IsActive:     true,
	}
	if err := h.users.Create(c.Request.Context(), user); err != nil {
		LogAndRespondError(c, http.StatusInternalServerError, err, "failed to create student")
		return
	}

	semester := req.Semester
	if semester == 0 {
		semester = 1
	}
	student := &models.Student{
		UserID:       user.ID,
		RollNumber:   req.RollNumber,
		Name:         req.Name,
		DepartmentID: req.DepartmentID,
		BatchYear:    req.BatchYear,
		Semester:     semester,
		ClassID:      req.ClassID,
		BiometricID:  req.BiometricID,
		Phone:        req.Phone,
		ParentPhone:  req.ParentPhone,
		Address:      req.Address,
		IsActive:     true,
	}
	if err := h.students.Create(c.Request.Context(), student); err != nil {
		LogAndRespondError(c, http.StatusInternalServerError, err, "failed to create student")
		return
	}

	c.JSON(http.StatusCreated, student)
}

// StudentUpdateRequest carries mutable student fields.
type StudentUpdateRequest struct {
	Name        *string    `json:"name"`
	Phone       *string    `json:"phone"`
	ParentPhone *string    `json:"parent_phone"`
	Semester    *int       `json:"semester"`
	ClassID     *uuid.UUID `json:"class_id"`
	BiometricID *string    `json:"biometric_id"`
	Address     *string    `json:"address"`
	IsActive    *bool      `json:"is_active"`
}

// UpdateStudent godoc
// @Summary Update a student
// @Tags hod
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Student ID"
// @Param request body StudentUpdateRequest true "Fields to update"
// @Success 200 {object} models.Student
// @Failure 404 {object} map[string]string
// @Router /hod/students/{id} [put]
func (h *HODHandler) UpdateStudent(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid student id")
		return
	}

	var req StudentUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, err.Error())
		return
	}

	student, err := h.students.FindByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			RespondError(c, http.StatusNotFound, "student not found")
			return
		}
		LogAndRespondError(c, http.StatusInternalServerError, err, "failed to load student")
		return
	}

	if req.Name != nil {
		student.Name = *req.Name
	}
	if req.Phone != nil {
		student.Phone = *req.Phone
	}
	if req.ParentPhone != nil {
		student.ParentPhone = *req.ParentPhone
	}
	if req.Semester != nil {
		student.Semester = *req.Semester
	}
	if req.ClassID != nil {
		student.ClassID = req.ClassID
	}
	if req.BiometricID != nil {
		student.BiometricID = req.BiometricID
	}
	if req.Address != nil {
		student.Address = *req.Address
	}
	if req.IsActive != nil {
		student.IsActive = *req.IsActive
	}

	if err := h.students.Update(c.Request.Context(), student); err != nil {
		LogAndRespondError(c, http.StatusInternalServerError, err, "failed to update student")
		return
	}

	c.JSON(http.StatusOK, student)
}

// DeleteStudent godoc
// @Summary Delete a student
// @Tags hod
// @Security BearerAuth
// @Param id path string true "Student ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /hod/students/{id} [delete]
func (h *HODHandler) DeleteStudent(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid student id")
		return
	}

	student, err := h.students.FindByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			RespondError(c, http.StatusNotFound, "student not found")
			return
		}
		LogAndRespondError(c, http.StatusInternalServerError, err, "failed to load student")
		return
	}

	if err := h.students.Delete(c.Request.Context(), student.ID); err != nil {
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			RespondError(c, http.StatusConflict, "student has attendance history and cannot be deleted")
			return
		}
		LogAndRespondError(c, http.StatusInternalServerError, err, "failed to delete student")
		return
	}
	if err := h.users.Delete(c.Request.Context(), student.UserID); err != nil {
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			RespondError(c, http.StatusConflict, "student has attendance history and cannot be deleted")
			return
		}
		LogAndRespondError(c, http.StatusInternalServerError, err, "failed to delete student")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "student deleted"})
}

// ----------------------------------------------------------------------------
// Departments, classes, subjects
// ----------------------------------------------------------------------------

// ListDepartments godoc
// @Summary List departments
// @Tags hod
// @Security BearerAuth
// @Produce json
// @Success 200 {array} models.Department
// @Router /hod/departments [get]
func (h *HODHandler) ListDepartments(c *gin.Context) {
	departments, err := h.departments.List(c.Request.Context())
	if err != nil {
		LogAndRespondError(c, http.StatusInternalServerError, err, "failed to list departments")
		return
	}
	c.JSON(http.StatusOK, departments)
}

// DepartmentCreateRequest names a new department.
type DepartmentCreateRequest struct {
	Name string `json:"name" binding:"required"`
	Code string `json:"code" binding:"required"`
}

// CreateDepartment godoc
// @Summary Create a department
// @Tags hod
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body DepartmentCreateRequest true "Department details"
// @Success 201 {object} models.Department
// @Router /hod/departments [post]
func (h *HODHandler) CreateDepartment(c *gin.Context) {
	var req DepartmentCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, err.Error())
		return
	}

	department := &models.Department{Name: req.Name, Code: req.Code}
	if err := h.departments.Create(c.Request.Context(), department); err != nil {
		LogAndRespondError(c, http.StatusInternalServerError, err, "failed to create department")
		return
	}

	c.JSON(http.StatusCreated, department)
}

// ListClasses godoc
// @Summary List classes
// @Tags hod
// @Security BearerAuth
// @Produce json
// @Success 200 {array} models.Class
// @Router /hod/classes [get]
func (h *HODHandler) ListClasses(c *gin.Context) {
	classes, err := h.classes.List(c.Request.Context(), nil)
	if err != nil {
		LogAndRespondError(c, http.StatusInternalServerError, err, "failed to list classes")
		return
	}
	c.JSON(http.StatusOK, classes)
}

// ClassCreateRequest describes a new class.
type ClassCreateRequest struct {
	Name           string     `json:"name" binding:"required"`
	DepartmentID   *uuid.UUID `json:"department_id"`
	BatchYear      int        `json:"batch_year" binding:"required"`
	Semester       int        `json:"semester" binding:"required"`
	Section        string     `json:"section"`
	ClassTeacherID *uuid.UUID `json:"class_teacher_id"`
}

// CreateClass godoc
// @Summary Create a class
// @Tags hod
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body ClassCreateRequest true "Class details"
// @Success 201 {object} models.Class
// @Router /hod/classes [post]
func (h *HODHandler) CreateClass(c *gin.Context) {
	var req ClassCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, err.Error())
		return
	}

	class := &models.Class{
		Name:           req.Name,
		DepartmentID:   req.DepartmentID,
		BatchYear:      req.BatchYear,
		Semester:       req.Semester,
		Section:        req.Section,
		ClassTeacherID: req.ClassTeacherID,
	}
	if err := h.classes.Create(c.Request.Context(), class); err != nil {
		LogAndRespondError(c, http.StatusInternalServerError, err, "failed to create class")
		return
	}

	c.JSON(http.StatusCreated, class)
}

// ListSubjects godoc
// @Summary List subjects
// @Tags hod
// @Security BearerAuth
// @Produce json
// @Success 200 {array} models.Subject
// @Router /hod/subjects [get]
func (h *HODHandler) ListSubjects(c *gin.Context) {
	subjects, err := h.subjects.List(c.Request.Context(), nil)
	if err != nil {
		LogAndRespondError(c, http.StatusInternalServerError, err, "failed to list subjects")
		return
	}
	c.JSON(http.StatusOK, subjects)
}

// SubjectCreateRequest describes a new subject.
type SubjectCreateRequest struct {
	Name         string     `json:"name" binding:"required"`
	Code         string     `json:"code" binding:"required"`
	DepartmentID *uuid.UUID `json:"department_id"`
	Semester     int        `json:"semester" binding:"required"`
	Credits      int        `json:"credits"`
}

// CreateSubject godoc
// @Summary Create a subject
// @Tags hod
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body SubjectCreateRequest true "Subject details"
// @Success 201 {object} models.Subject
// @Router /hod/subjects [post]
func (h *HODHandler) CreateSubject(c *gin.Context) {
	var req SubjectCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, err.Error())
		return
	}

	credits := req.Credits
	if credits == 0 {
		credits = 3
	}
	subject := &models.Subject{
		Name:         req.Name,
		Code:         req.Code,
		DepartmentID: req.DepartmentID,
		Semester:     req.Semester,
		Credits:      credits,
		IsActive:     true,
	}
	if err := h.subjects.Create(c.Request.Context(), subject); err != nil {
		LogAndRespondError(c, http.StatusInternalServerError, err, "failed to create subject")
		return
	}

	c.JSON(http.StatusCreated, subject)
}

// AssignSubjectRequest binds a subject, and optionally a class, to a faculty
// member.
type AssignSubjectRequest struct {
	FacultyID uuid.UUID  `json:"faculty_id" binding:"required"`
	ClassID   *uuid.UUID `json:"class_id"`
}

// AssignSubject godoc
// @Summary Assign a subject to a faculty member
// @Tags hod
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Subject ID"
// @Param request body AssignSubjectRequest true "Assignment details"
// @Success 201 {object} models.FacultySubject
// @Failure 404 {object} map[string]string
// @Router /hod/subjects/{id}/assign [post]
func (h *HODHandler) AssignSubject(c *gin.Context) {
	subjectID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid subject id")
		return
	}

	var req AssignSubjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, err.Error())
		return
	}

	if _, err := h.subjects.FindByID(c.Request.Context(), subjectID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			RespondError(c, http.StatusNotFound, "subject not found")
			return
		}
		LogAndRespondError(c, http.StatusInternalServerError, err, "failed to load subject")
		return
	}
	if _, err := h.faculty.FindByID(c.Request.Context(), req.FacultyID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			RespondError(c, http.StatusNotFound, "faculty not found")
			return
		}
		LogAndRespondError(c, http.StatusInternalServerError, err, "failed to load faculty")
		return
	}

	assignment := &models.FacultySubject{
		FacultyID: req.FacultyID,
		SubjectID: subjectID,
		ClassID:   req.ClassID,
	}
	if err := h.subjects.AssignFaculty(c.Request.Context(), assignment); err != nil {
		LogAndRespondError(c, http.StatusInternalServerError, err, "failed to assign subject")
		return
	}

	c.JSON(http.StatusCreated, assignment)
}

// AttendanceAnalytics godoc
// @Summary Department attendance summary
// @Description Per-student attendance percentages for the HOD's department
// @Tags hod
// @Security BearerAuth
// @Produce json
// @Success 200 {array} models.AttendanceSummary
// @Router /hod/analytics/attendance [get]
func (h *HODHandler) AttendanceAnalytics(c *gin.Context) {
	principal, ok := middleware.Principal(c)
	if !ok {
		RespondError(c, http.StatusUnauthorized, "invalid credentials")
		return
	}

	profile, err := h.hods.FindByUserID(c.Request.Context(), principal.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			RespondError(c, http.StatusNotFound, "profile not found")
			return
		}
		LogAndRespondError(c, http.StatusInternalServerError, err, "failed to load profile")
		return
	}
	if profile.DepartmentID == nil {
		c.JSON(http.StatusOK, []models.AttendanceSummary{})
		return
	}

	summaries, err := h.attendance.SummaryByDepartment(c.Request.Context(), *profile.DepartmentID)
	if err != nil {
		LogAndRespondError(c, http.StatusInternalServerError, err, "failed to summarize attendance")
		return
	}

	c.JSON(http.StatusOK, summaries)
}
