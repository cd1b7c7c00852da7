package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/smartattend/attendance-service/internal/models"
)

// =============================================================================
// Fake FacultyRepository
// =============================================================================

type fakeFacultyRepo struct {
	profile         *models.Faculty
	assignedClasses map[uuid.UUID]bool
	deleteErr       error
}

func (f *fakeFacultyRepo) List(ctx context.Context, departmentID *uuid.UUID) ([]models.Faculty, error) {
	return nil, nil
}

func (f *fakeFacultyRepo) FindByID(ctx context.Context, id uuid.UUID) (*models.Faculty, error) {
	if f.profile != nil && f.profile.ID == id {
		return f.profile, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeFacultyRepo) FindByUserID(ctx context.Context, userID uuid.UUID) (*models.Faculty, error) {
	if f.profile != nil && f.profile.UserID == userID {
		return f.profile, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeFacultyRepo) Create(ctx context.Context, faculty *models.Faculty) error {
	return nil
}

func (f *fakeFacultyRepo) Update(ctx context.Context, faculty *models.Faculty) error {
	f.profile = faculty
	return nil
}

func (f *fakeFacultyRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return f.deleteErr
}

func (f *fakeFacultyRepo) AssignedSubjects(ctx context.Context, facultyID uuid.UUID) ([]models.Subject, error) {
	return nil, nil
}

func (f *fakeFacultyRepo) IsAssignedToClass(ctx context.Context, facultyID, classID uuid.UUID) (bool, error) {
	return f.assignedClasses[classID], nil
}

// =============================================================================
// Test Helpers
// =============================================================================

type facultyEnv struct {
	router     *gin.Engine
	faculty    *fakeFacultyRepo
	attendance *fakeAttendanceRepo
	profile    *models.Faculty
}

func setupFacultyEnv(t *testing.T) *facultyEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	user := &models.User{
		ID:    uuid.New(),
		Email: "faculty@example.com",
		Role:  models.RoleFaculty,
		Name:  "Test Faculty",
	}
	profile := &models.Faculty{
		ID:     uuid.New(),
		UserID: user.ID,
		Name:   user.Name,
	}

	faculty := &fakeFacultyRepo{
		profile:         profile,
		assignedClasses: map[uuid.UUID]bool{},
	}
	attendance := newFakeAttendanceRepo()
	handler := NewFacultyHandler(faculty, &fakeStudentRepo{}, attendance)

	router := gin.New()
	router.Use(func(c *gin.Context) { c.Set("principal", user) })
	router.POST("/api/faculty/attendance/mark", handler.MarkAttendance)
	router.GET("/api/faculty/attendance/class/:id", handler.ClassAttendance)
	router.GET("/api/faculty/classes/:id/students", handler.ClassStudents)

	return &facultyEnv{
		router:     router,
		faculty:    faculty,
		attendance: attendance,
		profile:    profile,
	}
}

func markSlot(t *testing.T, router *gin.Engine, body MarkAttendanceRequest) *httptest.ResponseRecorder {
	t.Helper()
	payload, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, "/api/faculty/attendance/mark", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// =============================================================================
// Mark Attendance Tests
// =============================================================================

func TestMarkAttendance_SlotUpsertOverwrites(t *testing.T) {
	env := setupFacultyEnv(t)
	studentID, subjectID := uuid.New(), uuid.New()
	classID := uuid.New()
	env.faculty.assignedClasses[classID] = true

	first := markSlot(t, env.router, MarkAttendanceRequest{
		StudentID: studentID,
		SubjectID: subjectID,
		ClassID:   &classID,
		Date:      "2026-08-28",
		TimeSlot:  "09:00-10:00",
		Status:    "present",
	})
	if first.Code != http.StatusCreated {
		t.Fatalf("first mark status = %d, want %d (%s)", first.Code, http.StatusCreated, first.Body.String())
	}

	second := markSlot(t, env.router, MarkAttendanceRequest{
		StudentID:         studentID,
		SubjectID:         subjectID,
		ClassID:           &classID,
		Date:              "2026-08-28",
		TimeSlot:          "09:00-10:00",
		Status:            "late",
		BiometricVerified: true,
		Notes:             "arrived 15 minutes in",
	})
	if second.Code != http.StatusCreated {
		t.Fatalf("second mark status = %d, want %d", second.Code, http.StatusCreated)
	}

	rows, err := env.attendance.ListByClass(context.Background(), classID, nil)
	if err != nil {
		t.Fatalf("ListByClass() error = %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("got %d rows for one (student, subject, date, slot), want 1", len(rows))
	}

	row := rows[0]
	if row.Status != models.StatusLate {
		t.Errorf("Status = %q, want overwritten to %q", row.Status, models.StatusLate)
	}
	if !row.BiometricVerified {
		t.Error("BiometricVerified = false, want overwritten to true")
	}
	if row.Notes != "arrived 15 minutes in" {
		t.Errorf("Notes = %q, want overwritten note", row.Notes)
	}
	if row.MarkedBy != env.profile.ID {
		t.Errorf("MarkedBy = %s, want faculty %s", row.MarkedBy, env.profile.ID)
	}
}

func TestMarkAttendance_DistinctSlotsInsert(t *testing.T) {
	env := setupFacultyEnv(t)
	studentID, subjectID := uuid.New(), uuid.New()
	classID := uuid.New()
	env.faculty.assignedClasses[classID] = true

	for _, slot := range []string{"09:00-10:00", "10:00-11:00"} {
		w := markSlot(t, env.router, MarkAttendanceRequest{
			StudentID: studentID,
			SubjectID: subjectID,
			ClassID:   &classID,
			Date:      "2026-08-28",
			TimeSlot:  slot,
			Status:    "present",
		})
		if w.Code != http.StatusCreated {
			t.Fatalf("mark status = %d, want %d", w.Code, http.StatusCreated)
		}
	}

	rows, err := env.attendance.ListByClass(context.Background(), classID, nil)
	if err != nil {
		t.Fatalf("ListByClass() error = %v", err)
	}
	if len(rows) != 2 {
		t.Errorf("got %d rows, want 2", len(rows))
	}
}

func TestMarkAttendance_InvalidStatus(t *testing.T) {
	env := setupFacultyEnv(t)

	w := markSlot(t, env.router, MarkAttendanceRequest{
		StudentID: uuid.New(),
		SubjectID: uuid.New(),
		Date:      "2026-08-28",
		Status:    "tardy",
	})
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", w.Code, http.StatusBadRequest)
	}
}

func TestMarkAttendance_InvalidDate(t *testing.T) {
	env := setupFacultyEnv(t)

	w := markSlot(t, env.router, MarkAttendanceRequest{
		StudentID: uuid.New(),
		SubjectID: uuid.New(),
		Date:      "28/08/2026",
		Status:    "present",
	})
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", w.Code, http.StatusBadRequest)
	}
}

// =============================================================================
// Class Assignment Tests
// =============================================================================

func TestClassStudents_NotAssigned(t *testing.T) {
	env := setupFacultyEnv(t)

	req := httptest.NewRequest(http.MethodGet, "/api/faculty/classes/"+uuid.NewString()+"/students", nil)
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)

	if w.Code != http.StatusForbidden {
		t.Errorf("status = %d, want %d", w.Code, http.StatusForbidden)
	}
}

func TestClassAttendance_NotAssigned(t *testing.T) {
	env := setupFacultyEnv(t)

	req := httptest.NewRequest(http.MethodGet, "/api/faculty/attendance/class/"+uuid.NewString(), nil)
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)

	if w.Code != http.StatusForbidden {
		t.Errorf("status = %d, want %d", w.Code, http.StatusForbidden)
	}
}

func TestClassAttendance_DateFilter(t *testing.T) {
	env := setupFacultyEnv(t)
	studentID, subjectID := uuid.New(), uuid.New()
	classID := uuid.New()
	env.faculty.assignedClasses[classID] = true

	for _, date := range []string{"2026-08-27", "2026-08-28"} {
		w := markSlot(t, env.router, MarkAttendanceRequest{
			StudentID: studentID,
			SubjectID: subjectID,
			ClassID:   &classID,
			Date:      date,
			TimeSlot:  "09:00-10:00",
			Status:    "present",
		})
		if w.Code != http.StatusCreated {
			t.Fatalf("mark status = %d", w.Code)
		}
	}

	req := httptest.NewRequest(http.MethodGet, "/api/faculty/attendance/class/"+classID.String()+"?date=2026-08-28", nil)
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}

	var rows []models.Attendance
	if err := json.Unmarshal(w.Body.Bytes(), &rows); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("got %d rows, want 1", len(rows))
	}
	if got := rows[0].Date.Format("2006-01-02"); got != "2026-08-28" {
		t.Errorf("row date = %s, want 2026-08-28", got)
	}
}
