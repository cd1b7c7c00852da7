package handlers

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/smartattend/attendance-service/internal/models"
)

// =============================================================================
// Fake UserRepository
// =============================================================================

type fakeUserRepo struct {
	deleteErr error
}

func (f *fakeUserRepo) FindByEmail(ctx context.Context, role models.Role, email string) (*models.User, error) {
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepo) FindByName(ctx context.Context, role models.Role, name string) (*models.User, error) {
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepo) Create(ctx context.Context, user *models.User) error {
	return nil
}

func (f *fakeUserRepo) Update(ctx context.Context, user *models.User) error {
	return nil
}

func (f *fakeUserRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return f.deleteErr
}

// =============================================================================
// Test Helpers
// =============================================================================

type hodEnv struct {
	router   *gin.Engine
	users    *fakeUserRepo
	faculty  *fakeFacultyRepo
	students *fakeStudentRepo
}

func setupHODEnv(t *testing.T) *hodEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	users := &fakeUserRepo{}
	faculty := &fakeFacultyRepo{assignedClasses: map[uuid.UUID]bool{}}
	students := &fakeStudentRepo{}
	handler := NewHODHandler(users, nil, faculty, students, nil, nil, nil, nil, nil)

	router := gin.New()
	router.DELETE("/api/hod/faculty/:id", handler.DeleteFaculty)
	router.DELETE("/api/hod/students/:id", handler.DeleteStudent)

	return &hodEnv{router: router, users: users, faculty: faculty, students: students}
}

func deleteRequest(t *testing.T, router *gin.Engine, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodDelete, path, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// =============================================================================
// Delete Conflict Tests
// =============================================================================

func TestDeleteFaculty_AttendanceHistoryConflict(t *testing.T) {
	env := setupHODEnv(t)
	env.faculty.profile = &models.Faculty{ID: uuid.New(), UserID: uuid.New(), Name: "Test Faculty"}
	env.faculty.deleteErr = fmt.Errorf("failed to delete faculty %s: %w", env.faculty.profile.ID, gorm.ErrForeignKeyViolated)

	w := deleteRequest(t, env.router, "/api/hod/faculty/"+env.faculty.profile.ID.String())
	if w.Code != http.StatusConflict {
		t.Errorf("status = %d, want %d (%s)", w.Code, http.StatusConflict, w.Body.String())
	}
}

func TestDeleteFaculty_UserRowConflict(t *testing.T) {
	env := setupHODEnv(t)
	env.faculty.profile = &models.Faculty{ID: uuid.New(), UserID: uuid.New(), Name: "Test Faculty"}
	env.users.deleteErr = fmt.Errorf("failed to delete user %s: %w", env.faculty.profile.UserID, gorm.ErrForeignKeyViolated)

	w := deleteRequest(t, env.router, "/api/hod/faculty/"+env.faculty.profile.ID.String())
	if w.Code != http.StatusConflict {
		t.Errorf("status = %d, want %d (%s)", w.Code, http.StatusConflict, w.Body.String())
	}
}

func TestDeleteFaculty_Success(t *testing.T) {
	env := setupHODEnv(t)
	env.faculty.profile = &models.Faculty{ID: uuid.New(), UserID: uuid.New(), Name: "Test Faculty"}

	w := deleteRequest(t, env.router, "/api/hod/faculty/"+env.faculty.profile.ID.String())
	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want %d (%s)", w.Code, http.StatusOK, w.Body.String())
	}
}

func TestDeleteFaculty_NotFound(t *testing.T) {
	env := setupHODEnv(t)

	w := deleteRequest(t, env.router, "/api/hod/faculty/"+uuid.NewString())
	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want %d", w.Code, http.StatusNotFound)
	}
}

func TestDeleteStudent_AttendanceHistoryConflict(t *testing.T) {
	env := setupHODEnv(t)
	env.students.profile = &models.Student{ID: uuid.New(), UserID: uuid.New(), Name: "Test Student"}
	env.students.deleteErr = fmt.Errorf("failed to delete student %s: %w", env.students.profile.ID, gorm.ErrForeignKeyViolated)

	w := deleteRequest(t, env.router, "/api/hod/students/"+env.students.profile.ID.String())
	if w.Code != http.StatusConflict {
		t.Errorf("status = %d, want %d (%s)", w.Code, http.StatusConflict, w.Body.String())
	}
}

func TestDeleteStudent_Success(t *testing.T) {
	env := setupHODEnv(t)
	env.students.profile = &models.Student{ID: uuid.New(), UserID: uuid.New(), Name: "Test Student"}

	w := deleteRequest(t, env.router, "/api/hod/students/"+env.students.profile.ID.String())
	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want %d (%s)", w.Code, http.StatusOK, w.Body.String())
	}
}
