package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/smartattend/attendance-service/internal/models"
	"github.com/smartattend/attendance-service/internal/service"
)

// =============================================================================
// Mock AuthService
// =============================================================================

type mockAuthService struct {
	authenticateFunc func(ctx context.Context, role models.Role, identifier, password string) (*models.User, error)
	loginFunc        func(ctx context.Context, role models.Role, identifier, password string) (*service.LoginResponse, error)
	logoutFunc       func(ctx context.Context, token string) error
	isRevokedFunc    func(ctx context.Context, tokenID string) (bool, error)
}

func (m *mockAuthService) Authenticate(ctx context.Context, role models.Role, identifier, password string) (*models.User, error) {
	if m.authenticateFunc != nil {
		return m.authenticateFunc(ctx, role, identifier, password)
	}
	return nil, errors.New("not implemented")
}

func (m *mockAuthService) Login(ctx context.Context, role models.Role, identifier, password string) (*service.LoginResponse, error) {
	if m.loginFunc != nil {
		return m.loginFunc(ctx, role, identifier, password)
	}
	return nil, errors.New("not implemented")
}

func (m *mockAuthService) Logout(ctx context.Context, token string) error {
	if m.logoutFunc != nil {
		return m.logoutFunc(ctx, token)
	}
	return errors.New("not implemented")
}

func (m *mockAuthService) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	if m.isRevokedFunc != nil {
		return m.isRevokedFunc(ctx, tokenID)
	}
	return false, nil
}

// =============================================================================
// Test Helpers
// =============================================================================

func authRouter(svc service.AuthService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	handler := NewAuthHandler(svc)
	router := gin.New()
	router.POST("/api/auth/hod/login", handler.HODLogin)
	router.POST("/api/auth/faculty/login", handler.FacultyLogin)
	router.POST("/api/auth/student/login", handler.StudentLogin)
	router.POST("/api/auth/logout", handler.Logout)
	return router
}

func postJSON(router *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	payload, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// =============================================================================
// Login Tests
// =============================================================================

func TestLogin_Success(t *testing.T) {
	tests := []struct {
		name string
		path string
		role models.Role
	}{
		{name: "hod", path: "/api/auth/hod/login", role: models.RoleHOD},
		{name: "faculty", path: "/api/auth/faculty/login", role: models.RoleFaculty},
		{name: "student", path: "/api/auth/student/login", role: models.RoleStudent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotRole models.Role
			svc := &mockAuthService{
				loginFunc: func(ctx context.Context, role models.Role, identifier, password string) (*service.LoginResponse, error) {
					gotRole = role
					return &service.LoginResponse{
						AccessToken: "signed-token",
						TokenType:   "bearer",
						ExpiresIn:   1800,
					}, nil
				},
			}

			w := postJSON(authRouter(svc), tt.path, LoginRequest{
				Email:    "ananths@gmail.com",
				Password: "10521",
			})

			if w.Code != http.StatusOK {
				t.Fatalf("status = %d, want %d (%s)", w.Code, http.StatusOK, w.Body.String())
			}
			if gotRole != tt.role {
				t.Errorf("login role = %q, want %q", gotRole, tt.role)
			}

			var response service.LoginResponse
			if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
				t.Fatalf("failed to decode response: %v", err)
			}
			if response.AccessToken != "signed-token" {
				t.Errorf("AccessToken = %q", response.AccessToken)
			}
			if response.TokenType != "bearer" {
				t.Errorf("TokenType = %q, want bearer", response.TokenType)
			}
		})
	}
}

func TestLogin_FailuresAreUniform401(t *testing.T) {
	// Unknown identifier, wrong password and store failure must be
	// indistinguishable in the response.
	failures := []struct {
		name string
		err  error
	}{
		{name: "unknown identifier", err: service.ErrUserNotFound},
		{name: "wrong password", err: service.ErrInvalidCredentials},
		{name: "store unavailable", err: service.ErrStoreUnavailable},
	}

	var bodies []string
	for _, tt := range failures {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mockAuthService{
				loginFunc: func(ctx context.Context, role models.Role, identifier, password string) (*service.LoginResponse, error) {
					return nil, tt.err
				},
			}

			w := postJSON(authRouter(svc), "/api/auth/student/login", LoginRequest{
				Email:    "whoever@example.com",
				Password: "whatever",
			})

			if w.Code != http.StatusUnauthorized {
				t.Errorf("status = %d, want %d", w.Code, http.StatusUnauthorized)
			}
			bodies = append(bodies, w.Body.String())
		})
	}

	for i := 1; i < len(bodies); i++ {
		if bodies[i] != bodies[0] {
			t.Errorf("failure responses differ: %q vs %q", bodies[0], bodies[i])
		}
	}
}

func TestLogin_MissingFields(t *testing.T) {
	svc := &mockAuthService{}
	router := authRouter(svc)

	tests := []struct {
		name string
		body map[string]string
	}{
		{name: "no password", body: map[string]string{"email": "a@b.c"}},
		{name: "no email", body: map[string]string{"password": "x"}},
		{name: "empty body", body: map[string]string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := postJSON(router, "/api/auth/hod/login", tt.body)
			if w.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want %d", w.Code, http.StatusBadRequest)
			}
		})
	}
}

// =============================================================================
// Logout Tests
// =============================================================================

func TestLogout(t *testing.T) {
	var revokedToken string
	svc := &mockAuthService{
		logoutFunc: func(ctx context.Context, token string) error {
			revokedToken = token
			return nil
		},
	}
	router := authRouter(svc)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil)
	req.Header.Set("Authorization", "Bearer the-token")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}
	if revokedToken != "the-token" {
		t.Errorf("revoked token = %q, want the-token", revokedToken)
	}
}

func TestLogout_MissingToken(t *testing.T) {
	router := authRouter(&mockAuthService{})

	req := httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want %d", w.Code, http.StatusUnauthorized)
	}
}
