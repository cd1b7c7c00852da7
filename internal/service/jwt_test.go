package service

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/smartattend/attendance-service/internal/models"
)

const (
	testSecret      = "test-secret-key-at-least-32-chars-long"
	testAccessTTL   = 15 * time.Minute
	testLoginTTL    = 30 * time.Minute
	testOtherSecret = "another-secret-also-32-chars-long!!!"
)

func testUser() *models.User {
	return &models.User{
		ID:       uuid.New(),
		Email:    "ananths@gmail.com",
		Role:     models.RoleHOD,
		Name:     "Ananth",
		IsActive: true,
	}
}

func newTestJWTService(t *testing.T, secret string, accessTTL, loginTTL time.Duration) JWTService {
	t.Helper()
	service, err := NewJWTService(secret, accessTTL, loginTTL)
	if err != nil {
		t.Fatalf("NewJWTService() error = %v", err)
	}
	return service
}

// =============================================================================
// Constructor Tests
// =============================================================================

func TestNewJWTService(t *testing.T) {
	service, err := NewJWTService(testSecret, testAccessTTL, testLoginTTL)
	if err != nil {
		t.Fatalf("NewJWTService() error = %v", err)
	}

	if got := service.GetAccessExpiry(); got != testAccessTTL {
		t.Errorf("GetAccessExpiry() = %v, want %v", got, testAccessTTL)
	}
	if got := service.GetLoginExpiry(); got != testLoginTTL {
		t.Errorf("GetLoginExpiry() = %v, want %v", got, testLoginTTL)
	}
}

func TestNewJWTService_WeakSecret(t *testing.T) {
	tests := []struct {
		name   string
		secret string
	}{
		{name: "empty", secret: ""},
		{name: "short", secret: "short"},
		{name: "31 bytes", secret: strings.Repeat("x", 31)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, err := NewJWTService(tt.secret, testAccessTTL, testLoginTTL)
			if !errors.Is(err, ErrSecretTooShort) {
				t.Errorf("NewJWTService() error = %v, want ErrSecretTooShort", err)
			}
			if service != nil {
				t.Error("NewJWTService() returned a service for a weak secret")
			}
		})
	}
}

// =============================================================================
// Generate Tests
// =============================================================================

func TestGenerateLoginToken(t *testing.T) {
	service := newTestJWTService(t, testSecret, testAccessTTL, testLoginTTL)
	user := testUser()

	token, err := service.GenerateLoginToken(user)
	if err != nil {
		t.Fatalf("GenerateLoginToken() error = %v", err)
	}
	if token == "" {
		t.Fatal("Generated token is empty")
	}

	claims, err := service.ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken() error = %v", err)
	}
	if claims.Subject != user.Email {
		t.Errorf("Claims.Subject = %q, want %q", claims.Subject, user.Email)
	}
	if claims.Role != models.RoleHOD {
		t.Errorf("Claims.Role = %q, want %q", claims.Role, models.RoleHOD)
	}
	if claims.UserID != user.ID {
		t.Errorf("Claims.UserID = %v, want %v", claims.UserID, user.ID)
	}
	if claims.ID == "" {
		t.Error("Claims.ID (jti) is empty")
	}

	ttl := claims.ExpiresAt.Sub(claims.IssuedAt.Time)
	if ttl != testLoginTTL {
		t.Errorf("token ttl = %v, want %v", ttl, testLoginTTL)
	}
}

func TestGenerateToken_UsesAccessTTL(t *testing.T) {
	service := newTestJWTService(t, testSecret, testAccessTTL, testLoginTTL)

	token, err := service.GenerateToken(testUser())
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}

	claims, err := service.ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken() error = %v", err)
	}
	if ttl := claims.ExpiresAt.Sub(claims.IssuedAt.Time); ttl != testAccessTTL {
		t.Errorf("token ttl = %v, want %v", ttl, testAccessTTL)
	}
}

func TestGenerateToken_UniqueTokenIDs(t *testing.T) {
	service := newTestJWTService(t, testSecret, testAccessTTL, testLoginTTL)
	user := testUser()

	first, err := service.GenerateToken(user)
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}
	second, err := service.GenerateToken(user)
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}

	firstClaims, _ := service.ValidateToken(first)
	secondClaims, _ := service.ValidateToken(second)
	if firstClaims.ID == secondClaims.ID {
		t.Error("two tokens share the same jti")
	}
}

// =============================================================================
// Validate Tests
// =============================================================================

func TestValidateToken_Expired(t *testing.T) {
	service := newTestJWTService(t, testSecret, -1*time.Second, testLoginTTL)

	token, err := service.GenerateToken(testUser())
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}

	_, err = service.ValidateToken(token)
	if !errors.Is(err, ErrTokenExpired) {
		t.Errorf("ValidateToken() error = %v, want ErrTokenExpired", err)
	}
}

func TestValidateToken_WrongSecret(t *testing.T) {
	issuer := newTestJWTService(t, testSecret, testAccessTTL, testLoginTTL)
	verifier := newTestJWTService(t, testOtherSecret, testAccessTTL, testLoginTTL)

	token, err := issuer.GenerateToken(testUser())
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}

	_, err = verifier.ValidateToken(token)
	if !errors.Is(err, ErrTokenInvalid) {
		t.Errorf("ValidateToken() error = %v, want ErrTokenInvalid", err)
	}
}

func TestValidateToken_Tampered(t *testing.T) {
	service := newTestJWTService(t, testSecret, testAccessTTL, testLoginTTL)

	token, err := service.GenerateToken(testUser())
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}

	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		t.Fatalf("unexpected token shape: %d parts", len(parts))
	}
	tampered := parts[0] + "." + parts[1] + "." + strings.Repeat("A", len(parts[2]))

	_, err = service.ValidateToken(tampered)
	if !errors.Is(err, ErrTokenInvalid) {
		t.Errorf("ValidateToken() error = %v, want ErrTokenInvalid", err)
	}
}

func TestValidateToken_Malformed(t *testing.T) {
	service := newTestJWTService(t, testSecret, testAccessTTL, testLoginTTL)

	tests := []struct {
		name  string
		token string
	}{
		{name: "empty", token: ""},
		{name: "garbage", token: "not-a-token"},
		{name: "two segments", token: "aaaa.bbbb"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.ValidateToken(tt.token)
			if !errors.Is(err, ErrTokenMalformed) {
				t.Errorf("ValidateToken(%q) error = %v, want ErrTokenMalformed", tt.token, err)
			}
		})
	}
}

func TestValidateToken_RejectsNonHMAC(t *testing.T) {
	service := newTestJWTService(t, testSecret, testAccessTTL, testLoginTTL)

	// Token signed with "none" must never validate.
	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{
		Role: models.RoleHOD,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "ananths@gmail.com",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})
	token, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("SignedString() error = %v", err)
	}

	if _, err := service.ValidateToken(token); err == nil {
		t.Error("ValidateToken() accepted an unsigned token")
	}
}
