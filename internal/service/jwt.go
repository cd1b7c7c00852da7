package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/smartattend/attendance-service/internal/models"
)

// Token verification failures. The HTTP layer maps all of them to 401.
var (
	ErrTokenExpired   = errors.New("token expired")
	ErrTokenInvalid   = errors.New("token signature invalid")
	ErrTokenMalformed = errors.New("token malformed")
)

// ErrSecretTooShort rejects HS256 secrets weaker than the hash block size.
var ErrSecretTooShort = errors.New("jwt secret must be at least 32 bytes")

const minSecretLen = 32

// Claims represents JWT token claims. The registered Subject carries the
// user's email; ID carries a per-token identifier used for revocation.
type Claims struct {
	UserID uuid.UUID   `json:"user_id"`
	Role   models.Role `json:"role"`
	Name   string      `json:"name,omitempty"`
	jwt.RegisteredClaims
}

// JWTService defines JWT token operations.
type JWTService interface {
	// GenerateToken issues a token for user valid for the default access TTL.
	GenerateToken(user *models.User) (string, error)
	// GenerateLoginToken issues the longer-lived token handed out at login.
	GenerateLoginToken(user *models.User) (string, error)
	// ValidateToken checks signature and expiry and returns the embedded
	// claims unchanged. Failures are ErrTokenExpired, ErrTokenInvalid or
	// ErrTokenMalformed.
	ValidateToken(tokenString string) (*Claims, error)
	GetAccessExpiry() time.Duration
	GetLoginExpiry() time.Duration
}

type jwtService struct {
	secret       []byte
	accessExpiry time.Duration
	loginExpiry  time.Duration
}

// NewJWTService creates a new JWTService instance. It returns
// ErrSecretTooShort if the secret is empty or shorter than 32 bytes.
func NewJWTService(secret string, accessExpiry, loginExpiry time.Duration) (JWTService, error) {
	if len(secret) < minSecretLen {
		return nil, ErrSecretTooShort
	}
	return &jwtService{
		secret:       []byte(secret),
		accessExpiry: accessExpiry,
		loginExpiry:  loginExpiry,
	}, nil
}

func (s *jwtService) GenerateToken(user *models.User) (string, error) {
	return s.generateToken(user, s.accessExpiry)
}

func (s *jwtService) GenerateLoginToken(user *models.User) (string, error) {
	return s.generateToken(user, s.loginExpiry)
}

func (s *jwtService) generateToken(user *models.User, expiry time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID: user.ID,
		Role:   user.Role,
		Name:   user.Name,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.Email,
			ExpiresAt: jwt.NewNumericDate(now.Add(expiry)),
			IssuedAt:  jwt.NewNumericDate(now),
			ID:        uuid.NewString(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

func (s *jwtService) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrTokenInvalid
		}
		return s.secret, nil
	})

	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, ErrTokenExpired
		case errors.Is(err, jwt.ErrTokenMalformed):
			return nil, ErrTokenMalformed
		default:
			return nil, ErrTokenInvalid
		}
	}

	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}

	return nil, ErrTokenInvalid
}

func (s *jwtService) GetAccessExpiry() time.Duration {
	return s.accessExpiry
}

func (s *jwtService) GetLoginExpiry() time.Duration {
	return s.loginExpiry
}
