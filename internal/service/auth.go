package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/smartattend/attendance-service/internal/models"
	"github.com/smartattend/attendance-service/internal/repository"
)

// Authentication failures. All three collapse to a uniform 401 over HTTP so
// clients cannot distinguish unknown identifiers from wrong credentials, but
// callers and logs can.
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrStoreUnavailable   = errors.New("credential store unavailable")
)

// revokedKeyPrefix namespaces denylisted token IDs in redis.
const revokedKeyPrefix = "revoked_token:"

// LoginResponse is the payload returned on successful login.
type LoginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
}

// AuthService authenticates users within a role scope and manages the
// lifecycle of the tokens it hands out.
type AuthService interface {
	// Authenticate looks up the credential record for identifier within the
	// given role and verifies the password against the stored digest. The
	// identifier matches the email field; for the hod and faculty roles a
	// miss is retried against the display name.
	Authenticate(ctx context.Context, role models.Role, identifier, password string) (*models.User, error)
	Login(ctx context.Context, role models.Role, identifier, password string) (*LoginResponse, error)
	// Logout denylists the token for the remainder of its lifetime.
	Logout(ctx context.Context, token string) error
	// IsRevoked reports whether the token ID has been denylisted.
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

type authService struct {
	userRepo   repository.UserRepository
	passwords  PasswordService
	jwtService JWTService
	redis      *redis.Client
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(userRepo repository.UserRepository, passwords PasswordService, jwtService JWTService, redisClient *redis.Client) AuthService {
	return &authService{
		userRepo:   userRepo,
		passwords:  passwords,
		jwtService: jwtService,
		redis:      redisClient,
	}
}

func (s *authService) Authenticate(ctx context.Context, role models.Role, identifier, password string) (*models.User, error) {
	user, err := s.lookup(ctx, role, identifier)
	if err != nil {
		return nil, err
	}

	if !user.IsActive {
		return nil, ErrInvalidCredentials
	}

	if !s.passwords.Verify(password, user.PasswordHash) {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}

// lookup finds the credential record for identifier within role. HOD and
// faculty logins historically accept a display name in place of an email;
// students must use their exact email.
func (s *authService) lookup(ctx context.Context, role models.Role, identifier string) (*models.User, error) {
	user, err := s.userRepo.FindByEmail(ctx, role, identifier)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}

	if role == models.RoleHOD || role == models.RoleFaculty {
		user, err = s.userRepo.FindByName(ctx, role, identifier)
		if err == nil {
			return user, nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
		}
	}

	return nil, ErrUserNotFound
}

func (s *authService) Login(ctx context.Context, role models.Role, identifier, password string) (*LoginResponse, error) {
	user, err := s.Authenticate(ctx, role, identifier, password)
	if err != nil {
		return nil, err
	}

	accessToken, err := s.jwtService.GenerateLoginToken(user)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	return &LoginResponse{
		AccessToken: accessToken,
		TokenType:   "bearer",
		ExpiresIn:   int64(s.jwtService.GetLoginExpiry().Seconds()),
	}, nil
}

func (s *authService) Logout(ctx context.Context, token string) error {
	claims, err := s.jwtService.ValidateToken(token)
	if err != nil {
		return err
	}

	remaining := time.Until(claims.ExpiresAt.Time)
	if remaining <= 0 {
		return nil
	}

	if err := s.redis.Set(ctx, revokedKeyPrefix+claims.ID, "1", remaining).Err(); err != nil {
		return fmt.Errorf("failed to revoke token: %w", err)
	}
	return nil
}

func (s *authService) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	_, err := s.redis.Get(ctx, revokedKeyPrefix+tokenID).Result()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to check token revocation: %w", err)
	}
	return true, nil
}
