package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/kernel808/banknet/internal/adapter/http/models"
	"github.com/kernel808/banknet/internal/adapter/repository/repo_interfaces"
	"github.com/kernel808/banknet/internal/domain"
	"github.com/kernel808/banknet/internal/logger"
	"github.com/kernel808/banknet/internal/usecase/service_interfaces"
)

// Verify that AuthService implements the service_interfaces.AuthService interface
var _ service_interfaces.AuthService = (*AuthService)(nil)

var ErrInvalidCredentials = errors.New("invalid credentials")

type sessionClaims struct {
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

type AuthService struct {
	userRepo         repo_interfaces.UserRepository
	jwtSecret        []byte
	tokenExpiry      time.Duration
	defaultAdminUser string
	defaultAdminPass string
}

func NewAuthService(
	userRepo repo_interfaces.UserRepository,
	jwtSecret string,
	tokenExpiry time.Duration,
	defaultAdminUser string,
	defaultAdminPass string,
) *AuthService {
	return &AuthService{
		userRepo:         userRepo,
		jwtSecret:        []byte(jwtSecret),
		tokenExpiry:      tokenExpiry,
		defaultAdminUser: defaultAdminUser,
		defaultAdminPass: defaultAdminPass,
	}
}

func (s *AuthService) Login(ctx context.Context, req models.LoginRequest) (string, domain.User, error) {
	logger.Info("auth service login attempt", logger.Fields{
		"username": req.Username,
	})

	if err := req.Validate(); err != nil {
		return "", domain.User{}, err
	}

	user, err := s.userRepo.GetByUsername(ctx, strings.TrimSpace(req.Username))
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return "", domain.User{}, ErrInvalidCredentials
		}
		return "", domain.User{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		logger.Warn("auth service password mismatch", logger.Fields{
			"username": req.Username,
		})
		return "", domain.User{}, ErrInvalidCredentials
	}

	token, err := s.issueToken(user)
	if err != nil {
		logger.Error("auth service token issuance failed", err, logger.Fields{
			"username": user.Username,
		})
		return "", domain.User{}, fmt.Errorf("issue token: %w", err)
	}

	logger.Info("auth service login success", logger.Fields{
		"username": user.Username,
		"role":     user.Role,
	})

	return token, user, nil
}

func (s *AuthService) CreateUser(ctx context.Context, req models.CreateUserRequest, actor domain.Actor) (domain.User, error) {
	logger.Info("auth service create user request", logger.Fields{
		"payload": logger.SanitizePayload(req),
		"actor":   actor.Username,
	})

	if actor.Role != domain.RoleAdmin {
		return domain.User{}, &domain.AuthorizationError{Actor: actor.Username, RequiredRole: "admin"}
	}
	if err := req.Validate(); err != nil {
		return domain.User{}, err
	}

	username := strings.TrimSpace(req.Username)
	if _, err := s.userRepo.GetByUsername(ctx, username); err == nil {
		return domain.User{}, &domain.ValidationError{Problems: []string{"username already exists"}}
	} else if !errors.Is(err, domain.ErrRecordNotFound) {
		return domain.User{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return domain.User{}, fmt.Errorf("hash password: %w", err)
	}

	user := domain.User{
		ID:           uuid.NewString(),
		Username:     username,
		PasswordHash: string(hash),
		FullName:     strings.TrimSpace(req.FullName),
		Role:         domain.Role(strings.TrimSpace(req.Role)),
		Email:        strings.TrimSpace(req.Email),
		CreatedAt:    time.Now().UTC(),
	}

	created, err := s.userRepo.Create(ctx, user)
	if err != nil {
		return domain.User{}, err
	}

	logger.Info("auth service user created", logger.Fields{
		"username": created.Username,
		"role":     created.Role,
	})

	return created, nil
}

func (s *AuthService) ParseToken(token string) (domain.Actor, error) {
	claims := &sessionClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return s.jwtSecret, nil
	})
	if err != nil || !parsed.Valid {
		return domain.Actor{}, fmt.Errorf("invalid token: %w", err)
	}

	return domain.Actor{
		UserID:   claims.Subject,
		Username: claims.Username,
		Role:     domain.Role(claims.Role),
	}, nil
}

// EnsureDefaultAdmin seeds the simulation's administrator account on first
// startup so the API is usable with an empty user table.
func (s *AuthService) EnsureDefaultAdmin(ctx context.Context) error {
	if s.defaultAdminUser == "" {
		return nil
	}

	_, err := s.userRepo.GetByUsername(ctx, s.defaultAdminUser)
	if err == nil {
		return nil
	}
	if !errors.Is(err, domain.ErrRecordNotFound) {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(s.defaultAdminPass), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash default admin password: %w", err)
	}

	_, err = s.userRepo.Create(ctx, domain.User{
		ID:           uuid.NewString(),
		Username:     s.defaultAdminUser,
		PasswordHash: string(hash),
		FullName:     "System Administrator",
		Role:         domain.RoleAdmin,
		Email:        "admin@banknet.sim",
		CreatedAt:    time.Now().UTC(),
	})
	if err != nil {
		return err
	}

	logger.Info("auth service default admin seeded", logger.Fields{
		"username": s.defaultAdminUser,
	})
	return nil
}

func (s *AuthService) issueToken(user domain.User) (string, error) {
	now := time.Now()
	claims := sessionClaims{
		Username: user.Username,
		Role:     string(user.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenExpiry)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.jwtSecret)
}
