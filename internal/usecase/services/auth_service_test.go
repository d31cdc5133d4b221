package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kernel808/banknet/internal/adapter/http/models"
	"github.com/kernel808/banknet/internal/adapter/repository/memory"
	"github.com/kernel808/banknet/internal/domain"
	"github.com/kernel808/banknet/internal/usecase/services"
)

func newAuthService() *services.AuthService {
	return services.NewAuthService(memory.NewUserRepository(), "test-secret", time.Hour, "kompx3", "K3RN3L808")
}

func TestAuthServiceDefaultAdminLogin(t *testing.T) {
	svc := newAuthService()
	require.NoError(t, svc.EnsureDefaultAdmin(context.Background()))

	token, user, err := svc.Login(context.Background(), models.LoginRequest{Username: "kompx3", Password: "K3RN3L808"})
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, domain.RoleAdmin, user.Role)
}

func TestAuthServiceEnsureDefaultAdminIsIdempotent(t *testing.T) {
	svc := newAuthService()
	require.NoError(t, svc.EnsureDefaultAdmin(context.Background()))
	require.NoError(t, svc.EnsureDefaultAdmin(context.Background()))
}

func TestAuthServiceLoginWrongPassword(t *testing.T) {
	svc := newAuthService()
	require.NoError(t, svc.EnsureDefaultAdmin(context.Background()))

	_, _, err := svc.Login(context.Background(), models.LoginRequest{Username: "kompx3", Password: "wrong"})
	require.ErrorIs(t, err, services.ErrInvalidCredentials)
}

func TestAuthServiceLoginUnknownUser(t *testing.T) {
	svc := newAuthService()

	_, _, err := svc.Login(context.Background(), models.LoginRequest{Username: "ghost", Password: "whatever"})
	require.ErrorIs(t, err, services.ErrInvalidCredentials)
}

func TestAuthServiceTokenRoundTrip(t *testing.T) {
	svc := newAuthService()
	require.NoError(t, svc.EnsureDefaultAdmin(context.Background()))

	token, user, err := svc.Login(context.Background(), models.LoginRequest{Username: "kompx3", Password: "K3RN3L808"})
	require.NoError(t, err)

	actor, err := svc.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, actor.UserID)
	assert.Equal(t, "kompx3", actor.Username)
	assert.Equal(t, domain.RoleAdmin, actor.Role)
}

func TestAuthServiceParseTokenRejectsGarbage(t *testing.T) {
	svc := newAuthService()
	_, err := svc.ParseToken("not-a-jwt")
	require.Error(t, err)
}

func TestAuthServiceParseTokenRejectsForeignSignature(t *testing.T) {
	issuer := services.NewAuthService(memory.NewUserRepository(), "other-secret", time.Hour, "kompx3", "K3RN3L808")
	require.NoError(t, issuer.EnsureDefaultAdmin(context.Background()))

	token, _, err := issuer.Login(context.Background(), models.LoginRequest{Username: "kompx3", Password: "K3RN3L808"})
	require.NoError(t, err)

	verifier := newAuthService()
	_, err = verifier.ParseToken(token)
	require.Error(t, err)
}

func TestAuthServiceCreateUser(t *testing.T) {
	svc := newAuthService()
	admin := domain.Actor{UserID: "a-1", Username: "kompx3", Role: domain.RoleAdmin}

	user, err := svc.CreateUser(context.Background(), models.CreateUserRequest{
		Username: "officer-1",
		Password: "longenough",
		FullName: "First Officer",
		Role:     "officer",
		Email:    "officer@banknet.sim",
	}, admin)
	require.NoError(t, err)
	assert.Equal(t, domain.RoleOfficer, user.Role)
	assert.NotEmpty(t, user.ID)
	assert.NotEqual(t, "longenough", user.PasswordHash)

	// Duplicate usernames are refused.
	_, err = svc.CreateUser(context.Background(), models.CreateUserRequest{
		Username: "officer-1",
		Password: "longenough",
		Role:     "officer",
	}, admin)
	var validationErr *domain.ValidationError
	require.ErrorAs(t, err, &validationErr)
}

func TestAuthServiceCreateUserRequiresAdmin(t *testing.T) {
	svc := newAuthService()
	actor := domain.Actor{UserID: "o-1", Username: "officer-1", Role: domain.RoleOfficer}

	_, err := svc.CreateUser(context.Background(), models.CreateUserRequest{
		Username: "someone",
		Password: "longenough",
		Role:     "customer",
	}, actor)
	var authErr *domain.AuthorizationError
	require.ErrorAs(t, err, &authErr)
}

func TestAuthServiceCreateUserValidation(t *testing.T) {
	svc := newAuthService()
	admin := domain.Actor{UserID: "a-1", Username: "kompx3", Role: domain.RoleAdmin}

	_, err := svc.CreateUser(context.Background(), models.CreateUserRequest{
		Username: "x",
		Password: "short",
		Role:     "superuser",
	}, admin)
	var validationErr *domain.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Len(t, validationErr.Problems, 2)
}
