package service_interfaces

import (
	"context"

	"github.com/kernel808/banknet/internal/adapter/http/models"
	"github.com/kernel808/banknet/internal/domain"
)

type AuthService interface {
	Login(ctx context.Context, req models.LoginRequest) (string, domain.User, error)
	CreateUser(ctx context.Context, req models.CreateUserRequest, actor domain.Actor) (domain.User, error)
	ParseToken(token string) (domain.Actor, error)
	EnsureDefaultAdmin(ctx context.Context) error
}
