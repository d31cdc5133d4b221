package models

import (
	"strings"

	"github.com/kernel808/banknet/internal/domain"
)

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (r LoginRequest) Validate() error {
	var problems []string

	if strings.TrimSpace(r.Username) == "" {
		problems = append(problems, "username is required")
	}
	if r.Password == "" {
		problems = append(problems, "password is required")
	}

	if len(problems) > 0 {
		return &domain.ValidationError{Problems: problems}
	}
	return nil
}

type LoginResponse struct {
	AccessToken string       `json:"accessToken"`
	TokenType   string       `json:"tokenType"`
	User        UserResponse `json:"user"`
}

type CreateUserRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	FullName string `json:"fullName"`
	Role     string `json:"role"`
	Email    string `json:"email"`
}

func (r CreateUserRequest) Validate() error {
	var problems []string

	if strings.TrimSpace(r.Username) == "" {
		problems = append(problems, "username is required")
	}
	if len(r.Password) < 8 {
		problems = append(problems, "password must be at least 8 characters")
	}
	switch domain.Role(strings.TrimSpace(r.Role)) {
	case domain.RoleAdmin, domain.RoleOfficer, domain.RoleCustomer:
	default:
		problems = append(problems, "role must be one of admin, officer, customer")
	}

	if len(problems) > 0 {
		return &domain.ValidationError{Problems: problems}
	}
	return nil
}

type UserResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	FullName string `json:"fullName"`
	Role     string `json:"role"`
	Email    string `json:"email"`
}

func MapUserToResponse(u domain.User) UserResponse {
	return UserResponse{
		ID:       u.ID,
		Username: u.Username,
		FullName: u.FullName,
		Role:     string(u.Role),
		Email:    u.Email,
	}
}
