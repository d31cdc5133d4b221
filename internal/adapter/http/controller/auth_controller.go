package controller

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/kernel808/banknet/internal/adapter/http/middleware"
	"github.com/kernel808/banknet/internal/adapter/http/models"
	"github.com/kernel808/banknet/internal/commons"
	"github.com/kernel808/banknet/internal/usecase/service_interfaces"
)

type AuthController struct {
	service service_interfaces.AuthService
}

func NewAuthController(service service_interfaces.AuthService) *AuthController {
	return &AuthController{service: service}
}

// RegisterPublicRoutes attaches the unauthenticated login route.
func (c *AuthController) RegisterPublicRoutes(router *mux.Router) {
	router.HandleFunc("/auth/login", c.login).Methods(http.MethodPost)
}

// RegisterRoutes attaches routes that require an authenticated actor.
func (c *AuthController) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/users", c.createUser).Methods(http.MethodPost)
}

func (c *AuthController) login(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logError(r, err, nil)
		writeJSON(w, http.StatusBadRequest, commons.ErrorResponse[models.LoginResponse]("invalid request body", err.Error()))
		logResponse(r, http.StatusBadRequest, start)
		return
	}
	logRequest(r, req)

	token, user, err := c.service.Login(r.Context(), req)
	if err != nil {
		writeError[models.LoginResponse](w, r, err, "login failed", start)
		return
	}

	writeJSON(w, http.StatusOK, commons.SuccessResponse("login successful", models.LoginResponse{
		AccessToken: token,
		TokenType:   "bearer",
		User:        models.MapUserToResponse(user),
	}))
	logResponse(r, http.StatusOK, start)
}

func (c *AuthController) createUser(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req models.CreateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logError(r, err, nil)
		writeJSON(w, http.StatusBadRequest, commons.ErrorResponse[models.UserResponse]("invalid request body", err.Error()))
		logResponse(r, http.StatusBadRequest, start)
		return
	}
	logRequest(r, req)

	actor, _ := middleware.ActorFromContext(r.Context())
	user, err := c.service.CreateUser(r.Context(), req, actor)
	if err != nil {
		writeError[models.UserResponse](w, r, err, "failed to create user", start)
		return
	}

	writeJSON(w, http.StatusCreated, commons.SuccessResponse("user created", models.MapUserToResponse(user)))
	logResponse(r, http.StatusCreated, start)
}
