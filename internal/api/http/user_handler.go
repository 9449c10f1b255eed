package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"

	"car-rental-backend/internal/domain"
	"car-rental-backend/internal/service"
)

// UserHandler exposes signup, login and profile endpoints.
type UserHandler struct {
	auth     service.AuthService
	users    service.UserService
	validate *validator.Validate
}

func NewUserHandler(auth service.AuthService, users service.UserService) *UserHandler {
	return &UserHandler{
		auth:     auth,
		users:    users,
		validate: validator.New(),
	}
}

type signupRequest struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Name     string `json:"name" validate:"required"`
	LastName string `json:"user_last_name"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type authResponse struct {
	Message string       `json:"message"`
	User    *domain.User `json:"user"`
	Token   string       `json:"token"`
}

// Signup handles POST /auth/signup.
func (h *UserHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req signupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		writeBadRequest(w, err.Error())
		return
	}

	user, token, err := h.auth.Signup(r.Context(), req.Username, req.Name, req.LastName, req.Email, req.Password)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, authResponse{
		Message: "user created successfully",
		User:    user,
		Token:   token,
	})
}

// Login handles POST /auth/login.
func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		writeBadRequest(w, err.Error())
		return
	}

	user, token, err := h.auth.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, authResponse{
		Message: "login successful",
		User:    user,
		Token:   token,
	})
}

// GetProfile handles GET /users/{id}. Self or admin only.
func (h *UserHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	actor, ok := ActorFromContext(r.Context())
	if !ok {
		writeError(w, domain.ErrUnauthorized)
		return
	}
	id, err := parseInt32(mux.Vars(r)["id"])
	if err != nil {
		writeBadRequest(w, "invalid user id")
		return
	}

	user, err := h.users.GetProfile(r.Context(), actor, id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, user)
}

type updateProfileRequest struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Name     string `json:"name" validate:"required"`
	LastName string `json:"user_last_name"`
	Email    string `json:"email" validate:"required,email"`
}

// UpdateProfile handles PUT /users/{id}. Self or admin only.
func (h *UserHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	actor, ok := ActorFromContext(r.Context())
	if !ok {
		writeError(w, domain.ErrUnauthorized)
		return
	}
	id, err := parseInt32(mux.Vars(r)["id"])
	if err != nil {
		writeBadRequest(w, "invalid user id")
		return
	}

	var req updateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		writeBadRequest(w, err.Error())
		return
	}

	user, err := h.users.UpdateProfile(r.Context(), actor, id, req.Username, req.Name, req.LastName, req.Email)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, user)
}
