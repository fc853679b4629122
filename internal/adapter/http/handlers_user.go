package adapthttp

import (
	"errors"
	"net/http"

	"blogapi/internal/app"
)

type createUserRequest struct {
	UserName string `json:"userName"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (s *Server) handleCreateUser(w http.ResponseWriter, r *http.Request) {
	var req createUserRequest
	if err := parseJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid body request", "Invalid body request")
		return
	}
	for _, msg := range []string{
		validateUserName(req.UserName),
		validateEmail(req.Email),
		validatePassword(req.Password),
	} {
		if msg != "" {
			writeError(w, http.StatusBadRequest, "Invalid body request", msg)
			return
		}
	}

	user, err := s.users.Register(r.Context(), req.UserName, req.Email, req.Password)
	switch {
	case errors.Is(err, app.ErrEmailTaken):
		writeError(w, http.StatusBadRequest, "Invalid body request", "Email already in use")
	case err != nil:
		writeError(w, http.StatusInternalServerError, "Internal error", "could not create user")
	default:
		writeJSON(w, http.StatusCreated, map[string]any{"message": "User created", "user": user})
	}
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := parseJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid body request", "Invalid body request")
		return
	}
	if msg := validateEmail(req.Email); msg != "" {
		writeError(w, http.StatusBadRequest, "Invalid body request", msg)
		return
	}
	if msg := validatePassword(req.Password); msg != "" {
		writeError(w, http.StatusBadRequest, "Invalid body request", msg)
		return
	}

	token, err := s.auth.Login(r.Context(), req.Email, req.Password)
	switch {
	case errors.Is(err, app.ErrInvalidCredentials):
		writeError(w, http.StatusUnauthorized, "Invalid credentials", "Invalid email or password")
	case err != nil:
		writeError(w, http.StatusInternalServerError, "Internal error", "could not log in")
	default:
		writeJSON(w, http.StatusOK, map[string]string{"message": "Login successful", "token": token})
	}
}

func (s *Server) handleListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := s.users.List(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Internal error", "could not list users")
		return
	}
	writeJSON(w, http.StatusOK, users)
}

func (s *Server) handleGetUser(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r, "userId")
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid body request", "'userId' must be a positive integer")
		return
	}
	user, err := s.users.Get(r.Context(), id)
	switch {
	case errors.Is(err, app.ErrUserNotFound):
		writeError(w, http.StatusNotFound, "User not found", "User not found")
	case err != nil:
		writeError(w, http.StatusInternalServerError, "Internal error", "could not fetch user")
	default:
		writeJSON(w, http.StatusOK, user)
	}
}

func (s *Server) handleUpdateUser(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r, "userId")
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid body request", "'userId' must be a positive integer")
		return
	}
	var req createUserRequest
	if err := parseJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid body request", "Invalid body request")
		return
	}
	for _, msg := range []string{
		validateUserName(req.UserName),
		validateEmail(req.Email),
		validatePassword(req.Password),
	} {
		if msg != "" {
			writeError(w, http.StatusBadRequest, "Invalid body request", msg)
			return
		}
	}

	user, err := s.users.Update(r.Context(), id, req.UserName, req.Email, req.Password)
	switch {
	case errors.Is(err, app.ErrUserNotFound):
		writeError(w, http.StatusNotFound, "User not found", "User not found")
	case errors.Is(err, app.ErrEmailTaken):
		writeError(w, http.StatusBadRequest, "Invalid body request", "Email already in use")
	case err != nil:
		writeError(w, http.StatusInternalServerError, "Internal error", "could not update user")
	default:
		writeJSON(w, http.StatusOK, user)
	}
}

func (s *Server) handleDeleteUser(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r, "userId")
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid body request", "'userId' must be a positive integer")
		return
	}
	err := s.users.Delete(r.Context(), id)
	switch {
	case errors.Is(err, app.ErrUserNotFound):
		writeError(w, http.StatusNotFound, "User not found", "User not found")
	case err != nil:
		writeError(w, http.StatusInternalServerError, "Internal error", "could not delete user")
	default:
		writeJSON(w, http.StatusOK, map[string]string{"message": "User deleted"})
	}
}
