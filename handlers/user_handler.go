package handlers

import (
	"encoding/json"
	"net/http"

	"golang.org/x/crypto/bcrypt"

	"safeindiatransport/auth"
	"safeindiatransport/models"
	"safeindiatransport/repository"
)

type UserHandler struct {
	Repo repository.UserRepository
	Auth *auth.JWTService
}

// Signup handler
func (h *UserHandler) Signup(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, ApiResponse{
			Success: false,
			Message: "Invalid request method",
		})
		return
	}

	var user models.AppUser
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		writeJSON(w, http.StatusBadRequest, ApiResponse{
			Success: false,
			Message: "Invalid request payload: " + err.Error(),
		})
		return
	}

	if user.Name == "" || user.Email == "" || user.Password == "" {
		writeJSON(w, http.StatusBadRequest, ApiResponse{
			Success: false,
			Message: "Name, email, and password are required",
		})
		return
	}
	// Open signup always yields a customer account. Only a logged-in admin
	// may assign a role, so the payload cannot mint admins.
	if auth.SessionFrom(r.Context()).IsAdmin() {
		if user.Role == "" {
			user.Role = models.RoleCustomer
		}
		if user.Role != models.RoleAdmin && user.Role != models.RoleCustomer {
			writeJSON(w, http.StatusBadRequest, ApiResponse{
				Success: false,
				Message: "Unknown role: " + user.Role,
			})
			return
		}
	} else {
		user.Role = models.RoleCustomer
	}

	existing, err := h.Repo.GetUserByEmail(r.Context(), user.Email)
	if err != nil {
		writeError(w, err)
		return
	}
	if existing != nil {
		writeJSON(w, http.StatusConflict, ApiResponse{
			Success: false,
			Message: "An account with this email already exists",
		})
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		writeError(w, err)
		return
	}
	user.Password = string(hash)

	if err := h.Repo.CreateUser(r.Context(), &user); err != nil {
		writeJSON(w, http.StatusInternalServerError, ApiResponse{
			Success: false,
			Message: "Failed to create user: " + err.Error(),
		})
		return
	}

	user.Password = "" // hide password hash

	writeJSON(w, http.StatusCreated, ApiResponse{
		Success: true,
		Message: "User signed up successfully",
		Data:    user,
	})
}

// Login handler
func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, ApiResponse{
			Success: false,
			Message: "Invalid request method",
		})
		return
	}

	var creds struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		writeJSON(w, http.StatusBadRequest, ApiResponse{
			Success: false,
			Message: "Invalid request payload: " + err.Error(),
		})
		return
	}

	user, err := h.Repo.GetUserByEmail(r.Context(), creds.Email)
	if err != nil || user == nil || !user.IsActive {
		writeJSON(w, http.StatusUnauthorized, ApiResponse{
			Success: false,
			Message: "Invalid email or password",
		})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(creds.Password)); err != nil {
		writeJSON(w, http.StatusUnauthorized, ApiResponse{
			Success: false,
			Message: "Invalid email or password",
		})
		return
	}

	token, err := h.Auth.IssueToken(user)
	if err != nil {
		writeError(w, err)
		return
	}

	user.Password = "" // hide password hash

	writeJSON(w, http.StatusOK, ApiResponse{
		Success: true,
		Message: "Login successful",
		Data: map[string]interface{}{
			"token": token,
			"user":  user,
		},
	})
}
