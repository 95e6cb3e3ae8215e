package user

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/fokusly/fokusly/internal/rest"
	log "github.com/sirupsen/logrus"
)

type UserDTO struct {
	Uid         string      `json:"uid"`
	Username    string      `json:"username"`
	DisplayName string      `json:"displayName"`
	Settings    SettingsDTO `json:"settings"`
}

type SettingsDTO struct {
	Timezone            string `json:"timezone"`
	MonthlyGoalMinutes  int    `json:"monthlyGoalMinutes"`
	MonthlyGoalSessions int    `json:"monthlyGoalSessions"`
}

type Handler struct {
	userService Service
}

func NewHandler(userService Service) *Handler {
	return &Handler{
		userService: userService,
	}
}

// CreateUser godoc
// @Summary Create a new user
// @Description Register a new user in the system
// @Tags User
// @Accept json
// @Produce json
// @Param user body UserDTO true "User"
// @Success 201 {object} UserDTO
// @Failure 400 {object} rest.ErrorResponse "Invalid request"
// @Router /api/user [post]
func (h *Handler) CreateUser(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	log.Debug("Creating user")

	var dto UserDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		rest.WriteError(w, http.StatusBadRequest, "Invalid request body format", "")
		return
	}
	log.Tracef("Creating new user: %+v", dto)

	createdUser, err := h.userService.CreateUser(r.Context(), dtoToUser(dto))
	if err != nil {
		if errors.Is(err, ErrUserDataInvalid) {
			rest.WriteError(w, http.StatusBadRequest, "Username and display name are required", "")
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(userToDTO(createdUser)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// CurrentUser godoc
// @Summary Get current user
// @Description Retrieve the currently authenticated user's information
// @Tags User
// @Produce json
// @Success 200 {object} UserDTO
// @Failure 403 {string} string "User not found"
// @Router /api/user/current [get]
func (h *Handler) CurrentUser(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	current, err := h.userService.GetCurrentUser(r.Context())
	if err != nil {
		if errors.Is(err, ErrNoUser) || errors.Is(err, ErrUserNotFound) {
			http.Error(w, "user not found", http.StatusForbidden)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	if err := json.NewEncoder(w).Encode(userToDTO(current)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// UpdateUser godoc
// @Summary Update current user
// @Description Update display name, timezone, and monthly goals
// @Tags User
// @Accept json
// @Produce json
// @Param user body UserDTO true "User"
// @Success 200 {object} UserDTO
// @Failure 400 {object} rest.ErrorResponse "Invalid request"
// @Router /api/user/current [put]
func (h *Handler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var dto UserDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		rest.WriteError(w, http.StatusBadRequest, "Invalid request body format", "")
		return
	}

	updated, err := h.userService.UpdateUser(r.Context(), dtoToUser(dto))
	if err != nil {
		if errors.Is(err, ErrNoUser) || errors.Is(err, ErrUserNotFound) {
			http.Error(w, "user not found", http.StatusForbidden)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	if err := json.NewEncoder(w).Encode(userToDTO(updated)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// IsUsernameAvailable godoc
// @Summary Check username availability
// @Tags User
// @Produce json
// @Param username query string true "Username"
// @Success 200 {object} map[string]bool
// @Router /api/user/name-availability [get]
func (h *Handler) IsUsernameAvailable(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	username := r.URL.Query().Get("username")
	if username == "" {
		rest.WriteError(w, http.StatusBadRequest, "Username is required", "")
		return
	}

	available, err := h.userService.IsUsernameAvailable(r.Context(), username)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	if err := json.NewEncoder(w).Encode(map[string]bool{"available": available}); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func userToDTO(u User) UserDTO {
	return UserDTO{
		Uid:         u.Uid,
		Username:    u.Username,
		DisplayName: u.DisplayName,
		Settings: SettingsDTO{
			Timezone:            u.Settings.Timezone,
			MonthlyGoalMinutes:  u.Settings.MonthlyGoalMinutes,
			MonthlyGoalSessions: u.Settings.MonthlyGoalSessions,
		},
	}
}

func dtoToUser(dto UserDTO) User {
	return User{
		Uid:         dto.Uid,
		Username:    dto.Username,
		DisplayName: dto.DisplayName,
		Settings: Settings{
			Timezone:            dto.Settings.Timezone,
			MonthlyGoalMinutes:  dto.Settings.MonthlyGoalMinutes,
			MonthlyGoalSessions: dto.Settings.MonthlyGoalSessions,
		},
	}
}
