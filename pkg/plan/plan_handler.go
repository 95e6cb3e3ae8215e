package plan

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/fokusly/fokusly/internal/rest"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

type PlanDTO struct {
	Id               string `json:"id"`
	Title            string `json:"title"`
	Date             string `json:"date"`
	StartTime        string `json:"startTime"`
	EndTime          string `json:"endTime,omitempty"`
	ReminderTime     string `json:"reminderTime,omitempty"`
	Completed        bool   `json:"completed"`
	TargetMinutes    int    `json:"targetMinutes,omitempty"`
	CompletedMinutes int    `json:"completedMinutes,omitempty"`
	PomodoroCount    int    `json:"pomodoroCount,omitempty"`
	Location         string `json:"location,omitempty"`
}

type StatusDTO struct {
	Completed bool `json:"completed"`
}

type ProgressDTO struct {
	Minutes   int `json:"minutes"`
	Pomodoros int `json:"pomodoros"`
}

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// CreatePlan godoc
// @Summary Create a study plan
// @Tags Plan
// @Accept json
// @Produce json
// @Param plan body PlanDTO true "Plan"
// @Success 201 {object} PlanDTO
// @Failure 400 {object} rest.ErrorResponse "Invalid plan data"
// @Router /api/plan [post]
func (h *Handler) CreatePlan(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var dto PlanDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		rest.WriteError(w, http.StatusBadRequest, "Invalid request body format", "")
		return
	}
	log.Tracef("Creating plan: %+v", dto)

	created, err := h.service.CreatePlan(r.Context(), dtoToPlan(dto))
	if err != nil {
		if errors.Is(err, ErrPlanInvalid) {
			rest.WriteError(w, http.StatusBadRequest, "Invalid plan data",
				"title, date (YYYY-MM-DD), and startTime (HH:MM) are required")
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(planToDTO(created)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// GetPlans godoc
// @Summary List study plans, optionally within a date range
// @Tags Plan
// @Produce json
// @Param from query string false "Start date YYYY-MM-DD"
// @Param to query string false "End date YYYY-MM-DD"
// @Success 200 {array} PlanDTO
// @Router /api/plan [get]
func (h *Handler) GetPlans(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	plans, err := h.service.GetPlans(r.Context(), r.URL.Query().Get("from"), r.URL.Query().Get("to"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	dtos := make([]PlanDTO, 0, len(plans))
	for _, p := range plans {
		dtos = append(dtos, planToDTO(p))
	}
	if err := json.NewEncoder(w).Encode(dtos); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// UpdatePlan godoc
// @Summary Update a study plan
// @Tags Plan
// @Accept json
// @Produce json
// @Param planId path string true "Plan ID"
// @Param plan body PlanDTO true "Plan"
// @Success 200 {object} PlanDTO
// @Failure 404 {object} rest.ErrorResponse "Plan not found"
// @Router /api/plan/{planId} [put]
func (h *Handler) UpdatePlan(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var dto PlanDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		rest.WriteError(w, http.StatusBadRequest, "Invalid request body format", "")
		return
	}
	dto.Id = mux.Vars(r)["planId"]

	updated, err := h.service.UpdatePlan(r.Context(), dtoToPlan(dto))
	if err != nil {
		h.writePlanError(w, err)
		return
	}

	if err := json.NewEncoder(w).Encode(planToDTO(updated)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// SetStatus godoc
// @Summary Mark a study plan completed or not
// @Tags Plan
// @Accept json
// @Produce json
// @Param planId path string true "Plan ID"
// @Param status body StatusDTO true "Status"
// @Success 200 {object} PlanDTO
// @Failure 404 {object} rest.ErrorResponse "Plan not found"
// @Router /api/plan/{planId}/status [put]
func (h *Handler) SetStatus(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var dto StatusDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		rest.WriteError(w, http.StatusBadRequest, "Invalid request body format", "")
		return
	}

	updated, err := h.service.SetCompleted(r.Context(), mux.Vars(r)["planId"], dto.Completed)
	if err != nil {
		h.writePlanError(w, err)
		return
	}

	if err := json.NewEncoder(w).Encode(planToDTO(updated)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// AddProgress godoc
// @Summary Credit settled focus time against a plan
// @Tags Plan
// @Accept json
// @Produce json
// @Param planId path string true "Plan ID"
// @Param progress body ProgressDTO true "Progress"
// @Success 200 {object} PlanDTO
// @Failure 404 {object} rest.ErrorResponse "Plan not found"
// @Router /api/plan/{planId}/progress [post]
func (h *Handler) AddProgress(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var dto ProgressDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		rest.WriteError(w, http.StatusBadRequest, "Invalid request body format", "")
		return
	}

	updated, err := h.service.AddProgress(r.Context(), mux.Vars(r)["planId"], dto.Minutes, dto.Pomodoros)
	if err != nil {
		h.writePlanError(w, err)
		return
	}

	if err := json.NewEncoder(w).Encode(planToDTO(updated)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// DeletePlan godoc
// @Summary Delete a study plan
// @Tags Plan
// @Param planId path string true "Plan ID"
// @Success 204
// @Failure 404 {object} rest.ErrorResponse "Plan not found"
// @Router /api/plan/{planId} [delete]
func (h *Handler) DeletePlan(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeletePlan(r.Context(), mux.Vars(r)["planId"]); err != nil {
		h.writePlanError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) writePlanError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrPlanNotFound):
		rest.WriteError(w, http.StatusNotFound, "Plan not found", "")
	case errors.Is(err, ErrPlanInvalid):
		rest.WriteError(w, http.StatusBadRequest, "Invalid plan data", "")
	default:
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func planToDTO(p StudyPlan) PlanDTO {
	return PlanDTO{
		Id:               p.Id,
		Title:            p.Title,
		Date:             p.Date,
		StartTime:        p.StartTime,
		EndTime:          p.EndTime,
		ReminderTime:     p.ReminderTime,
		Completed:        p.Completed,
		TargetMinutes:    p.TargetMinutes,
		CompletedMinutes: p.CompletedMinutes,
		PomodoroCount:    p.PomodoroCount,
		Location:         p.Location,
	}
}

func dtoToPlan(dto PlanDTO) StudyPlan {
	return StudyPlan{
		Id:               dto.Id,
		Title:            dto.Title,
		Date:             dto.Date,
		StartTime:        dto.StartTime,
		EndTime:          dto.EndTime,
		ReminderTime:     dto.ReminderTime,
		Completed:        dto.Completed,
		TargetMinutes:    dto.TargetMinutes,
		CompletedMinutes: dto.CompletedMinutes,
		PomodoroCount:    dto.PomodoroCount,
		Location:         dto.Location,
	}
}
