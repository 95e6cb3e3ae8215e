package session

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/fokusly/fokusly/internal/rest"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

type SessionDTO struct {
	Id                string `json:"id"`
	Date              string `json:"date"`
	Minutes           int    `json:"minutes"`
	Timestamp         int64  `json:"timestamp"`
	PlanId            string `json:"planId,omitempty"`
	Subject           string `json:"subject,omitempty"`
	PlanTitle         string `json:"planTitle,omitempty"`
	Location          string `json:"location,omitempty"`
	Note              string `json:"note,omitempty"`
	CompletionPercent *int   `json:"completionPercent,omitempty"`
}

type HistoryDTO struct {
	Sessions     []SessionDTO `json:"sessions"`
	Total        int          `json:"total"`
	TotalMinutes int          `json:"totalMinutes"`
	AvgMinutes   int          `json:"avgMinutes"`
}

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// RecordSession godoc
// @Summary Record a focus session
// @Tags Session
// @Accept json
// @Produce json
// @Param session body SessionDTO true "Session"
// @Success 201 {object} SessionDTO
// @Failure 400 {object} rest.ErrorResponse "Invalid session data"
// @Router /api/session [post]
func (h *Handler) RecordSession(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var dto SessionDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		rest.WriteError(w, http.StatusBadRequest, "Invalid request body format", "")
		return
	}
	log.Tracef("Recording session: %+v", dto)

	stored, err := h.service.RecordSession(r.Context(), dtoToSession(dto))
	if err != nil {
		if errors.Is(err, ErrSessionInvalid) {
			rest.WriteError(w, http.StatusBadRequest, "Invalid session data",
				"date must be YYYY-MM-DD and minutes must be positive")
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(sessionToDTO(stored)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// GetHistory godoc
// @Summary List recorded focus sessions with a summary
// @Tags Session
// @Produce json
// @Param sort query string false "newest|oldest|longest"
// @Param from query string false "Start date YYYY-MM-DD"
// @Param to query string false "End date YYYY-MM-DD"
// @Success 200 {object} HistoryDTO
// @Router /api/session [get]
func (h *Handler) GetHistory(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	from := r.URL.Query().Get("from")
	to := r.URL.Query().Get("to")

	var sessions []FocusSession
	var err error
	if from != "" || to != "" {
		if !validDay(from) || !validDay(to) {
			rest.WriteError(w, http.StatusBadRequest, "Invalid date range",
				"from and to must both be YYYY-MM-DD")
			return
		}
		sessions, err = h.service.ListSessionsBetween(r.Context(), from, to)
	} else {
		sessions, err = h.service.ListSessions(r.Context(), SortOrder(r.URL.Query().Get("sort")))
	}
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	summary, err := h.service.Summary(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	dto := HistoryDTO{
		Sessions:     make([]SessionDTO, 0, len(sessions)),
		Total:        summary.Total,
		TotalMinutes: summary.TotalMinutes,
		AvgMinutes:   summary.AvgMinutes,
	}
	for _, session := range sessions {
		dto.Sessions = append(dto.Sessions, sessionToDTO(session))
	}

	if err := json.NewEncoder(w).Encode(dto); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// GetRecentNotes godoc
// @Summary List the latest sessions carrying a study note
// @Tags Session
// @Produce json
// @Success 200 {array} SessionDTO
// @Router /api/session/notes [get]
func (h *Handler) GetRecentNotes(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	noted, err := h.service.RecentNotes(r.Context(), 10)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	dtos := make([]SessionDTO, 0, len(noted))
	for _, session := range noted {
		dtos = append(dtos, sessionToDTO(session))
	}
	if err := json.NewEncoder(w).Encode(dtos); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// DeleteSession godoc
// @Summary Delete a focus session
// @Tags Session
// @Param sessionId path string true "Session ID"
// @Success 204
// @Failure 404 {object} rest.ErrorResponse "Session not found"
// @Router /api/session/{sessionId} [delete]
func (h *Handler) DeleteSession(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["sessionId"]

	if err := h.service.DeleteSession(r.Context(), id); err != nil {
		if errors.Is(err, ErrSessionNotFound) {
			rest.WriteError(w, http.StatusNotFound, "Session not found", "")
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func validDay(day string) bool {
	_, err := time.Parse(DateLayout, day)
	return err == nil
}

func sessionToDTO(s FocusSession) SessionDTO {
	return SessionDTO{
		Id:                s.Id,
		Date:              s.Date,
		Minutes:           s.Minutes,
		Timestamp:         s.RecordedAt.UnixMilli(),
		PlanId:            s.PlanId,
		Subject:           s.Subject,
		PlanTitle:         s.PlanTitle,
		Location:          s.Location,
		Note:              s.Note,
		CompletionPercent: s.CompletionPercent,
	}
}

func dtoToSession(dto SessionDTO) FocusSession {
	return FocusSession{
		Id:                dto.Id,
		Date:              dto.Date,
		Minutes:           dto.Minutes,
		PlanId:            dto.PlanId,
		Subject:           dto.Subject,
		PlanTitle:         dto.PlanTitle,
		Location:          dto.Location,
		Note:              dto.Note,
		CompletionPercent: dto.CompletionPercent,
	}
}
