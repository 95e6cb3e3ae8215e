package app

import (
	"github.com/fokusly/fokusly/internal/config"
	"github.com/gorilla/mux"
)

// RegisterRoutes registers all API endpoints.
func RegisterRoutes(r *mux.Router, deps *Dependencies, cfg config.Application) {

	// Insights
	r.HandleFunc("/api/insights", deps.InsightsHandler.GetStats).Methods("GET")

	// Focus sessions
	r.HandleFunc("/api/session", deps.SessionHandler.RecordSession).Methods("POST")
	r.HandleFunc("/api/session", deps.SessionHandler.GetHistory).Methods("GET")
	r.HandleFunc("/api/session/notes", deps.SessionHandler.GetRecentNotes).Methods("GET")
	r.HandleFunc("/api/session/{sessionId}", deps.SessionHandler.DeleteSession).Methods("DELETE")

	// Study plans
	r.HandleFunc("/api/plan", deps.PlanHandler.CreatePlan).Methods("POST")
	r.HandleFunc("/api/plan", deps.PlanHandler.GetPlans).Methods("GET")
	r.HandleFunc("/api/plan/{planId}", deps.PlanHandler.UpdatePlan).Methods("PUT")
	r.HandleFunc("/api/plan/{planId}/status", deps.PlanHandler.SetStatus).Methods("PUT")
	r.HandleFunc("/api/plan/{planId}/progress", deps.PlanHandler.AddProgress).Methods("POST")
	r.HandleFunc("/api/plan/{planId}", deps.PlanHandler.DeletePlan).Methods("DELETE")

	// User management
	r.HandleFunc("/api/user/current", deps.UserHandler.CurrentUser).Methods("GET")
	r.HandleFunc("/api/user/current", deps.UserHandler.UpdateUser).Methods("PUT")
	r.HandleFunc("/api/user", deps.UserHandler.CreateUser).Methods("POST")
	r.HandleFunc("/api/user/name-availability", deps.UserHandler.IsUsernameAvailable).Methods("GET").Queries("username", "{username}")
}
