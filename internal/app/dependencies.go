package app

import (
	"github.com/fokusly/fokusly/internal/config"
	"github.com/fokusly/fokusly/internal/event_bus"
	"github.com/fokusly/fokusly/internal/utils"
	"github.com/fokusly/fokusly/pkg/insights"
	"github.com/fokusly/fokusly/pkg/plan"
	"github.com/fokusly/fokusly/pkg/session"
	"github.com/fokusly/fokusly/pkg/user"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Dependencies holds all services and handlers for the application.
type Dependencies struct {
	EventBus *event_bus.EventBus

	UserService user.Service
	UserHandler *user.Handler

	SessionRepo    session.Repository
	SessionService session.Service
	SessionHandler *session.Handler

	PlanRepo    plan.Repository
	PlanService plan.Service
	PlanHandler *plan.Handler

	InsightsService insights.Service
	InsightsHandler *insights.Handler

	Clock utils.Clock
}

// BuildDependencies initializes and wires all application services and handlers.
func BuildDependencies(pool *pgxpool.Pool, cfg config.Application) *Dependencies {
	deps := &Dependencies{}

	deps.EventBus = event_bus.NewEventBus()
	deps.Clock = &utils.SystemClock{}

	deps.UserService = user.NewUserService(user.NewUserRepo(pool))
	deps.UserHandler = user.NewHandler(deps.UserService)

	deps.SessionRepo = session.NewRepository(pool)
	deps.SessionService = session.NewService(deps.SessionRepo, deps.EventBus)
	deps.SessionHandler = session.NewHandler(deps.SessionService)

	deps.PlanRepo = plan.NewRepository(pool)
	deps.PlanService = plan.NewService(deps.PlanRepo, deps.EventBus)
	deps.PlanHandler = plan.NewHandler(deps.PlanService)

	deps.InsightsService = insights.NewService(deps.SessionService, deps.PlanService, cfg.Goals, deps.EventBus)
	deps.InsightsHandler = insights.NewHandler(deps.InsightsService)

	return deps
}
