package insights

import (
	"context"
	"fmt"
	"sync"

	"github.com/fokusly/fokusly/internal/config"
	"github.com/fokusly/fokusly/internal/event_bus"
	"github.com/fokusly/fokusly/internal/utils"
	"github.com/fokusly/fokusly/pkg/plan"
	"github.com/fokusly/fokusly/pkg/session"
	"github.com/fokusly/fokusly/pkg/user"
	log "github.com/sirupsen/logrus"
)

type Service interface {
	// GetStats computes the analytics for the requested window kind. The
	// custom bounds are only read when kind is WindowCustom.
	GetStats(ctx context.Context, kind WindowKind, customStart string, customEnd string) (TimeRangeStats, error)
}

type cacheKey struct {
	userId  int
	kind    WindowKind
	start   string
	end     string
	day     string
	version uint64
}

type ServiceImpl struct {
	sessions session.Service
	plans    plan.Service
	goals    config.Goals
	clock    utils.Clock

	mu       sync.Mutex
	cache    map[cacheKey]TimeRangeStats
	versions map[int]uint64
}

// NewService builds the insights service and subscribes it for cache
// invalidation. Any recorded or deleted session and any plan change bumps
// the owning user's cache version.
func NewService(sessions session.Service, plans plan.Service, goals config.Goals, bus *event_bus.EventBus) *ServiceImpl {
	s := &ServiceImpl{
		sessions: sessions,
		plans:    plans,
		goals:    goals,
		clock:    &utils.SystemClock{},
		cache:    make(map[cacheKey]TimeRangeStats),
		versions: make(map[int]uint64),
	}
	bus.Subscribe(event_bus.SessionRecordedEvent, s.onDataChanged)
	bus.Subscribe(event_bus.SessionDeletedEvent, s.onDataChanged)
	bus.Subscribe(event_bus.PlanChangedEvent, s.onDataChanged)
	return s
}

func (s *ServiceImpl) GetStats(ctx context.Context, kind WindowKind, customStart string, customEnd string) (TimeRangeStats, error) {
	currentUser, err := user.CurrentUser(ctx)
	if err != nil {
		return TimeRangeStats{}, fmt.Errorf("failed to get current user: %w", err)
	}

	today := utils.Today(s.clock)
	key := cacheKey{
		userId:  currentUser.Id,
		kind:    kind,
		start:   customStart,
		end:     customEnd,
		day:     DayKey(today),
		version: s.version(currentUser.Id),
	}
	s.mu.Lock()
	cached, ok := s.cache[key]
	s.mu.Unlock()
	if ok {
		log.Tracef("insights cache hit for user %d, kind %s", currentUser.Id, kind)
		return cached, nil
	}

	sessions, err := s.sessions.ListSessions(ctx, session.SortNewest)
	if err != nil {
		return TimeRangeStats{}, fmt.Errorf("failed to list sessions: %w", err)
	}
	plans, err := s.plans.GetPlans(ctx, "", "")
	if err != nil {
		return TimeRangeStats{}, fmt.Errorf("failed to list plans: %w", err)
	}

	stats, err := Compute(Input{
		Sessions:    sessions,
		Plans:       plans,
		Kind:        kind,
		Today:       today,
		CustomStart: customStart,
		CustomEnd:   customEnd,
		Goals:       s.userGoals(currentUser),
	})
	if err != nil {
		return TimeRangeStats{}, err
	}

	s.mu.Lock()
	s.cache[key] = stats
	s.mu.Unlock()
	return stats, nil
}

// userGoals resolves a user's monthly targets, falling back to the
// configured defaults when the user has not set their own.
func (s *ServiceImpl) userGoals(u user.User) Goals {
	goals := Goals{
		MonthlyMinutes:  s.goals.MonthlyMinutes,
		MonthlySessions: s.goals.MonthlySessions,
	}
	if u.Settings.MonthlyGoalMinutes > 0 {
		goals.MonthlyMinutes = u.Settings.MonthlyGoalMinutes
	}
	if u.Settings.MonthlyGoalSessions > 0 {
		goals.MonthlySessions = u.Settings.MonthlyGoalSessions
	}
	return goals
}

func (s *ServiceImpl) version(userId int) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.versions[userId]
}

func (s *ServiceImpl) onDataChanged(e event_bus.Event) error {
	var userId int
	switch data := e.Data.(type) {
	case event_bus.SessionRecorded:
		userId = data.UserId
	case event_bus.SessionDeleted:
		userId = data.UserId
	case event_bus.PlanChanged:
		userId = data.UserId
	default:
		return fmt.Errorf("unexpected payload %T for event %s", e.Data, e.Type)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.versions[userId]++
	// drop this user's stale entries right away instead of waiting for
	// the map to grow
	for key := range s.cache {
		if key.userId == userId {
			delete(s.cache, key)
		}
	}
	log.Debugf("invalidated insights cache for user %d after %s", userId, e.Type)
	return nil
}
