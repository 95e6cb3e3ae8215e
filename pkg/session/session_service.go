package session

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/fokusly/fokusly/internal/event_bus"
	"github.com/fokusly/fokusly/internal/utils"
	"github.com/fokusly/fokusly/pkg/user"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

var ErrSessionInvalid = errors.New("focus session data invalid")

// SortOrder controls history listing order.
type SortOrder string

const (
	SortNewest  SortOrder = "newest"
	SortOldest  SortOrder = "oldest"
	SortLongest SortOrder = "longest"
)

// HistorySummary is the headline over the full session history.
type HistorySummary struct {
	Total        int
	TotalMinutes int
	AvgMinutes   int
}

type Service interface {
	RecordSession(ctx context.Context, session FocusSession) (FocusSession, error)
	ListSessions(ctx context.Context, sortBy SortOrder) ([]FocusSession, error)
	ListSessionsBetween(ctx context.Context, from string, to string) ([]FocusSession, error)
	RecentNotes(ctx context.Context, limit int) ([]FocusSession, error)
	Summary(ctx context.Context) (HistorySummary, error)
	DeleteSession(ctx context.Context, id string) error
}

type ServiceImpl struct {
	repo  Repository
	bus   *event_bus.EventBus
	clock utils.Clock
}

func NewService(repo Repository, bus *event_bus.EventBus) *ServiceImpl {
	return &ServiceImpl{
		repo:  repo,
		bus:   bus,
		clock: &utils.SystemClock{},
	}
}

func (s *ServiceImpl) RecordSession(ctx context.Context, session FocusSession) (FocusSession, error) {
	userId, err := user.CurrentId(ctx)
	if err != nil {
		return FocusSession{}, fmt.Errorf("failed to get current user: %w", err)
	}

	if session.Minutes <= 0 {
		return FocusSession{}, ErrSessionInvalid
	}
	if _, err := time.Parse(DateLayout, session.Date); err != nil {
		return FocusSession{}, ErrSessionInvalid
	}
	if session.CompletionPercent != nil && (*session.CompletionPercent < 0 || *session.CompletionPercent > 100) {
		return FocusSession{}, ErrSessionInvalid
	}

	session.Id = uuid.NewString()
	session.RecordedAt = s.clock.Now()

	stored, err := s.repo.CreateSession(ctx, userId, session)
	if err != nil {
		return FocusSession{}, err
	}
	log.Debugf("Recorded focus session %s: %s, %d minutes", stored.Id, stored.Date, stored.Minutes)

	if err := s.bus.Publish(event_bus.NewEvent(ctx, event_bus.SessionRecordedEvent, event_bus.SessionRecorded{
		UserId:    userId,
		SessionId: stored.Id,
		Date:      stored.Date,
		Minutes:   stored.Minutes,
	})); err != nil {
		log.Warnf("failed to publish session recorded event: %v", err)
	}

	return stored, nil
}

func (s *ServiceImpl) ListSessions(ctx context.Context, sortBy SortOrder) ([]FocusSession, error) {
	userId, err := user.CurrentId(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get current user: %w", err)
	}
	sessions, err := s.repo.GetAll(ctx, userId)
	if err != nil {
		return nil, err
	}

	switch sortBy {
	case SortOldest:
		sort.SliceStable(sessions, func(i, j int) bool {
			return sessions[i].RecordedAt.Before(sessions[j].RecordedAt)
		})
	case SortLongest:
		sort.SliceStable(sessions, func(i, j int) bool {
			return sessions[i].Minutes > sessions[j].Minutes
		})
	default: // newest, the repository order
	}
	return sessions, nil
}

func (s *ServiceImpl) ListSessionsBetween(ctx context.Context, from string, to string) ([]FocusSession, error) {
	userId, err := user.CurrentId(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get current user: %w", err)
	}
	return s.repo.GetBetween(ctx, userId, from, to)
}

func (s *ServiceImpl) RecentNotes(ctx context.Context, limit int) ([]FocusSession, error) {
	sessions, err := s.ListSessions(ctx, SortNewest)
	if err != nil {
		return nil, err
	}
	var noted []FocusSession
	for _, session := range sessions {
		if session.Note == "" {
			continue
		}
		noted = append(noted, session)
		if len(noted) == limit {
			break
		}
	}
	return noted, nil
}

func (s *ServiceImpl) Summary(ctx context.Context) (HistorySummary, error) {
	userId, err := user.CurrentId(ctx)
	if err != nil {
		return HistorySummary{}, fmt.Errorf("failed to get current user: %w", err)
	}
	sessions, err := s.repo.GetAll(ctx, userId)
	if err != nil {
		return HistorySummary{}, err
	}

	summary := HistorySummary{Total: len(sessions)}
	for _, session := range sessions {
		summary.TotalMinutes += session.Minutes
	}
	if summary.Total > 0 {
		summary.AvgMinutes = int(float64(summary.TotalMinutes)/float64(summary.Total) + 0.5)
	}
	return summary, nil
}

func (s *ServiceImpl) DeleteSession(ctx context.Context, id string) error {
	userId, err := user.CurrentId(ctx)
	if err != nil {
		return fmt.Errorf("failed to get current user: %w", err)
	}
	if err := s.repo.DeleteSession(ctx, userId, id); err != nil {
		return err
	}

	if err := s.bus.Publish(event_bus.NewEvent(ctx, event_bus.SessionDeletedEvent, event_bus.SessionDeleted{
		UserId:    userId,
		SessionId: id,
	})); err != nil {
		log.Warnf("failed to publish session deleted event: %v", err)
	}
	return nil
}
