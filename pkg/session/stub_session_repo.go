package session

import (
	"context"
	"sort"
)

type StubRepository struct {
	sessions map[int][]FocusSession
}

func NewStubRepository() *StubRepository {
	return &StubRepository{sessions: make(map[int][]FocusSession)}
}

func (s *StubRepository) CreateSession(ctx context.Context, userId int, session FocusSession) (FocusSession, error) {
	s.sessions[userId] = append(s.sessions[userId], session)
	return session, nil
}

func (s *StubRepository) GetSession(ctx context.Context, userId int, id string) (FocusSession, error) {
	for _, session := range s.sessions[userId] {
		if session.Id == id {
			return session, nil
		}
	}
	return FocusSession{}, ErrSessionNotFound
}

func (s *StubRepository) GetAll(ctx context.Context, userId int) ([]FocusSession, error) {
	sessions := make([]FocusSession, len(s.sessions[userId]))
	copy(sessions, s.sessions[userId])
	sort.SliceStable(sessions, func(i, j int) bool {
		return sessions[i].RecordedAt.After(sessions[j].RecordedAt)
	})
	return sessions, nil
}

func (s *StubRepository) GetBetween(ctx context.Context, userId int, from string, to string) ([]FocusSession, error) {
	all, _ := s.GetAll(ctx, userId)
	var filtered []FocusSession
	for _, session := range all {
		if session.Date >= from && session.Date <= to {
			filtered = append(filtered, session)
		}
	}
	return filtered, nil
}

func (s *StubRepository) DeleteSession(ctx context.Context, userId int, id string) error {
	sessions := s.sessions[userId]
	for i, session := range sessions {
		if session.Id == id {
			s.sessions[userId] = append(sessions[:i], sessions[i+1:]...)
			return nil
		}
	}
	return ErrSessionNotFound
}

func (s *StubRepository) Reset() {
	s.sessions = make(map[int][]FocusSession)
}
