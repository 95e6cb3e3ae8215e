package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrSessionNotFound = errors.New("focus session not found")

type Repository interface {
	CreateSession(ctx context.Context, userId int, session FocusSession) (FocusSession, error)
	GetSession(ctx context.Context, userId int, id string) (FocusSession, error)
	// GetAll returns every session of the user, newest first.
	GetAll(ctx context.Context, userId int) ([]FocusSession, error)
	// GetBetween returns sessions with a date in [from, to] inclusive, newest first.
	GetBetween(ctx context.Context, userId int, from string, to string) ([]FocusSession, error)
	DeleteSession(ctx context.Context, userId int, id string) error
}

type RepositoryImpl struct {
	db *pgxpool.Pool
}

func NewRepository(db *pgxpool.Pool) *RepositoryImpl {
	return &RepositoryImpl{db: db}
}

const sessionColumns = `id,
			session_date,
			minutes,
			recorded_at,
			plan_id,
			subject,
			plan_title,
			location,
			note,
			completion_percent`

func (r *RepositoryImpl) CreateSession(ctx context.Context, userId int, session FocusSession) (FocusSession, error) {
	query := `INSERT INTO focus_session
				(id, user_id, session_date, minutes, recorded_at, plan_id, subject, plan_title, location, note, completion_percent)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	var planId *string
	if session.PlanId != "" {
		planId = &session.PlanId
	}

	_, err := r.db.Exec(ctx, query,
		session.Id,
		userId,
		session.Date,
		session.Minutes,
		session.RecordedAt,
		planId,
		session.Subject,
		session.PlanTitle,
		session.Location,
		session.Note,
		session.CompletionPercent,
	)
	if err != nil {
		return FocusSession{}, fmt.Errorf("failed to store focus session: %w", err)
	}
	return session, nil
}

func (r *RepositoryImpl) GetSession(ctx context.Context, userId int, id string) (FocusSession, error) {
	query := `SELECT ` + sessionColumns + `
			  FROM focus_session
			  WHERE user_id = $1 AND id = $2`
	session, err := scanSession(r.db.QueryRow(ctx, query, userId, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return FocusSession{}, ErrSessionNotFound
	}
	return session, err
}

func (r *RepositoryImpl) GetAll(ctx context.Context, userId int) ([]FocusSession, error) {
	query := `SELECT ` + sessionColumns + `
			  FROM focus_session
			  WHERE user_id = $1
			  ORDER BY recorded_at DESC`
	rows, err := r.db.Query(ctx, query, userId)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectSessions(rows)
}

func (r *RepositoryImpl) GetBetween(ctx context.Context, userId int, from string, to string) ([]FocusSession, error) {
	query := `SELECT ` + sessionColumns + `
			  FROM focus_session
			  WHERE user_id = $1 AND session_date >= $2 AND session_date <= $3
			  ORDER BY recorded_at DESC`
	rows, err := r.db.Query(ctx, query, userId, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectSessions(rows)
}

func (r *RepositoryImpl) DeleteSession(ctx context.Context, userId int, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM focus_session WHERE user_id = $1 AND id = $2`, userId, id)
	if err != nil {
		return fmt.Errorf("failed to delete focus session: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrSessionNotFound
	}
	return nil
}

func collectSessions(rows pgx.Rows) ([]FocusSession, error) {
	var sessions []FocusSession
	for rows.Next() {
		session, err := scanSession(rows)
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, session)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return sessions, nil
}

func scanSession(row pgx.Row) (FocusSession, error) {
	var session FocusSession
	var date time.Time
	var planId *string
	if err := row.Scan(
		&session.Id,
		&date,
		&session.Minutes,
		&session.RecordedAt,
		&planId,
		&session.Subject,
		&session.PlanTitle,
		&session.Location,
		&session.Note,
		&session.CompletionPercent,
	); err != nil {
		return FocusSession{}, err
	}
	session.Date = date.Format(DateLayout)
	if planId != nil {
		session.PlanId = *planId
	}
	return session, nil
}
