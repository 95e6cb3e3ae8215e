package user

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrUserNotFound = errors.New("user not found")

type Repo interface {
	CreateUser(ctx context.Context, user User) (int, error)
	GetUser(ctx context.Context, id int) (User, error)
	GetUserByUid(ctx context.Context, uid string) (User, error)
	UpdateUser(ctx context.Context, id int, user User) (User, error)
	DeleteUser(ctx context.Context, id int) error
	IsUsernameTaken(ctx context.Context, username string) (bool, error)
}

type RepoImpl struct {
	db *pgxpool.Pool
}

func NewUserRepo(db *pgxpool.Pool) *RepoImpl {
	return &RepoImpl{db: db}
}

func (r *RepoImpl) CreateUser(ctx context.Context, user User) (int, error) {
	query := `INSERT INTO app_user (uid, username, display_name, timezone, monthly_goal_minutes, monthly_goal_sessions)
			  VALUES ($1, $2, $3, $4, $5, $6)
			  RETURNING id`
	var id int
	err := r.db.QueryRow(ctx, query,
		user.Uid,
		user.Username,
		user.DisplayName,
		user.Settings.Timezone,
		user.Settings.MonthlyGoalMinutes,
		user.Settings.MonthlyGoalSessions,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to create user: %w", err)
	}
	return id, nil
}

func (r *RepoImpl) GetUser(ctx context.Context, id int) (User, error) {
	query := `SELECT id, uid, username, display_name, timezone, monthly_goal_minutes, monthly_goal_sessions
			  FROM app_user
			  WHERE id = $1`
	return r.scanUser(r.db.QueryRow(ctx, query, id))
}

func (r *RepoImpl) GetUserByUid(ctx context.Context, uid string) (User, error) {
	query := `SELECT id, uid, username, display_name, timezone, monthly_goal_minutes, monthly_goal_sessions
			  FROM app_user
			  WHERE uid = $1`
	return r.scanUser(r.db.QueryRow(ctx, query, uid))
}

func (r *RepoImpl) UpdateUser(ctx context.Context, id int, user User) (User, error) {
	query := `UPDATE app_user
			  SET display_name = $2, timezone = $3, monthly_goal_minutes = $4, monthly_goal_sessions = $5
			  WHERE id = $1`
	tag, err := r.db.Exec(ctx, query,
		id,
		user.DisplayName,
		user.Settings.Timezone,
		user.Settings.MonthlyGoalMinutes,
		user.Settings.MonthlyGoalSessions,
	)
	if err != nil {
		return User{}, fmt.Errorf("failed to update user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return User{}, ErrUserNotFound
	}
	return r.GetUser(ctx, id)
}

func (r *RepoImpl) DeleteUser(ctx context.Context, id int) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM app_user WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (r *RepoImpl) IsUsernameTaken(ctx context.Context, username string) (bool, error) {
	var count int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM app_user WHERE username = $1`, username).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("failed to check username: %w", err)
	}
	return count > 0, nil
}

func (r *RepoImpl) scanUser(row pgx.Row) (User, error) {
	var user User
	err := row.Scan(
		&user.Id,
		&user.Uid,
		&user.Username,
		&user.DisplayName,
		&user.Settings.Timezone,
		&user.Settings.MonthlyGoalMinutes,
		&user.Settings.MonthlyGoalSessions,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return User{}, ErrUserNotFound
	}
	if err != nil {
		return User{}, err
	}
	return user, nil
}
