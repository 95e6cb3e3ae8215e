package plan

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrPlanNotFound = errors.New("study plan not found")

type Repository interface {
	CreatePlan(ctx context.Context, userId int, plan StudyPlan) (StudyPlan, error)
	GetPlan(ctx context.Context, userId int, id string) (StudyPlan, error)
	// GetAll returns every plan of the user ordered by date and start time.
	GetAll(ctx context.Context, userId int) ([]StudyPlan, error)
	// GetBetween returns plans with a date in [from, to] inclusive.
	GetBetween(ctx context.Context, userId int, from string, to string) ([]StudyPlan, error)
	UpdatePlan(ctx context.Context, userId int, plan StudyPlan) (StudyPlan, error)
	DeletePlan(ctx context.Context, userId int, id string) error
}

type RepositoryImpl struct {
	db *pgxpool.Pool
}

func NewRepository(db *pgxpool.Pool) *RepositoryImpl {
	return &RepositoryImpl{db: db}
}

const planColumns = `id,
			title,
			plan_date,
			start_time,
			end_time,
			reminder_time,
			completed,
			target_minutes,
			completed_minutes,
			pomodoro_count,
			location`

func (r *RepositoryImpl) CreatePlan(ctx context.Context, userId int, plan StudyPlan) (StudyPlan, error) {
	query := `INSERT INTO study_plan
				(id, user_id, title, plan_date, start_time, end_time, reminder_time, completed, target_minutes, completed_minutes, pomodoro_count, location)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`

	var reminder *string
	if plan.ReminderTime != "" {
		reminder = &plan.ReminderTime
	}

	_, err := r.db.Exec(ctx, query,
		plan.Id,
		userId,
		plan.Title,
		plan.Date,
		plan.StartTime,
		plan.EndTime,
		reminder,
		plan.Completed,
		plan.TargetMinutes,
		plan.CompletedMinutes,
		plan.PomodoroCount,
		plan.Location,
	)
	if err != nil {
		return StudyPlan{}, fmt.Errorf("failed to store study plan: %w", err)
	}
	return plan, nil
}

func (r *RepositoryImpl) GetPlan(ctx context.Context, userId int, id string) (StudyPlan, error) {
	query := `SELECT ` + planColumns + `
			  FROM study_plan
			  WHERE user_id = $1 AND id = $2`
	plan, err := scanPlan(r.db.QueryRow(ctx, query, userId, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return StudyPlan{}, ErrPlanNotFound
	}
	return plan, err
}

func (r *RepositoryImpl) GetAll(ctx context.Context, userId int) ([]StudyPlan, error) {
	query := `SELECT ` + planColumns + `
			  FROM study_plan
			  WHERE user_id = $1
			  ORDER BY plan_date, start_time`
	rows, err := r.db.Query(ctx, query, userId)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectPlans(rows)
}

func (r *RepositoryImpl) GetBetween(ctx context.Context, userId int, from string, to string) ([]StudyPlan, error) {
	query := `SELECT ` + planColumns + `
			  FROM study_plan
			  WHERE user_id = $1 AND plan_date >= $2 AND plan_date <= $3
			  ORDER BY plan_date, start_time`
	rows, err := r.db.Query(ctx, query, userId, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectPlans(rows)
}

func (r *RepositoryImpl) UpdatePlan(ctx context.Context, userId int, plan StudyPlan) (StudyPlan, error) {
	query := `UPDATE study_plan
			  SET title = $3,
				  plan_date = $4,
				  start_time = $5,
				  end_time = $6,
				  reminder_time = $7,
				  completed = $8,
				  target_minutes = $9,
				  completed_minutes = $10,
				  pomodoro_count = $11,
				  location = $12
			  WHERE user_id = $1 AND id = $2`

	var reminder *string
	if plan.ReminderTime != "" {
		reminder = &plan.ReminderTime
	}

	tag, err := r.db.Exec(ctx, query,
		userId,
		plan.Id,
		plan.Title,
		plan.Date,
		plan.StartTime,
		plan.EndTime,
		reminder,
		plan.Completed,
		plan.TargetMinutes,
		plan.CompletedMinutes,
		plan.PomodoroCount,
		plan.Location,
	)
	if err != nil {
		return StudyPlan{}, fmt.Errorf("failed to update study plan: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return StudyPlan{}, ErrPlanNotFound
	}
	return plan, nil
}

func (r *RepositoryImpl) DeletePlan(ctx context.Context, userId int, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM study_plan WHERE user_id = $1 AND id = $2`, userId, id)
	if err != nil {
		return fmt.Errorf("failed to delete study plan: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrPlanNotFound
	}
	return nil
}

func collectPlans(rows pgx.Rows) ([]StudyPlan, error) {
	var plans []StudyPlan
	for rows.Next() {
		plan, err := scanPlan(rows)
		if err != nil {
			return nil, err
		}
		plans = append(plans, plan)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return plans, nil
}

func scanPlan(row pgx.Row) (StudyPlan, error) {
	var plan StudyPlan
	var date time.Time
	var reminder *string
	if err := row.Scan(
		&plan.Id,
		&plan.Title,
		&date,
		&plan.StartTime,
		&plan.EndTime,
		&reminder,
		&plan.Completed,
		&plan.TargetMinutes,
		&plan.CompletedMinutes,
		&plan.PomodoroCount,
		&plan.Location,
	); err != nil {
		return StudyPlan{}, err
	}
	plan.Date = date.Format(DateLayout)
	if reminder != nil {
		plan.ReminderTime = *reminder
	}
	return plan, nil
}
