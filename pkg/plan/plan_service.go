package plan

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fokusly/fokusly/internal/event_bus"
	"github.com/fokusly/fokusly/pkg/user"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

var ErrPlanInvalid = errors.New("study plan data invalid")

type Service interface {
	CreatePlan(ctx context.Context, plan StudyPlan) (StudyPlan, error)
	GetPlans(ctx context.Context, from string, to string) ([]StudyPlan, error)
	UpdatePlan(ctx context.Context, plan StudyPlan) (StudyPlan, error)
	SetCompleted(ctx context.Context, id string, completed bool) (StudyPlan, error)
	// AddProgress credits settled focus time against a plan's cumulative
	// progress counters.
	AddProgress(ctx context.Context, id string, minutes int, pomodoros int) (StudyPlan, error)
	DeletePlan(ctx context.Context, id string) error
}

type ServiceImpl struct {
	repo Repository
	bus  *event_bus.EventBus
}

func NewService(repo Repository, bus *event_bus.EventBus) *ServiceImpl {
	return &ServiceImpl{repo: repo, bus: bus}
}

func (s *ServiceImpl) CreatePlan(ctx context.Context, plan StudyPlan) (StudyPlan, error) {
	userId, err := user.CurrentId(ctx)
	if err != nil {
		return StudyPlan{}, fmt.Errorf("failed to get current user: %w", err)
	}

	if err := validatePlan(plan); err != nil {
		return StudyPlan{}, err
	}

	plan.Id = uuid.NewString()
	stored, err := s.repo.CreatePlan(ctx, userId, plan)
	if err != nil {
		return StudyPlan{}, err
	}
	log.Debugf("Created study plan %s for %s", stored.Id, stored.Date)

	s.publishChanged(ctx, userId, stored.Id)
	return stored, nil
}

func (s *ServiceImpl) GetPlans(ctx context.Context, from string, to string) ([]StudyPlan, error) {
	userId, err := user.CurrentId(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get current user: %w", err)
	}
	if from == "" && to == "" {
		return s.repo.GetAll(ctx, userId)
	}
	return s.repo.GetBetween(ctx, userId, from, to)
}

func (s *ServiceImpl) UpdatePlan(ctx context.Context, plan StudyPlan) (StudyPlan, error) {
	userId, err := user.CurrentId(ctx)
	if err != nil {
		return StudyPlan{}, fmt.Errorf("failed to get current user: %w", err)
	}

	if err := validatePlan(plan); err != nil {
		return StudyPlan{}, err
	}

	updated, err := s.repo.UpdatePlan(ctx, userId, plan)
	if err != nil {
		return StudyPlan{}, err
	}

	s.publishChanged(ctx, userId, updated.Id)
	return updated, nil
}

func (s *ServiceImpl) SetCompleted(ctx context.Context, id string, completed bool) (StudyPlan, error) {
	userId, err := user.CurrentId(ctx)
	if err != nil {
		return StudyPlan{}, fmt.Errorf("failed to get current user: %w", err)
	}

	plan, err := s.repo.GetPlan(ctx, userId, id)
	if err != nil {
		return StudyPlan{}, err
	}
	plan.Completed = completed

	updated, err := s.repo.UpdatePlan(ctx, userId, plan)
	if err != nil {
		return StudyPlan{}, err
	}

	s.publishChanged(ctx, userId, updated.Id)
	return updated, nil
}

func (s *ServiceImpl) AddProgress(ctx context.Context, id string, minutes int, pomodoros int) (StudyPlan, error) {
	userId, err := user.CurrentId(ctx)
	if err != nil {
		return StudyPlan{}, fmt.Errorf("failed to get current user: %w", err)
	}
	if minutes < 0 || pomodoros < 0 {
		return StudyPlan{}, ErrPlanInvalid
	}

	plan, err := s.repo.GetPlan(ctx, userId, id)
	if err != nil {
		return StudyPlan{}, err
	}
	plan.CompletedMinutes += minutes
	plan.PomodoroCount += pomodoros

	updated, err := s.repo.UpdatePlan(ctx, userId, plan)
	if err != nil {
		return StudyPlan{}, err
	}

	s.publishChanged(ctx, userId, updated.Id)
	return updated, nil
}

func (s *ServiceImpl) DeletePlan(ctx context.Context, id string) error {
	userId, err := user.CurrentId(ctx)
	if err != nil {
		return fmt.Errorf("failed to get current user: %w", err)
	}
	if err := s.repo.DeletePlan(ctx, userId, id); err != nil {
		return err
	}

	s.publishChanged(ctx, userId, id)
	return nil
}

func (s *ServiceImpl) publishChanged(ctx context.Context, userId int, planId string) {
	if err := s.bus.Publish(event_bus.NewEvent(ctx, event_bus.PlanChangedEvent, event_bus.PlanChanged{
		UserId: userId,
		PlanId: planId,
	})); err != nil {
		log.Warnf("failed to publish plan changed event: %v", err)
	}
}

func validatePlan(plan StudyPlan) error {
	if plan.Title == "" {
		return ErrPlanInvalid
	}
	if _, err := time.Parse(DateLayout, plan.Date); err != nil {
		return ErrPlanInvalid
	}
	if _, err := time.Parse("15:04", plan.StartTime); err != nil {
		return ErrPlanInvalid
	}
	if plan.TargetMinutes < 0 {
		return ErrPlanInvalid
	}
	return nil
}
