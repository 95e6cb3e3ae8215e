package plan

import (
	"context"
	"sort"
)

type StubRepository struct {
	plans map[int][]StudyPlan
}

func NewStubRepository() *StubRepository {
	return &StubRepository{plans: make(map[int][]StudyPlan)}
}

func (s *StubRepository) CreatePlan(ctx context.Context, userId int, plan StudyPlan) (StudyPlan, error) {
	s.plans[userId] = append(s.plans[userId], plan)
	return plan, nil
}

func (s *StubRepository) GetPlan(ctx context.Context, userId int, id string) (StudyPlan, error) {
	for _, p := range s.plans[userId] {
		if p.Id == id {
			return p, nil
		}
	}
	return StudyPlan{}, ErrPlanNotFound
}

func (s *StubRepository) GetAll(ctx context.Context, userId int) ([]StudyPlan, error) {
	plans := make([]StudyPlan, len(s.plans[userId]))
	copy(plans, s.plans[userId])
	sort.SliceStable(plans, func(i, j int) bool {
		if plans[i].Date != plans[j].Date {
			return plans[i].Date < plans[j].Date
		}
		return plans[i].StartTime < plans[j].StartTime
	})
	return plans, nil
}

func (s *StubRepository) GetBetween(ctx context.Context, userId int, from string, to string) ([]StudyPlan, error) {
	all, _ := s.GetAll(ctx, userId)
	var filtered []StudyPlan
	for _, p := range all {
		if p.Date >= from && p.Date <= to {
			filtered = append(filtered, p)
		}
	}
	return filtered, nil
}

func (s *StubRepository) UpdatePlan(ctx context.Context, userId int, plan StudyPlan) (StudyPlan, error) {
	for i, p := range s.plans[userId] {
		if p.Id == plan.Id {
			s.plans[userId][i] = plan
			return plan, nil
		}
	}
	return StudyPlan{}, ErrPlanNotFound
}

func (s *StubRepository) DeletePlan(ctx context.Context, userId int, id string) error {
	plans := s.plans[userId]
	for i, p := range plans {
		if p.Id == id {
			s.plans[userId] = append(plans[:i], plans[i+1:]...)
			return nil
		}
	}
	return ErrPlanNotFound
}

func (s *StubRepository) Reset() {
	s.plans = make(map[int][]StudyPlan)
}
