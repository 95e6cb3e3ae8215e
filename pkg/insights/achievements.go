package insights

// Achievement is a weekly badge with its unlock state.
type Achievement struct {
	Id       string
	Label    string
	Unlocked bool
}

// WeekAchievements evaluates the badge set over the current week's totals
// and plan completion rate.
func WeekAchievements(week Totals, plans PlanCompletion) []Achievement {
	return []Achievement{
		{
			Id:       "week-sessions",
			Label:    "5 sessions this week",
			Unlocked: week.Count >= 5,
		},
		{
			Id:       "plan-completion",
			Label:    "80% of plans completed",
			Unlocked: plans.Total > 0 && plans.Percent >= 80,
		},
		{
			Id:       "week-minutes",
			Label:    "300 focus minutes",
			Unlocked: week.TotalMinutes >= 300,
		},
	}
}
