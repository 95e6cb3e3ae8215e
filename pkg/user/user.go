package user

type User struct {
	Id          int
	Uid         string
	Username    string
	DisplayName string
	Settings    Settings
}

// Settings carries the per-user knobs the analytics layer cares about:
// the timezone used for day bucketing and the monthly goal targets shown
// on the insights progress bars. Zero goals mean "use the configured
// application defaults".
type Settings struct {
	Timezone            string
	MonthlyGoalMinutes  int
	MonthlyGoalSessions int
}
