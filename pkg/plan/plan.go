package plan

// DateLayout matches the session package's canonical day format.
const DateLayout = "2006-01-02"

// StudyPlan is a scheduled study intention for a specific date. The progress
// fields accumulate as sessions are settled against the plan; Completed is
// authoritative for completion-rate counting regardless of CompletedMinutes.
type StudyPlan struct {
	Id               string
	Title            string
	Date             string // YYYY-MM-DD
	StartTime        string // HH:MM
	EndTime          string // HH:MM
	ReminderTime     string // optional HH:MM
	Completed        bool
	TargetMinutes    int
	CompletedMinutes int
	PomodoroCount    int
	Location         string
}
