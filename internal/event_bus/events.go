package event_bus

const (
	SessionRecordedEvent EventType = "session.recorded"
	SessionDeletedEvent  EventType = "session.deleted"
	PlanChangedEvent     EventType = "plan.changed"
)

// SessionRecorded is published after a focus session has been stored.
type SessionRecorded struct {
	UserId    int
	SessionId string
	Date      string
	Minutes   int
}

// SessionDeleted is published after a focus session has been removed.
type SessionDeleted struct {
	UserId    int
	SessionId string
}

// PlanChanged is published after a study plan is created, updated,
// completed, or deleted.
type PlanChanged struct {
	UserId int
	PlanId string
}
