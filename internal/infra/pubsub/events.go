package pubsub

const (
	TopicReminderSurfaced = "sip.reminder.surfaced"
	TopicIntakeRecorded   = "sip.intake.recorded"
)

const (
	EventTypeReminderSurfaced = "reminder.surfaced"
	EventTypeIntakeRecorded   = "intake.recorded"
)
