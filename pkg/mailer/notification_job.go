package mailer

import "time"

// Notification types carried on the queue.
const (
	TypeNewEvent = "new_event"
	TypeWelcome  = "welcome"
)

// NotificationJob is the JSON payload put on the RabbitMQ queue. Event is set for
// TypeNewEvent only.
type NotificationJob struct {
	Type       string             `json:"type"`
	To         string             `json:"to"`
	FamilyName string             `json:"family_name,omitempty"`
	Event      *EventNotification `json:"event,omitempty"`
	QueuedAt   time.Time          `json:"queued_at"`
}

type EventNotification struct {
	EventID      string    `json:"event_id"`
	GroupID      string    `json:"group_id"`
	GroupTitle   string    `json:"group_title"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Location     string    `json:"location"`
	EventDate    time.Time `json:"event_date"`
	MaxAttendees *int      `json:"max_attendees,omitempty"`
}

// Validate reports whether the job can be rendered at all.
func (j NotificationJob) Validate() error {
	switch {
	case j.To == "":
		return errMissingRecipient
	case j.Type == TypeNewEvent && j.Event == nil:
		return errMissingEvent
	case j.Type != TypeNewEvent && j.Type != TypeWelcome:
		return errUnknownType
	}
	return nil
}
