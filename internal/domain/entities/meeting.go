package entities

// MeetingStatus is the lifecycle state of a meeting. Values imported from
// spreadsheets are passed through as-is and are not validated against these
// constants; unknown values simply won't match any UI mapping.
type MeetingStatus string

const (
	MeetingStatusScheduled   MeetingStatus = "scheduled"
	MeetingStatusCompleted   MeetingStatus = "completed"
	MeetingStatusCancelled   MeetingStatus = "cancelled"
	MeetingStatusRescheduled MeetingStatus = "rescheduled"
)

// Meeting is one stakeholder meeting with its nested agenda.
// Date and NextMeeting are canonical YYYY-MM-DD strings (NextMeeting may be
// empty), Time is HH:MM 24-hour, Duration is minutes.
type Meeting struct {
	ID          string        `json:"id"`
	Title       string        `json:"title"`
	Stakeholder string        `json:"stakeholder"`
	Date        string        `json:"date"`
	Time        string        `json:"time"`
	Duration    int           `json:"duration"`
	Status      MeetingStatus `json:"status"`
	Location    string        `json:"location"`
	Attendees   []string      `json:"attendees"`
	Agenda      []AgendaItem  `json:"agenda"`
	Notes       string        `json:"notes"`
	NextMeeting string        `json:"next_meeting,omitempty"`
}
