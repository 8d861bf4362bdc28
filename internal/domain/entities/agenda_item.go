package entities

// AgendaItemStatus is the discussion state of a single agenda item.
// Like MeetingStatus it is a passthrough string on the spreadsheet path.
type AgendaItemStatus string

const (
	AgendaStatusPending        AgendaItemStatus = "pending"
	AgendaStatusDiscussed      AgendaItemStatus = "discussed"
	AgendaStatusActionRequired AgendaItemStatus = "action-required"
)

// AgendaItem is one discussion topic nested under a Meeting. Order within
// the parent agenda is significant. Assignee is conventionally set only for
// action-required items and never survives a spreadsheet round trip.
type AgendaItem struct {
	ID          string           `json:"id"`
	Title       string           `json:"title"`
	Description string           `json:"description"`
	Status      AgendaItemStatus `json:"status"`
	Assignee    string           `json:"assignee,omitempty"`
}
