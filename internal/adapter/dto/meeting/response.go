package meeting

// AgendaItemResponse represents one agenda item in a response
type AgendaItemResponse struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Status      string `json:"status"`
	Assignee    string `json:"assignee,omitempty"`
}

// MeetingResponse represents a meeting in responses
type MeetingResponse struct {
	ID          string               `json:"id"`
	Title       string               `json:"title"`
	Stakeholder string               `json:"stakeholder"`
	Date        string               `json:"date"`
	Time        string               `json:"time"`
	Duration    int                  `json:"duration"`
	Status      string               `json:"status"`
	Location    string               `json:"location"`
	Attendees   []string             `json:"attendees"`
	Agenda      []AgendaItemResponse `json:"agenda"`
	Notes       string               `json:"notes"`
	NextMeeting string               `json:"next_meeting,omitempty"`
}

// MeetingListResponse represents a filtered list of meetings
type MeetingListResponse struct {
	Meetings []*MeetingResponse `json:"meetings"`
	Total    int                `json:"total"`
}

// ImportResponse represents the result of a successful import
type ImportResponse struct {
	Imported int                `json:"imported"`
	Meetings []*MeetingResponse `json:"meetings"`
}
