package meeting

// AgendaItemRequest represents one agenda item in a save request
type AgendaItemRequest struct {
	Title       string `json:"title" validate:"required,min=1,max=255"`
	Description string `json:"description"`
	Status      string `json:"status" validate:"omitempty,oneof=pending discussed action-required"`
	Assignee    string `json:"assignee"`
}

// SaveMeetingRequest represents the request to create or replace a meeting.
// The form submits the full record, so the same shape serves both.
type SaveMeetingRequest struct {
	Title       string              `json:"title" validate:"required,min=1,max=255"`
	Stakeholder string              `json:"stakeholder" validate:"required,min=1,max=255"`
	Date        string              `json:"date" validate:"required,datetime=2006-01-02"`
	Time        string              `json:"time" validate:"required,datetime=15:04"`
	Duration    int                 `json:"duration" validate:"required,min=1,max=1440"`
	Status      string              `json:"status" validate:"omitempty,oneof=scheduled completed cancelled rescheduled"`
	Location    string              `json:"location" validate:"max=255"`
	Attendees   []string            `json:"attendees"`
	Agenda      []AgendaItemRequest `json:"agenda" validate:"dive"`
	Notes       string              `json:"notes"`
	NextMeeting string              `json:"next_meeting" validate:"omitempty,datetime=2006-01-02"`
}

// ListMeetingsRequest represents query parameters for listing meetings
type ListMeetingsRequest struct {
	Search string  `query:"search"`
	Status *string `query:"status" validate:"omitempty,oneof=scheduled completed cancelled rescheduled"`
}

// ImportFromURLRequest represents the request to import a workbook by URL
type ImportFromURLRequest struct {
	URL string `json:"url" validate:"required,url"`
}
