package presenter

import (
	"github.com/johnquangdev/meeting-tracker/internal/adapter/dto/meeting"
	"github.com/johnquangdev/meeting-tracker/internal/domain/entities"
)

// ToMeetingResponse converts a Meeting entity to MeetingResponse DTO
func ToMeetingResponse(m *entities.Meeting) *meeting.MeetingResponse {
	if m == nil {
		return nil
	}

	agenda := make([]meeting.AgendaItemResponse, len(m.Agenda))
	for i, item := range m.Agenda {
		agenda[i] = meeting.AgendaItemResponse{
			ID:          item.ID,
			Title:       item.Title,
			Description: item.Description,
			Status:      string(item.Status),
			Assignee:    item.Assignee,
		}
	}

	attendees := m.Attendees
	if attendees == nil {
		attendees = []string{}
	}

	return &meeting.MeetingResponse{
		ID:          m.ID,
		Title:       m.Title,
		Stakeholder: m.Stakeholder,
		Date:        m.Date,
		Time:        m.Time,
		Duration:    m.Duration,
		Status:      string(m.Status),
		Location:    m.Location,
		Attendees:   attendees,
		Agenda:      agenda,
		Notes:       m.Notes,
		NextMeeting: m.NextMeeting,
	}
}

// ToMeetingListResponse converts a slice of Meeting entities to MeetingListResponse
func ToMeetingListResponse(meetings []*entities.Meeting) *meeting.MeetingListResponse {
	responses := make([]*meeting.MeetingResponse, len(meetings))
	for i, m := range meetings {
		responses[i] = ToMeetingResponse(m)
	}
	return &meeting.MeetingListResponse{
		Meetings: responses,
		Total:    len(responses),
	}
}

// ToImportResponse converts an imported batch to ImportResponse
func ToImportResponse(meetings []*entities.Meeting) *meeting.ImportResponse {
	list := ToMeetingListResponse(meetings)
	return &meeting.ImportResponse{
		Imported: list.Total,
		Meetings: list.Meetings,
	}
}
