package spreadsheet

import "github.com/johnquangdev/meeting-tracker/internal/domain/entities"

// SampleFilename is the fixed name for the downloadable template.
const SampleFilename = "sample-meetings-template.xlsx"

// SampleMeetings returns the fixed three-meeting example set used for the
// template download. It is not derived from the live collection; it exists
// so users can learn the expected column layout.
func SampleMeetings() []*entities.Meeting {
	return []*entities.Meeting{
		{
			ID:          "1",
			Title:       "Q4 Strategy Review",
			Stakeholder: "Acme Corporation",
			Date:        "2024-01-15",
			Time:        "10:00",
			Duration:    60,
			Status:      entities.MeetingStatusScheduled,
			Location:    "Conference Room A",
			Attendees:   []string{"John Smith", "Sarah Johnson", "Mike Davis"},
			Agenda: []entities.AgendaItem{
				{ID: "0-0", Title: "Q4 Performance Review", Description: "Review quarterly metrics and KPIs", Status: entities.AgendaStatusPending},
				{ID: "0-1", Title: "2024 Budget Planning", Description: "Discuss budget allocation for next year", Status: entities.AgendaStatusPending},
				{ID: "0-2", Title: "New Product Launch", Description: "Timeline and resource requirements", Status: entities.AgendaStatusPending},
			},
			Notes:       "",
			NextMeeting: "2024-02-15",
		},
		{
			ID:          "2",
			Title:       "Project Kickoff",
			Stakeholder: "TechStart Inc",
			Date:        "2024-01-12",
			Time:        "14:00",
			Duration:    90,
			Status:      entities.MeetingStatusCompleted,
			Location:    "Virtual - Zoom",
			Attendees:   []string{"Alice Chen", "Bob Wilson", "Carol Brown"},
			Agenda: []entities.AgendaItem{
				{ID: "1-0", Title: "Project Scope Definition", Description: "Define project boundaries and deliverables", Status: entities.AgendaStatusDiscussed},
				{ID: "1-1", Title: "Timeline & Milestones", Description: "Establish key project milestones", Status: entities.AgendaStatusDiscussed},
				{ID: "1-2", Title: "Resource Allocation", Description: "Team assignments and responsibilities", Status: entities.AgendaStatusActionRequired},
			},
			Notes:       "Great kickoff meeting. Client is excited about the project. Need to finalize resource allocation by end of week.",
			NextMeeting: "2024-01-26",
		},
		{
			ID:          "3",
			Title:       "Monthly Check-in",
			Stakeholder: "Global Solutions Ltd",
			Date:        "2024-01-10",
			Time:        "09:00",
			Duration:    45,
			Status:      entities.MeetingStatusCompleted,
			Location:    "Client Office",
			Attendees:   []string{"David Lee", "Emma Thompson"},
			Agenda: []entities.AgendaItem{
				{ID: "2-0", Title: "Progress Update", Description: "Current project status and achievements", Status: entities.AgendaStatusDiscussed},
				{ID: "2-1", Title: "Issue Resolution", Description: "Address any blockers or concerns", Status: entities.AgendaStatusDiscussed},
			},
			Notes:       "Project is on track. Minor delays in Phase 2 but should be resolved next week.",
			NextMeeting: "2024-02-10",
		},
	}
}

// SampleWorkbook builds the downloadable template workbook.
func SampleWorkbook() ([]byte, error) {
	return Encode(SampleMeetings())
}
