package meeting

import (
	"context"
	"fmt"

	"github.com/johnquangdev/meeting-tracker/internal/domain/entities"
)

// Seed loads the demo meetings when the collection is empty, so a fresh
// server shows the same starter data as the dashboard. It is a no-op when
// any meetings already exist.
func (s *Service) Seed(ctx context.Context) error {
	count, err := s.meetingRepo.Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to check collection: %w", err)
	}
	if count > 0 {
		return nil
	}
	return s.meetingRepo.ReplaceAll(ctx, seedMeetings())
}

func seedMeetings() []*entities.Meeting {
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
				{ID: "a1", Title: "Q4 Performance Review", Description: "Review quarterly metrics and KPIs", Status: entities.AgendaStatusPending},
				{ID: "a2", Title: "2024 Budget Planning", Description: "Discuss budget allocation for next year", Status: entities.AgendaStatusPending},
				{ID: "a3", Title: "New Product Launch", Description: "Timeline and resource requirements", Status: entities.AgendaStatusPending},
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
				{ID: "b1", Title: "Project Scope Definition", Description: "Define project boundaries and deliverables", Status: entities.AgendaStatusDiscussed},
				{ID: "b2", Title: "Timeline & Milestones", Description: "Establish key project milestones", Status: entities.AgendaStatusDiscussed},
				{ID: "b3", Title: "Resource Allocation", Description: "Team assignments and responsibilities", Status: entities.AgendaStatusActionRequired, Assignee: "Project Manager"},
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
				{ID: "c1", Title: "Progress Update", Description: "Current project status and achievements", Status: entities.AgendaStatusDiscussed},
				{ID: "c2", Title: "Issue Resolution", Description: "Address any blockers or concerns", Status: entities.AgendaStatusDiscussed},
			},
			Notes:       "Project is on track. Minor delays in Phase 2 but should be resolved next week.",
			NextMeeting: "2024-02-10",
		},
		{
			ID:          "4",
			Title:       "Contract Renewal Discussion",
			Stakeholder: "Innovation Labs",
			Date:        "2024-01-08",
			Time:        "11:00",
			Duration:    60,
			Status:      entities.MeetingStatusRescheduled,
			Location:    "Conference Room B",
			Attendees:   []string{"Frank Garcia", "Grace Kim"},
			Agenda: []entities.AgendaItem{
				{ID: "d1", Title: "Contract Terms Review", Description: "Review current contract terms and conditions", Status: entities.AgendaStatusPending},
				{ID: "d2", Title: "Pricing Discussion", Description: "Negotiate pricing for renewal period", Status: entities.AgendaStatusPending},
			},
			Notes: "Rescheduled due to client's emergency. New date to be confirmed.",
		},
		{
			ID:          "5",
			Title:       "Product Demo",
			Stakeholder: "StartupCo",
			Date:        "2024-01-05",
			Time:        "15:30",
			Duration:    30,
			Status:      entities.MeetingStatusCancelled,
			Location:    "Virtual - Teams",
			Attendees:   []string{"Henry Park", "Ivy Zhang"},
			Agenda: []entities.AgendaItem{
				{ID: "e1", Title: "Feature Demonstration", Description: "Show new product features", Status: entities.AgendaStatusPending},
			},
			Notes: "Cancelled - client requested to postpone until next month.",
		},
	}
}
