package spreadsheet

import (
	"reflect"
	"testing"

	"github.com/johnquangdev/meeting-tracker/internal/domain/entities"
)

func TestMeetingFromRow_FullRow(t *testing.T) {
	row := Row{
		ColMeetingTitle:       "Q4 Strategy Review",
		ColStakeholder:        "Acme Corporation",
		ColDate:               "2024-01-15",
		ColTime:               "10:00",
		ColDuration:           "90",
		ColStatus:             "completed",
		ColLocation:           "Conference Room A",
		ColAttendees:          "John Smith, Sarah Johnson",
		ColAgendaItems:        "Review | Planning",
		ColAgendaStatuses:     "discussed | pending",
		ColAgendaDescriptions: "Metrics | Budget",
		ColNotes:              "All good",
		ColNextMeeting:        "2024-02-15",
	}

	m := MeetingFromRow(row, 4)

	if m.ID != "5" {
		t.Errorf("ID = %q, want %q", m.ID, "5")
	}
	if m.Title != "Q4 Strategy Review" || m.Stakeholder != "Acme Corporation" {
		t.Errorf("unexpected title/stakeholder: %q / %q", m.Title, m.Stakeholder)
	}
	if m.Date != "2024-01-15" || m.Time != "10:00" {
		t.Errorf("unexpected date/time: %q / %q", m.Date, m.Time)
	}
	if m.Duration != 90 {
		t.Errorf("Duration = %d, want 90", m.Duration)
	}
	if m.Status != "completed" {
		t.Errorf("Status = %q, want completed", m.Status)
	}
	if !reflect.DeepEqual(m.Attendees, []string{"John Smith", "Sarah Johnson"}) {
		t.Errorf("Attendees = %v", m.Attendees)
	}
	if len(m.Agenda) != 2 {
		t.Fatalf("len(Agenda) = %d, want 2", len(m.Agenda))
	}
	if m.Agenda[0].ID != "4-0" || m.Agenda[1].ID != "4-1" {
		t.Errorf("agenda IDs = %q, %q", m.Agenda[0].ID, m.Agenda[1].ID)
	}
	if m.Agenda[1].Title != "Planning" || m.Agenda[1].Description != "Budget" || m.Agenda[1].Status != "pending" {
		t.Errorf("unexpected second agenda item: %+v", m.Agenda[1])
	}
	if m.NextMeeting != "2024-02-15" {
		t.Errorf("NextMeeting = %q", m.NextMeeting)
	}
}

func TestMeetingFromRow_Defaults(t *testing.T) {
	m := MeetingFromRow(Row{}, 0)

	if m.ID != "1" {
		t.Errorf("ID = %q, want %q", m.ID, "1")
	}
	if m.Title != "" || m.Stakeholder != "" || m.Location != "" || m.Notes != "" {
		t.Errorf("text fields should default empty, got %+v", m)
	}
	if m.Duration != 60 {
		t.Errorf("Duration = %d, want default 60", m.Duration)
	}
	if m.Status != entities.MeetingStatusScheduled {
		t.Errorf("Status = %q, want scheduled", m.Status)
	}
	if len(m.Attendees) != 0 {
		t.Errorf("Attendees = %v, want empty", m.Attendees)
	}
	if len(m.Agenda) != 0 {
		t.Errorf("Agenda = %v, want empty", m.Agenda)
	}
	if m.Date != "" || m.NextMeeting != "" {
		t.Errorf("dates should be empty, got %q / %q", m.Date, m.NextMeeting)
	}
}

func TestMeetingFromRow_AttendeeTrimming(t *testing.T) {
	m := MeetingFromRow(Row{ColAttendees: "Alice, Bob ,  Carol"}, 0)

	want := []string{"Alice", "Bob", "Carol"}
	if !reflect.DeepEqual(m.Attendees, want) {
		t.Errorf("Attendees = %v, want %v", m.Attendees, want)
	}
}

func TestMeetingFromRow_AgendaMisalignment(t *testing.T) {
	// Shorter status array aligns by index; missing slots get the default
	m := MeetingFromRow(Row{
		ColAgendaItems:    "A | B | C",
		ColAgendaStatuses: "pending",
	}, 0)

	if len(m.Agenda) != 3 {
		t.Fatalf("len(Agenda) = %d, want 3", len(m.Agenda))
	}
	for i, item := range m.Agenda {
		if item.Status != entities.AgendaStatusPending {
			t.Errorf("agenda[%d].Status = %q, want pending", i, item.Status)
		}
		if item.Description != "" {
			t.Errorf("agenda[%d].Description = %q, want empty", i, item.Description)
		}
	}
}

func TestMeetingFromRow_EmptyAgendaItemsWinsOverOtherColumns(t *testing.T) {
	// Agenda length follows the titles column alone
	m := MeetingFromRow(Row{
		ColAgendaItems:        "",
		ColAgendaStatuses:     "discussed | pending",
		ColAgendaDescriptions: "x | y",
	}, 0)

	if len(m.Agenda) != 0 {
		t.Errorf("len(Agenda) = %d, want 0", len(m.Agenda))
	}
}

func TestMeetingFromRow_StatusPassthrough(t *testing.T) {
	// Unknown statuses are preserved verbatim, not coerced
	m := MeetingFromRow(Row{
		ColStatus:         "In-Progress",
		ColAgendaItems:    "A",
		ColAgendaStatuses: "Blocked",
	}, 0)

	if m.Status != "In-Progress" {
		t.Errorf("Status = %q, want passthrough In-Progress", m.Status)
	}
	if m.Agenda[0].Status != "Blocked" {
		t.Errorf("agenda status = %q, want passthrough Blocked", m.Agenda[0].Status)
	}
}

func TestMeetingFromRow_ZeroAndBadDuration(t *testing.T) {
	cases := []struct {
		name string
		cell any
		want int
	}{
		{"missing", nil, 60},
		{"empty", "", 60},
		{"zero", "0", 60},
		{"text", "ninety", 60},
		{"numeric string", "45", 45},
		{"float string", "45.7", 45},
		{"native number", 30.0, 30},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m := MeetingFromRow(Row{ColDuration: tc.cell}, 0)
			if m.Duration != tc.want {
				t.Errorf("Duration = %d, want %d", m.Duration, tc.want)
			}
		})
	}
}

func TestRowFromMeeting(t *testing.T) {
	m := &entities.Meeting{
		ID:          "abc",
		Title:       "Kickoff",
		Stakeholder: "TechStart",
		Date:        "2024-01-12",
		Time:        "14:00",
		Duration:    90,
		Status:      entities.MeetingStatusCompleted,
		Location:    "Zoom",
		Attendees:   []string{"Alice", "Bob"},
		Agenda: []entities.AgendaItem{
			{ID: "x", Title: "Scope", Description: "Boundaries", Status: entities.AgendaStatusDiscussed, Assignee: "PM"},
			{ID: "y", Title: "Timeline", Description: "", Status: entities.AgendaStatusPending},
		},
		Notes:       "notes",
		NextMeeting: "2024-01-26",
	}

	row := RowFromMeeting(m)

	if row[ColAttendees] != "Alice, Bob" {
		t.Errorf("attendees cell = %q", row[ColAttendees])
	}
	if row[ColAgendaItems] != "Scope | Timeline" {
		t.Errorf("agenda items cell = %q", row[ColAgendaItems])
	}
	if row[ColAgendaStatuses] != "discussed | pending" {
		t.Errorf("agenda statuses cell = %q", row[ColAgendaStatuses])
	}
	if row[ColAgendaDescriptions] != "Boundaries | " {
		t.Errorf("agenda descriptions cell = %q", row[ColAgendaDescriptions])
	}
	if row[ColDuration] != 90 {
		t.Errorf("duration cell = %v", row[ColDuration])
	}
	// Neither the meeting ID nor assignees appear anywhere in the row
	for name, cell := range row {
		if cell == "abc" || cell == "PM" {
			t.Errorf("column %q leaked a dropped field: %v", name, cell)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	orig := &entities.Meeting{
		ID:          "original-id",
		Title:       "Monthly Check-in",
		Stakeholder: "Global Solutions Ltd",
		Date:        "2024-01-10",
		Time:        "09:00",
		Duration:    45,
		Status:      entities.MeetingStatusCompleted,
		Location:    "Client Office",
		Attendees:   []string{"David Lee", "Emma Thompson"},
		Agenda: []entities.AgendaItem{
			{ID: "c1", Title: "Progress Update", Description: "Status", Status: entities.AgendaStatusDiscussed},
			{ID: "c2", Title: "Issue Resolution", Description: "Blockers", Status: entities.AgendaStatusActionRequired, Assignee: "Emma Thompson"},
		},
		Notes:       "On track",
		NextMeeting: "2024-02-10",
	}

	got := MeetingFromRow(RowFromMeeting(orig), 0)

	if got.ID == orig.ID {
		t.Error("ID should be reassigned by row position")
	}
	if got.Title != orig.Title || got.Stakeholder != orig.Stakeholder ||
		got.Date != orig.Date || got.Time != orig.Time ||
		got.Duration != orig.Duration || got.Status != orig.Status ||
		got.Location != orig.Location || got.Notes != orig.Notes ||
		got.NextMeeting != orig.NextMeeting {
		t.Errorf("scalar fields did not survive round trip: %+v", got)
	}
	if !reflect.DeepEqual(got.Attendees, orig.Attendees) {
		t.Errorf("Attendees = %v, want %v", got.Attendees, orig.Attendees)
	}
	if len(got.Agenda) != len(orig.Agenda) {
		t.Fatalf("len(Agenda) = %d, want %d", len(got.Agenda), len(orig.Agenda))
	}
	for i := range orig.Agenda {
		if got.Agenda[i].Title != orig.Agenda[i].Title ||
			got.Agenda[i].Description != orig.Agenda[i].Description ||
			got.Agenda[i].Status != orig.Agenda[i].Status {
			t.Errorf("agenda[%d] = %+v, want %+v", i, got.Agenda[i], orig.Agenda[i])
		}
		if got.Agenda[i].Assignee != "" {
			t.Errorf("agenda[%d].Assignee = %q, assignee is always lost", i, got.Agenda[i].Assignee)
		}
	}
}
