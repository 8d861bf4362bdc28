package meeting

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/johnquangdev/meeting-tracker/internal/domain/entities"
	"github.com/johnquangdev/meeting-tracker/internal/domain/repositories"
	"github.com/johnquangdev/meeting-tracker/internal/usecase/spreadsheet"
)

// Service handles meeting business logic
type Service struct {
	meetingRepo repositories.MeetingRepository
}

// NewService creates a new meeting service
func NewService(meetingRepo repositories.MeetingRepository) *Service {
	return &Service{meetingRepo: meetingRepo}
}

// AgendaItemInput represents one agenda item in a create/update request
type AgendaItemInput struct {
	Title       string
	Description string
	Status      entities.AgendaItemStatus
	Assignee    string
}

// MeetingInput represents input for creating or replacing a meeting
type MeetingInput struct {
	Title       string
	Stakeholder string
	Date        string
	Time        string
	Duration    int
	Status      entities.MeetingStatus
	Location    string
	Attendees   []string
	Agenda      []AgendaItemInput
	Notes       string
	NextMeeting string
}

// CreateMeeting creates a new meeting at the front of the collection
func (s *Service) CreateMeeting(ctx context.Context, input MeetingInput) (*entities.Meeting, error) {
	m := buildMeeting(uuid.NewString(), input)
	if err := s.meetingRepo.Create(ctx, m); err != nil {
		return nil, fmt.Errorf("failed to create meeting: %w", err)
	}
	return m, nil
}

// GetMeeting retrieves a meeting by ID
func (s *Service) GetMeeting(ctx context.Context, id string) (*entities.Meeting, error) {
	m, err := s.meetingRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return m, nil
}

// UpdateMeeting replaces an existing meeting wholesale, keeping its ID.
// The editing form submits the full record, so updates are not partial.
func (s *Service) UpdateMeeting(ctx context.Context, id string, input MeetingInput) (*entities.Meeting, error) {
	if _, err := s.meetingRepo.FindByID(ctx, id); err != nil {
		return nil, err
	}
	m := buildMeeting(id, input)
	if err := s.meetingRepo.Update(ctx, m); err != nil {
		return nil, fmt.Errorf("failed to update meeting: %w", err)
	}
	return m, nil
}

// DeleteMeeting removes a meeting
func (s *Service) DeleteMeeting(ctx context.Context, id string) error {
	return s.meetingRepo.Delete(ctx, id)
}

// ListMeetings retrieves meetings with filters
func (s *Service) ListMeetings(ctx context.Context, filters repositories.MeetingFilters) ([]*entities.Meeting, error) {
	meetings, err := s.meetingRepo.List(ctx, filters)
	if err != nil {
		return nil, fmt.Errorf("failed to list meetings: %w", err)
	}
	return meetings, nil
}

// Stats summarizes the collection for the dashboard cards
type Stats struct {
	Total        int `json:"total"`
	Upcoming     int `json:"upcoming"`
	Completed    int `json:"completed"`
	Stakeholders int `json:"stakeholders"`
}

// GetStats computes dashboard statistics over the whole collection
func (s *Service) GetStats(ctx context.Context) (*Stats, error) {
	meetings, err := s.meetingRepo.List(ctx, repositories.MeetingFilters{})
	if err != nil {
		return nil, fmt.Errorf("failed to compute stats: %w", err)
	}

	stats := &Stats{Total: len(meetings)}
	stakeholders := make(map[string]struct{})
	for _, m := range meetings {
		switch m.Status {
		case entities.MeetingStatusScheduled:
			stats.Upcoming++
		case entities.MeetingStatusCompleted:
			stats.Completed++
		}
		stakeholders[m.Stakeholder] = struct{}{}
	}
	stats.Stakeholders = len(stakeholders)
	return stats, nil
}

// Import decodes workbook bytes and replaces the whole collection.
// All-or-nothing: a decode failure leaves the collection untouched.
func (s *Service) Import(ctx context.Context, data []byte) ([]*entities.Meeting, error) {
	meetings, err := spreadsheet.Decode(data)
	if err != nil {
		return nil, err
	}
	if err := s.meetingRepo.ReplaceAll(ctx, meetings); err != nil {
		return nil, fmt.Errorf("failed to replace meetings: %w", err)
	}
	return meetings, nil
}

// Export serializes a snapshot of the collection. It does not mutate state.
// An empty filename defaults to meetings-export-<today>.xlsx.
func (s *Service) Export(ctx context.Context, filename string) ([]byte, string, error) {
	if filename == "" {
		filename = fmt.Sprintf("meetings-export-%s.xlsx", time.Now().Format("2006-01-02"))
	}
	meetings, err := s.meetingRepo.List(ctx, repositories.MeetingFilters{})
	if err != nil {
		return nil, "", fmt.Errorf("failed to snapshot meetings: %w", err)
	}
	data, err := spreadsheet.Encode(meetings)
	if err != nil {
		return nil, "", err
	}
	return data, filename, nil
}

// SampleTemplate builds the fixed example workbook
func (s *Service) SampleTemplate() ([]byte, string, error) {
	data, err := spreadsheet.SampleWorkbook()
	if err != nil {
		return nil, "", err
	}
	return data, spreadsheet.SampleFilename, nil
}

// buildMeeting assembles an entity from validated input, generating IDs for
// agenda items that don't carry one.
func buildMeeting(id string, input MeetingInput) *entities.Meeting {
	status := input.Status
	if status == "" {
		status = entities.MeetingStatusScheduled
	}

	agenda := make([]entities.AgendaItem, 0, len(input.Agenda))
	for _, item := range input.Agenda {
		itemStatus := item.Status
		if itemStatus == "" {
			itemStatus = entities.AgendaStatusPending
		}
		agenda = append(agenda, entities.AgendaItem{
			ID:          uuid.NewString(),
			Title:       item.Title,
			Description: item.Description,
			Status:      itemStatus,
			Assignee:    item.Assignee,
		})
	}

	attendees := input.Attendees
	if attendees == nil {
		attendees = []string{}
	}

	return &entities.Meeting{
		ID:          id,
		Title:       input.Title,
		Stakeholder: input.Stakeholder,
		Date:        input.Date,
		Time:        input.Time,
		Duration:    input.Duration,
		Status:      status,
		Location:    input.Location,
		Attendees:   attendees,
		Agenda:      agenda,
		Notes:       input.Notes,
		NextMeeting: input.NextMeeting,
	}
}
