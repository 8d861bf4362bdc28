package spreadsheet

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/johnquangdev/meeting-tracker/internal/domain/entities"
)

// defaultDuration is substituted when the duration cell is missing or not
// numeric.
const defaultDuration = 60

// MeetingFromRow builds one Meeting from a worksheet row. It is total:
// missing or malformed cells degrade to defaults instead of failing, so a
// bad cell can never poison the batch. rowIndex is the 0-based data row
// position; the meeting ID is reassigned from it regardless of any content
// in the sheet.
func MeetingFromRow(row Row, rowIndex int) *entities.Meeting {
	titles := splitTrimmed(cellString(row[ColAgendaItems]), "|")
	statuses := splitTrimmed(cellString(row[ColAgendaStatuses]), "|")
	descriptions := splitTrimmed(cellString(row[ColAgendaDescriptions]), "|")

	// The three agenda columns are parallel arrays aligned by title index.
	// Statuses and descriptions may be shorter (or longer) after splitting;
	// missing slots fall back to defaults rather than erroring.
	agenda := make([]entities.AgendaItem, 0, len(titles))
	for i, title := range titles {
		item := entities.AgendaItem{
			ID:     fmt.Sprintf("%d-%d", rowIndex, i),
			Title:  title,
			Status: entities.AgendaStatusPending,
		}
		if i < len(descriptions) {
			item.Description = descriptions[i]
		}
		if i < len(statuses) && statuses[i] != "" {
			// Statuses pass through unvalidated
			item.Status = entities.AgendaItemStatus(statuses[i])
		}
		agenda = append(agenda, item)
	}

	status := entities.MeetingStatus(cellString(row[ColStatus]))
	if status == "" {
		status = entities.MeetingStatusScheduled
	}

	return &entities.Meeting{
		ID:          strconv.Itoa(rowIndex + 1),
		Title:       cellString(row[ColMeetingTitle]),
		Stakeholder: cellString(row[ColStakeholder]),
		Date:        NormalizeDate(row[ColDate]),
		Time:        cellString(row[ColTime]),
		Duration:    cellDuration(row[ColDuration]),
		Status:      status,
		Location:    cellString(row[ColLocation]),
		Attendees:   splitTrimmed(cellString(row[ColAttendees]), ","),
		Agenda:      agenda,
		Notes:       cellString(row[ColNotes]),
		NextMeeting: nextMeetingDate(row[ColNextMeeting]),
	}
}

// RowFromMeeting flattens one Meeting to a worksheet row. The meeting ID and
// any agenda assignees are dropped; they have no column in the row format.
func RowFromMeeting(m *entities.Meeting) Row {
	titles := make([]string, len(m.Agenda))
	statuses := make([]string, len(m.Agenda))
	descriptions := make([]string, len(m.Agenda))
	for i, item := range m.Agenda {
		titles[i] = item.Title
		statuses[i] = string(item.Status)
		descriptions[i] = item.Description
	}

	return Row{
		ColMeetingTitle:       m.Title,
		ColStakeholder:        m.Stakeholder,
		ColDate:               m.Date,
		ColTime:               m.Time,
		ColDuration:           m.Duration,
		ColStatus:             string(m.Status),
		ColLocation:           m.Location,
		ColAttendees:          strings.Join(m.Attendees, ", "),
		ColAgendaItems:        strings.Join(titles, " | "),
		ColAgendaStatuses:     strings.Join(statuses, " | "),
		ColAgendaDescriptions: strings.Join(descriptions, " | "),
		ColNotes:              m.Notes,
		ColNextMeeting:        m.NextMeeting,
	}
}

// nextMeetingDate keeps absence distinct from an unparseable value: a falsy
// cell stays empty without going through date normalization.
func nextMeetingDate(value any) string {
	if cellString(value) == "" {
		return ""
	}
	return NormalizeDate(value)
}

// cellString renders a cell value as a trimmed string, "" when absent.
func cellString(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(v)
	default:
		return strings.TrimSpace(fmt.Sprint(v))
	}
}

// cellDuration parses a duration cell, substituting the default for missing
// or non-numeric values.
func cellDuration(value any) int {
	switch v := value.(type) {
	case int:
		if v != 0 {
			return v
		}
		return defaultDuration
	case float64:
		if int(v) != 0 {
			return int(v)
		}
		return defaultDuration
	}
	s := cellString(value)
	if s == "" {
		return defaultDuration
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || int(f) == 0 {
		return defaultDuration
	}
	return int(f)
}

// splitTrimmed splits on sep, trims each segment, and drops empties.
func splitTrimmed(s, sep string) []string {
	if s == "" {
		return []string{}
	}
	parts := strings.Split(s, sep)
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
