// Package spreadsheet maps the in-memory meeting collection to and from the
// 13-column xlsx row format used for bulk import/export.
package spreadsheet

// Row is one worksheet row keyed by header name. Cell values arrive as
// strings when read from a workbook; numeric values (duration, serial dates)
// may appear as numeric strings or native numbers.
type Row map[string]any

// Column headers, wording-exact. The import side matches them literally.
const (
	ColMeetingTitle       = "Meeting Title"
	ColStakeholder        = "Stakeholder"
	ColDate               = "Date"
	ColTime               = "Time"
	ColDuration           = "Duration (minutes)"
	ColStatus             = "Status"
	ColLocation           = "Location"
	ColAttendees          = "Attendees"
	ColAgendaItems        = "Agenda Items"
	ColAgendaStatuses     = "Agenda Statuses"
	ColAgendaDescriptions = "Agenda Descriptions"
	ColNotes              = "Notes"
	ColNextMeeting        = "Next Meeting"
)

// columnHeaders is the export column order.
var columnHeaders = []string{
	ColMeetingTitle,
	ColStakeholder,
	ColDate,
	ColTime,
	ColDuration,
	ColStatus,
	ColLocation,
	ColAttendees,
	ColAgendaItems,
	ColAgendaStatuses,
	ColAgendaDescriptions,
	ColNotes,
	ColNextMeeting,
}

// columnWidths are cosmetic width hints, one per column in header order.
var columnWidths = []float64{30, 20, 12, 8, 12, 12, 25, 30, 50, 30, 50, 50, 12}
