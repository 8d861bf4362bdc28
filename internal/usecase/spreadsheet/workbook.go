package spreadsheet

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/johnquangdev/meeting-tracker/internal/domain/entities"
	usecaseErrors "github.com/johnquangdev/meeting-tracker/internal/usecase/errors"
)

// SheetName is the worksheet name used on export. Import ignores sheet
// names and reads the first sheet by position.
const SheetName = "Meetings"

// Decode parses xlsx bytes into a meeting collection. Unparseable bytes fail
// the whole call; a workbook that parses but holds no data rows yields an
// empty, non-nil slice. Row-level anomalies never fail (see MeetingFromRow),
// so a successful return always covers every data row in the sheet.
func Decode(data []byte) ([]*entities.Meeting, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", usecaseErrors.ErrInvalidWorkbook, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("%w: workbook has no sheets", usecaseErrors.ErrInvalidWorkbook)
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("%w: %v", usecaseErrors.ErrInvalidWorkbook, err)
	}
	if len(rows) == 0 {
		return []*entities.Meeting{}, nil
	}

	header := rows[0]
	meetings := make([]*entities.Meeting, 0, len(rows)-1)
	for _, cells := range rows[1:] {
		if blankRow(cells) {
			continue
		}
		row := make(Row, len(header))
		for col, name := range header {
			if col < len(cells) {
				row[name] = cells[col]
			}
		}
		meetings = append(meetings, MeetingFromRow(row, len(meetings)))
	}
	return meetings, nil
}

// blankRow reports whether every cell in the row is empty. Blank rows are
// skipped instead of producing all-default meetings.
func blankRow(cells []string) bool {
	for _, c := range cells {
		if c != "" {
			return false
		}
	}
	return true
}

// Encode serializes the collection to xlsx bytes in input order. An empty
// collection still produces a valid workbook with the header row only.
func Encode(meetings []*entities.Meeting) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return nil, fmt.Errorf("%w: %v", usecaseErrors.ErrWorkbookWriteFailed, err)
	}

	headerCells := make([]any, len(columnHeaders))
	for i, h := range columnHeaders {
		headerCells[i] = h
	}
	if err := f.SetSheetRow(SheetName, "A1", &headerCells); err != nil {
		return nil, fmt.Errorf("%w: %v", usecaseErrors.ErrWorkbookWriteFailed, err)
	}

	for i, m := range meetings {
		row := RowFromMeeting(m)
		cells := make([]any, len(columnHeaders))
		for col, name := range columnHeaders {
			cells[col] = row[name]
		}
		anchor, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", usecaseErrors.ErrWorkbookWriteFailed, err)
		}
		if err := f.SetSheetRow(SheetName, anchor, &cells); err != nil {
			return nil, fmt.Errorf("%w: %v", usecaseErrors.ErrWorkbookWriteFailed, err)
		}
	}

	for i, width := range columnWidths {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", usecaseErrors.ErrWorkbookWriteFailed, err)
		}
		if err := f.SetColWidth(SheetName, col, col, width); err != nil {
			return nil, fmt.Errorf("%w: %v", usecaseErrors.ErrWorkbookWriteFailed, err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", usecaseErrors.ErrWorkbookWriteFailed, err)
	}
	return buf.Bytes(), nil
}
