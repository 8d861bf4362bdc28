package spreadsheet

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
)

var canonicalDateRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// dateLayouts are tried in order for free-form date cells.
var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	time.RFC3339,
	"01-02-06",
	"01/02/2006",
	"1/2/2006",
	"01/02/06",
	"Jan 2, 2006",
	"January 2, 2006",
	"2 Jan 2006",
}

// NormalizeDate coerces any date-bearing cell value to canonical YYYY-MM-DD.
// Already-canonical strings pass through unchanged, numeric values are
// treated as Excel serial dates (1900 epoch, including the leap-year quirk),
// anything else goes through generic layout parsing. Unparseable input
// becomes the empty string; this function never errors.
func NormalizeDate(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		s := strings.TrimSpace(v)
		if s == "" {
			return ""
		}
		if canonicalDateRe.MatchString(s) {
			return s
		}
		if serial, err := strconv.ParseFloat(s, 64); err == nil {
			return serialToDate(serial)
		}
		return parseLooseDate(s)
	case float64:
		return serialToDate(v)
	case int:
		return serialToDate(float64(v))
	case int64:
		return serialToDate(float64(v))
	case time.Time:
		return v.Format("2006-01-02")
	default:
		return parseLooseDate(fmt.Sprint(v))
	}
}

// serialToDate converts an Excel serial day count to YYYY-MM-DD, or ""
// when the serial is out of range.
func serialToDate(serial float64) string {
	if serial <= 0 {
		return ""
	}
	t, err := excelize.ExcelDateToTime(serial, false)
	if err != nil {
		return ""
	}
	return t.Format("2006-01-02")
}

func parseLooseDate(s string) string {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format("2006-01-02")
		}
	}
	return ""
}
