package normalize

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
)

var (
	isoDateRe   = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	looseDateRe = regexp.MustCompile(`(\d{1,2})[-/](\d{1,2})[-/](\d{2,4})`)
)

// ParseDate turns a cell into an ISO "YYYY-MM-DD" date. text is the
// formatted cell value, raw the stored one (date-typed cells keep their
// Excel serial number there). The parser is intentionally lenient and lossy:
// anything unrecognizable degrades to "", which means "no date", not an
// error. A two-digit year reads as 2000+yy; day/month combinations that do
// not form a real calendar date also degrade to "".
func ParseDate(text, raw string) string {
	text = strings.TrimSpace(text)
	raw = strings.TrimSpace(raw)
	if text == "" && raw == "" {
		return ""
	}
	if iso, ok := SerialDate(text, raw); ok {
		return iso
	}
	if isoDateRe.MatchString(text) {
		return text
	}
	if m := looseDateRe.FindStringSubmatch(text); m != nil {
		if iso, ok := dmyToISO(atoi(m[1]), atoi(m[2]), atoi(m[3])); ok {
			return iso
		}
	}
	return ""
}

// SerialDate reports the ISO date of a date-styled cell. A cell counts as
// date-styled when its stored value is numeric but the formatted text
// differs and carries date or time separators. Any time-of-day component is
// truncated.
func SerialDate(text, raw string) (string, bool) {
	text = strings.TrimSpace(text)
	raw = strings.TrimSpace(raw)
	serial, err := strconv.ParseFloat(raw, 64)
	if err != nil || raw == text || !strings.ContainsAny(text, "-/:") {
		return "", false
	}
	t, err := excelize.ExcelDateToTime(serial, false)
	if err != nil {
		return "", false
	}
	return t.Format("2006-01-02"), true
}

// DatesIn returns every valid D[-/]M[-/]Y date embedded in free text, in
// order of appearance. Invalid calendar combinations are skipped.
func DatesIn(text string) []string {
	var out []string
	for _, m := range looseDateRe.FindAllStringSubmatch(text, -1) {
		if iso, ok := dmyToISO(atoi(m[1]), atoi(m[2]), atoi(m[3])); ok {
			out = append(out, iso)
		}
	}
	return out
}

func dmyToISO(day, month, year int) (string, bool) {
	if year < 100 {
		year += 2000
	}
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return "", false
	}
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	// time.Date normalizes overflow, e.g. April 31 -> May 1
	if t.Year() != year || t.Month() != time.Month(month) || t.Day() != day {
		return "", false
	}
	return t.Format("2006-01-02"), true
}

func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}
