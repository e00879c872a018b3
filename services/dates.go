package services

import (
	"regexp"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

// Relative-date keywords, checked in this order; the first occurrence
// wins.
var relativeDateRules = []*regexp.Regexp{
	regexp.MustCompile(`(?i)yesterday`),
	regexp.MustCompile(`(?i)today`),
	regexp.MustCompile(`(?i)last (?:week|month)`),
}

// ResolveDate maps the first relative-date keyword in the message to a
// calendar date offset from now, which is injected so callers own the
// clock. No keyword resolves to now's date.
//
// "last month" is detected but carries no offset mapping and also
// resolves to now's date. TODO: give it an offset once the intended
// semantics (calendar month vs 30 days) are decided.
func ResolveDate(text string, now time.Time) string {
	for _, re := range relativeDateRules {
		keyword := re.FindString(text)
		if keyword == "" {
			continue
		}
		switch strings.ToLower(keyword) {
		case "yesterday":
			return now.AddDate(0, 0, -1).Format(dateLayout)
		case "today":
			return now.Format(dateLayout)
		case "last week":
			return now.AddDate(0, 0, -7).Format(dateLayout)
		}
		break
	}
	return now.Format(dateLayout)
}
