package utils

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// TitleCase normalizes a captured phrase into a display label
// ("airport food" -> "Airport Food"). A fresh caser per call: cases
// casers are stateful and not safe for concurrent use.
func TitleCase(s string) string {
	return cases.Title(language.English).String(s)
}
