package emailbuilder

import (
	"regexp"
	"strings"
)

var placeholderRegex = regexp.MustCompile(`\{\{\s*([a-zA-Z0-9_.-]+)\s*\}\}`)

// SubstituteVars replaces {{key}} placeholders in s with values from data.
// Keys missing from data are left as the literal placeholder, so a broken
// merge field stays visible in the delivered subject instead of silently
// disappearing.
func SubstituteVars(s string, data map[string]string) string {
	if !strings.Contains(s, "{{") {
		return s
	}

	return placeholderRegex.ReplaceAllStringFunc(s, func(match string) string {
		key := strings.TrimSpace(match[2 : len(match)-2])
		if value, ok := data[key]; ok {
			return value
		}
		return match
	})
}
