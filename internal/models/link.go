package models

import (
	"regexp"
	"strings"
)

var schemePattern = regexp.MustCompile(`(?i)^https?://`)

// NormalizeLink trims a job link and prepends https:// when it has no http(s) scheme.
// Blank input yields an empty string.
func NormalizeLink(link string) string {
	cleaned := strings.TrimSpace(link)
	if cleaned == "" {
		return ""
	}
	if schemePattern.MatchString(cleaned) {
		return cleaned
	}
	return "https://" + cleaned
}
