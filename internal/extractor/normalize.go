package extractor

import (
	"regexp"
	"strings"
)

// Extraction artifacts that typesetters stamp into page text. These are
// noise relative to the question content and are stripped during
// normalisation.
var artifactRes = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\breprint\s+\d{4}[-–]\d{2,4}\b`),
	regexp.MustCompile(`(?i)\brationalised\s+\d{4}[-–]\d{2,4}\b`),
}

var whitespaceRe = regexp.MustCompile(`\s+`)

// NormalizeText collapses whitespace runs to single spaces and strips
// known extraction-artifact strings such as reprint-year stamps.
func NormalizeText(s string) string {
	for _, re := range artifactRes {
		s = re.ReplaceAllString(s, " ")
	}
	s = whitespaceRe.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}
