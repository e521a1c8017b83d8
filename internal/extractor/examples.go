package extractor

import (
	"regexp"
	"strconv"

	"github.com/ankr-labs/eduingest/internal/core/domain"
)

// Heuristic window sizes, tuned empirically on NCERT-style layouts.
// The qualitative behaviour (bounded lookahead, silent empty result
// when no solution is found) matters more than the exact values.
const (
	exampleWindow  = 1200
	maxSolutionLen = 800
)

// "Example N" with an optional short inline title on the same line.
var exampleRe = regexp.MustCompile(`(?i)\bexample[ \t]+(\d{1,3})\b[ \t]*[:.\-]?[ \t]*([^\n]{0,60})`)

// "Solution" marker opening the worked answer.
var solutionRe = regexp.MustCompile(`(?i)\bsolution\b[ \t]*[:.\-]?`)

// Markers that terminate an example's reach.
var exampleBoundaryRe = regexp.MustCompile(`(?i)\b(?:example[ \t]+\d|exercise[ \t]+\d)`)

// Examples recovers the worked examples within one chapter's text.
// Solution detection is best-effort: an example without a detectable
// solution gets an empty Solution field, which is a valid outcome.
func Examples(chapterText string, chapterNumber int) []domain.ExampleSpan {
	var spans []domain.ExampleSpan
	for _, m := range exampleRe.FindAllStringSubmatchIndex(chapterText, -1) {
		num, err := strconv.Atoi(chapterText[m[2]:m[3]])
		if err != nil {
			continue
		}

		// Bounded trailing window holding the example's context.
		windowEnd := m[1] + exampleWindow
		if windowEnd > len(chapterText) {
			windowEnd = len(chapterText)
		}
		window := chapterText[m[1]:windowEnd]

		// The prompt runs from the marker to the solution (if any) or
		// to the next example/exercise marker.
		promptEnd := len(window)
		solution := ""
		if loc := solutionRe.FindStringIndex(window); loc != nil {
			promptEnd = loc[0]
			solution = clipSolution(window[loc[1]:])
		} else if loc := exampleBoundaryRe.FindStringIndex(window); loc != nil {
			promptEnd = loc[0]
		}

		prompt := chapterText[m[4]:m[5]] + " " + window[:promptEnd]
		spans = append(spans, domain.ExampleSpan{
			ChapterNumber: chapterNumber,
			Number:        num,
			Prompt:        NormalizeText(prompt),
			Solution:      solution,
		})
	}
	return spans
}

// clipSolution bounds a solution at the next example/exercise marker or
// at maxSolutionLen bytes, whichever comes first.
func clipSolution(s string) string {
	if loc := exampleBoundaryRe.FindStringIndex(s); loc != nil && loc[0] < len(s) {
		s = s[:loc[0]]
	}
	if len(s) > maxSolutionLen {
		s = s[:maxSolutionLen]
	}
	return NormalizeText(s)
}
