package extractor

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/ankr-labs/eduingest/internal/core/domain"
)

// Heuristic bounds for exercise segmentation.
const (
	exerciseWindow    = 3000
	minQuestionLen    = 10
	maxQuestionNumber = 50
)

// "EXERCISE N.M" markers (case-insensitive; NCERT prints them upper-case).
var exerciseRe = regexp.MustCompile(`(?i)\bexercise[ \t]+(\d{1,2})\.(\d{1,2})\b`)

// A question line: an integer, a period, then the question text.
var questionLineRe = regexp.MustCompile(`(?m)^[ \t]*(\d{1,3})\.[ \t]+`)

var nextExerciseRe = regexp.MustCompile(`(?i)\bexercise[ \t]+\d{1,2}\.\d{1,2}\b`)

// Exercises recovers the exercise blocks within one chapter's text.
// Candidate questions with implausible numbers or near-empty text are
// segmentation noise and dropped silently.
func Exercises(chapterText string, chapterNumber int) []domain.ExerciseSpan {
	var spans []domain.ExerciseSpan
	for _, m := range exerciseRe.FindAllStringSubmatchIndex(chapterText, -1) {
		major, _ := strconv.Atoi(chapterText[m[2]:m[3]])
		minor, _ := strconv.Atoi(chapterText[m[4]:m[5]])

		windowEnd := m[1] + exerciseWindow
		if windowEnd > len(chapterText) {
			windowEnd = len(chapterText)
		}
		window := chapterText[m[1]:windowEnd]

		// Never read past the next exercise heading.
		if loc := nextExerciseRe.FindStringIndex(window); loc != nil {
			window = window[:loc[0]]
		}

		spans = append(spans, domain.ExerciseSpan{
			ChapterNumber: chapterNumber,
			Number:        fmt.Sprintf("%d.%d", major, minor),
			Questions:     questions(window),
		})
	}
	return spans
}

// questions splits one exercise window into question units.
func questions(window string) []domain.QuestionUnit {
	marks := questionLineRe.FindAllStringSubmatchIndex(window, -1)
	var units []domain.QuestionUnit
	for i, m := range marks {
		num, err := strconv.Atoi(window[m[2]:m[3]])
		if err != nil || num < 1 || num > maxQuestionNumber {
			continue
		}

		end := len(window)
		if i+1 < len(marks) {
			end = marks[i+1][0]
		}
		text := NormalizeText(window[m[1]:end])
		if len([]rune(text)) < minQuestionLen {
			continue
		}

		units = append(units, domain.QuestionUnit{
			Number: num,
			Text:   text,
		})
	}
	return units
}
