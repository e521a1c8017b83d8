package domain

import "strings"

// RawDocument represents the page texts recovered from one source file.
// It is the text extractor's output before segmentation, and is treated
// as immutable once extraction begins.
type RawDocument struct {
	// SourceName is the stable identifier for the source (file path
	// or logical name).
	SourceName string

	// Pages holds one already-decoded Unicode text string per page,
	// in document order.
	Pages []string
}

// Text returns the concatenated document text. Span offsets in
// ChapterSpan index into this string.
func (d RawDocument) Text() string {
	return strings.Join(d.Pages, "\n")
}

// ChapterSpan is one detected chapter over the concatenated document
// text. Chapters are non-overlapping, unique by Number within a
// document, and ordered by Number; the last chapter's range extends to
// the end of the text.
type ChapterSpan struct {
	// Number is the printed chapter number (positive).
	Number int `json:"chapter_number"`

	// Title is the detected chapter title.
	Title string `json:"title"`

	// Start is the inclusive byte offset of the chapter in the
	// concatenated document text.
	Start int `json:"start"`

	// End is the exclusive byte offset.
	End int `json:"end"`

	// WordCount is the number of whitespace-separated words in the span.
	WordCount int `json:"word_count"`

	// Examples are the worked examples detected within this chapter.
	Examples []ExampleSpan `json:"examples,omitempty"`

	// Exercises are the exercise blocks detected within this chapter.
	Exercises []ExerciseSpan `json:"exercises,omitempty"`
}

// ExampleSpan is a worked example owned by exactly one chapter.
type ExampleSpan struct {
	// ChapterNumber is the owning chapter's number.
	ChapterNumber int `json:"chapter_number"`

	// Number is the printed example number.
	Number int `json:"example_number"`

	// Prompt is the example's prompt text.
	Prompt string `json:"prompt_text"`

	// Solution is the detected solution text. Detection is best-effort;
	// an empty string is a valid outcome, not an error.
	Solution string `json:"solution_text"`
}

// ExerciseSpan is a numbered exercise block within a chapter.
type ExerciseSpan struct {
	// ChapterNumber is the owning chapter's number.
	ChapterNumber int `json:"chapter_number"`

	// Number is the dotted exercise number, e.g. "3.2".
	Number string `json:"exercise_number"`

	// Questions are the individual questions, in document order.
	Questions []QuestionUnit `json:"questions"`
}

// QuestionUnit is a single extracted question. Number is 1-based and
// unique within its exercise only, never globally.
type QuestionUnit struct {
	// Number is the question's position marker within the exercise.
	Number int `json:"question_number"`

	// Text is the normalised question text: whitespace collapsed and
	// extraction artifacts (reprint-year stamps) stripped.
	Text string `json:"question_text"`

	// Difficulty is the classifier's tier for this question.
	Difficulty Difficulty `json:"difficulty"`

	// Tags is a non-empty set of topical tags. When no keyword matches,
	// the classifier assigns ["general"].
	Tags []string `json:"tags"`
}

// Difficulty is a question difficulty tier.
type Difficulty string

// Difficulty tiers, from least to most demanding.
const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Totals aggregates counts over one extraction result.
type Totals struct {
	ChapterCount  int `json:"chapter_count"`
	ExampleCount  int `json:"example_count"`
	QuestionCount int `json:"question_count"`
	WordCount     int `json:"word_count"`
}

// ExtractionResult is the structured output for one source file,
// persisted as a side artifact named after the source's base name.
type ExtractionResult struct {
	// SourceFilename is the base name of the ingested file.
	SourceFilename string `json:"source_filename"`

	// Chapters is the recovered structural tree.
	Chapters []ChapterSpan `json:"chapters"`

	// Totals holds aggregate counts for reporting.
	Totals Totals `json:"totals"`
}

// ComputeTotals recalculates the Totals from the chapter tree.
func (r *ExtractionResult) ComputeTotals() {
	var t Totals
	t.ChapterCount = len(r.Chapters)
	for _, ch := range r.Chapters {
		t.ExampleCount += len(ch.Examples)
		t.WordCount += ch.WordCount
		for _, ex := range ch.Exercises {
			t.QuestionCount += len(ex.Questions)
		}
	}
	r.Totals = t
}
