package extractor

import (
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/ankr-labs/eduingest/internal/core/domain"
	"github.com/ankr-labs/eduingest/internal/logger"
)

// Plausibility bounds for chapter candidates. Numbers outside the range
// are cross-references or page numbers; titles outside the length
// bounds are noise or running body text.
const (
	minChapterNumber = 1
	maxChapterNumber = 20
	minTitleLen      = 3
	maxTitleLen      = 80
)

// chapterCandidate is the common shape every matcher strategy produces.
type chapterCandidate struct {
	Number int
	Title  string
	Start  int
}

// chapterMatcher is one independent pattern family. Matchers run in
// order over the whole document text; their candidates are merged by a
// single deduplication step in Chapters.
type chapterMatcher struct {
	name string
	find func(text string) []chapterCandidate
}

var chapterMatchers = []chapterMatcher{
	{name: "numeric-header", find: matchNumericHeader},
	{name: "chapter-marker", find: matchChapterMarker},
	{name: "dotted-heading", find: matchDottedHeading},
}

// A bare number on its own line followed by a capitalised title line.
// NCERT chapter pages open this way ("5\nARITHMETIC PROGRESSIONS").
var numericHeaderRe = regexp.MustCompile(`(?m)^[ \t]*([1-9]\d?)[ \t]*\n[ \t]*([A-Z][A-Za-z0-9 ,'&:\-]{2,79})[ \t]*$`)

// An explicit "Chapter N: Title" marker.
var chapterMarkerRe = regexp.MustCompile(`(?mi)^[ \t]*chapter[ \t]+(\d{1,2})[ \t]*[:.\-]?[ \t]*(\S[^\n]{1,78})$`)

// A short "N. Title" heading line.
var dottedHeadingRe = regexp.MustCompile(`(?m)^[ \t]*([1-9]\d?)\.[ \t]+([A-Z][^\n]{2,79})$`)

// Sentence punctuation never appears in a real heading; it marks a
// question or body-text line that happens to start with "N.".
var headingNoiseRe = regexp.MustCompile(`[?!.;]`)

func matchNumericHeader(text string) []chapterCandidate {
	return matchPattern(numericHeaderRe, text, false)
}

func matchChapterMarker(text string) []chapterCandidate {
	return matchPattern(chapterMarkerRe, text, false)
}

func matchDottedHeading(text string) []chapterCandidate {
	return matchPattern(dottedHeadingRe, text, true)
}

// matchPattern collects candidates for one regexp with number in group 1
// and title in group 2. rejectSentences additionally drops titles
// carrying sentence punctuation.
func matchPattern(re *regexp.Regexp, text string, rejectSentences bool) []chapterCandidate {
	var out []chapterCandidate
	for _, m := range re.FindAllStringSubmatchIndex(text, -1) {
		num, err := strconv.Atoi(text[m[2]:m[3]])
		if err != nil {
			continue
		}
		title := strings.TrimSpace(text[m[4]:m[5]])
		if rejectSentences && headingNoiseRe.MatchString(title) {
			continue
		}
		out = append(out, chapterCandidate{Number: num, Title: title, Start: m[0]})
	}
	return out
}

// Chapters recovers the ordered chapter spans of a document.
//
// All matcher strategies run over the full text; implausible candidates
// are discarded, duplicates are resolved by keeping the first occurrence
// (smallest start offset - later occurrences are assumed to be
// cross-references, not true headers), and the survivors are sorted by
// chapter number. Each span ends where the next kept chapter starts;
// the last span extends to the end of the text.
//
// Sorting by printed number rather than by position means a document
// whose numbering disagrees with physical order is mis-segmented. That
// is a known best-effort limitation kept for compatibility with prior
// ledger state.
func Chapters(text string) []domain.ChapterSpan {
	var candidates []chapterCandidate
	for _, m := range chapterMatchers {
		found := m.find(text)
		logger.Debug("chapter matcher %s: %d candidates", m.name, len(found))
		candidates = append(candidates, found...)
	}

	// Plausibility filter.
	kept := candidates[:0]
	for _, c := range candidates {
		if c.Number < minChapterNumber || c.Number > maxChapterNumber {
			continue
		}
		if n := len([]rune(c.Title)); n < minTitleLen || n > maxTitleLen {
			continue
		}
		kept = append(kept, c)
	}

	// Deduplicate by chapter number: first occurrence wins.
	byNumber := make(map[int]chapterCandidate)
	for _, c := range kept {
		if prev, ok := byNumber[c.Number]; !ok || c.Start < prev.Start {
			byNumber[c.Number] = c
		}
	}

	// Span ends follow document order: each span runs to the start of
	// whichever kept chapter physically follows it, regardless of
	// numbering. The result itself is ordered by chapter number.
	starts := make([]int, 0, len(byNumber))
	numbers := make([]int, 0, len(byNumber))
	for n, c := range byNumber {
		numbers = append(numbers, n)
		starts = append(starts, c.Start)
	}
	sort.Ints(starts)
	sort.Ints(numbers)

	spans := make([]domain.ChapterSpan, 0, len(numbers))
	for _, n := range numbers {
		c := byNumber[n]
		end := len(text)
		if i := sort.SearchInts(starts, c.Start+1); i < len(starts) {
			end = starts[i]
		}
		spans = append(spans, domain.ChapterSpan{
			Number:    c.Number,
			Title:     c.Title,
			Start:     c.Start,
			End:       end,
			WordCount: len(strings.Fields(text[c.Start:end])),
		})
	}
	return spans
}
