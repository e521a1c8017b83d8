// Package classifier assigns difficulty tiers and topical tags to
// extracted questions. Classification is a deterministic function of
// the question text alone: no randomness, no external calls.
package classifier

import (
	"strings"

	"github.com/ankr-labs/eduingest/internal/core/domain"
)

// Length thresholds for the difficulty policy.
const (
	hardLengthThreshold   = 200
	mediumLengthThreshold = 100
)

// Phrases that mark a question as hard regardless of length.
var hardPhrases = []string{"prove", "show that"}

// tagRule maps one tag to the keyword substrings that trigger it.
// Rules are checked in order and are additive.
type tagRule struct {
	Tag      string
	Keywords []string
}

var tagRules = []tagRule{
	{Tag: "algebra", Keywords: []string{"equation", "polynomial", "quadratic", "variable", "factorise", "factorize"}},
	{Tag: "geometry", Keywords: []string{"triangle", "circle", "angle", "parallel", "perimeter", "area of"}},
	{Tag: "trigonometry", Keywords: []string{"sine", "cosine", "tangent", "trigonometr"}},
	{Tag: "arithmetic", Keywords: []string{"fraction", "decimal", "percentage", "ratio", "lcm", "hcf"}},
	{Tag: "statistics", Keywords: []string{"median", "mode of", "mean of", "probability", "frequency"}},
	{Tag: "mensuration", Keywords: []string{"volume", "surface area", "cylinder", "sphere", "cone"}},
	{Tag: "proof", Keywords: []string{"prove", "show that", "justify"}},
}

// fallbackTag is assigned when no keyword matches.
const fallbackTag = "general"

// Classify returns the difficulty tier and topical tags for one
// question text. Calling it twice on the same text always returns the
// same pair.
func Classify(text string) (domain.Difficulty, []string) {
	return difficulty(text), tags(text)
}

// difficulty applies the ordered policy: hard phrases or length > 200
// first, then length > 100, then easy.
func difficulty(text string) domain.Difficulty {
	lower := strings.ToLower(text)
	for _, phrase := range hardPhrases {
		if strings.Contains(lower, phrase) {
			return domain.DifficultyHard
		}
	}
	switch n := len([]rune(text)); {
	case n > hardLengthThreshold:
		return domain.DifficultyHard
	case n > mediumLengthThreshold:
		return domain.DifficultyMedium
	default:
		return domain.DifficultyEasy
	}
}

// tags matches the keyword table case-insensitively against the text.
func tags(text string) []string {
	lower := strings.ToLower(text)
	var out []string
	for _, rule := range tagRules {
		for _, kw := range rule.Keywords {
			if strings.Contains(lower, kw) {
				out = append(out, rule.Tag)
				break
			}
		}
	}
	if len(out) == 0 {
		out = []string{fallbackTag}
	}
	return out
}
