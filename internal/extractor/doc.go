// Package extractor recovers document structure from raw page text.
//
// Segmentation is heuristic: educational documents carry no reliable
// delimiters, so chapters, worked examples, exercises and questions are
// found by an ordered list of independent pattern matchers whose
// candidates are merged by explicit deduplication and tie-break rules.
// Absence of structure yields empty results, never errors; the only
// fatal condition (an unreadable source) belongs to the text-extraction
// adapters, not to this package.
package extractor
