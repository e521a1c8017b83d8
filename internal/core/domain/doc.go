// Package domain defines the core business entities for eduingest.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - RawDocument: Page texts recovered from one source file
//   - ChapterSpan / ExampleSpan / ExerciseSpan / QuestionUnit: The
//     structural tree recovered by the segment extractor
//   - ExtractionResult: The serialised side artifact for one source file
//   - LedgerRecord and its natural keys: Durable ingestion state
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
