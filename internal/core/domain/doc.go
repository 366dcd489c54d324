// Package domain defines the core business entities for shotsearch.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Index: An immutable map from image filename to ImageEntry
//   - ImageEntry, Line, Word, WordBox: OCR recognition results
//   - SearchResult: The ordered matches of one search
//   - SessionState: The interactive session state machine
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
