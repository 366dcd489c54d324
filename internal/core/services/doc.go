// Package services implements the driving port interfaces.
// Services contain the core business logic and orchestrate
// calls to driven ports (adapters).
//
// Services are pure Go with no CGO. Case folding of indexed text uses
// golang.org/x/text so non-ASCII OCR output lowercases correctly.
package services
