// Package errors provides structured, actionable error messages for pagelayout.
//
// Each error has a unique code (e.g., "E003") that maps to a category, a
// short message, a detailed explanation and a documentation URL.
//
// # Error Categories
//
//   - slot: invalid slot definitions and strict classification failures
//   - render: HTML rendering failures
//   - publish: object store upload failures
//   - config: invalid pagelayout.json or environment overrides
//   - cli: command line usage errors
//
// # Usage
//
//	err := errors.New("E003").
//	    WithDetailf("slot %q declared twice", name).
//	    WithSuggestion("Rename one of the slots")
//
// LayoutError implements Unwrap and Is, so errors.Is(err, errors.New("E003"))
// matches any error carrying that code.
package errors
