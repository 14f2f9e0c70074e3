// Package diagnostic provides structured validation results for canonical
// map documents.
//
// Key capabilities:
//   - Error and warning accumulation without short-circuiting
//   - Dotted field paths from the document root
//   - Stable machine-readable codes for programmatic handling
package diagnostic
