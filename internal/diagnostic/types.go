package diagnostic

import (
	"errors"
	"fmt"
	"strings"
)

// Stable diagnostic codes. CodeParseError is reserved for document-level
// decode failures; every other code describes a field-level schema violation
// or an advisory warning.
const (
	CodeParseError         = "parse_error"
	CodeRequiredField      = "required_field"
	CodeInvalidType        = "invalid_type"
	CodeInvalidValue       = "invalid_value"
	CodeOutOfRange         = "out_of_range"
	CodeDuplicateMIDIInput = "duplicate_midi_input"
	CodeMissingDescription = "missing_description"
	CodeMissingAuthor      = "missing_author"
)

// Severity represents the severity level of a diagnostic.
type Severity int

const (
	SeverityWarning Severity = iota
	SeverityError
)

// String returns a human-readable severity name.
func (s Severity) String() string {
	switch s {
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return "unknown"
	}
}

// Diagnostic represents a single validation finding.
type Diagnostic struct {
	// Severity of the diagnostic.
	Severity Severity
	// Code is a stable identifier for this type of diagnostic.
	Code string
	// Message is the human-readable description.
	Message string
	// FieldPath is the dot-joined path from the document root
	// (e.g. "mappings.2.midiInput.channel"). Empty for document-level findings.
	FieldPath string
}

// String returns a formatted diagnostic string.
func (d Diagnostic) String() string {
	msg := d.Message
	if d.Code != "" {
		msg = fmt.Sprintf("[%s] %s", d.Code, msg)
	}

	if d.FieldPath != "" {
		return d.FieldPath + ": " + msg
	}

	return msg
}

// Outcome holds the full result of validating one document. Errors imply no
// canonical map was produced; warnings are advisory and never block use.
type Outcome struct {
	Errors   []Diagnostic
	Warnings []Diagnostic
}

// AddError appends an error diagnostic.
func (o *Outcome) AddError(code, message, fieldPath string) {
	o.Errors = append(o.Errors, Diagnostic{
		Severity:  SeverityError,
		Code:      code,
		Message:   message,
		FieldPath: fieldPath,
	})
}

// AddErrorf appends an error diagnostic with a formatted message.
func (o *Outcome) AddErrorf(code, fieldPath, format string, args ...any) {
	o.AddError(code, fmt.Sprintf(format, args...), fieldPath)
}

// AddWarning appends a warning diagnostic.
func (o *Outcome) AddWarning(code, message, fieldPath string) {
	o.Warnings = append(o.Warnings, Diagnostic{
		Severity:  SeverityWarning,
		Code:      code,
		Message:   message,
		FieldPath: fieldPath,
	})
}

// IsValid returns true if there are no errors. Warnings do not affect validity.
func (o *Outcome) IsValid() bool {
	return len(o.Errors) == 0
}

// HasWarnings returns true if any warnings were recorded.
func (o *Outcome) HasWarnings() bool {
	return len(o.Warnings) > 0
}

// Merge merges another Outcome into this one, preserving order.
func (o *Outcome) Merge(other Outcome) {
	o.Errors = append(o.Errors, other.Errors...)
	o.Warnings = append(o.Warnings, other.Warnings...)
}

// Error returns a combined error from all error diagnostics, or nil if valid.
func (o *Outcome) Error() error {
	if o.IsValid() {
		return nil
	}

	var parts []string
	for _, e := range o.Errors {
		parts = append(parts, e.String())
	}

	return errors.New(strings.Join(parts, "; "))
}
