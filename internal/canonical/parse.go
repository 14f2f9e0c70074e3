package canonical

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/oletizi/audio-control/internal/diagnostic"
)

// Syntax selects one of the two accepted surface syntaxes. Both decode to
// the same document tree before validation.
type Syntax int

const (
	SyntaxYAML Syntax = iota
	SyntaxJSON
)

// String returns a human-readable syntax name.
func (s Syntax) String() string {
	switch s {
	case SyntaxYAML:
		return "yaml"
	case SyntaxJSON:
		return "json"
	default:
		return "unknown"
	}
}

// Parse decodes a canonical map document and validates it against the
// schema. A malformed document yields a single document-level parse_error
// diagnostic and no map. A well-formed document always proceeds to full
// schema validation regardless of syntax.
func Parse(content []byte, syntax Syntax) (*Map, *diagnostic.Outcome) {
	var doc any

	var err error

	switch syntax {
	case SyntaxJSON:
		err = json.Unmarshal(content, &doc)
	default:
		err = yaml.Unmarshal(content, &doc)
	}

	if err != nil {
		out := &diagnostic.Outcome{}
		out.AddErrorf(diagnostic.CodeParseError, "", "failed to decode %s document: %v", syntax, err)

		return nil, out
	}

	return Validate(doc)
}

// Serialize encodes a canonical map back to text. It is defined for
// canonical maps only (never for target maps) and is lossless: re-parsing
// its output validates successfully and compares equal, field-for-field, to
// the original.
func Serialize(m *Map, syntax Syntax) ([]byte, error) {
	if m == nil {
		return nil, fmt.Errorf("cannot serialize nil canonical map")
	}

	switch syntax {
	case SyntaxJSON:
		data, err := json.MarshalIndent(m, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("failed to marshal canonical map to JSON: %w", err)
		}

		return append(data, '\n'), nil
	default:
		data, err := yaml.Marshal(m)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal canonical map to YAML: %w", err)
		}

		return data, nil
	}
}
