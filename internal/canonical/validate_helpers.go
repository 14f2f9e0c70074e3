package canonical

import (
	"math"

	"github.com/oletizi/audio-control/internal/diagnostic"
)

// The validator operates on the untyped document tree produced by the YAML or
// JSON decoder. The two decoders disagree on numeric representation (yaml.v3
// yields int, encoding/json yields float64), so all primitive access goes
// through the coercion helpers below.

func asDocMap(v any) (map[string]any, bool) {
	m, ok := v.(map[string]any)
	return m, ok
}

func asDocSlice(v any) ([]any, bool) {
	s, ok := v.([]any)
	return s, ok
}

func asDocString(v any) (string, bool) {
	s, ok := v.(string)
	return s, ok
}

func asDocBool(v any) (bool, bool) {
	b, ok := v.(bool)
	return b, ok
}

// asDocInt accepts any integral numeric representation the decoders produce.
func asDocInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case uint64:
		return int(n), true
	case float64:
		if n == math.Trunc(n) {
			return int(n), true
		}

		return 0, false
	default:
		return 0, false
	}
}

func asDocFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint64:
		return float64(n), true
	default:
		return 0, false
	}
}

func joinPath(parent, key string) string {
	if parent == "" {
		return key
	}

	return parent + "." + key
}

// validator accumulates diagnostics while walking one document tree.
type validator struct {
	out *diagnostic.Outcome
}

// requireMap fetches a required object-valued field.
func (v *validator) requireMap(m map[string]any, key, parent string) (map[string]any, bool) {
	path := joinPath(parent, key)

	raw, present := m[key]
	if !present || raw == nil {
		v.out.AddErrorf(diagnostic.CodeRequiredField, path, "missing required field %q", key)
		return nil, false
	}

	obj, ok := asDocMap(raw)
	if !ok {
		v.out.AddErrorf(diagnostic.CodeInvalidType, path, "expected object, got %T", raw)
		return nil, false
	}

	return obj, true
}

// requireString fetches a required string-valued field.
func (v *validator) requireString(m map[string]any, key, parent string) (string, bool) {
	path := joinPath(parent, key)

	raw, present := m[key]
	if !present || raw == nil {
		v.out.AddErrorf(diagnostic.CodeRequiredField, path, "missing required field %q", key)
		return "", false
	}

	s, ok := asDocString(raw)
	if !ok {
		v.out.AddErrorf(diagnostic.CodeInvalidType, path, "expected string, got %T", raw)
		return "", false
	}

	return s, true
}

// optionalString fetches an optional string-valued field. A present
// non-string value is a type violation.
func (v *validator) optionalString(m map[string]any, key, parent string) string {
	raw, present := m[key]
	if !present || raw == nil {
		return ""
	}

	s, ok := asDocString(raw)
	if !ok {
		v.out.AddErrorf(diagnostic.CodeInvalidType, joinPath(parent, key), "expected string, got %T", raw)
		return ""
	}

	return s
}

// optionalInt fetches an optional integer field and range-checks it.
func (v *validator) optionalInt(m map[string]any, key, parent string, min, max int) *int {
	path := joinPath(parent, key)

	raw, present := m[key]
	if !present || raw == nil {
		return nil
	}

	n, ok := asDocInt(raw)
	if !ok {
		v.out.AddErrorf(diagnostic.CodeInvalidType, path, "expected integer, got %v", raw)
		return nil
	}

	if n < min || n > max {
		v.out.AddErrorf(diagnostic.CodeOutOfRange, path, "value %d out of range [%d, %d]", n, min, max)
		return nil
	}

	return &n
}

// optionalFloat fetches an optional numeric field and range-checks it.
func (v *validator) optionalFloat(m map[string]any, key, parent string, min, max float64) *float64 {
	path := joinPath(parent, key)

	raw, present := m[key]
	if !present || raw == nil {
		return nil
	}

	f, ok := asDocFloat(raw)
	if !ok {
		v.out.AddErrorf(diagnostic.CodeInvalidType, path, "expected number, got %v", raw)
		return nil
	}

	if f < min || f > max {
		v.out.AddErrorf(diagnostic.CodeOutOfRange, path, "value %g out of range [%g, %g]", f, min, max)
		return nil
	}

	return &f
}

// optionalBool fetches an optional boolean field.
func (v *validator) optionalBool(m map[string]any, key, parent string) *bool {
	raw, present := m[key]
	if !present || raw == nil {
		return nil
	}

	b, ok := asDocBool(raw)
	if !ok {
		v.out.AddErrorf(diagnostic.CodeInvalidType, joinPath(parent, key), "expected boolean, got %T", raw)
		return nil
	}

	return &b
}

// requireFloat fetches a required numeric field.
func (v *validator) requireFloat(m map[string]any, key, parent string) (float64, bool) {
	path := joinPath(parent, key)

	raw, present := m[key]
	if !present || raw == nil {
		v.out.AddErrorf(diagnostic.CodeRequiredField, path, "missing required field %q", key)
		return 0, false
	}

	f, ok := asDocFloat(raw)
	if !ok {
		v.out.AddErrorf(diagnostic.CodeInvalidType, path, "expected number, got %v", raw)
		return 0, false
	}

	return f, true
}
