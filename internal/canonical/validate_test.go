package canonical

import (
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oletizi/audio-control/internal/diagnostic"
)

const validMapYAML = `
metadata:
  name: "nanoKONTROL2 -> Kotelnikov"
  version: "1.0.0"
  description: "Compressor section"
  author: "someone"
controller:
  manufacturer: Korg
  model: nanoKONTROL2
  defaultChannel: 1
plugin:
  manufacturer: Tokyo Dawn Records
  name: Kotelnikov
  format: vst3
mappings:
  - id: fader-1
    midiInput:
      type: cc
      channel: 1
      number: 0
      behavior:
        mode: absolute
    pluginTarget:
      type: parameter
      identifier: thrsh
      name: Threshold
      category: Compressor
`

func TestValidate_ValidMap(t *testing.T) {
	m, outcome := Parse([]byte(validMapYAML), SyntaxYAML)
	require.True(t, outcome.IsValid(), "expected valid map, got: %s", spew.Sdump(outcome.Errors))
	require.NotNil(t, m)

	assert.Equal(t, "nanoKONTROL2 -> Kotelnikov", m.Metadata.Name)
	assert.Equal(t, FormatVST3, m.Plugin.Format)
	require.Len(t, m.Mappings, 1)
	assert.Equal(t, InputCC, m.Mappings[0].MIDIInput.Kind)
	assert.Equal(t, TargetParameter, m.Mappings[0].PluginTarget.Kind)
	assert.True(t, m.Mappings[0].IsEnabled())
	assert.Empty(t, outcome.Warnings)
}

func TestValidate_CollectsAllViolations(t *testing.T) {
	// Two independent required fields missing: both must be reported in a
	// single pass.
	doc := map[string]any{
		"metadata": map[string]any{
			"version": "1.0.0",
			// name missing
		},
		"controller": map[string]any{
			"manufacturer": "Korg",
			// model missing
		},
		"plugin": map[string]any{
			"manufacturer": "TDR",
			"name":         "Kotelnikov",
		},
		"mappings": []any{},
	}

	m, outcome := Validate(doc)
	assert.Nil(t, m)
	require.Len(t, outcome.Errors, 2)

	paths := []string{outcome.Errors[0].FieldPath, outcome.Errors[1].FieldPath}
	assert.Contains(t, paths, "metadata.name")
	assert.Contains(t, paths, "controller.model")

	for _, e := range outcome.Errors {
		assert.Equal(t, diagnostic.CodeRequiredField, e.Code)
	}
}

func TestValidate_EnumAndRangeViolations(t *testing.T) {
	doc := map[string]any{
		"metadata":   map[string]any{"name": "m", "version": "1"},
		"controller": map[string]any{"manufacturer": "Korg", "model": "nk2"},
		"plugin":     map[string]any{"manufacturer": "TDR", "name": "K", "format": "winamp"},
		"mappings": []any{
			map[string]any{
				"id": "bad",
				"midiInput": map[string]any{
					"type":    "sysex",
					"channel": 17,
					"number":  200,
				},
				"pluginTarget": map[string]any{
					"type":       "parameter",
					"identifier": "x",
				},
			},
		},
	}

	m, outcome := Validate(doc)
	assert.Nil(t, m)

	codes := map[string][]string{}
	for _, e := range outcome.Errors {
		codes[e.Code] = append(codes[e.Code], e.FieldPath)
	}

	assert.Contains(t, codes[diagnostic.CodeInvalidValue], "plugin.format")
	assert.Contains(t, codes[diagnostic.CodeInvalidValue], "mappings.0.midiInput.type")
	assert.Contains(t, codes[diagnostic.CodeOutOfRange], "mappings.0.midiInput.channel")
	assert.Contains(t, codes[diagnostic.CodeOutOfRange], "mappings.0.midiInput.number")
}

func TestValidate_NormalizedValueBounds(t *testing.T) {
	doc := map[string]any{
		"metadata":   map[string]any{"name": "m", "version": "1"},
		"controller": map[string]any{"manufacturer": "Korg", "model": "nk2"},
		"plugin":     map[string]any{"manufacturer": "TDR", "name": "K"},
		"mappings": []any{
			map[string]any{
				"id": "knob",
				"midiInput": map[string]any{
					"type": "cc",
					"behavior": map[string]any{
						"mode":     "relative",
						"deadzone": 1.5,
					},
				},
				"pluginTarget": map[string]any{"type": "parameter", "identifier": "x"},
			},
		},
	}

	m, outcome := Validate(doc)
	assert.Nil(t, m)
	require.Len(t, outcome.Errors, 1)
	assert.Equal(t, diagnostic.CodeOutOfRange, outcome.Errors[0].Code)
	assert.Equal(t, "mappings.0.midiInput.behavior.deadzone", outcome.Errors[0].FieldPath)
}

func TestValidate_DuplicateInputWarning(t *testing.T) {
	yaml := `
metadata:
  name: dup
  version: "1.0.0"
  description: d
  author: a
controller:
  manufacturer: Korg
  model: nanoKONTROL2
plugin:
  manufacturer: TDR
  name: Kotelnikov
mappings:
  - id: first
    midiInput: {type: cc, channel: 1, number: 64}
    pluginTarget: {type: parameter, identifier: a}
  - id: second
    midiInput: {type: cc, channel: 1, number: 64}
    pluginTarget: {type: parameter, identifier: b}
`

	m, outcome := Parse([]byte(yaml), SyntaxYAML)
	require.True(t, outcome.IsValid())
	require.NotNil(t, m)

	require.Len(t, outcome.Warnings, 1)
	w := outcome.Warnings[0]
	assert.Equal(t, diagnostic.CodeDuplicateMIDIInput, w.Code)
	assert.Contains(t, w.Message, "first, second")
}

func TestValidate_DuplicateGroupingUsesDefaults(t *testing.T) {
	// Omitted channel defaults to 1 for grouping, so it collides with an
	// explicit channel 1 on the same number.
	yaml := `
metadata: {name: dup, version: "1.0.0", description: d, author: a}
controller: {manufacturer: Korg, model: nk2}
plugin: {manufacturer: TDR, name: K}
mappings:
  - id: implicit
    midiInput: {type: cc, number: 7}
    pluginTarget: {type: parameter, identifier: a}
  - id: explicit
    midiInput: {type: cc, channel: 1, number: 7}
    pluginTarget: {type: parameter, identifier: b}
`

	_, outcome := Parse([]byte(yaml), SyntaxYAML)
	require.True(t, outcome.IsValid())
	require.Len(t, outcome.Warnings, 1)
	assert.Contains(t, outcome.Warnings[0].Message, "implicit, explicit")
}

func TestValidate_MissingMetadataWarnings(t *testing.T) {
	yaml := `
metadata: {name: bare, version: "1.0.0"}
controller: {manufacturer: Korg, model: nk2}
plugin: {manufacturer: TDR, name: K}
mappings: []
`

	m, outcome := Parse([]byte(yaml), SyntaxYAML)
	require.True(t, outcome.IsValid())
	require.NotNil(t, m)

	codes := make([]string, 0, len(outcome.Warnings))
	for _, w := range outcome.Warnings {
		codes = append(codes, w.Code)
	}

	assert.ElementsMatch(t, []string{
		diagnostic.CodeMissingDescription,
		diagnostic.CodeMissingAuthor,
	}, codes)
}

func TestValidate_WarningsNeverBlockValidity(t *testing.T) {
	yaml := `
metadata: {name: bare, version: "1.0.0"}
controller: {manufacturer: Korg, model: nk2}
plugin: {manufacturer: TDR, name: K}
mappings: []
`

	m, outcome := Parse([]byte(yaml), SyntaxYAML)
	assert.True(t, outcome.HasWarnings())
	assert.True(t, outcome.IsValid())
	assert.NotNil(t, m)
	assert.NoError(t, outcome.Error())
}
