// Package canonical provides the schema definition, parsing, validation,
// and serialization of canonical MIDI controller maps.
//
// A canonical map describes a controller+plugin pairing independently of any
// target DAW. It is authored once, in YAML or JSON (the two syntaxes decode
// to the same document tree), and converted into target binding maps by the
// resolve and target packages.
//
// # Key capabilities
//
//   - Exhaustive structural validation: every independent violation is
//     reported with a dotted field path and a stable code, in one pass
//   - Advisory warnings: duplicate MIDI inputs, missing documentation fields
//   - Lossless serialization: re-parsing serializer output yields a map that
//     compares equal field-for-field to the original
//
// # Schema Overview
//
// A canonical map file has the following structure:
//
//	metadata:
//	  name: "nanoKONTROL2 -> TDR Kotelnikov"
//	  version: "1.0.0"
//	  description: "Transport plus compressor section"
//	  author: "..."
//	controller:
//	  manufacturer: Korg
//	  model: nanoKONTROL2
//	  defaultChannel: 1
//	plugin:
//	  manufacturer: Tokyo Dawn Records
//	  name: Kotelnikov
//	  format: vst3
//	mappings:
//	  - id: fader-1
//	    midiInput: {type: cc, channel: 1, number: 0, behavior: {mode: absolute}}
//	    pluginTarget: {type: parameter, identifier: thrsh, name: Threshold, category: Compressor}
//
// Validation never mutates its input and never stops at the first error.
package canonical
