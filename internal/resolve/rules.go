package resolve

import (
	"strconv"
	"strings"

	"github.com/oletizi/audio-control/internal/target"
)

// Symbolic function names emitted by the rule table.
const (
	funcToggleBypass = "toggle-plugin-bypass"
	funcTrackGain    = "track-set-gain"
	funcTrackTrim    = "track-set-trim"
	funcEditorWindow = "toggle-editor-window"
	funcTrackSelect  = "track-select"
)

// sendGain returns the indexed auxiliary-send function for slot n.
func sendGain(n int) string {
	return "track-set-send-gain " + strconv.Itoa(n)
}

// paramURI builds an addressable parameter path: the plugin-parameter
// surface anchor, the selected-strip indicator, and the target identifier
// verbatim. Identifier well-formedness is the schema validator's job; empty
// or whitespace identifiers pass through unmodified.
func paramURI(identifier string) string {
	return "/route/plugin/parameter S1 " + identifier
}

// containsAny reports whether s contains any of the given substrings.
// s must already be lower-cased.
func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}

	return false
}

// categoryRule is one entry of the ordered heuristic table. match is a
// substring predicate over the lower-cased category; outcome classifies the
// lower-cased target name.
type categoryRule struct {
	name    string
	match   func(category string) bool
	outcome func(name, identifier string) target.Reference
}

// categoryRules is the authoritative classification table, evaluated top to
// bottom, first match wins. Predicates overlap across rules, so order
// matters: "low mid" must be tested before "low", "high mid" before "high".
var categoryRules = []categoryRule{
	{
		name:  "gain",
		match: func(c string) bool { return containsAny(c, "gain", "preamp", "input") },
		outcome: func(name, _ string) target.Reference {
			if containsAny(name, "mic") {
				return target.FunctionRef(funcTrackGain)
			}

			return target.FunctionRef(funcTrackTrim)
		},
	},
	{
		name:  "eq",
		match: func(c string) bool { return containsAny(c, "eq", "equal") },
		outcome: func(name, _ string) target.Reference {
			return target.FunctionRef(sendGain(eqBand(name)))
		},
	},
	{
		name:  "compressor",
		match: func(c string) bool { return containsAny(c, "comp", "dynam") },
		outcome: func(name, _ string) target.Reference {
			switch {
			case containsAny(name, "thresh"):
				return target.FunctionRef(sendGain(5))
			case containsAny(name, "ratio"):
				return target.FunctionRef(sendGain(6))
			case containsAny(name, "release", "rel time"):
				return target.FunctionRef(sendGain(7))
			default:
				return target.FunctionRef(sendGain(8))
			}
		},
	},
	{
		name:  "limiter",
		match: func(c string) bool { return containsAny(c, "limit") },
		outcome: func(_, _ string) target.Reference {
			return target.FunctionRef(funcTrackGain)
		},
	},
	{
		name:  "filter",
		match: func(c string) bool { return containsAny(c, "filter") },
		outcome: func(_, _ string) target.Reference {
			return target.FunctionRef(sendGain(4))
		},
	},
	{
		name:  "global",
		match: func(c string) bool { return containsAny(c, "global", "master", "general") },
		outcome: func(name, _ string) target.Reference {
			switch {
			case containsAny(name, "bypass"):
				return target.FunctionRef(funcToggleBypass)
			case containsAny(name, "window", "editor", "gui", "open"):
				return target.FunctionRef(funcEditorWindow)
			default:
				return target.FunctionRef(funcTrackSelect)
			}
		},
	},
	{
		// Mandatory default: any unmatched category falls back to an
		// addressable parameter path keyed by the target identifier.
		name:  "default",
		match: func(string) bool { return true },
		outcome: func(_, identifier string) target.Reference {
			return target.URIRef(paramURI(identifier))
		},
	},
}

// eqBand classifies an equalizer parameter name into one of the four band
// slots. Band 1 is the explicit fallback when no band keyword matches.
// Mid-band keywords are tested before the plain low/high keywords they
// contain.
func eqBand(name string) int {
	switch {
	case containsAny(name, "low mid", "low-mid", "lowmid", "lo mid", "lmf"):
		return 2
	case containsAny(name, "high mid", "high-mid", "highmid", "hi mid", "hmf"):
		return 3
	case containsAny(name, "high", "hf", "treble"):
		return 4
	case containsAny(name, "low", "lf", "bass"):
		return 1
	default:
		return 1
	}
}
