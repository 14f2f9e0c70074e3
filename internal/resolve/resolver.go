package resolve

import (
	"strings"

	"github.com/oletizi/audio-control/internal/canonical"
	"github.com/oletizi/audio-control/internal/target"
)

// Resolve decides the target control reference for one mapping entry.
//
// Priority order:
//  1. A disabled entry opts out entirely and resolves to nothing.
//  2. A bypass target resolves to the fixed bypass-toggle function.
//  3. A parameter target resolves to an addressable parameter path when the
//     controller context prefers URI routing.
//  4. Otherwise the entry is classified by the ordered category/name rule
//     table, whose default rule falls back to an addressable parameter path.
//
// Resolve never fails; "none" is reachable only through the explicit
// opt-out in step 1.
func Resolve(e canonical.MappingEntry, ctx ControllerContext) target.Reference {
	if !e.IsEnabled() {
		return target.NoRef()
	}

	if e.PluginTarget.Kind == canonical.TargetBypass {
		return target.FunctionRef(funcToggleBypass)
	}

	if e.PluginTarget.Kind == canonical.TargetParameter && ctx.PreferURIRouting {
		return target.URIRef(paramURI(e.PluginTarget.Identifier))
	}

	category := strings.ToLower(e.PluginTarget.Category)
	name := strings.ToLower(e.PluginTarget.Name)

	for _, rule := range categoryRules {
		if rule.match(category) {
			return rule.outcome(name, e.PluginTarget.Identifier)
		}
	}

	// Unreachable: the table ends with an always-matching default rule.
	return target.URIRef(paramURI(e.PluginTarget.Identifier))
}

// Flags computes the behavior flags for one mapping entry. Flag propagation
// is independent of reference resolution and is always computed: a relative
// continuous controller becomes an encoder binding, and a momentary note or
// controller input becomes a momentary binding.
func Flags(e canonical.MappingEntry) target.BindingFlags {
	flags := target.BindingFlags{}
	mode := e.Mode()

	if e.MIDIInput.Kind == canonical.InputCC && mode == canonical.ModeRelative {
		flags.Encoder = true
	}

	if mode == canonical.ModeMomentary &&
		(e.MIDIInput.Kind == canonical.InputCC || e.MIDIInput.Kind == canonical.InputNote) {
		flags.Momentary = true
	}

	return flags
}
