package canonical

import (
	"strconv"

	"github.com/oletizi/audio-control/internal/diagnostic"
)

// MIDI ranges and normalized-value bounds enforced by the validator.
const (
	minChannel = 1
	maxChannel = 16
	minNumber  = 0
	maxNumber  = 127
)

// Validate checks an untyped document tree against the canonical map schema.
// Validation is structural and exhaustive: every independent violation is
// collected, none stops the pass. On success the typed map is returned along
// with any advisory warnings; on failure the map is nil and the outcome
// carries at least one error.
func Validate(doc any) (*Map, *diagnostic.Outcome) {
	out := &diagnostic.Outcome{}
	v := &validator{out: out}

	root, ok := asDocMap(doc)
	if !ok {
		out.AddError(diagnostic.CodeInvalidType, "document root must be an object", "")
		return nil, out
	}

	m := &Map{}

	if meta, ok := v.requireMap(root, "metadata", ""); ok {
		m.Metadata = v.validateMetadata(meta)
	}

	if ctl, ok := v.requireMap(root, "controller", ""); ok {
		m.Controller = v.validateController(ctl)
	}

	if plug, ok := v.requireMap(root, "plugin", ""); ok {
		m.Plugin = v.validatePlugin(plug)
	}

	m.Mappings = v.validateMappings(root)

	if !out.IsValid() {
		return nil, out
	}

	computeWarnings(m, out)

	return m, out
}

func (v *validator) validateMetadata(meta map[string]any) Metadata {
	md := Metadata{}
	md.Name, _ = v.requireString(meta, "name", "metadata")
	md.Version, _ = v.requireString(meta, "version", "metadata")
	md.Description = v.optionalString(meta, "description", "metadata")
	md.Author = v.optionalString(meta, "author", "metadata")

	return md
}

func (v *validator) validateController(ctl map[string]any) Controller {
	c := Controller{}
	c.Manufacturer, _ = v.requireString(ctl, "manufacturer", "controller")
	c.Model, _ = v.requireString(ctl, "model", "controller")
	c.DefaultChannel = v.optionalInt(ctl, "defaultChannel", "controller", minChannel, maxChannel)

	return c
}

func (v *validator) validatePlugin(plug map[string]any) Plugin {
	p := Plugin{}
	p.Manufacturer, _ = v.requireString(plug, "manufacturer", "plugin")
	p.Name, _ = v.requireString(plug, "name", "plugin")

	format := v.optionalString(plug, "format", "plugin")

	p.Format = PluginFormat(format)
	if !p.Format.IsValid() {
		v.out.AddErrorf(diagnostic.CodeInvalidValue, "plugin.format", "unknown plugin format %q", format)
		p.Format = FormatUnspecified
	}

	return p
}

func (v *validator) validateMappings(root map[string]any) []MappingEntry {
	raw, present := root["mappings"]
	if !present || raw == nil {
		v.out.AddError(diagnostic.CodeRequiredField, `missing required field "mappings"`, "mappings")
		return nil
	}

	list, ok := asDocSlice(raw)
	if !ok {
		v.out.AddErrorf(diagnostic.CodeInvalidType, "mappings", "expected array, got %T", raw)
		return nil
	}

	entries := make([]MappingEntry, 0, len(list))

	for i, item := range list {
		path := "mappings." + strconv.Itoa(i)

		obj, ok := asDocMap(item)
		if !ok {
			v.out.AddErrorf(diagnostic.CodeInvalidType, path, "expected object, got %T", item)
			continue
		}

		entries = append(entries, v.validateEntry(obj, path))
	}

	return entries
}

func (v *validator) validateEntry(obj map[string]any, path string) MappingEntry {
	e := MappingEntry{}
	e.ID, _ = v.requireString(obj, "id", path)
	e.Description = v.optionalString(obj, "description", path)
	e.Enabled = v.optionalBool(obj, "enabled", path)

	if in, ok := v.requireMap(obj, "midiInput", path); ok {
		e.MIDIInput = v.validateMIDIInput(in, joinPath(path, "midiInput"))
	}

	if tgt, ok := v.requireMap(obj, "pluginTarget", path); ok {
		e.PluginTarget = v.validatePluginTarget(tgt, joinPath(path, "pluginTarget"))
	}

	if rawScale, present := obj["mapping"]; present && rawScale != nil {
		scale, ok := asDocMap(rawScale)
		if !ok {
			v.out.AddErrorf(diagnostic.CodeInvalidType, joinPath(path, "mapping"), "expected object, got %T", rawScale)
		} else {
			e.Mapping = v.validateScaling(scale, joinPath(path, "mapping"))
		}
	}

	return e
}

func (v *validator) validateMIDIInput(in map[string]any, path string) MIDIInput {
	mi := MIDIInput{}

	kind, ok := v.requireString(in, "type", path)
	if ok {
		mi.Kind = InputKind(kind)
		if !mi.Kind.IsValid() {
			v.out.AddErrorf(diagnostic.CodeInvalidValue, joinPath(path, "type"), "unknown MIDI input type %q", kind)
		}
	}

	mi.Channel = v.optionalInt(in, "channel", path, minChannel, maxChannel)
	mi.Number = v.optionalInt(in, "number", path, minNumber, maxNumber)

	if rawBeh, present := in["behavior"]; present && rawBeh != nil {
		beh, ok := asDocMap(rawBeh)
		if !ok {
			v.out.AddErrorf(diagnostic.CodeInvalidType, joinPath(path, "behavior"), "expected object, got %T", rawBeh)
		} else {
			mi.Behavior = v.validateBehavior(beh, joinPath(path, "behavior"))
		}
	}

	return mi
}

func (v *validator) validateBehavior(beh map[string]any, path string) *Behavior {
	b := &Behavior{}

	mode := v.optionalString(beh, "mode", path)

	b.Mode = InteractionMode(mode)
	if mode != "" && !b.Mode.IsValid() {
		v.out.AddErrorf(diagnostic.CodeInvalidValue, joinPath(path, "mode"), "unknown interaction mode %q", mode)
	}

	b.Sensitivity = v.optionalFloat(beh, "sensitivity", path, 0, 1)
	b.Deadzone = v.optionalFloat(beh, "deadzone", path, 0, 1)
	b.Curve = v.optionalString(beh, "curve", path)

	if inv := v.optionalBool(beh, "invert", path); inv != nil {
		b.Invert = *inv
	}

	return b
}

func (v *validator) validatePluginTarget(tgt map[string]any, path string) PluginTarget {
	pt := PluginTarget{}

	kind, ok := v.requireString(tgt, "type", path)
	if ok {
		pt.Kind = TargetKind(kind)
		if !pt.Kind.IsValid() {
			v.out.AddErrorf(diagnostic.CodeInvalidValue, joinPath(path, "type"), "unknown plugin target type %q", kind)
		}
	}

	pt.Identifier, _ = v.requireString(tgt, "identifier", path)
	pt.Name = v.optionalString(tgt, "name", path)
	pt.Category = v.optionalString(tgt, "category", path)
	pt.Units = v.optionalString(tgt, "units", path)

	if rawRange, present := tgt["range"]; present && rawRange != nil {
		rng, ok := asDocMap(rawRange)
		if !ok {
			v.out.AddErrorf(diagnostic.CodeInvalidType, joinPath(path, "range"), "expected object, got %T", rawRange)
		} else {
			r := Range{}
			r.Min, _ = v.requireFloat(rng, "min", joinPath(path, "range"))
			r.Max, _ = v.requireFloat(rng, "max", joinPath(path, "range"))
			pt.Range = &r
		}
	}

	return pt
}

func (v *validator) validateScaling(scale map[string]any, path string) *Scaling {
	s := &Scaling{}
	s.Curve = v.optionalString(scale, "curve", path)
	s.Step = v.optionalFloat(scale, "step", path, 0, maxNumber)
	s.Smoothing = v.optionalFloat(scale, "smoothing", path, 0, 1)

	if bip := v.optionalBool(scale, "bipolar", path); bip != nil {
		s.Bipolar = *bip
	}

	return s
}
